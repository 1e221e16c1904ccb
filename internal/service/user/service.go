package user

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/cmlabs-hris/leave-approval-go/internal/domain/user"
	"github.com/cmlabs-hris/leave-approval-go/internal/pkg/credential"
	"github.com/cmlabs-hris/leave-approval-go/internal/pkg/validator"
	"github.com/cmlabs-hris/leave-approval-go/internal/repository/memory"
)

type UserServiceImpl struct {
	db *memory.DB
	user.UserRepository
	hasher credential.Hasher
	now    func() time.Time
}

func NewUserService(db *memory.DB, userRepository user.UserRepository, hasher credential.Hasher) *UserServiceImpl {
	return &UserServiceImpl{
		db:             db,
		UserRepository: userRepository,
		hasher:         hasher,
		now:            time.Now,
	}
}

// CreateUser implements user.UserService.
func (s *UserServiceImpl) CreateUser(ctx context.Context, req user.CreateUserRequest) (user.UserResponse, error) {
	if err := req.Validate(); err != nil {
		return user.UserResponse{}, err
	}

	hireDate, _ := validator.IsValidDate(req.HireDate)

	var created user.User
	err := memory.WithTransaction(ctx, s.db, func(ctx context.Context) error {
		if err := s.ensureNameAvailable(ctx, req.Name, 0); err != nil {
			return err
		}
		if err := s.validateManager(ctx, req.ManagerID, 0); err != nil {
			return err
		}

		password, err := s.hasher.Hash(req.Password)
		if err != nil {
			return fmt.Errorf("failed to hash password: %w", err)
		}

		now := s.now()
		newUser := user.User{
			Name:       req.Name,
			Password:   password,
			Role:       user.Role(req.Role),
			HireDate:   hireDate,
			Department: req.Department,
			ManagerID:  req.ManagerID,
			Balances: user.Balances{
				Regular:  user.DefaultRegularBalance(hireDate, now),
				Casual:   req.Balances.Casual,
				Previous: req.Balances.Previous,
			},
			CreatedAt: now,
			UpdatedAt: now,
		}
		if req.Balances.Regular != nil {
			newUser.Balances.Regular = *req.Balances.Regular
		}

		created, err = s.UserRepository.Create(ctx, newUser)
		return err
	})
	if err != nil {
		return user.UserResponse{}, err
	}

	slog.InfoContext(ctx, "User created", "user_id", created.ID, "role", created.Role)
	return user.NewUserResponse(created), nil
}

// UpdateUser implements user.UserService. The stored record is replaced
// wholesale except for the id, the creation time and, when no new password is
// given, the credential.
func (s *UserServiceImpl) UpdateUser(ctx context.Context, req user.UpdateUserRequest) (user.UserResponse, error) {
	if err := req.Validate(); err != nil {
		return user.UserResponse{}, err
	}

	hireDate, _ := validator.IsValidDate(req.HireDate)

	var updated user.User
	err := memory.WithTransaction(ctx, s.db, func(ctx context.Context) error {
		existing, err := s.UserRepository.GetByID(ctx, req.ID)
		if err != nil {
			return err
		}

		if err := s.ensureNameAvailable(ctx, req.Name, req.ID); err != nil {
			return err
		}
		if err := s.validateManager(ctx, req.ManagerID, req.ID); err != nil {
			return err
		}

		role := user.Role(req.Role)
		if !role.IsApprover() && existing.Role.IsApprover() {
			if err := s.ensureNoReports(ctx, req.ID); err != nil {
				return err
			}
		}

		password := existing.Password
		if req.Password != "" {
			password, err = s.hasher.Hash(req.Password)
			if err != nil {
				return fmt.Errorf("failed to hash password: %w", err)
			}
		}

		now := s.now()
		regular := existing.Balances.Regular
		switch {
		case req.Balances.Regular != nil:
			regular = *req.Balances.Regular
		case !hireDate.Equal(existing.HireDate):
			regular = user.DefaultRegularBalance(hireDate, now)
		}

		updated = user.User{
			ID:         existing.ID,
			Name:       req.Name,
			Password:   password,
			Role:       role,
			HireDate:   hireDate,
			Department: req.Department,
			ManagerID:  req.ManagerID,
			Balances: user.Balances{
				Regular:  regular,
				Casual:   req.Balances.Casual,
				Previous: req.Balances.Previous,
			},
			CreatedAt: existing.CreatedAt,
			UpdatedAt: now,
		}

		return s.UserRepository.Update(ctx, updated)
	})
	if err != nil {
		return user.UserResponse{}, err
	}

	slog.InfoContext(ctx, "User updated", "user_id", updated.ID, "role", updated.Role)
	return user.NewUserResponse(updated), nil
}

// GetUser implements user.UserService.
func (s *UserServiceImpl) GetUser(ctx context.Context, id int64) (user.UserResponse, error) {
	u, err := s.UserRepository.GetByID(ctx, id)
	if err != nil {
		return user.UserResponse{}, err
	}
	return user.NewUserResponse(u), nil
}

// ListUsers implements user.UserService.
func (s *UserServiceImpl) ListUsers(ctx context.Context) ([]user.UserResponse, error) {
	users, err := s.UserRepository.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}

	responses := make([]user.UserResponse, len(users))
	for i, u := range users {
		responses[i] = user.NewUserResponse(u)
	}
	return responses, nil
}

// ListApprovers implements user.UserService.
func (s *UserServiceImpl) ListApprovers(ctx context.Context) ([]user.UserResponse, error) {
	users, err := s.UserRepository.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}

	responses := make([]user.UserResponse, 0, len(users))
	for _, u := range users {
		if u.CanReview() {
			responses = append(responses, user.NewUserResponse(u))
		}
	}
	return responses, nil
}

func (s *UserServiceImpl) ensureNameAvailable(ctx context.Context, name string, excludeID int64) error {
	exists, err := s.UserRepository.ExistsByName(ctx, name, excludeID)
	if err != nil {
		return fmt.Errorf("failed to check user name: %w", err)
	}
	if exists {
		return user.ErrUserNameExists
	}
	return nil
}

func (s *UserServiceImpl) validateManager(ctx context.Context, managerID *int64, selfID int64) error {
	if managerID == nil {
		return nil
	}
	if *managerID == selfID {
		return user.ErrSelfManaged
	}

	manager, err := s.UserRepository.GetByID(ctx, *managerID)
	if errors.Is(err, user.ErrUserNotFound) {
		return user.ErrInvalidManager
	}
	if err != nil {
		return fmt.Errorf("failed to get manager: %w", err)
	}
	if !manager.Role.IsApprover() {
		return user.ErrInvalidManager
	}
	return nil
}

func (s *UserServiceImpl) ensureNoReports(ctx context.Context, id int64) error {
	users, err := s.UserRepository.List(ctx)
	if err != nil {
		return fmt.Errorf("failed to list users: %w", err)
	}
	for _, u := range users {
		if u.ManagerID != nil && *u.ManagerID == id {
			return user.ErrUserHasReports
		}
	}
	return nil
}
