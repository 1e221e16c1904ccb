package memory

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"github.com/cmlabs-hris/leave-approval-go/internal/domain/user"
)

type userRepositoryImpl struct {
	db *DB
}

func NewUserRepository(db *DB) user.UserRepository {
	return &userRepositoryImpl{db: db}
}

// Create implements user.UserRepository.
func (r *userRepositoryImpl) Create(ctx context.Context, newUser user.User) (user.User, error) {
	err := r.db.write(ctx, func() error {
		r.db.lastUserID++
		newUser.ID = r.db.lastUserID
		r.db.users = append(r.db.users, newUser)
		return nil
	})
	if err != nil {
		return user.User{}, fmt.Errorf("failed to create user: %w", err)
	}

	return newUser, nil
}

// GetByID implements user.UserRepository.
func (r *userRepositoryImpl) GetByID(ctx context.Context, id int64) (user.User, error) {
	var found user.User
	err := r.db.read(ctx, func() error {
		i := r.indexOf(id)
		if i < 0 {
			return user.ErrUserNotFound
		}
		found = r.db.users[i]
		return nil
	})
	return found, err
}

// GetByName implements user.UserRepository.
func (r *userRepositoryImpl) GetByName(ctx context.Context, name string) (user.User, error) {
	var found user.User
	err := r.db.read(ctx, func() error {
		for _, u := range r.db.users {
			if u.Name == name {
				found = u
				return nil
			}
		}
		return user.ErrUserNotFound
	})
	return found, err
}

// FirstByRole implements user.UserRepository.
func (r *userRepositoryImpl) FirstByRole(ctx context.Context, role user.Role) (user.User, error) {
	var found user.User
	err := r.db.read(ctx, func() error {
		for _, u := range r.db.users {
			if u.Role == role {
				found = u
				return nil
			}
		}
		return user.ErrUserNotFound
	})
	return found, err
}

// List implements user.UserRepository.
func (r *userRepositoryImpl) List(ctx context.Context) ([]user.User, error) {
	var users []user.User
	err := r.db.read(ctx, func() error {
		users = slices.Clone(r.db.users)
		return nil
	})
	if users == nil {
		users = []user.User{}
	}
	return users, err
}

// ExistsByName implements user.UserRepository. Names compare case-insensitively.
func (r *userRepositoryImpl) ExistsByName(ctx context.Context, name string, excludeID int64) (bool, error) {
	var exists bool
	err := r.db.read(ctx, func() error {
		exists = slices.ContainsFunc(r.db.users, func(u user.User) bool {
			return u.ID != excludeID && strings.EqualFold(u.Name, name)
		})
		return nil
	})
	return exists, err
}

// Update implements user.UserRepository.
func (r *userRepositoryImpl) Update(ctx context.Context, u user.User) error {
	return r.db.write(ctx, func() error {
		i := r.indexOf(u.ID)
		if i < 0 {
			return user.ErrUserNotFound
		}
		r.db.users[i] = u
		return nil
	})
}

// caller holds the lock
func (r *userRepositoryImpl) indexOf(id int64) int {
	return slices.IndexFunc(r.db.users, func(u user.User) bool {
		return u.ID == id
	})
}
