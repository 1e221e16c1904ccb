package fixtures

import (
	"context"
	"fmt"
	"time"

	"github.com/cmlabs-hris/leave-approval-go/internal/domain/request"
	"github.com/cmlabs-hris/leave-approval-go/internal/domain/user"
	"github.com/cmlabs-hris/leave-approval-go/internal/pkg/credential"
	"github.com/cmlabs-hris/leave-approval-go/internal/repository/memory"
)

// DefaultPassword is shared by every demo account.
const DefaultPassword = "123"

func int64Ptr(i int64) *int64 { return &i }
func strPtr(s string) *string { return &s }

func date(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}

func timestamp(s string) time.Time {
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		panic(err)
	}
	return t
}

// ==========================================
// DEMO DIRECTORY
// ==========================================

// DefaultUsers returns the demo directory. Ids are assigned in order starting
// at 1, so manager references point at positions in this slice.
func DefaultUsers() []user.User {
	return []user.User{
		{
			Name:       "Ahmed Mahmoud",
			Role:       user.RoleEmployee,
			HireDate:   date("2020-01-15"),
			Department: "Information Technology",
			ManagerID:  int64Ptr(3),
			Balances:   user.Balances{Regular: 21, Casual: 7, Previous: 5},
		},
		{
			Name:       "Fatima Alzahra",
			Role:       user.RoleEmployee,
			HireDate:   date("2022-06-01"),
			Department: "Information Technology",
			ManagerID:  int64Ptr(3),
			Balances:   user.Balances{Regular: 15, Casual: 7, Previous: 0},
		},
		{
			Name:       "Khalid Abdulaziz",
			Role:       user.RoleDirectManager,
			HireDate:   date("2018-03-10"),
			Department: "Information Technology",
			ManagerID:  int64Ptr(4),
			Balances:   user.Balances{Regular: 21, Casual: 7, Previous: 10},
		},
		{
			Name:       "Sara Ibrahim",
			Role:       user.RoleHRManager,
			HireDate:   date("2015-09-20"),
			Department: "Human Resources",
			ManagerID:  int64Ptr(5),
			Balances:   user.Balances{Regular: 21, Casual: 7, Previous: 12},
		},
		{
			Name:       "Mohammed Ali",
			Role:       user.RoleDean,
			HireDate:   date("2010-02-01"),
			Department: "Senior Administration",
			Balances:   user.Balances{Regular: 30, Casual: 7, Previous: 25},
		},
	}
}

// ==========================================
// DEMO REQUESTS
// ==========================================

// DefaultRequests returns the demo requests, referencing DefaultUsers ids.
func DefaultRequests() []request.Request {
	return []request.Request{
		{
			UserID:    1,
			Status:    request.StatusPending,
			Reason:    "Summer vacation",
			ManagerID: int64Ptr(3),
			Details: request.LeaveDetails{
				LeaveType: request.LeaveTypeRegular,
				StartDate: date("2024-08-10"),
				EndDate:   date("2024-08-12"),
			},
			CreatedAt: timestamp("2024-07-20T10:00:00Z"),
		},
		{
			UserID:    2,
			Status:    request.StatusPending,
			Reason:    "Sudden illness",
			ManagerID: int64Ptr(3),
			Details: request.LeaveDetails{
				LeaveType: request.LeaveTypeSick,
				StartDate: date("2024-07-18"),
				EndDate:   date("2024-07-19"),
			},
			CreatedAt: timestamp("2024-07-18T09:00:00Z"),
		},
		{
			UserID:    3,
			Status:    request.StatusApproved,
			Reason:    "Medical appointment",
			ManagerID: int64Ptr(4),
			Details: request.PermissionDetails{
				PermissionType: request.PermissionTypeMorning,
				Date:           date("2024-07-22"),
			},
			DeanApprovalNotes: strPtr("Approved"),
			CreatedAt:         timestamp("2024-07-21T14:00:00Z"),
		},
	}
}

// Seed loads the demo directory and requests into db in one transaction.
// Passwords are stored through hasher so bcrypt mode works with the demo accounts.
func Seed(ctx context.Context, db *memory.DB, hasher credential.Hasher) error {
	users := memory.NewUserRepository(db)
	requests := memory.NewRequestRepository(db)

	return memory.WithTransaction(ctx, db, func(ctx context.Context) error {
		password, err := hasher.Hash(DefaultPassword)
		if err != nil {
			return fmt.Errorf("failed to hash default password: %w", err)
		}

		for _, u := range DefaultUsers() {
			u.Password = password
			u.CreatedAt = u.HireDate
			u.UpdatedAt = u.HireDate
			if _, err := users.Create(ctx, u); err != nil {
				return fmt.Errorf("failed to seed user %s: %w", u.Name, err)
			}
		}

		for _, r := range DefaultRequests() {
			r.UpdatedAt = r.CreatedAt
			if _, err := requests.Create(ctx, r); err != nil {
				return fmt.Errorf("failed to seed request of user %d: %w", r.UserID, err)
			}
		}

		return nil
	})
}
