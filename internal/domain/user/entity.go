package user

import "time"

type Role string

const (
	RoleEmployee      Role = "employee"       // Submits requests only
	RoleDirectManager Role = "direct_manager" // First approval stage
	RoleHRManager     Role = "hr_manager"     // Second approval stage, manages the directory
	RoleDean          Role = "dean"           // Final approval stage
)

func (r Role) IsValid() bool {
	switch r {
	case RoleEmployee, RoleDirectManager, RoleHRManager, RoleDean:
		return true
	}
	return false
}

// IsApprover reports whether users with this role may be referenced as a manager.
func (r Role) IsApprover() bool {
	return r == RoleDirectManager || r == RoleHRManager || r == RoleDean
}

// Balances holds remaining leave days per bucket.
type Balances struct {
	Regular  int `json:"regular"`
	Casual   int `json:"casual"`
	Previous int `json:"previous"`
}

type User struct {
	ID         int64
	Name       string
	Password   string // plaintext or bcrypt hash, depending on credential mode
	Role       Role
	HireDate   time.Time
	Department string
	ManagerID  *int64
	Balances   Balances
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// HasManager reports whether the user reports to someone below the HR/Dean tier.
func (u *User) HasManager() bool {
	return u.ManagerID != nil
}

// CanReview checks if user takes part in the approval chain
func (u *User) CanReview() bool {
	return u.Role.IsApprover()
}
