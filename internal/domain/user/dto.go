package user

import (
	"github.com/cmlabs-hris/leave-approval-go/internal/pkg/validator"
)

// UserResponse represents user data in API responses
type UserResponse struct {
	ID         int64    `json:"id"`
	Name       string   `json:"name"`
	Role       Role     `json:"role"`
	HireDate   string   `json:"hire_date"`
	Department string   `json:"department"`
	ManagerID  *int64   `json:"manager_id,omitempty"`
	Balances   Balances `json:"balances"`
}

func NewUserResponse(u User) UserResponse {
	return UserResponse{
		ID:         u.ID,
		Name:       u.Name,
		Role:       u.Role,
		HireDate:   validator.FormatDate(u.HireDate),
		Department: u.Department,
		ManagerID:  u.ManagerID,
		Balances:   u.Balances,
	}
}

// BalancesInput carries balances from the admin form. A nil Regular asks for the hire-date policy.
type BalancesInput struct {
	Regular  *int `json:"regular,omitempty"`
	Casual   int  `json:"casual"`
	Previous int  `json:"previous"`
}

func (b BalancesInput) validate(errs validator.ValidationErrors) validator.ValidationErrors {
	if b.Regular != nil && *b.Regular < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "balances.regular",
			Message: "balances.regular must not be negative",
		})
	}
	if b.Casual < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "balances.casual",
			Message: "balances.casual must not be negative",
		})
	}
	if b.Previous < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "balances.previous",
			Message: "balances.previous must not be negative",
		})
	}
	return errs
}

// CreateUserRequest represents request to create a new user
type CreateUserRequest struct {
	Name       string        `json:"name"`
	Password   string        `json:"password"`
	Role       string        `json:"role"`
	HireDate   string        `json:"hire_date"`
	Department string        `json:"department"`
	ManagerID  *int64        `json:"manager_id,omitempty"`
	Balances   BalancesInput `json:"balances"`
}

func (r *CreateUserRequest) Validate() error {
	var errs validator.ValidationErrors

	errs = validateProfile(errs, r.Name, r.Role, r.HireDate)

	if validator.IsEmpty(r.Password) {
		errs = append(errs, validator.ValidationError{
			Field:   "password",
			Message: "password is required",
		})
	}

	errs = r.Balances.validate(errs)

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// UpdateUserRequest replaces a stored user. An empty Password keeps the stored credential.
type UpdateUserRequest struct {
	ID         int64         `json:"-"`
	Name       string        `json:"name"`
	Password   string        `json:"password,omitempty"`
	Role       string        `json:"role"`
	HireDate   string        `json:"hire_date"`
	Department string        `json:"department"`
	ManagerID  *int64        `json:"manager_id,omitempty"`
	Balances   BalancesInput `json:"balances"`
}

func (r *UpdateUserRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.ID <= 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "id",
			Message: "id must be a positive integer",
		})
	}

	errs = validateProfile(errs, r.Name, r.Role, r.HireDate)

	if r.ManagerID != nil && *r.ManagerID == r.ID {
		errs = append(errs, validator.ValidationError{
			Field:   "manager_id",
			Message: ErrSelfManaged.Error(),
		})
	}

	errs = r.Balances.validate(errs)

	if len(errs) > 0 {
		return errs
	}

	return nil
}

func validateProfile(errs validator.ValidationErrors, name, role, hireDate string) validator.ValidationErrors {
	if validator.IsEmpty(name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name is required",
		})
	} else if len(name) > 255 {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name must not exceed 255 characters",
		})
	}

	if validator.IsEmpty(role) {
		errs = append(errs, validator.ValidationError{
			Field:   "role",
			Message: "role is required",
		})
	} else if !Role(role).IsValid() {
		errs = append(errs, validator.ValidationError{
			Field:   "role",
			Message: "role must be one of employee, direct_manager, hr_manager, dean",
		})
	}

	if validator.IsEmpty(hireDate) {
		errs = append(errs, validator.ValidationError{
			Field:   "hire_date",
			Message: "hire_date is required",
		})
	} else if _, ok := validator.IsValidDate(hireDate); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "hire_date",
			Message: "hire_date must be in YYYY-MM-DD format",
		})
	}

	return errs
}
