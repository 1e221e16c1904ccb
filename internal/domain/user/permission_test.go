package user

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHasPermission(t *testing.T) {
	tests := []struct {
		role       Role
		permission Permission
		expected   bool
	}{
		{RoleEmployee, PermissionRequestCreate, true},
		{RoleEmployee, PermissionRequestReview, false},
		{RoleEmployee, PermissionUserManage, false},
		{RoleDirectManager, PermissionRequestReview, true},
		{RoleDirectManager, PermissionUserManage, false},
		{RoleHRManager, PermissionUserManage, true},
		{RoleHRManager, PermissionRequestReview, true},
		{RoleDean, PermissionRequestReview, true},
		{RoleDean, PermissionUserManage, false},
		{Role("guest"), PermissionDashboardView, false},
	}

	for _, tt := range tests {
		t.Run(string(tt.role)+"/"+string(tt.permission), func(t *testing.T) {
			assert.Equal(t, tt.expected, HasPermission(tt.role, tt.permission))
		})
	}
}

func TestRole_IsApprover(t *testing.T) {
	assert.False(t, RoleEmployee.IsApprover())
	assert.True(t, RoleDirectManager.IsApprover())
	assert.True(t, RoleHRManager.IsApprover())
	assert.True(t, RoleDean.IsApprover())
	assert.False(t, Role("").IsValid())
}

func TestUpdateUserRequest_Validate(t *testing.T) {
	self := int64(4)
	negative := -1

	req := UpdateUserRequest{
		ID:        4,
		Name:      "",
		Role:      "boss",
		HireDate:  "2020/01/01",
		ManagerID: &self,
		Balances:  BalancesInput{Regular: &negative},
	}

	err := req.Validate()

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "name: name is required")
	assert.Contains(t, err.Error(), "role: role must be one of")
	assert.Contains(t, err.Error(), "hire_date: hire_date must be in YYYY-MM-DD format")
	assert.Contains(t, err.Error(), "manager_id: "+ErrSelfManaged.Error())
	assert.Contains(t, err.Error(), "balances.regular")
}

func TestCreateUserRequest_Validate(t *testing.T) {
	req := CreateUserRequest{Name: "Noor", Password: "pw", Role: "employee", HireDate: "2024-02-01"}

	assert.NoError(t, req.Validate())

	req.Password = " "
	assert.ErrorContains(t, req.Validate(), "password is required")
}
