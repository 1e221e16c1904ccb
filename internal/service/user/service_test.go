package user

import (
	"context"
	"testing"
	"time"

	"github.com/cmlabs-hris/leave-approval-go/internal/domain/user"
	"github.com/cmlabs-hris/leave-approval-go/internal/pkg/credential"
	"github.com/cmlabs-hris/leave-approval-go/internal/pkg/validator"
	"github.com/cmlabs-hris/leave-approval-go/internal/repository/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

var testNow = time.Date(2026, 10, 17, 9, 0, 0, 0, time.UTC)

func newTestUserService(t *testing.T, hasher credential.Hasher) (*UserServiceImpl, user.UserRepository) {
	t.Helper()
	db := memory.NewDB()
	t.Cleanup(db.Close)

	repo := memory.NewUserRepository(db)
	svc := NewUserService(db, repo, hasher)
	svc.now = func() time.Time { return testNow }
	return svc, repo
}

func yearsAgo(years int) string {
	return validator.FormatDate(testNow.AddDate(-years, 0, 0))
}

func intPtr(v int) *int { return &v }

func createManager(t *testing.T, svc *UserServiceImpl) user.UserResponse {
	t.Helper()
	m, err := svc.CreateUser(context.Background(), user.CreateUserRequest{
		Name: "Khalid", Password: "123", Role: "direct_manager", HireDate: yearsAgo(5), Department: "IT",
	})
	require.NoError(t, err)
	return m
}

// Test CreateUser derives the regular balance from hire date
func TestUserService_CreateUser_RegularBalancePolicy(t *testing.T) {
	svc, _ := newTestUserService(t, credential.Plain{})

	tests := []struct {
		name     string
		years    int
		expected int
	}{
		{"ten years", 10, 30},
		{"nine years", 9, 21},
		{"zero years", 0, 15},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			created, err := svc.CreateUser(context.Background(), user.CreateUserRequest{
				Name: "Emp " + tt.name, Password: "123", Role: "employee", HireDate: yearsAgo(tt.years),
			})

			require.NoError(t, err)
			assert.Equal(t, tt.expected, created.Balances.Regular)
		})
	}
}

func TestUserService_CreateUser_ExplicitRegularWins(t *testing.T) {
	svc, _ := newTestUserService(t, credential.Plain{})

	created, err := svc.CreateUser(context.Background(), user.CreateUserRequest{
		Name:     "Lina",
		Password: "123",
		Role:     "employee",
		HireDate: yearsAgo(12),
		Balances: user.BalancesInput{Regular: intPtr(3), Casual: 7, Previous: 2},
	})

	require.NoError(t, err)
	assert.Equal(t, user.Balances{Regular: 3, Casual: 7, Previous: 2}, created.Balances)
}

func TestUserService_CreateUser_DuplicateName(t *testing.T) {
	svc, _ := newTestUserService(t, credential.Plain{})
	ctx := context.Background()
	req := user.CreateUserRequest{Name: "Sara", Password: "123", Role: "employee", HireDate: yearsAgo(1)}

	_, err := svc.CreateUser(ctx, req)
	require.NoError(t, err)

	req.Name = "SARA"
	_, err = svc.CreateUser(ctx, req)

	assert.ErrorIs(t, err, user.ErrUserNameExists)
}

func TestUserService_CreateUser_ManagerMustBeApprover(t *testing.T) {
	svc, _ := newTestUserService(t, credential.Plain{})
	ctx := context.Background()

	emp, err := svc.CreateUser(ctx, user.CreateUserRequest{Name: "Emp", Password: "123", Role: "employee", HireDate: yearsAgo(1)})
	require.NoError(t, err)

	_, err = svc.CreateUser(ctx, user.CreateUserRequest{
		Name: "Other", Password: "123", Role: "employee", HireDate: yearsAgo(1), ManagerID: &emp.ID,
	})
	assert.ErrorIs(t, err, user.ErrInvalidManager)

	missing := int64(404)
	_, err = svc.CreateUser(ctx, user.CreateUserRequest{
		Name: "Other", Password: "123", Role: "employee", HireDate: yearsAgo(1), ManagerID: &missing,
	})
	assert.ErrorIs(t, err, user.ErrInvalidManager)

	manager := createManager(t, svc)
	created, err := svc.CreateUser(ctx, user.CreateUserRequest{
		Name: "Other", Password: "123", Role: "employee", HireDate: yearsAgo(1), ManagerID: &manager.ID,
	})
	require.NoError(t, err)
	assert.Equal(t, manager.ID, *created.ManagerID)
}

func TestUserService_CreateUser_HashesInBcryptMode(t *testing.T) {
	svc, repo := newTestUserService(t, credential.Bcrypt{Cost: bcrypt.MinCost})

	created, err := svc.CreateUser(context.Background(), user.CreateUserRequest{
		Name: "Hana", Password: "s3cret", Role: "hr_manager", HireDate: yearsAgo(3),
	})
	require.NoError(t, err)

	stored, err := repo.GetByID(context.Background(), created.ID)
	require.NoError(t, err)
	assert.NotEqual(t, "s3cret", stored.Password)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.Password), []byte("s3cret")))
}

func TestUserService_UpdateUser_NotFound(t *testing.T) {
	svc, _ := newTestUserService(t, credential.Plain{})

	_, err := svc.UpdateUser(context.Background(), user.UpdateUserRequest{
		ID: 99, Name: "Ghost", Role: "employee", HireDate: yearsAgo(1),
	})

	assert.ErrorIs(t, err, user.ErrUserNotFound)
}

func TestUserService_UpdateUser_HireDateRecomputesRegular(t *testing.T) {
	svc, repo := newTestUserService(t, credential.Plain{})
	ctx := context.Background()

	created, err := svc.CreateUser(ctx, user.CreateUserRequest{
		Name:     "Omar",
		Password: "123",
		Role:     "employee",
		HireDate: yearsAgo(0),
		Balances: user.BalancesInput{Casual: 5},
	})
	require.NoError(t, err)
	require.Equal(t, 15, created.Balances.Regular)

	// hire date moved back ten years, regular omitted
	updated, err := svc.UpdateUser(ctx, user.UpdateUserRequest{
		ID:         created.ID,
		Name:       "Omar",
		Role:       "employee",
		HireDate:   yearsAgo(10),
		Department: "Finance",
		Balances:   user.BalancesInput{Casual: 4},
	})
	require.NoError(t, err)
	assert.Equal(t, 30, updated.Balances.Regular)
	assert.Equal(t, 4, updated.Balances.Casual)
	assert.Equal(t, "Finance", updated.Department)

	// same hire date, regular omitted: stored value kept
	updated, err = svc.UpdateUser(ctx, user.UpdateUserRequest{
		ID: created.ID, Name: "Omar", Role: "employee", HireDate: yearsAgo(10),
	})
	require.NoError(t, err)
	assert.Equal(t, 30, updated.Balances.Regular)

	// empty password keeps the stored credential
	stored, err := repo.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "123", stored.Password)

	_, err = svc.UpdateUser(ctx, user.UpdateUserRequest{
		ID: created.ID, Name: "Omar", Password: "new-pass", Role: "employee", HireDate: yearsAgo(9),
	})
	require.NoError(t, err)
	stored, err = repo.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "new-pass", stored.Password)
	assert.Equal(t, 21, stored.Balances.Regular)
}

func TestUserService_UpdateUser_CannotDemoteManagerWithReports(t *testing.T) {
	svc, _ := newTestUserService(t, credential.Plain{})
	ctx := context.Background()
	manager := createManager(t, svc)

	_, err := svc.CreateUser(ctx, user.CreateUserRequest{
		Name: "Report", Password: "123", Role: "employee", HireDate: yearsAgo(1), ManagerID: &manager.ID,
	})
	require.NoError(t, err)

	_, err = svc.UpdateUser(ctx, user.UpdateUserRequest{
		ID: manager.ID, Name: manager.Name, Role: "employee", HireDate: manager.HireDate,
	})

	assert.ErrorIs(t, err, user.ErrUserHasReports)
}

func TestUserService_UpdateUser_RejectsNameOfAnotherUser(t *testing.T) {
	svc, _ := newTestUserService(t, credential.Plain{})
	ctx := context.Background()
	manager := createManager(t, svc)
	other, err := svc.CreateUser(ctx, user.CreateUserRequest{Name: "Lina", Password: "123", Role: "employee", HireDate: yearsAgo(1)})
	require.NoError(t, err)

	_, err = svc.UpdateUser(ctx, user.UpdateUserRequest{
		ID: other.ID, Name: manager.Name, Role: "employee", HireDate: yearsAgo(1),
	})
	assert.ErrorIs(t, err, user.ErrUserNameExists)

	// keeping one's own name is fine
	_, err = svc.UpdateUser(ctx, user.UpdateUserRequest{
		ID: other.ID, Name: "Lina", Role: "employee", HireDate: yearsAgo(1),
	})
	assert.NoError(t, err)
}

func TestUserService_ListApprovers(t *testing.T) {
	svc, _ := newTestUserService(t, credential.Plain{})
	ctx := context.Background()
	createManager(t, svc)
	_, err := svc.CreateUser(ctx, user.CreateUserRequest{Name: "Emp", Password: "123", Role: "employee", HireDate: yearsAgo(1)})
	require.NoError(t, err)

	approvers, err := svc.ListApprovers(ctx)
	require.NoError(t, err)
	require.Len(t, approvers, 1)
	assert.Equal(t, "Khalid", approvers[0].Name)

	all, err := svc.ListUsers(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 2)

	got, err := svc.GetUser(ctx, all[1].ID)
	require.NoError(t, err)
	assert.Equal(t, "Emp", got.Name)
}
