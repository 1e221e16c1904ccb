package fixtures

import (
	"context"
	"testing"

	"github.com/cmlabs-hris/leave-approval-go/internal/domain/request"
	"github.com/cmlabs-hris/leave-approval-go/internal/domain/user"
	"github.com/cmlabs-hris/leave-approval-go/internal/pkg/credential"
	"github.com/cmlabs-hris/leave-approval-go/internal/repository/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestSeed_LoadsDemoDirectory(t *testing.T) {
	ctx := context.Background()
	db := memory.NewDB()
	t.Cleanup(db.Close)

	require.NoError(t, Seed(ctx, db, credential.Plain{}))

	users, err := memory.NewUserRepository(db).List(ctx)
	require.NoError(t, err)
	require.Len(t, users, 5)

	for i, u := range users {
		assert.Equal(t, int64(i+1), u.ID)
		assert.Equal(t, DefaultPassword, u.Password)
	}
	assert.Equal(t, user.RoleDean, users[4].Role)
	assert.False(t, users[4].HasManager())
	assert.Equal(t, int64(3), *users[0].ManagerID)

	reqs, err := memory.NewRequestRepository(db).List(ctx)
	require.NoError(t, err)
	require.Len(t, reqs, 3)

	// newest first: request 3, then 1, then 2
	assert.Equal(t, []int64{3, 1, 2}, []int64{reqs[0].ID, reqs[1].ID, reqs[2].ID})
	assert.Equal(t, request.StatusApproved, reqs[0].Status)
	require.NotNil(t, reqs[0].DeanApprovalNotes)
	assert.Equal(t, request.TypePermission, reqs[0].Type())
}

func TestSeed_ManagersAreApprovers(t *testing.T) {
	users := DefaultUsers()

	for _, u := range users {
		if !u.HasManager() {
			continue
		}
		manager := users[*u.ManagerID-1]
		assert.True(t, manager.Role.IsApprover(), "manager of %s must be an approver", u.Name)
	}
}

func TestSeed_BcryptMode(t *testing.T) {
	ctx := context.Background()
	db := memory.NewDB()
	t.Cleanup(db.Close)

	require.NoError(t, Seed(ctx, db, credential.Bcrypt{Cost: bcrypt.MinCost}))

	u, err := memory.NewUserRepository(db).GetByID(ctx, 1)
	require.NoError(t, err)
	assert.NoError(t, credential.Bcrypt{}.Compare(u.Password, DefaultPassword))
}
