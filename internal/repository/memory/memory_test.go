package memory

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/cmlabs-hris/leave-approval-go/internal/domain/notification"
	"github.com/cmlabs-hris/leave-approval-go/internal/domain/request"
	"github.com/cmlabs-hris/leave-approval-go/internal/domain/user"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWithTransaction_RollbackRestoresState(t *testing.T) {
	ctx := context.Background()
	db := NewDB()
	users := NewUserRepository(db)
	notifications := NewNotificationRepository(db)

	existing, err := users.Create(ctx, user.User{Name: "Sara", Role: user.RoleEmployee})
	require.NoError(t, err)

	// Act
	boom := errors.New("boom")
	err = WithTransaction(ctx, db, func(ctx context.Context) error {
		existing.Department = "Changed"
		if err := users.Update(ctx, existing); err != nil {
			return err
		}
		if _, err := users.Create(ctx, user.User{Name: "Ghost"}); err != nil {
			return err
		}
		if _, err := notifications.Create(ctx, notification.Notification{UserID: existing.ID, Message: "x"}); err != nil {
			return err
		}
		return boom
	})

	// Assert
	assert.ErrorIs(t, err, boom)

	all, err := users.List(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Empty(t, all[0].Department)

	inbox, err := notifications.GetByUserID(ctx, existing.ID, false)
	require.NoError(t, err)
	assert.Empty(t, inbox)

	// id counters were rolled back too
	next, err := users.Create(ctx, user.User{Name: "Omar"})
	require.NoError(t, err)
	assert.Equal(t, int64(2), next.ID)
}

func TestWithTransaction_PanicRollsBack(t *testing.T) {
	ctx := context.Background()
	db := NewDB()
	users := NewUserRepository(db)

	assert.Panics(t, func() {
		_ = WithTransaction(ctx, db, func(ctx context.Context) error {
			_, _ = users.Create(ctx, user.User{Name: "Ghost"})
			panic("crash")
		})
	})

	all, err := users.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, all)
}

func TestWithTransaction_AfterCommitHooks(t *testing.T) {
	ctx := context.Background()
	db := NewDB()

	var ran []string
	err := WithTransaction(ctx, db, func(ctx context.Context) error {
		AfterCommit(ctx, func() { ran = append(ran, "first") })
		// nested call joins the outer transaction
		return WithTransaction(ctx, db, func(ctx context.Context) error {
			AfterCommit(ctx, func() { ran = append(ran, "second") })
			assert.Empty(t, ran)
			return nil
		})
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"first", "second"}, ran)

	ran = nil
	_ = WithTransaction(ctx, db, func(ctx context.Context) error {
		AfterCommit(ctx, func() { ran = append(ran, "dropped") })
		return errors.New("rollback")
	})
	assert.Empty(t, ran)

	AfterCommit(ctx, func() { ran = append(ran, "immediate") })
	assert.Equal(t, []string{"immediate"}, ran)
}

func TestDB_Close(t *testing.T) {
	ctx := context.Background()
	db := NewDB()
	users := NewUserRepository(db)
	_, err := users.Create(ctx, user.User{Name: "Sara"})
	require.NoError(t, err)

	db.Close()

	_, err = users.List(ctx)
	assert.ErrorIs(t, err, ErrDatabaseClosed)
	err = WithTransaction(ctx, db, func(context.Context) error { return nil })
	assert.ErrorIs(t, err, ErrDatabaseClosed)
}

func TestUserRepository_Lookups(t *testing.T) {
	ctx := context.Background()
	db := NewDB()
	repo := NewUserRepository(db)

	first, _ := repo.Create(ctx, user.User{Name: "Hana", Role: user.RoleHRManager})
	_, _ = repo.Create(ctx, user.User{Name: "Bilal", Role: user.RoleHRManager})

	hr, err := repo.FirstByRole(ctx, user.RoleHRManager)
	require.NoError(t, err)
	assert.Equal(t, first.ID, hr.ID)

	_, err = repo.FirstByRole(ctx, user.RoleDean)
	assert.ErrorIs(t, err, user.ErrUserNotFound)

	exists, err := repo.ExistsByName(ctx, "hana", 0)
	require.NoError(t, err)
	assert.True(t, exists)

	exists, err = repo.ExistsByName(ctx, "Hana", first.ID)
	require.NoError(t, err)
	assert.False(t, exists)

	_, err = repo.GetByName(ctx, "Nobody")
	assert.ErrorIs(t, err, user.ErrUserNotFound)

	err = repo.Update(ctx, user.User{ID: 99})
	assert.ErrorIs(t, err, user.ErrUserNotFound)
}

func TestRequestRepository_NewestFirst(t *testing.T) {
	ctx := context.Background()
	db := NewDB()
	repo := NewRequestRepository(db)
	base := time.Date(2026, 4, 1, 8, 0, 0, 0, time.UTC)

	older, _ := repo.Create(ctx, request.Request{UserID: 1, Status: request.StatusPending, CreatedAt: base})
	newer, _ := repo.Create(ctx, request.Request{UserID: 1, Status: request.StatusApproved, CreatedAt: base.Add(time.Hour)})
	sameTime, _ := repo.Create(ctx, request.Request{UserID: 2, Status: request.StatusPending, CreatedAt: base.Add(time.Hour)})

	all, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, []int64{sameTime.ID, newer.ID, older.ID}, []int64{all[0].ID, all[1].ID, all[2].ID})

	mine, err := repo.ListByUserID(ctx, 1)
	require.NoError(t, err)
	assert.Len(t, mine, 2)

	pending, err := repo.CountByUserAndStatus(ctx, 1, request.StatusPending)
	require.NoError(t, err)
	assert.Equal(t, 1, pending)

	_, err = repo.GetByID(ctx, 42)
	assert.ErrorIs(t, err, request.ErrRequestNotFound)
}

func TestNotificationRepository_OrderingAndReadState(t *testing.T) {
	ctx := context.Background()
	db := NewDB()
	repo := NewNotificationRepository(db)
	at := time.Date(2026, 4, 1, 8, 0, 0, 0, time.UTC)

	a, _ := repo.Create(ctx, notification.Notification{UserID: 1, Message: "a", CreatedAt: at})
	b, _ := repo.Create(ctx, notification.Notification{UserID: 1, Message: "b", CreatedAt: at})
	_, _ = repo.Create(ctx, notification.Notification{UserID: 1, Message: "c", CreatedAt: at.Add(-time.Minute)})
	other, _ := repo.Create(ctx, notification.Notification{UserID: 2, Message: "other", CreatedAt: at})

	assert.NotEmpty(t, a.ID)
	assert.NotEqual(t, a.ID, b.ID)

	inbox, err := repo.GetByUserID(ctx, 1, false)
	require.NoError(t, err)
	require.Len(t, inbox, 3)
	assert.Equal(t, []string{"b", "a", "c"}, []string{inbox[0].Message, inbox[1].Message, inbox[2].Message})
	for i := 1; i < len(inbox); i++ {
		assert.False(t, inbox[i].CreatedAt.After(inbox[i-1].CreatedAt))
	}

	readAt := at.Add(time.Hour)
	updated, err := repo.MarkAsRead(ctx, []string{a.ID, other.ID}, 1, readAt)
	require.NoError(t, err)
	assert.Equal(t, 1, updated)

	unread, err := repo.GetUnreadCount(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, 2, unread)

	_, err = repo.MarkAsRead(ctx, []string{other.ID, "missing"}, 1, readAt)
	assert.ErrorIs(t, err, notification.ErrNotificationNotFound)

	otherUnread, err := repo.GetUnreadCount(ctx, 2)
	require.NoError(t, err)
	assert.Equal(t, 1, otherUnread)

	unreadOnly, err := repo.GetByUserID(ctx, 1, true)
	require.NoError(t, err)
	assert.Len(t, unreadOnly, 2)

	updated, err = repo.MarkAllAsRead(ctx, 1, readAt)
	require.NoError(t, err)
	assert.Equal(t, 2, updated)

	otherUnread, err = repo.GetUnreadCount(ctx, 2)
	require.NoError(t, err)
	assert.Equal(t, 1, otherUnread)
}

func TestSessionRepository_RevokeAndPurge(t *testing.T) {
	ctx := context.Background()
	db := NewDB()
	repo := NewSessionRepository(db)
	now := time.Date(2026, 4, 1, 8, 0, 0, 0, time.UTC)

	require.NoError(t, repo.Revoke(ctx, "expired-token", now.Add(-time.Minute)))
	require.NoError(t, repo.Revoke(ctx, "live-token", now.Add(time.Hour)))

	revoked, err := repo.IsRevoked(ctx, "live-token")
	require.NoError(t, err)
	assert.True(t, revoked)

	revoked, err = repo.IsRevoked(ctx, "never-seen")
	require.NoError(t, err)
	assert.False(t, revoked)

	purged, err := repo.PurgeExpired(ctx, now)
	require.NoError(t, err)
	assert.Equal(t, 1, purged)

	revoked, _ = repo.IsRevoked(ctx, "live-token")
	assert.True(t, revoked)
}
