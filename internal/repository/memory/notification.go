package memory

import (
	"context"
	"fmt"
	"slices"
	"time"

	"github.com/cmlabs-hris/leave-approval-go/internal/domain/notification"
	"github.com/google/uuid"
)

type notificationRepository struct {
	db *DB
}

// NewNotificationRepository creates a new notification repository
func NewNotificationRepository(db *DB) notification.Repository {
	return &notificationRepository{db: db}
}

// Create creates a new notification
func (r *notificationRepository) Create(ctx context.Context, n notification.Notification) (notification.Notification, error) {
	if n.ID == "" {
		n.ID = uuid.New().String()
	}

	err := r.db.write(ctx, func() error {
		r.db.lastNotification++
		n.Seq = r.db.lastNotification
		r.db.notifications = append(r.db.notifications, n)
		return nil
	})
	if err != nil {
		return notification.Notification{}, fmt.Errorf("failed to create notification: %w", err)
	}

	return n, nil
}

// GetByUserID retrieves the inbox of a user, newest first
func (r *notificationRepository) GetByUserID(ctx context.Context, userID int64, unreadOnly bool) ([]notification.Notification, error) {
	result := make([]notification.Notification, 0)
	err := r.db.read(ctx, func() error {
		for _, n := range r.db.notifications {
			if n.UserID != userID || (unreadOnly && n.IsRead) {
				continue
			}
			result = append(result, n)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get notifications: %w", err)
	}

	slices.SortFunc(result, func(a, b notification.Notification) int {
		if a.Newer(b) {
			return -1
		}
		if b.Newer(a) {
			return 1
		}
		return 0
	})

	return result, nil
}

// GetUnreadCount returns the count of unread notifications
func (r *notificationRepository) GetUnreadCount(ctx context.Context, userID int64) (int, error) {
	var count int
	err := r.db.read(ctx, func() error {
		for _, n := range r.db.notifications {
			if n.UserID == userID && !n.IsRead {
				count++
			}
		}
		return nil
	})
	return count, err
}

// MarkAsRead marks the given notifications of userID as read. Ids owned by
// other users are ignored; when none of the ids belongs to userID it fails
// with notification.ErrNotificationNotFound.
func (r *notificationRepository) MarkAsRead(ctx context.Context, ids []string, userID int64, readAt time.Time) (int, error) {
	updated, owned, err := r.markRead(ctx, userID, readAt, func(n notification.Notification) bool {
		return slices.Contains(ids, n.ID)
	})
	if err != nil {
		return 0, err
	}
	if owned == 0 {
		return 0, notification.ErrNotificationNotFound
	}
	return updated, nil
}

// MarkAllAsRead marks all notifications as read for a user
func (r *notificationRepository) MarkAllAsRead(ctx context.Context, userID int64, readAt time.Time) (int, error) {
	updated, _, err := r.markRead(ctx, userID, readAt, func(notification.Notification) bool { return true })
	return updated, err
}

// markRead returns how many notifications changed and how many of userID's
// notifications matched, read or not.
func (r *notificationRepository) markRead(ctx context.Context, userID int64, readAt time.Time, match func(notification.Notification) bool) (updated, owned int, err error) {
	err = r.db.write(ctx, func() error {
		for i, n := range r.db.notifications {
			if n.UserID != userID || !match(n) {
				continue
			}
			owned++
			if n.IsRead {
				continue
			}
			n.IsRead = true
			n.ReadAt = &readAt
			r.db.notifications[i] = n
			updated++
		}
		return nil
	})
	if err != nil {
		return 0, 0, fmt.Errorf("failed to mark notifications as read: %w", err)
	}
	return updated, owned, nil
}
