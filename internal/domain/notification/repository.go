package notification

import (
	"context"
	"time"
)

// Repository defines the notification repository interface
type Repository interface {
	Create(ctx context.Context, n Notification) (Notification, error)
	// GetByUserID returns the inbox of a user, newest first
	GetByUserID(ctx context.Context, userID int64, unreadOnly bool) ([]Notification, error)
	GetUnreadCount(ctx context.Context, userID int64) (int, error)
	// MarkAsRead fails with ErrNotificationNotFound when no id belongs to userID
	MarkAsRead(ctx context.Context, ids []string, userID int64, readAt time.Time) (int, error)
	MarkAllAsRead(ctx context.Context, userID int64, readAt time.Time) (int, error)
}
