package notification

import (
	"context"
)

// Dispatcher appends notifications as a side effect of workflow changes.
// Notify joins the caller's transaction; realtime delivery happens after commit.
type Dispatcher interface {
	Notify(ctx context.Context, req CreateNotificationRequest) (Notification, error)
}

// Service defines the notification service interface
type Service interface {
	Dispatcher

	GetNotifications(ctx context.Context, userID int64, unreadOnly bool) (NotificationListResponse, error)
	GetUnreadCount(ctx context.Context, userID int64) (int, error)
	MarkAsRead(ctx context.Context, userID int64, req MarkAsReadRequest) (int, error)
	MarkAllAsRead(ctx context.Context, userID int64) (int, error)

	// Subscribe streams the user's new notifications until ctx ends or cleanup is called
	Subscribe(ctx context.Context, userID int64) (<-chan Event, func())
}
