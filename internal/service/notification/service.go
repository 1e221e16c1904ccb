package notification

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/cmlabs-hris/leave-approval-go/internal/domain/notification"
	"github.com/cmlabs-hris/leave-approval-go/internal/pkg/sse"
	"github.com/cmlabs-hris/leave-approval-go/internal/repository/memory"
)

const eventNotification = "notification"

type service struct {
	repo notification.Repository
	hub  *sse.Hub
	now  func() time.Time
}

// NewNotificationService creates the inbox service. Notifications are stored
// synchronously so they commit or roll back with the workflow change that
// produced them; live subscribers are told only after commit.
func NewNotificationService(repo notification.Repository, hub *sse.Hub) notification.Service {
	return &service{
		repo: repo,
		hub:  hub,
		now:  time.Now,
	}
}

// Notify implements notification.Dispatcher.
func (s *service) Notify(ctx context.Context, req notification.CreateNotificationRequest) (notification.Notification, error) {
	created, err := s.repo.Create(ctx, notification.Notification{
		UserID:    req.RecipientID,
		RequestID: req.RequestID,
		Type:      req.Type,
		Message:   req.Message,
		IsRead:    false,
		CreatedAt: s.now(),
	})
	if err != nil {
		return notification.Notification{}, err
	}

	memory.AfterCommit(ctx, func() {
		s.hub.Publish(created.UserID, sse.Event{
			UserID: created.UserID,
			Event:  eventNotification,
			Data:   notification.NewNotificationResponse(created),
		})
	})

	slog.DebugContext(ctx, "Notification queued", "recipient_id", created.UserID, "type", created.Type)
	return created, nil
}

// GetNotifications returns the inbox of a user, newest first
func (s *service) GetNotifications(ctx context.Context, userID int64, unreadOnly bool) (notification.NotificationListResponse, error) {
	notifications, err := s.repo.GetByUserID(ctx, userID, unreadOnly)
	if err != nil {
		return notification.NotificationListResponse{}, err
	}

	unreadCount, err := s.repo.GetUnreadCount(ctx, userID)
	if err != nil {
		return notification.NotificationListResponse{}, fmt.Errorf("failed to count unread notifications: %w", err)
	}

	responses := make([]notification.NotificationResponse, len(notifications))
	for i, n := range notifications {
		responses[i] = notification.NewNotificationResponse(n)
	}

	return notification.NotificationListResponse{
		Notifications: responses,
		Total:         len(responses),
		UnreadCount:   unreadCount,
	}, nil
}

// GetUnreadCount returns the count of unread notifications
func (s *service) GetUnreadCount(ctx context.Context, userID int64) (int, error) {
	return s.repo.GetUnreadCount(ctx, userID)
}

// MarkAsRead marks specified notifications as read
func (s *service) MarkAsRead(ctx context.Context, userID int64, req notification.MarkAsReadRequest) (int, error) {
	if err := req.Validate(); err != nil {
		return 0, err
	}
	return s.repo.MarkAsRead(ctx, req.NotificationIDs, userID, s.now())
}

// MarkAllAsRead marks all notifications as read for a user
func (s *service) MarkAllAsRead(ctx context.Context, userID int64) (int, error) {
	return s.repo.MarkAllAsRead(ctx, userID, s.now())
}

// Subscribe creates a live subscription for a user
func (s *service) Subscribe(ctx context.Context, userID int64) (<-chan notification.Event, func()) {
	ch, cleanup := s.hub.Subscribe(userID)

	out := make(chan notification.Event, 10)

	go func() {
		defer close(out)
		for {
			select {
			case event, ok := <-ch:
				if !ok {
					return
				}
				resp, ok := event.Data.(notification.NotificationResponse)
				if !ok {
					continue
				}
				select {
				case out <- notification.Event{Event: event.Event, Data: resp}:
				case <-ctx.Done():
					return
				}
			case <-ctx.Done():
				return
			}
		}
	}()

	return out, cleanup
}
