package notification

import (
	"time"
)

// NotificationType represents the type of notification
type NotificationType string

const (
	TypeRequestSubmitted     NotificationType = "request_submitted"
	TypeRequestStatusChanged NotificationType = "request_status_changed"
	TypeRequestAwaiting      NotificationType = "request_awaiting_review"
)

// Notification represents a notification entity
type Notification struct {
	ID        string
	UserID    int64
	RequestID *int64
	Type      NotificationType
	Message   string
	IsRead    bool
	ReadAt    *time.Time
	CreatedAt time.Time

	// Seq is the insertion order, used to break createdAt ties.
	Seq int64
}

// Newer reports whether n sorts before other in an inbox.
func (n Notification) Newer(other Notification) bool {
	if !n.CreatedAt.Equal(other.CreatedAt) {
		return n.CreatedAt.After(other.CreatedAt)
	}
	return n.Seq > other.Seq
}
