package dashboard

import "github.com/cmlabs-hris/leave-approval-go/internal/domain/user"

// DashboardResponse is the landing page summary of the signed-in user
type DashboardResponse struct {
	Balances            user.Balances `json:"balances"`
	PendingRequests     int           `json:"pending_requests"`     // own requests still in pending
	ActionableRequests  int           `json:"actionable_requests"`  // awaiting this user's review
	UnreadNotifications int           `json:"unread_notifications"` // inbox entries not yet read
}
