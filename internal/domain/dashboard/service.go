package dashboard

import "context"

// DashboardService defines the interface for dashboard operations
type DashboardService interface {
	// GetDashboard collects balances and counters concurrently
	GetDashboard(ctx context.Context, userID int64) (DashboardResponse, error)
}
