package dashboard

import (
	"context"
	"fmt"

	"github.com/cmlabs-hris/leave-approval-go/internal/domain/dashboard"
	"github.com/cmlabs-hris/leave-approval-go/internal/domain/notification"
	"github.com/cmlabs-hris/leave-approval-go/internal/domain/request"
	"github.com/cmlabs-hris/leave-approval-go/internal/domain/user"
	"golang.org/x/sync/errgroup"
)

type DashboardServiceImpl struct {
	users         user.UserRepository
	requests      request.RequestRepository
	workflow      request.RequestService
	notifications notification.Service
}

func NewDashboardService(users user.UserRepository, requests request.RequestRepository, workflow request.RequestService, notifications notification.Service) dashboard.DashboardService {
	return &DashboardServiceImpl{
		users:         users,
		requests:      requests,
		workflow:      workflow,
		notifications: notifications,
	}
}

// GetDashboard returns combined dashboard data using parallel goroutines
func (s *DashboardServiceImpl) GetDashboard(ctx context.Context, userID int64) (dashboard.DashboardResponse, error) {
	var (
		balances   user.Balances
		pending    int
		actionable int
		unread     int
	)

	g, gCtx := errgroup.WithContext(ctx)

	// 1. Leave balances
	g.Go(func() error {
		u, err := s.users.GetByID(gCtx, userID)
		if err != nil {
			return err
		}
		balances = u.Balances
		return nil
	})

	// 2. Own requests still waiting on a first decision
	g.Go(func() error {
		count, err := s.requests.CountByUserAndStatus(gCtx, userID, request.StatusPending)
		if err != nil {
			return fmt.Errorf("failed to count pending requests: %w", err)
		}
		pending = count
		return nil
	})

	// 3. Requests awaiting this user's review
	g.Go(func() error {
		reqs, err := s.workflow.ListActionable(gCtx, userID)
		if err != nil {
			return err
		}
		actionable = len(reqs)
		return nil
	})

	// 4. Unread notifications
	g.Go(func() error {
		count, err := s.notifications.GetUnreadCount(gCtx, userID)
		if err != nil {
			return fmt.Errorf("failed to count unread notifications: %w", err)
		}
		unread = count
		return nil
	})

	if err := g.Wait(); err != nil {
		return dashboard.DashboardResponse{}, err
	}

	return dashboard.DashboardResponse{
		Balances:            balances,
		PendingRequests:     pending,
		ActionableRequests:  actionable,
		UnreadNotifications: unread,
	}, nil
}
