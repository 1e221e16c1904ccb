package request

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/cmlabs-hris/leave-approval-go/internal/domain/notification"
	"github.com/cmlabs-hris/leave-approval-go/internal/domain/request"
	"github.com/cmlabs-hris/leave-approval-go/internal/domain/user"
	"github.com/cmlabs-hris/leave-approval-go/internal/repository/memory"
)

type RequestService struct {
	db       *memory.DB
	requests request.RequestRepository
	users    user.UserRepository
	notifier notification.Dispatcher
	now      func() time.Time
}

func NewRequestService(db *memory.DB, requestRepository request.RequestRepository, userRepository user.UserRepository, notifier notification.Dispatcher) *RequestService {
	return &RequestService{
		db:       db,
		requests: requestRepository,
		users:    userRepository,
		notifier: notifier,
		now:      time.Now,
	}
}

// Create stores a new pending request and tells the first reviewer about it.
func (s *RequestService) Create(ctx context.Context, req request.CreateRequestRequest) (request.RequestResponse, error) {
	if err := req.Validate(); err != nil {
		return request.RequestResponse{}, err
	}

	var created request.Request
	err := memory.WithTransaction(ctx, s.db, func(ctx context.Context) error {
		requester, err := s.users.GetByID(ctx, req.UserID)
		if err != nil {
			return fmt.Errorf("failed to get requester: %w", err)
		}

		now := s.now()
		created, err = s.requests.Create(ctx, request.Request{
			UserID:    requester.ID,
			Status:    request.StatusPending,
			Reason:    req.Reason,
			ManagerID: cloneID(requester.ManagerID),
			Details:   req.Details(),
			CreatedAt: now,
			UpdatedAt: now,
		})
		if err != nil {
			return err
		}

		reviewer, ok, err := s.firstReviewer(ctx, requester)
		if err != nil {
			return err
		}
		if !ok {
			slog.WarnContext(ctx, "No reviewer found for new request, notification skipped", "request_id", created.ID)
			return nil
		}

		return s.notify(ctx, reviewer.ID, created.ID, notification.TypeRequestSubmitted,
			fmt.Sprintf("New request from %s", requester.Name))
	})
	if err != nil {
		return request.RequestResponse{}, err
	}

	slog.InfoContext(ctx, "Request created", "request_id", created.ID, "user_id", created.UserID, "type", created.Type())
	return request.NewRequestResponse(created), nil
}

// UpdateStatus moves a request to the target status chosen by the caller.
func (s *RequestService) UpdateStatus(ctx context.Context, actorID int64, req request.UpdateStatusRequest) (request.RequestResponse, error) {
	if err := req.Validate(); err != nil {
		return request.RequestResponse{}, err
	}

	target := request.Status(req.Status)
	action, err := request.ActionForTarget(target)
	if err != nil {
		return request.RequestResponse{}, err
	}

	return s.transition(ctx, actorID, req.RequestID, action, req.Notes, &target)
}

// Approve advances a request to the next stage for the actor's role.
func (s *RequestService) Approve(ctx context.Context, actorID, requestID int64, notes string) (request.RequestResponse, error) {
	return s.transition(ctx, actorID, requestID, request.ActionApprove, notes, nil)
}

// Reject ends a request. notes becomes the rejection reason.
func (s *RequestService) Reject(ctx context.Context, actorID, requestID int64, notes string) (request.RequestResponse, error) {
	return s.transition(ctx, actorID, requestID, request.ActionReject, notes, nil)
}

func (s *RequestService) transition(ctx context.Context, actorID, requestID int64, action request.Action, notes string, target *request.Status) (request.RequestResponse, error) {
	var (
		updated  request.Request
		decision request.Decision
	)

	err := memory.WithTransaction(ctx, s.db, func(ctx context.Context) error {
		actor, err := s.users.GetByID(ctx, actorID)
		if err != nil {
			return fmt.Errorf("failed to get actor: %w", err)
		}

		current, err := s.requests.GetByID(ctx, requestID)
		if err != nil {
			return err
		}

		if current.Status.IsTerminal() {
			return request.ErrRequestFinalized
		}
		if !request.IsActionable(actor, current, s.lookup(ctx)) {
			return request.ErrNotActionable
		}

		decision, err = request.Decide(current.Status, actor.Role, action, notes)
		if err != nil {
			return err
		}
		if target != nil && decision.To != *target {
			return request.ErrInvalidTransition
		}

		updated = request.Apply(current, decision, s.now())
		if err := s.requests.Update(ctx, updated); err != nil {
			return fmt.Errorf("failed to update request: %w", err)
		}

		return s.dispatchTransition(ctx, updated, decision)
	})
	if err != nil {
		return request.RequestResponse{}, err
	}

	slog.InfoContext(ctx, "Request status updated",
		"request_id", updated.ID,
		"actor_id", actorID,
		"from", decision.From,
		"to", decision.To,
	)
	return request.NewRequestResponse(updated), nil
}

// dispatchTransition sends the requester update and, when the chain
// continues, the escalation to the next reviewer.
func (s *RequestService) dispatchTransition(ctx context.Context, r request.Request, d request.Decision) error {
	requester, err := s.users.GetByID(ctx, r.UserID)
	switch {
	case errors.Is(err, user.ErrUserNotFound):
		slog.WarnContext(ctx, "Requester not found, status notification skipped", "request_id", r.ID)
	case err != nil:
		return fmt.Errorf("failed to get requester: %w", err)
	default:
		err := s.notify(ctx, requester.ID, r.ID, notification.TypeRequestStatusChanged,
			fmt.Sprintf("Your request status was updated to: %s", d.To))
		if err != nil {
			return err
		}
	}

	if d.Escalate == "" {
		return nil
	}

	reviewer, err := s.users.FirstByRole(ctx, d.Escalate)
	if errors.Is(err, user.ErrUserNotFound) {
		slog.WarnContext(ctx, "No reviewer holds role, escalation skipped", "request_id", r.ID, "role", d.Escalate)
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to find %s: %w", d.Escalate, err)
	}

	stage := "the direct manager"
	if d.To == request.StatusHRApproved {
		stage = "HR"
	}
	return s.notify(ctx, reviewer.ID, r.ID, notification.TypeRequestAwaiting,
		fmt.Sprintf("Request from %s approved by %s is awaiting your review", requester.Name, stage))
}

// firstReviewer is the requester's manager, or the first HR manager when the
// requester reports to nobody.
func (s *RequestService) firstReviewer(ctx context.Context, requester user.User) (user.User, bool, error) {
	var (
		reviewer user.User
		err      error
	)
	if requester.HasManager() {
		reviewer, err = s.users.GetByID(ctx, *requester.ManagerID)
	} else {
		reviewer, err = s.users.FirstByRole(ctx, user.RoleHRManager)
	}

	if errors.Is(err, user.ErrUserNotFound) {
		return user.User{}, false, nil
	}
	if err != nil {
		return user.User{}, false, fmt.Errorf("failed to find reviewer: %w", err)
	}
	return reviewer, true, nil
}

func (s *RequestService) notify(ctx context.Context, recipientID, requestID int64, typ notification.NotificationType, message string) error {
	_, err := s.notifier.Notify(ctx, notification.CreateNotificationRequest{
		RecipientID: recipientID,
		RequestID:   &requestID,
		Type:        typ,
		Message:     message,
	})
	if err != nil {
		return fmt.Errorf("failed to notify user %d: %w", recipientID, err)
	}
	return nil
}

// GetRequest returns a request its owner or any reviewer may see.
func (s *RequestService) GetRequest(ctx context.Context, actorID, requestID int64) (request.RequestResponse, error) {
	actor, err := s.users.GetByID(ctx, actorID)
	if err != nil {
		return request.RequestResponse{}, fmt.Errorf("failed to get actor: %w", err)
	}

	r, err := s.requests.GetByID(ctx, requestID)
	if err != nil {
		return request.RequestResponse{}, err
	}

	if !request.CanView(actor, r) {
		return request.RequestResponse{}, request.ErrAccessDenied
	}
	return request.NewRequestResponse(r), nil
}

// ListMyRequests returns the actor's own requests, newest first.
func (s *RequestService) ListMyRequests(ctx context.Context, actorID int64) ([]request.RequestResponse, error) {
	reqs, err := s.requests.ListByUserID(ctx, actorID)
	if err != nil {
		return nil, fmt.Errorf("failed to list requests: %w", err)
	}
	return request.NewRequestResponses(reqs), nil
}

// ListActionable returns what the actor may approve or reject right now,
// newest first. Membership is recomputed on every call.
func (s *RequestService) ListActionable(ctx context.Context, actorID int64) ([]request.RequestResponse, error) {
	actor, err := s.users.GetByID(ctx, actorID)
	if err != nil {
		return nil, fmt.Errorf("failed to get actor: %w", err)
	}

	all, err := s.requests.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list requests: %w", err)
	}

	return request.NewRequestResponses(request.Actionable(actor, all, s.lookup(ctx))), nil
}

func (s *RequestService) lookup(ctx context.Context) request.RequesterLookup {
	return func(userID int64) (user.User, bool) {
		u, err := s.users.GetByID(ctx, userID)
		return u, err == nil
	}
}

func cloneID(id *int64) *int64 {
	if id == nil {
		return nil
	}
	v := *id
	return &v
}
