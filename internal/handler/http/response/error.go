package response

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/cmlabs-hris/leave-approval-go/internal/domain/auth"
	"github.com/cmlabs-hris/leave-approval-go/internal/domain/notification"
	"github.com/cmlabs-hris/leave-approval-go/internal/domain/request"
	"github.com/cmlabs-hris/leave-approval-go/internal/domain/user"
	"github.com/cmlabs-hris/leave-approval-go/internal/pkg/validator"
	"github.com/cmlabs-hris/leave-approval-go/internal/repository/memory"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Auth domain errors
	case errors.Is(err, auth.ErrInvalidCredentials):
		Unauthorized(w, err.Error())
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, "Invalid or expired token")
	case errors.Is(err, auth.ErrTokenRevoked):
		Unauthorized(w, "Token revoked")

	// User domain errors
	case errors.Is(err, user.ErrUserNotFound):
		NotFound(w, "User not found")
	case errors.Is(err, user.ErrUserNameExists):
		Conflict(w, "User name already exists")
	case errors.Is(err, user.ErrInvalidManager), errors.Is(err, user.ErrSelfManaged):
		ValidationError(w, map[string]string{"manager_id": err.Error()})
	case errors.Is(err, user.ErrUserHasReports):
		ValidationError(w, map[string]string{"role": err.Error()})

	// Request domain errors
	case errors.Is(err, request.ErrRequestNotFound):
		NotFound(w, "Request not found")
	case errors.Is(err, request.ErrNotActionable):
		Forbidden(w, "Request is not awaiting your review")
	case errors.Is(err, request.ErrAccessDenied):
		Forbidden(w, "You are not allowed to view this request")
	case errors.Is(err, request.ErrRequestFinalized):
		Conflict(w, "Request already finalized")
	case errors.Is(err, request.ErrInvalidTransition):
		Conflict(w, "Status change not allowed for your role")

	// Notification domain errors
	case errors.Is(err, notification.ErrNotificationNotFound):
		NotFound(w, "Notification not found")

	case errors.Is(err, memory.ErrDatabaseClosed):
		writeJSON(w, http.StatusServiceUnavailable, Response{
			Success: false,
			Error: &ErrorDetail{
				Code:    "SERVICE_UNAVAILABLE",
				Message: "Service is shutting down",
			},
		})

	// Default
	default:
		slog.Error("Unhandled error", "error", err)
		InternalServerError(w, "An unexpected error occurred")
	}
}
