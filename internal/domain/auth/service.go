package auth

import (
	"context"

	"github.com/cmlabs-hris/leave-approval-go/internal/domain/user"
)

type AuthService interface {
	Login(ctx context.Context, req LoginRequest) (TokenResponse, error)
	// Logout revokes the session token until it would have expired anyway.
	Logout(ctx context.Context, session Session) error
	Me(ctx context.Context, userID int64) (user.UserResponse, error)
}
