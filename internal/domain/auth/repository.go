package auth

import (
	"context"
	"time"
)

// SessionRepository tracks access tokens revoked by logout.
type SessionRepository interface {
	Revoke(ctx context.Context, token string, expiresAt time.Time) error
	IsRevoked(ctx context.Context, token string) (bool, error)
	// PurgeExpired forgets revocations whose token has expired by now.
	PurgeExpired(ctx context.Context, now time.Time) (int, error)
}
