package memory

import (
	"context"
	"crypto/sha256"
	"encoding/base64"
	"time"

	"github.com/cmlabs-hris/leave-approval-go/internal/domain/auth"
)

type sessionRepositoryImpl struct {
	db *DB
}

// NewSessionRepository creates a new instance of auth.SessionRepository.
func NewSessionRepository(db *DB) auth.SessionRepository {
	return &sessionRepositoryImpl{db: db}
}

// hashToken hashes the input string using SHA256 and encodes the result in base64.
func (s *sessionRepositoryImpl) hashToken(input string) string {
	hash := sha256.Sum256([]byte(input))
	return base64.StdEncoding.EncodeToString(hash[:])
}

func (s *sessionRepositoryImpl) Revoke(ctx context.Context, token string, expiresAt time.Time) error {
	key := s.hashToken(token)
	return s.db.write(ctx, func() error {
		s.db.revoked[key] = expiresAt
		return nil
	})
}

func (s *sessionRepositoryImpl) IsRevoked(ctx context.Context, token string) (bool, error) {
	key := s.hashToken(token)
	var revoked bool
	err := s.db.read(ctx, func() error {
		_, revoked = s.db.revoked[key]
		return nil
	})
	return revoked, err
}

func (s *sessionRepositoryImpl) PurgeExpired(ctx context.Context, now time.Time) (int, error) {
	var purged int
	err := s.db.write(ctx, func() error {
		for key, expiresAt := range s.db.revoked {
			if !expiresAt.After(now) {
				delete(s.db.revoked, key)
				purged++
			}
		}
		return nil
	})
	return purged, err
}
