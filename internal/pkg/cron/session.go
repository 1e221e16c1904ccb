package cron

import (
	"context"
	"log/slog"
	"time"

	"github.com/cmlabs-hris/leave-approval-go/internal/domain/auth"
)

// SessionJobs contains session housekeeping jobs
type SessionJobs struct {
	sessions auth.SessionRepository
	interval time.Duration
	now      func() time.Time
}

func NewSessionJobs(sessions auth.SessionRepository, interval time.Duration) *SessionJobs {
	return &SessionJobs{
		sessions: sessions,
		interval: interval,
		now:      time.Now,
	}
}

// RegisterJobs registers all session-related cron jobs
func (j *SessionJobs) RegisterJobs(scheduler *Scheduler) {
	scheduler.AddJob("purge_revoked_tokens", j.interval, j.PurgeRevokedTokens)
}

// PurgeRevokedTokens forgets revocations of tokens that have expired anyway
func (j *SessionJobs) PurgeRevokedTokens(ctx context.Context) error {
	purged, err := j.sessions.PurgeExpired(ctx, j.now())
	if err != nil {
		return err
	}
	if purged > 0 {
		slog.InfoContext(ctx, "Purged revoked tokens", "count", purged)
	}
	return nil
}
