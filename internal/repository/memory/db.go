package memory

import (
	"context"
	"errors"
	"maps"
	"slices"
	"sync"
	"time"

	"github.com/cmlabs-hris/leave-approval-go/internal/domain/notification"
	"github.com/cmlabs-hris/leave-approval-go/internal/domain/request"
	"github.com/cmlabs-hris/leave-approval-go/internal/domain/user"
)

var ErrDatabaseClosed = errors.New("database is closed")

// DB is the application state store. Every collection lives here and is
// reached only through the repositories in this package.
type DB struct {
	mu     sync.RWMutex
	closed bool

	users         []user.User
	requests      []request.Request
	notifications []notification.Notification
	revoked       map[string]time.Time

	lastUserID       int64
	lastRequestID    int64
	lastNotification int64
}

func NewDB() *DB {
	return &DB{
		revoked: make(map[string]time.Time),
	}
}

// Close drops all state. Later calls fail with ErrDatabaseClosed.
func (db *DB) Close() {
	db.mu.Lock()
	defer db.mu.Unlock()

	db.closed = true
	db.users = nil
	db.requests = nil
	db.notifications = nil
	db.revoked = nil
}

type snapshot struct {
	users         []user.User
	requests      []request.Request
	notifications []notification.Notification
	revoked       map[string]time.Time

	lastUserID       int64
	lastRequestID    int64
	lastNotification int64
}

// Records are replaced, never mutated in place, so shallow copies suffice.
func (db *DB) snapshot() snapshot {
	return snapshot{
		users:            slices.Clone(db.users),
		requests:         slices.Clone(db.requests),
		notifications:    slices.Clone(db.notifications),
		revoked:          maps.Clone(db.revoked),
		lastUserID:       db.lastUserID,
		lastRequestID:    db.lastRequestID,
		lastNotification: db.lastNotification,
	}
}

func (db *DB) restore(s snapshot) {
	db.users = s.users
	db.requests = s.requests
	db.notifications = s.notifications
	db.revoked = s.revoked
	db.lastUserID = s.lastUserID
	db.lastRequestID = s.lastRequestID
	db.lastNotification = s.lastNotification
}

// read runs fn under the read lock, or directly when ctx carries a
// transaction on db (which already holds the write lock).
func (db *DB) read(ctx context.Context, fn func() error) error {
	if inTransaction(ctx, db) {
		return fn()
	}

	db.mu.RLock()
	defer db.mu.RUnlock()

	if db.closed {
		return ErrDatabaseClosed
	}
	return fn()
}

func (db *DB) write(ctx context.Context, fn func() error) error {
	if inTransaction(ctx, db) {
		return fn()
	}

	db.mu.Lock()
	defer db.mu.Unlock()

	if db.closed {
		return ErrDatabaseClosed
	}
	return fn()
}
