package memory

import (
	"context"
)

type txKey struct{}

type tx struct {
	db          *DB
	afterCommit []func()
}

func inTransaction(ctx context.Context, db *DB) bool {
	t, ok := ctx.Value(txKey{}).(*tx)
	return ok && t.db == db
}

// WithTransaction executes fn while holding the store's write lock. If fn
// returns an error or panics, every collection is restored to its state before
// the call. A nested call joins the outer transaction.
func WithTransaction(ctx context.Context, db *DB, fn func(ctx context.Context) error) error {
	if inTransaction(ctx, db) {
		return fn(ctx)
	}

	db.mu.Lock()
	if db.closed {
		db.mu.Unlock()
		return ErrDatabaseClosed
	}

	snap := db.snapshot()
	t := &tx{db: db}

	defer func() {
		if p := recover(); p != nil {
			db.restore(snap)
			db.mu.Unlock()
			panic(p)
		}
	}()

	if err := fn(context.WithValue(ctx, txKey{}, t)); err != nil {
		db.restore(snap)
		db.mu.Unlock()
		return err
	}

	db.mu.Unlock()

	// Hooks run outside the lock so they may read the store.
	for _, hook := range t.afterCommit {
		hook()
	}

	return nil
}

// AfterCommit defers fn until the transaction in ctx commits; it is dropped on
// rollback. Without a transaction fn runs immediately.
func AfterCommit(ctx context.Context, fn func()) {
	if t, ok := ctx.Value(txKey{}).(*tx); ok {
		t.afterCommit = append(t.afterCommit, fn)
		return
	}
	fn()
}
