package memory

import (
	"cmp"
	"context"
	"fmt"
	"slices"

	"github.com/cmlabs-hris/leave-approval-go/internal/domain/request"
)

type requestRepositoryImpl struct {
	db *DB
}

func NewRequestRepository(db *DB) request.RequestRepository {
	return &requestRepositoryImpl{db: db}
}

func (r *requestRepositoryImpl) Create(ctx context.Context, newRequest request.Request) (request.Request, error) {
	err := r.db.write(ctx, func() error {
		r.db.lastRequestID++
		newRequest.ID = r.db.lastRequestID
		r.db.requests = append(r.db.requests, newRequest)
		return nil
	})
	if err != nil {
		return request.Request{}, fmt.Errorf("failed to create request: %w", err)
	}

	return newRequest, nil
}

func (r *requestRepositoryImpl) GetByID(ctx context.Context, id int64) (request.Request, error) {
	var found request.Request
	err := r.db.read(ctx, func() error {
		i := r.indexOf(id)
		if i < 0 {
			return request.ErrRequestNotFound
		}
		found = r.db.requests[i]
		return nil
	})
	return found, err
}

func (r *requestRepositoryImpl) List(ctx context.Context) ([]request.Request, error) {
	return r.filter(ctx, func(request.Request) bool { return true })
}

func (r *requestRepositoryImpl) ListByUserID(ctx context.Context, userID int64) ([]request.Request, error) {
	return r.filter(ctx, func(req request.Request) bool { return req.UserID == userID })
}

func (r *requestRepositoryImpl) CountByUserAndStatus(ctx context.Context, userID int64, status request.Status) (int, error) {
	var count int
	err := r.db.read(ctx, func() error {
		for _, req := range r.db.requests {
			if req.UserID == userID && req.Status == status {
				count++
			}
		}
		return nil
	})
	return count, err
}

func (r *requestRepositoryImpl) Update(ctx context.Context, req request.Request) error {
	return r.db.write(ctx, func() error {
		i := r.indexOf(req.ID)
		if i < 0 {
			return request.ErrRequestNotFound
		}
		r.db.requests[i] = req
		return nil
	})
}

// filter returns the matching requests, newest first.
func (r *requestRepositoryImpl) filter(ctx context.Context, keep func(request.Request) bool) ([]request.Request, error) {
	result := make([]request.Request, 0)
	err := r.db.read(ctx, func() error {
		for _, req := range r.db.requests {
			if keep(req) {
				result = append(result, req)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	slices.SortStableFunc(result, func(a, b request.Request) int {
		if c := b.CreatedAt.Compare(a.CreatedAt); c != 0 {
			return c
		}
		return cmp.Compare(b.ID, a.ID)
	})

	return result, nil
}

func (r *requestRepositoryImpl) indexOf(id int64) int {
	return slices.IndexFunc(r.db.requests, func(req request.Request) bool {
		return req.ID == id
	})
}
