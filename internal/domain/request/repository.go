package request

import (
	"context"
)

type RequestRepository interface {
	Create(ctx context.Context, newRequest Request) (Request, error)
	GetByID(ctx context.Context, id int64) (Request, error)
	// List returns every request, newest first.
	List(ctx context.Context) ([]Request, error)
	ListByUserID(ctx context.Context, userID int64) ([]Request, error)
	CountByUserAndStatus(ctx context.Context, userID int64, status Status) (int, error)
	Update(ctx context.Context, r Request) error
}
