package request

import (
	"context"
)

// RequestService is the request workflow. actorID identifies the signed-in user.
type RequestService interface {
	Create(ctx context.Context, req CreateRequestRequest) (RequestResponse, error)
	UpdateStatus(ctx context.Context, actorID int64, req UpdateStatusRequest) (RequestResponse, error)
	Approve(ctx context.Context, actorID, requestID int64, notes string) (RequestResponse, error)
	Reject(ctx context.Context, actorID, requestID int64, notes string) (RequestResponse, error)

	GetRequest(ctx context.Context, actorID, requestID int64) (RequestResponse, error)
	ListMyRequests(ctx context.Context, actorID int64) ([]RequestResponse, error)
	ListActionable(ctx context.Context, actorID int64) ([]RequestResponse, error)
}
