package user

import (
	"context"
)

type UserService interface {
	CreateUser(ctx context.Context, req CreateUserRequest) (UserResponse, error)
	UpdateUser(ctx context.Context, req UpdateUserRequest) (UserResponse, error)
	GetUser(ctx context.Context, id int64) (UserResponse, error)
	ListUsers(ctx context.Context) ([]UserResponse, error)
	// ListApprovers returns the users that can be referenced as a manager.
	ListApprovers(ctx context.Context) ([]UserResponse, error)
}
