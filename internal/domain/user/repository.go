package user

import (
	"context"
)

type UserRepository interface {
	Create(ctx context.Context, newUser User) (User, error)
	GetByID(ctx context.Context, id int64) (User, error)
	GetByName(ctx context.Context, name string) (User, error)
	// FirstByRole returns the earliest registered user holding role.
	FirstByRole(ctx context.Context, role Role) (User, error)
	List(ctx context.Context) ([]User, error)
	ExistsByName(ctx context.Context, name string, excludeID int64) (bool, error)
	Update(ctx context.Context, u User) error
}
