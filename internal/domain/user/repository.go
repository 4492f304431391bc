package user

import "context"

type UserRepository interface {
	// ListActive returns all non-deleted users.
	ListActive(ctx context.Context) ([]User, error)
	GetByID(ctx context.Context, id string) (User, error)
}
