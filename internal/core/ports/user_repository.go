package ports

import (
	"context"

	"github.com/webshop/webshop-api/internal/core/domain"
)

// UserRepository defines persistence operations for user records.
//
// Lookups signal absence with domain.ErrUserNotFound; any other error is a
// store fault. Insert reports a uniqueness violation on email with
// domain.ErrEmailInUse — the collection's unique index is the source of
// truth, callers may only use FindByEmail as an advisory pre-check.
type UserRepository interface {
	FindAll(ctx context.Context) ([]*domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	Insert(ctx context.Context, user *domain.User) (*domain.User, error)
	// UpdateRole atomically sets the role of the record and returns the
	// updated document.
	UpdateRole(ctx context.Context, id string, role domain.Role) (*domain.User, error)
	// Delete removes the record and returns the removed document.
	Delete(ctx context.Context, id string) (*domain.User, error)
}
