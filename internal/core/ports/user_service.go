package ports

import (
	"context"

	"github.com/webshop/webshop-api/internal/core/domain"
)

// RegisterInput carries the registration payload. Role is intentionally
// absent: every new account is a customer regardless of what was posted.
type RegisterInput struct {
	Name     string
	Email    string
	Password string
}

// UpdateRoleInput identifies the admin performing a role change and the
// target record. ActorID is compared against TargetID before any store
// access so a self-targeting request cannot probe record existence.
type UpdateRoleInput struct {
	ActorID  string
	TargetID string
	Role     domain.Role
}

// DeleteInput identifies the admin performing a delete and the target record.
type DeleteInput struct {
	ActorID  string
	TargetID string
}

// UserService defines use-case operations over the user collection.
type UserService interface {
	Register(ctx context.Context, in RegisterInput) (*domain.User, error)
	List(ctx context.Context) ([]*domain.User, error)
	Get(ctx context.Context, id string) (*domain.User, error)
	UpdateRole(ctx context.Context, in UpdateRoleInput) (*domain.User, error)
	Delete(ctx context.Context, in DeleteInput) (*domain.User, error)
}
