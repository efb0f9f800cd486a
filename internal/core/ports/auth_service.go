package ports

import (
	"context"

	"github.com/webshop/webshop-api/internal/core/domain"
)

// Authenticator resolves HTTP Basic credentials to a user record.
//
// A nil user with a nil error means "no such user" — unknown email, wrong
// password, or a throttled account all look the same to the caller, which
// must answer with an authentication challenge rather than an error. A
// non-nil error is reserved for store faults.
type Authenticator interface {
	Authenticate(ctx context.Context, email, password string) (*domain.User, error)
}
