package ports

import (
	"context"

	"github.com/billcraft/invoicing-system/internal/core/domain"
)

type AuthService interface {
	Register(ctx context.Context, username, email, password string) (*domain.User, error)
	// Login verifies credentials and returns a signed bearer token. A missing
	// user and a wrong password are indistinguishable to the caller.
	Login(ctx context.Context, username, password string) (string, *domain.User, error)
}

// IdentityResolver maps a validated token subject back to a persisted user.
// Every scoped operation calls this before touching owned data.
type IdentityResolver interface {
	Resolve(ctx context.Context, subject string) (*domain.User, error)
}
