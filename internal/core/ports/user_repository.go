package ports

import (
	"context"

	"github.com/billcraft/invoicing-system/internal/core/domain"
)

// UserRepository defines the interface for user persistence.
type UserRepository interface {
	// Create persists a new user. Returns domain.ErrUserExists when the
	// username or email collides with an existing row.
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	FindByUsername(ctx context.Context, username string) (*domain.User, error)
}
