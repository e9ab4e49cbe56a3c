package ports

import (
	"context"

	"github.com/billcraft/invoicing-system/internal/core/domain"
)

// ProfileRepository defines persistence for the one-per-user profile row.
type ProfileRepository interface {
	// Create persists a new profile. Returns domain.ErrProfileExists when the
	// owner already has one (unique owner index).
	Create(ctx context.Context, p *domain.Profile) (*domain.Profile, error)
	FindByOwner(ctx context.Context, ownerID uint) (*domain.Profile, error)
	// Update persists all fields of p for the owner's existing row.
	Update(ctx context.Context, p *domain.Profile) (*domain.Profile, error)
	UpdatePicture(ctx context.Context, ownerID uint, storedName string) (*domain.Profile, error)
	DeleteByOwner(ctx context.Context, ownerID uint) error
}
