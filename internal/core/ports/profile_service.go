package ports

import (
	"context"
	"io"

	"github.com/billcraft/invoicing-system/internal/core/domain"
)

// CreateProfileInput carries the fields for the first profile submission.
type CreateProfileInput struct {
	FirstName    string
	LastName     string
	BusinessName string
	Address      string
}

// UpdateProfileInput is a partial patch: only non-nil fields are applied.
type UpdateProfileInput struct {
	FirstName    *string
	LastName     *string
	BusinessName *string
	Address      *string
}

type ProfileService interface {
	Create(ctx context.Context, ownerID uint, input CreateProfileInput) (*domain.Profile, error)
	Get(ctx context.Context, ownerID uint) (*domain.Profile, error)
	Update(ctx context.Context, ownerID uint, input UpdateProfileInput) (*domain.Profile, error)
	// UploadPicture stores the file under a name derived from the owner and
	// the original filename, then records that name on the profile.
	UploadPicture(ctx context.Context, ownerID uint, filename string, contents io.Reader) (*domain.Profile, error)
	Delete(ctx context.Context, ownerID uint) error
}
