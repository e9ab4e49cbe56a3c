package service

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/billcraft/invoicing-system/internal/core/domain"
	"github.com/billcraft/invoicing-system/internal/core/ports"
)

// ProfileService implements the one-per-user billing profile, including
// picture upload.
type ProfileService struct {
	repo   ports.ProfileRepository
	files  ports.FileStore
	logger zerolog.Logger
}

func NewProfileService(repo ports.ProfileRepository, files ports.FileStore, logger zerolog.Logger) *ProfileService {
	return &ProfileService{repo: repo, files: files, logger: logger}
}

func (s *ProfileService) Create(ctx context.Context, ownerID uint, input ports.CreateProfileInput) (*domain.Profile, error) {
	profile := &domain.Profile{
		OwnerID:      ownerID,
		FirstName:    input.FirstName,
		LastName:     input.LastName,
		BusinessName: input.BusinessName,
		Address:      input.Address,
	}

	created, err := s.repo.Create(ctx, profile)
	if err != nil {
		return nil, err
	}
	s.logger.Info().Uint("owner_id", ownerID).Msg("profile created")
	return created, nil
}

func (s *ProfileService) Get(ctx context.Context, ownerID uint) (*domain.Profile, error) {
	return s.repo.FindByOwner(ctx, ownerID)
}

// Update applies only the fields present in the patch; absent fields keep
// their stored values.
func (s *ProfileService) Update(ctx context.Context, ownerID uint, input ports.UpdateProfileInput) (*domain.Profile, error) {
	profile, err := s.repo.FindByOwner(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	if input.FirstName != nil {
		profile.FirstName = *input.FirstName
	}
	if input.LastName != nil {
		profile.LastName = *input.LastName
	}
	if input.BusinessName != nil {
		profile.BusinessName = *input.BusinessName
	}
	if input.Address != nil {
		profile.Address = *input.Address
	}

	return s.repo.Update(ctx, profile)
}

// UploadPicture stores the file under a derived name and records it on the
// profile. The name embeds the owner id plus a short random component so
// repeated uploads of the same filename cannot collide.
func (s *ProfileService) UploadPicture(ctx context.Context, ownerID uint, filename string, contents io.Reader) (*domain.Profile, error) {
	if _, err := s.repo.FindByOwner(ctx, ownerID); err != nil {
		return nil, err
	}

	stored := deriveFilename(ownerID, filename)
	if err := s.files.Save(stored, contents); err != nil {
		s.logger.Error().Err(err).Uint("owner_id", ownerID).Str("filename", stored).Msg("failed to store profile picture")
		return nil, err
	}

	profile, err := s.repo.UpdatePicture(ctx, ownerID, stored)
	if err != nil {
		return nil, err
	}
	s.logger.Info().Uint("owner_id", ownerID).Str("filename", stored).Msg("profile picture uploaded")
	return profile, nil
}

func (s *ProfileService) Delete(ctx context.Context, ownerID uint) error {
	return s.repo.DeleteByOwner(ctx, ownerID)
}

// deriveFilename builds the stored name: <owner>_<rand8>_<sanitized original>.
func deriveFilename(ownerID uint, original string) string {
	base := filepath.Base(original)
	base = strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			return r
		case r == '.', r == '-', r == '_':
			return r
		default:
			return '_'
		}
	}, base)
	return fmt.Sprintf("%d_%s_%s", ownerID, uuid.NewString()[:8], base)
}
