package service

import (
	"context"

	"github.com/billcraft/invoicing-system/internal/core/domain"
	"github.com/billcraft/invoicing-system/internal/core/ports"
)

// IdentityService resolves a token subject to a persisted user. Pure lookup,
// no side effects. A subject whose user no longer exists surfaces
// ErrUserNotFound as-is.
type IdentityService struct {
	repo ports.UserRepository
}

func NewIdentityService(repo ports.UserRepository) *IdentityService {
	return &IdentityService{repo: repo}
}

func (s *IdentityService) Resolve(ctx context.Context, subject string) (*domain.User, error) {
	if subject == "" {
		return nil, domain.ErrUserNotFound
	}
	return s.repo.FindByUsername(ctx, subject)
}
