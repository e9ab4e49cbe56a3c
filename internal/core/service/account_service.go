package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/billcraft/invoicing-system/internal/core/domain"
	"github.com/billcraft/invoicing-system/internal/core/ports"
)

// AccountService implements bank/payment account management. No validation
// is applied to account numbers.
type AccountService struct {
	repo   ports.AccountRepository
	logger zerolog.Logger
}

func NewAccountService(repo ports.AccountRepository, logger zerolog.Logger) *AccountService {
	return &AccountService{repo: repo, logger: logger}
}

func (s *AccountService) Create(ctx context.Context, ownerID uint, input ports.CreateAccountInput) (*domain.Account, error) {
	account := &domain.Account{
		OwnerID:       ownerID,
		AccountName:   input.AccountName,
		AccountNumber: input.AccountNumber,
		BankName:      input.BankName,
		ProviderID:    input.ProviderID,
	}

	created, err := s.repo.Create(ctx, account)
	if err != nil {
		return nil, err
	}
	s.logger.Info().Uint("owner_id", ownerID).Uint("account_id", created.ID).Msg("account created")
	return created, nil
}

func (s *AccountService) List(ctx context.Context, ownerID uint) ([]domain.Account, error) {
	return s.repo.ListByOwner(ctx, ownerID)
}

func (s *AccountService) Delete(ctx context.Context, ownerID, id uint) error {
	return s.repo.DeleteByIDAndOwner(ctx, id, ownerID)
}
