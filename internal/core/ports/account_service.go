package ports

import (
	"context"

	"github.com/billcraft/invoicing-system/internal/core/domain"
)

// CreateAccountInput carries the fields for a new bank/payment account.
type CreateAccountInput struct {
	AccountName   string
	AccountNumber string
	BankName      string
	ProviderID    string
}

type AccountService interface {
	Create(ctx context.Context, ownerID uint, input CreateAccountInput) (*domain.Account, error)
	List(ctx context.Context, ownerID uint) ([]domain.Account, error)
	Delete(ctx context.Context, ownerID, id uint) error
}
