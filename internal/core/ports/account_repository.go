package ports

import (
	"context"

	"github.com/billcraft/invoicing-system/internal/core/domain"
)

// AccountRepository defines persistence for user bank/payment accounts.
type AccountRepository interface {
	Create(ctx context.Context, a *domain.Account) (*domain.Account, error)
	ListByOwner(ctx context.Context, ownerID uint) ([]domain.Account, error)
	DeleteByIDAndOwner(ctx context.Context, id, ownerID uint) error
}
