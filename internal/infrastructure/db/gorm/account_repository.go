package gorm

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/billcraft/invoicing-system/internal/core/domain"
)

type AccountRepository struct {
	db *gorm.DB
}

func NewAccountRepository(db *gorm.DB) *AccountRepository {
	return &AccountRepository{db: db}
}

func (r *AccountRepository) Create(ctx context.Context, a *domain.Account) (*domain.Account, error) {
	rec := accountRecord{
		UserID:        a.OwnerID,
		AccountName:   a.AccountName,
		AccountNumber: a.AccountNumber,
		BankName:      a.BankName,
		ProviderID:    a.ProviderID,
	}

	if err := r.db.WithContext(ctx).Create(&rec).Error; err != nil {
		return nil, fmt.Errorf("insert account: %w", err)
	}
	return rec.toDomain(), nil
}

func (r *AccountRepository) ListByOwner(ctx context.Context, ownerID uint) ([]domain.Account, error) {
	var recs []accountRecord
	err := r.db.WithContext(ctx).Where("user_id = ?", ownerID).Order("id").Find(&recs).Error
	if err != nil {
		return nil, fmt.Errorf("list accounts: %w", err)
	}

	accounts := make([]domain.Account, len(recs))
	for i := range recs {
		accounts[i] = *recs[i].toDomain()
	}
	return accounts, nil
}

// DeleteByIDAndOwner applies the same ownership-or-missing collapse as the
// invoice lookups: a foreign account reads as missing.
func (r *AccountRepository) DeleteByIDAndOwner(ctx context.Context, id, ownerID uint) error {
	res := r.db.WithContext(ctx).Where("id = ? AND user_id = ?", id, ownerID).Delete(&accountRecord{})
	if res.Error != nil {
		return fmt.Errorf("delete account: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return domain.ErrAccountNotFound
	}
	return nil
}
