package gorm

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/billcraft/invoicing-system/internal/core/domain"
)

type ProfileRepository struct {
	db *gorm.DB
}

func NewProfileRepository(db *gorm.DB) *ProfileRepository {
	return &ProfileRepository{db: db}
}

func (r *ProfileRepository) Create(ctx context.Context, p *domain.Profile) (*domain.Profile, error) {
	rec := profileRecord{
		UserID:       p.OwnerID,
		FirstName:    p.FirstName,
		LastName:     p.LastName,
		BusinessName: p.BusinessName,
		Address:      p.Address,
	}

	if err := r.db.WithContext(ctx).Create(&rec).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, domain.ErrProfileExists
		}
		return nil, fmt.Errorf("insert profile: %w", err)
	}
	return rec.toDomain(), nil
}

func (r *ProfileRepository) FindByOwner(ctx context.Context, ownerID uint) (*domain.Profile, error) {
	var rec profileRecord
	err := r.db.WithContext(ctx).Where("user_id = ?", ownerID).First(&rec).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrProfileNotFound
		}
		return nil, fmt.Errorf("find profile: %w", err)
	}
	return rec.toDomain(), nil
}

func (r *ProfileRepository) Update(ctx context.Context, p *domain.Profile) (*domain.Profile, error) {
	res := r.db.WithContext(ctx).
		Model(&profileRecord{}).
		Where("user_id = ?", p.OwnerID).
		Updates(map[string]any{
			"first_name":    p.FirstName,
			"last_name":     p.LastName,
			"business_name": p.BusinessName,
			"address":       p.Address,
		})
	if res.Error != nil {
		return nil, fmt.Errorf("update profile: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return nil, domain.ErrProfileNotFound
	}
	return r.FindByOwner(ctx, p.OwnerID)
}

func (r *ProfileRepository) UpdatePicture(ctx context.Context, ownerID uint, storedName string) (*domain.Profile, error) {
	res := r.db.WithContext(ctx).
		Model(&profileRecord{}).
		Where("user_id = ?", ownerID).
		Update("picture", storedName)
	if res.Error != nil {
		return nil, fmt.Errorf("update profile picture: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return nil, domain.ErrProfileNotFound
	}
	return r.FindByOwner(ctx, ownerID)
}

func (r *ProfileRepository) DeleteByOwner(ctx context.Context, ownerID uint) error {
	res := r.db.WithContext(ctx).Where("user_id = ?", ownerID).Delete(&profileRecord{})
	if res.Error != nil {
		return fmt.Errorf("delete profile: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return domain.ErrProfileNotFound
	}
	return nil
}
