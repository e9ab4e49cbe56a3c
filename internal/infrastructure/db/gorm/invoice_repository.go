package gorm

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/billcraft/invoicing-system/internal/core/domain"
)

type InvoiceRepository struct {
	db *gorm.DB
}

func NewInvoiceRepository(db *gorm.DB) *InvoiceRepository {
	return &InvoiceRepository{db: db}
}

// Create persists the invoice header and all items in one transaction. The
// caller has already computed subtotals and the total; if any item insert
// fails the whole invoice is rolled back.
func (r *InvoiceRepository) Create(ctx context.Context, inv *domain.Invoice) error {
	rec := invoiceRecord{
		UserID:           inv.OwnerID,
		ClientName:       inv.ClientName,
		ClientEmail:      inv.ClientEmail,
		DueDate:          inv.DueDate,
		Status:           inv.Status,
		Total:            inv.Total,
		BillingAddress:   inv.BillingAddress,
		ExtraInformation: inv.ExtraInformation,
		CreatedAt:        inv.CreatedAt,
	}

	items := make([]invoiceItemRecord, len(inv.Items))
	for i, it := range inv.Items {
		items[i] = invoiceItemRecord{
			Title:     it.Title,
			Quantity:  it.Quantity,
			UnitPrice: it.UnitPrice,
			Subtotal:  it.Subtotal,
		}
	}

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&rec).Error; err != nil {
			return err
		}
		if len(items) == 0 {
			return nil
		}
		for i := range items {
			items[i].InvoiceID = rec.ID
		}
		return tx.Create(&items).Error
	})
	if err != nil {
		return fmt.Errorf("insert invoice: %w", err)
	}

	inv.ID = rec.ID
	for i := range items {
		inv.Items[i].ID = items[i].ID
		inv.Items[i].InvoiceID = rec.ID
	}
	return nil
}

func (r *InvoiceRepository) ListByOwner(ctx context.Context, ownerID uint) ([]domain.Invoice, error) {
	var recs []invoiceRecord
	err := r.db.WithContext(ctx).
		Where("user_id = ?", ownerID).
		Preload("Items").
		Order("id").
		Find(&recs).Error
	if err != nil {
		return nil, fmt.Errorf("list invoices: %w", err)
	}

	invoices := make([]domain.Invoice, len(recs))
	for i := range recs {
		invoices[i] = *recs[i].toDomain()
	}
	return invoices, nil
}

// FindByIDAndOwner filters by id and owner in one query, so a foreign
// invoice is indistinguishable from a missing one.
func (r *InvoiceRepository) FindByIDAndOwner(ctx context.Context, id, ownerID uint) (*domain.Invoice, error) {
	var rec invoiceRecord
	err := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, ownerID).
		Preload("Items").
		First(&rec).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrInvoiceNotFound
		}
		return nil, fmt.Errorf("find invoice: %w", err)
	}
	return rec.toDomain(), nil
}

func (r *InvoiceRepository) UpdateStatus(ctx context.Context, id, ownerID uint, status string) (*domain.Invoice, error) {
	res := r.db.WithContext(ctx).
		Model(&invoiceRecord{}).
		Where("id = ? AND user_id = ?", id, ownerID).
		Update("status", status)
	if res.Error != nil {
		return nil, fmt.Errorf("update invoice status: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return nil, domain.ErrInvoiceNotFound
	}
	return r.FindByIDAndOwner(ctx, id, ownerID)
}

// DeleteByIDAndOwner removes the invoice and its items in one transaction,
// with the same ownership-or-missing collapse as the lookups.
func (r *InvoiceRepository) DeleteByIDAndOwner(ctx context.Context, id, ownerID uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Where("id = ? AND user_id = ?", id, ownerID).Delete(&invoiceRecord{})
		if res.Error != nil {
			return fmt.Errorf("delete invoice: %w", res.Error)
		}
		if res.RowsAffected == 0 {
			return domain.ErrInvoiceNotFound
		}
		if err := tx.Where("invoice_id = ?", id).Delete(&invoiceItemRecord{}).Error; err != nil {
			return fmt.Errorf("delete invoice items: %w", err)
		}
		return nil
	})
}
