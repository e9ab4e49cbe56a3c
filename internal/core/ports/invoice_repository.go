package ports

import (
	"context"

	"github.com/billcraft/invoicing-system/internal/core/domain"
)

// InvoiceRepository defines persistence operations for invoices and their
// line items. Every lookup that takes an ownerID filters by id AND owner in
// a single query; a miss on either returns domain.ErrInvoiceNotFound.
type InvoiceRepository interface {
	// Create persists the invoice header, its items, and the denormalized
	// total inside one transaction. The invoice and item IDs are filled in
	// on success.
	Create(ctx context.Context, inv *domain.Invoice) error
	ListByOwner(ctx context.Context, ownerID uint) ([]domain.Invoice, error)
	FindByIDAndOwner(ctx context.Context, id, ownerID uint) (*domain.Invoice, error)
	UpdateStatus(ctx context.Context, id, ownerID uint, status string) (*domain.Invoice, error)
	// DeleteByIDAndOwner removes the invoice and all its items transactionally.
	DeleteByIDAndOwner(ctx context.Context, id, ownerID uint) error
}
