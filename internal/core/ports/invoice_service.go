package ports

import (
	"context"
	"time"

	"github.com/billcraft/invoicing-system/internal/core/domain"
)

// InvoiceItemInput carries one line item as submitted by the client.
// Subtotals are never accepted from the outside.
type InvoiceItemInput struct {
	Title     string
	Quantity  int
	UnitPrice float64
}

// CreateInvoiceInput carries all data needed to create a new invoice.
type CreateInvoiceInput struct {
	ClientName       string
	ClientEmail      string
	DueDate          time.Time
	BillingAddress   string
	ExtraInformation string
	Items            []InvoiceItemInput
}

// InvoiceService defines use-case operations for invoices. Every operation is
// scoped to the owning user; a foreign or missing id yields
// domain.ErrInvoiceNotFound.
type InvoiceService interface {
	Create(ctx context.Context, ownerID uint, input CreateInvoiceInput) (*domain.Invoice, error)
	List(ctx context.Context, ownerID uint) ([]domain.Invoice, error)
	Get(ctx context.Context, ownerID, id uint) (*domain.Invoice, error)
	UpdateStatus(ctx context.Context, ownerID, id uint, status string) (*domain.Invoice, error)
	Delete(ctx context.Context, ownerID, id uint) error
	// RenderDocument assembles the invoice projection and hands it to the
	// document renderer, returning the finished PDF bytes.
	RenderDocument(ctx context.Context, ownerID, id uint) ([]byte, error)
}
