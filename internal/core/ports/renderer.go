package ports

import (
	"context"
	"io"

	"github.com/billcraft/invoicing-system/internal/core/domain"
)

// SellerView is the issuer block printed on the document. Assembled from the
// owner's profile, or placeholder defaults when no profile exists.
type SellerView struct {
	FirstName    string
	LastName     string
	BusinessName string
	Address      string
}

// PaymentView is the optional bank details block, taken from the owner's
// first account when one exists.
type PaymentView struct {
	AccountName   string
	AccountNumber string
	BankName      string
	ProviderID    string
}

// InvoiceDocument is the read-only projection handed to the renderer. It is
// deliberately distinct from the persisted entity shapes.
type InvoiceDocument struct {
	Invoice domain.Invoice
	Seller  SellerView
	Payment *PaymentView
}

// DocumentRenderer turns an invoice projection into a paginated document.
// The engine treats it as an opaque, fallible collaborator.
type DocumentRenderer interface {
	Render(ctx context.Context, doc *InvoiceDocument) ([]byte, error)
}

// FileStore persists uploaded files under a fixed root by derived name.
type FileStore interface {
	Save(name string, contents io.Reader) error
	// Path returns the location a stored name resolves to under the root.
	Path(name string) string
}
