package domain

import "time"

// Well-known invoice statuses. The status field is deliberately an open
// string: the update operation accepts any non-empty value, so these
// constants are a convention, not an enumeration.
const (
	StatusUnpaid    = "unpaid"
	StatusPaid      = "paid"
	StatusOverdue   = "overdue"
	StatusCancelled = "cancelled"
)

// Invoice is the central aggregate: a billing document owned by exactly one
// user, carrying one or more line items and a denormalized total.
type Invoice struct {
	ID               uint          `json:"id"`
	OwnerID          uint          `json:"-"`
	ClientName       string        `json:"client_name"`
	ClientEmail      string        `json:"client_email"`
	DueDate          time.Time     `json:"due_date"`
	Status           string        `json:"status"`
	Total            float64       `json:"total"`
	BillingAddress   string        `json:"billing_address"`
	ExtraInformation string        `json:"extra_information,omitempty"`
	CreatedAt        time.Time     `json:"created_at"`
	Items            []InvoiceItem `json:"items"`
}

// InvoiceItem is a single line on an invoice. Subtotal is derived, never
// client-supplied.
type InvoiceItem struct {
	ID        uint    `json:"id"`
	InvoiceID uint    `json:"-"`
	Title     string  `json:"title"`
	Quantity  int     `json:"quantity"`
	UnitPrice float64 `json:"unit_price"`
	Subtotal  float64 `json:"subtotal"`
}

// ComputeTotals recalculates every item subtotal and the invoice total from
// quantity and unit price, overwriting whatever was there before. Call it
// before any persistence so the stored total always equals the item sum.
func (inv *Invoice) ComputeTotals() {
	var total float64
	for i := range inv.Items {
		inv.Items[i].Subtotal = float64(inv.Items[i].Quantity) * inv.Items[i].UnitPrice
		total += inv.Items[i].Subtotal
	}
	inv.Total = total
}
