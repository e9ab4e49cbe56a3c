package handler

import (
	"time"

	"github.com/billcraft/invoicing-system/internal/core/domain"
	"github.com/billcraft/invoicing-system/internal/core/ports"
)

// --- Request types ---

type invoiceItemRequest struct {
	Title     string  `json:"title"      validate:"required"`
	Quantity  int     `json:"quantity"   validate:"gte=0"`
	UnitPrice float64 `json:"unit_price" validate:"gte=0"`
}

type createInvoiceRequest struct {
	ClientName       string               `json:"client_name"       validate:"required"`
	ClientEmail      string               `json:"client_email"      validate:"required,email"`
	DueDate          time.Time            `json:"due_date"          validate:"required"`
	BillingAddress   string               `json:"billing_address"   validate:"required"`
	ExtraInformation string               `json:"extra_information"`
	Items            []invoiceItemRequest `json:"items"             validate:"dive"`
}

type updateStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

// --- Response types ---
// Owned by the transport layer so the JSON contract is not coupled to
// internal service changes.

type invoiceItemResponse struct {
	ID        uint    `json:"id"`
	Title     string  `json:"title"`
	Quantity  int     `json:"quantity"`
	UnitPrice float64 `json:"unit_price"`
	Subtotal  float64 `json:"subtotal"`
}

type invoiceResponse struct {
	ID               uint                  `json:"id"`
	ClientName       string                `json:"client_name"`
	ClientEmail      string                `json:"client_email"`
	DueDate          time.Time             `json:"due_date"`
	Status           string                `json:"status"`
	Total            float64               `json:"total"`
	BillingAddress   string                `json:"billing_address"`
	ExtraInformation string                `json:"extra_information,omitempty"`
	CreatedAt        time.Time             `json:"created_at"`
	Items            []invoiceItemResponse `json:"items"`
}

// --- Request → Service input ---

func toCreateInvoiceInput(req createInvoiceRequest) ports.CreateInvoiceInput {
	items := make([]ports.InvoiceItemInput, len(req.Items))
	for i, it := range req.Items {
		items[i] = ports.InvoiceItemInput{
			Title:     it.Title,
			Quantity:  it.Quantity,
			UnitPrice: it.UnitPrice,
		}
	}
	return ports.CreateInvoiceInput{
		ClientName:       req.ClientName,
		ClientEmail:      req.ClientEmail,
		DueDate:          req.DueDate,
		BillingAddress:   req.BillingAddress,
		ExtraInformation: req.ExtraInformation,
		Items:            items,
	}
}

// --- Domain → HTTP response ---

func toInvoiceResponse(inv *domain.Invoice) invoiceResponse {
	items := make([]invoiceItemResponse, len(inv.Items))
	for i, it := range inv.Items {
		items[i] = invoiceItemResponse{
			ID:        it.ID,
			Title:     it.Title,
			Quantity:  it.Quantity,
			UnitPrice: it.UnitPrice,
			Subtotal:  it.Subtotal,
		}
	}
	return invoiceResponse{
		ID:               inv.ID,
		ClientName:       inv.ClientName,
		ClientEmail:      inv.ClientEmail,
		DueDate:          inv.DueDate,
		Status:           inv.Status,
		Total:            inv.Total,
		BillingAddress:   inv.BillingAddress,
		ExtraInformation: inv.ExtraInformation,
		CreatedAt:        inv.CreatedAt,
		Items:            items,
	}
}
