package service

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"

	"github.com/billcraft/invoicing-system/internal/core/domain"
	"github.com/billcraft/invoicing-system/internal/core/ports"
)

const defaultRenderTimeout = 10 * time.Second

// InvoiceService implements the invoice lifecycle: creation with derived
// totals, ownership-scoped reads and mutations, and document rendering.
type InvoiceService struct {
	invoices      ports.InvoiceRepository
	profiles      ports.ProfileRepository
	accounts      ports.AccountRepository
	renderer      ports.DocumentRenderer
	renderTimeout time.Duration
	logger        zerolog.Logger
}

func NewInvoiceService(
	invoices ports.InvoiceRepository,
	profiles ports.ProfileRepository,
	accounts ports.AccountRepository,
	renderer ports.DocumentRenderer,
	renderTimeout time.Duration,
	logger zerolog.Logger,
) *InvoiceService {
	if renderTimeout <= 0 {
		renderTimeout = defaultRenderTimeout
	}
	return &InvoiceService{
		invoices:      invoices,
		profiles:      profiles,
		accounts:      accounts,
		renderer:      renderer,
		renderTimeout: renderTimeout,
		logger:        logger,
	}
}

// Create persists a new invoice with its items. Subtotals and the total are
// computed here; anything the client sent for them is discarded. The
// repository wraps header, items, and total in a single transaction.
func (s *InvoiceService) Create(ctx context.Context, ownerID uint, input ports.CreateInvoiceInput) (*domain.Invoice, error) {
	items := make([]domain.InvoiceItem, len(input.Items))
	for i, it := range input.Items {
		items[i] = domain.InvoiceItem{
			Title:     it.Title,
			Quantity:  it.Quantity,
			UnitPrice: it.UnitPrice,
		}
	}

	inv := &domain.Invoice{
		OwnerID:          ownerID,
		ClientName:       input.ClientName,
		ClientEmail:      input.ClientEmail,
		DueDate:          input.DueDate,
		Status:           domain.StatusUnpaid,
		BillingAddress:   input.BillingAddress,
		ExtraInformation: input.ExtraInformation,
		CreatedAt:        time.Now().UTC(),
		Items:            items,
	}
	inv.ComputeTotals()

	if err := s.invoices.Create(ctx, inv); err != nil {
		s.logger.Error().Err(err).Uint("owner_id", ownerID).Msg("failed to create invoice")
		return nil, err
	}

	s.logger.Info().Uint("invoice_id", inv.ID).Uint("owner_id", ownerID).Float64("total", inv.Total).Msg("invoice created")
	return inv, nil
}

func (s *InvoiceService) List(ctx context.Context, ownerID uint) ([]domain.Invoice, error) {
	return s.invoices.ListByOwner(ctx, ownerID)
}

func (s *InvoiceService) Get(ctx context.Context, ownerID, id uint) (*domain.Invoice, error) {
	return s.invoices.FindByIDAndOwner(ctx, id, ownerID)
}

// UpdateStatus overwrites the status unconditionally; there is no transition
// table. The repository enforces the ownership scope.
func (s *InvoiceService) UpdateStatus(ctx context.Context, ownerID, id uint, status string) (*domain.Invoice, error) {
	inv, err := s.invoices.UpdateStatus(ctx, id, ownerID, status)
	if err != nil {
		return nil, err
	}
	s.logger.Info().Uint("invoice_id", id).Str("status", status).Msg("invoice status updated")
	return inv, nil
}

func (s *InvoiceService) Delete(ctx context.Context, ownerID, id uint) error {
	if err := s.invoices.DeleteByIDAndOwner(ctx, id, ownerID); err != nil {
		return err
	}
	s.logger.Info().Uint("invoice_id", id).Uint("owner_id", ownerID).Msg("invoice deleted")
	return nil
}

// RenderDocument assembles the read-only projection (invoice + items + the
// owner's profile or placeholder defaults + the owner's first account, if
// any) and hands it to the renderer under a deadline. Renderer failures are
// logged in full and surfaced as the generic ErrRenderFailed.
func (s *InvoiceService) RenderDocument(ctx context.Context, ownerID, id uint) ([]byte, error) {
	inv, err := s.invoices.FindByIDAndOwner(ctx, id, ownerID)
	if err != nil {
		return nil, err
	}

	seller := ports.SellerView{FirstName: "User"}
	profile, err := s.profiles.FindByOwner(ctx, ownerID)
	switch {
	case err == nil:
		seller = ports.SellerView{
			FirstName:    profile.FirstName,
			LastName:     profile.LastName,
			BusinessName: profile.BusinessName,
			Address:      profile.Address,
		}
	case !errors.Is(err, domain.ErrProfileNotFound):
		return nil, err
	}

	var payment *ports.PaymentView
	accounts, err := s.accounts.ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	if len(accounts) > 0 {
		payment = &ports.PaymentView{
			AccountName:   accounts[0].AccountName,
			AccountNumber: accounts[0].AccountNumber,
			BankName:      accounts[0].BankName,
			ProviderID:    accounts[0].ProviderID,
		}
	}

	renderCtx, cancel := context.WithTimeout(ctx, s.renderTimeout)
	defer cancel()

	pdfBytes, err := s.renderer.Render(renderCtx, &ports.InvoiceDocument{
		Invoice: *inv,
		Seller:  seller,
		Payment: payment,
	})
	if err != nil {
		s.logger.Error().Err(err).Uint("invoice_id", id).Msg("document rendering failed")
		return nil, domain.ErrRenderFailed
	}

	s.logger.Info().Uint("invoice_id", id).Int("bytes", len(pdfBytes)).Msg("document rendered")
	return pdfBytes, nil
}
