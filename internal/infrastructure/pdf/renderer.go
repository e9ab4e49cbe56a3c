// Package pdf renders invoice projections to PDF documents with maroto.
package pdf

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/billcraft/invoicing-system/internal/core/domain"
	"github.com/billcraft/invoicing-system/internal/core/ports"
)

const dateLayout = "2006-01-02"

// Renderer builds a paginated invoice document from a projection. It holds
// no state; the layout configuration is created per render.
type Renderer struct{}

func NewRenderer() *Renderer {
	return &Renderer{}
}

// Render generates the PDF. Generation runs in its own goroutine so the
// caller's deadline bounds worst-case latency even though maroto itself is
// synchronous.
func (r *Renderer) Render(ctx context.Context, doc *ports.InvoiceDocument) ([]byte, error) {
	type result struct {
		bytes []byte
		err   error
	}
	ch := make(chan result, 1)

	go func() {
		b, err := r.generate(doc)
		ch <- result{bytes: b, err: err}
	}()

	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("render document: %w", ctx.Err())
	case res := <-ch:
		return res.bytes, res.err
	}
}

func (r *Renderer) generate(doc *ports.InvoiceDocument) ([]byte, error) {
	m := maroto.New(config.NewBuilder().
		WithLeftMargin(15).
		WithTopMargin(15).
		WithRightMargin(15).
		Build())

	addHeader(m, doc)
	addBillingBlock(m, &doc.Invoice)
	addItemsTable(m, &doc.Invoice)
	addPaymentBlock(m, doc)

	generated, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("generate pdf: %w", err)
	}
	return generated.GetBytes(), nil
}

func addHeader(m core.Maroto, doc *ports.InvoiceDocument) {
	issuer := strings.TrimSpace(doc.Seller.FirstName + " " + doc.Seller.LastName)
	if doc.Seller.BusinessName != "" {
		issuer = doc.Seller.BusinessName
	}

	m.AddRows(
		row.New(12).Add(
			text.NewCol(8, issuer, props.Text{Size: 18, Style: fontstyle.Bold}),
			text.NewCol(4, fmt.Sprintf("Invoice #%d", doc.Invoice.ID), props.Text{Size: 14, Align: align.Right}),
		),
		row.New(6).Add(
			text.NewCol(8, doc.Seller.Address, props.Text{Size: 9}),
			text.NewCol(4, "Issued: "+doc.Invoice.CreatedAt.Format(dateLayout), props.Text{Size: 9, Align: align.Right}),
		),
		row.New(6).Add(
			text.NewCol(8, "", props.Text{}),
			text.NewCol(4, "Due: "+doc.Invoice.DueDate.Format(dateLayout), props.Text{Size: 9, Align: align.Right}),
		),
		row.New(6).Add(
			text.NewCol(12, "Status: "+doc.Invoice.Status, props.Text{Size: 9, Align: align.Right}),
		),
	)
}

func addBillingBlock(m core.Maroto, inv *domain.Invoice) {
	m.AddRows(
		row.New(10).Add(
			text.NewCol(12, "Billed to", props.Text{Size: 11, Style: fontstyle.Bold, Top: 4}),
		),
		row.New(5).Add(
			text.NewCol(12, inv.ClientName, props.Text{Size: 10}),
		),
		row.New(5).Add(
			text.NewCol(12, inv.ClientEmail, props.Text{Size: 9}),
		),
		row.New(5).Add(
			text.NewCol(12, inv.BillingAddress, props.Text{Size: 9}),
		),
	)
}

func addItemsTable(m core.Maroto, inv *domain.Invoice) {
	headerStyle := props.Text{Size: 10, Style: fontstyle.Bold}
	m.AddRows(
		row.New(8).Add(
			text.NewCol(6, "Item", headerStyle),
			text.NewCol(2, "Qty", props.Text{Size: 10, Style: fontstyle.Bold, Align: align.Right}),
			text.NewCol(2, "Unit price", props.Text{Size: 10, Style: fontstyle.Bold, Align: align.Right}),
			text.NewCol(2, "Subtotal", props.Text{Size: 10, Style: fontstyle.Bold, Align: align.Right}),
		),
	)

	for _, item := range inv.Items {
		m.AddRows(
			row.New(6).Add(
				text.NewCol(6, item.Title, props.Text{Size: 9}),
				text.NewCol(2, strconv.Itoa(item.Quantity), props.Text{Size: 9, Align: align.Right}),
				text.NewCol(2, formatAmount(item.UnitPrice), props.Text{Size: 9, Align: align.Right}),
				text.NewCol(2, formatAmount(item.Subtotal), props.Text{Size: 9, Align: align.Right}),
			),
		)
	}

	m.AddRows(
		row.New(10).Add(
			text.NewCol(10, "Total", props.Text{Size: 12, Style: fontstyle.Bold, Align: align.Right, Top: 3}),
			text.NewCol(2, formatAmount(inv.Total), props.Text{Size: 12, Style: fontstyle.Bold, Align: align.Right, Top: 3}),
		),
	)
}

func addPaymentBlock(m core.Maroto, doc *ports.InvoiceDocument) {
	if doc.Payment != nil {
		m.AddRows(
			row.New(10).Add(
				text.NewCol(12, "Payment details", props.Text{Size: 11, Style: fontstyle.Bold, Top: 4}),
			),
			row.New(5).Add(
				text.NewCol(12, doc.Payment.AccountName+" - "+doc.Payment.BankName, props.Text{Size: 9}),
			),
			row.New(5).Add(
				text.NewCol(12, "Account: "+doc.Payment.AccountNumber, props.Text{Size: 9}),
			),
		)
		if doc.Payment.ProviderID != "" {
			m.AddRows(row.New(5).Add(
				text.NewCol(12, "PayPal: "+doc.Payment.ProviderID, props.Text{Size: 9}),
			))
		}
	}

	if doc.Invoice.ExtraInformation != "" {
		m.AddRows(
			row.New(10).Add(
				text.NewCol(12, "Notes", props.Text{Size: 11, Style: fontstyle.Bold, Top: 4}),
			),
			row.New(5).Add(
				text.NewCol(12, doc.Invoice.ExtraInformation, props.Text{Size: 9}),
			),
		)
	}
}

func formatAmount(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}
