package handler

import (
	"fmt"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/billcraft/invoicing-system/internal/api/metrics"
	"github.com/billcraft/invoicing-system/internal/core/ports"
)

// InvoiceHandler handles HTTP requests for the invoice lifecycle.
type InvoiceHandler struct {
	service  ports.InvoiceService
	identity ports.IdentityResolver
}

func NewInvoiceHandler(service ports.InvoiceService, identity ports.IdentityResolver) *InvoiceHandler {
	return &InvoiceHandler{service: service, identity: identity}
}

// Create handles POST /invoices.
//
// @Summary      Create an invoice with line items
// @Tags         invoices
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createInvoiceRequest  true  "Invoice header and items"
// @Success      201   {object}  invoiceResponse
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Router       /invoices [post]
func (h *InvoiceHandler) Create(c echo.Context) error {
	var req createInvoiceRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	user, err := currentUser(c, h.identity)
	if err != nil {
		return err
	}

	inv, err := h.service.Create(c.Request().Context(), user.ID, toCreateInvoiceInput(req))
	if err != nil {
		return err
	}

	metrics.InvoicesCreatedTotal.Inc()
	return c.JSON(http.StatusCreated, toInvoiceResponse(inv))
}

// List handles GET /invoices.
func (h *InvoiceHandler) List(c echo.Context) error {
	user, err := currentUser(c, h.identity)
	if err != nil {
		return err
	}

	invoices, err := h.service.List(c.Request().Context(), user.ID)
	if err != nil {
		return err
	}

	resp := make([]invoiceResponse, len(invoices))
	for i := range invoices {
		resp[i] = toInvoiceResponse(&invoices[i])
	}
	return c.JSON(http.StatusOK, resp)
}

// Get handles GET /invoices/:id.
//
// @Summary      Get one invoice
// @Tags         invoices
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "Invoice id"
// @Success      200  {object}  invoiceResponse
// @Failure      404  {object}  map[string]string
// @Router       /invoices/{id} [get]
func (h *InvoiceHandler) Get(c echo.Context) error {
	id, err := parseID(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid invoice id")
	}

	user, err := currentUser(c, h.identity)
	if err != nil {
		return err
	}

	inv, err := h.service.Get(c.Request().Context(), user.ID, id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toInvoiceResponse(inv))
}

// UpdateStatus handles PATCH /invoices/:id/status. Any non-empty string is
// accepted; there is no transition table.
func (h *InvoiceHandler) UpdateStatus(c echo.Context) error {
	id, err := parseID(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid invoice id")
	}

	var req updateStatusRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	user, err := currentUser(c, h.identity)
	if err != nil {
		return err
	}

	inv, err := h.service.UpdateStatus(c.Request().Context(), user.ID, id, req.Status)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toInvoiceResponse(inv))
}

// Delete handles DELETE /invoices/:id.
func (h *InvoiceHandler) Delete(c echo.Context) error {
	id, err := parseID(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid invoice id")
	}

	user, err := currentUser(c, h.identity)
	if err != nil {
		return err
	}

	if err := h.service.Delete(c.Request().Context(), user.ID, id); err != nil {
		return err
	}

	metrics.InvoicesDeletedTotal.Inc()
	return c.JSON(http.StatusOK, map[string]string{"message": "invoice deleted"})
}

// Download handles GET /invoices/:id/download, streaming the rendered PDF.
//
// @Summary      Download an invoice as PDF
// @Tags         invoices
// @Produce      application/pdf
// @Security     BearerAuth
// @Param        id   path  int  true  "Invoice id"
// @Success      200  {file}  binary
// @Failure      404  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /invoices/{id}/download [get]
func (h *InvoiceHandler) Download(c echo.Context) error {
	id, err := parseID(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid invoice id")
	}

	user, err := currentUser(c, h.identity)
	if err != nil {
		return err
	}

	start := time.Now()
	pdfBytes, err := h.service.RenderDocument(c.Request().Context(), user.ID, id)
	if err != nil {
		metrics.DocumentsRenderedTotal.WithLabelValues("error").Inc()
		return err
	}
	metrics.DocumentsRenderedTotal.WithLabelValues("ok").Inc()
	metrics.DocumentRenderDuration.Observe(time.Since(start).Seconds())

	c.Response().Header().Set(echo.HeaderContentDisposition,
		fmt.Sprintf(`attachment; filename=invoice_%d.pdf`, id))
	return c.Blob(http.StatusOK, "application/pdf", pdfBytes)
}
