package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/billcraft/invoicing-system/internal/core/ports"
)

type AccountHandler struct {
	service  ports.AccountService
	identity ports.IdentityResolver
}

func NewAccountHandler(service ports.AccountService, identity ports.IdentityResolver) *AccountHandler {
	return &AccountHandler{service: service, identity: identity}
}

type createAccountRequest struct {
	AccountName   string `json:"account_name"   validate:"required"`
	AccountNumber string `json:"account_number" validate:"required"`
	BankName      string `json:"bank_name"      validate:"required"`
	ProviderID    string `json:"paypal_id"`
}

// Create handles POST /accounts.
func (h *AccountHandler) Create(c echo.Context) error {
	var req createAccountRequest
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

	account, err := h.service.Create(c.Request().Context(), user.ID, ports.CreateAccountInput{
		AccountName:   req.AccountName,
		AccountNumber: req.AccountNumber,
		BankName:      req.BankName,
		ProviderID:    req.ProviderID,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, account)
}

// List handles GET /accounts.
func (h *AccountHandler) List(c echo.Context) error {
	user, err := currentUser(c, h.identity)
	if err != nil {
		return err
	}

	accounts, err := h.service.List(c.Request().Context(), user.ID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, accounts)
}

// Delete handles DELETE /accounts/:id.
func (h *AccountHandler) Delete(c echo.Context) error {
	id, err := parseID(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid account id")
	}

	user, err := currentUser(c, h.identity)
	if err != nil {
		return err
	}

	if err := h.service.Delete(c.Request().Context(), user.ID, id); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "account deleted"})
}

// parseID converts a path parameter into an entity id.
func parseID(raw string) (uint, error) {
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		return 0, err
	}
	return uint(id), nil
}
