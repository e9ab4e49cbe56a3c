package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/billcraft/invoicing-system/internal/core/domain"
	"github.com/billcraft/invoicing-system/internal/core/ports"
)

// currentUser extracts the subject claim injected by the Auth middleware and
// resolves it to a persisted user. An empty subject means the middleware
// never ran (or the token carried no subject) and is rejected with 401. A
// subject whose user has vanished surfaces ErrUserNotFound (404) as-is.
func currentUser(c echo.Context, resolver ports.IdentityResolver) (*domain.User, error) {
	subject, _ := c.Get("subject").(string)
	if subject == "" {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}
	return resolver.Resolve(c.Request().Context(), subject)
}
