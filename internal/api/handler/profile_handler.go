package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/billcraft/invoicing-system/internal/core/ports"
)

type ProfileHandler struct {
	service  ports.ProfileService
	identity ports.IdentityResolver
}

func NewProfileHandler(service ports.ProfileService, identity ports.IdentityResolver) *ProfileHandler {
	return &ProfileHandler{service: service, identity: identity}
}

type createProfileRequest struct {
	FirstName    string `json:"firstname" validate:"required"`
	LastName     string `json:"lastname"  validate:"required"`
	BusinessName string `json:"business_name"`
	Address      string `json:"address"`
}

// updateProfileRequest is a partial patch: absent fields stay untouched,
// which is why every field is a pointer.
type updateProfileRequest struct {
	FirstName    *string `json:"firstname"`
	LastName     *string `json:"lastname"`
	BusinessName *string `json:"business_name"`
	Address      *string `json:"address"`
}

// Create handles POST /profiles.
//
// @Summary      Create the billing profile
// @Tags         profiles
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createProfileRequest  true  "Profile fields"
// @Success      201   {object}  domain.Profile
// @Failure      409   {object}  map[string]string
// @Router       /profiles [post]
func (h *ProfileHandler) Create(c echo.Context) error {
	var req createProfileRequest
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

	profile, err := h.service.Create(c.Request().Context(), user.ID, ports.CreateProfileInput{
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		BusinessName: req.BusinessName,
		Address:      req.Address,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, profile)
}

// Get handles GET /profiles.
func (h *ProfileHandler) Get(c echo.Context) error {
	user, err := currentUser(c, h.identity)
	if err != nil {
		return err
	}

	profile, err := h.service.Get(c.Request().Context(), user.ID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, profile)
}

// Update handles PATCH /profiles. Only fields present in the body change.
func (h *ProfileHandler) Update(c echo.Context) error {
	var req updateProfileRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	user, err := currentUser(c, h.identity)
	if err != nil {
		return err
	}

	profile, err := h.service.Update(c.Request().Context(), user.ID, ports.UpdateProfileInput{
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		BusinessName: req.BusinessName,
		Address:      req.Address,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, profile)
}

// UploadPicture handles PUT /profiles/picture (multipart form, field "file").
func (h *ProfileHandler) UploadPicture(c echo.Context) error {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "missing file")
	}

	user, err := currentUser(c, h.identity)
	if err != nil {
		return err
	}

	src, err := fileHeader.Open()
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "unreadable file")
	}
	defer src.Close()

	profile, err := h.service.UploadPicture(c.Request().Context(), user.ID, fileHeader.Filename, src)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, profile)
}

// Delete handles DELETE /profiles.
func (h *ProfileHandler) Delete(c echo.Context) error {
	user, err := currentUser(c, h.identity)
	if err != nil {
		return err
	}

	if err := h.service.Delete(c.Request().Context(), user.ID); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "profile deleted"})
}
