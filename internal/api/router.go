package api

import (
	"net/http"
	"time"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"github.com/billcraft/invoicing-system/internal/api/handler"
	"github.com/billcraft/invoicing-system/internal/api/middleware"
	"github.com/billcraft/invoicing-system/internal/core/ports"
	"github.com/billcraft/invoicing-system/internal/core/service"
	"github.com/billcraft/invoicing-system/internal/infrastructure/config"
	gormdb "github.com/billcraft/invoicing-system/internal/infrastructure/db/gorm"
	"github.com/billcraft/invoicing-system/internal/infrastructure/pdf"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(db *gorm.DB, files ports.FileStore, cfg *config.Config, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.CORS())
	e.Use(echoprometheus.NewMiddleware("invoicing"))

	// --- Dependencies ---
	userRepo := gormdb.NewUserRepository(db)
	profileRepo := gormdb.NewProfileRepository(db)
	accountRepo := gormdb.NewAccountRepository(db)
	invoiceRepo := gormdb.NewInvoiceRepository(db)

	authService := service.NewAuthService(userRepo, cfg.JWTSecret, time.Duration(cfg.TokenTTLMinutes)*time.Minute)
	identity := service.NewIdentityService(userRepo)
	profileService := service.NewProfileService(profileRepo, files, log)
	accountService := service.NewAccountService(accountRepo, log)
	invoiceService := service.NewInvoiceService(
		invoiceRepo, profileRepo, accountRepo,
		pdf.NewRenderer(),
		time.Duration(cfg.RenderTimeoutSeconds)*time.Second,
		log,
	)

	authHandler := handler.NewAuthHandler(authService, identity)
	profileHandler := handler.NewProfileHandler(profileService, identity)
	accountHandler := handler.NewAccountHandler(accountService, identity)
	invoiceHandler := handler.NewInvoiceHandler(invoiceService, identity)
	auth := middleware.Auth(cfg.JWTSecret)

	// --- Public routes ---
	e.GET("/", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"message": "Hello, World!"})
	})
	e.POST("/users/register", authHandler.Register)
	e.POST("/users/login", authHandler.Login)

	// --- Protected routes ---
	users := e.Group("/users", auth)
	users.GET("/me", authHandler.Me)

	profiles := e.Group("/profiles", auth)
	profiles.POST("", profileHandler.Create)
	profiles.GET("", profileHandler.Get)
	profiles.PATCH("", profileHandler.Update)
	profiles.DELETE("", profileHandler.Delete)
	profiles.PUT("/picture", profileHandler.UploadPicture)

	accounts := e.Group("/accounts", auth)
	accounts.POST("", accountHandler.Create)
	accounts.GET("", accountHandler.List)
	accounts.DELETE("/:id", accountHandler.Delete)

	invoices := e.Group("/invoices", auth)
	invoices.POST("", invoiceHandler.Create)
	invoices.GET("", invoiceHandler.List)
	invoices.GET("/:id", invoiceHandler.Get)
	invoices.PATCH("/:id/status", invoiceHandler.UpdateStatus)
	invoices.DELETE("/:id", invoiceHandler.Delete)
	invoices.GET("/:id/download", invoiceHandler.Download)

	// --- Health probes and metrics (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(db)

	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", readinessHandler.Readiness)
	e.GET("/metrics", echoprometheus.NewHandler())

	return e
}
