package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/ecocycle/ecocycle/internal/pkg/middleware"
	"github.com/ecocycle/ecocycle/internal/pkg/models"
	"github.com/ecocycle/ecocycle/services/transactions/handler/http"
)

// Handler coordinates the HTTP handlers for the transactions service
type Handler struct {
	transactionHandler *http.TransactionHandler
	cfg                *models.Config
}

// NewHandler creates and initializes all handlers
func NewHandler(transactionHandler *http.TransactionHandler, cfg *models.Config) *Handler {
	return &Handler{
		transactionHandler: transactionHandler,
		cfg:                cfg,
	}
}

// RegisterRoutes registers the transaction routes. All of them require an
// authenticated caller.
func (h *Handler) RegisterRoutes(e *echo.Echo) {
	e.Use(middleware.JWTAuthMiddleware(h.cfg.JWT))

	txGroup := e.Group("/transactions")
	txGroup.POST("/offer", h.transactionHandler.CreateOffer)
	txGroup.POST("/donate", h.transactionHandler.ClaimDonation)
	txGroup.GET("/:id", h.transactionHandler.GetTransaction)
	txGroup.PUT("/:id", h.transactionHandler.UpdateStatus)
}
