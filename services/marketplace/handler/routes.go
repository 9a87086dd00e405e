package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/ecocycle/ecocycle/internal/pkg/middleware"
	"github.com/ecocycle/ecocycle/internal/pkg/models"
	"github.com/ecocycle/ecocycle/services/marketplace/handler/http"
)

// Handler coordinates the HTTP handlers for the marketplace service
type Handler struct {
	listingHandler *http.ListingHandler
	cfg            *models.Config
}

// NewHandler creates and initializes all handlers
func NewHandler(listingHandler *http.ListingHandler, cfg *models.Config) *Handler {
	return &Handler{
		listingHandler: listingHandler,
		cfg:            cfg,
	}
}

// RegisterRoutes registers all routes for the marketplace service
func (h *Handler) RegisterRoutes(e *echo.Echo) {
	e.Use(middleware.JWTAuthMiddleware(h.cfg.JWT))

	listingGroup := e.Group("/listings")
	listingGroup.POST("", h.listingHandler.CreateListing)
	listingGroup.GET("", h.listingHandler.ListListings)
	listingGroup.GET("/:id", h.listingHandler.GetListing)
}
