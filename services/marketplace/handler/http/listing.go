package http

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/ecocycle/ecocycle/internal/pkg/apperrors"
	"github.com/ecocycle/ecocycle/internal/pkg/logger"
	"github.com/ecocycle/ecocycle/internal/pkg/middleware"
	"github.com/ecocycle/ecocycle/internal/pkg/models"
	"github.com/ecocycle/ecocycle/internal/utils"
	"github.com/ecocycle/ecocycle/services/marketplace"
)

// ListingHandler handles HTTP requests for listing operations
type ListingHandler struct {
	listingUC marketplace.ListingUC
}

// NewListingHandler creates a new listing handler
func NewListingHandler(listingUC marketplace.ListingUC) *ListingHandler {
	return &ListingHandler{
		listingUC: listingUC,
	}
}

// CreateListing handles listing publication requests. Ownership is taken
// from the authenticated caller, never from the payload.
func (h *ListingHandler) CreateListing(c echo.Context) error {
	var req models.CreateListingRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	ownerID, ok := middleware.CallerID(c)
	if !ok {
		logger.Error("Caller identity missing on protected route")
		return utils.InternalServerErrorResponse(c, "Missing caller identity")
	}

	listing, err := h.listingUC.CreateListing(c.Request().Context(), ownerID, req)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			return utils.BadRequestResponse(c, err.Error())
		}
		logger.Error("Failed to create listing", logger.Err(err))
		return utils.InternalServerErrorResponse(c, "Failed to create listing")
	}

	return utils.SuccessResponse(c, http.StatusCreated, "Listing created successfully", listing)
}

// ListListings handles catalog browsing requests with an optional ?type= filter
func (h *ListingHandler) ListListings(c echo.Context) error {
	listingType := models.ListingType(c.QueryParam("type"))

	listingList, err := h.listingUC.ListListings(c.Request().Context(), listingType)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			return utils.BadRequestResponse(c, err.Error())
		}
		logger.Error("Failed to list listings", logger.Err(err))
		return utils.InternalServerErrorResponse(c, "Failed to list listings")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Listings retrieved successfully", listingList)
}

// GetListing handles listing retrieval requests
func (h *ListingHandler) GetListing(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid listing ID")
	}

	listing, err := h.listingUC.GetListing(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, apperrors.ErrListingNotFound) {
			return utils.NotFoundResponse(c, "Listing not found")
		}
		logger.Error("Failed to retrieve listing", logger.Err(err))
		return utils.InternalServerErrorResponse(c, "Failed to retrieve listing")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Listing retrieved successfully", listing)
}
