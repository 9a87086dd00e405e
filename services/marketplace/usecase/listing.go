package usecase

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/ecocycle/ecocycle/internal/pkg/apperrors"
	"github.com/ecocycle/ecocycle/internal/pkg/logger"
	"github.com/ecocycle/ecocycle/internal/pkg/models"
	"github.com/ecocycle/ecocycle/services/marketplace"
)

// listingUC implements the marketplace.ListingUC interface
type listingUC struct {
	cfg         *models.Config
	listingRepo marketplace.ListingRepo
}

// NewListingUC creates a new listing use case
func NewListingUC(cfg *models.Config, listingRepo marketplace.ListingRepo) marketplace.ListingUC {
	return &listingUC{
		cfg:         cfg,
		listingRepo: listingRepo,
	}
}

// CreateListing publishes a new listing owned by the caller. Donation
// listings always carry a zero price regardless of the submitted one.
func (uc *listingUC) CreateListing(ctx context.Context, ownerID int64, req models.CreateListingRequest) (*models.Listing, error) {
	if req.Title == "" {
		return nil, apperrors.ValidationError("title is required")
	}
	if !req.Type.IsValid() {
		return nil, apperrors.ValidationError("unknown listing type %q", req.Type)
	}
	if req.Price.IsNegative() {
		return nil, apperrors.ValidationError("price must not be negative")
	}

	price := req.Price
	if req.Type == models.ListingTypeDonation {
		price = decimal.Zero
	}

	listing := &models.Listing{
		Title:       req.Title,
		Description: req.Description,
		Type:        req.Type,
		Price:       price,
		Condition:   req.Condition,
		Location:    req.Location,
		OwnerID:     ownerID,
		CreatedAt:   time.Now(),
	}

	created, err := uc.listingRepo.CreateListing(ctx, listing)
	if err != nil {
		return nil, err
	}

	logger.Info("Listing created",
		logger.Int64("listing_id", created.ID),
		logger.String("type", string(created.Type)),
		logger.Int64("owner_id", created.OwnerID))

	return created, nil
}

// ListListings returns listings, optionally filtered by type. An empty type
// means no filter; a non-empty unknown type is rejected.
func (uc *listingUC) ListListings(ctx context.Context, listingType models.ListingType) ([]*models.Listing, error) {
	if listingType != "" && !listingType.IsValid() {
		return nil, apperrors.ValidationError("unknown listing type %q", listingType)
	}

	return uc.listingRepo.ListListings(ctx, listingType)
}

// GetListing retrieves a listing by id
func (uc *listingUC) GetListing(ctx context.Context, id int64) (*models.Listing, error) {
	return uc.listingRepo.GetListing(ctx, id)
}
