package marketplace

import (
	"context"

	"github.com/ecocycle/ecocycle/internal/pkg/models"
)

// ListingUC defines the interface for listing business logic
//
//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/ecocycle/ecocycle/services/marketplace ListingUC
type ListingUC interface {
	CreateListing(ctx context.Context, ownerID int64, req models.CreateListingRequest) (*models.Listing, error)
	ListListings(ctx context.Context, listingType models.ListingType) ([]*models.Listing, error)
	GetListing(ctx context.Context, id int64) (*models.Listing, error)
}
