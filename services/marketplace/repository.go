package marketplace

import (
	"context"

	"github.com/ecocycle/ecocycle/internal/pkg/models"
)

// ListingRepo defines the interface for listing data access
//
//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/ecocycle/ecocycle/services/marketplace ListingRepo
type ListingRepo interface {
	CreateListing(ctx context.Context, listing *models.Listing) (*models.Listing, error)
	GetListing(ctx context.Context, id int64) (*models.Listing, error)
	ListListings(ctx context.Context, listingType models.ListingType) ([]*models.Listing, error)
}
