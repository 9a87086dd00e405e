package usecase

import (
	"context"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ecocycle/ecocycle/internal/pkg/apperrors"
	"github.com/ecocycle/ecocycle/internal/pkg/models"
	"github.com/ecocycle/ecocycle/services/marketplace/mocks"
)

func setupListingUC(t *testing.T) (*mocks.MockListingRepo, *listingUC) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	mockRepo := mocks.NewMockListingRepo(ctrl)
	uc := NewListingUC(&models.Config{}, mockRepo).(*listingUC)
	return mockRepo, uc
}

func TestCreateListing_Sale(t *testing.T) {
	mockRepo, uc := setupListingUC(t)

	price := decimal.RequireFromString("75.00")

	mockRepo.EXPECT().
		CreateListing(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, listing *models.Listing) (*models.Listing, error) {
			assert.Equal(t, "Refurbished bike", listing.Title)
			assert.Equal(t, models.ListingTypeSale, listing.Type)
			assert.True(t, listing.Price.Equal(price))
			assert.Equal(t, int64(200), listing.OwnerID)
			assert.False(t, listing.CreatedAt.IsZero())
			listing.ID = 10
			return listing, nil
		})

	listing, err := uc.CreateListing(context.Background(), 200, models.CreateListingRequest{
		Title:     "Refurbished bike",
		Type:      models.ListingTypeSale,
		Price:     price,
		Condition: "good",
		Location:  "Bandung",
	})

	require.NoError(t, err)
	assert.Equal(t, int64(10), listing.ID)
}

func TestCreateListing_DonationPriceForcedToZero(t *testing.T) {
	mockRepo, uc := setupListingUC(t)

	mockRepo.EXPECT().
		CreateListing(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, listing *models.Listing) (*models.Listing, error) {
			assert.True(t, listing.Price.IsZero())
			listing.ID = 11
			return listing, nil
		})

	listing, err := uc.CreateListing(context.Background(), 200, models.CreateListingRequest{
		Title: "Old textbooks",
		Type:  models.ListingTypeDonation,
		Price: decimal.RequireFromString("25.00"),
	})

	require.NoError(t, err)
	assert.True(t, listing.Price.IsZero())
}

func TestCreateListing_MissingTitle(t *testing.T) {
	_, uc := setupListingUC(t)

	_, err := uc.CreateListing(context.Background(), 200, models.CreateListingRequest{
		Type: models.ListingTypeSale,
	})

	assert.ErrorIs(t, err, apperrors.ErrValidation)
}

func TestCreateListing_UnknownType(t *testing.T) {
	_, uc := setupListingUC(t)

	_, err := uc.CreateListing(context.Background(), 200, models.CreateListingRequest{
		Title: "Refurbished bike",
		Type:  "auction",
	})

	assert.ErrorIs(t, err, apperrors.ErrValidation)
}

func TestCreateListing_NegativePrice(t *testing.T) {
	_, uc := setupListingUC(t)

	_, err := uc.CreateListing(context.Background(), 200, models.CreateListingRequest{
		Title: "Refurbished bike",
		Type:  models.ListingTypeSale,
		Price: decimal.NewFromInt(-5),
	})

	assert.ErrorIs(t, err, apperrors.ErrValidation)
}

func TestListListings_TypeFilter(t *testing.T) {
	mockRepo, uc := setupListingUC(t)

	mockRepo.EXPECT().
		ListListings(gomock.Any(), models.ListingTypeDonation).
		Return([]*models.Listing{{ID: 11, Type: models.ListingTypeDonation}}, nil)

	listingList, err := uc.ListListings(context.Background(), models.ListingTypeDonation)

	require.NoError(t, err)
	require.Len(t, listingList, 1)
	assert.Equal(t, int64(11), listingList[0].ID)
}

func TestListListings_UnknownTypeFilter(t *testing.T) {
	_, uc := setupListingUC(t)

	_, err := uc.ListListings(context.Background(), "auction")

	assert.ErrorIs(t, err, apperrors.ErrValidation)
}

func TestGetListing_NotFound(t *testing.T) {
	mockRepo, uc := setupListingUC(t)

	mockRepo.EXPECT().
		GetListing(gomock.Any(), int64(99)).
		Return(nil, apperrors.ErrListingNotFound)

	_, err := uc.GetListing(context.Background(), 99)

	assert.ErrorIs(t, err, apperrors.ErrListingNotFound)
}
