package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// ListingType classifies what kind of exchange a listing offers
type ListingType string

const (
	ListingTypeSale     ListingType = "sale"
	ListingTypeRental   ListingType = "rental"
	ListingTypeDonation ListingType = "donation"
)

// IsValid reports whether t is a known listing type
func (t ListingType) IsValid() bool {
	switch t {
	case ListingTypeSale, ListingTypeRental, ListingTypeDonation:
		return true
	}
	return false
}

// Listing represents a catalog entry owned by the marketplace service. The
// transactions service only ever sees point-in-time snapshots of it.
type Listing struct {
	ID          int64           `json:"id" db:"id"`
	Title       string          `json:"title" db:"title"`
	Description string          `json:"description" db:"description"`
	Type        ListingType     `json:"type" db:"type"`
	Price       decimal.Decimal `json:"price" db:"price"`
	Condition   string          `json:"condition" db:"condition"`
	Location    string          `json:"location" db:"location"`
	OwnerID     int64           `json:"owner_id" db:"owner_id"`
	CreatedAt   time.Time       `json:"created_at" db:"created_at"`
}

// CreateListingRequest is the payload for publishing a new listing
type CreateListingRequest struct {
	Title       string          `json:"title"`
	Description string          `json:"description"`
	Type        ListingType     `json:"type"`
	Price       decimal.Decimal `json:"price"`
	Condition   string          `json:"condition"`
	Location    string          `json:"location"`
}
