package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionStatus represents the lifecycle state of a transaction
type TransactionStatus string

const (
	TransactionStatusPending   TransactionStatus = "pending"
	TransactionStatusConfirmed TransactionStatus = "confirmed"
	TransactionStatusCompleted TransactionStatus = "completed"
	TransactionStatusCancelled TransactionStatus = "cancelled"
)

// IsValid reports whether s is a known transaction status
func (s TransactionStatus) IsValid() bool {
	switch s {
	case TransactionStatusPending, TransactionStatusConfirmed,
		TransactionStatusCompleted, TransactionStatusCancelled:
		return true
	}
	return false
}

// IsTerminal reports whether no further transitions are intended out of s.
// The update path does not enforce this as a hard guard; it mirrors the
// documented lifecycle only.
func (s TransactionStatus) IsTerminal() bool {
	return s == TransactionStatusCompleted || s == TransactionStatusCancelled
}

// Transaction represents an agreed or pending exchange between a buyer and a
// seller tied to one listing. The seller is always sourced from the listing
// owner at creation time.
type Transaction struct {
	ID          int64             `json:"id" db:"id"`
	ListingID   int64             `json:"listing_id" db:"listing_id"`
	BuyerID     int64             `json:"buyer_id" db:"buyer_id"`
	SellerID    int64             `json:"seller_id" db:"seller_id"`
	Status      TransactionStatus `json:"status" db:"status"`
	AgreedPrice decimal.Decimal   `json:"agreed_price" db:"agreed_price"`
	CreatedAt   time.Time         `json:"created_at" db:"created_at"`
	UpdatedAt   time.Time         `json:"updated_at" db:"updated_at"`
}

// CreateOfferRequest is the payload for proposing a price on a sale or
// rental listing
type CreateOfferRequest struct {
	ListingID   int64           `json:"listing_id"`
	OfferAmount decimal.Decimal `json:"offer_amount"`
}

// ClaimDonationRequest is the payload for claiming a donation listing
type ClaimDonationRequest struct {
	ListingID int64 `json:"listing_id"`
}

// UpdateTransactionStatusRequest is the payload for advancing a transaction
type UpdateTransactionStatusRequest struct {
	Status TransactionStatus `json:"status"`
}

// TransactionCompletedEvent is published after a transaction reaches the
// completed state and both green score rewards have been applied
type TransactionCompletedEvent struct {
	TransactionID int64           `json:"transaction_id"`
	ListingID     int64           `json:"listing_id"`
	BuyerID       int64           `json:"buyer_id"`
	SellerID      int64           `json:"seller_id"`
	AgreedPrice   decimal.Decimal `json:"agreed_price"`
	CompletedAt   time.Time       `json:"completed_at"`
}
