package usecase

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/ecocycle/ecocycle/internal/pkg/apperrors"
	"github.com/ecocycle/ecocycle/internal/pkg/logger"
	"github.com/ecocycle/ecocycle/internal/pkg/models"
	"github.com/ecocycle/ecocycle/services/transactions"
)

const (
	buyerGreenScoreIncrement  = 5
	sellerGreenScoreIncrement = 10
)

// transactionUC implements the transactions.TransactionUC interface
type transactionUC struct {
	cfg             *models.Config
	transactionRepo transactions.TransactionRepo
	transactionGW   transactions.TransactionGW
}

// NewTransactionUC creates a new transaction use case
func NewTransactionUC(
	cfg *models.Config,
	transactionRepo transactions.TransactionRepo,
	transactionGW transactions.TransactionGW,
) transactions.TransactionUC {
	return &transactionUC{
		cfg:             cfg,
		transactionRepo: transactionRepo,
		transactionGW:   transactionGW,
	}
}

// CreateOffer creates a pending transaction for a price proposed by the
// caller on a sale or rental listing. The seller is always the listing owner.
func (uc *transactionUC) CreateOffer(ctx context.Context, buyerID int64, token string, req models.CreateOfferRequest) (*models.Transaction, error) {
	if req.OfferAmount.IsNegative() {
		return nil, apperrors.ValidationError("offer amount must not be negative")
	}

	listing, err := uc.transactionGW.GetListing(ctx, req.ListingID, token)
	if err != nil {
		return nil, err
	}

	if listing.Type != models.ListingTypeSale && listing.Type != models.ListingTypeRental {
		return nil, apperrors.ValidationError("offers only allowed on sale or rental listings")
	}

	if buyerID == listing.OwnerID {
		return nil, apperrors.ValidationError("cannot make an offer on your own listing")
	}

	now := time.Now()
	tx := &models.Transaction{
		ListingID:   req.ListingID,
		BuyerID:     buyerID,
		SellerID:    listing.OwnerID,
		Status:      models.TransactionStatusPending,
		AgreedPrice: req.OfferAmount,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	created, err := uc.transactionRepo.CreateTransaction(ctx, tx)
	if err != nil {
		return nil, err
	}

	logger.Info("Offer created",
		logger.Int64("transaction_id", created.ID),
		logger.Int64("listing_id", created.ListingID),
		logger.Int64("buyer_id", created.BuyerID))

	return created, nil
}

// ClaimDonation creates a confirmed zero-price transaction for a donation
// listing claimed by the caller.
func (uc *transactionUC) ClaimDonation(ctx context.Context, receiverID int64, token string, req models.ClaimDonationRequest) (*models.Transaction, error) {
	listing, err := uc.transactionGW.GetListing(ctx, req.ListingID, token)
	if err != nil {
		return nil, err
	}

	if listing.Type != models.ListingTypeDonation {
		return nil, apperrors.ValidationError("this listing is not available for donation")
	}

	if receiverID == listing.OwnerID {
		return nil, apperrors.ValidationError("cannot claim your own donation listing")
	}

	now := time.Now()
	tx := &models.Transaction{
		ListingID:   req.ListingID,
		BuyerID:     receiverID,
		SellerID:    listing.OwnerID,
		Status:      models.TransactionStatusConfirmed,
		AgreedPrice: decimal.Zero,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	created, err := uc.transactionRepo.CreateTransaction(ctx, tx)
	if err != nil {
		return nil, err
	}

	logger.Info("Donation claimed",
		logger.Int64("transaction_id", created.ID),
		logger.Int64("listing_id", created.ListingID),
		logger.Int64("receiver_id", created.BuyerID))

	return created, nil
}

// GetTransaction retrieves a transaction by id
func (uc *transactionUC) GetTransaction(ctx context.Context, id int64) (*models.Transaction, error) {
	return uc.transactionRepo.GetTransaction(ctx, id)
}

// UpdateStatus advances a transaction to the given status. A transition to
// completed rewards the buyer first and then the seller; the record is only
// persisted after both rewards succeed, so a failed reward leaves the store
// untouched and the caller can retry the whole operation.
func (uc *transactionUC) UpdateStatus(ctx context.Context, id int64, status models.TransactionStatus) (*models.Transaction, error) {
	tx, err := uc.transactionRepo.GetTransaction(ctx, id)
	if err != nil {
		return nil, err
	}

	tx.Status = status
	tx.UpdatedAt = time.Now()

	if tx.Status == models.TransactionStatusCompleted {
		if err := uc.applyGreenScoreRewards(ctx, tx); err != nil {
			return nil, err
		}
	}

	if err := uc.transactionRepo.UpdateTransaction(ctx, tx); err != nil {
		return nil, err
	}

	if tx.Status == models.TransactionStatusCompleted {
		uc.publishCompletedEvent(ctx, tx)
	}

	return tx, nil
}

// applyGreenScoreRewards performs the two ordered reward calls for a
// completion: buyer first, then seller. If the buyer call fails the seller is
// never attempted. If the seller call fails the buyer's reward has already
// been applied on the users service; that asymmetry is accepted and is not
// compensated here.
func (uc *transactionUC) applyGreenScoreRewards(ctx context.Context, tx *models.Transaction) error {
	if err := uc.transactionGW.IncrementGreenScore(ctx, tx.BuyerID, buyerGreenScoreIncrement); err != nil {
		return &apperrors.GreenScoreUpdateError{Err: err}
	}
	if err := uc.transactionGW.IncrementGreenScore(ctx, tx.SellerID, sellerGreenScoreIncrement); err != nil {
		return &apperrors.GreenScoreUpdateError{Err: err}
	}
	return nil
}

// publishCompletedEvent emits the completed-transaction event. Publishing is
// best effort: a failure is logged and never surfaced to the caller, the
// record is already durable at this point.
func (uc *transactionUC) publishCompletedEvent(ctx context.Context, tx *models.Transaction) {
	event := models.TransactionCompletedEvent{
		TransactionID: tx.ID,
		ListingID:     tx.ListingID,
		BuyerID:       tx.BuyerID,
		SellerID:      tx.SellerID,
		AgreedPrice:   tx.AgreedPrice,
		CompletedAt:   tx.UpdatedAt,
	}

	if err := uc.transactionGW.PublishTransactionCompleted(ctx, event); err != nil {
		logger.Warn("Failed to publish transaction completed event",
			logger.Int64("transaction_id", tx.ID),
			logger.Err(err))
	}
}
