package transactions

import (
	"context"

	"github.com/ecocycle/ecocycle/internal/pkg/models"
)

// TransactionUC defines the interface for transaction business logic
//
//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/ecocycle/ecocycle/services/transactions TransactionUC
type TransactionUC interface {
	CreateOffer(ctx context.Context, buyerID int64, token string, req models.CreateOfferRequest) (*models.Transaction, error)
	ClaimDonation(ctx context.Context, receiverID int64, token string, req models.ClaimDonationRequest) (*models.Transaction, error)
	GetTransaction(ctx context.Context, id int64) (*models.Transaction, error)
	UpdateStatus(ctx context.Context, id int64, status models.TransactionStatus) (*models.Transaction, error)
}
