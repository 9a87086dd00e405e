package transactions

import (
	"context"

	"github.com/ecocycle/ecocycle/internal/pkg/models"
)

// TransactionRepo defines the interface for transaction data access
//
//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/ecocycle/ecocycle/services/transactions TransactionRepo
type TransactionRepo interface {
	CreateTransaction(ctx context.Context, tx *models.Transaction) (*models.Transaction, error)
	GetTransaction(ctx context.Context, id int64) (*models.Transaction, error)
	UpdateTransaction(ctx context.Context, tx *models.Transaction) error
}
