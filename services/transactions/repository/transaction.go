package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/ecocycle/ecocycle/internal/pkg/apperrors"
	"github.com/ecocycle/ecocycle/internal/pkg/models"
)

// TransactionRepo provides PostgreSQL-backed transaction storage
type TransactionRepo struct {
	cfg *models.Config
	db  *sqlx.DB
}

// NewTransactionRepository creates a new transaction repository
func NewTransactionRepository(cfg *models.Config, db *sqlx.DB) *TransactionRepo {
	return &TransactionRepo{
		cfg: cfg,
		db:  db,
	}
}

// CreateTransaction inserts a new transaction and returns it with its
// server-assigned id.
func (r *TransactionRepo) CreateTransaction(ctx context.Context, tx *models.Transaction) (*models.Transaction, error) {
	query := `
		INSERT INTO transactions (
			listing_id, buyer_id, seller_id, status, agreed_price, created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id
	`

	err := r.db.QueryRowContext(
		ctx,
		query,
		tx.ListingID,
		tx.BuyerID,
		tx.SellerID,
		tx.Status,
		tx.AgreedPrice,
		tx.CreatedAt,
		tx.UpdatedAt,
	).Scan(&tx.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to create transaction: %w", err)
	}

	return tx, nil
}

// GetTransaction retrieves a transaction by id
func (r *TransactionRepo) GetTransaction(ctx context.Context, id int64) (*models.Transaction, error) {
	query := `
		SELECT id, listing_id, buyer_id, seller_id, status, agreed_price, created_at, updated_at
		FROM transactions
		WHERE id = $1
	`

	var tx models.Transaction
	err := r.db.GetContext(ctx, &tx, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.ErrTransactionNotFound
		}
		return nil, fmt.Errorf("failed to get transaction: %w", err)
	}

	return &tx, nil
}

// UpdateTransaction persists a status change as a single atomic update
func (r *TransactionRepo) UpdateTransaction(ctx context.Context, tx *models.Transaction) error {
	query := `
		UPDATE transactions
		SET status = $1, updated_at = $2
		WHERE id = $3
	`

	result, err := r.db.ExecContext(ctx, query, tx.Status, tx.UpdatedAt, tx.ID)
	if err != nil {
		return fmt.Errorf("failed to update transaction: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read update result: %w", err)
	}
	if rows == 0 {
		return apperrors.ErrTransactionNotFound
	}

	return nil
}
