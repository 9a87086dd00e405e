package repository

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ecocycle/ecocycle/internal/pkg/apperrors"
	"github.com/ecocycle/ecocycle/internal/pkg/models"
)

func setupTransactionRepoTest(t *testing.T) (*TransactionRepo, sqlmock.Sqlmock) {
	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)

	sqlxDB := sqlx.NewDb(mockDB, "sqlmock")
	t.Cleanup(func() { sqlxDB.Close() })

	repo := NewTransactionRepository(&models.Config{}, sqlxDB)
	return repo, mock
}

func TestCreateTransaction(t *testing.T) {
	repo, mock := setupTransactionRepoTest(t)

	now := time.Now()
	tx := &models.Transaction{
		ListingID:   10,
		BuyerID:     100,
		SellerID:    200,
		Status:      models.TransactionStatusPending,
		AgreedPrice: decimal.RequireFromString("50.00"),
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	mock.ExpectQuery("INSERT INTO transactions").
		WithArgs(tx.ListingID, tx.BuyerID, tx.SellerID, tx.Status, tx.AgreedPrice, tx.CreatedAt, tx.UpdatedAt).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(1)))

	created, err := repo.CreateTransaction(context.Background(), tx)

	require.NoError(t, err)
	assert.Equal(t, int64(1), created.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetTransaction(t *testing.T) {
	repo, mock := setupTransactionRepoTest(t)

	now := time.Now()
	rows := sqlmock.NewRows([]string{
		"id", "listing_id", "buyer_id", "seller_id", "status", "agreed_price", "created_at", "updated_at",
	}).AddRow(int64(1), int64(10), int64(100), int64(200), "pending", "50.00", now, now)

	mock.ExpectQuery("SELECT (.+) FROM transactions WHERE id").
		WithArgs(int64(1)).
		WillReturnRows(rows)

	tx, err := repo.GetTransaction(context.Background(), 1)

	require.NoError(t, err)
	assert.Equal(t, int64(1), tx.ID)
	assert.Equal(t, models.TransactionStatusPending, tx.Status)
	assert.True(t, tx.AgreedPrice.Equal(decimal.RequireFromString("50.00")))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetTransaction_NotFound(t *testing.T) {
	repo, mock := setupTransactionRepoTest(t)

	mock.ExpectQuery("SELECT (.+) FROM transactions WHERE id").
		WithArgs(int64(42)).
		WillReturnError(sql.ErrNoRows)

	tx, err := repo.GetTransaction(context.Background(), 42)

	assert.Nil(t, tx)
	assert.ErrorIs(t, err, apperrors.ErrTransactionNotFound)
}

func TestUpdateTransaction(t *testing.T) {
	repo, mock := setupTransactionRepoTest(t)

	tx := &models.Transaction{
		ID:        1,
		Status:    models.TransactionStatusCompleted,
		UpdatedAt: time.Now(),
	}

	mock.ExpectExec("UPDATE transactions SET status").
		WithArgs(tx.Status, tx.UpdatedAt, tx.ID).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.UpdateTransaction(context.Background(), tx)

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateTransaction_NotFound(t *testing.T) {
	repo, mock := setupTransactionRepoTest(t)

	tx := &models.Transaction{
		ID:        42,
		Status:    models.TransactionStatusCancelled,
		UpdatedAt: time.Now(),
	}

	mock.ExpectExec("UPDATE transactions SET status").
		WithArgs(tx.Status, tx.UpdatedAt, tx.ID).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.UpdateTransaction(context.Background(), tx)

	assert.ErrorIs(t, err, apperrors.ErrTransactionNotFound)
}

func TestUpdateTransaction_DatabaseError(t *testing.T) {
	repo, mock := setupTransactionRepoTest(t)

	tx := &models.Transaction{
		ID:        1,
		Status:    models.TransactionStatusConfirmed,
		UpdatedAt: time.Now(),
	}

	mock.ExpectExec("UPDATE transactions SET status").
		WithArgs(tx.Status, tx.UpdatedAt, tx.ID).
		WillReturnError(errors.New("connection reset"))

	err := repo.UpdateTransaction(context.Background(), tx)

	assert.Error(t, err)
	assert.NotErrorIs(t, err, apperrors.ErrTransactionNotFound)
}
