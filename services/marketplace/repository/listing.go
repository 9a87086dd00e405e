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

// ListingRepo provides PostgreSQL-backed listing storage
type ListingRepo struct {
	cfg *models.Config
	db  *sqlx.DB
}

// NewListingRepository creates a new listing repository
func NewListingRepository(cfg *models.Config, db *sqlx.DB) *ListingRepo {
	return &ListingRepo{
		cfg: cfg,
		db:  db,
	}
}

// CreateListing inserts a new listing and returns it with its server-assigned id
func (r *ListingRepo) CreateListing(ctx context.Context, listing *models.Listing) (*models.Listing, error) {
	query := `
		INSERT INTO listings (title, description, type, price, condition, location, owner_id, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id
	`

	err := r.db.QueryRowContext(
		ctx,
		query,
		listing.Title,
		listing.Description,
		listing.Type,
		listing.Price,
		listing.Condition,
		listing.Location,
		listing.OwnerID,
		listing.CreatedAt,
	).Scan(&listing.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to create listing: %w", err)
	}

	return listing, nil
}

// GetListing retrieves a listing by id
func (r *ListingRepo) GetListing(ctx context.Context, id int64) (*models.Listing, error) {
	query := `
		SELECT id, title, description, type, price, condition, location, owner_id, created_at
		FROM listings
		WHERE id = $1
	`

	var listing models.Listing
	err := r.db.GetContext(ctx, &listing, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.ErrListingNotFound
		}
		return nil, fmt.Errorf("failed to get listing: %w", err)
	}

	return &listing, nil
}

// ListListings returns listings, optionally filtered by type
func (r *ListingRepo) ListListings(ctx context.Context, listingType models.ListingType) ([]*models.Listing, error) {
	query := `
		SELECT id, title, description, type, price, condition, location, owner_id, created_at
		FROM listings
	`
	args := []interface{}{}
	if listingType != "" {
		query += " WHERE type = $1"
		args = append(args, listingType)
	}
	query += " ORDER BY id"

	var listingList []*models.Listing
	if err := r.db.SelectContext(ctx, &listingList, query, args...); err != nil {
		return nil, fmt.Errorf("failed to list listings: %w", err)
	}

	return listingList, nil
}
