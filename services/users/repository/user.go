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

// UserRepo provides PostgreSQL-backed user storage
type UserRepo struct {
	cfg *models.Config
	db  *sqlx.DB
}

// NewUserRepository creates a new user repository
func NewUserRepository(cfg *models.Config, db *sqlx.DB) *UserRepo {
	return &UserRepo{
		cfg: cfg,
		db:  db,
	}
}

// CreateUser inserts a new user and returns it with its server-assigned id
func (r *UserRepo) CreateUser(ctx context.Context, user *models.User) (*models.User, error) {
	query := `
		INSERT INTO users (username, email, green_score, is_verifier, created_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`

	err := r.db.QueryRowContext(
		ctx,
		query,
		user.Username,
		user.Email,
		user.GreenScore,
		user.IsVerifier,
		user.CreatedAt,
	).Scan(&user.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	return user, nil
}

// GetUserByID retrieves a user by id
func (r *UserRepo) GetUserByID(ctx context.Context, id int64) (*models.User, error) {
	query := `
		SELECT id, username, email, green_score, is_verifier, created_at
		FROM users
		WHERE id = $1
	`

	var user models.User
	err := r.db.GetContext(ctx, &user, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	return &user, nil
}

// GetUserByEmail retrieves a user by email
func (r *UserRepo) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	query := `
		SELECT id, username, email, green_score, is_verifier, created_at
		FROM users
		WHERE email = $1
	`

	var user models.User
	err := r.db.GetContext(ctx, &user, query, email)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user by email: %w", err)
	}

	return &user, nil
}

// ListUsers returns all users
func (r *UserRepo) ListUsers(ctx context.Context) ([]*models.User, error) {
	query := `
		SELECT id, username, email, green_score, is_verifier, created_at
		FROM users
		ORDER BY id
	`

	var userList []*models.User
	if err := r.db.SelectContext(ctx, &userList, query); err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}

	return userList, nil
}

// IncrementGreenScore atomically applies a delta to a user's green score and
// returns the updated user.
func (r *UserRepo) IncrementGreenScore(ctx context.Context, id int64, delta int) (*models.User, error) {
	query := `
		UPDATE users
		SET green_score = green_score + $1
		WHERE id = $2
		RETURNING id, username, email, green_score, is_verifier, created_at
	`

	var user models.User
	err := r.db.GetContext(ctx, &user, query, delta, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to increment green score: %w", err)
	}

	return &user, nil
}
