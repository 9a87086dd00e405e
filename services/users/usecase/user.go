package usecase

import (
	"context"
	"time"

	"github.com/ecocycle/ecocycle/internal/pkg/apperrors"
	"github.com/ecocycle/ecocycle/internal/pkg/logger"
	"github.com/ecocycle/ecocycle/internal/pkg/models"
	"github.com/ecocycle/ecocycle/services/users"
)

// userUC implements the users.UserUC interface
type userUC struct {
	cfg      *models.Config
	userRepo users.UserRepo
}

// NewUserUC creates a new user use case
func NewUserUC(cfg *models.Config, userRepo users.UserRepo) users.UserUC {
	return &userUC{
		cfg:      cfg,
		userRepo: userRepo,
	}
}

// CreateUser creates a new account with a zero green score
func (uc *userUC) CreateUser(ctx context.Context, req models.CreateUserRequest) (*models.User, error) {
	if req.Username == "" || req.Email == "" {
		return nil, apperrors.ValidationError("username and email are required")
	}

	user := &models.User{
		Username:   req.Username,
		Email:      req.Email,
		GreenScore: 0,
		IsVerifier: false,
		CreatedAt:  time.Now(),
	}

	return uc.userRepo.CreateUser(ctx, user)
}

// ListUsers returns all registered users
func (uc *userUC) ListUsers(ctx context.Context) ([]*models.User, error) {
	return uc.userRepo.ListUsers(ctx)
}

// GetUserByID retrieves a user by id
func (uc *userUC) GetUserByID(ctx context.Context, id int64) (*models.User, error) {
	return uc.userRepo.GetUserByID(ctx, id)
}

// IncrementGreenScore applies a delta to a user's green score. The increment
// is atomic in the store; callers may be concurrent.
func (uc *userUC) IncrementGreenScore(ctx context.Context, id int64, delta int) (*models.User, error) {
	user, err := uc.userRepo.IncrementGreenScore(ctx, id, delta)
	if err != nil {
		return nil, err
	}

	logger.Info("Green score updated",
		logger.Int64("user_id", user.ID),
		logger.Int("delta", delta),
		logger.Int("green_score", user.GreenScore))

	return user, nil
}
