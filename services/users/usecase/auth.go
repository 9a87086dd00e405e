package usecase

import (
	"context"
	"time"

	"github.com/ecocycle/ecocycle/internal/pkg/apperrors"
	jwtpkg "github.com/ecocycle/ecocycle/internal/pkg/jwt"
	"github.com/ecocycle/ecocycle/internal/pkg/logger"
	"github.com/ecocycle/ecocycle/internal/pkg/models"
)

// Register creates a new account and issues a token for it
func (uc *userUC) Register(ctx context.Context, req models.RegisterRequest) (*models.AuthResponse, error) {
	if req.Username == "" || req.Email == "" {
		return nil, apperrors.ValidationError("username and email are required")
	}

	user := &models.User{
		Username:  req.Username,
		Email:     req.Email,
		CreatedAt: time.Now(),
	}

	created, err := uc.userRepo.CreateUser(ctx, user)
	if err != nil {
		return nil, err
	}

	return uc.issueToken(created.ID)
}

// Login issues a token for an existing account looked up by email
func (uc *userUC) Login(ctx context.Context, req models.LoginRequest) (*models.AuthResponse, error) {
	if req.Email == "" {
		return nil, apperrors.ValidationError("email is required")
	}

	user, err := uc.userRepo.GetUserByEmail(ctx, req.Email)
	if err != nil {
		return nil, err
	}

	return uc.issueToken(user.ID)
}

func (uc *userUC) issueToken(userID int64) (*models.AuthResponse, error) {
	token, expiresAt, err := jwtpkg.GenerateToken(userID, uc.cfg.JWT)
	if err != nil {
		logger.Error("Failed to generate token", logger.Int64("user_id", userID), logger.Err(err))
		return nil, err
	}

	return &models.AuthResponse{
		Token:     token,
		ExpiresAt: expiresAt,
	}, nil
}
