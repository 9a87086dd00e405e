package usecase

import (
	"context"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ecocycle/ecocycle/internal/pkg/apperrors"
	jwtpkg "github.com/ecocycle/ecocycle/internal/pkg/jwt"
	"github.com/ecocycle/ecocycle/internal/pkg/models"
)

func TestRegister_IssuesTokenForCreatedUser(t *testing.T) {
	mockRepo, uc := setupUserUC(t)

	mockRepo.EXPECT().
		CreateUser(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, user *models.User) (*models.User, error) {
			user.ID = 42
			return user, nil
		})

	resp, err := uc.Register(context.Background(), models.RegisterRequest{
		Username: "dina",
		Email:    "dina@example.com",
	})

	require.NoError(t, err)
	require.NotEmpty(t, resp.Token)
	assert.Greater(t, resp.ExpiresAt, int64(0))

	userID, err := jwtpkg.ValidateToken(resp.Token, "test-secret")
	require.NoError(t, err)
	assert.Equal(t, int64(42), userID)
}

func TestRegister_MissingFields(t *testing.T) {
	_, uc := setupUserUC(t)

	_, err := uc.Register(context.Background(), models.RegisterRequest{Email: "dina@example.com"})

	assert.ErrorIs(t, err, apperrors.ErrValidation)
}

func TestLogin_IssuesTokenForExistingUser(t *testing.T) {
	mockRepo, uc := setupUserUC(t)

	mockRepo.EXPECT().
		GetUserByEmail(gomock.Any(), "dina@example.com").
		Return(&models.User{ID: 42, Username: "dina", Email: "dina@example.com"}, nil)

	resp, err := uc.Login(context.Background(), models.LoginRequest{Email: "dina@example.com"})

	require.NoError(t, err)
	require.NotEmpty(t, resp.Token)

	userID, err := jwtpkg.ValidateToken(resp.Token, "test-secret")
	require.NoError(t, err)
	assert.Equal(t, int64(42), userID)
}

func TestLogin_UnknownEmail(t *testing.T) {
	mockRepo, uc := setupUserUC(t)

	mockRepo.EXPECT().
		GetUserByEmail(gomock.Any(), "ghost@example.com").
		Return(nil, apperrors.ErrUserNotFound)

	_, err := uc.Login(context.Background(), models.LoginRequest{Email: "ghost@example.com"})

	assert.ErrorIs(t, err, apperrors.ErrUserNotFound)
}

func TestLogin_MissingEmail(t *testing.T) {
	_, uc := setupUserUC(t)

	_, err := uc.Login(context.Background(), models.LoginRequest{})

	assert.ErrorIs(t, err, apperrors.ErrValidation)
}
