package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ecocycle/ecocycle/internal/pkg/apperrors"
	"github.com/ecocycle/ecocycle/internal/pkg/models"
	"github.com/ecocycle/ecocycle/services/users/mocks"
)

func setupUserUC(t *testing.T) (*mocks.MockUserRepo, *userUC) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	mockRepo := mocks.NewMockUserRepo(ctrl)

	cfg := &models.Config{
		JWT: models.JWTConfig{
			Secret:     "test-secret",
			Expiration: 60,
			Issuer:     "ecocycle-test",
		},
	}

	uc := NewUserUC(cfg, mockRepo).(*userUC)
	return mockRepo, uc
}

func TestCreateUser_Success(t *testing.T) {
	mockRepo, uc := setupUserUC(t)

	mockRepo.EXPECT().
		CreateUser(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, user *models.User) (*models.User, error) {
			assert.Equal(t, "dina", user.Username)
			assert.Equal(t, "dina@example.com", user.Email)
			assert.Equal(t, 0, user.GreenScore)
			assert.False(t, user.IsVerifier)
			user.ID = 7
			return user, nil
		})

	user, err := uc.CreateUser(context.Background(), models.CreateUserRequest{
		Username: "dina",
		Email:    "dina@example.com",
	})

	require.NoError(t, err)
	assert.Equal(t, int64(7), user.ID)
	assert.Equal(t, 0, user.GreenScore)
}

func TestCreateUser_MissingFields(t *testing.T) {
	_, uc := setupUserUC(t)

	_, err := uc.CreateUser(context.Background(), models.CreateUserRequest{Username: "dina"})

	assert.ErrorIs(t, err, apperrors.ErrValidation)
}

func TestGetUserByID_NotFound(t *testing.T) {
	mockRepo, uc := setupUserUC(t)

	mockRepo.EXPECT().
		GetUserByID(gomock.Any(), int64(99)).
		Return(nil, apperrors.ErrUserNotFound)

	_, err := uc.GetUserByID(context.Background(), 99)

	assert.ErrorIs(t, err, apperrors.ErrUserNotFound)
}

func TestIncrementGreenScore_Success(t *testing.T) {
	mockRepo, uc := setupUserUC(t)

	mockRepo.EXPECT().
		IncrementGreenScore(gomock.Any(), int64(7), 5).
		Return(&models.User{ID: 7, Username: "dina", GreenScore: 15}, nil)

	user, err := uc.IncrementGreenScore(context.Background(), 7, 5)

	require.NoError(t, err)
	assert.Equal(t, 15, user.GreenScore)
}

func TestIncrementGreenScore_NotFound(t *testing.T) {
	mockRepo, uc := setupUserUC(t)

	mockRepo.EXPECT().
		IncrementGreenScore(gomock.Any(), int64(99), 10).
		Return(nil, apperrors.ErrUserNotFound)

	_, err := uc.IncrementGreenScore(context.Background(), 99, 10)

	assert.ErrorIs(t, err, apperrors.ErrUserNotFound)
}

func TestListUsers_RepoError(t *testing.T) {
	mockRepo, uc := setupUserUC(t)

	repoErr := errors.New("connection refused")
	mockRepo.EXPECT().
		ListUsers(gomock.Any()).
		Return(nil, repoErr)

	_, err := uc.ListUsers(context.Background())

	assert.ErrorIs(t, err, repoErr)
}
