package users

import (
	"context"

	"github.com/ecocycle/ecocycle/internal/pkg/models"
)

// UserRepo defines the interface for user data access
//
//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/ecocycle/ecocycle/services/users UserRepo
type UserRepo interface {
	CreateUser(ctx context.Context, user *models.User) (*models.User, error)
	GetUserByID(ctx context.Context, id int64) (*models.User, error)
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
	ListUsers(ctx context.Context) ([]*models.User, error)
	IncrementGreenScore(ctx context.Context, id int64, delta int) (*models.User, error)
}
