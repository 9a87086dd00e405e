package users

import (
	"context"

	"github.com/ecocycle/ecocycle/internal/pkg/models"
)

// UserUC defines the interface for user and auth business logic
//
//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/ecocycle/ecocycle/services/users UserUC
type UserUC interface {
	Register(ctx context.Context, req models.RegisterRequest) (*models.AuthResponse, error)
	Login(ctx context.Context, req models.LoginRequest) (*models.AuthResponse, error)
	CreateUser(ctx context.Context, req models.CreateUserRequest) (*models.User, error)
	ListUsers(ctx context.Context) ([]*models.User, error)
	GetUserByID(ctx context.Context, id int64) (*models.User, error)
	IncrementGreenScore(ctx context.Context, id int64, delta int) (*models.User, error)
}
