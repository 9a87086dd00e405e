package handler

import (
	"time"

	"github.com/labstack/echo/v4"

	"github.com/ecocycle/ecocycle/internal/pkg/database"
	"github.com/ecocycle/ecocycle/internal/pkg/middleware"
	"github.com/ecocycle/ecocycle/internal/pkg/models"
	"github.com/ecocycle/ecocycle/services/users/handler/http"
)

// Handler coordinates the HTTP handlers for the users service
type Handler struct {
	userHandler *http.UserHandler
	authHandler *http.AuthHandler
	redisClient *database.RedisClient
	cfg         *models.Config
}

// NewHandler creates and initializes all handlers
func NewHandler(
	userHandler *http.UserHandler,
	authHandler *http.AuthHandler,
	redisClient *database.RedisClient,
	cfg *models.Config,
) *Handler {
	return &Handler{
		userHandler: userHandler,
		authHandler: authHandler,
		redisClient: redisClient,
		cfg:         cfg,
	}
}

// RegisterRoutes registers all routes for the users service
func (h *Handler) RegisterRoutes(e *echo.Echo) {
	e.Use(middleware.JWTAuthMiddleware(h.cfg.JWT))

	// Public routes (token issuance), rate limited per client
	authGroup := e.Group("/auth")
	if h.redisClient != nil {
		authGroup.Use(middleware.RateLimiterMiddleware(middleware.RateLimiterConfig{
			RedisClient: h.redisClient.GetClient(),
			Key:         "ratelimit:auth",
			Limit:       10,
			Period:      time.Minute,
		}))
	}
	authGroup.POST("/register", h.authHandler.Register)
	authGroup.POST("/login", h.authHandler.Login)

	// Protected user routes
	userGroup := e.Group("/users")
	userGroup.POST("", h.userHandler.CreateUser)
	userGroup.GET("", h.userHandler.ListUsers)
	userGroup.GET("/:id", h.userHandler.GetUser)
	userGroup.PUT("/:id/greenscore", h.userHandler.IncrementGreenScore)

	// Internal routes for service-to-service calls, guarded by API key
	internalGroup := e.Group("/internal", middleware.ValidateAPIKey(h.cfg.APIKey.TransactionsService))
	internalGroup.PUT("/users/:id/greenscore", h.userHandler.IncrementGreenScore)
}
