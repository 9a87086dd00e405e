package http

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/ecocycle/ecocycle/internal/pkg/apperrors"
	"github.com/ecocycle/ecocycle/internal/pkg/logger"
	"github.com/ecocycle/ecocycle/internal/pkg/models"
	"github.com/ecocycle/ecocycle/internal/utils"
	"github.com/ecocycle/ecocycle/services/users"
)

// UserHandler handles HTTP requests for user operations
type UserHandler struct {
	userUC users.UserUC
}

// NewUserHandler creates a new user handler
func NewUserHandler(userUC users.UserUC) *UserHandler {
	return &UserHandler{
		userUC: userUC,
	}
}

// CreateUser handles user creation requests
func (h *UserHandler) CreateUser(c echo.Context) error {
	var req models.CreateUserRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	user, err := h.userUC.CreateUser(c.Request().Context(), req)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			return utils.BadRequestResponse(c, err.Error())
		}
		logger.Error("Failed to create user", logger.Err(err))
		return utils.InternalServerErrorResponse(c, "Failed to create user")
	}

	return utils.SuccessResponse(c, http.StatusCreated, "User created successfully", user)
}

// ListUsers handles user listing requests
func (h *UserHandler) ListUsers(c echo.Context) error {
	userList, err := h.userUC.ListUsers(c.Request().Context())
	if err != nil {
		logger.Error("Failed to list users", logger.Err(err))
		return utils.InternalServerErrorResponse(c, "Failed to list users")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Users retrieved successfully", userList)
}

// GetUser handles user retrieval requests
func (h *UserHandler) GetUser(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid user ID")
	}

	user, err := h.userUC.GetUserByID(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, apperrors.ErrUserNotFound) {
			return utils.NotFoundResponse(c, "User not found")
		}
		logger.Error("Failed to retrieve user", logger.Err(err))
		return utils.InternalServerErrorResponse(c, "Failed to retrieve user")
	}

	return utils.SuccessResponse(c, http.StatusOK, "User retrieved successfully", user)
}

// IncrementGreenScore handles green score increment requests. The delta
// defaults to 1 when absent.
func (h *UserHandler) IncrementGreenScore(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid user ID")
	}

	delta := 1
	if deltaStr := c.QueryParam("delta"); deltaStr != "" {
		delta, err = strconv.Atoi(deltaStr)
		if err != nil {
			return utils.BadRequestResponse(c, "Invalid delta value")
		}
	}

	user, err := h.userUC.IncrementGreenScore(c.Request().Context(), id, delta)
	if err != nil {
		if errors.Is(err, apperrors.ErrUserNotFound) {
			return utils.NotFoundResponse(c, "User not found")
		}
		logger.Error("Failed to increment green score",
			logger.Int64("user_id", id),
			logger.Err(err))
		return utils.InternalServerErrorResponse(c, "Failed to update green score")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Green score updated successfully", user)
}
