package http

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/ecocycle/ecocycle/internal/pkg/apperrors"
	"github.com/ecocycle/ecocycle/internal/pkg/logger"
	"github.com/ecocycle/ecocycle/internal/pkg/models"
	"github.com/ecocycle/ecocycle/internal/utils"
	"github.com/ecocycle/ecocycle/services/users"
)

// AuthHandler handles token issuance requests
type AuthHandler struct {
	userUC users.UserUC
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(userUC users.UserUC) *AuthHandler {
	return &AuthHandler{
		userUC: userUC,
	}
}

// Register handles account registration, returning a bearer token
func (h *AuthHandler) Register(c echo.Context) error {
	var req models.RegisterRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	resp, err := h.userUC.Register(c.Request().Context(), req)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			return utils.BadRequestResponse(c, err.Error())
		}
		logger.Error("Failed to register user", logger.Err(err))
		return utils.InternalServerErrorResponse(c, "Failed to register")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Registered successfully", resp)
}

// Login handles token issuance for an existing account
func (h *AuthHandler) Login(c echo.Context) error {
	var req models.LoginRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	resp, err := h.userUC.Login(c.Request().Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrUserNotFound):
			return utils.NotFoundResponse(c, "User not found")
		case errors.Is(err, apperrors.ErrValidation):
			return utils.BadRequestResponse(c, err.Error())
		}
		logger.Error("Failed to login", logger.Err(err))
		return utils.InternalServerErrorResponse(c, "Failed to login")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Logged in successfully", resp)
}
