package http

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/ecocycle/ecocycle/internal/pkg/apperrors"
	"github.com/ecocycle/ecocycle/internal/pkg/logger"
	"github.com/ecocycle/ecocycle/internal/pkg/middleware"
	"github.com/ecocycle/ecocycle/internal/pkg/models"
	"github.com/ecocycle/ecocycle/internal/utils"
	"github.com/ecocycle/ecocycle/services/transactions"
)

// TransactionHandler handles HTTP requests for transaction operations
type TransactionHandler struct {
	transactionUC transactions.TransactionUC
}

// NewTransactionHandler creates a new transaction handler
func NewTransactionHandler(transactionUC transactions.TransactionUC) *TransactionHandler {
	return &TransactionHandler{
		transactionUC: transactionUC,
	}
}

// CreateOffer handles offer creation requests
func (h *TransactionHandler) CreateOffer(c echo.Context) error {
	var req models.CreateOfferRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	buyerID, ok := middleware.CallerID(c)
	if !ok {
		logger.Error("Missing caller identity on protected route",
			logger.String("endpoint", "CreateOffer"))
		return utils.InternalServerErrorResponse(c, "Missing caller identity")
	}

	tx, err := h.transactionUC.CreateOffer(c.Request().Context(), buyerID, middleware.CallerToken(c), req)
	if err != nil {
		return h.mapError(c, err)
	}

	return utils.SuccessResponse(c, http.StatusCreated, "Offer created successfully", tx)
}

// ClaimDonation handles donation claim requests
func (h *TransactionHandler) ClaimDonation(c echo.Context) error {
	var req models.ClaimDonationRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	receiverID, ok := middleware.CallerID(c)
	if !ok {
		logger.Error("Missing caller identity on protected route",
			logger.String("endpoint", "ClaimDonation"))
		return utils.InternalServerErrorResponse(c, "Missing caller identity")
	}

	tx, err := h.transactionUC.ClaimDonation(c.Request().Context(), receiverID, middleware.CallerToken(c), req)
	if err != nil {
		return h.mapError(c, err)
	}

	return utils.SuccessResponse(c, http.StatusCreated, "Donation claimed successfully", tx)
}

// GetTransaction handles transaction retrieval requests
func (h *TransactionHandler) GetTransaction(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid transaction ID")
	}

	tx, err := h.transactionUC.GetTransaction(c.Request().Context(), id)
	if err != nil {
		return h.mapError(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Transaction retrieved successfully", tx)
}

// UpdateStatus handles transaction status update requests
func (h *TransactionHandler) UpdateStatus(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid transaction ID")
	}

	var req models.UpdateTransactionStatusRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	if !req.Status.IsValid() {
		return utils.BadRequestResponse(c, "Invalid transaction status")
	}

	tx, err := h.transactionUC.UpdateStatus(c.Request().Context(), id, req.Status)
	if err != nil {
		return h.mapError(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Transaction updated successfully", tx)
}

// mapError translates error categories into HTTP responses. Green score
// failures are reported distinctly so callers know the transaction was not
// advanced and the same update can be retried.
func (h *TransactionHandler) mapError(c echo.Context, err error) error {
	switch {
	case apperrors.IsGreenScoreUpdateError(err):
		logger.Error("Green score update failed", logger.Err(err))
		return utils.ErrorResponseHandler(c, http.StatusBadGateway, err.Error())
	case errors.Is(err, apperrors.ErrListingNotFound):
		return utils.NotFoundResponse(c, "Listing not found")
	case errors.Is(err, apperrors.ErrTransactionNotFound):
		return utils.NotFoundResponse(c, "Transaction not found")
	case errors.Is(err, apperrors.ErrValidation):
		return utils.BadRequestResponse(c, err.Error())
	case errors.Is(err, apperrors.ErrUpstreamUnavailable):
		logger.Error("Upstream service unavailable", logger.Err(err))
		return utils.BadGatewayResponse(c, "")
	default:
		logger.Error("Transaction operation failed", logger.Err(err))
		return utils.InternalServerErrorResponse(c, "")
	}
}
