package http

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/ecocycle/ecocycle/internal/pkg/apperrors"
	"github.com/ecocycle/ecocycle/internal/pkg/middleware"
	"github.com/ecocycle/ecocycle/internal/pkg/models"
	"github.com/ecocycle/ecocycle/services/transactions/mocks"
)

func setupHandlerTest(t *testing.T) (*mocks.MockTransactionUC, *TransactionHandler) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	mockUC := mocks.NewMockTransactionUC(ctrl)
	return mockUC, NewTransactionHandler(mockUC)
}

func newContext(t *testing.T, method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set(middleware.UserIDContextKey, int64(100))
	c.Set(middleware.TokenContextKey, "caller-token")
	return c, rec
}

func TestCreateOffer(t *testing.T) {
	mockUC, handler := setupHandlerTest(t)

	created := &models.Transaction{
		ID:          1,
		ListingID:   10,
		BuyerID:     100,
		SellerID:    200,
		Status:      models.TransactionStatusPending,
		AgreedPrice: decimal.RequireFromString("50.00"),
	}

	mockUC.EXPECT().
		CreateOffer(gomock.Any(), int64(100), "caller-token", gomock.Any()).
		Return(created, nil)

	c, rec := newContext(t, http.MethodPost, "/transactions/offer", `{"listing_id":10,"offer_amount":"50.00"}`)

	err := handler.CreateOffer(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), `"status":"pending"`)
}

func TestCreateOffer_ListingNotFound(t *testing.T) {
	mockUC, handler := setupHandlerTest(t)

	mockUC.EXPECT().
		CreateOffer(gomock.Any(), int64(100), "caller-token", gomock.Any()).
		Return(nil, apperrors.ErrListingNotFound)

	c, rec := newContext(t, http.MethodPost, "/transactions/offer", `{"listing_id":99,"offer_amount":"50.00"}`)

	err := handler.CreateOffer(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestCreateOffer_WrongListingType(t *testing.T) {
	mockUC, handler := setupHandlerTest(t)

	mockUC.EXPECT().
		CreateOffer(gomock.Any(), int64(100), "caller-token", gomock.Any()).
		Return(nil, apperrors.ValidationError("offers only allowed on sale or rental listings"))

	c, rec := newContext(t, http.MethodPost, "/transactions/offer", `{"listing_id":12,"offer_amount":"50.00"}`)

	err := handler.CreateOffer(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCreateOffer_UpstreamUnavailable(t *testing.T) {
	mockUC, handler := setupHandlerTest(t)

	mockUC.EXPECT().
		CreateOffer(gomock.Any(), int64(100), "caller-token", gomock.Any()).
		Return(nil, apperrors.ErrUpstreamUnavailable)

	c, rec := newContext(t, http.MethodPost, "/transactions/offer", `{"listing_id":10,"offer_amount":"50.00"}`)

	err := handler.CreateOffer(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusBadGateway, rec.Code)
}

func TestClaimDonation(t *testing.T) {
	mockUC, handler := setupHandlerTest(t)

	created := &models.Transaction{
		ID:          2,
		ListingID:   13,
		BuyerID:     100,
		SellerID:    200,
		Status:      models.TransactionStatusConfirmed,
		AgreedPrice: decimal.Zero,
	}

	mockUC.EXPECT().
		ClaimDonation(gomock.Any(), int64(100), "caller-token", gomock.Any()).
		Return(created, nil)

	c, rec := newContext(t, http.MethodPost, "/transactions/donate", `{"listing_id":13}`)

	err := handler.ClaimDonation(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), `"status":"confirmed"`)
}

func TestGetTransaction_NotFound(t *testing.T) {
	mockUC, handler := setupHandlerTest(t)

	mockUC.EXPECT().
		GetTransaction(gomock.Any(), int64(42)).
		Return(nil, apperrors.ErrTransactionNotFound)

	c, rec := newContext(t, http.MethodGet, "/transactions/42", "")
	c.SetParamNames("id")
	c.SetParamValues("42")

	err := handler.GetTransaction(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestGetTransaction_InvalidID(t *testing.T) {
	_, handler := setupHandlerTest(t)

	c, rec := newContext(t, http.MethodGet, "/transactions/abc", "")
	c.SetParamNames("id")
	c.SetParamValues("abc")

	err := handler.GetTransaction(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestUpdateStatus_Completed(t *testing.T) {
	mockUC, handler := setupHandlerTest(t)

	updated := &models.Transaction{
		ID:          1,
		ListingID:   10,
		BuyerID:     100,
		SellerID:    200,
		Status:      models.TransactionStatusCompleted,
		AgreedPrice: decimal.RequireFromString("50.00"),
	}

	mockUC.EXPECT().
		UpdateStatus(gomock.Any(), int64(1), models.TransactionStatusCompleted).
		Return(updated, nil)

	c, rec := newContext(t, http.MethodPut, "/transactions/1", `{"status":"completed"}`)
	c.SetParamNames("id")
	c.SetParamValues("1")

	err := handler.UpdateStatus(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"status":"completed"`)
}

func TestUpdateStatus_InvalidStatus(t *testing.T) {
	_, handler := setupHandlerTest(t)

	c, rec := newContext(t, http.MethodPut, "/transactions/1", `{"status":"shipped"}`)
	c.SetParamNames("id")
	c.SetParamValues("1")

	err := handler.UpdateStatus(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestUpdateStatus_GreenScoreFailure(t *testing.T) {
	mockUC, handler := setupHandlerTest(t)

	gsErr := &apperrors.GreenScoreUpdateError{Err: errors.New("users service down")}

	mockUC.EXPECT().
		UpdateStatus(gomock.Any(), int64(1), models.TransactionStatusCompleted).
		Return(nil, gsErr)

	c, rec := newContext(t, http.MethodPut, "/transactions/1", `{"status":"completed"}`)
	c.SetParamNames("id")
	c.SetParamValues("1")

	err := handler.UpdateStatus(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusBadGateway, rec.Code)
	assert.Contains(t, rec.Body.String(), "failed to update green scores")
}

func TestCreateOffer_MissingCallerIdentity(t *testing.T) {
	_, handler := setupHandlerTest(t)

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/transactions/offer", strings.NewReader(`{"listing_id":10,"offer_amount":"50.00"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := handler.CreateOffer(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}
