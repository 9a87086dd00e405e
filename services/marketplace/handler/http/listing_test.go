package http

import (
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
	"github.com/ecocycle/ecocycle/services/marketplace/mocks"
)

func setupHandlerTest(t *testing.T) (*mocks.MockListingUC, *ListingHandler) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	mockUC := mocks.NewMockListingUC(ctrl)
	return mockUC, NewListingHandler(mockUC)
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
	c.Set(middleware.UserIDContextKey, int64(200))
	c.Set(middleware.TokenContextKey, "caller-token")
	return c, rec
}

func TestCreateListing(t *testing.T) {
	mockUC, handler := setupHandlerTest(t)

	created := &models.Listing{
		ID:      10,
		Title:   "Refurbished bike",
		Type:    models.ListingTypeSale,
		Price:   decimal.RequireFromString("75.00"),
		OwnerID: 200,
	}

	mockUC.EXPECT().
		CreateListing(gomock.Any(), int64(200), gomock.Any()).
		Return(created, nil)

	c, rec := newContext(t, http.MethodPost, "/listings", `{"title":"Refurbished bike","type":"sale","price":"75.00"}`)

	err := handler.CreateListing(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), `"type":"sale"`)
}

func TestCreateListing_ValidationError(t *testing.T) {
	mockUC, handler := setupHandlerTest(t)

	mockUC.EXPECT().
		CreateListing(gomock.Any(), int64(200), gomock.Any()).
		Return(nil, apperrors.ValidationError("unknown listing type %q", "auction"))

	c, rec := newContext(t, http.MethodPost, "/listings", `{"title":"Refurbished bike","type":"auction"}`)

	err := handler.CreateListing(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCreateListing_MissingCallerIdentity(t *testing.T) {
	_, handler := setupHandlerTest(t)

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/listings", strings.NewReader(`{"title":"Refurbished bike","type":"sale"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := handler.CreateListing(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), "Missing caller identity")
}

func TestListListings_TypeFilter(t *testing.T) {
	mockUC, handler := setupHandlerTest(t)

	mockUC.EXPECT().
		ListListings(gomock.Any(), models.ListingTypeDonation).
		Return([]*models.Listing{{ID: 11, Title: "Old textbooks", Type: models.ListingTypeDonation}}, nil)

	c, rec := newContext(t, http.MethodGet, "/listings?type=donation", "")

	err := handler.ListListings(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"type":"donation"`)
}

func TestGetListing_NotFound(t *testing.T) {
	mockUC, handler := setupHandlerTest(t)

	mockUC.EXPECT().
		GetListing(gomock.Any(), int64(99)).
		Return(nil, apperrors.ErrListingNotFound)

	c, rec := newContext(t, http.MethodGet, "/listings/99", "")
	c.SetParamNames("id")
	c.SetParamValues("99")

	err := handler.GetListing(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestGetListing_InvalidID(t *testing.T) {
	_, handler := setupHandlerTest(t)

	c, rec := newContext(t, http.MethodGet, "/listings/abc", "")
	c.SetParamNames("id")
	c.SetParamValues("abc")

	err := handler.GetListing(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
