package gateway

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/ecocycle/ecocycle/internal/pkg/apperrors"
	httpclient "github.com/ecocycle/ecocycle/internal/pkg/http"
	"github.com/ecocycle/ecocycle/internal/pkg/logger"
	"github.com/ecocycle/ecocycle/internal/pkg/middleware"
	"github.com/ecocycle/ecocycle/internal/pkg/models"
)

// MarketplaceClient is an HTTP client for the marketplace listing catalog
type MarketplaceClient struct {
	client *httpclient.Client
}

// NewMarketplaceClient creates a new marketplace HTTP client
func NewMarketplaceClient(marketplaceServiceURL string) *MarketplaceClient {
	return &MarketplaceClient{
		client: newClient(marketplaceServiceURL),
	}
}

// listingEnvelope mirrors the marketplace service's response envelope
type listingEnvelope struct {
	Success bool           `json:"success"`
	Data    models.Listing `json:"data"`
	Error   string         `json:"error"`
}

// GetListing fetches a listing snapshot, forwarding the caller's bearer token
// so the marketplace service authorizes the read as the caller.
func (c *MarketplaceClient) GetListing(ctx context.Context, listingID int64, token string) (*models.Listing, error) {
	url := fmt.Sprintf("%s/listings/%d", c.client.BaseURL, listingID)

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create listing request: %w", err)
	}
	httpReq.Header.Set("Authorization", "Bearer "+token)

	resp, err := c.client.HTTPClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrUpstreamUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, apperrors.ErrListingNotFound
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: marketplace returned status %d", apperrors.ErrUpstreamUnavailable, resp.StatusCode)
	}

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrUpstreamUnavailable, err)
	}

	var envelope listingEnvelope
	if err := json.Unmarshal(respBody, &envelope); err != nil {
		logger.Error("Failed to parse listing response",
			logger.Int64("listing_id", listingID),
			logger.Err(err))
		return nil, fmt.Errorf("%w: invalid listing response", apperrors.ErrUpstreamUnavailable)
	}

	return &envelope.Data, nil
}

// UsersClient is an HTTP client for the users green score ledger
type UsersClient struct {
	client *httpclient.Client
	apiKey string
}

// NewUsersClient creates a new users HTTP client authenticating with the
// shared service API key.
func NewUsersClient(usersServiceURL, apiKey string) *UsersClient {
	return &UsersClient{
		client: newClient(usersServiceURL),
		apiKey: apiKey,
	}
}

// IncrementGreenScore applies a delta to a user's green score. Any non-success
// response or transport error is surfaced as a single unified failure.
func (c *UsersClient) IncrementGreenScore(ctx context.Context, userID int64, delta int) error {
	url := fmt.Sprintf("%s/internal/users/%d/greenscore?delta=%d", c.client.BaseURL, userID, delta)

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPut, url, nil)
	if err != nil {
		return fmt.Errorf("failed to create green score request: %w", err)
	}
	httpReq.Header.Set(middleware.APIKeyHeader, c.apiKey)

	resp, err := c.client.HTTPClient.Do(httpReq)
	if err != nil {
		return fmt.Errorf("failed to increment green score for user %d: %w", userID, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("green score update for user %d failed: (status: %d, body: %s)",
			userID, resp.StatusCode, string(body))
	}

	return nil
}

// Gateway delegation methods

// GetListing delegates to the marketplace client
func (gw *transactionGW) GetListing(ctx context.Context, listingID int64, token string) (*models.Listing, error) {
	return gw.marketplace.GetListing(ctx, listingID, token)
}

// IncrementGreenScore delegates to the users client
func (gw *transactionGW) IncrementGreenScore(ctx context.Context, userID int64, delta int) error {
	return gw.users.IncrementGreenScore(ctx, userID, delta)
}
