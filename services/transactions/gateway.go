package transactions

import (
	"context"

	"github.com/ecocycle/ecocycle/internal/pkg/models"
)

// TransactionGW defines the interface for the transactions service's remote
// collaborators: the marketplace catalog, the users green score ledger and
// the event stream.
//
//go:generate mockgen -destination=mocks/mock_gateway.go -package=mocks github.com/ecocycle/ecocycle/services/transactions TransactionGW
type TransactionGW interface {
	// GetListing fetches the authoritative listing snapshot from the
	// marketplace service, re-authorizing with the caller's own token.
	GetListing(ctx context.Context, listingID int64, token string) (*models.Listing, error)

	// IncrementGreenScore applies a signed delta to a user's green score.
	IncrementGreenScore(ctx context.Context, userID int64, delta int) error

	// PublishTransactionCompleted emits a completed-transaction event.
	PublishTransactionCompleted(ctx context.Context, event models.TransactionCompletedEvent) error
}
