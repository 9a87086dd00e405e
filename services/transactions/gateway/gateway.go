package gateway

import (
	"time"

	httpclient "github.com/ecocycle/ecocycle/internal/pkg/http"
	"github.com/ecocycle/ecocycle/internal/pkg/models"
	nsqpkg "github.com/ecocycle/ecocycle/internal/pkg/nsq"
	"github.com/ecocycle/ecocycle/services/transactions"
)

// transactionGW implements transactions.TransactionGW by combining the
// marketplace HTTP client, the users HTTP client and the NSQ event publisher.
type transactionGW struct {
	marketplace *MarketplaceClient
	users       *UsersClient
	events      *EventPublisher
}

// NewTransactionGW creates the gateway for the transactions service. The NSQ
// producer may be nil, in which case event publishing is a no-op.
func NewTransactionGW(cfg *models.Config, producer *nsqpkg.Producer) transactions.TransactionGW {
	return &transactionGW{
		marketplace: NewMarketplaceClient(cfg.Services.MarketplaceServiceURL),
		users:       NewUsersClient(cfg.Services.UsersServiceURL, cfg.APIKey.TransactionsService),
		events:      NewEventPublisher(producer),
	}
}

// newClient builds the shared HTTP client with the gateway's default timeout
func newClient(baseURL string) *httpclient.Client {
	return httpclient.NewClient(baseURL, 10*time.Second)
}
