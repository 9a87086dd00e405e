package gateway

import (
	"context"

	"github.com/ecocycle/ecocycle/internal/pkg/models"
	nsqpkg "github.com/ecocycle/ecocycle/internal/pkg/nsq"
)

// TopicTransactionCompleted is the NSQ topic for completed transactions
const TopicTransactionCompleted = "transaction.completed"

// EventPublisher publishes transaction lifecycle events to NSQ
type EventPublisher struct {
	producer *nsqpkg.Producer
}

// NewEventPublisher creates a new event publisher. A nil producer disables
// publishing.
func NewEventPublisher(producer *nsqpkg.Producer) *EventPublisher {
	return &EventPublisher{producer: producer}
}

// PublishTransactionCompleted publishes a completed-transaction event
func (p *EventPublisher) PublishTransactionCompleted(_ context.Context, event models.TransactionCompletedEvent) error {
	if p.producer == nil {
		return nil
	}
	return p.producer.Publish(TopicTransactionCompleted, event)
}

// PublishTransactionCompleted delegates to the event publisher
func (gw *transactionGW) PublishTransactionCompleted(ctx context.Context, event models.TransactionCompletedEvent) error {
	return gw.events.PublishTransactionCompleted(ctx, event)
}
