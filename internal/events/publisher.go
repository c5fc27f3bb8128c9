package events

import (
	"context"
	"time"

	"redeem-server/internal/clients/kafka"
	"redeem-server/internal/observability"
	"redeem-server/internal/store"

	"github.com/google/uuid"
)

const EventOrderCompleted = "order.completed"

// EventProducer is the Kafka capability the publisher needs.
type EventProducer interface {
	PublishEvent(ctx context.Context, event kafka.EventMessage) error
}

// Publisher handles publishing domain events to Kafka
type Publisher struct {
	producer EventProducer
	logger   *observability.Logger
	now      func() time.Time
}

// NewPublisher creates a new event publisher
func NewPublisher(producer EventProducer, logger *observability.Logger) *Publisher {
	return &Publisher{
		producer: producer,
		logger:   logger,
		now:      time.Now,
	}
}

// PublishOrderCompleted publishes an order.completed event for a settled order
func (p *Publisher) PublishOrderCompleted(ctx context.Context, order store.Order) error {
	event := kafka.EventMessage{
		ID:     uuid.New().String(),
		Type:   EventOrderCompleted,
		UserID: order.UserID.String(),
		Data: map[string]interface{}{
			"orderId":        order.ID.String(),
			"productId":      order.ProductID.String(),
			"creditsApplied": order.CreditsApplied,
			"cashPayment":    order.CashPayment.String(),
		},
		Timestamp: p.now().UTC().Format(time.RFC3339),
	}

	return p.producer.PublishEvent(ctx, event)
}
