package ports

import (
	"context"
	"time"
)

// OrderStatusChanged is published after a status change of an order was committed.
// From is empty for a newly seeded order.
type OrderStatusChanged struct {
	OrderID        string    `json:"orderId"`
	From           string    `json:"from,omitempty"`
	To             string    `json:"to"`
	Carrier        string    `json:"carrier,omitempty"`
	TrackingNumber string    `json:"trackingNumber,omitempty"`
	OccurredAt     time.Time `json:"occurredAt"`
}

// OrderEventPublisher delivers order events to interested parties.
type OrderEventPublisher interface {
	PublishStatusChanged(ctx context.Context, event OrderStatusChanged) error
}
