// Package kafka publishes order events to a Kafka topic.
package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"fulfillment/internal/core/ports"

	skafka "github.com/segmentio/kafka-go"
)

var _ ports.OrderEventPublisher = (*OrderEventPublisher)(nil)

// Writer is the subset of kafka.Writer the publisher uses.
type Writer interface {
	WriteMessages(ctx context.Context, msgs ...skafka.Message) error
	Close() error
}

// OrderEventPublisher writes order events as JSON messages keyed by order id, so
// events of one order stay in one partition.
type OrderEventPublisher struct {
	writer Writer
}

// NewOrderEventPublisher creates a publisher writing to topic on the given brokers.
func NewOrderEventPublisher(brokers []string, topic string) *OrderEventPublisher {
	return NewOrderEventPublisherWithWriter(&skafka.Writer{
		Addr:         skafka.TCP(brokers...),
		Topic:        topic,
		Balancer:     &skafka.Hash{},
		RequiredAcks: skafka.RequireAll,
		BatchTimeout: 10 * time.Millisecond,
	})
}

// NewOrderEventPublisherWithWriter creates a publisher on an existing writer.
func NewOrderEventPublisherWithWriter(w Writer) *OrderEventPublisher {
	return &OrderEventPublisher{writer: w}
}

// PublishStatusChanged writes one message for event.
func (p *OrderEventPublisher) PublishStatusChanged(ctx context.Context, event ports.OrderStatusChanged) error {
	value, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshal order status changed: %w", err)
	}

	msg := skafka.Message{
		Key:   []byte(event.OrderID),
		Value: value,
		Time:  event.OccurredAt,
		Headers: []skafka.Header{
			{Key: "event-type", Value: []byte("order.status_changed")},
		},
	}
	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		return fmt.Errorf("write order status changed for %s: %w", event.OrderID, err)
	}
	return nil
}

// Close flushes and closes the writer.
func (p *OrderEventPublisher) Close() error {
	return p.writer.Close()
}
