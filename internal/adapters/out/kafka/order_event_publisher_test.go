package kafka_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"fulfillment/internal/adapters/out/kafka"
	"fulfillment/internal/core/ports"

	skafka "github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeWriter records the messages written.
type fakeWriter struct {
	msgs   []skafka.Message
	err    error
	closed bool
}

func (f *fakeWriter) WriteMessages(_ context.Context, msgs ...skafka.Message) error {
	if f.err != nil {
		return f.err
	}
	f.msgs = append(f.msgs, msgs...)
	return nil
}

func (f *fakeWriter) Close() error {
	f.closed = true
	return nil
}

func TestOrderEventPublisher_PublishStatusChanged(t *testing.T) {
	fw := &fakeWriter{}
	p := kafka.NewOrderEventPublisherWithWriter(fw)
	event := ports.OrderStatusChanged{
		OrderID:        "O1",
		From:           "OPEN",
		To:             "SHIPPED",
		Carrier:        "DHL Express",
		TrackingNumber: "JD0123456789",
		OccurredAt:     time.Date(2026, 3, 3, 11, 30, 0, 0, time.UTC),
	}

	require.NoError(t, p.PublishStatusChanged(context.Background(), event))

	require.Len(t, fw.msgs, 1)
	msg := fw.msgs[0]
	assert.Equal(t, []byte("O1"), msg.Key)
	assert.Equal(t, event.OccurredAt, msg.Time)
	require.Len(t, msg.Headers, 1)
	assert.Equal(t, "order.status_changed", string(msg.Headers[0].Value))

	var decoded ports.OrderStatusChanged
	require.NoError(t, json.Unmarshal(msg.Value, &decoded))
	assert.Equal(t, event, decoded)
}

func TestOrderEventPublisher_SeedEventOmitsFrom(t *testing.T) {
	fw := &fakeWriter{}
	p := kafka.NewOrderEventPublisherWithWriter(fw)

	require.NoError(t, p.PublishStatusChanged(context.Background(), ports.OrderStatusChanged{OrderID: "O2", To: "OPEN"}))

	require.Len(t, fw.msgs, 1)
	assert.NotContains(t, string(fw.msgs[0].Value), `"from"`)
}

func TestOrderEventPublisher_WriteError(t *testing.T) {
	broker := errors.New("broker unavailable")
	p := kafka.NewOrderEventPublisherWithWriter(&fakeWriter{err: broker})

	err := p.PublishStatusChanged(context.Background(), ports.OrderStatusChanged{OrderID: "O1", To: "DELIVERED"})

	assert.ErrorIs(t, err, broker)
	assert.Contains(t, err.Error(), "O1")
}

func TestOrderEventPublisher_Close(t *testing.T) {
	fw := &fakeWriter{}
	p := kafka.NewOrderEventPublisherWithWriter(fw)

	require.NoError(t, p.Close())
	assert.True(t, fw.closed)
}
