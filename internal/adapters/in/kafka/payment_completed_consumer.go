// Package kafka consumes payment-completed events and feeds them to the trigger
// adapter.
//
// A message is committed once it is handled or once it can never succeed: malformed
// payloads, validation failures, unknown orders, invalid transitions. Any other
// failure, including a partial commit, is retried with a doubling delay. After the
// last allowed attempt the message is logged and committed so the partition keeps
// moving. Redelivery is safe because a repeated transition is a no-op.
package kafka

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"fulfillment/internal/adapters/in/trigger"
	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/pkg/errs"

	skafka "github.com/segmentio/kafka-go"
)

const (
	defaultRetryDelay  = time.Second
	defaultMaxAttempts = 5
	maxRetryDelay      = 30 * time.Second
)

// Reader is the subset of kafka.Reader the consumer uses.
type Reader interface {
	FetchMessage(ctx context.Context) (skafka.Message, error)
	CommitMessages(ctx context.Context, msgs ...skafka.Message) error
	Close() error
}

// Triggerer advances an order for an incoming event.
type Triggerer interface {
	Trigger(ctx context.Context, event trigger.Event) (commands.AdvanceOrderResult, error)
}

// PaymentCompletedConsumer reads payment-completed events from a consumer group.
type PaymentCompletedConsumer struct {
	reader      Reader
	triggerer   Triggerer
	logger      *slog.Logger
	retryDelay  time.Duration
	maxAttempts int
}

// Option configures a PaymentCompletedConsumer.
type Option func(*PaymentCompletedConsumer)

// WithLogger sets the logger.
func WithLogger(logger *slog.Logger) Option {
	return func(c *PaymentCompletedConsumer) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// WithRetryDelay sets the delay before the first retry. Later retries double it up
// to 30s. Non-positive values are ignored.
func WithRetryDelay(delay time.Duration) Option {
	return func(c *PaymentCompletedConsumer) {
		if delay > 0 {
			c.retryDelay = delay
		}
	}
}

// WithMaxAttempts sets how many times a failing message is handled before it is
// committed anyway. Values below 1 are ignored.
func WithMaxAttempts(attempts int) Option {
	return func(c *PaymentCompletedConsumer) {
		if attempts > 0 {
			c.maxAttempts = attempts
		}
	}
}

// NewPaymentCompletedConsumer creates a consumer for topic in consumer group groupID.
func NewPaymentCompletedConsumer(
	brokers []string,
	topic, groupID string,
	triggerer Triggerer,
	opts ...Option,
) *PaymentCompletedConsumer {
	reader := skafka.NewReader(skafka.ReaderConfig{
		Brokers:  brokers,
		Topic:    topic,
		GroupID:  groupID,
		MinBytes: 1,
		MaxBytes: 10e6,
		MaxWait:  500 * time.Millisecond,
	})
	return NewPaymentCompletedConsumerWithReader(reader, triggerer, opts...)
}

// NewPaymentCompletedConsumerWithReader creates a consumer on an existing reader.
func NewPaymentCompletedConsumerWithReader(reader Reader, triggerer Triggerer, opts ...Option) *PaymentCompletedConsumer {
	c := &PaymentCompletedConsumer{
		reader:      reader,
		triggerer:   triggerer,
		logger:      slog.Default(),
		retryDelay:  defaultRetryDelay,
		maxAttempts: defaultMaxAttempts,
	}
	for _, opt := range opts {
		opt(c)
	}
	c.logger = c.logger.With("component", "payment-completed-consumer")
	return c
}

// Run consumes messages until ctx is cancelled. It returns nil on cancellation.
func (c *PaymentCompletedConsumer) Run(ctx context.Context) error {
	c.logger.InfoContext(ctx, "consumer started")
	defer c.logger.Info("consumer stopped")

	for {
		msg, err := c.reader.FetchMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				return nil
			}
			c.logger.ErrorContext(ctx, "failed to fetch message", "error", err)
			if !c.wait(ctx, c.retryDelay) {
				return nil
			}
			continue
		}

		if !c.process(ctx, msg) {
			return nil
		}
	}
}

// Close closes the reader.
func (c *PaymentCompletedConsumer) Close() error {
	return c.reader.Close()
}

// process handles msg until it is committed. It returns false once ctx is done.
func (c *PaymentCompletedConsumer) process(ctx context.Context, msg skafka.Message) bool {
	delay := c.retryDelay
	for attempt := 1; ; attempt++ {
		err := c.handle(ctx, msg)
		switch {
		case err == nil:
		case isPermanent(err):
			c.logger.ErrorContext(ctx, "dropping payment-completed message",
				"key", string(msg.Key), "partition", msg.Partition, "offset", msg.Offset, "error", err)
		case attempt >= c.maxAttempts:
			c.logger.ErrorContext(ctx, "giving up on payment-completed message",
				"key", string(msg.Key), "partition", msg.Partition, "offset", msg.Offset,
				"attempts", attempt, "error", err)
		default:
			c.logger.WarnContext(ctx, "payment-completed message failed, will retry",
				"key", string(msg.Key), "partition", msg.Partition, "offset", msg.Offset,
				"attempt", attempt, "retry_in", delay, "error", err)
			if !c.wait(ctx, delay) {
				return false
			}
			delay = min(2*delay, maxRetryDelay)
			continue
		}

		if err := c.reader.CommitMessages(ctx, msg); err != nil {
			if ctx.Err() != nil {
				return false
			}
			c.logger.ErrorContext(ctx, "failed to commit offset", "offset", msg.Offset, "error", err)
		}
		return true
	}
}

func (c *PaymentCompletedConsumer) handle(ctx context.Context, msg skafka.Message) error {
	event, err := decodeEvent(msg)
	if err != nil {
		return err
	}

	result, err := c.triggerer.Trigger(ctx, event)
	if err != nil {
		return err
	}

	c.logger.InfoContext(ctx, "payment-completed message handled",
		"order_id", event.OrderID, "target_status", event.TargetStatus, "applied", result.Applied)
	return nil
}

func (c *PaymentCompletedConsumer) wait(ctx context.Context, delay time.Duration) bool {
	timer := time.NewTimer(delay)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return false
	case <-timer.C:
		return true
	}
}

// decodeEvent reads the JSON body. The message key stands in for a missing order id.
func decodeEvent(msg skafka.Message) (trigger.Event, error) {
	var event trigger.Event
	if err := json.Unmarshal(msg.Value, &event); err != nil {
		return trigger.Event{}, errs.NewValueIsInvalidErrorWithCause("message", fmt.Errorf("decode payment-completed event: %w", err))
	}
	if strings.TrimSpace(event.OrderID) == "" {
		event.OrderID = string(msg.Key)
	}
	return event, nil
}

// isPermanent reports whether retrying err can never succeed. A partial commit
// failure wraps its cause but stays retryable up to the attempt limit.
func isPermanent(err error) bool {
	if errors.Is(err, errs.ErrPartialCommit) {
		return false
	}
	for _, target := range []error{
		errs.ErrValueIsRequired,
		errs.ErrValueIsInvalid,
		errs.ErrValueIsOutOfRange,
		errs.ErrObjectNotFound,
		errs.ErrObjectAlreadyExists,
		errs.ErrInvalidTransition,
	} {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}
