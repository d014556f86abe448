// Package trigger turns external status events into order transitions.
//
// Each accepted event runs the advance use case on a bounded worker pool. The work
// itself is detached from the caller's context, so once started it always reaches
// an all-or-nothing end. The caller waits at most the configured timeout and then
// gets ErrTriggerTimeout; a transition that completes afterwards still commits, and
// re-submitting the same event is safe because a replay changes nothing.
//
// Usage:
//
//	adapter, err := trigger.NewAdapter(advanceHandler,
//	    trigger.WithPoolSize(cfg.TriggerPoolSize),
//	    trigger.WithTimeout(cfg.TriggerTimeout),
//	)
//	if err != nil {
//	    return err
//	}
//	defer adapter.Close()
//
//	result, err := adapter.Trigger(ctx, trigger.Event{OrderID: "O1", TargetStatus: "SHIPPED", Carrier: "DHL Express"})
package trigger

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"fulfillment/internal/core/application/usecases/commands"

	"github.com/panjf2000/ants/v2"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	metricnoop "go.opentelemetry.io/otel/metric/noop"
	"go.opentelemetry.io/otel/trace"
	nooptrace "go.opentelemetry.io/otel/trace/noop"
)

const (
	instrumentationName = "fulfillment/internal/adapters/in/trigger"

	defaultPoolSize = 16
	defaultTimeout  = 5 * time.Second
	releaseTimeout  = 30 * time.Second
)

// ErrTriggerTimeout is returned when a transition does not finish within the
// adapter's timeout. The transition may still commit later.
var ErrTriggerTimeout = errors.New("trigger timed out")

// Advancer runs an order transition.
type Advancer interface {
	Handle(ctx context.Context, cmd commands.AdvanceOrderCommand) (commands.AdvanceOrderResult, error)
}

// Option configures an Adapter.
type Option func(*Adapter)

// WithPoolSize sets the number of concurrent transitions.
func WithPoolSize(size int) Option {
	return func(a *Adapter) {
		if size > 0 {
			a.poolSize = size
		}
	}
}

// WithTimeout sets how long Trigger waits for a transition.
func WithTimeout(timeout time.Duration) Option {
	return func(a *Adapter) {
		if timeout > 0 {
			a.timeout = timeout
		}
	}
}

// WithLogger sets the logger.
func WithLogger(logger *slog.Logger) Option {
	return func(a *Adapter) {
		if logger != nil {
			a.logger = logger
		}
	}
}

// WithTracer sets the tracer used for trigger spans.
func WithTracer(tracer trace.Tracer) Option {
	return func(a *Adapter) {
		if tracer != nil {
			a.tracer = tracer
		}
	}
}

// WithMeter sets the meter used for the outcome counter.
func WithMeter(meter metric.Meter) Option {
	return func(a *Adapter) {
		if meter != nil {
			a.meter = meter
		}
	}
}

// Adapter validates trigger events and runs them on a worker pool.
type Adapter struct {
	advancer Advancer
	pool     *ants.Pool
	poolSize int
	timeout  time.Duration
	logger   *slog.Logger
	tracer   trace.Tracer
	meter    metric.Meter
	outcomes metric.Int64Counter
}

type outcome struct {
	result commands.AdvanceOrderResult
	err    error
}

// NewAdapter creates an adapter and its worker pool. Close releases the pool.
func NewAdapter(advancer Advancer, opts ...Option) (*Adapter, error) {
	if advancer == nil {
		return nil, errors.New("trigger: advancer is required")
	}

	a := &Adapter{
		advancer: advancer,
		poolSize: defaultPoolSize,
		timeout:  defaultTimeout,
		logger:   slog.Default(),
		tracer:   nooptrace.NewTracerProvider().Tracer(instrumentationName),
		meter:    metricnoop.NewMeterProvider().Meter(instrumentationName),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(a)
		}
	}
	a.logger = a.logger.With("component", "trigger-adapter")

	outcomes, err := a.meter.Int64Counter("trigger.outcomes",
		metric.WithDescription("Number of trigger events by outcome"))
	if err != nil {
		return nil, fmt.Errorf("trigger: create outcome counter: %w", err)
	}
	a.outcomes = outcomes

	pool, err := ants.NewPool(a.poolSize,
		ants.WithNonblocking(false),
		ants.WithExpiryDuration(10*time.Second),
		ants.WithPanicHandler(func(p any) {
			a.logger.Error("trigger worker panic recovered", "panic", p)
		}),
	)
	if err != nil {
		return nil, fmt.Errorf("trigger: create worker pool: %w", err)
	}
	a.pool = pool

	return a, nil
}

// Trigger validates the event and advances the order. Invalid events return a
// validation error and change nothing. Errors from the transition are returned
// unchanged; there is no retry.
func (a *Adapter) Trigger(ctx context.Context, event Event) (commands.AdvanceOrderResult, error) {
	ctx, span := a.tracer.Start(ctx, "Trigger",
		trace.WithAttributes(
			attribute.String("order.id", event.OrderID),
			attribute.String("order.target_status", event.TargetStatus),
		))
	defer span.End()

	if err := event.Validate(); err != nil {
		return commands.AdvanceOrderResult{}, a.fail(ctx, span, "rejected", event, err)
	}
	cmd, err := commands.NewAdvanceOrderCommand(event.OrderID, event.TargetStatus, event.Carrier)
	if err != nil {
		return commands.AdvanceOrderResult{}, a.fail(ctx, span, "rejected", event, err)
	}

	done := make(chan outcome, 1)
	detached := context.WithoutCancel(ctx)
	if err := a.pool.Submit(func() {
		result, err := a.advancer.Handle(detached, cmd)
		done <- outcome{result: result, err: err}
	}); err != nil {
		return commands.AdvanceOrderResult{}, a.fail(ctx, span, "failed", event, fmt.Errorf("submit trigger: %w", err))
	}

	timer := time.NewTimer(a.timeout)
	defer timer.Stop()

	select {
	case out := <-done:
		if out.err != nil {
			return commands.AdvanceOrderResult{}, a.fail(ctx, span, "failed", event, out.err)
		}
		label := "replayed"
		if out.result.Applied {
			label = "applied"
		}
		span.SetAttributes(attribute.Bool("order.applied", out.result.Applied))
		a.outcomes.Add(ctx, 1, metric.WithAttributes(attribute.String("outcome", label)))
		a.logger.InfoContext(ctx, "trigger completed",
			"order_id", cmd.OrderID(), "target_status", cmd.Status().String(), "applied", out.result.Applied)
		return out.result, nil
	case <-timer.C:
		err := fmt.Errorf("%w: order %s after %s", ErrTriggerTimeout, cmd.OrderID(), a.timeout)
		return commands.AdvanceOrderResult{}, a.fail(ctx, span, "timeout", event, err)
	case <-ctx.Done():
		return commands.AdvanceOrderResult{}, a.fail(ctx, span, "cancelled", event, ctx.Err())
	}
}

// Close waits for running transitions and releases the pool.
func (a *Adapter) Close() error {
	return a.pool.ReleaseTimeout(releaseTimeout)
}

func (a *Adapter) fail(ctx context.Context, span trace.Span, label string, event Event, err error) error {
	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())
	a.outcomes.Add(ctx, 1, metric.WithAttributes(attribute.String("outcome", label)))
	a.logger.ErrorContext(ctx, "trigger failed",
		"order_id", event.OrderID, "target_status", event.TargetStatus, "outcome", label, "error", err)
	return err
}
