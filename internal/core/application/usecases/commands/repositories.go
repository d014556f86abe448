// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, per-order locking,
// transaction management, and persistence.
package commands

import (
	"context"
	"log/slog"
	"time"

	"fulfillment/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// These abstractions ensure an order, its shipment and its documents are always
// written together.
type (
	// TxManager handles transaction lifecycle.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// OrderRepoFactory provides access to the order repository within a transaction.
	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	// ShipmentRepoFactory provides access to the shipment repository within a transaction.
	ShipmentRepoFactory interface {
		ShipmentRepository() ports.ShipmentRepository
	}

	// DocumentRepoFactory provides access to the document repository within a transaction.
	DocumentRepoFactory interface {
		DocumentRepository() ports.DocumentRepository
	}

	// UoW manages transactions across orders, shipments and documents.
	//
	// Example:
	//   uow := factory.Create()
	//   err := uow.Begin(ctx)
	//   defer uow.Rollback(ctx)
	//
	//   orderRepo := uow.OrderRepository()
	//   shipmentRepo := uow.ShipmentRepository()
	//   // ... perform operations
	//
	//   err = uow.Commit(ctx)
	UoW interface {
		TxManager
		OrderRepoFactory
		ShipmentRepoFactory
		DocumentRepoFactory
	}

	// UoWFactory creates new unit of work instances.
	UoWFactory interface {
		Create() UoW
	}

	// KeyLocker serializes operations on the same order id.
	KeyLocker interface {
		Lock(key string) (unlock func())
	}
)

// Option configures optional collaborators of the order command handlers.
type Option func(*handlerOptions)

type handlerOptions struct {
	now       func() time.Time
	logger    *slog.Logger
	publisher ports.OrderEventPublisher
}

func newHandlerOptions(component string, opts []Option) handlerOptions {
	o := handlerOptions{
		now:    time.Now,
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(&o)
	}
	o.logger = o.logger.With("component", component)
	return o
}

// WithClock sets the time source for event timestamps.
func WithClock(now func() time.Time) Option {
	return func(o *handlerOptions) {
		if now != nil {
			o.now = now
		}
	}
}

// WithLogger sets the logger.
func WithLogger(logger *slog.Logger) Option {
	return func(o *handlerOptions) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// WithPublisher sets the publisher notified after each committed status change.
func WithPublisher(publisher ports.OrderEventPublisher) Option {
	return func(o *handlerOptions) {
		o.publisher = publisher
	}
}

// publish delivers event on a best-effort basis: the change is already committed,
// so a failure is only logged.
func (o handlerOptions) publish(ctx context.Context, event ports.OrderStatusChanged) {
	if o.publisher == nil {
		return
	}
	if err := o.publisher.PublishStatusChanged(ctx, event); err != nil {
		o.logger.ErrorContext(ctx, "failed to publish order status change",
			"order_id", event.OrderID, "to", event.To, "error", err)
	}
}
