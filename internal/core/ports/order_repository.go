// Package ports defines the contracts between the application core and the
// infrastructure: repositories bound to a unit of work, the snapshot store, the
// snapshot archive and the order event publisher.
package ports

import (
	"context"

	"fulfillment/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for orders.
type OrderRepository interface {
	// Add stores a new order. Returns errs.ErrObjectAlreadyExists if the id is taken.
	Add(ctx context.Context, aggregate *order.Order) error

	// Put stores the order, replacing any order with the same id.
	Put(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order by id. Returns errs.ErrObjectNotFound if absent.
	Get(ctx context.Context, id string) (*order.Order, error)

	// List returns all orders in insertion order.
	List(ctx context.Context) ([]*order.Order, error)
}
