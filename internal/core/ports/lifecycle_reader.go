package ports

import (
	"context"

	"fulfillment/internal/core/domain/model/document"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/domain/model/shipment"
)

// OrderView is an order together with its shipment and documents, read at one
// point in time. Shipment is nil if the order has none.
type OrderView struct {
	Order     *order.Order
	Shipment  *shipment.Shipment
	Documents []*document.Document
}

// LifecycleReader reads whole order lifecycles consistently.
type LifecycleReader interface {
	// GetLifecycle returns the view of one order. Returns errs.ErrObjectNotFound if
	// the order does not exist.
	GetLifecycle(ctx context.Context, orderID string) (OrderView, error)

	// ListLifecycles returns the views of all orders in insertion order.
	ListLifecycles(ctx context.Context) ([]OrderView, error)
}
