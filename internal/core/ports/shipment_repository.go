package ports

import (
	"context"

	"fulfillment/internal/core/domain/model/shipment"
)

// ShipmentRepository defines the persistence contract for shipments.
type ShipmentRepository interface {
	// Put stores the shipment, replacing any shipment with the same id.
	Put(ctx context.Context, s *shipment.Shipment) error

	// Get retrieves a shipment by id. Returns errs.ErrObjectNotFound if absent.
	Get(ctx context.Context, id string) (*shipment.Shipment, error)

	// GetByOrder retrieves the shipment of an order. Returns errs.ErrObjectNotFound if
	// the order has none.
	GetByOrder(ctx context.Context, orderID string) (*shipment.Shipment, error)

	// List returns all shipments in insertion order.
	List(ctx context.Context) ([]*shipment.Shipment, error)
}
