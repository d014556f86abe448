package queries

import (
	"context"

	"fulfillment/internal/core/ports"
)

// ListOrdersQueryHandler lists order summaries from the store.
type ListOrdersQueryHandler struct {
	reader ports.LifecycleReader
}

// NewListOrdersQueryHandler creates a handler for order listing.
func NewListOrdersQueryHandler(reader ports.LifecycleReader) ListOrdersQueryHandler {
	return ListOrdersQueryHandler{reader: reader}
}

// Handle returns one summary per order in insertion order.
func (h ListOrdersQueryHandler) Handle(ctx context.Context, query ListOrdersQuery) ([]ListOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	views, err := h.reader.ListLifecycles(ctx)
	if err != nil {
		return nil, err
	}

	orders := make([]ListOrdersQueryResponse, 0, len(views))
	for _, v := range views {
		resp := ListOrdersQueryResponse{
			ID:        v.Order.ID(),
			Status:    v.Order.Status().String(),
			PlacedAt:  v.Order.PlacedAt(),
			Product:   v.Order.Product().Name(),
			Documents: len(v.Documents),
		}
		if v.Shipment != nil {
			resp.ShipmentStatus = v.Shipment.Status().String()
			resp.Progress = v.Shipment.Progress()
			resp.Carrier = v.Shipment.Carrier()
			resp.TrackingNumber = v.Shipment.TrackingNumber()
		}
		orders = append(orders, resp)
	}

	return orders, nil
}
