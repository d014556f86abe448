package queries

import (
	"context"

	"fulfillment/internal/core/domain/model/document"
	"fulfillment/internal/core/ports"
)

// GetOrderLifecycleQueryHandler reads one order lifecycle from the store.
type GetOrderLifecycleQueryHandler struct {
	reader ports.LifecycleReader
}

// NewGetOrderLifecycleQueryHandler creates a handler for lifecycle queries.
func NewGetOrderLifecycleQueryHandler(reader ports.LifecycleReader) GetOrderLifecycleQueryHandler {
	return GetOrderLifecycleQueryHandler{reader: reader}
}

// Handle returns the order, its shipment and its documents in issue order.
// Returns errs.ErrObjectNotFound for an unknown order.
func (h GetOrderLifecycleQueryHandler) Handle(
	ctx context.Context,
	query GetOrderLifecycleQuery,
) (GetOrderLifecycleQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetOrderLifecycleQueryResponse{}, err
	}

	view, err := h.reader.GetLifecycle(ctx, query.OrderID())
	if err != nil {
		return GetOrderLifecycleQueryResponse{}, err
	}

	return toLifecycleResponse(view), nil
}

func toLifecycleResponse(view ports.OrderView) GetOrderLifecycleQueryResponse {
	resp := GetOrderLifecycleQueryResponse{Order: view.Order.Record()}
	if view.Shipment != nil {
		r := view.Shipment.Record()
		resp.Shipment = &r
	}
	resp.Documents = make([]document.Record, 0, len(view.Documents))
	for _, d := range view.Documents {
		resp.Documents = append(resp.Documents, d.Record())
	}
	return resp
}
