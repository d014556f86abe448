package commands

import (
	"fulfillment/internal/core/domain/model/document"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/domain/model/shipment"
)

// OrderLifecycle is the committed state of one order.
type OrderLifecycle struct {
	Order     order.Record      `json:"order"`
	Shipment  shipment.Record   `json:"shipment"`
	Documents []document.Record `json:"documents"`
}

func newOrderLifecycle(o *order.Order, s *shipment.Shipment, docs []*document.Document) OrderLifecycle {
	records := make([]document.Record, 0, len(docs))
	for _, d := range docs {
		records = append(records, d.Record())
	}
	return OrderLifecycle{
		Order:     o.Record(),
		Shipment:  s.Record(),
		Documents: records,
	}
}
