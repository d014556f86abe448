package queries

import (
	"errors"
	"time"

	"fulfillment/internal/pkg/guard"
)

var (
	ErrListOrdersQueryIsNotConstructed = errors.New(
		"ListOrdersQuery must be created via NewListOrdersQuery constructor",
	)
)

// ListOrdersQuery retrieves a summary of every order.
// This is a parameterless query; results keep the store's insertion order.
type ListOrdersQuery struct {
	guard guard.ConstructorGuard
}

// NewListOrdersQuery creates a query to list all orders.
func NewListOrdersQuery() ListOrdersQuery {
	return ListOrdersQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q ListOrdersQuery) Validate() error {
	return q.guard.Validate(ErrListOrdersQueryIsNotConstructed)
}

// ListOrdersQueryResponse summarizes one order and its shipment.
type ListOrdersQueryResponse struct {
	ID             string    `json:"id"`
	Status         string    `json:"status"`
	PlacedAt       time.Time `json:"placedAt"`
	Product        string    `json:"product"`
	ShipmentStatus string    `json:"shipmentStatus,omitempty"`
	Progress       int       `json:"progress"`
	Carrier        string    `json:"carrier,omitempty"`
	TrackingNumber string    `json:"trackingNumber,omitempty"`
	Documents      int       `json:"documents"`
}
