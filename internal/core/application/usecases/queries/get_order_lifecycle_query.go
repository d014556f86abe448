// Package queries contains read operations of the CQRS architecture. Queries never
// modify state and read whole order lifecycles consistently.
package queries

import (
	"errors"
	"strings"

	"fulfillment/internal/core/domain/model/document"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/domain/model/shipment"
	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"
)

var (
	ErrGetOrderLifecycleQueryIsNotConstructed = errors.New(
		"GetOrderLifecycleQuery must be created via NewGetOrderLifecycleQuery constructor",
	)
)

// GetOrderLifecycleQuery retrieves one order with its shipment and documents.
//
// Example:
//
//	query, err := NewGetOrderLifecycleQuery("O1")
//	if err != nil {
//	    return err
//	}
//	lifecycle, err := handler.Handle(ctx, query)
//	if errors.Is(err, errs.ErrObjectNotFound) {
//	    // unknown order
//	}
type GetOrderLifecycleQuery struct {
	orderID string

	guard guard.ConstructorGuard
}

// NewGetOrderLifecycleQuery creates the query for the given order id.
func NewGetOrderLifecycleQuery(orderID string) (GetOrderLifecycleQuery, error) {
	trimmed := strings.TrimSpace(orderID)
	if trimmed == "" {
		return GetOrderLifecycleQuery{}, errs.NewValueIsRequiredError("order id")
	}
	return GetOrderLifecycleQuery{orderID: trimmed, guard: guard.NewConstructorGuard()}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOrderLifecycleQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderLifecycleQueryIsNotConstructed)
}

// OrderID returns the requested order id.
func (q GetOrderLifecycleQuery) OrderID() string {
	return q.orderID
}

// GetOrderLifecycleQueryResponse is the full state of one order.
type GetOrderLifecycleQueryResponse struct {
	Order     order.Record      `json:"order"`
	Shipment  *shipment.Record  `json:"shipment"`
	Documents []document.Record `json:"documents"`
}
