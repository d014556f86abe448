package trigger

import (
	"errors"
	"strings"

	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/pkg/errs"
)

// Event asks for an order to move to SHIPPED or DELIVERED. It arrives from the HTTP
// API or the payment-completed topic.
type Event struct {
	OrderID      string `json:"orderId"`
	TargetStatus string `json:"targetStatus"`
	Carrier      string `json:"carrier,omitempty"`
}

// Validate checks the event without touching any state.
func (e Event) Validate() error {
	var orderErr, statusErr, carrierErr error

	if strings.TrimSpace(e.OrderID) == "" {
		orderErr = errs.NewValueIsRequiredError("orderId")
	}

	switch {
	case strings.TrimSpace(e.TargetStatus) == "":
		statusErr = errs.NewValueIsRequiredError("targetStatus")
	default:
		status, err := order.ParseStatus(e.TargetStatus)
		switch {
		case err != nil:
			statusErr = err
		case status != order.Shipped && status != order.Delivered:
			statusErr = errs.NewValueIsInvalidError("targetStatus")
		case status == order.Shipped && strings.TrimSpace(e.Carrier) == "":
			carrierErr = errs.NewValueIsRequiredError("carrier")
		}
	}

	return errors.Join(orderErr, statusErr, carrierErr)
}
