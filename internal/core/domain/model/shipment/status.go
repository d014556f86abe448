package shipment

import (
	"fmt"
	"strings"

	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/pkg/errs"
)

// Status is the tracking state of a shipment. Its numeric order is the order in
// which a parcel passes through the states.
type Status int

const (
	Unknown Status = iota
	OrderReceived
	OrderPicked
	InTransit
	OutForDelivery
	ReachedDestination
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		OrderReceived:      "Order Received",
		OrderPicked:        "Order Picked",
		InTransit:          "Order in Transit",
		OutForDelivery:     "Out For Delivery",
		ReachedDestination: "Reached Destination",
	}
}

func getStatusProgress() map[Status]int {
	return map[Status]int{
		OrderReceived:      20,
		OrderPicked:        40,
		InTransit:          60,
		OutForDelivery:     80,
		ReachedDestination: 100,
	}
}

// ParseStatus converts a status label such as "Order in Transit" into a Status.
// Matching ignores case and surrounding whitespace.
func ParseStatus(s string) (Status, error) {
	for status, label := range getStatusStrings() {
		if strings.EqualFold(label, strings.TrimSpace(s)) {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("shipment status", fmt.Errorf("%q is not a valid shipment status", s))
}

// StatusForOrder maps an order status to the shipment status it implies.
//
//	OPEN      -> Order Received
//	SHIPPED   -> Order in Transit
//	DELIVERED -> Reached Destination
func StatusForOrder(s order.Status) (Status, error) {
	switch s {
	case order.Open:
		return OrderReceived, nil
	case order.Shipped:
		return InTransit, nil
	case order.Delivered:
		return ReachedDestination, nil
	default:
		return Unknown, s.Validate()
	}
}

// Validate checks that s is a known tracking state.
func (s Status) Validate() error {
	if _, ok := getStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("shipment status", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the display label of the status.
func (s Status) String() string {
	if label, ok := getStatusStrings()[s]; ok {
		return label
	}
	return "Unknown"
}

// Progress returns the completion percentage associated with the status.
func (s Status) Progress() int {
	return getStatusProgress()[s]
}
