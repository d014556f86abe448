package order

import (
	"fmt"
	"strings"

	"fulfillment/internal/pkg/errs"
)

// Status represents the lifecycle state of an order.
//
// State transitions:
//
//	Open ──> Shipped ──> Delivered
//
// Delivered is terminal. Skipping a state or moving backwards is rejected.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Open is the status of a placed order that has not been dispatched yet.
	Open

	// Shipped indicates the order was handed over to a carrier.
	Shipped

	// Delivered indicates the order reached the customer. Final state.
	Delivered
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:   "UNKNOWN",
		Open:      "OPEN",
		Shipped:   "SHIPPED",
		Delivered: "DELIVERED",
	}
}

// ParseStatus converts the wire name of a status ("OPEN", "SHIPPED", "DELIVERED")
// into a Status. Matching is case-insensitive.
func ParseStatus(s string) (Status, error) {
	normalized := strings.ToUpper(strings.TrimSpace(s))
	for status, name := range getStatusStrings() {
		if status != Unknown && name == normalized {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%q is not a valid order status", s))
}

// Validate checks that s is one of Open, Shipped or Delivered.
func (s Status) Validate() error {
	if s < Open || s > Delivered {
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the wire name of the status. Invalid values render as "UNKNOWN".
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "UNKNOWN"
}

// Next returns the immediate successor of s and false when s has none.
func (s Status) Next() (Status, bool) {
	switch s {
	case Open:
		return Shipped, true
	case Shipped:
		return Delivered, true
	default:
		return Unknown, false
	}
}

// IsAtLeast reports whether s is other or a later lifecycle state.
func (s Status) IsAtLeast(other Status) bool {
	return s >= other
}

// TransitionTo returns next if it is the immediate successor of s.
//
// Valid transitions:
//   - Open -> Shipped
//   - Shipped -> Delivered
//
// Everything else, including staying in place, fails with an InvalidTransitionError.
func (s Status) TransitionTo(next Status) (Status, error) {
	if err := next.Validate(); err != nil {
		return Unknown, err
	}
	successor, ok := s.Next()
	if !ok || successor != next {
		return Unknown, errs.NewInvalidTransitionError("order", "", s.String(), next.String())
	}
	return next, nil
}
