package services

import (
	"errors"
	"fmt"

	"fulfillment/internal/core/domain/model/document"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/domain/model/shipment"
	"fulfillment/internal/pkg/errs"
)

// CheckConsistency verifies the cross-entity invariants of one order:
//   - the shipment belongs to the order and its id is derived from the order id
//   - shipment status and progress match the order status, and the tracking
//     history records the current shipment status
//   - every seed document exists exactly once
//   - a Label exists exactly when the order has left Open, and it carries the
//     shipment's carrier and tracking number
//
// Every violation found is reported, joined into one error.
func CheckConsistency(o *order.Order, s *shipment.Shipment, docs []*document.Document) error {
	if err := errors.Join(o.Validate(), s.Validate()); err != nil {
		return err
	}

	var problems []error
	add := func(format string, args ...any) {
		problems = append(problems, fmt.Errorf(format, args...))
	}

	if s.OrderID() != o.ID() || s.ID() != kernel.ShipmentID(o.ID()) {
		add("shipment %s does not belong to order %s", s.ID(), o.ID())
	}

	want, err := shipment.StatusForOrder(o.Status())
	if err != nil {
		return err
	}
	if s.Status() != want {
		add("shipment status is %q, order %s implies %q", s.Status(), o.Status(), want)
	}
	if s.Progress() != want.Progress() {
		add("shipment progress is %d, order %s implies %d", s.Progress(), o.Status(), want.Progress())
	}
	if !s.HasEvent(want.String()) {
		add("tracking history has no %q event", want)
	}

	counts := make(map[document.Kind]int, len(docs))
	for _, d := range docs {
		if err := d.Validate(); err != nil {
			return err
		}
		if d.OrderID() != o.ID() {
			add("document %s belongs to order %s", d.ID(), d.OrderID())
			continue
		}
		counts[d.Kind()]++
		if d.IsLabel() && (d.Carrier() != s.Carrier() || d.TrackingNumber() != s.TrackingNumber()) {
			add("label carries %s/%s, shipment has %s/%s",
				d.Carrier(), d.TrackingNumber(), s.Carrier(), s.TrackingNumber())
		}
	}
	for _, kind := range document.SeedKinds() {
		if counts[kind] != 1 {
			add("expected one %s, found %d", kind, counts[kind])
		}
	}

	wantLabels := 0
	if o.Status().IsAtLeast(order.Shipped) {
		wantLabels = 1
	}
	if counts[document.Label] != wantLabels {
		add("order %s expects %d label(s), found %d", o.Status(), wantLabels, counts[document.Label])
	}

	if len(problems) > 0 {
		return errs.NewValueIsInvalidErrorWithCause("order "+o.ID()+" state", errors.Join(problems...))
	}
	return nil
}
