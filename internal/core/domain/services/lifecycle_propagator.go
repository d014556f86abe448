package services

import (
	"errors"
	"slices"
	"time"

	"fulfillment/internal/core/domain/model/carrier"
	"fulfillment/internal/core/domain/model/document"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/domain/model/shipment"
	"fulfillment/internal/pkg/errs"
)

// Transition describes the outcome of LifecyclePropagator.Propagate.
type Transition struct {
	// Applied is false when the order already had the requested status.
	Applied bool
	// From is the order status before the call.
	From order.Status
	// Label is the label issued by this transition, if any.
	Label *document.Document
}

// LifecyclePropagator advances an order one step and carries the change into its
// shipment and documents.
//
// Business rules:
//   - The target must be the immediate successor of the current status
//   - Requesting the current status again (other than Open) changes nothing
//   - Shipped: the carrier is assigned, an "Order in Transit" event is recorded at the
//     origin and exactly one Label is issued
//   - Delivered: a "Reached Destination" event is recorded at the destination
//   - The resulting state must pass CheckConsistency, otherwise the call fails with
//     errs.ErrPartialCommit
//
// Propagate mutates the entities it is given. Callers pass working copies and only
// persist them when no error is returned.
type LifecyclePropagator struct {
	catalog         *carrier.Catalog
	issuer          TrackingNumberIssuer
	documentBaseURL string
}

// NewLifecyclePropagator creates a new LifecyclePropagator.
func NewLifecyclePropagator(catalog *carrier.Catalog, issuer TrackingNumberIssuer, documentBaseURL string) LifecyclePropagator {
	return LifecyclePropagator{catalog: catalog, issuer: issuer, documentBaseURL: documentBaseURL}
}

// Propagate moves o to next at time at.
//
// Parameters:
//   - o, s, docs: the order, its shipment and its current documents
//   - next: the requested order status
//   - carrierName: carrier chosen for dispatch; blank selects the default carrier.
//     Ignored unless next is Shipped.
//   - at: timestamp of the new tracking event and label
//
// Returns:
//   - Transition: what was done
//   - error: errs.ErrInvalidTransition, errs.ErrPartialCommit or validation errors
func (p LifecyclePropagator) Propagate(
	o *order.Order,
	s *shipment.Shipment,
	docs []*document.Document,
	next order.Status,
	carrierName string,
	at time.Time,
) (Transition, error) {
	if err := errors.Join(o.Validate(), s.Validate(), next.Validate()); err != nil {
		return Transition{}, err
	}

	from := o.Status()
	if next == from && next != order.Open {
		if err := CheckConsistency(o, s, docs); err != nil {
			return Transition{}, errs.NewPartialCommitError(o.ID(), err)
		}
		return Transition{Applied: false, From: from}, nil
	}

	if err := o.AdvanceTo(next); err != nil {
		return Transition{}, err
	}

	result := Transition{Applied: true, From: from}
	switch next {
	case order.Shipped:
		label, err := p.dispatch(o, s, carrierName, at)
		if err != nil {
			return Transition{}, err
		}
		result.Label = label
		docs = append(slices.Clip(docs), label)
	case order.Delivered:
		if err := s.MoveTo(shipment.ReachedDestination, shipment.TrackingEvent{
			Timestamp:   at,
			Location:    s.Destination().String(),
			Status:      shipment.ReachedDestination.String(),
			Description: "Delivered to the customer",
			Type:        shipment.EventDelivered,
		}); err != nil {
			return Transition{}, errs.NewPartialCommitError(o.ID(), err)
		}
	}

	if err := CheckConsistency(o, s, docs); err != nil {
		return Transition{}, errs.NewPartialCommitError(o.ID(), err)
	}
	return result, nil
}

func (p LifecyclePropagator) dispatch(o *order.Order, s *shipment.Shipment, carrierName string, at time.Time) (*document.Document, error) {
	c, err := p.catalog.Resolve(carrierName)
	if err != nil {
		return nil, err
	}

	if err := s.AssignDispatch(shipment.Dispatch{
		Carrier:          c,
		TrackingNumber:   p.issuer.Issue(o.ID(), c),
		EstimatedArrival: c.EstimateArrival(at),
	}); err != nil {
		return nil, errs.NewPartialCommitError(o.ID(), err)
	}

	if err := s.MoveTo(shipment.InTransit, shipment.TrackingEvent{
		Timestamp:   at,
		Location:    s.Origin().String(),
		Status:      shipment.InTransit.String(),
		Description: "Handed over to " + c.Name(),
		Type:        shipment.EventTransit,
	}); err != nil {
		return nil, errs.NewPartialCommitError(o.ID(), err)
	}

	label, err := document.NewLabel(o.ID(), at, p.documentBaseURL, s.Carrier(), s.TrackingNumber())
	if err != nil {
		return nil, errs.NewPartialCommitError(o.ID(), err)
	}
	return label, nil
}
