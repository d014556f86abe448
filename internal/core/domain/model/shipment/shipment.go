package shipment

import (
	"errors"
	"fmt"
	"slices"
	"strings"
	"time"

	"fulfillment/internal/core/domain/model/carrier"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
)

var (
	// ErrShipmentIsNotConstructed is returned when a Shipment instance was not created
	// through NewShipment or RestoreShipment.
	ErrShipmentIsNotConstructed = errors.New("Shipment must be created via NewShipment constructor")

	// ErrProgressRegression is returned when a mutation would lower the progress.
	ErrProgressRegression = errs.NewValueIsInvalidErrorWithCause("progress", errors.New("progress never decreases"))
)

// Dispatch is the carrier-side data of a shipment.
type Dispatch struct {
	Carrier          carrier.Carrier
	TrackingNumber   string
	EstimatedArrival time.Time
}

func (d Dispatch) validate() error {
	var trackingErr, etaErr error
	if strings.TrimSpace(d.TrackingNumber) == "" {
		trackingErr = errs.NewValueIsRequiredError("tracking number")
	}
	if d.EstimatedArrival.IsZero() {
		etaErr = errs.NewValueIsRequiredError("estimated arrival")
	}
	return errors.Join(d.Carrier.Validate(), trackingErr, etaErr)
}

// Shipment is the tracking record of exactly one order.
//
// Shipment follows these invariants:
//   - Its id is derived from the order id
//   - Progress never decreases
//   - Tracking events are only appended, never reordered or dropped
//   - Status only moves forward
type Shipment struct {
	id             string
	orderID        string
	trackingNumber string
	origin         kernel.Address
	destination    kernel.Address

	status           Status
	carrier          string
	serviceType      string
	estimatedArrival time.Time
	lastUpdate       string
	progress         int
	events           []TrackingEvent

	isConstructed bool
}

// NewShipment creates a shipment for a freshly placed order. It starts in
// Order Received with no tracking events.
func NewShipment(orderID string, origin, destination kernel.Address, dispatch Dispatch) (*Shipment, error) {
	s := &Shipment{
		status:        OrderReceived,
		progress:      OrderReceived.Progress(),
		isConstructed: true,
	}

	if err := errors.Join(
		s.setOrderID(orderID),
		s.setRoute(origin, destination),
		s.setDispatch(dispatch),
	); err != nil {
		return nil, err
	}

	return s, nil
}

// RestoreParams carries the full state of a persisted shipment.
type RestoreParams struct {
	ID               string
	OrderID          string
	TrackingNumber   string
	Origin           kernel.Address
	Destination      kernel.Address
	Status           Status
	Carrier          string
	ServiceType      string
	EstimatedArrival time.Time
	LastUpdate       string
	Progress         int
	Events           []TrackingEvent
}

// RestoreShipment rebuilds a shipment from persisted state. The id must be the
// one derived from the order id.
func RestoreShipment(p RestoreParams) (*Shipment, error) {
	s := &Shipment{
		trackingNumber:   strings.TrimSpace(p.TrackingNumber),
		carrier:          strings.TrimSpace(p.Carrier),
		serviceType:      strings.TrimSpace(p.ServiceType),
		estimatedArrival: p.EstimatedArrival,
		lastUpdate:       p.LastUpdate,
		isConstructed:    true,
	}

	var idErr, progressErr, carrierErr error
	if p.ID != kernel.ShipmentID(strings.TrimSpace(p.OrderID)) {
		idErr = errs.NewValueIsInvalidErrorWithCause("shipment id", fmt.Errorf("%q is not derived from order %q", p.ID, p.OrderID))
	}
	if p.Progress < 0 || p.Progress > 100 {
		progressErr = errs.NewValueIsOutOfRangeError("progress", p.Progress, 0, 100)
	}
	if s.carrier == "" || s.trackingNumber == "" {
		carrierErr = errs.NewValueIsRequiredError("carrier and tracking number")
	}
	eventErrs := make([]error, 0, len(p.Events))
	for i, e := range p.Events {
		if err := e.Validate(); err != nil {
			eventErrs = append(eventErrs, fmt.Errorf("event %d: %w", i, err))
		}
	}

	if err := errors.Join(
		s.setOrderID(p.OrderID),
		s.setRoute(p.Origin, p.Destination),
		p.Status.Validate(),
		idErr,
		progressErr,
		carrierErr,
		errors.Join(eventErrs...),
	); err != nil {
		return nil, err
	}

	s.status = p.Status
	s.progress = p.Progress
	s.events = slices.Clone(p.Events)
	return s, nil
}

// Validate ensures the Shipment was built through its constructors.
func (s *Shipment) Validate() error {
	if s == nil || !s.isConstructed {
		return ErrShipmentIsNotConstructed
	}
	return nil
}

func (s *Shipment) ID() string                  { return s.id }
func (s *Shipment) OrderID() string             { return s.orderID }
func (s *Shipment) TrackingNumber() string      { return s.trackingNumber }
func (s *Shipment) Origin() kernel.Address      { return s.origin }
func (s *Shipment) Destination() kernel.Address { return s.destination }
func (s *Shipment) Status() Status              { return s.status }
func (s *Shipment) Carrier() string             { return s.carrier }
func (s *Shipment) ServiceType() string         { return s.serviceType }
func (s *Shipment) EstimatedArrival() time.Time { return s.estimatedArrival }
func (s *Shipment) LastUpdate() string          { return s.lastUpdate }
func (s *Shipment) Progress() int               { return s.progress }

// Events returns a copy of the tracking history, oldest first.
func (s *Shipment) Events() []TrackingEvent {
	return slices.Clone(s.events)
}

// HasEvent reports whether an event with the given status label is already recorded.
func (s *Shipment) HasEvent(label string) bool {
	return slices.ContainsFunc(s.events, func(e TrackingEvent) bool {
		return strings.EqualFold(e.Status, label)
	})
}

// AssignDispatch replaces the carrier data. It is only allowed before the parcel is
// handed to the carrier.
func (s *Shipment) AssignDispatch(d Dispatch) error {
	if s.status >= InTransit {
		return errs.NewInvalidTransitionError("shipment", s.id, s.status.String(), "carrier reassignment")
	}
	return s.setDispatch(d)
}

// AppendEvent records an event without changing the status.
func (s *Shipment) AppendEvent(e TrackingEvent) error {
	if err := e.Validate(); err != nil {
		return err
	}
	s.events = append(s.events, e)
	s.lastUpdate = e.Description
	return nil
}

// MoveTo advances the shipment to status and records e, whose label must match
// status. Moving backwards is rejected and leaves the shipment unchanged.
func (s *Shipment) MoveTo(status Status, e TrackingEvent) error {
	if err := status.Validate(); err != nil {
		return err
	}
	if status < s.status {
		return errs.NewInvalidTransitionError("shipment", s.id, s.status.String(), status.String())
	}
	if status.Progress() < s.progress {
		return ErrProgressRegression
	}
	if !strings.EqualFold(e.Status, status.String()) {
		return errs.NewValueIsInvalidErrorWithCause("event status",
			fmt.Errorf("event %q does not match status %q", e.Status, status))
	}
	if err := s.AppendEvent(e); err != nil {
		return err
	}

	s.status = status
	s.progress = status.Progress()
	return nil
}

// Clone returns an independent copy of the shipment.
func (s *Shipment) Clone() *Shipment {
	if s == nil {
		return nil
	}
	c := *s
	c.events = slices.Clone(s.events)
	return &c
}

func (s *Shipment) setOrderID(orderID string) error {
	trimmed := strings.TrimSpace(orderID)
	if trimmed == "" {
		return errs.NewValueIsRequiredError("order id")
	}
	s.orderID = trimmed
	s.id = kernel.ShipmentID(trimmed)
	return nil
}

func (s *Shipment) setRoute(origin, destination kernel.Address) error {
	if err := errors.Join(origin.Validate(), destination.Validate()); err != nil {
		return err
	}
	s.origin = origin
	s.destination = destination
	return nil
}

func (s *Shipment) setDispatch(d Dispatch) error {
	if err := d.validate(); err != nil {
		return err
	}
	s.carrier = d.Carrier.Name()
	s.serviceType = d.Carrier.ServiceType()
	s.trackingNumber = strings.TrimSpace(d.TrackingNumber)
	s.estimatedArrival = d.EstimatedArrival
	return nil
}
