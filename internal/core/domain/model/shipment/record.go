package shipment

import (
	"errors"
	"slices"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
)

// Record is the serializable form of a Shipment.
type Record struct {
	ID               string          `json:"id"`
	OrderID          string          `json:"orderId"`
	TrackingNumber   string          `json:"trackingNumber"`
	Origin           string          `json:"origin"`
	Destination      string          `json:"destination"`
	Status           string          `json:"status"`
	Carrier          string          `json:"carrier"`
	ServiceType      string          `json:"serviceType"`
	EstimatedArrival time.Time       `json:"estimatedArrival"`
	LastUpdate       string          `json:"lastUpdate"`
	Progress         int             `json:"progress"`
	Events           []TrackingEvent `json:"events"`
}

// Record returns the serializable form of the shipment.
func (s *Shipment) Record() Record {
	return Record{
		ID:               s.id,
		OrderID:          s.orderID,
		TrackingNumber:   s.trackingNumber,
		Origin:           s.origin.String(),
		Destination:      s.destination.String(),
		Status:           s.status.String(),
		Carrier:          s.carrier,
		ServiceType:      s.serviceType,
		EstimatedArrival: s.estimatedArrival,
		LastUpdate:       s.lastUpdate,
		Progress:         s.progress,
		Events:           slices.Clone(s.events),
	}
}

// FromRecord rebuilds a Shipment from its serializable form.
func FromRecord(r Record) (*Shipment, error) {
	status, statusErr := ParseStatus(r.Status)
	origin, originErr := kernel.NewAddress("origin", r.Origin)
	destination, destinationErr := kernel.NewAddress("destination", r.Destination)
	if err := errors.Join(statusErr, originErr, destinationErr); err != nil {
		return nil, err
	}

	return RestoreShipment(RestoreParams{
		ID:               r.ID,
		OrderID:          r.OrderID,
		TrackingNumber:   r.TrackingNumber,
		Origin:           origin,
		Destination:      destination,
		Status:           status,
		Carrier:          r.Carrier,
		ServiceType:      r.ServiceType,
		EstimatedArrival: r.EstimatedArrival,
		LastUpdate:       r.LastUpdate,
		Progress:         r.Progress,
		Events:           r.Events,
	})
}
