package shipment

import (
	"errors"
	"strings"
	"time"

	"fulfillment/internal/pkg/errs"
)

// EventType tags a tracking event with the phase it belongs to.
type EventType string

const (
	EventReceived   EventType = "received"
	EventProcessing EventType = "processing"
	EventTransit    EventType = "transit"
	EventDelivered  EventType = "delivered"
)

// Validate checks that t is one of the known event types.
func (t EventType) Validate() error {
	switch t {
	case EventReceived, EventProcessing, EventTransit, EventDelivered:
		return nil
	default:
		return errs.NewValueIsInvalidError("event type")
	}
}

// TrackingEvent is one entry of a shipment's tracking history. Events are values;
// once appended to a shipment they are never modified.
type TrackingEvent struct {
	Timestamp   time.Time `json:"timestamp"`
	Location    string    `json:"location"`
	Status      string    `json:"status"`
	Description string    `json:"description"`
	Type        EventType `json:"type"`
}

// Validate checks the event has a timestamp, a status label and a known type.
func (e TrackingEvent) Validate() error {
	var tsErr, statusErr error
	if e.Timestamp.IsZero() {
		tsErr = errs.NewValueIsRequiredError("event timestamp")
	}
	if strings.TrimSpace(e.Status) == "" {
		statusErr = errs.NewValueIsRequiredError("event status")
	}
	return errors.Join(tsErr, statusErr, e.Type.Validate())
}
