package document

import (
	"errors"
	"time"
)

// Record is the serializable form of a Document. Carrier and TrackingNumber are only
// set on labels.
type Record struct {
	ID             string    `json:"id"`
	OrderID        string    `json:"orderId"`
	Name           string    `json:"name"`
	Kind           string    `json:"kind"`
	IssuedAt       time.Time `json:"issuedAt"`
	Size           string    `json:"size"`
	Status         string    `json:"status"`
	URL            string    `json:"url"`
	Carrier        string    `json:"carrier,omitempty"`
	TrackingNumber string    `json:"trackingNumber,omitempty"`
}

// Record returns the serializable form of the document.
func (d *Document) Record() Record {
	return Record{
		ID:             d.id,
		OrderID:        d.orderID,
		Name:           d.name,
		Kind:           d.kind.String(),
		IssuedAt:       d.issuedAt,
		Size:           d.size,
		Status:         d.status.String(),
		URL:            d.url,
		Carrier:        d.carrier,
		TrackingNumber: d.trackingNumber,
	}
}

// FromRecord rebuilds a Document from its serializable form.
func FromRecord(r Record) (*Document, error) {
	kind, kindErr := ParseKind(r.Kind)
	status, statusErr := ParseStatus(r.Status)
	if err := errors.Join(kindErr, statusErr); err != nil {
		return nil, err
	}

	return RestoreDocument(RestoreParams{
		ID:             r.ID,
		OrderID:        r.OrderID,
		Name:           r.Name,
		Kind:           kind,
		IssuedAt:       r.IssuedAt,
		Size:           r.Size,
		Status:         status,
		URL:            r.URL,
		Carrier:        r.Carrier,
		TrackingNumber: r.TrackingNumber,
	})
}
