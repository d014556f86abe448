// Package shipmentrepo maps archived shipments between snapshot records and the
// "shipments" table. The tracking history is stored as a JSON column.
package shipmentrepo

import (
	"time"

	"fulfillment/internal/core/domain/model/shipment"
)

// ShipmentDTO represents the database structure of an archived shipment.
type ShipmentDTO struct {
	ID               string `gorm:"primaryKey"`
	OrderID          string `gorm:"uniqueIndex;not null"`
	TrackingNumber   string `gorm:"index;not null"`
	Origin           string
	Destination      string
	Status           string
	Carrier          string
	ServiceType      string
	EstimatedArrival time.Time
	LastUpdate       string
	Progress         int
	Events           []shipment.TrackingEvent `gorm:"type:jsonb;serializer:json"`
}

// TableName specifies the database table name for shipments.
func (ShipmentDTO) TableName() string {
	return "shipments"
}

func fromRecord(r shipment.Record) ShipmentDTO {
	return ShipmentDTO{
		ID:               r.ID,
		OrderID:          r.OrderID,
		TrackingNumber:   r.TrackingNumber,
		Origin:           r.Origin,
		Destination:      r.Destination,
		Status:           r.Status,
		Carrier:          r.Carrier,
		ServiceType:      r.ServiceType,
		EstimatedArrival: r.EstimatedArrival,
		LastUpdate:       r.LastUpdate,
		Progress:         r.Progress,
		Events:           r.Events,
	}
}

func toRecord(dto ShipmentDTO) shipment.Record {
	events := make([]shipment.TrackingEvent, 0, len(dto.Events))
	for _, e := range dto.Events {
		e.Timestamp = e.Timestamp.UTC()
		events = append(events, e)
	}
	return shipment.Record{
		ID:               dto.ID,
		OrderID:          dto.OrderID,
		TrackingNumber:   dto.TrackingNumber,
		Origin:           dto.Origin,
		Destination:      dto.Destination,
		Status:           dto.Status,
		Carrier:          dto.Carrier,
		ServiceType:      dto.ServiceType,
		EstimatedArrival: dto.EstimatedArrival.UTC(),
		LastUpdate:       dto.LastUpdate,
		Progress:         dto.Progress,
		Events:           events,
	}
}
