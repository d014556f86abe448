package services

import (
	"errors"

	"fulfillment/internal/core/domain/model/carrier"
	"fulfillment/internal/core/domain/model/document"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/domain/model/shipment"
	"fulfillment/internal/pkg/errs"
)

// Seeder derives the shipment and document set of a freshly placed order.
//
// Business rules:
//   - Only Open orders can be seeded
//   - The shipment starts at Order Received with two events: the placement at the
//     seller and the reception at the warehouse, both at placement time
//   - The default carrier is assigned and its tracking number issued
//   - Invoice, Packing List and Certificate of Origin are issued Final at placement
//     time; no Label
//
// Example usage:
//
//	seeder := services.NewSeeder(carrier.NewCatalog(""), services.NewTrackingNumberIssuer(), "")
//	s, docs, err := seeder.Seed(o)
type Seeder struct {
	catalog         *carrier.Catalog
	issuer          TrackingNumberIssuer
	documentBaseURL string
}

// NewSeeder creates a new Seeder.
//
// Parameters:
//   - catalog: resolves the default carrier
//   - issuer: issues the initial tracking number
//   - documentBaseURL: prefix of document references, may be empty
func NewSeeder(catalog *carrier.Catalog, issuer TrackingNumberIssuer, documentBaseURL string) Seeder {
	return Seeder{catalog: catalog, issuer: issuer, documentBaseURL: documentBaseURL}
}

// Seed builds the shipment and documents of o. Nothing is persisted.
//
// Returns:
//   - *shipment.Shipment: the order's shipment
//   - []*document.Document: the three seed documents in issue order
//   - error: errs.ErrInvalidTransition if o is not Open, or validation errors
func (sd Seeder) Seed(o *order.Order) (*shipment.Shipment, []*document.Document, error) {
	if err := o.Validate(); err != nil {
		return nil, nil, err
	}
	if o.Status() != order.Open {
		return nil, nil, errs.NewInvalidTransitionError("order", o.ID(), o.Status().String(), order.Open.String())
	}

	c := sd.catalog.Default()
	s, err := shipment.NewShipment(o.ID(), o.WarehouseAddress(), o.CustomerAddress(), shipment.Dispatch{
		Carrier:          c,
		TrackingNumber:   sd.issuer.Issue(o.ID(), c),
		EstimatedArrival: c.EstimateArrival(o.PlacedAt()),
	})
	if err != nil {
		return nil, nil, err
	}

	if err := errors.Join(
		s.AppendEvent(shipment.TrackingEvent{
			Timestamp:   o.PlacedAt(),
			Location:    o.SellerAddress().String(),
			Status:      "Order Placed",
			Description: "Order placed with the seller",
			Type:        shipment.EventReceived,
		}),
		s.MoveTo(shipment.OrderReceived, shipment.TrackingEvent{
			Timestamp:   o.PlacedAt(),
			Location:    o.WarehouseAddress().String(),
			Status:      shipment.OrderReceived.String(),
			Description: "Order received at the warehouse",
			Type:        shipment.EventProcessing,
		}),
	); err != nil {
		return nil, nil, err
	}

	kinds := document.SeedKinds()
	docs := make([]*document.Document, 0, len(kinds))
	for _, kind := range kinds {
		d, err := document.NewDocument(o.ID(), kind, o.PlacedAt(), sd.documentBaseURL)
		if err != nil {
			return nil, nil, err
		}
		docs = append(docs, d)
	}

	return s, docs, nil
}
