// Package shipment provides the Shipment entity: the tracking record derived 1:1 from
// an order.
//
// The package includes:
//   - Shipment: carrier assignment, status, progress and the tracking history
//   - Status: the tracking states from "Order Received" to "Reached Destination"
//   - TrackingEvent: one immutable entry of the tracking history
//
// Key business rules:
//   - The shipment id is derived from the order id
//   - Shipment status is a monotonic function of order status
//   - Progress never decreases
//   - Tracking events are only ever appended
package shipment
