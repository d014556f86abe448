// Package order provides the Order aggregate root of the fulfillment system and the
// lifecycle state machine that governs it.
//
// The package includes:
//   - Order: identity, placement time, product descriptor and the fixed address triple
//   - Status: OPEN -> SHIPPED -> DELIVERED, forward only
//   - Product: the validated product descriptor of an order
//   - Record: the serializable form used by snapshots, events and APIs
//
// Key business rules:
//   - Order ids are non-empty and immutable
//   - Customer, warehouse and seller addresses are set once at creation
//   - Status advances one step at a time and never regresses
package order
