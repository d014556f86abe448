// Package services provides domain services that coordinate the order, its shipment
// and its documents. None of these operations belongs to a single aggregate: each one
// reads or changes all three entities together.
//
// The package includes:
//   - Seeder: derives the shipment and document set of a freshly placed order
//   - LifecyclePropagator: advances an order and carries the change into its shipment
//     and documents
//   - TrackingNumberIssuer: issues deterministic tracking numbers
//   - CheckConsistency: verifies the cross-entity invariants of one order
//
// Services are pure: they never persist anything. Callers stage the results in a unit
// of work and commit them together.
package services
