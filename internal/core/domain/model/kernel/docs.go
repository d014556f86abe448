// Package kernel provides the shared domain primitives of the fulfillment model.
//
// The package includes:
//   - Address: a validated free-form postal address value object
//   - Identity: deterministic derivation of shipment and document identifiers
//     from an order identifier
//
// Identifiers derived here are stable across processes and restarts, which is what
// lets a retried lifecycle transition find, rather than recreate, the records an
// earlier attempt produced.
package kernel
