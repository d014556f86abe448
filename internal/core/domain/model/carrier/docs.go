// Package carrier provides the Carrier value object and the catalog of carriers the
// fulfillment system knows how to hand shipments to.
//
// The package includes:
//   - Carrier: name, service type, tracking-number prefix and nominal transit time
//   - Catalog: lookup by name with a deterministic fallback for unknown carriers
//
// Carrier selection itself happens outside this system (a checkout step); the catalog
// only turns the selected name into the attributes a shipment and its label need.
package carrier
