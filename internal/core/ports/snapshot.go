package ports

import (
	"context"

	"fulfillment/internal/core/domain/model/document"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/domain/model/shipment"
)

// Snapshot is the complete state of the store, keyed by entity id.
type Snapshot struct {
	Orders    map[string]order.Record    `json:"orders"`
	Shipments map[string]shipment.Record `json:"shipments"`
	Documents map[string]document.Record `json:"documents"`
}

// NewSnapshot returns an empty snapshot with all maps allocated.
func NewSnapshot() Snapshot {
	return Snapshot{
		Orders:    make(map[string]order.Record),
		Shipments: make(map[string]shipment.Record),
		Documents: make(map[string]document.Record),
	}
}

// IsEmpty reports whether the snapshot holds no entities.
func (s Snapshot) IsEmpty() bool {
	return len(s.Orders) == 0 && len(s.Shipments) == 0 && len(s.Documents) == 0
}

// SnapshotStore exports and imports the whole store.
type SnapshotStore interface {
	// Export returns a consistent copy of the store.
	Export(ctx context.Context) (Snapshot, error)

	// Import replaces the whole store with the snapshot. Every record is validated
	// first; on any error the store is left unchanged.
	Import(ctx context.Context, snapshot Snapshot) error
}

// SnapshotArchive persists snapshots outside the process.
type SnapshotArchive interface {
	// Save replaces the archived snapshot.
	Save(ctx context.Context, snapshot Snapshot) error

	// Load returns the archived snapshot, or an empty one if nothing was archived.
	Load(ctx context.Context) (Snapshot, error)
}
