// Package postgres provides the GORM-based snapshot archive. The in-memory store is
// the source of truth while the service runs; the archive keeps a copy in PostgreSQL
// so that state survives restarts.
//
// Save replaces the archived orders, shipments and documents in one database
// transaction, so the archive always holds a complete snapshot. Load reads all three
// tables in one read-only transaction.
//
// Usage:
//
//	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
//	if err != nil {
//	    return err
//	}
//	if err := postgres_adapter.Migrate(db); err != nil {
//	    return err
//	}
//	archive := postgres_adapter.NewGormSnapshotArchive(db)
//	snapshot, err := archive.Load(ctx)
package postgres

import (
	"context"
	"database/sql"

	"fulfillment/internal/adapters/out/postgres/documentrepo"
	"fulfillment/internal/adapters/out/postgres/orderrepo"
	"fulfillment/internal/adapters/out/postgres/shipmentrepo"
	"fulfillment/internal/core/ports"

	"gorm.io/gorm"
)

var _ ports.SnapshotArchive = (*GormSnapshotArchive)(nil)

// Migrate creates or updates the archive tables.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&orderrepo.OrderDTO{}, &shipmentrepo.ShipmentDTO{}, &documentrepo.DocumentDTO{})
}

// GormSnapshotArchive stores snapshots in PostgreSQL.
type GormSnapshotArchive struct {
	db *gorm.DB
}

// NewGormSnapshotArchive creates an archive on db. The tables must exist, see Migrate.
func NewGormSnapshotArchive(db *gorm.DB) *GormSnapshotArchive {
	return &GormSnapshotArchive{db: db}
}

// Save replaces the archived snapshot in a single transaction. On any error the
// previous snapshot stays in place.
func (a *GormSnapshotArchive) Save(ctx context.Context, snapshot ports.Snapshot) error {
	return a.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := orderrepo.NewGormOrderRepository(tx).ReplaceAll(ctx, snapshot.Orders); err != nil {
			return err
		}
		if err := shipmentrepo.NewGormShipmentRepository(tx).ReplaceAll(ctx, snapshot.Shipments); err != nil {
			return err
		}
		return documentrepo.NewGormDocumentRepository(tx).ReplaceAll(ctx, snapshot.Documents)
	})
}

// Load reads the archived snapshot. An empty archive yields an empty snapshot.
func (a *GormSnapshotArchive) Load(ctx context.Context) (ports.Snapshot, error) {
	snapshot := ports.NewSnapshot()
	err := a.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var err error
		if snapshot.Orders, err = orderrepo.NewGormOrderRepository(tx).LoadAll(ctx); err != nil {
			return err
		}
		if snapshot.Shipments, err = shipmentrepo.NewGormShipmentRepository(tx).LoadAll(ctx); err != nil {
			return err
		}
		snapshot.Documents, err = documentrepo.NewGormDocumentRepository(tx).LoadAll(ctx)
		return err
	}, &sql.TxOptions{ReadOnly: true, Isolation: sql.LevelRepeatableRead})
	if err != nil {
		return ports.Snapshot{}, err
	}
	return snapshot, nil
}
