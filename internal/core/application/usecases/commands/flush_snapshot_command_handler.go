package commands

import (
	"context"
	"fmt"

	"fulfillment/internal/core/ports"
)

// FlushSnapshotCommandHandler exports the store and saves it to the archive.
type FlushSnapshotCommandHandler struct {
	store   ports.SnapshotStore
	archive ports.SnapshotArchive
}

// NewFlushSnapshotCommandHandler creates a handler for snapshot flushing.
func NewFlushSnapshotCommandHandler(store ports.SnapshotStore, archive ports.SnapshotArchive) FlushSnapshotCommandHandler {
	return FlushSnapshotCommandHandler{store: store, archive: archive}
}

// Handle exports a consistent snapshot and replaces the archived one with it.
func (h FlushSnapshotCommandHandler) Handle(ctx context.Context, cmd FlushSnapshotCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	snapshot, err := h.store.Export(ctx)
	if err != nil {
		return fmt.Errorf("export snapshot: %w", err)
	}

	if err = h.archive.Save(ctx, snapshot); err != nil {
		return fmt.Errorf("save snapshot archive: %w", err)
	}
	return nil
}
