package commands

import (
	"context"
	"fmt"

	"fulfillment/internal/core/ports"
)

// RestoreSnapshotCommandHandler replaces the store content with the archived
// snapshot. An empty archive leaves the store untouched.
type RestoreSnapshotCommandHandler struct {
	archive ports.SnapshotArchive
	store   ports.SnapshotStore
}

// NewRestoreSnapshotCommandHandler creates a handler for snapshot restoration.
func NewRestoreSnapshotCommandHandler(archive ports.SnapshotArchive, store ports.SnapshotStore) RestoreSnapshotCommandHandler {
	return RestoreSnapshotCommandHandler{archive: archive, store: store}
}

// Handle loads the archive and imports it. It reports whether anything was imported.
func (h RestoreSnapshotCommandHandler) Handle(ctx context.Context, cmd RestoreSnapshotCommand) (bool, error) {
	if err := cmd.Validate(); err != nil {
		return false, err
	}

	snapshot, err := h.archive.Load(ctx)
	if err != nil {
		return false, fmt.Errorf("load snapshot archive: %w", err)
	}
	if snapshot.IsEmpty() {
		return false, nil
	}

	if err = h.store.Import(ctx, snapshot); err != nil {
		return false, fmt.Errorf("import snapshot: %w", err)
	}
	return true, nil
}
