package commands

import (
	"errors"

	"fulfillment/internal/pkg/guard"
)

var ErrFlushSnapshotCommandIsNotConstructed = errors.New(
	"FlushSnapshotCommand must be created via NewFlushSnapshotCommand constructor",
)

// FlushSnapshotCommand writes the current store content to the archive.
// This is a parameterless command issued by the flush job and at shutdown.
type FlushSnapshotCommand struct {
	guard guard.ConstructorGuard
}

// NewFlushSnapshotCommand creates a new command to flush the store.
func NewFlushSnapshotCommand() FlushSnapshotCommand {
	return FlushSnapshotCommand{
		guard: guard.NewConstructorGuard(),
	}
}

// Validate ensures the command was created through the constructor.
func (c FlushSnapshotCommand) Validate() error {
	return c.guard.Validate(ErrFlushSnapshotCommandIsNotConstructed)
}
