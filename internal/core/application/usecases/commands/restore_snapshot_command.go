package commands

import (
	"errors"

	"fulfillment/internal/pkg/guard"
)

var ErrRestoreSnapshotCommandIsNotConstructed = errors.New(
	"RestoreSnapshotCommand must be created via NewRestoreSnapshotCommand constructor",
)

// RestoreSnapshotCommand loads the archived snapshot into the store.
// This is a parameterless command, typically issued once at start-up.
type RestoreSnapshotCommand struct {
	guard guard.ConstructorGuard
}

// NewRestoreSnapshotCommand creates a new command to restore the store.
func NewRestoreSnapshotCommand() RestoreSnapshotCommand {
	return RestoreSnapshotCommand{
		guard: guard.NewConstructorGuard(),
	}
}

// Validate ensures the command was created through the constructor.
func (c RestoreSnapshotCommand) Validate() error {
	return c.guard.Validate(ErrRestoreSnapshotCommandIsNotConstructed)
}
