package commands

import (
	"errors"

	"jobboard/internal/pkg/guard"
)

var ErrRemoveJobCommandIsNotConstructed = errors.New(
	"RemoveJobCommand must be created via NewRemoveJobCommand",
)

// RemoveJobCommand represents a permanent deletion of a posting.
// There is no soft delete.
type RemoveJobCommand struct {
	id int64

	guard guard.ConstructorGuard
}

// NewRemoveJobCommand creates a deletion command for the given posting id.
func NewRemoveJobCommand(id int64) RemoveJobCommand {
	return RemoveJobCommand{id: id, guard: guard.NewConstructorGuard()}
}

// Validate ensures the command was created through the constructor.
func (c RemoveJobCommand) Validate() error {
	return c.guard.Validate(ErrRemoveJobCommandIsNotConstructed)
}

// ID returns the id of the posting to delete.
func (c RemoveJobCommand) ID() int64 {
	return c.id
}
