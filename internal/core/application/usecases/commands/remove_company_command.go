package commands

import (
	"errors"

	"jobboard/internal/core/domain/model/company"
	"jobboard/internal/pkg/guard"
)

var ErrRemoveCompanyCommandIsNotConstructed = errors.New(
	"RemoveCompanyCommand must be created via NewRemoveCompanyCommand",
)

// RemoveCompanyCommand represents a permanent deletion of a company.
// Postings owned by the company are removed by the foreign-key cascade.
type RemoveCompanyCommand struct {
	handle string

	guard guard.ConstructorGuard
}

// NewRemoveCompanyCommand creates a deletion command for the given handle.
func NewRemoveCompanyCommand(handle string) (RemoveCompanyCommand, error) {
	if handle == "" {
		return RemoveCompanyCommand{}, company.ErrHandleIsRequired
	}

	return RemoveCompanyCommand{handle: handle, guard: guard.NewConstructorGuard()}, nil
}

// Validate ensures the command was created through the constructor.
func (c RemoveCompanyCommand) Validate() error {
	return c.guard.Validate(ErrRemoveCompanyCommandIsNotConstructed)
}

// Handle returns the handle of the company to delete.
func (c RemoveCompanyCommand) Handle() string {
	return c.handle
}
