package commands

import (
	"errors"

	"jobboard/internal/core/domain/model/company"
	"jobboard/internal/pkg/guard"
)

var ErrEditCompanyCommandIsNotConstructed = errors.New(
	"EditCompanyCommand must be created via NewEditCompanyCommand",
)

// EditCompanyCommand represents a partial update of a company profile: any
// subset of name, description, numEmployees and logoUrl. The handle itself is
// immutable.
type EditCompanyCommand struct {
	handle string
	fields map[string]any

	guard guard.ConstructorGuard
}

// NewEditCompanyCommand creates a partial-update command for the company with
// the given handle.
func NewEditCompanyCommand(handle string, fields map[string]any) (EditCompanyCommand, error) {
	if handle == "" {
		return EditCompanyCommand{}, company.ErrHandleIsRequired
	}

	return EditCompanyCommand{
		handle: handle,
		fields: fields,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c EditCompanyCommand) Validate() error {
	return c.guard.Validate(ErrEditCompanyCommandIsNotConstructed)
}

// Handle returns the handle of the company to update.
func (c EditCompanyCommand) Handle() string {
	return c.handle
}

// Fields returns the sparse field map to apply.
func (c EditCompanyCommand) Fields() map[string]any {
	return c.fields
}
