package commands

import (
	"errors"

	"jobboard/internal/core/domain/model/company"
	"jobboard/internal/pkg/guard"
)

var ErrCreateCompanyCommandIsNotConstructed = errors.New(
	"CreateCompanyCommand must be created via NewCreateCompanyCommand",
)

// CreateCompanyCommand represents a request to register a new company profile.
type CreateCompanyCommand struct {
	handle       string
	name         string
	description  *string
	numEmployees *int64
	logoURL      *string

	guard guard.ConstructorGuard
}

// NewCreateCompanyCommand creates a command to register a company.
// Handle and name are required.
func NewCreateCompanyCommand(handle, name string, description *string, numEmployees *int64, logoURL *string) (CreateCompanyCommand, error) {
	if handle == "" {
		return CreateCompanyCommand{}, company.ErrHandleIsRequired
	}
	if name == "" {
		return CreateCompanyCommand{}, company.ErrNameIsRequired
	}

	return CreateCompanyCommand{
		handle:       handle,
		name:         name,
		description:  description,
		numEmployees: numEmployees,
		logoURL:      logoURL,
		guard:        guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateCompanyCommand) Validate() error {
	return c.guard.Validate(ErrCreateCompanyCommandIsNotConstructed)
}

// Handle returns the company handle.
func (c CreateCompanyCommand) Handle() string {
	return c.handle
}

// Name returns the display name.
func (c CreateCompanyCommand) Name() string {
	return c.name
}

// Description returns the profile description, nil when unset.
func (c CreateCompanyCommand) Description() *string {
	return c.description
}

// NumEmployees returns the headcount, nil when unknown.
func (c CreateCompanyCommand) NumEmployees() *int64 {
	return c.numEmployees
}

// LogoURL returns the logo location, nil when unset.
func (c CreateCompanyCommand) LogoURL() *string {
	return c.logoURL
}
