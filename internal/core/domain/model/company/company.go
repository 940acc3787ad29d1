// Package company contains the company aggregate. Companies own postings;
// a company's handle is its primary key and the value postings reference.
package company

import (
	"jobboard/internal/pkg/errs"
	"jobboard/internal/pkg/guard"
)

var (
	ErrCompanyIsNotConstructed = errs.NewValueIsRequiredError(
		"Company must be created via NewCompany or RestoreCompany",
	)
	ErrHandleIsRequired = errs.NewValueIsRequiredError("handle")
	ErrNameIsRequired   = errs.NewValueIsRequiredError("name")
)

// Company is an employer profile. Handle and name are required; the rest is
// optional display data.
type Company struct {
	handle       string
	name         string
	description  *string
	numEmployees *int64
	logoURL      *string

	guard guard.ConstructorGuard
}

// NewCompany creates a company profile.
func NewCompany(handle, name string, description *string, numEmployees *int64, logoURL *string) (*Company, error) {
	if handle == "" {
		return nil, ErrHandleIsRequired
	}
	if name == "" {
		return nil, ErrNameIsRequired
	}

	return &Company{
		handle:       handle,
		name:         name,
		description:  description,
		numEmployees: numEmployees,
		logoURL:      logoURL,
		guard:        guard.NewConstructorGuard(),
	}, nil
}

// RestoreCompany reconstructs a persisted company from storage.
func RestoreCompany(handle, name string, description *string, numEmployees *int64, logoURL *string) (*Company, error) {
	return NewCompany(handle, name, description, numEmployees, logoURL)
}

// Validate ensures the company was created through a constructor.
func (c *Company) Validate() error {
	return c.guard.Validate(ErrCompanyIsNotConstructed)
}

// Handle returns the unique company handle.
func (c *Company) Handle() string {
	return c.handle
}

// Name returns the display name.
func (c *Company) Name() string {
	return c.name
}

// Description returns the profile description, nil when unset.
func (c *Company) Description() *string {
	return c.description
}

// NumEmployees returns the headcount, nil when unknown.
func (c *Company) NumEmployees() *int64 {
	return c.numEmployees
}

// LogoURL returns the logo location, nil when unset.
func (c *Company) LogoURL() *string {
	return c.logoURL
}
