package queries

import (
	"errors"

	"jobboard/internal/pkg/guard"
)

var ErrGetCompanyQueryIsNotConstructed = errors.New(
	"GetCompanyQuery must be created via NewGetCompanyQuery",
)

// GetCompanyQuery retrieves a single company by handle.
type GetCompanyQuery struct {
	handle string

	guard guard.ConstructorGuard
}

// NewGetCompanyQuery creates a lookup for the company with the given handle.
func NewGetCompanyQuery(handle string) GetCompanyQuery {
	return GetCompanyQuery{handle: handle, guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetCompanyQuery) Validate() error {
	return q.guard.Validate(ErrGetCompanyQueryIsNotConstructed)
}

// Handle returns the company handle to look up.
func (q GetCompanyQuery) Handle() string {
	return q.handle
}
