package queries

import (
	"errors"

	"jobboard/internal/pkg/guard"
)

var ErrFindCompaniesQueryIsNotConstructed = errors.New(
	"FindCompaniesQuery must be created via NewFindCompaniesQuery",
)

// FindCompaniesQuery retrieves companies, optionally narrowed by a
// case-insensitive substring match on the display name.
type FindCompaniesQuery struct {
	name *string

	guard guard.ConstructorGuard
}

// NewFindCompaniesQuery creates a company search. A nil name returns every
// company.
func NewFindCompaniesQuery(name *string) FindCompaniesQuery {
	return FindCompaniesQuery{name: name, guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q FindCompaniesQuery) Validate() error {
	return q.guard.Validate(ErrFindCompaniesQueryIsNotConstructed)
}

// Name returns the substring filter, nil when inactive.
func (q FindCompaniesQuery) Name() *string {
	return q.name
}
