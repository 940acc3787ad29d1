// Package queries contains read operations for retrieving board state.
// Implements the Query pattern for the read side of the CQRS architecture:
// handlers run parameterized SQL directly against the database and return
// read models shaped for their endpoint, bypassing the write-side aggregates.
package queries

import (
	"errors"

	"jobboard/internal/pkg/guard"
)

var ErrFindJobsQueryIsNotConstructed = errors.New(
	"FindJobsQuery must be created via NewFindJobsQuery",
)

// FindJobsQuery retrieves postings matching an optional set of filters.
// A nil filter is inactive; with no filters active every posting matches.
//
// Example:
//
//	minSalary := int64(150000)
//	query := NewFindJobsQuery(nil, &minSalary, true)
//	rows, err := NewFindJobsQueryHandler(db).Handle(ctx, query)
type FindJobsQuery struct {
	title     *string
	minSalary *int64
	hasEquity bool

	guard guard.ConstructorGuard
}

// NewFindJobsQuery creates a posting search. title filters by case-insensitive
// substring, minSalary by inclusive minimum; hasEquity activates only when
// exactly true and narrows results to postings with equity above zero.
func NewFindJobsQuery(title *string, minSalary *int64, hasEquity bool) FindJobsQuery {
	return FindJobsQuery{
		title:     title,
		minSalary: minSalary,
		hasEquity: hasEquity,
		guard:     guard.NewConstructorGuard(),
	}
}

// Validate ensures the query was created through the constructor.
func (q FindJobsQuery) Validate() error {
	return q.guard.Validate(ErrFindJobsQueryIsNotConstructed)
}

// Title returns the substring filter, nil when inactive.
func (q FindJobsQuery) Title() *string {
	return q.title
}

// MinSalary returns the minimum salary filter, nil when inactive.
func (q FindJobsQuery) MinSalary() *int64 {
	return q.minSalary
}

// HasEquity reports whether the equity filter is active.
func (q FindJobsQuery) HasEquity() bool {
	return q.hasEquity
}

// FindJobsQueryResponse is one row of the posting list: the posting fields
// plus the owning company's display name, flat rather than nested.
type FindJobsQueryResponse struct {
	ID            int64
	Title         string
	Salary        *int64
	Equity        *string
	CompanyHandle string
	CompanyName   string
}
