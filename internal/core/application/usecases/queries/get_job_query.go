package queries

import (
	"errors"

	"jobboard/internal/pkg/guard"
)

var ErrGetJobQueryIsNotConstructed = errors.New(
	"GetJobQuery must be created via NewGetJobQuery",
)

// GetJobQuery retrieves a single posting as a denormalized view: the posting
// fields with the owning company embedded in place of the handle.
type GetJobQuery struct {
	id int64

	guard guard.ConstructorGuard
}

// NewGetJobQuery creates a lookup for the posting with the given id.
func NewGetJobQuery(id int64) GetJobQuery {
	return GetJobQuery{id: id, guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetJobQuery) Validate() error {
	return q.guard.Validate(ErrGetJobQueryIsNotConstructed)
}

// ID returns the posting id to look up.
func (q GetJobQuery) ID() int64 {
	return q.id
}

// GetJobQueryResponse is the denormalized posting view. The company handle is
// not repeated at the top level; it lives inside the embedded company.
type GetJobQueryResponse struct {
	ID      int64
	Title   string
	Salary  *int64
	Equity  *string
	Company CompanyResponse
}

// CompanyResponse is a company read model shared by the job and company views.
type CompanyResponse struct {
	Handle       string
	Name         string
	Description  *string
	NumEmployees *int64
	LogoURL      *string
}
