package ports

import (
	"context"

	"jobboard/internal/core/domain/model/company"
)

// CompanyRepository defines the write-side persistence contract for companies.
type CompanyRepository interface {
	// Add persists a new company. A duplicate handle fails with
	// errs.ErrValueIsInvalid.
	Add(ctx context.Context, c *company.Company) error

	// Update applies a partial update to the company with the given handle
	// and returns the updated row. Fields may be any subset of name,
	// description, numEmployees and logoUrl.
	Update(ctx context.Context, handle string, fields map[string]any) (*company.Company, error)

	// Remove permanently deletes the company and, through the foreign key
	// cascade, every posting that references it.
	// Fails with errs.ErrObjectNotFound when no row matches.
	Remove(ctx context.Context, handle string) error
}
