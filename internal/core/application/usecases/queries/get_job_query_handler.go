package queries

import (
	"context"
	"database/sql"
	"errors"

	"jobboard/internal/pkg/errs"

	"gorm.io/gorm"
)

// GetJobQueryHandler retrieves one posting together with its owning company.
// Both selects run inside a single read transaction so the embedded company
// cannot come from a different snapshot than the posting itself.
type GetJobQueryHandler struct {
	db *gorm.DB
}

// NewGetJobQueryHandler creates a handler for single-posting lookups.
func NewGetJobQueryHandler(db *gorm.DB) GetJobQueryHandler {
	return GetJobQueryHandler{db: db}
}

// Handle executes the lookup. Fails with errs.ErrObjectNotFound when the id
// matches no posting.
func (h GetJobQueryHandler) Handle(
	ctx context.Context,
	query GetJobQuery,
) (GetJobQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetJobQueryResponse{}, err
	}

	var response GetJobQueryResponse

	txErr := h.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var companyHandle string

		row := tx.Raw(`
			SELECT id,
				title,
				salary,
				equity,
				company_handle
			FROM jobs
			WHERE id = $1
		`, query.ID()).Row()

		err := row.Scan(
			&response.ID,
			&response.Title,
			&response.Salary,
			&response.Equity,
			&companyHandle,
		)
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return errs.NewObjectNotFoundError("jobId", query.ID())
			}
			return err
		}

		row = tx.Raw(`
			SELECT handle,
				name,
				description,
				num_employees,
				logo_url
			FROM companies
			WHERE handle = $1
		`, companyHandle).Row()

		return row.Scan(
			&response.Company.Handle,
			&response.Company.Name,
			&response.Company.Description,
			&response.Company.NumEmployees,
			&response.Company.LogoURL,
		)
	})
	if txErr != nil {
		return GetJobQueryResponse{}, txErr
	}

	return response, nil
}
