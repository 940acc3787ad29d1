package queries

import (
	"context"
	"database/sql"
	"errors"

	"jobboard/internal/pkg/errs"

	"gorm.io/gorm"
)

// GetCompanyQueryHandler retrieves one company with direct SQL.
type GetCompanyQueryHandler struct {
	db *gorm.DB
}

// NewGetCompanyQueryHandler creates a handler for single-company lookups.
func NewGetCompanyQueryHandler(db *gorm.DB) GetCompanyQueryHandler {
	return GetCompanyQueryHandler{db: db}
}

// Handle executes the lookup. Fails with errs.ErrObjectNotFound when the
// handle matches no company.
func (h GetCompanyQueryHandler) Handle(
	ctx context.Context,
	query GetCompanyQuery,
) (CompanyResponse, error) {
	if err := query.Validate(); err != nil {
		return CompanyResponse{}, err
	}

	var response CompanyResponse
	row := h.db.WithContext(ctx).Raw(`
		SELECT handle,
			name,
			description,
			num_employees,
			logo_url
		FROM companies
		WHERE handle = $1
	`, query.Handle()).Row()

	err := row.Scan(
		&response.Handle,
		&response.Name,
		&response.Description,
		&response.NumEmployees,
		&response.LogoURL,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return CompanyResponse{}, errs.NewObjectNotFoundError("handle", query.Handle())
		}
		return CompanyResponse{}, err
	}

	return response, nil
}
