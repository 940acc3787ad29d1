package queries

import (
	"context"

	"gorm.io/gorm"
)

// FindCompaniesQueryHandler retrieves company lists with direct SQL.
type FindCompaniesQueryHandler struct {
	db *gorm.DB
}

// NewFindCompaniesQueryHandler creates a handler for company searches.
func NewFindCompaniesQueryHandler(db *gorm.DB) FindCompaniesQueryHandler {
	return FindCompaniesQueryHandler{db: db}
}

// Handle executes the search, ordered by name ascending.
func (h FindCompaniesQueryHandler) Handle(
	ctx context.Context,
	query FindCompaniesQuery,
) ([]CompanyResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	sqlQuery := `
		SELECT handle,
			name,
			description,
			num_employees,
			logo_url
		FROM companies
	`

	var args []any
	if query.Name() != nil {
		args = append(args, "%"+*query.Name()+"%")
		sqlQuery += " WHERE name ILIKE $1"
	}

	sqlQuery += " ORDER BY name"

	rows, err := h.db.WithContext(ctx).Raw(sqlQuery, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	companies := make([]CompanyResponse, 0)
	for rows.Next() {
		var c CompanyResponse
		if err = rows.Scan(&c.Handle, &c.Name, &c.Description, &c.NumEmployees, &c.LogoURL); err != nil {
			return nil, err
		}
		companies = append(companies, c)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return companies, nil
}
