package queries

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"gorm.io/gorm"
)

// FindJobsQueryHandler retrieves posting lists with direct SQL, appending a
// WHERE clause only for the filters the query activates.
type FindJobsQueryHandler struct {
	db *gorm.DB
}

// NewFindJobsQueryHandler creates a handler for posting searches.
func NewFindJobsQueryHandler(db *gorm.DB) FindJobsQueryHandler {
	return FindJobsQueryHandler{db: db}
}

// Handle executes the search. Filters combine with AND; results are always
// ordered by title ascending.
func (h FindJobsQueryHandler) Handle(
	ctx context.Context,
	query FindJobsQuery,
) ([]FindJobsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	sqlQuery := `
		SELECT j.id,
			j.title,
			j.salary,
			j.equity,
			j.company_handle,
			c.name
		FROM jobs j
		LEFT JOIN companies AS c ON c.handle = j.company_handle
	`

	var (
		where []string
		args  []any
	)

	if query.Title() != nil {
		args = append(args, "%"+*query.Title()+"%")
		where = append(where, fmt.Sprintf("j.title ILIKE $%d", len(args)))
	}

	if query.MinSalary() != nil {
		args = append(args, *query.MinSalary())
		where = append(where, fmt.Sprintf("j.salary >= $%d", len(args)))
	}

	if query.HasEquity() {
		where = append(where, "j.equity > 0")
	}

	if len(where) > 0 {
		sqlQuery += " WHERE " + strings.Join(where, " AND ")
	}

	sqlQuery += " ORDER BY j.title"

	rows, err := h.db.WithContext(ctx).Raw(sqlQuery, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	postings := make([]FindJobsQueryResponse, 0)
	for rows.Next() {
		var (
			posting     FindJobsQueryResponse
			companyName sql.NullString
		)

		if err = rows.Scan(
			&posting.ID,
			&posting.Title,
			&posting.Salary,
			&posting.Equity,
			&posting.CompanyHandle,
			&companyName,
		); err != nil {
			return nil, err
		}

		posting.CompanyName = companyName.String
		postings = append(postings, posting)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return postings, nil
}
