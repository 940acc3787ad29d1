package queries

import (
	"context"
	"database/sql"
	"errors"

	"jobboard/internal/pkg/errs"

	"gorm.io/gorm"
)

// GetUserQueryHandler retrieves one account with direct SQL.
type GetUserQueryHandler struct {
	db *gorm.DB
}

// NewGetUserQueryHandler creates a handler for single-account lookups.
func NewGetUserQueryHandler(db *gorm.DB) GetUserQueryHandler {
	return GetUserQueryHandler{db: db}
}

// Handle executes the lookup. Fails with errs.ErrObjectNotFound when the
// username matches no account.
func (h GetUserQueryHandler) Handle(
	ctx context.Context,
	query GetUserQuery,
) (GetUserQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetUserQueryResponse{}, err
	}

	var response GetUserQueryResponse
	row := h.db.WithContext(ctx).Raw(`
		SELECT username,
			is_admin
		FROM users
		WHERE username = $1
	`, query.Username()).Row()

	err := row.Scan(&response.Username, &response.IsAdmin)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return GetUserQueryResponse{}, errs.NewObjectNotFoundError("username", query.Username())
		}
		return GetUserQueryResponse{}, err
	}

	return response, nil
}
