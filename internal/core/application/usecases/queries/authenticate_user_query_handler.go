package queries

import (
	"context"
	"database/sql"
	"errors"

	"jobboard/internal/pkg/errs"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// AuthenticateUserQueryHandler verifies credentials against the users table.
// An unknown username and a wrong password produce the same unauthorized
// failure, so the response does not reveal which accounts exist.
type AuthenticateUserQueryHandler struct {
	db *gorm.DB
}

// NewAuthenticateUserQueryHandler creates a handler for credential checks.
func NewAuthenticateUserQueryHandler(db *gorm.DB) AuthenticateUserQueryHandler {
	return AuthenticateUserQueryHandler{db: db}
}

// Handle executes the check and returns the account read model on success.
func (h AuthenticateUserQueryHandler) Handle(
	ctx context.Context,
	query AuthenticateUserQuery,
) (GetUserQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetUserQueryResponse{}, err
	}

	var (
		response GetUserQueryResponse
		hash     string
	)

	row := h.db.WithContext(ctx).Raw(`
		SELECT username,
			password_hash,
			is_admin
		FROM users
		WHERE username = $1
	`, query.Username()).Row()

	err := row.Scan(&response.Username, &hash, &response.IsAdmin)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return GetUserQueryResponse{}, errs.NewUnauthorizedError("invalid credentials")
		}
		return GetUserQueryResponse{}, err
	}

	if bcrypt.CompareHashAndPassword([]byte(hash), []byte(query.Password())) != nil {
		return GetUserQueryResponse{}, errs.NewUnauthorizedError("invalid credentials")
	}

	return response, nil
}
