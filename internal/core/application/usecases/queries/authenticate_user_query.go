package queries

import (
	"errors"

	"jobboard/internal/pkg/guard"
)

var ErrAuthenticateUserQueryIsNotConstructed = errors.New(
	"AuthenticateUserQuery must be created via NewAuthenticateUserQuery",
)

// AuthenticateUserQuery checks a username/password pair against the stored
// bcrypt hash. It reads but never modifies account state.
type AuthenticateUserQuery struct {
	username string
	password string

	guard guard.ConstructorGuard
}

// NewAuthenticateUserQuery creates a credentials check.
func NewAuthenticateUserQuery(username, password string) AuthenticateUserQuery {
	return AuthenticateUserQuery{
		username: username,
		password: password,
		guard:    guard.NewConstructorGuard(),
	}
}

// Validate ensures the query was created through the constructor.
func (q AuthenticateUserQuery) Validate() error {
	return q.guard.Validate(ErrAuthenticateUserQueryIsNotConstructed)
}

// Username returns the claimed account name.
func (q AuthenticateUserQuery) Username() string {
	return q.username
}

// Password returns the password to check.
func (q AuthenticateUserQuery) Password() string {
	return q.password
}
