package queries

import (
	"errors"

	"jobboard/internal/pkg/guard"
)

var ErrGetUserQueryIsNotConstructed = errors.New(
	"GetUserQuery must be created via NewGetUserQuery",
)

// GetUserQuery retrieves a single account by username. The read model never
// carries the password hash.
type GetUserQuery struct {
	username string

	guard guard.ConstructorGuard
}

// NewGetUserQuery creates a lookup for the account with the given username.
func NewGetUserQuery(username string) GetUserQuery {
	return GetUserQuery{username: username, guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetUserQuery) Validate() error {
	return q.guard.Validate(ErrGetUserQueryIsNotConstructed)
}

// Username returns the username to look up.
func (q GetUserQuery) Username() string {
	return q.username
}

// GetUserQueryResponse is the account read model.
type GetUserQueryResponse struct {
	Username string
	IsAdmin  bool
}
