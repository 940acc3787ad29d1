package commands

import (
	"errors"

	"jobboard/internal/core/domain/model/user"
	"jobboard/internal/pkg/errs"
	"jobboard/internal/pkg/guard"
)

var ErrRegisterUserCommandIsNotConstructed = errors.New(
	"RegisterUserCommand must be created via NewRegisterUserCommand",
)

// MinPasswordLength is the shortest password accepted at registration.
const MinPasswordLength = 5

// RegisterUserCommand represents a self-service account registration.
// Registered accounts are never admins; the flag is granted out of band.
type RegisterUserCommand struct {
	username string
	password string

	guard guard.ConstructorGuard
}

// NewRegisterUserCommand creates a registration command. The password travels
// in plain text only as far as the handler, which hashes it before anything
// is persisted.
func NewRegisterUserCommand(username, password string) (RegisterUserCommand, error) {
	if username == "" {
		return RegisterUserCommand{}, user.ErrUsernameIsRequired
	}
	if len(password) < MinPasswordLength {
		return RegisterUserCommand{}, errs.NewValueIsInvalidError("password")
	}

	return RegisterUserCommand{
		username: username,
		password: password,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c RegisterUserCommand) Validate() error {
	return c.guard.Validate(ErrRegisterUserCommandIsNotConstructed)
}

// Username returns the requested account name.
func (c RegisterUserCommand) Username() string {
	return c.username
}

// Password returns the plain-text password to hash.
func (c RegisterUserCommand) Password() string {
	return c.password
}
