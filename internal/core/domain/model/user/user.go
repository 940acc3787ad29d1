// Package user contains the account aggregate behind token issuance.
// Only the credential material and the admin flag live here; everything a
// request needs at runtime travels in the token claims instead.
package user

import (
	"jobboard/internal/pkg/errs"
	"jobboard/internal/pkg/guard"
)

var (
	ErrUserIsNotConstructed = errs.NewValueIsRequiredError(
		"User must be created via NewUser or RestoreUser",
	)
	ErrUsernameIsRequired     = errs.NewValueIsRequiredError("username")
	ErrPasswordHashIsRequired = errs.NewValueIsRequiredError("password hash")
)

// User is a registered account. The password is stored only as a bcrypt hash.
type User struct {
	username     string
	passwordHash string
	isAdmin      bool

	guard guard.ConstructorGuard
}

// NewUser creates an account from an already-hashed password.
func NewUser(username, passwordHash string, isAdmin bool) (*User, error) {
	if username == "" {
		return nil, ErrUsernameIsRequired
	}
	if passwordHash == "" {
		return nil, ErrPasswordHashIsRequired
	}

	return &User{
		username:     username,
		passwordHash: passwordHash,
		isAdmin:      isAdmin,
		guard:        guard.NewConstructorGuard(),
	}, nil
}

// RestoreUser reconstructs a persisted account from storage.
func RestoreUser(username, passwordHash string, isAdmin bool) (*User, error) {
	return NewUser(username, passwordHash, isAdmin)
}

// Validate ensures the account was created through a constructor.
func (u *User) Validate() error {
	return u.guard.Validate(ErrUserIsNotConstructed)
}

// Username returns the account's unique name.
func (u *User) Username() string {
	return u.username
}

// PasswordHash returns the bcrypt hash of the account password.
func (u *User) PasswordHash() string {
	return u.passwordHash
}

// IsAdmin reports whether the account carries the admin role.
func (u *User) IsAdmin() bool {
	return u.isAdmin
}
