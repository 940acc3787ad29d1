package ports

import (
	"context"

	"jobboard/internal/core/domain/model/user"
)

// UserRepository defines the write-side persistence contract for accounts.
type UserRepository interface {
	// Add persists a new account. A duplicate username fails with
	// errs.ErrValueIsInvalid.
	Add(ctx context.Context, u *user.User) error

	// GetByUsername loads an account for credential checks.
	// Fails with errs.ErrObjectNotFound when no row matches.
	GetByUsername(ctx context.Context, username string) (*user.User, error)
}
