// Package commands contains business operations that modify board state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, transaction management,
// and persistence.
package commands

import (
	"context"

	"jobboard/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// Each handler depends only on the narrow slice of repositories it touches.
type (
	// TxManager handles database transaction lifecycle.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// JobRepoFactory provides access to the job repository within a transaction.
	JobRepoFactory interface {
		JobRepository() ports.JobRepository
	}

	// CompanyRepoFactory provides access to the company repository within a transaction.
	CompanyRepoFactory interface {
		CompanyRepository() ports.CompanyRepository
	}

	// UserRepoFactory provides access to the user repository within a transaction.
	UserRepoFactory interface {
		UserRepository() ports.UserRepository
	}

	// JobUoW manages transactions for posting-only operations.
	JobUoW interface {
		TxManager
		JobRepoFactory
	}

	// JobUoWFactory creates new posting unit of work instances.
	JobUoWFactory interface {
		Create() JobUoW
	}

	// CompanyUoW manages transactions for company-only operations.
	CompanyUoW interface {
		TxManager
		CompanyRepoFactory
	}

	// CompanyUoWFactory creates new company unit of work instances.
	CompanyUoWFactory interface {
		Create() CompanyUoW
	}

	// UserUoW manages transactions for account-only operations.
	UserUoW interface {
		TxManager
		UserRepoFactory
	}

	// UserUoWFactory creates new account unit of work instances.
	UserUoWFactory interface {
		Create() UserUoW
	}
)
