// Package ports defines the persistence contracts between the application
// core and infrastructure. Write-side repositories live here; read-side
// queries go straight to the database following the CQRS split.
package ports

import (
	"context"

	"jobboard/internal/core/domain/model/job"
)

// JobRepository defines the write-side persistence contract for postings.
type JobRepository interface {
	// Add persists a new posting and returns it with the database-assigned id.
	// A company handle that references no existing company surfaces the
	// database constraint error unchanged.
	Add(ctx context.Context, posting *job.Job) (*job.Job, error)

	// Update applies a partial update to the posting with the given id and
	// returns the updated row. Fields may be any subset of title, salary and
	// equity; an empty set fails with errs.ErrValueIsRequired, a missing id
	// with errs.ErrObjectNotFound.
	Update(ctx context.Context, id int64, fields map[string]any) (*job.Job, error)

	// Remove permanently deletes the posting with the given id.
	// Fails with errs.ErrObjectNotFound when no row matches.
	Remove(ctx context.Context, id int64) error
}
