package jobrepo

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"jobboard/internal/core/domain/model/job"
	"jobboard/internal/pkg/errs"
	"jobboard/internal/pkg/sqlbuild"

	"gorm.io/gorm"
)

// GormJobRepository implements ports.JobRepository using GORM.
type GormJobRepository struct {
	db *gorm.DB
}

// NewGormJobRepository creates a new GORM job repository.
func NewGormJobRepository(db *gorm.DB) *GormJobRepository {
	return &GormJobRepository{db: db}
}

// Add saves a new posting and returns it with the generated id.
// No application-level check of the company handle is performed; an unknown
// handle fails with the database foreign-key error, surfaced unchanged.
func (r *GormJobRepository) Add(ctx context.Context, posting *job.Job) (*job.Job, error) {
	if err := posting.Validate(); err != nil {
		return nil, err
	}

	dto := fromDomain(posting)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return nil, err
	}

	return toDomain(dto)
}

// Update applies a partial update built from fields to the posting with the
// given id and returns the updated row. The SET clause comes from the shared
// fragment builder; the id is appended as the final positional parameter.
func (r *GormJobRepository) Update(ctx context.Context, id int64, fields map[string]any) (*job.Job, error) {
	setClause, args, err := sqlbuild.PartialUpdate(fields, nil)
	if err != nil {
		return nil, err
	}

	query := fmt.Sprintf(`
		UPDATE jobs
		SET %s
		WHERE id = $%d
		RETURNING id, title, salary, equity, company_handle
	`, setClause, len(args)+1)
	args = append(args, id)

	var dto JobDTO
	row := r.db.WithContext(ctx).Raw(query, args...).Row()
	scanErr := row.Scan(&dto.ID, &dto.Title, &dto.Salary, &dto.Equity, &dto.CompanyHandle)
	if scanErr != nil {
		if errors.Is(scanErr, sql.ErrNoRows) {
			return nil, errs.NewObjectNotFoundError("jobId", id)
		}
		return nil, scanErr
	}

	return toDomain(dto)
}

// Remove permanently deletes the posting with the given id.
func (r *GormJobRepository) Remove(ctx context.Context, id int64) error {
	result := r.db.WithContext(ctx).Delete(&JobDTO{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("jobId", id)
	}

	return nil
}
