// Package jobrepo persists posting aggregates. It implements the write side
// of the jobs table: inserts through GORM, partial updates through the
// parameterized SET-clause builder, deletes by id.
package jobrepo

import (
	"jobboard/internal/core/domain/model/job"
)

// JobDTO represents the database structure for persisting postings.
// Equity is carried as a string end to end; the column is NUMERIC and the
// decimal text representation is preserved exactly.
type JobDTO struct {
	ID            int64   `gorm:"primaryKey;autoIncrement"`
	Title         string  `gorm:"not null"`
	Salary        *int64  `gorm:""`
	Equity        *string `gorm:"type:numeric"`
	CompanyHandle string  `gorm:"not null;index"`
}

// TableName overrides GORM's default naming convention to use "jobs".
func (JobDTO) TableName() string {
	return "jobs"
}

// fromDomain converts a posting aggregate to its database representation.
func fromDomain(posting *job.Job) JobDTO {
	dto := JobDTO{
		ID:            posting.ID(),
		Title:         posting.Title(),
		Salary:        posting.Salary(),
		CompanyHandle: posting.CompanyHandle(),
	}

	if posting.Equity() != nil {
		value := posting.Equity().String()
		dto.Equity = &value
	}

	return dto
}

// toDomain converts a database DTO to a posting aggregate.
func toDomain(dto JobDTO) (*job.Job, error) {
	var equity *job.Equity
	if dto.Equity != nil {
		parsed, err := job.NewEquity(*dto.Equity)
		if err != nil {
			return nil, err
		}
		equity = &parsed
	}

	return job.RestoreJob(dto.ID, dto.Title, dto.Salary, equity, dto.CompanyHandle)
}
