package companyrepo

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"jobboard/internal/core/domain/model/company"
	"jobboard/internal/pkg/errs"
	"jobboard/internal/pkg/sqlbuild"

	"github.com/lib/pq"
	"gorm.io/gorm"
)

// uniqueViolation is the Postgres error code for unique constraint failures.
const uniqueViolation = "23505"

// updateColumns maps partial-update field names onto storage columns.
// Fields absent here keep their own name.
var updateColumns = map[string]string{
	"numEmployees": "num_employees",
	"logoUrl":      "logo_url",
}

// GormCompanyRepository implements ports.CompanyRepository using GORM.
type GormCompanyRepository struct {
	db *gorm.DB
}

// NewGormCompanyRepository creates a new GORM company repository.
func NewGormCompanyRepository(db *gorm.DB) *GormCompanyRepository {
	return &GormCompanyRepository{db: db}
}

// Add saves a new company. A handle collision is classified as invalid input.
func (r *GormCompanyRepository) Add(ctx context.Context, c *company.Company) error {
	if err := c.Validate(); err != nil {
		return err
	}

	dto := fromDomain(c)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		if isUniqueViolation(err) {
			return errs.NewValueIsInvalidErrorWithCause("handle", err)
		}
		return err
	}

	return nil
}

// Update applies a partial update built from fields to the company with the
// given handle and returns the updated row.
func (r *GormCompanyRepository) Update(ctx context.Context, handle string, fields map[string]any) (*company.Company, error) {
	setClause, args, err := sqlbuild.PartialUpdate(fields, updateColumns)
	if err != nil {
		return nil, err
	}

	query := fmt.Sprintf(`
		UPDATE companies
		SET %s
		WHERE handle = $%d
		RETURNING handle, name, description, num_employees, logo_url
	`, setClause, len(args)+1)
	args = append(args, handle)

	var dto CompanyDTO
	row := r.db.WithContext(ctx).Raw(query, args...).Row()
	scanErr := row.Scan(&dto.Handle, &dto.Name, &dto.Description, &dto.NumEmployees, &dto.LogoURL)
	if scanErr != nil {
		if errors.Is(scanErr, sql.ErrNoRows) {
			return nil, errs.NewObjectNotFoundError("handle", handle)
		}
		return nil, scanErr
	}

	return toDomain(dto)
}

// Remove permanently deletes the company; postings referencing it are removed
// by the foreign-key cascade.
func (r *GormCompanyRepository) Remove(ctx context.Context, handle string) error {
	result := r.db.WithContext(ctx).Delete(&CompanyDTO{}, "handle = ?", handle)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("handle", handle)
	}

	return nil
}

// isUniqueViolation reports whether err is a Postgres unique constraint error,
// either as the raw driver error or as GORM's translated sentinel.
func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return string(pqErr.Code) == uniqueViolation
	}
	return errors.Is(err, gorm.ErrDuplicatedKey)
}
