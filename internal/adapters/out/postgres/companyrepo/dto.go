// Package companyrepo persists company aggregates.
package companyrepo

import (
	"jobboard/internal/core/domain/model/company"
)

// CompanyDTO represents the database structure for persisting companies.
// The handle is the primary key; postings reference it by foreign key with
// ON DELETE CASCADE.
type CompanyDTO struct {
	Handle       string  `gorm:"primaryKey"`
	Name         string  `gorm:"not null"`
	Description  *string `gorm:""`
	NumEmployees *int64  `gorm:"column:num_employees"`
	LogoURL      *string `gorm:"column:logo_url"`
}

// TableName overrides GORM's default naming convention to use "companies".
func (CompanyDTO) TableName() string {
	return "companies"
}

// fromDomain converts a company aggregate to its database representation.
func fromDomain(c *company.Company) CompanyDTO {
	return CompanyDTO{
		Handle:       c.Handle(),
		Name:         c.Name(),
		Description:  c.Description(),
		NumEmployees: c.NumEmployees(),
		LogoURL:      c.LogoURL(),
	}
}

// toDomain converts a database DTO to a company aggregate.
func toDomain(dto CompanyDTO) (*company.Company, error) {
	return company.RestoreCompany(dto.Handle, dto.Name, dto.Description, dto.NumEmployees, dto.LogoURL)
}
