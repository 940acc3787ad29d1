// Package job contains the posting aggregate of the job board. A posting
// belongs to exactly one company, referenced by handle; the reference itself
// is enforced by the database foreign key, not here.
package job

import (
	"jobboard/internal/pkg/errs"
	"jobboard/internal/pkg/guard"
)

var (
	ErrJobIsNotConstructed = errs.NewValueIsRequiredError(
		"Job must be created via NewJob or RestoreJob",
	)
	ErrTitleIsRequired         = errs.NewValueIsRequiredError("title")
	ErrCompanyHandleIsRequired = errs.NewValueIsRequiredError("company handle")
)

// Job is a single posting. Salary and equity are optional; the id is zero
// until the posting has been persisted and assigned one by the database.
type Job struct {
	id            int64
	title         string
	salary        *int64
	equity        *Equity
	companyHandle string

	guard guard.ConstructorGuard
}

// NewJob creates a posting that has not been persisted yet.
// Title and company handle are required; salary and equity may be nil.
func NewJob(title string, salary *int64, equity *Equity, companyHandle string) (*Job, error) {
	if title == "" {
		return nil, ErrTitleIsRequired
	}
	if companyHandle == "" {
		return nil, ErrCompanyHandleIsRequired
	}
	if equity != nil {
		if err := equity.Validate(); err != nil {
			return nil, err
		}
	}

	return &Job{
		title:         title,
		salary:        salary,
		equity:        equity,
		companyHandle: companyHandle,
		guard:         guard.NewConstructorGuard(),
	}, nil
}

// RestoreJob reconstructs a persisted posting from storage.
func RestoreJob(id int64, title string, salary *int64, equity *Equity, companyHandle string) (*Job, error) {
	restored, err := NewJob(title, salary, equity, companyHandle)
	if err != nil {
		return nil, err
	}

	restored.id = id
	return restored, nil
}

// Validate ensures the posting was created through a constructor.
func (j *Job) Validate() error {
	return j.guard.Validate(ErrJobIsNotConstructed)
}

// ID returns the database-assigned identifier, zero if not yet persisted.
func (j *Job) ID() int64 {
	return j.id
}

// Title returns the posting title.
func (j *Job) Title() string {
	return j.title
}

// Salary returns the annual salary, nil when not disclosed.
func (j *Job) Salary() *int64 {
	return j.salary
}

// Equity returns the offered equity share, nil when none.
func (j *Job) Equity() *Equity {
	return j.equity
}

// CompanyHandle returns the handle of the owning company.
func (j *Job) CompanyHandle() string {
	return j.companyHandle
}
