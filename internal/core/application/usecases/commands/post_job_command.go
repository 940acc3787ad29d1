package commands

import (
	"errors"

	"jobboard/internal/core/domain/model/job"
	"jobboard/internal/pkg/guard"
)

var ErrPostJobCommandIsNotConstructed = errors.New(
	"PostJobCommand must be created via NewPostJobCommand",
)

// PostJobCommand represents a request to publish a new posting.
//
// Example:
//
//	salary := int64(120000)
//	equity := "0.05"
//	cmd, err := NewPostJobCommand("Engineer", &salary, &equity, "acme")
//	if err != nil {
//	    return err
//	}
//	posting, err := NewPostJobCommandHandler(uowFactory).Handle(ctx, cmd)
type PostJobCommand struct {
	title         string
	salary        *int64
	equity        *job.Equity
	companyHandle string

	guard guard.ConstructorGuard
}

// NewPostJobCommand creates a command to publish a posting. Title and company
// handle are required; equity, when present, must be a decimal string in [0, 1].
// Whether the handle references an existing company is left to the database.
func NewPostJobCommand(title string, salary *int64, equity *string, companyHandle string) (PostJobCommand, error) {
	if title == "" {
		return PostJobCommand{}, job.ErrTitleIsRequired
	}
	if companyHandle == "" {
		return PostJobCommand{}, job.ErrCompanyHandleIsRequired
	}

	var parsedEquity *job.Equity
	if equity != nil {
		parsed, err := job.NewEquity(*equity)
		if err != nil {
			return PostJobCommand{}, err
		}
		parsedEquity = &parsed
	}

	return PostJobCommand{
		title:         title,
		salary:        salary,
		equity:        parsedEquity,
		companyHandle: companyHandle,
		guard:         guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c PostJobCommand) Validate() error {
	return c.guard.Validate(ErrPostJobCommandIsNotConstructed)
}

// Title returns the posting title.
func (c PostJobCommand) Title() string {
	return c.title
}

// Salary returns the annual salary, nil when not disclosed.
func (c PostJobCommand) Salary() *int64 {
	return c.salary
}

// Equity returns the offered equity share, nil when none.
func (c PostJobCommand) Equity() *job.Equity {
	return c.equity
}

// CompanyHandle returns the handle of the owning company.
func (c PostJobCommand) CompanyHandle() string {
	return c.companyHandle
}
