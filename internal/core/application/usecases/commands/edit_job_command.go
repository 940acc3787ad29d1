package commands

import (
	"errors"

	"jobboard/internal/core/domain/model/job"
	"jobboard/internal/pkg/errs"
	"jobboard/internal/pkg/guard"
)

var ErrEditJobCommandIsNotConstructed = errors.New(
	"EditJobCommand must be created via NewEditJobCommand",
)

// EditJobCommand represents a partial update of a posting: any subset of
// title, salary and equity. An empty subset is rejected downstream by the
// SET-clause builder rather than treated as a no-op.
type EditJobCommand struct {
	id     int64
	fields map[string]any

	guard guard.ConstructorGuard
}

// NewEditJobCommand creates a partial-update command. An equity value in
// fields must be a decimal string in [0, 1].
func NewEditJobCommand(id int64, fields map[string]any) (EditJobCommand, error) {
	if raw, ok := fields["equity"]; ok {
		text, isString := raw.(string)
		if !isString {
			return EditJobCommand{}, errs.NewValueIsInvalidError("equity")
		}
		if _, err := job.NewEquity(text); err != nil {
			return EditJobCommand{}, err
		}
	}

	return EditJobCommand{
		id:     id,
		fields: fields,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c EditJobCommand) Validate() error {
	return c.guard.Validate(ErrEditJobCommandIsNotConstructed)
}

// ID returns the id of the posting to update.
func (c EditJobCommand) ID() int64 {
	return c.id
}

// Fields returns the sparse field map to apply.
func (c EditJobCommand) Fields() map[string]any {
	return c.fields
}
