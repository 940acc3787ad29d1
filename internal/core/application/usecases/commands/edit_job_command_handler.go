package commands

import (
	"context"

	"jobboard/internal/core/domain/model/job"
)

// EditJobCommandHandler applies partial updates to postings.
type EditJobCommandHandler struct {
	uowFactory JobUoWFactory
}

// NewEditJobCommandHandler creates a handler for posting updates.
func NewEditJobCommandHandler(uowFactory JobUoWFactory) EditJobCommandHandler {
	return EditJobCommandHandler{uowFactory: uowFactory}
}

// Handle processes the command and returns the updated posting.
// Fails with errs.ErrObjectNotFound when the id matches no posting and with
// errs.ErrValueIsRequired when the field subset is empty.
func (h *EditJobCommandHandler) Handle(ctx context.Context, cmd EditJobCommand) (*job.Job, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	updated, err := uow.JobRepository().Update(ctx, cmd.ID(), cmd.Fields())
	if err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return updated, nil
}
