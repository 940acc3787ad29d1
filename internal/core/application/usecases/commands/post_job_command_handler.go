package commands

import (
	"context"

	"jobboard/internal/core/domain/model/job"
)

// PostJobCommandHandler persists new postings. The database assigns the id;
// an unknown company handle surfaces the foreign-key error unchanged.
type PostJobCommandHandler struct {
	uowFactory JobUoWFactory
}

// NewPostJobCommandHandler creates a handler for publishing postings.
func NewPostJobCommandHandler(uowFactory JobUoWFactory) PostJobCommandHandler {
	return PostJobCommandHandler{uowFactory: uowFactory}
}

// Handle processes the command and returns the persisted posting including
// its generated id.
func (h *PostJobCommandHandler) Handle(ctx context.Context, cmd PostJobCommand) (*job.Job, error) {
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

	posting, err := job.NewJob(cmd.Title(), cmd.Salary(), cmd.Equity(), cmd.CompanyHandle())
	if err != nil {
		return nil, err
	}

	created, err := uow.JobRepository().Add(ctx, posting)
	if err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return created, nil
}
