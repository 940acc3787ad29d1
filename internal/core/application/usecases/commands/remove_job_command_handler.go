package commands

import (
	"context"
)

// RemoveJobCommandHandler deletes postings.
type RemoveJobCommandHandler struct {
	uowFactory JobUoWFactory
}

// NewRemoveJobCommandHandler creates a handler for posting deletions.
func NewRemoveJobCommandHandler(uowFactory JobUoWFactory) RemoveJobCommandHandler {
	return RemoveJobCommandHandler{uowFactory: uowFactory}
}

// Handle processes the command. Fails with errs.ErrObjectNotFound when the id
// matches no posting.
func (h *RemoveJobCommandHandler) Handle(ctx context.Context, cmd RemoveJobCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err := uow.JobRepository().Remove(ctx, cmd.ID()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
