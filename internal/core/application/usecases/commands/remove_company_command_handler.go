package commands

import (
	"context"
)

// RemoveCompanyCommandHandler deletes company profiles.
type RemoveCompanyCommandHandler struct {
	uowFactory CompanyUoWFactory
}

// NewRemoveCompanyCommandHandler creates a handler for company deletions.
func NewRemoveCompanyCommandHandler(uowFactory CompanyUoWFactory) RemoveCompanyCommandHandler {
	return RemoveCompanyCommandHandler{uowFactory: uowFactory}
}

// Handle processes the command. Fails with errs.ErrObjectNotFound when the
// handle matches no company.
func (h *RemoveCompanyCommandHandler) Handle(ctx context.Context, cmd RemoveCompanyCommand) error {
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

	if err := uow.CompanyRepository().Remove(ctx, cmd.Handle()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
