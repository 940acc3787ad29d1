package commands

import (
	"context"

	"jobboard/internal/core/domain/model/company"
)

// EditCompanyCommandHandler applies partial updates to company profiles.
type EditCompanyCommandHandler struct {
	uowFactory CompanyUoWFactory
}

// NewEditCompanyCommandHandler creates a handler for company updates.
func NewEditCompanyCommandHandler(uowFactory CompanyUoWFactory) EditCompanyCommandHandler {
	return EditCompanyCommandHandler{uowFactory: uowFactory}
}

// Handle processes the command and returns the updated company.
func (h *EditCompanyCommandHandler) Handle(ctx context.Context, cmd EditCompanyCommand) (*company.Company, error) {
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

	updated, err := uow.CompanyRepository().Update(ctx, cmd.Handle(), cmd.Fields())
	if err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return updated, nil
}
