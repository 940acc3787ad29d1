package commands

import (
	"context"

	"jobboard/internal/core/domain/model/company"
)

// CreateCompanyCommandHandler persists new company profiles.
type CreateCompanyCommandHandler struct {
	uowFactory CompanyUoWFactory
}

// NewCreateCompanyCommandHandler creates a handler for company registration.
func NewCreateCompanyCommandHandler(uowFactory CompanyUoWFactory) CreateCompanyCommandHandler {
	return CreateCompanyCommandHandler{uowFactory: uowFactory}
}

// Handle processes the command and returns the created company.
// A handle collision fails with errs.ErrValueIsInvalid.
func (h *CreateCompanyCommandHandler) Handle(ctx context.Context, cmd CreateCompanyCommand) (*company.Company, error) {
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

	created, err := company.NewCompany(
		cmd.Handle(),
		cmd.Name(),
		cmd.Description(),
		cmd.NumEmployees(),
		cmd.LogoURL(),
	)
	if err != nil {
		return nil, err
	}

	if err = uow.CompanyRepository().Add(ctx, created); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return created, nil
}
