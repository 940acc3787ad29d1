package commands

import (
	"context"

	"jobboard/internal/core/domain/model/user"

	"golang.org/x/crypto/bcrypt"
)

// RegisterUserCommandHandler creates accounts with bcrypt-hashed credentials.
type RegisterUserCommandHandler struct {
	uowFactory UserUoWFactory
	bcryptCost int
}

// NewRegisterUserCommandHandler creates a handler for account registration.
// A cost of zero selects bcrypt.DefaultCost.
func NewRegisterUserCommandHandler(uowFactory UserUoWFactory, bcryptCost int) RegisterUserCommandHandler {
	if bcryptCost == 0 {
		bcryptCost = bcrypt.DefaultCost
	}

	return RegisterUserCommandHandler{uowFactory: uowFactory, bcryptCost: bcryptCost}
}

// Handle processes the command and returns the created account.
// A username collision fails with errs.ErrValueIsInvalid.
func (h *RegisterUserCommandHandler) Handle(ctx context.Context, cmd RegisterUserCommand) (*user.User, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(cmd.Password()), h.bcryptCost)
	if err != nil {
		return nil, err
	}

	account, err := user.NewUser(cmd.Username(), string(hash), false)
	if err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.UserRepository().Add(ctx, account); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return account, nil
}
