package commands

import (
	"context"

	"lytefood/internal/core/domain/model/user"
	"lytefood/internal/core/ports"
)

// RegisterUserCommandHandler handles self-service registration. New accounts
// start active with no privileges. Duplicate emails surface as a state
// conflict from the repository's unique constraint.
type RegisterUserCommandHandler struct {
	uowFactory UserUoWFactory
	hasher     ports.CredentialHasher
}

// NewRegisterUserCommandHandler creates a handler for registrations.
func NewRegisterUserCommandHandler(uowFactory UserUoWFactory, hasher ports.CredentialHasher) RegisterUserCommandHandler {
	return RegisterUserCommandHandler{
		uowFactory: uowFactory,
		hasher:     hasher,
	}
}

// Handle hashes the password, creates the account, and returns its new id.
func (h *RegisterUserCommandHandler) Handle(ctx context.Context, cmd RegisterUserCommand) (int64, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	hashed, err := h.hasher.Hash(cmd.Password())
	if err != nil {
		return 0, err
	}

	aggregate, err := user.NewUser(cmd.Email(), hashed, cmd.Profile())
	if err != nil {
		return 0, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return 0, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.UserRepository().Add(ctx, aggregate); err != nil {
		return 0, err
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	return aggregate.ID(), nil
}
