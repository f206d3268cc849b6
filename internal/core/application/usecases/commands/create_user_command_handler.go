package commands

import (
	"context"

	"lytefood/internal/core/domain/model/user"
	"lytefood/internal/core/ports"
)

// CreateUserCommandHandler handles administrative account creation.
type CreateUserCommandHandler struct {
	uowFactory UserUoWFactory
	hasher     ports.CredentialHasher
}

// NewCreateUserCommandHandler creates a handler for administrative account creation.
func NewCreateUserCommandHandler(uowFactory UserUoWFactory, hasher ports.CredentialHasher) CreateUserCommandHandler {
	return CreateUserCommandHandler{
		uowFactory: uowFactory,
		hasher:     hasher,
	}
}

// Handle creates the account with its role flags and returns its new id.
func (h *CreateUserCommandHandler) Handle(ctx context.Context, cmd CreateUserCommand) (int64, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	hashed, err := h.hasher.Hash(cmd.Password())
	if err != nil {
		return 0, err
	}

	aggregate, err := user.NewUserWithRoles(cmd.Email(), hashed, cmd.Profile(), cmd.Roles())
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
