package commands

import (
	"context"

	"lytefood/internal/core/ports"
)

// UpdateProfileCommandHandler handles self-service profile updates.
type UpdateProfileCommandHandler struct {
	uowFactory UserUoWFactory
	hasher     ports.CredentialHasher
}

// NewUpdateProfileCommandHandler creates a handler for profile updates.
func NewUpdateProfileCommandHandler(uowFactory UserUoWFactory, hasher ports.CredentialHasher) UpdateProfileCommandHandler {
	return UpdateProfileCommandHandler{
		uowFactory: uowFactory,
		hasher:     hasher,
	}
}

// Handle applies the patch and, when present, rehashes the new password.
func (h *UpdateProfileCommandHandler) Handle(ctx context.Context, cmd UpdateProfileCommand) error {
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

	userRepo := uow.UserRepository()
	aggregate, err := userRepo.Get(ctx, cmd.UserID())
	if err != nil {
		return err
	}

	aggregate.ApplyProfilePatch(cmd.Patch())

	if cmd.Password() != nil {
		hashed, hashErr := h.hasher.Hash(*cmd.Password())
		if hashErr != nil {
			return hashErr
		}
		if err = aggregate.SetHashedPassword(hashed); err != nil {
			return err
		}
	}

	if err = userRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
