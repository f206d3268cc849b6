package commands

import (
	"context"
)

// SetUserRoleCommandHandler handles privilege flag changes by super-admins.
type SetUserRoleCommandHandler struct {
	uowFactory UserUoWFactory
}

// NewSetUserRoleCommandHandler creates a handler for privilege changes.
func NewSetUserRoleCommandHandler(uowFactory UserUoWFactory) SetUserRoleCommandHandler {
	return SetUserRoleCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle toggles the flag on the target account and persists it.
func (h *SetUserRoleCommandHandler) Handle(ctx context.Context, cmd SetUserRoleCommand) error {
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

	switch cmd.Flag() {
	case FlagAdmin:
		aggregate.SetAdmin(cmd.Value())
	case FlagLivreur:
		aggregate.SetLivreur(cmd.Value())
	case FlagSuperAdmin:
		if err = aggregate.SetSuperAdmin(cmd.Value(), cmd.ActorID()); err != nil {
			return err
		}
	case FlagActive:
		if err = aggregate.SetActive(cmd.Value(), cmd.ActorID()); err != nil {
			return err
		}
	}

	if err = userRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
