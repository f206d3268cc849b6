package commands

import (
	"context"
	"fmt"

	"lytefood/internal/pkg/errs"
)

// AssignLivreurCommandHandler handles administrative livreur assignment.
// The target user must exist, hold the livreur role, and be active; the
// aggregate then binds the livreur and forces the order to payé.
type AssignLivreurCommandHandler struct {
	uowFactory OrderUserUoWFactory
}

// NewAssignLivreurCommandHandler creates a handler for livreur assignment.
func NewAssignLivreurCommandHandler(uowFactory OrderUserUoWFactory) AssignLivreurCommandHandler {
	return AssignLivreurCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle verifies the livreur, applies the assignment, and persists it.
func (h *AssignLivreurCommandHandler) Handle(ctx context.Context, cmd AssignLivreurCommand) error {
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

	livreur, err := uow.UserRepository().Get(ctx, cmd.LivreurID())
	if err != nil {
		return err
	}
	if !livreur.IsLivreur() {
		return errs.NewValueIsInvalidErrorWithCause("livreurId",
			fmt.Errorf("user %d does not hold the livreur role", cmd.LivreurID()))
	}
	if !livreur.IsActive() {
		return errs.NewValueIsInvalidErrorWithCause("livreurId",
			fmt.Errorf("user %d is deactivated", cmd.LivreurID()))
	}

	orderRepo := uow.OrderRepository()
	aggregate, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if err = aggregate.AssignLivreur(cmd.LivreurID()); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
