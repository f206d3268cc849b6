package commands

import (
	"context"
)

// TakeOrderCommandHandler handles the livreur pickup. The optimistic version
// check on the order row makes the pickup a first-wins race: the second
// livreur's commit fails with a concurrency conflict even if both loaded the
// order while it was still unassigned.
type TakeOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewTakeOrderCommandHandler creates a handler for livreur pickups.
func NewTakeOrderCommandHandler(uowFactory OrderUoWFactory) TakeOrderCommandHandler {
	return TakeOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle assigns the caller to the order and moves it to en_chemin.
func (h *TakeOrderCommandHandler) Handle(ctx context.Context, cmd TakeOrderCommand) error {
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

	orderRepo := uow.OrderRepository()
	aggregate, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if err = aggregate.Take(cmd.LivreurID(), cmd.LivreurEmail()); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
