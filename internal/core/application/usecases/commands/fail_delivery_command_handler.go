package commands

import (
	"context"
)

// FailDeliveryCommandHandler handles failed delivery reports. The order lands
// in annulée; the livreur attribution on the history entry keeps failed
// deliveries distinguishable from other cancellations.
type FailDeliveryCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewFailDeliveryCommandHandler creates a handler for failed delivery reports.
func NewFailDeliveryCommandHandler(uowFactory OrderUoWFactory) FailDeliveryCommandHandler {
	return FailDeliveryCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle records the failed delivery and persists the change.
func (h *FailDeliveryCommandHandler) Handle(ctx context.Context, cmd FailDeliveryCommand) error {
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

	if err = aggregate.MarkFailedDelivery(cmd.LivreurID(), cmd.LivreurEmail()); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
