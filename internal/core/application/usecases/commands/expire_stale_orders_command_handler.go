package commands

import (
	"context"
	"errors"
	"time"

	"lytefood/internal/core/domain/model/order"
	"lytefood/internal/pkg/errs"
)

// ExpireStaleOrdersCommandHandler cancels orders whose payment never arrived.
type ExpireStaleOrdersCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewExpireStaleOrdersCommandHandler creates a handler for the expiry sweep.
func NewExpireStaleOrdersCommandHandler(uowFactory OrderUoWFactory) ExpireStaleOrdersCommandHandler {
	return ExpireStaleOrdersCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle expires every stale pending order and returns how many it cancelled.
// Concurrency conflicts are skipped: the order changed under the sweep, so it
// is no longer stale.
func (h *ExpireStaleOrdersCommandHandler) Handle(ctx context.Context, cmd ExpireStaleOrdersCommand) (int, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	cutoff := time.Now().UTC().Add(-cmd.MaxAge())

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return 0, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	stale, err := orderRepo.GetStalePending(ctx, cutoff)
	if err != nil {
		return 0, err
	}

	expired := 0
	for _, aggregate := range stale {
		if err = aggregate.ChangeStatus(order.Annulee, order.ActorSystem, order.RoleAuto); err != nil {
			return expired, err
		}
		if err = orderRepo.Update(ctx, aggregate); err != nil {
			if errors.Is(err, errs.ErrConcurrencyConflict) {
				continue
			}
			return expired, err
		}
		expired++
	}

	if err = uow.Commit(ctx); err != nil {
		return expired, err
	}

	return expired, nil
}
