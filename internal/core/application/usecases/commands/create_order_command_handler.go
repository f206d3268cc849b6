package commands

import (
	"context"

	"lytefood/internal/core/domain/model/order"
	"lytefood/internal/pkg/errs"
)

// CreateOrderCommandHandler handles order placement. Prices come from the
// catalog inside the same transaction so a concurrent price change cannot
// split an order between old and new prices.
type CreateOrderCommandHandler struct {
	uowFactory OrderMenuUoWFactory
}

// NewCreateOrderCommandHandler creates a handler for order placement.
func NewCreateOrderCommandHandler(uowFactory OrderMenuUoWFactory) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle places the order in the command's initial status and returns its
// new id. Unknown catalog items surface as errs.ErrObjectNotFound.
func (h *CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) (int64, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return 0, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	menuIDs := make([]int64, 0, len(cmd.Items()))
	for _, item := range cmd.Items() {
		menuIDs = append(menuIDs, item.MenuID)
	}

	menus, err := uow.MenuRepository().GetMany(ctx, menuIDs)
	if err != nil {
		return 0, err
	}

	lineItems := make([]order.LineItem, 0, len(cmd.Items()))
	for _, item := range cmd.Items() {
		var priced bool
		for _, m := range menus {
			if m.ID() != item.MenuID {
				continue
			}
			lineItem, itemErr := order.NewLineItem(item.MenuID, item.Quantity, m.Price())
			if itemErr != nil {
				return 0, itemErr
			}
			lineItems = append(lineItems, lineItem)
			priced = true
			break
		}
		if !priced {
			return 0, errs.NewObjectNotFoundError("menuId", item.MenuID)
		}
	}

	aggregate, err := order.NewOrder(
		cmd.CustomerID(), lineItems, cmd.DeliveryAddress(),
		cmd.InitialStatus(), cmd.CustomerEmail(),
	)
	if err != nil {
		return 0, err
	}

	if err = uow.OrderRepository().Add(ctx, aggregate); err != nil {
		return 0, err
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	return aggregate.ID(), nil
}
