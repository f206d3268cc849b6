package http

import (
	"net/http"

	"lytefood/internal/core/application/usecases/commands"
	"lytefood/internal/core/application/usecases/queries"

	"github.com/labstack/echo/v4"
)

// GetLivreurOrders handles GET /api/v1/livreur/orders. The "scope" query
// parameter selects active deliveries ("current", the default) or finished
// ones ("history").
func (s *Server) GetLivreurOrders(ctx echo.Context) error {
	scope := queries.LivreurOrdersScope(ctx.QueryParam("scope"))
	if scope == "" {
		scope = queries.ScopeCurrent
	}

	account := currentUser(ctx)
	query, err := queries.NewGetLivreurOrdersQuery(account.ID(), scope)
	if err != nil {
		return writeError(ctx, err)
	}

	orders, err := s.handlers.GetLivreurOrders.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, orders)
}

// GetPickupOrders handles GET /api/v1/livreur/orders/available: the ready
// orders the caller may take in charge.
func (s *Server) GetPickupOrders(ctx echo.Context) error {
	account := currentUser(ctx)
	query, err := queries.NewGetPickupOrdersQuery(account.ID())
	if err != nil {
		return writeError(ctx, err)
	}

	orders, err := s.handlers.GetPickupOrders.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, orders)
}

// TakeOrder handles POST /api/v1/livreur/orders/:id/take.
func (s *Server) TakeOrder(ctx echo.Context) error {
	id, ok := orderIDParam(ctx)
	if !ok {
		return badRequest(ctx, "invalid order id")
	}

	account := currentUser(ctx)
	cmd, err := commands.NewTakeOrderCommand(id, account.ID(), account.Email())
	if err != nil {
		return writeError(ctx, err)
	}

	if err := s.handlers.TakeOrder.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, messageResponse{Message: "order taken"})
}

// DeliverOrder handles POST /api/v1/livreur/orders/:id/deliver.
func (s *Server) DeliverOrder(ctx echo.Context) error {
	id, ok := orderIDParam(ctx)
	if !ok {
		return badRequest(ctx, "invalid order id")
	}

	account := currentUser(ctx)
	cmd, err := commands.NewDeliverOrderCommand(id, account.ID(), account.Email())
	if err != nil {
		return writeError(ctx, err)
	}

	if err := s.handlers.DeliverOrder.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, messageResponse{Message: "order delivered"})
}

// FailDelivery handles POST /api/v1/livreur/orders/:id/fail.
func (s *Server) FailDelivery(ctx echo.Context) error {
	id, ok := orderIDParam(ctx)
	if !ok {
		return badRequest(ctx, "invalid order id")
	}

	account := currentUser(ctx)
	cmd, err := commands.NewFailDeliveryCommand(id, account.ID(), account.Email())
	if err != nil {
		return writeError(ctx, err)
	}

	if err := s.handlers.FailDelivery.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, messageResponse{Message: "delivery marked failed"})
}
