package http

import (
	"net/http"
	"strconv"
	"strings"

	"lytefood/internal/core/application/usecases/commands"
	"lytefood/internal/core/application/usecases/queries"
	"lytefood/internal/core/domain/model/order"

	"github.com/labstack/echo/v4"
)

func orderIDParam(ctx echo.Context) (int64, bool) {
	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

type createOrderRequest struct {
	Items []struct {
		MenuID   int64 `json:"menu_id"`
		Quantity int   `json:"quantity"`
	} `json:"items"`
	DeliveryAddress string `json:"delivery_address"`
	Status          string `json:"status"`
}

// CreateOrder handles POST /api/v1/orders. The optional status field lets a
// caller start the order elsewhere than en_attente; the response carries the
// stored order with its computed totals.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var req createOrderRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	items := make([]commands.OrderItemInput, 0, len(req.Items))
	for _, item := range req.Items {
		items = append(items, commands.OrderItemInput{
			MenuID:   item.MenuID,
			Quantity: item.Quantity,
		})
	}

	initialStatus := order.EnAttente
	if req.Status != "" {
		parsed, err := order.ParseStatus(req.Status)
		if err != nil {
			return writeError(ctx, err)
		}
		initialStatus = parsed
	}

	account := currentUser(ctx)
	cmd, err := commands.NewCreateOrderCommand(
		account.ID(), account.Email(), items, req.DeliveryAddress, initialStatus)
	if err != nil {
		return writeError(ctx, err)
	}

	id, err := s.handlers.CreateOrder.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	query, err := queries.NewGetOrderQuery(id)
	if err != nil {
		return writeError(ctx, err)
	}

	response, err := s.handlers.GetOrder.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, response)
}

// GetMyOrders handles GET /api/v1/orders/my.
func (s *Server) GetMyOrders(ctx echo.Context) error {
	account := currentUser(ctx)
	query, err := queries.NewGetMyOrdersQuery(account.ID())
	if err != nil {
		return writeError(ctx, err)
	}

	orders, err := s.handlers.GetMyOrders.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, orders)
}

// GetOrder handles GET /api/v1/orders/:id. Customers see only their own
// orders; the assigned livreur and admins see any.
func (s *Server) GetOrder(ctx echo.Context) error {
	id, ok := orderIDParam(ctx)
	if !ok {
		return badRequest(ctx, "invalid order id")
	}

	query, err := queries.NewGetOrderQuery(id)
	if err != nil {
		return writeError(ctx, err)
	}

	response, err := s.handlers.GetOrder.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	account := currentUser(ctx)
	isOwner := response.CustomerID == account.ID()
	isAssigned := response.LivreurID != nil && *response.LivreurID == account.ID()
	if !isOwner && !isAssigned && !account.IsAdmin() {
		return ctx.JSON(http.StatusForbidden, ErrorResponse{
			Code:    http.StatusForbidden,
			Message: "not your order",
		})
	}

	return ctx.JSON(http.StatusOK, response)
}

// CancelOrder handles POST /api/v1/orders/:id/cancel.
func (s *Server) CancelOrder(ctx echo.Context) error {
	id, ok := orderIDParam(ctx)
	if !ok {
		return badRequest(ctx, "invalid order id")
	}

	account := currentUser(ctx)
	cmd, err := commands.NewCancelOrderCommand(id, account.ID(), account.Email(), account.IsAdmin())
	if err != nil {
		return writeError(ctx, err)
	}

	if err := s.handlers.CancelOrder.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, messageResponse{Message: "order cancelled"})
}

// ListOrders handles GET /api/v1/orders for admins. An optional "status"
// query parameter holds a comma-separated status filter.
func (s *Server) ListOrders(ctx echo.Context) error {
	var statuses []order.Status
	if raw := ctx.QueryParam("status"); raw != "" {
		for _, value := range strings.Split(raw, ",") {
			statuses = append(statuses, order.Status(strings.TrimSpace(value)))
		}
	}

	query, err := queries.NewGetOrdersQuery(statuses...)
	if err != nil {
		return writeError(ctx, err)
	}

	orders, err := s.handlers.GetOrders.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, orders)
}

// GetAvailableOrders handles GET /api/v1/orders/available for admins: the
// unassigned orders still early enough to hand to a livreur.
func (s *Server) GetAvailableOrders(ctx echo.Context) error {
	query := queries.NewGetAvailableOrdersQuery()

	orders, err := s.handlers.GetAvailableOrders.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, orders)
}

type changeStatusRequest struct {
	Status string `json:"status"`
}

// ChangeOrderStatus handles PUT /api/v1/orders/:id/status for admins.
func (s *Server) ChangeOrderStatus(ctx echo.Context) error {
	id, ok := orderIDParam(ctx)
	if !ok {
		return badRequest(ctx, "invalid order id")
	}

	var req changeStatusRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	account := currentUser(ctx)
	cmd, err := commands.NewChangeOrderStatusCommand(id, order.Status(req.Status), account.Email())
	if err != nil {
		return writeError(ctx, err)
	}

	if err := s.handlers.ChangeOrderStatus.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, messageResponse{Message: "status updated"})
}

// AdvanceOrder handles POST /api/v1/orders/:id/advance for admins.
func (s *Server) AdvanceOrder(ctx echo.Context) error {
	id, ok := orderIDParam(ctx)
	if !ok {
		return badRequest(ctx, "invalid order id")
	}

	cmd, err := commands.NewAdvanceOrderCommand(id)
	if err != nil {
		return writeError(ctx, err)
	}

	if err := s.handlers.AdvanceOrder.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, messageResponse{Message: "order advanced"})
}

type assignLivreurRequest struct {
	LivreurID int64 `json:"livreur_id"`
}

// AssignLivreur handles PUT /api/v1/orders/:id/assign for admins.
func (s *Server) AssignLivreur(ctx echo.Context) error {
	id, ok := orderIDParam(ctx)
	if !ok {
		return badRequest(ctx, "invalid order id")
	}

	var req assignLivreurRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	cmd, err := commands.NewAssignLivreurCommand(id, req.LivreurID)
	if err != nil {
		return writeError(ctx, err)
	}

	if err := s.handlers.AssignLivreur.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, messageResponse{Message: "livreur assigned"})
}

// RefundOrder handles POST /api/v1/orders/:id/refund for admins.
func (s *Server) RefundOrder(ctx echo.Context) error {
	id, ok := orderIDParam(ctx)
	if !ok {
		return badRequest(ctx, "invalid order id")
	}

	account := currentUser(ctx)
	cmd, err := commands.NewRefundOrderCommand(id, account.Email())
	if err != nil {
		return writeError(ctx, err)
	}

	if err := s.handlers.RefundOrder.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, messageResponse{Message: "order refunded"})
}
