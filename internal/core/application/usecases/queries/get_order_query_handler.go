package queries

import (
	"context"

	"lytefood/internal/pkg/errs"

	"gorm.io/gorm"
)

// GetOrderQueryHandler retrieves a single order with items and history.
type GetOrderQueryHandler struct {
	db *gorm.DB
}

// NewGetOrderQueryHandler creates a handler for single-order reads.
func NewGetOrderQueryHandler(db *gorm.DB) GetOrderQueryHandler {
	return GetOrderQueryHandler{db: db}
}

// Handle returns the order, or errs.ErrObjectNotFound when it does not exist.
func (h GetOrderQueryHandler) Handle(ctx context.Context, query GetOrderQuery) (OrderResponse, error) {
	if err := query.Validate(); err != nil {
		return OrderResponse{}, err
	}

	orders, err := loadOrders(ctx, h.db, "WHERE id = ?", query.OrderID())
	if err != nil {
		return OrderResponse{}, err
	}
	if len(orders) == 0 {
		return OrderResponse{}, errs.NewObjectNotFoundError("orderId", query.OrderID())
	}

	history, err := loadHistory(ctx, h.db, query.OrderID())
	if err != nil {
		return OrderResponse{}, err
	}

	result := orders[0]
	result.History = history
	return result, nil
}
