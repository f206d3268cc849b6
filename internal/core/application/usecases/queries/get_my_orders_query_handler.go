package queries

import (
	"context"

	"gorm.io/gorm"
)

// GetMyOrdersQueryHandler retrieves the calling customer's orders.
type GetMyOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetMyOrdersQueryHandler creates a handler for customer order lists.
func NewGetMyOrdersQueryHandler(db *gorm.DB) GetMyOrdersQueryHandler {
	return GetMyOrdersQueryHandler{db: db}
}

// Handle returns the customer's orders with line items, newest first.
func (h GetMyOrdersQueryHandler) Handle(ctx context.Context, query GetMyOrdersQuery) ([]OrderResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	return loadOrders(ctx, h.db, "WHERE user_id = ?", query.CustomerID())
}
