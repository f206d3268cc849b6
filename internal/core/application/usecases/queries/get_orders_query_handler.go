package queries

import (
	"context"

	"gorm.io/gorm"
)

// GetOrdersQueryHandler retrieves orders for admins, optionally by status.
type GetOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetOrdersQueryHandler creates a handler for the administrative list.
func NewGetOrdersQueryHandler(db *gorm.DB) GetOrdersQueryHandler {
	return GetOrdersQueryHandler{db: db}
}

// Handle returns the matching orders with line items, newest first.
func (h GetOrdersQueryHandler) Handle(ctx context.Context, query GetOrdersQuery) ([]OrderResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	if statuses := query.Statuses(); len(statuses) > 0 {
		values := make([]string, 0, len(statuses))
		for _, s := range statuses {
			values = append(values, s.String())
		}
		return loadOrders(ctx, h.db, "WHERE status IN ?", values)
	}

	return loadOrders(ctx, h.db, "")
}
