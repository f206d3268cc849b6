package queries

import (
	"context"

	"lytefood/internal/core/domain/model/order"

	"gorm.io/gorm"
)

// GetPickupOrdersQueryHandler retrieves a livreur's pickup list.
type GetPickupOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetPickupOrdersQueryHandler creates a handler for pickup lists.
func NewGetPickupOrdersQueryHandler(db *gorm.DB) GetPickupOrdersQueryHandler {
	return GetPickupOrdersQueryHandler{db: db}
}

// Handle returns ready orders the livreur may take, newest first.
func (h GetPickupOrdersQueryHandler) Handle(ctx context.Context, query GetPickupOrdersQuery) ([]OrderResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	return loadOrders(ctx, h.db,
		"WHERE status = ? AND (livreur_id IS NULL OR livreur_id = ?)",
		order.Pret.String(), query.LivreurID())
}
