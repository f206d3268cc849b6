package queries

import (
	"context"

	"lytefood/internal/core/domain/model/order"

	"gorm.io/gorm"
)

// GetAvailableOrdersQueryHandler retrieves the admin assignment view: the
// orders that have no livreur yet and have not moved past preparation.
type GetAvailableOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetAvailableOrdersQueryHandler creates a handler for assignment
// candidates.
func NewGetAvailableOrdersQueryHandler(db *gorm.DB) GetAvailableOrdersQueryHandler {
	return GetAvailableOrdersQueryHandler{db: db}
}

// Handle returns unassigned early-stage orders, newest first.
func (h GetAvailableOrdersQueryHandler) Handle(ctx context.Context, query GetAvailableOrdersQuery) ([]OrderResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	return loadOrders(ctx, h.db,
		"WHERE livreur_id IS NULL AND status IN ?",
		[]string{
			order.EnAttente.String(),
			order.Paye.String(),
			order.EnPreparation.String(),
		})
}
