package queries

import (
	"context"

	"lytefood/internal/core/domain/model/order"

	"gorm.io/gorm"
)

// GetLivreurOrdersQueryHandler retrieves a livreur's assigned orders.
type GetLivreurOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetLivreurOrdersQueryHandler creates a handler for livreur order lists.
func NewGetLivreurOrdersQueryHandler(db *gorm.DB) GetLivreurOrdersQueryHandler {
	return GetLivreurOrdersQueryHandler{db: db}
}

// Handle returns the livreur's active deliveries (payé through en_chemin) or
// their finished ones (livré, annulée), newest first.
func (h GetLivreurOrdersQueryHandler) Handle(ctx context.Context, query GetLivreurOrdersQuery) ([]OrderResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	var statuses []string
	switch query.Scope() {
	case ScopeCurrent:
		statuses = []string{
			order.Paye.String(), order.EnPreparation.String(),
			order.Pret.String(), order.EnChemin.String(),
		}
	case ScopeHistory:
		statuses = []string{order.Livre.String(), order.Annulee.String()}
	}

	return loadOrders(ctx, h.db,
		"WHERE livreur_id = ? AND status IN ?",
		query.LivreurID(), statuses)
}
