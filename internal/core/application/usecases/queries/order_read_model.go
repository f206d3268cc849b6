// Package queries contains read-only operations against the database.
// Query handlers bypass the aggregates and read projections directly,
// following the CQRS split: commands go through the domain, queries do not.
package queries

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// OrderItemResponse is one order line as returned to clients.
type OrderItemResponse struct {
	MenuID    int64           `json:"menu_id"`
	MenuName  string          `json:"menu_name"`
	Quantity  int             `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unit_price"`
}

// HistoryEntryResponse is one audit record of a status transition.
type HistoryEntryResponse struct {
	Previous   string    `json:"ancien_statut"`
	Next       string    `json:"nouveau_statut"`
	Actor      string    `json:"modifie_par"`
	Role       string    `json:"role"`
	OccurredAt time.Time `json:"timestamp"`
}

// UserSummaryResponse identifies a user nested inside an order view.
type UserSummaryResponse struct {
	ID        int64  `json:"id"`
	Email     string `json:"email"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

// OrderResponse is the client view of an order. History is populated only by
// the single-order query; list queries leave it empty.
type OrderResponse struct {
	ID              int64                  `json:"id"`
	CustomerID      int64                  `json:"user_id"`
	LivreurID       *int64                 `json:"assigned_livreur_id,omitempty"`
	Customer        *UserSummaryResponse   `json:"user,omitempty"`
	Livreur         *UserSummaryResponse   `json:"livreur,omitempty"`
	Status          string                 `json:"status"`
	TVAAmount       decimal.Decimal        `json:"tva_amount"`
	Total           decimal.Decimal        `json:"total"`
	DeliveryAddress string                 `json:"delivery_address"`
	CreatedAt       time.Time              `json:"created_at"`
	UpdatedAt       time.Time              `json:"updated_at"`
	UpdatedBy       string                 `json:"updated_by"`
	Items           []OrderItemResponse    `json:"items"`
	History         []HistoryEntryResponse `json:"history,omitempty"`
}

type orderRow struct {
	ID              int64
	CustomerID      int64 `gorm:"column:user_id"`
	LivreurID       *int64
	Status          string
	TVAAmount       decimal.Decimal `gorm:"column:tva_amount"`
	Total           decimal.Decimal
	DeliveryAddress string
	CreatedAt       time.Time
	UpdatedAt       time.Time
	UpdatedBy       string
}

type orderItemRow struct {
	OrderID   int64
	MenuID    int64
	MenuName  string
	Quantity  int
	UnitPrice decimal.Decimal
}

type userSummaryRow struct {
	ID        int64
	Email     string
	FirstName string
	LastName  string
}

type historyRow struct {
	OrderID    int64
	Previous   string
	Next       string
	Actor      string
	Role       string
	OccurredAt time.Time
}

// loadOrders runs the given order query and attaches line items plus the
// customer and livreur summaries to each returned order, newest order first.
// Everything a client renders comes back in one response.
func loadOrders(ctx context.Context, db *gorm.DB, where string, args ...any) ([]OrderResponse, error) {
	var rows []orderRow
	query := `
		SELECT id, user_id, livreur_id, status, tva_amount, total,
		       delivery_address, created_at, updated_at, updated_by
		FROM orders ` + where + `
		ORDER BY created_at DESC, id DESC
	`
	if err := db.WithContext(ctx).Raw(query, args...).Scan(&rows).Error; err != nil {
		return nil, err
	}

	orders := make([]OrderResponse, 0, len(rows))
	ids := make([]int64, 0, len(rows))
	for _, row := range rows {
		orders = append(orders, OrderResponse{
			ID:              row.ID,
			CustomerID:      row.CustomerID,
			LivreurID:       row.LivreurID,
			Status:          row.Status,
			TVAAmount:       row.TVAAmount,
			Total:           row.Total,
			DeliveryAddress: row.DeliveryAddress,
			CreatedAt:       row.CreatedAt,
			UpdatedAt:       row.UpdatedAt,
			UpdatedBy:       row.UpdatedBy,
			Items:           []OrderItemResponse{},
		})
		ids = append(ids, row.ID)
	}

	if len(ids) == 0 {
		return orders, nil
	}

	var itemRows []orderItemRow
	err := db.WithContext(ctx).Raw(`
		SELECT oi.order_id, oi.menu_id, m.name AS menu_name, oi.quantity, oi.unit_price
		FROM order_items oi
		JOIN menus m ON m.id = oi.menu_id
		WHERE oi.order_id IN ?
		ORDER BY oi.id
	`, ids).Scan(&itemRows).Error
	if err != nil {
		return nil, err
	}

	byID := make(map[int64]int, len(orders))
	for i, o := range orders {
		byID[o.ID] = i
	}
	for _, item := range itemRows {
		i := byID[item.OrderID]
		orders[i].Items = append(orders[i].Items, OrderItemResponse{
			MenuID:    item.MenuID,
			MenuName:  item.MenuName,
			Quantity:  item.Quantity,
			UnitPrice: item.UnitPrice,
		})
	}

	if err := attachUserSummaries(ctx, db, orders); err != nil {
		return nil, err
	}

	return orders, nil
}

// attachUserSummaries resolves the customer and livreur of each order in one
// query over the users table.
func attachUserSummaries(ctx context.Context, db *gorm.DB, orders []OrderResponse) error {
	idSet := make(map[int64]struct{}, len(orders))
	for _, o := range orders {
		idSet[o.CustomerID] = struct{}{}
		if o.LivreurID != nil {
			idSet[*o.LivreurID] = struct{}{}
		}
	}
	if len(idSet) == 0 {
		return nil
	}

	ids := make([]int64, 0, len(idSet))
	for id := range idSet {
		ids = append(ids, id)
	}

	var rows []userSummaryRow
	err := db.WithContext(ctx).Raw(`
		SELECT id, email, first_name, last_name
		FROM users
		WHERE id IN ?
	`, ids).Scan(&rows).Error
	if err != nil {
		return err
	}

	summaries := make(map[int64]UserSummaryResponse, len(rows))
	for _, row := range rows {
		summaries[row.ID] = UserSummaryResponse{
			ID:        row.ID,
			Email:     row.Email,
			FirstName: row.FirstName,
			LastName:  row.LastName,
		}
	}

	for i := range orders {
		if summary, ok := summaries[orders[i].CustomerID]; ok {
			customer := summary
			orders[i].Customer = &customer
		}
		if orders[i].LivreurID == nil {
			continue
		}
		if summary, ok := summaries[*orders[i].LivreurID]; ok {
			livreur := summary
			orders[i].Livreur = &livreur
		}
	}

	return nil
}

// loadHistory fetches the audit trail of one order, oldest entry first.
func loadHistory(ctx context.Context, db *gorm.DB, orderID int64) ([]HistoryEntryResponse, error) {
	var rows []historyRow
	err := db.WithContext(ctx).Raw(`
		SELECT order_id, previous_status AS previous, new_status AS next,
		       actor, role, occurred_at
		FROM order_history
		WHERE order_id = ?
		ORDER BY id
	`, orderID).Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	history := make([]HistoryEntryResponse, 0, len(rows))
	for _, row := range rows {
		history = append(history, HistoryEntryResponse{
			Previous:   row.Previous,
			Next:       row.Next,
			Actor:      row.Actor,
			Role:       row.Role,
			OccurredAt: row.OccurredAt,
		})
	}

	return history, nil
}
