package queries

import (
	"context"

	"lytefood/internal/core/domain/model/order"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// GetDashboardStatsQueryHandler computes the admin dashboard aggregates.
type GetDashboardStatsQueryHandler struct {
	db *gorm.DB
}

// NewGetDashboardStatsQueryHandler creates a handler for dashboard stats.
func NewGetDashboardStatsQueryHandler(db *gorm.DB) GetDashboardStatsQueryHandler {
	return GetDashboardStatsQueryHandler{db: db}
}

// Handle returns per-status order counts, totals, and delivered revenue.
func (h GetDashboardStatsQueryHandler) Handle(
	ctx context.Context,
	query GetDashboardStatsQuery,
) (GetDashboardStatsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetDashboardStatsQueryResponse{}, err
	}

	var statusRows []struct {
		Status string
		Count  int64
	}
	err := h.db.WithContext(ctx).Raw(`
		SELECT status, COUNT(*) AS count
		FROM orders
		GROUP BY status
	`).Scan(&statusRows).Error
	if err != nil {
		return GetDashboardStatsQueryResponse{}, err
	}

	response := GetDashboardStatsQueryResponse{
		OrdersByStatus: make(map[string]int64, len(statusRows)),
		Revenue:        decimal.Zero,
	}
	for _, row := range statusRows {
		response.OrdersByStatus[row.Status] = row.Count
		response.TotalOrders += row.Count
	}

	err = h.db.WithContext(ctx).Raw(`
		SELECT COALESCE(SUM(total), 0)
		FROM orders
		WHERE status = ?
	`, order.Livre.String()).Scan(&response.Revenue).Error
	if err != nil {
		return GetDashboardStatsQueryResponse{}, err
	}

	err = h.db.WithContext(ctx).Raw(`SELECT COUNT(*) FROM users`).
		Scan(&response.TotalUsers).Error
	if err != nil {
		return GetDashboardStatsQueryResponse{}, err
	}

	return response, nil
}
