package queries

import (
	"errors"

	"lytefood/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var (
	ErrGetDashboardStatsQueryIsNotConstructed = errors.New(
		"GetDashboardStatsQuery must be created via NewGetDashboardStatsQuery constructor",
	)
)

// GetDashboardStatsQuery retrieves the admin dashboard aggregates.
type GetDashboardStatsQuery struct {
	guard guard.ConstructorGuard
}

// NewGetDashboardStatsQuery creates a parameterless dashboard query.
func NewGetDashboardStatsQuery() GetDashboardStatsQuery {
	return GetDashboardStatsQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetDashboardStatsQuery) Validate() error {
	return q.guard.Validate(ErrGetDashboardStatsQueryIsNotConstructed)
}

// GetDashboardStatsQueryResponse aggregates order counts and revenue.
// Revenue counts delivered orders only; money returned through refunds never
// entered it in the first place.
type GetDashboardStatsQueryResponse struct {
	OrdersByStatus map[string]int64 `json:"orders_by_status"`
	TotalOrders    int64            `json:"total_orders"`
	TotalUsers     int64            `json:"total_users"`
	Revenue        decimal.Decimal  `json:"revenue"`
}
