package queries

import (
	"errors"

	"lytefood/internal/core/domain/model/order"
	"lytefood/internal/pkg/guard"
)

var (
	ErrGetOrdersQueryIsNotConstructed = errors.New(
		"GetOrdersQuery must be created via NewGetOrdersQuery constructor",
	)
)

// GetOrdersQuery retrieves all orders for the back office, optionally
// filtered by status, newest first.
type GetOrdersQuery struct {
	statuses []order.Status

	guard guard.ConstructorGuard
}

// NewGetOrdersQuery creates a query for the administrative order list.
// With no statuses, every order is returned.
func NewGetOrdersQuery(statuses ...order.Status) (GetOrdersQuery, error) {
	for _, s := range statuses {
		if err := s.Validate(); err != nil {
			return GetOrdersQuery{}, err
		}
	}

	return GetOrdersQuery{
		statuses: statuses,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetOrdersQueryIsNotConstructed)
}

// Statuses returns the status filter, empty meaning all.
func (q GetOrdersQuery) Statuses() []order.Status {
	return q.statuses
}
