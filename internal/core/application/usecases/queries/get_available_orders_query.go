package queries

import (
	"errors"

	"lytefood/internal/pkg/guard"
)

var (
	ErrGetAvailableOrdersQueryIsNotConstructed = errors.New(
		"GetAvailableOrdersQuery must be created via NewGetAvailableOrdersQuery constructor",
	)
)

// GetAvailableOrdersQuery retrieves the orders still open for assignment:
// early-stage and without a livreur.
type GetAvailableOrdersQuery struct {
	guard guard.ConstructorGuard
}

// NewGetAvailableOrdersQuery creates a parameterless assignment-candidates
// query.
func NewGetAvailableOrdersQuery() GetAvailableOrdersQuery {
	return GetAvailableOrdersQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetAvailableOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetAvailableOrdersQueryIsNotConstructed)
}
