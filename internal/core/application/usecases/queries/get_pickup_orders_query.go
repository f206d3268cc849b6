package queries

import (
	"errors"

	"lytefood/internal/pkg/errs"
	"lytefood/internal/pkg/guard"
)

var (
	ErrGetPickupOrdersQueryIsNotConstructed = errors.New(
		"GetPickupOrdersQuery must be created via NewGetPickupOrdersQuery constructor",
	)
)

// GetPickupOrdersQuery retrieves the orders a livreur may take: prêt and
// either unassigned or already assigned to the caller.
type GetPickupOrdersQuery struct {
	livreurID int64

	guard guard.ConstructorGuard
}

// NewGetPickupOrdersQuery creates a query for a livreur's pickup list.
func NewGetPickupOrdersQuery(livreurID int64) (GetPickupOrdersQuery, error) {
	if livreurID <= 0 {
		return GetPickupOrdersQuery{}, errs.NewValueIsInvalidError("livreurId")
	}

	return GetPickupOrdersQuery{
		livreurID: livreurID,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetPickupOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetPickupOrdersQueryIsNotConstructed)
}

// LivreurID returns the calling livreur's user id.
func (q GetPickupOrdersQuery) LivreurID() int64 {
	return q.livreurID
}
