package queries

import (
	"errors"

	"lytefood/internal/pkg/errs"
	"lytefood/internal/pkg/guard"
)

var (
	ErrGetLivreurOrdersQueryIsNotConstructed = errors.New(
		"GetLivreurOrdersQuery must be created via NewGetLivreurOrdersQuery constructor",
	)
)

// LivreurOrdersScope selects between the livreur's active deliveries and
// their completed or failed ones.
type LivreurOrdersScope string

const (
	ScopeCurrent LivreurOrdersScope = "current"
	ScopeHistory LivreurOrdersScope = "history"
)

// GetLivreurOrdersQuery retrieves orders assigned to a livreur.
type GetLivreurOrdersQuery struct {
	livreurID int64
	scope     LivreurOrdersScope

	guard guard.ConstructorGuard
}

// NewGetLivreurOrdersQuery creates a query for a livreur's assigned orders.
func NewGetLivreurOrdersQuery(livreurID int64, scope LivreurOrdersScope) (GetLivreurOrdersQuery, error) {
	if livreurID <= 0 {
		return GetLivreurOrdersQuery{}, errs.NewValueIsInvalidError("livreurId")
	}
	if scope != ScopeCurrent && scope != ScopeHistory {
		return GetLivreurOrdersQuery{}, errs.NewValueIsInvalidError("scope")
	}

	return GetLivreurOrdersQuery{
		livreurID: livreurID,
		scope:     scope,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetLivreurOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetLivreurOrdersQueryIsNotConstructed)
}

// LivreurID returns the livreur's user id.
func (q GetLivreurOrdersQuery) LivreurID() int64 {
	return q.livreurID
}

// Scope returns whether active or completed deliveries are requested.
func (q GetLivreurOrdersQuery) Scope() LivreurOrdersScope {
	return q.scope
}
