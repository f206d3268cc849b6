package queries

import (
	"errors"

	"lytefood/internal/pkg/errs"
	"lytefood/internal/pkg/guard"
)

var (
	ErrGetMyOrdersQueryIsNotConstructed = errors.New(
		"GetMyOrdersQuery must be created via NewGetMyOrdersQuery constructor",
	)
)

// GetMyOrdersQuery retrieves a customer's own orders, newest first.
type GetMyOrdersQuery struct {
	customerID int64

	guard guard.ConstructorGuard
}

// NewGetMyOrdersQuery creates a query for one customer's orders.
func NewGetMyOrdersQuery(customerID int64) (GetMyOrdersQuery, error) {
	if customerID <= 0 {
		return GetMyOrdersQuery{}, errs.NewValueIsInvalidError("customerId")
	}

	return GetMyOrdersQuery{
		customerID: customerID,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetMyOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetMyOrdersQueryIsNotConstructed)
}

// CustomerID returns the customer whose orders are requested.
func (q GetMyOrdersQuery) CustomerID() int64 {
	return q.customerID
}
