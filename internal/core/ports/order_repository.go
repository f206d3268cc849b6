package ports

import (
	"context"
	"time"

	"lytefood/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
type OrderRepository interface {
	// Add persists a new order with its line items and pending history,
	// binding the database-generated id to the aggregate.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order together with any pending
	// history entries. The write is conditional on the aggregate's version;
	// a concurrent modification surfaces as errs.ErrConcurrencyConflict.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate by its identifier.
	Get(ctx context.Context, id int64) (*order.Order, error)

	// GetStalePending retrieves orders still en_attente that were created
	// before the cutoff. Used by the expiry job.
	GetStalePending(ctx context.Context, cutoff time.Time) ([]*order.Order, error)
}
