package orderrepo

import (
	"context"
	"errors"
	"time"

	"lytefood/internal/core/domain/model/order"
	"lytefood/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormOrderRepository implements ports.OrderRepository using GORM.
type GormOrderRepository struct {
	db *gorm.DB
}

// NewGormOrderRepository creates a new GORM order repository.
func NewGormOrderRepository(db *gorm.DB) *GormOrderRepository {
	return &GormOrderRepository{db: db}
}

// Add inserts the order with its line items, writes the pending history, and
// binds the generated id to the aggregate.
func (r *GormOrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	if err := aggregate.AttachID(dto.ID); err != nil {
		return err
	}

	history := historyFromDomain(dto.ID, aggregate.PendingHistory())
	if len(history) > 0 {
		if err := r.db.WithContext(ctx).Create(&history).Error; err != nil {
			return err
		}
	}

	return nil
}

// Update writes the mutable order columns conditional on the version the
// aggregate was loaded with, incrementing it. Zero rows affected means
// another writer got there first and surfaces as a concurrency conflict.
// Pending history entries are appended in the same transaction.
func (r *GormOrderRepository) Update(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).Model(&OrderDTO{}).
		Where("id = ? AND version = ?", aggregate.ID(), aggregate.Version()).
		Updates(map[string]any{
			"status":     aggregate.Status().String(),
			"livreur_id": aggregate.LivreurID(),
			"updated_at": aggregate.UpdatedAt(),
			"updated_by": aggregate.UpdatedBy(),
			"version":    aggregate.Version() + 1,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewConcurrencyConflictError("orderId", aggregate.ID())
	}

	history := historyFromDomain(aggregate.ID(), aggregate.PendingHistory())
	if len(history) > 0 {
		if err := r.db.WithContext(ctx).Create(&history).Error; err != nil {
			return err
		}
	}

	return nil
}

// Get retrieves an order with its line items.
func (r *GormOrderRepository) Get(ctx context.Context, id int64) (*order.Order, error) {
	if id <= 0 {
		return nil, errs.NewValueIsInvalidError("orderId")
	}

	var dto OrderDTO
	err := r.db.WithContext(ctx).Preload("Items").First(&dto, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("orderId", id)
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetStalePending retrieves orders still awaiting payment that were created
// before the cutoff.
func (r *GormOrderRepository) GetStalePending(ctx context.Context, cutoff time.Time) ([]*order.Order, error) {
	var dtos []OrderDTO
	err := r.db.WithContext(ctx).Preload("Items").
		Where("status = ? AND created_at < ?", order.EnAttente.String(), cutoff).
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	orders := make([]*order.Order, 0, len(dtos))
	for _, dto := range dtos {
		aggregate, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		orders = append(orders, aggregate)
	}

	return orders, nil
}
