package paymentrepo

import (
	"context"
	"errors"

	"lytefood/internal/core/domain/model/payment"
	"lytefood/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormPaymentRepository implements ports.PaymentRepository using GORM.
type GormPaymentRepository struct {
	db *gorm.DB
}

// NewGormPaymentRepository creates a new GORM payment ledger repository.
func NewGormPaymentRepository(db *gorm.DB) *GormPaymentRepository {
	return &GormPaymentRepository{db: db}
}

// Add inserts the ledger record and binds the generated id.
func (r *GormPaymentRepository) Add(ctx context.Context, record *payment.Payment) error {
	dto := fromDomain(record)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	return record.AttachID(dto.ID)
}

// GetByOrder retrieves all ledger records of an order, oldest first.
func (r *GormPaymentRepository) GetByOrder(ctx context.Context, orderID int64) ([]*payment.Payment, error) {
	var dtos []PaymentDTO
	err := r.db.WithContext(ctx).
		Where("order_id = ?", orderID).
		Order("id").
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	records := make([]*payment.Payment, 0, len(dtos))
	for _, dto := range dtos {
		record, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		records = append(records, record)
	}

	return records, nil
}

// GetApprovedPayment retrieves the confirmed incoming payment of an order.
// Refund processing reads the gateway reference from it.
func (r *GormPaymentRepository) GetApprovedPayment(ctx context.Context, orderID int64) (*payment.Payment, error) {
	var dto PaymentDTO
	err := r.db.WithContext(ctx).
		Where("order_id = ? AND kind = ? AND status = ?",
			orderID, payment.KindPayment, payment.StatusApproved).
		Order("id").
		First(&dto).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("orderId", orderID)
		}
		return nil, err
	}

	return toDomain(dto)
}
