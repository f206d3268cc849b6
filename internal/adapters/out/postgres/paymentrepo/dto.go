// Package paymentrepo provides data transfer objects and mapping functions
// for the payment ledger.
package paymentrepo

import (
	"time"

	"lytefood/internal/core/domain/model/kernel"
	"lytefood/internal/core/domain/model/payment"

	"github.com/shopspring/decimal"
)

// PaymentDTO represents the database row for one gateway transaction record.
type PaymentDTO struct {
	ID         int64  `gorm:"primaryKey;autoIncrement"`
	OrderID    int64  `gorm:"index"`
	Status     string
	GatewayRef string `gorm:"column:gateway_ref;index"`
	Kind       string
	Amount     decimal.Decimal `gorm:"type:numeric(12,2)"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

func (PaymentDTO) TableName() string {
	return "payments"
}

func fromDomain(record *payment.Payment) PaymentDTO {
	return PaymentDTO{
		ID:         record.ID(),
		OrderID:    record.OrderID(),
		Status:     record.Status(),
		GatewayRef: record.GatewayRef(),
		Kind:       string(record.Kind()),
		Amount:     record.Amount().Decimal(),
		CreatedAt:  record.CreatedAt(),
		UpdatedAt:  record.UpdatedAt(),
	}
}

func toDomain(dto PaymentDTO) (*payment.Payment, error) {
	return payment.RestorePayment(payment.RestorePaymentParams{
		ID:         dto.ID,
		OrderID:    dto.OrderID,
		Status:     dto.Status,
		GatewayRef: dto.GatewayRef,
		Kind:       payment.Kind(dto.Kind),
		Amount:     kernel.NewMoneyFromDecimal(dto.Amount),
		CreatedAt:  dto.CreatedAt,
		UpdatedAt:  dto.UpdatedAt,
	})
}
