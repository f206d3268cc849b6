// Package orderrepo provides data transfer objects and mapping functions for
// order persistence, converting between the order aggregate and its three
// tables: orders, order_items, and order_history.
package orderrepo

import (
	"time"

	"lytefood/internal/core/domain/model/kernel"
	"lytefood/internal/core/domain/model/order"

	"github.com/shopspring/decimal"
)

// OrderDTO represents the database row for an order aggregate. Line items are
// a GORM association inserted with the order; history rows are written
// separately because they are append-only.
type OrderDTO struct {
	ID              int64           `gorm:"primaryKey;autoIncrement"`
	UserID          int64           `gorm:"column:user_id;index"`
	LivreurID       *int64          `gorm:"column:livreur_id;index"`
	Status          string          `gorm:"index"`
	TVAAmount       decimal.Decimal `gorm:"column:tva_amount;type:numeric(12,2)"`
	Total           decimal.Decimal `gorm:"type:numeric(12,2)"`
	DeliveryAddress string
	CreatedAt       time.Time
	UpdatedAt       time.Time
	UpdatedBy       string
	Version         int64
	Items           []OrderItemDTO `gorm:"foreignKey:OrderID"`
}

func (OrderDTO) TableName() string {
	return "orders"
}

// OrderItemDTO represents one priced line of an order.
type OrderItemDTO struct {
	ID        int64           `gorm:"primaryKey;autoIncrement"`
	OrderID   int64           `gorm:"index"`
	MenuID    int64           `gorm:"column:menu_id"`
	Quantity  int
	UnitPrice decimal.Decimal `gorm:"type:numeric(12,2)"`
}

func (OrderItemDTO) TableName() string {
	return "order_items"
}

// OrderHistoryDTO represents one audit record of a status transition.
type OrderHistoryDTO struct {
	ID             int64 `gorm:"primaryKey;autoIncrement"`
	OrderID        int64 `gorm:"index"`
	PreviousStatus string
	NewStatus      string
	Actor          string
	Role           string
	OccurredAt     time.Time
}

func (OrderHistoryDTO) TableName() string {
	return "order_history"
}

// fromDomain converts an order aggregate to its row representation, items
// included. History is mapped separately via historyFromDomain.
func fromDomain(aggregate *order.Order) OrderDTO {
	items := make([]OrderItemDTO, 0, len(aggregate.Items()))
	for _, item := range aggregate.Items() {
		items = append(items, OrderItemDTO{
			OrderID:   aggregate.ID(),
			MenuID:    item.MenuID(),
			Quantity:  item.Quantity(),
			UnitPrice: item.UnitPrice().Decimal(),
		})
	}

	return OrderDTO{
		ID:              aggregate.ID(),
		UserID:          aggregate.CustomerID(),
		LivreurID:       aggregate.LivreurID(),
		Status:          aggregate.Status().String(),
		TVAAmount:       aggregate.TVAAmount().Decimal(),
		Total:           aggregate.Total().Decimal(),
		DeliveryAddress: aggregate.DeliveryAddress(),
		CreatedAt:       aggregate.CreatedAt(),
		UpdatedAt:       aggregate.UpdatedAt(),
		UpdatedBy:       aggregate.UpdatedBy(),
		Version:         aggregate.Version(),
		Items:           items,
	}
}

// historyFromDomain maps the aggregate's pending history entries to rows for
// the given order id.
func historyFromDomain(orderID int64, entries []order.HistoryEntry) []OrderHistoryDTO {
	rows := make([]OrderHistoryDTO, 0, len(entries))
	for _, entry := range entries {
		rows = append(rows, OrderHistoryDTO{
			OrderID:        orderID,
			PreviousStatus: entry.Previous(),
			NewStatus:      entry.Next().String(),
			Actor:          entry.Actor(),
			Role:           entry.Role(),
			OccurredAt:     entry.OccurredAt(),
		})
	}
	return rows
}

// toDomain converts a row with its items back into an order aggregate.
func toDomain(dto OrderDTO) (*order.Order, error) {
	items := make([]order.LineItem, 0, len(dto.Items))
	for _, row := range dto.Items {
		item, err := order.NewLineItem(row.MenuID, row.Quantity,
			kernel.NewMoneyFromDecimal(row.UnitPrice))
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}

	return order.RestoreOrder(order.RestoreOrderParams{
		ID:              dto.ID,
		CustomerID:      dto.UserID,
		LivreurID:       dto.LivreurID,
		Status:          order.Status(dto.Status),
		Items:           items,
		TVAAmount:       kernel.NewMoneyFromDecimal(dto.TVAAmount),
		Total:           kernel.NewMoneyFromDecimal(dto.Total),
		DeliveryAddress: dto.DeliveryAddress,
		CreatedAt:       dto.CreatedAt,
		UpdatedAt:       dto.UpdatedAt,
		UpdatedBy:       dto.UpdatedBy,
		Version:         dto.Version,
	})
}
