package order

import (
	"fmt"

	"lytefood/internal/core/domain/model/kernel"
	"lytefood/internal/pkg/errs"
)

// LineItem is one priced order line: a catalog item reference, a positive
// quantity, and the unit price captured at ordering time. Line items are
// created together with their order and never mutated afterwards.
type LineItem struct {
	menuID    int64
	quantity  int
	unitPrice kernel.Money
}

// NewLineItem builds a validated line item.
// The unit price comes from the catalog lookup the caller already performed.
func NewLineItem(menuID int64, quantity int, unitPrice kernel.Money) (LineItem, error) {
	if menuID <= 0 {
		return LineItem{}, errs.NewValueIsInvalidErrorWithCause("menu_id",
			fmt.Errorf("%d is not a valid menu id", menuID))
	}
	if quantity <= 0 {
		return LineItem{}, errs.NewValueIsInvalidErrorWithCause("quantity",
			fmt.Errorf("quantity for menu %d must be positive, got %d", menuID, quantity))
	}
	if unitPrice.IsNegative() {
		return LineItem{}, errs.NewValueIsInvalidError("unit_price")
	}

	return LineItem{
		menuID:    menuID,
		quantity:  quantity,
		unitPrice: unitPrice,
	}, nil
}

// MenuID returns the referenced catalog item id.
func (li LineItem) MenuID() int64 {
	return li.menuID
}

// Quantity returns the ordered quantity.
func (li LineItem) Quantity() int {
	return li.quantity
}

// UnitPrice returns the catalog price captured when the order was placed.
func (li LineItem) UnitPrice() kernel.Money {
	return li.unitPrice
}

// Total returns unit price multiplied by quantity, unrounded.
func (li LineItem) Total() kernel.Money {
	return li.unitPrice.MulInt(li.quantity)
}
