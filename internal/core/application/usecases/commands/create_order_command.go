package commands

import (
	"errors"

	"lytefood/internal/core/domain/model/order"
	"lytefood/internal/pkg/errs"
	"lytefood/internal/pkg/guard"
)

var (
	ErrCreateOrderCommandIsNotConstructed = errors.New(
		"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
	)
)

// OrderItemInput is one requested order line: a catalog item and a quantity.
// The price is never part of the request; it is read from the catalog.
type OrderItemInput struct {
	MenuID   int64
	Quantity int
}

// CreateOrderCommand represents a customer's request to place an order.
//
// Example:
//
//	cmd, err := NewCreateOrderCommand(customerID, email,
//	    []OrderItemInput{{MenuID: 3, Quantity: 2}}, "12 rue des Lilas, Cotonou",
//	    order.EnAttente)
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//
//	handler := NewCreateOrderCommandHandler(uowFactory)
//	orderID, err := handler.Handle(ctx, cmd)
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	customerID      int64
	customerEmail   string
	items           []OrderItemInput
	deliveryAddress string
	initialStatus   order.Status

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a command to place a new order.
// Validates the customer reference and the basic shape of the request; the
// order aggregate enforces the full pricing and address rules. Callers that
// have no explicit initial status pass order.EnAttente.
func NewCreateOrderCommand(
	customerID int64,
	customerEmail string,
	items []OrderItemInput,
	deliveryAddress string,
	initialStatus order.Status,
) (CreateOrderCommand, error) {
	cmd := CreateOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setCustomer(customerID, customerEmail),
		cmd.setItems(items),
		cmd.setDeliveryAddress(deliveryAddress),
		cmd.setInitialStatus(initialStatus),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// CustomerID returns the id of the placing customer.
func (c CreateOrderCommand) CustomerID() int64 {
	return c.customerID
}

// CustomerEmail returns the customer's email, recorded in the audit trail.
func (c CreateOrderCommand) CustomerEmail() string {
	return c.customerEmail
}

// Items returns the requested order lines.
func (c CreateOrderCommand) Items() []OrderItemInput {
	return c.items
}

// DeliveryAddress returns the destination address.
func (c CreateOrderCommand) DeliveryAddress() string {
	return c.deliveryAddress
}

// InitialStatus returns the status the order starts in.
func (c CreateOrderCommand) InitialStatus() order.Status {
	return c.initialStatus
}

func (c *CreateOrderCommand) setCustomer(customerID int64, customerEmail string) error {
	if customerID <= 0 {
		return errs.NewValueIsInvalidError("customerId")
	}
	if customerEmail == "" {
		return errs.NewValueIsRequiredError("customerEmail")
	}

	c.customerID = customerID
	c.customerEmail = customerEmail
	return nil
}

func (c *CreateOrderCommand) setItems(items []OrderItemInput) error {
	if len(items) == 0 {
		return errs.NewValueIsRequiredError("items")
	}
	for _, item := range items {
		if item.MenuID <= 0 {
			return errs.NewValueIsInvalidError("items.menuId")
		}
		if item.Quantity <= 0 {
			return errs.NewValueIsInvalidError("items.quantity")
		}
	}

	c.items = append([]OrderItemInput(nil), items...)
	return nil
}

func (c *CreateOrderCommand) setDeliveryAddress(deliveryAddress string) error {
	if deliveryAddress == "" {
		return errs.NewValueIsRequiredError("deliveryAddress")
	}

	c.deliveryAddress = deliveryAddress
	return nil
}

func (c *CreateOrderCommand) setInitialStatus(initialStatus order.Status) error {
	if err := initialStatus.Validate(); err != nil {
		return err
	}

	c.initialStatus = initialStatus
	return nil
}
