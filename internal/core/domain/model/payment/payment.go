package payment

import (
	"time"

	"lytefood/internal/core/domain/model/kernel"
	"lytefood/internal/pkg/errs"
)

// Kind distinguishes money coming in from money going back.
type Kind string

const (
	KindPayment Kind = "payment"
	KindRefund  Kind = "refund"
)

// StatusApproved is the gateway status recorded for confirmed transactions.
// The value mirrors what the gateway reports.
const StatusApproved = "approved"

// Payment is one ledger record of a gateway transaction tied to an order.
// Records are written once a transaction is confirmed and never reinterpreted
// afterwards; refunds get their own record instead of mutating the original.
type Payment struct {
	id         int64
	orderID    int64
	status     string
	gatewayRef string
	kind       Kind
	amount     kernel.Money
	createdAt  time.Time
	updatedAt  time.Time
}

// NewPayment records a confirmed gateway transaction.
func NewPayment(orderID int64, status, gatewayRef string, kind Kind, amount kernel.Money) (*Payment, error) {
	if orderID <= 0 {
		return nil, errs.NewValueIsInvalidError("order_id")
	}
	if status == "" {
		return nil, errs.NewValueIsRequiredError("status")
	}
	if gatewayRef == "" {
		return nil, errs.NewValueIsRequiredError("gateway_ref")
	}
	if kind != KindPayment && kind != KindRefund {
		return nil, errs.NewValueIsInvalidError("kind")
	}

	now := time.Now().UTC()
	return &Payment{
		orderID:    orderID,
		status:     status,
		gatewayRef: gatewayRef,
		kind:       kind,
		amount:     amount,
		createdAt:  now,
		updatedAt:  now,
	}, nil
}

// RestorePaymentParams carries the persisted state needed to rebuild a record.
type RestorePaymentParams struct {
	ID         int64
	OrderID    int64
	Status     string
	GatewayRef string
	Kind       Kind
	Amount     kernel.Money
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// RestorePayment rebuilds a payment record from persistence.
func RestorePayment(params RestorePaymentParams) (*Payment, error) {
	if params.ID <= 0 {
		return nil, errs.NewValueIsInvalidError("id")
	}

	return &Payment{
		id:         params.ID,
		orderID:    params.OrderID,
		status:     params.Status,
		gatewayRef: params.GatewayRef,
		kind:       params.Kind,
		amount:     params.Amount,
		createdAt:  params.CreatedAt,
		updatedAt:  params.UpdatedAt,
	}, nil
}

// AttachID binds the database-generated identifier after the insert.
func (p *Payment) AttachID(id int64) error {
	if id <= 0 || p.id != 0 {
		return errs.NewValueIsInvalidError("id")
	}
	p.id = id
	return nil
}

func (p *Payment) ID() int64 {
	return p.id
}

func (p *Payment) OrderID() int64 {
	return p.orderID
}

func (p *Payment) Status() string {
	return p.status
}

// GatewayRef returns the gateway's transaction or refund reference.
func (p *Payment) GatewayRef() string {
	return p.gatewayRef
}

func (p *Payment) Kind() Kind {
	return p.kind
}

func (p *Payment) Amount() kernel.Money {
	return p.amount
}

func (p *Payment) CreatedAt() time.Time {
	return p.createdAt
}

func (p *Payment) UpdatedAt() time.Time {
	return p.updatedAt
}
