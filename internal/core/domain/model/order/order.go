package order

import (
	"errors"
	"fmt"
	"time"
	"unicode/utf8"

	"lytefood/internal/core/domain/model/kernel"
	"lytefood/internal/pkg/errs"
)

// Role and actor labels recorded in the audit trail.
const (
	RoleClient  = "client"
	RoleAdmin   = "admin"
	RoleLivreur = "livreur"
	RoleSystem  = "system"
	RoleAuto    = "auto"

	ActorSystem        = "system"
	ActorAdminAssign   = "admin_assign"
	ActorAdmin         = "admin"
	ActorPaymentBridge = "fedapay-callback"
)

// Delivery address length bounds, in runes.
const (
	minAddressLength = 5
	maxAddressLength = 200
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not
	// created through NewOrder or RestoreOrder.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder")

	// ErrStatusUnchanged is returned by the transition primitive when the
	// requested status equals the current one. The order is reported as
	// "not modified": no history entry is appended and nothing is stamped.
	ErrStatusUnchanged = errors.New("order status unchanged")
)

// Order is the aggregate root of the ordering domain. It owns its line items
// and is the sole writer of its history trail.
//
// Invariants:
//   - total = round2(round2(subtotal * 0.18) + subtotal), subtotal = Σ line totals
//   - status is always one of the eight defined enum values
//   - every successful transition appends exactly one history entry
//   - line items are immutable after creation
//   - the assigned livreur, when set, must hold the livreur role (checked by
//     the assignment use case before the id reaches the aggregate)
//
// Every transition funnels through the unconditional changeStatus primitive;
// which transitions are legal for whom is decided by the named methods that
// call it (Advance, Cancel, Take, ...). That layering is deliberate: the
// ledger primitive never refuses, the policy lives in its callers.
type Order struct {
	id             int64
	customerID     int64
	livreurID      *int64
	status         Status
	items          []LineItem
	tvaAmount      kernel.Money
	total          kernel.Money
	deliveryAddress string
	createdAt      time.Time
	updatedAt      time.Time
	updatedBy      string
	version        int64
	pendingHistory []HistoryEntry
	isConstructed  bool
}

// NewOrder creates an order from priced line items, computing tax and total
// with exact decimal arithmetic. It records the creation history entry
// (HistoryInitial -> initialStatus) attributed to the placing customer.
//
// The id stays zero until the persistence adapter binds the database-generated
// identifier via AttachID.
func NewOrder(
	customerID int64,
	items []LineItem,
	deliveryAddress string,
	initialStatus Status,
	customerEmail string,
) (*Order, error) {
	if customerID <= 0 {
		return nil, errs.NewValueIsInvalidError("customer_id")
	}
	if len(items) == 0 {
		return nil, errs.NewValueIsRequiredError("items")
	}
	if err := validateDeliveryAddress(deliveryAddress); err != nil {
		return nil, err
	}
	if err := initialStatus.Validate(); err != nil {
		return nil, err
	}

	subtotal := kernel.Zero()
	for _, item := range items {
		subtotal = subtotal.Add(item.Total())
	}

	now := time.Now().UTC()
	order := &Order{
		customerID:      customerID,
		status:          initialStatus,
		items:           append([]LineItem(nil), items...),
		tvaAmount:       subtotal.TVA(),
		total:           subtotal.WithTVA(),
		deliveryAddress: deliveryAddress,
		createdAt:       now,
		updatedAt:       now,
		updatedBy:       customerEmail,
		isConstructed:   true,
	}

	order.pendingHistory = append(order.pendingHistory, HistoryEntry{
		previous:   HistoryInitial,
		next:       initialStatus,
		actor:      customerEmail,
		role:       RoleClient,
		occurredAt: now,
	})

	return order, nil
}

// RestoreOrderParams carries the persisted state needed to rebuild an order.
type RestoreOrderParams struct {
	ID              int64
	CustomerID      int64
	LivreurID       *int64
	Status          Status
	Items           []LineItem
	TVAAmount       kernel.Money
	Total           kernel.Money
	DeliveryAddress string
	CreatedAt       time.Time
	UpdatedAt       time.Time
	UpdatedBy       string
	Version         int64
}

// RestoreOrder rebuilds an order from persistence. The stored status is still
// validated so a corrupted row cannot reintroduce an unknown state.
func RestoreOrder(params RestoreOrderParams) (*Order, error) {
	if params.ID <= 0 {
		return nil, errs.NewValueIsInvalidError("id")
	}
	if err := params.Status.Validate(); err != nil {
		return nil, err
	}

	return &Order{
		id:              params.ID,
		customerID:      params.CustomerID,
		livreurID:       params.LivreurID,
		status:          params.Status,
		items:           append([]LineItem(nil), params.Items...),
		tvaAmount:       params.TVAAmount,
		total:           params.Total,
		deliveryAddress: params.DeliveryAddress,
		createdAt:       params.CreatedAt,
		updatedAt:       params.UpdatedAt,
		updatedBy:       params.UpdatedBy,
		version:         params.Version,
		isConstructed:   true,
	}, nil
}

// Validate ensures the Order instance was properly constructed.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// AttachID binds the database-generated identifier to a newly created order.
// Called by the persistence adapter after the insert; rejected once an id is
// already set.
func (o *Order) AttachID(id int64) error {
	if id <= 0 {
		return errs.NewValueIsInvalidError("id")
	}
	if o.id != 0 {
		return errs.NewValueIsInvalidErrorWithCause("id",
			fmt.Errorf("order already has id %d", o.id))
	}
	o.id = id
	return nil
}

// ID returns the order identifier, zero until persisted.
func (o *Order) ID() int64 {
	return o.id
}

// CustomerID returns the id of the placing customer.
func (o *Order) CustomerID() int64 {
	return o.customerID
}

// LivreurID returns the assigned livreur's user id, nil when unassigned.
func (o *Order) LivreurID() *int64 {
	return o.livreurID
}

// Status returns the current lifecycle state.
func (o *Order) Status() Status {
	return o.status
}

// Items returns a copy of the order's line items.
func (o *Order) Items() []LineItem {
	return append([]LineItem(nil), o.items...)
}

// Subtotal returns the pre-tax sum of all line totals.
func (o *Order) Subtotal() kernel.Money {
	subtotal := kernel.Zero()
	for _, item := range o.items {
		subtotal = subtotal.Add(item.Total())
	}
	return subtotal
}

// TVAAmount returns the tax computed at creation.
func (o *Order) TVAAmount() kernel.Money {
	return o.tvaAmount
}

// Total returns the gross total (subtotal + tax).
func (o *Order) Total() kernel.Money {
	return o.total
}

// DeliveryAddress returns the destination address.
func (o *Order) DeliveryAddress() string {
	return o.deliveryAddress
}

// CreatedAt returns the creation timestamp.
func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// UpdatedAt returns the last modification timestamp.
func (o *Order) UpdatedAt() time.Time {
	return o.updatedAt
}

// UpdatedBy returns the label of the last modifying actor.
func (o *Order) UpdatedBy() string {
	return o.updatedBy
}

// Version returns the optimistic concurrency counter as loaded from storage.
// The repository's conditional update compares and increments it.
func (o *Order) Version() int64 {
	return o.version
}

// PendingHistory returns the history entries produced since the aggregate was
// loaded. The repository persists them in the same transaction as the order
// row and the aggregate is discarded afterwards.
func (o *Order) PendingHistory() []HistoryEntry {
	return append([]HistoryEntry(nil), o.pendingHistory...)
}

// ChangeStatus is the generic transition primitive: it swaps the status,
// stamps updated_at/updated_by, and appends one history entry. It refuses a
// transition to the current status with ErrStatusUnchanged and validates the
// target value, but enforces no workflow legality. Policy belongs to the
// dedicated transition methods and to the administrative callers that are
// allowed to reach for the primitive directly.
func (o *Order) ChangeStatus(newStatus Status, actor, role string) error {
	if err := newStatus.Validate(); err != nil {
		return err
	}
	return o.changeStatus(newStatus, actor, role)
}

func (o *Order) changeStatus(newStatus Status, actor, role string) error {
	if newStatus == o.status {
		return ErrStatusUnchanged
	}

	previous := o.status
	now := time.Now().UTC()

	o.status = newStatus
	o.updatedAt = now
	o.updatedBy = actor
	o.pendingHistory = append(o.pendingHistory, HistoryEntry{
		previous:   string(previous),
		next:       newStatus,
		actor:      actor,
		role:       role,
		occurredAt: now,
	})

	return nil
}

// Advance moves the order to the next state of the linear workflow as the
// system actor. It fails with a state conflict when the current status is off
// the workflow or already livré.
func (o *Order) Advance() error {
	next, err := o.status.Next()
	if err != nil {
		return err
	}
	return o.changeStatus(next, ActorSystem, RoleAuto)
}

// Cancel transitions the order to annulée.
//
// Permitted only while the status is en_attente or payé. Admins may cancel
// any order; a customer only their own. The audit entry is attributed to
// "admin"/"admin" for administrative cancellations and to the customer's
// email with role "client" otherwise.
func (o *Order) Cancel(actorID int64, actorEmail string, isAdmin bool) error {
	if !o.status.IsCancellable() {
		return errs.NewStateConflictError(o.status.String(), "en_attente or payé")
	}
	if !isAdmin && actorID != o.customerID {
		return errs.NewNotAuthorizedError("cancel order")
	}

	actor, role := actorEmail, RoleClient
	if isAdmin {
		actor, role = ActorAdmin, RoleAdmin
	}
	return o.changeStatus(Annulee, actor, role)
}

// Take is the livreur pickup: permitted only while the order is prêt and
// either unassigned or already assigned to the calling livreur. On success
// the caller becomes the assigned livreur and the order moves to en_chemin.
func (o *Order) Take(livreurID int64, livreurEmail string) error {
	if o.status != Pret {
		return errs.NewStateConflictError(o.status.String(), Pret.String())
	}
	if o.livreurID != nil && *o.livreurID != livreurID {
		return errs.NewNotAuthorizedError("take order")
	}

	if o.livreurID == nil {
		o.livreurID = &livreurID
	}
	return o.changeStatus(EnChemin, livreurEmail, RoleLivreur)
}

// MarkDelivered completes the delivery: the caller must be the assigned
// livreur and the order must be en_chemin or prêt.
func (o *Order) MarkDelivered(livreurID int64, livreurEmail string) error {
	if o.livreurID == nil || *o.livreurID != livreurID {
		return errs.NewNotAuthorizedError("deliver order")
	}
	if o.status != EnChemin && o.status != Pret {
		return errs.NewStateConflictError(o.status.String(), "en_chemin or prêt")
	}
	return o.changeStatus(Livre, livreurEmail, RoleLivreur)
}

// MarkFailedDelivery reports a failed delivery attempt: the caller must be
// the assigned livreur and the order must be en_chemin. The order lands in
// annulée; the role "livreur" on the history entry is what distinguishes a
// failed delivery from a customer or admin cancellation.
func (o *Order) MarkFailedDelivery(livreurID int64, livreurEmail string) error {
	if o.livreurID == nil || *o.livreurID != livreurID {
		return errs.NewNotAuthorizedError("mark failed delivery")
	}
	if o.status != EnChemin {
		return errs.NewStateConflictError(o.status.String(), EnChemin.String())
	}
	return o.changeStatus(Annulee, livreurEmail, RoleLivreur)
}

// AssignLivreur is the administrative assignment. The caller has already
// verified the target user holds the livreur role and is active.
//
// Terminal orders refuse assignment. Re-assigning the same livreur is a
// no-op success. Otherwise the livreur is bound and the order is driven to
// payé through the primitive. The workflow assumes administrative assignment
// implies payment, even when that regresses a further-along status; the
// history trail records the regression.
func (o *Order) AssignLivreur(livreurID int64) error {
	if o.status.IsTerminal() {
		return errs.NewStateConflictError(o.status.String(), "a non-terminal status")
	}
	if o.livreurID != nil && *o.livreurID == livreurID {
		return nil
	}

	o.livreurID = &livreurID
	if err := o.changeStatus(Paye, ActorAdminAssign, RoleAdmin); err != nil {
		// Already payé: the reassignment alone still counts as a change.
		if errors.Is(err, ErrStatusUnchanged) {
			o.updatedAt = time.Now().UTC()
			o.updatedBy = ActorAdminAssign
			return nil
		}
		return err
	}
	return nil
}

// MarkPaid is the payment-bridge completion, called only after the gateway
// confirmed the transaction. Terminal orders refuse it.
func (o *Order) MarkPaid() error {
	if o.status.IsTerminal() {
		return errs.NewStateConflictError(o.status.String(), "a non-terminal status")
	}
	return o.changeStatus(Paye, ActorPaymentBridge, RoleSystem)
}

// MarkRefunded transitions a paid (or further along, non-terminal) order to
// remboursée on behalf of an administrator, after the gateway accepted the
// refund.
func (o *Order) MarkRefunded(actorEmail string) error {
	switch o.status {
	case Paye, EnPreparation, Pret, EnChemin:
		return o.changeStatus(Remboursee, actorEmail, RoleAdmin)
	default:
		return errs.NewStateConflictError(o.status.String(), "a paid, non-terminal status")
	}
}

func validateDeliveryAddress(address string) error {
	length := utf8.RuneCountInString(address)
	if length < minAddressLength || length > maxAddressLength {
		return errs.NewValueIsInvalidErrorWithCause("delivery_address",
			fmt.Errorf("length %d is outside [%d, %d]", length, minAddressLength, maxAddressLength))
	}
	return nil
}
