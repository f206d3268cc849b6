package order

import (
	"fmt"

	"lytefood/internal/pkg/errs"
)

// Status represents the lifecycle state of an order. The values are the exact
// wire strings; they are stored and serialized as-is.
//
// Linear workflow (auto-advance walks this list left to right):
//
//	en_attente ──> payé ──> en_preparation ──> prêt ──> en_chemin ──> livré*
//	     │           │
//	     └───────────┴──> annulée*
//
// remboursée* is terminal and reachable only through the payment bridge, never
// through the linear workflow. States marked * are terminal.
type Status string

const (
	// EnAttente is the initial status: the order is placed, payment pending.
	EnAttente Status = "en_attente"

	// Paye indicates payment has been confirmed.
	Paye Status = "payé"

	// EnPreparation indicates the kitchen is working on the order.
	EnPreparation Status = "en_preparation"

	// Pret indicates the order is ready for a livreur to take.
	Pret Status = "prêt"

	// EnChemin indicates a livreur is delivering the order.
	EnChemin Status = "en_chemin"

	// Livre is terminal: the order reached the customer.
	Livre Status = "livré"

	// Annulee is terminal: the order was cancelled by the customer, an admin,
	// or a livreur reporting a failed delivery.
	Annulee Status = "annulée"

	// Remboursee is terminal: the payment was returned to the customer.
	Remboursee Status = "remboursée"
)

// Workflow returns the ordered list of states the linear auto-advance walks.
// Terminal side branches (annulée, remboursée) are not part of it.
func Workflow() []Status {
	return []Status{EnAttente, Paye, EnPreparation, Pret, EnChemin, Livre}
}

func validStatuses() map[Status]struct{} {
	return map[Status]struct{}{
		EnAttente:     {},
		Paye:          {},
		EnPreparation: {},
		Pret:          {},
		EnChemin:      {},
		Livre:         {},
		Annulee:       {},
		Remboursee:    {},
	}
}

// ParseStatus converts a wire string into a Status.
// Unknown strings are rejected with the offending value in the error.
func ParseStatus(s string) (Status, error) {
	status := Status(s)
	if err := status.Validate(); err != nil {
		return "", err
	}
	return status, nil
}

// Validate checks that the Status is one of the eight defined values.
func (s Status) Validate() error {
	if _, ok := validStatuses()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%q is not a valid status", string(s)))
	}
	return nil
}

// String returns the wire representation.
func (s Status) String() string {
	return string(s)
}

// IsTerminal reports whether no further transition is expected from s.
func (s Status) IsTerminal() bool {
	return s == Livre || s == Annulee || s == Remboursee
}

// IsCancellable reports whether an order in this state may still be cancelled.
// Only orders that have not entered preparation qualify.
func (s Status) IsCancellable() bool {
	return s == EnAttente || s == Paye
}

// Next returns the state following s in the linear workflow.
//
// It fails with a state conflict when s is not part of the workflow (annulée,
// remboursée) or is already the last workflow state (livré).
func (s Status) Next() (Status, error) {
	workflow := Workflow()
	for i, step := range workflow {
		if step != s {
			continue
		}
		if i+1 >= len(workflow) {
			return "", errs.NewStateConflictError(s.String(), "a workflow status before livré")
		}
		return workflow[i+1], nil
	}
	return "", errs.NewStateConflictError(s.String(), "a workflow status")
}
