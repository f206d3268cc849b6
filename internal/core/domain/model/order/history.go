package order

import "time"

// HistoryInitial is the sentinel "previous status" recorded for the entry
// written at order creation, when no prior status exists.
const HistoryInitial = "N/A"

// HistoryEntry is one append-only audit record of a status transition.
// Entries are produced by the aggregate's transition primitive and persisted
// by the repository in the same transaction as the status write; they are
// never mutated or deleted afterwards.
type HistoryEntry struct {
	previous   string
	next       Status
	actor      string
	role       string
	occurredAt time.Time
}

// Previous returns the status before the transition, or HistoryInitial for
// the creation entry.
func (h HistoryEntry) Previous() string {
	return h.previous
}

// Next returns the status after the transition.
func (h HistoryEntry) Next() Status {
	return h.next
}

// Actor returns the free-text identity label of whoever triggered the
// transition: an email, "system", "admin_assign", or a bridge tag.
func (h HistoryEntry) Actor() string {
	return h.actor
}

// Role returns the role label the actor acted under.
func (h HistoryEntry) Role() string {
	return h.role
}

// OccurredAt returns when the transition happened.
func (h HistoryEntry) OccurredAt() time.Time {
	return h.occurredAt
}
