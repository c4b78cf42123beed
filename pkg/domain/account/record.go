package account

import (
	"time"

	"github.com/Krsoliveira/Sistema-bancario-DIO-PRO/pkg/money"
	"github.com/google/uuid"
)

// Kind is the kind of a posted transaction.
type Kind string

// Transaction kinds.
const (
	KindDeposit    Kind = "Deposit"
	KindWithdrawal Kind = "Withdrawal"
)

// Record is the journal entry of one applied transaction.
type Record struct {
	ID        uuid.UUID
	Kind      Kind
	Amount    money.Money
	Timestamp time.Time
}

// NewRecord stamps a new record with a fresh id.
func NewRecord(kind Kind, amount money.Money, at time.Time) Record {
	return Record{
		ID:        uuid.New(),
		Kind:      kind,
		Amount:    amount,
		Timestamp: at,
	}
}

// History is an append-only journal kept in insertion order. Records are
// stored by value, so callers never hold a reference into the journal.
type History struct {
	records []Record
}

// Append adds a record at the end of the journal.
func (h *History) Append(r Record) {
	h.records = append(h.records, r)
}

// Records returns a copy of the journal.
func (h *History) Records() []Record {
	out := make([]Record, len(h.records))
	copy(out, h.records)
	return out
}

// Len returns the number of records.
func (h *History) Len() int { return len(h.records) }

// Last returns the most recent record.
func (h *History) Last() (Record, bool) {
	if len(h.records) == 0 {
		return Record{}, false
	}
	return h.records[len(h.records)-1], true
}

// Count returns the number of records of the given kind.
func (h *History) Count(kind Kind) int {
	n := 0
	for _, r := range h.records {
		if r.Kind == kind {
			n++
		}
	}
	return n
}

// CountSince returns the number of records of kind stamped at or after since.
func (h *History) CountSince(kind Kind, since time.Time) int {
	n := 0
	for _, r := range h.records {
		if r.Kind == kind && !r.Timestamp.Before(since) {
			n++
		}
	}
	return n
}
