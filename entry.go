package mali

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// Direction tells which way an entry's obligation runs.
type Direction string

const (
	// Credit means the counterparty owes the user.
	Credit Direction = "credit"
	// Debt means the user owes the counterparty.
	Debt Direction = "debt"
)

// ParseDirection parses a string into a Direction.
func ParseDirection(s string) (Direction, error) {
	switch Direction(s) {
	case Credit:
		return Credit, nil
	case Debt:
		return Debt, nil
	default:
		return "", fmt.Errorf("unknown direction: %q", s)
	}
}

// Status is the settlement state of an entry.
type Status string

const (
	// Pending means the entry still has an open remaining balance.
	Pending Status = "pending"
	// Settled means the entry's economic effect is closed.
	Settled Status = "settled"
)

// ParseStatus parses a string into a Status.
func ParseStatus(s string) (Status, error) {
	switch Status(s) {
	case Pending:
		return Pending, nil
	case Settled:
		return Settled, nil
	default:
		return "", fmt.Errorf("unknown status: %q", s)
	}
}

// Entry is a single recorded debt or credit obligation between the owning
// account and a named counterparty.
//
// An entry is immutable except for its paid amount and status: the ledger
// mutates those through payment application and the status override, nothing
// else. Counterparty is a free-text grouping key, not a reference to an
// account.
type Entry struct {
	ID           string    // unique identifier
	Account      string    // owning account identifier
	Direction    Direction // credit: counterparty owes the user; debt: the reverse
	Amount       Money     // face amount, positive
	Paid         Money     // cumulative paid amount, never decreases
	Counterparty string    // the person involved (e.g. "Ahmed")
	Description  string    // optional note
	CreatedAt    time.Time // creation time, also the listing order
	Status       Status    // pending or settled
}

// Remaining returns the open balance of the entry: face amount minus
// cumulative payments, floored at zero so it is never presented negative.
func (e Entry) Remaining() Money {
	r := e.Amount.Sub(e.Paid)
	if r.IsNegative() {
		return M(decimal.Zero, e.Amount.Currency())
	}
	return r
}

// Validate checks the entry for fields that must never reach the store.
func (e Entry) Validate() error {
	if e.Account == "" {
		return fmt.Errorf("%w: entry has no owning account", ErrInvalidInput)
	}
	if e.Direction != Credit && e.Direction != Debt {
		return fmt.Errorf("%w: unknown direction %q", ErrInvalidInput, e.Direction)
	}
	if !e.Amount.IsPositive() {
		return fmt.Errorf("%w: amount must be positive, got %s", ErrInvalidInput, e.Amount)
	}
	if e.Counterparty == "" {
		return fmt.Errorf("%w: counterparty is required", ErrInvalidInput)
	}
	if e.Paid.IsNegative() {
		return fmt.Errorf("%w: paid amount cannot be negative", ErrInvalidInput)
	}
	return nil
}

// MarshalJSON implements the json.Marshaler interface for Entry.
// Fields are written in a stable order so persisted records diff cleanly.
func (e Entry) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("id", e.ID)
	w.Append("account", e.Account)
	w.Append("direction", e.Direction)
	w.Append("amount", e.Amount.Decimal())
	w.Append("paid", e.Paid.Decimal())
	w.Append("currency", e.Amount.Currency())
	w.Append("counterparty", e.Counterparty)
	w.Optional("description", e.Description)
	w.Append("createdAt", e.CreatedAt.UTC().Format(time.RFC3339Nano))
	w.Append("status", e.Status)
	return w.MarshalJSON()
}

// UnmarshalJSON implements the json.Unmarshaler interface for Entry.
// It rebuilds the two Money fields from the shared currency label.
func (e *Entry) UnmarshalJSON(data []byte) error {
	var temp struct {
		ID           string          `json:"id"`
		Account      string          `json:"account"`
		Direction    Direction       `json:"direction"`
		Amount       decimal.Decimal `json:"amount"`
		Paid         decimal.Decimal `json:"paid"`
		Currency     string          `json:"currency"`
		Counterparty string          `json:"counterparty"`
		Description  string          `json:"description"`
		CreatedAt    time.Time       `json:"createdAt"`
		Status       Status          `json:"status"`
	}
	if err := json.Unmarshal(data, &temp); err != nil {
		return err
	}

	e.ID = temp.ID
	e.Account = temp.Account
	e.Direction = temp.Direction
	e.Amount = M(temp.Amount, temp.Currency)
	e.Paid = M(temp.Paid, temp.Currency)
	e.Counterparty = temp.Counterparty
	e.Description = temp.Description
	e.CreatedAt = temp.CreatedAt
	e.Status = temp.Status
	return nil
}

func (e Entry) Equal(o Entry) bool {
	return e.ID == o.ID &&
		e.Account == o.Account &&
		e.Direction == o.Direction &&
		e.Amount.Equal(o.Amount) &&
		e.Paid.Equal(o.Paid) &&
		e.Counterparty == o.Counterparty &&
		e.Description == o.Description &&
		e.CreatedAt.Equal(o.CreatedAt) &&
		e.Status == o.Status
}
