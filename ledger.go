package mali

import (
	"errors"
	"fmt"
	"log"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
)

var (
	// ErrEntryNotFound is returned when an entry id is unknown to the store.
	ErrEntryNotFound = errors.New("entry not found")
	// ErrInvalidInput is returned when an operation would persist a malformed record.
	ErrInvalidInput = errors.New("invalid input")
	// ErrInvalidPayment is returned for a non-positive payment or one in the
	// wrong currency.
	ErrInvalidPayment = errors.New("invalid payment")
)

// Ledger owns the lifecycle of entries: creation, payment application,
// settlement-status derivation and deletion.
//
// All mutations of one account's entries are serialized through a per-account
// mutex, which keeps payment application an atomic read-modify-write even if
// the ledger is ever driven by more than one goroutine. Operations on
// different accounts need no coordination.
type Ledger struct {
	store RecordStore
	muMap map[string]*sync.Mutex // one mutex per account id
	mapMu sync.Mutex             // protects the muMap itself
}

// NewLedger creates the ledger service on top of a store.
func NewLedger(store RecordStore) *Ledger {
	return &Ledger{
		store: store,
		muMap: make(map[string]*sync.Mutex),
	}
}

func (l *Ledger) accountLock(accountID string) *sync.Mutex {
	l.mapMu.Lock()
	defer l.mapMu.Unlock()

	if _, exists := l.muMap[accountID]; !exists {
		l.muMap[accountID] = &sync.Mutex{}
	}
	return l.muMap[accountID]
}

// Entries returns the account's entries, newest first. The list is recomputed
// from the store on every call; ties on the creation instant fall back to the
// id so the order is deterministic.
func (l *Ledger) Entries(accountID string) ([]Entry, error) {
	all, err := l.store.Entries()
	if err != nil {
		return nil, fmt.Errorf("could not read entries: %w", err)
	}

	var out []Entry
	for _, e := range all {
		if e.Account == accountID {
			out = append(out, e)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.After(out[j].CreatedAt)
		}
		return out[i].ID < out[j].ID
	})
	return out, nil
}

// CreateEntry records a new obligation for the account. The entry starts
// unpaid and pending; the creation time is the current instant.
func (l *Ledger) CreateEntry(accountID string, direction Direction, amount Money, counterparty, description string) (Entry, error) {
	entry := Entry{
		ID:           uuid.NewString(),
		Account:      accountID,
		Direction:    direction,
		Amount:       amount,
		Paid:         M(0, amount.Currency()),
		Counterparty: counterparty,
		Description:  description,
		CreatedAt:    time.Now(),
		Status:       Pending,
	}
	if err := entry.Validate(); err != nil {
		return Entry{}, err
	}

	mu := l.accountLock(accountID)
	mu.Lock()
	defer mu.Unlock()

	if err := l.store.SaveEntry(entry); err != nil {
		return Entry{}, fmt.Errorf("could not save entry: %w", err)
	}
	return entry, nil
}

// DeleteEntry removes the entry unconditionally. Deleting an unknown id is a
// deliberate silent no-op, so the call is idempotent.
func (l *Ledger) DeleteEntry(entryID string) error {
	if err := l.store.DeleteEntry(entryID); err != nil {
		return fmt.Errorf("could not delete entry %q: %w", entryID, err)
	}
	return nil
}

// findEntry scans the store for the entry with this id.
func (l *Ledger) findEntry(entryID string) (Entry, error) {
	all, err := l.store.Entries()
	if err != nil {
		return Entry{}, fmt.Errorf("could not read entries: %w", err)
	}
	for _, e := range all {
		if e.ID == entryID {
			return e, nil
		}
	}
	return Entry{}, fmt.Errorf("%w: %q", ErrEntryNotFound, entryID)
}

// ApplyPayment adds a payment to the entry's cumulative paid amount.
//
// The new total is clamped at the face amount: any excess in the submitted
// payment is discarded, so the remaining balance can never go negative. The
// entry settles exactly when the clamped total reaches the face amount.
func (l *Ledger) ApplyPayment(entryID string, payment Money) (Entry, error) {
	if !payment.IsPositive() {
		return Entry{}, fmt.Errorf("%w: payment must be positive, got %s", ErrInvalidPayment, payment)
	}

	// First lookup only resolves the owning account for the lock.
	entry, err := l.findEntry(entryID)
	if err != nil {
		return Entry{}, err
	}

	mu := l.accountLock(entry.Account)
	mu.Lock()
	defer mu.Unlock()

	// Re-read under the lock: the first read raced with other writers.
	entry, err = l.findEntry(entryID)
	if err != nil {
		return Entry{}, err
	}

	if payment.Currency() != "" && payment.Currency() != entry.Amount.Currency() {
		return Entry{}, fmt.Errorf("%w: payment currency %s does not match entry currency %s",
			ErrInvalidPayment, payment.Currency(), entry.Amount.Currency())
	}

	newPaid := entry.Paid.Add(payment)
	if newPaid.GreaterThanOrEqual(entry.Amount) {
		if newPaid.GreaterThan(entry.Amount) {
			log.Printf("payment on %q exceeds the remaining balance, discarding %s", entryID, newPaid.Sub(entry.Amount))
		}
		newPaid = entry.Amount
		entry.Status = Settled
	} else {
		entry.Status = Pending
	}
	entry.Paid = newPaid

	if err := l.store.SaveEntry(entry); err != nil {
		return Entry{}, fmt.Errorf("could not save entry: %w", err)
	}
	return entry, nil
}

// SetStatus is the administrative override of the settlement status.
//
// Forcing settled also forces the paid amount up to the face amount, so
// "settled implies fully paid" always holds. Forcing pending leaves the paid
// amount untouched: a reopened entry may legitimately stay partially paid.
func (l *Ledger) SetStatus(entryID string, status Status) (Entry, error) {
	if status != Pending && status != Settled {
		return Entry{}, fmt.Errorf("%w: unknown status %q", ErrInvalidInput, status)
	}

	entry, err := l.findEntry(entryID)
	if err != nil {
		return Entry{}, err
	}

	mu := l.accountLock(entry.Account)
	mu.Lock()
	defer mu.Unlock()

	entry, err = l.findEntry(entryID)
	if err != nil {
		return Entry{}, err
	}

	entry.Status = status
	if status == Settled {
		entry.Paid = entry.Amount
	}

	if err := l.store.SaveEntry(entry); err != nil {
		return Entry{}, fmt.Errorf("could not save entry: %w", err)
	}
	return entry, nil
}
