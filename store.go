package mali

// RecordStore persists the three collections of the application: accounts,
// the current-session pointer, and ledger entries. Implementations hold no
// business logic; every rule about what may be written lives in the services
// on top.
//
// The session is a single account identifier, "" when nobody is logged in.
// Persisting only the identifier (and not an account snapshot) means the
// session can never diverge from the account record it points to.
type RecordStore interface {
	// SaveAccount inserts or replaces the account with the same id.
	SaveAccount(a Account) error
	// Accounts returns every stored account.
	Accounts() ([]Account, error)

	// SaveEntry inserts or replaces the entry with the same id.
	SaveEntry(e Entry) error
	// DeleteEntry removes the entry. Unknown ids are a silent no-op.
	DeleteEntry(id string) error
	// Entries returns every stored entry, in no particular order.
	Entries() ([]Entry, error)

	// SetSession records the current account id; "" clears the session.
	SetSession(accountID string) error
	// Session returns the current account id, "" when none.
	Session() (string, error)

	// Close releases the underlying resources.
	Close() error
}
