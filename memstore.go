package mali

import "sync"

// MemoryStore is an in-memory implementation of RecordStore. It backs the
// tests and the `-store :memory:` mode, and is safe for concurrent use.
type MemoryStore struct {
	mu       sync.Mutex
	accounts map[string]Account
	entries  map[string]Entry
	session  string
}

// NewMemoryStore creates an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		accounts: make(map[string]Account),
		entries:  make(map[string]Entry),
	}
}

func (m *MemoryStore) SaveAccount(a Account) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.accounts[a.ID] = a
	return nil
}

func (m *MemoryStore) Accounts() ([]Account, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]Account, 0, len(m.accounts))
	for _, a := range m.accounts {
		out = append(out, a)
	}
	return out, nil
}

func (m *MemoryStore) SaveEntry(e Entry) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.entries[e.ID] = e
	return nil
}

func (m *MemoryStore) DeleteEntry(id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.entries, id)
	return nil
}

func (m *MemoryStore) Entries() ([]Entry, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]Entry, 0, len(m.entries))
	for _, e := range m.entries {
		out = append(out, e)
	}
	return out, nil
}

func (m *MemoryStore) SetSession(accountID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.session = accountID
	return nil
}

func (m *MemoryStore) Session() (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.session, nil
}

func (m *MemoryStore) Close() error { return nil }

// Compile-time check: MemoryStore implements RecordStore.
var _ RecordStore = (*MemoryStore)(nil)
