package mali

import (
	"encoding/json"
	"fmt"

	bolt "go.etcd.io/bbolt"
)

// Bucket names, one per collection.
const (
	bucketAccounts = "accounts"
	bucketEntries  = "entries"
	bucketSession  = "session"
)

// sessionKey is the single key of the session bucket.
var sessionKey = []byte("current")

// BoltStore is a bbolt-backed implementation of RecordStore. Records are
// JSON-encoded and keyed by their id, one bucket per collection.
type BoltStore struct {
	db *bolt.DB
}

// OpenBoltStore opens (creating if needed) the database file and its buckets.
func OpenBoltStore(path string) (*BoltStore, error) {
	db, err := bolt.Open(path, 0o600, nil)
	if err != nil {
		return nil, fmt.Errorf("could not open store %q: %w", path, err)
	}

	err = db.Update(func(tx *bolt.Tx) error {
		for _, bucket := range []string{bucketAccounts, bucketEntries, bucketSession} {
			if _, err := tx.CreateBucketIfNotExists([]byte(bucket)); err != nil {
				return fmt.Errorf("could not create bucket %s: %w", bucket, err)
			}
		}
		return nil
	})
	if err != nil {
		_ = db.Close()
		return nil, err
	}

	return &BoltStore{db: db}, nil
}

// Close closes the database.
func (s *BoltStore) Close() error { return s.db.Close() }

// put JSON-encodes value under key in the named bucket.
func (s *BoltStore) put(bucket string, key []byte, value any) error {
	return s.db.Update(func(tx *bolt.Tx) error {
		data, err := json.Marshal(value)
		if err != nil {
			return fmt.Errorf("could not marshal record: %w", err)
		}
		return tx.Bucket([]byte(bucket)).Put(key, data)
	})
}

func (s *BoltStore) SaveAccount(a Account) error {
	return s.put(bucketAccounts, []byte(a.ID), a)
}

func (s *BoltStore) Accounts() ([]Account, error) {
	var out []Account
	err := s.db.View(func(tx *bolt.Tx) error {
		return tx.Bucket([]byte(bucketAccounts)).ForEach(func(_, data []byte) error {
			var a Account
			if err := json.Unmarshal(data, &a); err != nil {
				return fmt.Errorf("could not unmarshal account: %w", err)
			}
			out = append(out, a)
			return nil
		})
	})
	return out, err
}

func (s *BoltStore) SaveEntry(e Entry) error {
	return s.put(bucketEntries, []byte(e.ID), e)
}

func (s *BoltStore) DeleteEntry(id string) error {
	// bbolt's Delete is already a no-op on a missing key.
	return s.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket([]byte(bucketEntries)).Delete([]byte(id))
	})
}

func (s *BoltStore) Entries() ([]Entry, error) {
	var out []Entry
	err := s.db.View(func(tx *bolt.Tx) error {
		return tx.Bucket([]byte(bucketEntries)).ForEach(func(_, data []byte) error {
			var e Entry
			if err := json.Unmarshal(data, &e); err != nil {
				return fmt.Errorf("could not unmarshal entry: %w", err)
			}
			out = append(out, e)
			return nil
		})
	})
	return out, err
}

func (s *BoltStore) SetSession(accountID string) error {
	return s.db.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket([]byte(bucketSession))
		if accountID == "" {
			return b.Delete(sessionKey)
		}
		return b.Put(sessionKey, []byte(accountID))
	})
}

func (s *BoltStore) Session() (string, error) {
	var id string
	err := s.db.View(func(tx *bolt.Tx) error {
		id = string(tx.Bucket([]byte(bucketSession)).Get(sessionKey))
		return nil
	})
	return id, err
}

// Compile-time check: BoltStore implements RecordStore.
var _ RecordStore = (*BoltStore)(nil)
