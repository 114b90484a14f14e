package mali

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
)

var (
	// ErrDuplicateUsername is returned by Register when the username is taken.
	ErrDuplicateUsername = errors.New("username already exists")
	// ErrInvalidCredentials is returned by Login when no account matches both
	// the username and the credential.
	ErrInvalidCredentials = errors.New("wrong username or credential")
)

// Accounts registers and authenticates accounts against a RecordStore, and
// owns the single current-session pointer.
type Accounts struct {
	store RecordStore
}

// NewAccounts creates the account service on top of a store.
func NewAccounts(store RecordStore) *Accounts {
	return &Accounts{store: store}
}

// Register creates a new account, makes it the current session and returns it.
// The username is unique and case-sensitive; a taken one fails with
// ErrDuplicateUsername and leaves the store untouched.
func (s *Accounts) Register(username, credential, name string) (Account, error) {
	if username == "" || credential == "" {
		return Account{}, fmt.Errorf("%w: username and credential are required", ErrInvalidInput)
	}

	existing, err := s.store.Accounts()
	if err != nil {
		return Account{}, fmt.Errorf("could not read accounts: %w", err)
	}
	for _, a := range existing {
		if a.Username == username {
			return Account{}, fmt.Errorf("%w: %q", ErrDuplicateUsername, username)
		}
	}

	account := Account{
		ID:         uuid.NewString(),
		Username:   username,
		Credential: credential,
		Name:       name,
	}
	if err := s.store.SaveAccount(account); err != nil {
		return Account{}, fmt.Errorf("could not save account: %w", err)
	}
	if err := s.store.SetSession(account.ID); err != nil {
		return Account{}, fmt.Errorf("could not open session: %w", err)
	}
	return account, nil
}

// Login authenticates by exact username and credential match, sets the
// session and returns the account. A failed login never touches the session.
func (s *Accounts) Login(username, credential string) (Account, error) {
	accounts, err := s.store.Accounts()
	if err != nil {
		return Account{}, fmt.Errorf("could not read accounts: %w", err)
	}
	for _, a := range accounts {
		if a.Username == username && a.Credential == credential {
			if err := s.store.SetSession(a.ID); err != nil {
				return Account{}, fmt.Errorf("could not open session: %w", err)
			}
			return a, nil
		}
	}
	return Account{}, ErrInvalidCredentials
}

// Logout clears the current session. It is idempotent: logging out with no
// session is not an error.
func (s *Accounts) Logout() error {
	return s.store.SetSession("")
}

// Current resolves the stored session id against the accounts collection.
// The second return is false when nobody is logged in. A session id that no
// longer resolves (a foreign store file, say) also reads as no session.
func (s *Accounts) Current() (Account, bool, error) {
	id, err := s.store.Session()
	if err != nil {
		return Account{}, false, fmt.Errorf("could not read session: %w", err)
	}
	if id == "" {
		return Account{}, false, nil
	}
	accounts, err := s.store.Accounts()
	if err != nil {
		return Account{}, false, fmt.Errorf("could not read accounts: %w", err)
	}
	for _, a := range accounts {
		if a.ID == id {
			return a, true, nil
		}
	}
	return Account{}, false, nil
}
