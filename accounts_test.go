package mali

import (
	"errors"
	"testing"
)

func TestAccounts_Register(t *testing.T) {
	store := NewMemoryStore()
	accounts := NewAccounts(store)

	account, err := accounts.Register("fatima", "secret", "Fatima")
	if err != nil {
		t.Fatalf("Register() failed: %v", err)
	}
	if account.ID == "" {
		t.Error("Register() returned an account without an id")
	}

	// Registration opens the session.
	current, ok, err := accounts.Current()
	if err != nil {
		t.Fatalf("Current() failed: %v", err)
	}
	if !ok || current.ID != account.ID {
		t.Errorf("Current() = %+v, %v, want the freshly registered account", current, ok)
	}

	// The username is taken now, whatever the credential.
	if _, err := accounts.Register("fatima", "other", "Another Fatima"); !errors.Is(err, ErrDuplicateUsername) {
		t.Errorf("Register() with taken username error = %v, want ErrDuplicateUsername", err)
	}
	if stored, err := store.Accounts(); err != nil || len(stored) != 1 {
		t.Errorf("store has %d accounts (err=%v), want exactly one after the rejected duplicate", len(stored), err)
	}

	testCases := []struct {
		name       string
		username   string
		credential string
	}{
		{name: "empty username", username: "", credential: "secret"},
		{name: "empty credential", username: "omar", credential: ""},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := accounts.Register(tc.username, tc.credential, ""); !errors.Is(err, ErrInvalidInput) {
				t.Errorf("Register() error = %v, want ErrInvalidInput", err)
			}
		})
	}
}

func TestAccounts_Login(t *testing.T) {
	store := NewMemoryStore()
	accounts := NewAccounts(store)

	registered, err := accounts.Register("fatima", "secret", "Fatima")
	if err != nil {
		t.Fatalf("Register() failed: %v", err)
	}
	if err := accounts.Logout(); err != nil {
		t.Fatalf("Logout() failed: %v", err)
	}

	testCases := []struct {
		name       string
		username   string
		credential string
		wantOK     bool
	}{
		{name: "valid credentials", username: "fatima", credential: "secret", wantOK: true},
		{name: "wrong credential", username: "fatima", credential: "guess"},
		{name: "unknown username", username: "nobody", credential: "secret"},
		{name: "username is case-sensitive", username: "Fatima", credential: "secret"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			account, err := accounts.Login(tc.username, tc.credential)
			if tc.wantOK {
				if err != nil {
					t.Fatalf("Login() failed: %v", err)
				}
				if account.ID != registered.ID {
					t.Errorf("Login() = %+v, want account %q", account, registered.ID)
				}
				return
			}
			if !errors.Is(err, ErrInvalidCredentials) {
				t.Errorf("Login() error = %v, want ErrInvalidCredentials", err)
			}
		})
	}
}

func TestAccounts_FailedLoginKeepsSession(t *testing.T) {
	store := NewMemoryStore()
	accounts := NewAccounts(store)

	account, err := accounts.Register("fatima", "secret", "Fatima")
	if err != nil {
		t.Fatalf("Register() failed: %v", err)
	}

	if _, err := accounts.Login("fatima", "guess"); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("Login() error = %v, want ErrInvalidCredentials", err)
	}

	// The previous session survives the failed attempt.
	current, ok, err := accounts.Current()
	if err != nil {
		t.Fatalf("Current() failed: %v", err)
	}
	if !ok || current.ID != account.ID {
		t.Errorf("Current() after failed login = %+v, %v, want the existing session", current, ok)
	}
}

func TestAccounts_Logout(t *testing.T) {
	store := NewMemoryStore()
	accounts := NewAccounts(store)

	if _, err := accounts.Register("fatima", "secret", "Fatima"); err != nil {
		t.Fatalf("Register() failed: %v", err)
	}

	if err := accounts.Logout(); err != nil {
		t.Fatalf("Logout() failed: %v", err)
	}
	if _, ok, err := accounts.Current(); err != nil || ok {
		t.Errorf("Current() after logout = ok=%v err=%v, want no session", ok, err)
	}

	// Logging out twice is fine.
	if err := accounts.Logout(); err != nil {
		t.Fatalf("second Logout() failed: %v", err)
	}
}

func TestAccounts_SeparateLedgers(t *testing.T) {
	store := NewMemoryStore()
	accounts := NewAccounts(store)
	ledger := NewLedger(store)

	fatima, err := accounts.Register("fatima", "secret", "Fatima")
	if err != nil {
		t.Fatalf("Register(fatima) failed: %v", err)
	}
	omar, err := accounts.Register("omar", "secret", "Omar")
	if err != nil {
		t.Fatalf("Register(omar) failed: %v", err)
	}

	if _, err := ledger.CreateEntry(fatima.ID, Debt, M(100, "SAR"), "Ahmed", ""); err != nil {
		t.Fatalf("CreateEntry() failed: %v", err)
	}
	if _, err := ledger.CreateEntry(omar.ID, Credit, M(40, "SAR"), "Sara", ""); err != nil {
		t.Fatalf("CreateEntry() failed: %v", err)
	}

	// Each account only ever sees its own entries.
	for _, tc := range []struct {
		account string
		want    Direction
	}{
		{account: fatima.ID, want: Debt},
		{account: omar.ID, want: Credit},
	} {
		listed, err := ledger.Entries(tc.account)
		if err != nil {
			t.Fatalf("Entries(%s) failed: %v", tc.account, err)
		}
		if len(listed) != 1 || listed[0].Direction != tc.want {
			t.Errorf("Entries(%s) = %v, want a single %s entry", tc.account, listed, tc.want)
		}
	}
}

func TestAccounts_DanglingSessionReadsAsNoSession(t *testing.T) {
	store := NewMemoryStore()
	accounts := NewAccounts(store)

	if err := store.SetSession("gone"); err != nil {
		t.Fatalf("SetSession() failed: %v", err)
	}

	if _, ok, err := accounts.Current(); err != nil || ok {
		t.Errorf("Current() with dangling session id = ok=%v err=%v, want no session", ok, err)
	}
}
