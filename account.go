package mali

// Account is a registered user of the ledger. Accounts are created at
// registration and never change or disappear afterwards.
//
// The credential is an opaque string compared for equality. It is stored as
// given: this tool guards a personal notebook, not a vault.
type Account struct {
	ID         string `json:"id"`
	Username   string `json:"username"` // unique, case-sensitive
	Credential string `json:"credential"`
	Name       string `json:"name"` // display name
}

// MarshalJSON implements the json.Marshaler interface for Account.
func (a Account) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("id", a.ID)
	w.Append("username", a.Username)
	w.Append("credential", a.Credential)
	w.Append("name", a.Name)
	return w.MarshalJSON()
}
