// Package cmd implements the CLI application to manage the debt ledger.
package cmd

import (
	"flag"
	"fmt"
	"os"

	"github.com/etnz/mali"
	"github.com/google/subcommands"
)

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(&registerCmd{}, "auth")
	c.Register(&loginCmd{}, "auth")
	c.Register(&logoutCmd{}, "auth")
	c.Register(&whoamiCmd{}, "auth")

	c.Register(&addCmd{}, "entries")
	c.Register(&payCmd{}, "entries")
	c.Register(&settleCmd{}, "entries")
	c.Register(&reopenCmd{}, "entries")
	c.Register(&rmCmd{}, "entries")

	c.Register(&listCmd{}, "reports")
	c.Register(&summaryCmd{}, "reports")
	c.Register(&counterpartyCmd{}, "reports")
	c.Register(&adviseCmd{}, "reports")

	c.Register(&topicCmd{}, "documentation")
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var storeFile = flag.String("store", "mali.db", "Path to the ledger database file; \":memory:\" for an ephemeral store")

// OpenStore opens the application store selected by the -store flag.
// The caller owns the returned store and must Close it.
func OpenStore() (mali.RecordStore, error) {
	if *storeFile == ":memory:" {
		return mali.NewMemoryStore(), nil
	}
	return mali.OpenBoltStore(*storeFile)
}

// CurrentAccount resolves the logged-in account, or explains how to log in.
func CurrentAccount(store mali.RecordStore) (mali.Account, error) {
	account, ok, err := mali.NewAccounts(store).Current()
	if err != nil {
		return mali.Account{}, err
	}
	if !ok {
		return mali.Account{}, fmt.Errorf("nobody is logged in, run 'mali login' or 'mali register' first")
	}
	return account, nil
}

// fail prints the error and returns the failure status, the one-liner of most
// Execute methods' error paths.
func fail(err error) subcommands.ExitStatus {
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	return subcommands.ExitFailure
}
