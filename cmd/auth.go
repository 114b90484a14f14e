package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/etnz/mali"
	"github.com/google/subcommands"
)

// --- Register Command ---

type registerCmd struct {
	username   string
	credential string
	name       string
}

func (*registerCmd) Name() string     { return "register" }
func (*registerCmd) Synopsis() string { return "create a new account and log into it" }
func (*registerCmd) Usage() string {
	return `mali register -u <username> -p <credential> [-n <name>]

  Creates a new account. The username must be unused; the new account becomes
  the current session.
`
}

func (c *registerCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.username, "u", "", "Username, unique and case-sensitive")
	f.StringVar(&c.credential, "p", "", "Credential")
	f.StringVar(&c.name, "n", "", "Display name, defaults to the username")
}

func (c *registerCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.username == "" || c.credential == "" {
		f.Usage()
		return subcommands.ExitUsageError
	}
	if c.name == "" {
		c.name = c.username
	}

	store, err := OpenStore()
	if err != nil {
		return fail(err)
	}
	defer store.Close()

	account, err := mali.NewAccounts(store).Register(c.username, c.credential, c.name)
	if err != nil {
		return fail(err)
	}
	fmt.Printf("Welcome %s, you are registered and logged in.\n", account.Name)
	return subcommands.ExitSuccess
}

// --- Login Command ---

type loginCmd struct {
	username   string
	credential string
}

func (*loginCmd) Name() string     { return "login" }
func (*loginCmd) Synopsis() string { return "log into an existing account" }
func (*loginCmd) Usage() string {
	return `mali login -u <username> -p <credential>

  Logs into the account matching both the username and the credential exactly.
`
}

func (c *loginCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.username, "u", "", "Username")
	f.StringVar(&c.credential, "p", "", "Credential")
}

func (c *loginCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.username == "" || c.credential == "" {
		f.Usage()
		return subcommands.ExitUsageError
	}

	store, err := OpenStore()
	if err != nil {
		return fail(err)
	}
	defer store.Close()

	account, err := mali.NewAccounts(store).Login(c.username, c.credential)
	if err != nil {
		return fail(err)
	}
	fmt.Printf("Welcome back %s.\n", account.Name)
	return subcommands.ExitSuccess
}

// --- Logout Command ---

type logoutCmd struct{}

func (*logoutCmd) Name() string     { return "logout" }
func (*logoutCmd) Synopsis() string { return "clear the current session" }
func (*logoutCmd) Usage() string {
	return `mali logout

  Clears the current session. Logging out twice is harmless.
`
}

func (*logoutCmd) SetFlags(_ *flag.FlagSet) {}

func (*logoutCmd) Execute(_ context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	store, err := OpenStore()
	if err != nil {
		return fail(err)
	}
	defer store.Close()

	if err := mali.NewAccounts(store).Logout(); err != nil {
		return fail(err)
	}
	fmt.Println("Logged out.")
	return subcommands.ExitSuccess
}

// --- Whoami Command ---

type whoamiCmd struct{}

func (*whoamiCmd) Name() string     { return "whoami" }
func (*whoamiCmd) Synopsis() string { return "show the logged-in account" }
func (*whoamiCmd) Usage() string {
	return `mali whoami

  Prints the display name and username of the current session.
`
}

func (*whoamiCmd) SetFlags(_ *flag.FlagSet) {}

func (*whoamiCmd) Execute(_ context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	store, err := OpenStore()
	if err != nil {
		return fail(err)
	}
	defer store.Close()

	account, err := CurrentAccount(store)
	if err != nil {
		return fail(err)
	}
	fmt.Printf("%s (%s)\n", account.Name, account.Username)
	return subcommands.ExitSuccess
}
