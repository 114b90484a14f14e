package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/etnz/mali"
	"github.com/google/subcommands"
)

// --- Add Command ---

type addCmd struct {
	direction    string
	amount       float64
	currency     string
	counterparty string
	memo         string
}

func (*addCmd) Name() string     { return "add" }
func (*addCmd) Synopsis() string { return "record a new debt or credit entry" }
func (*addCmd) Usage() string {
	return `mali add -t credit|debt -a <amount> -c <currency> -w <counterparty> [-m <memo>]

  Records a new entry for the logged-in account. "credit" means the
  counterparty owes you, "debt" means you owe them. The entry starts unpaid
  and pending.
`
}

func (c *addCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.direction, "t", "", "Entry direction: credit or debt")
	f.Float64Var(&c.amount, "a", 0, "Face amount, positive")
	f.StringVar(&c.currency, "c", "SAR", "Currency label (SAR, USD, ...)")
	f.StringVar(&c.counterparty, "w", "", "Counterparty name, the person involved")
	f.StringVar(&c.memo, "m", "", "An optional note for the entry")
}

func (c *addCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.direction == "" || c.amount <= 0 || c.counterparty == "" {
		f.Usage()
		return subcommands.ExitUsageError
	}
	direction, err := mali.ParseDirection(c.direction)
	if err != nil {
		return fail(err)
	}

	store, err := OpenStore()
	if err != nil {
		return fail(err)
	}
	defer store.Close()

	account, err := CurrentAccount(store)
	if err != nil {
		return fail(err)
	}

	entry, err := mali.NewLedger(store).CreateEntry(account.ID, direction, mali.M(c.amount, c.currency), c.counterparty, c.memo)
	if err != nil {
		return fail(err)
	}
	fmt.Printf("Recorded %s of %s with %s (entry %s)\n", entry.Direction, entry.Amount, entry.Counterparty, entry.ID)
	return subcommands.ExitSuccess
}

// --- Pay Command ---

type payCmd struct {
	entry  string
	amount float64
}

func (*payCmd) Name() string     { return "pay" }
func (*payCmd) Synopsis() string { return "record a payment against an entry" }
func (*payCmd) Usage() string {
	return `mali pay -i <entry-id> -a <amount>

  Adds a payment to the entry's running total, in the entry's own currency.
  Anything beyond the remaining balance is discarded; the entry settles when
  the total reaches the face amount.
`
}

func (c *payCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.entry, "i", "", "Entry identifier")
	f.Float64Var(&c.amount, "a", 0, "Payment amount, positive")
}

func (c *payCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.entry == "" || c.amount <= 0 {
		f.Usage()
		return subcommands.ExitUsageError
	}

	store, err := OpenStore()
	if err != nil {
		return fail(err)
	}
	defer store.Close()

	// Payments carry no currency of their own: the entry's currency applies.
	entry, err := mali.NewLedger(store).ApplyPayment(c.entry, mali.M(c.amount, ""))
	if err != nil {
		return fail(err)
	}
	if entry.Status == mali.Settled {
		fmt.Printf("Entry %s is now settled.\n", entry.ID)
	} else {
		fmt.Printf("Paid %s, %s remaining on entry %s.\n", entry.Paid, entry.Remaining(), entry.ID)
	}
	return subcommands.ExitSuccess
}

// --- Settle and Reopen Commands ---

type settleCmd struct {
	entry string
}

func (*settleCmd) Name() string     { return "settle" }
func (*settleCmd) Synopsis() string { return "force an entry settled" }
func (*settleCmd) Usage() string {
	return `mali settle -i <entry-id>

  Marks the entry settled and its face amount fully paid, regardless of the
  payments recorded so far.
`
}

func (c *settleCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.entry, "i", "", "Entry identifier")
}

func (c *settleCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	return overrideStatus(c.entry, mali.Settled, f)
}

type reopenCmd struct {
	entry string
}

func (*reopenCmd) Name() string     { return "reopen" }
func (*reopenCmd) Synopsis() string { return "put a settled entry back to pending" }
func (*reopenCmd) Usage() string {
	return `mali reopen -i <entry-id>

  Marks the entry pending again. The paid amount is kept, so the entry may
  reopen partially paid.
`
}

func (c *reopenCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.entry, "i", "", "Entry identifier")
}

func (c *reopenCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	return overrideStatus(c.entry, mali.Pending, f)
}

func overrideStatus(entryID string, status mali.Status, f *flag.FlagSet) subcommands.ExitStatus {
	if entryID == "" {
		f.Usage()
		return subcommands.ExitUsageError
	}

	store, err := OpenStore()
	if err != nil {
		return fail(err)
	}
	defer store.Close()

	entry, err := mali.NewLedger(store).SetStatus(entryID, status)
	if err != nil {
		return fail(err)
	}
	fmt.Printf("Entry %s is now %s (paid %s of %s).\n", entry.ID, entry.Status, entry.Paid, entry.Amount)
	return subcommands.ExitSuccess
}

// --- Remove Command ---

type rmCmd struct {
	entry string
}

func (*rmCmd) Name() string     { return "rm" }
func (*rmCmd) Synopsis() string { return "delete an entry for good" }
func (*rmCmd) Usage() string {
	return `mali rm -i <entry-id>

  Removes the entry unconditionally. Removing an unknown id is not an error.
`
}

func (c *rmCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.entry, "i", "", "Entry identifier")
}

func (c *rmCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.entry == "" {
		f.Usage()
		return subcommands.ExitUsageError
	}

	store, err := OpenStore()
	if err != nil {
		return fail(err)
	}
	defer store.Close()

	if err := mali.NewLedger(store).DeleteEntry(c.entry); err != nil {
		return fail(err)
	}
	fmt.Printf("Entry %s removed.\n", c.entry)
	return subcommands.ExitSuccess
}
