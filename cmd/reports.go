package cmd

import (
	"context"
	"flag"

	"github.com/etnz/mali"
	"github.com/etnz/mali/renderer"
	"github.com/google/subcommands"
)

// --- List Command ---

type listCmd struct{}

func (*listCmd) Name() string     { return "list" }
func (*listCmd) Synopsis() string { return "list the account's entries, newest first" }
func (*listCmd) Usage() string {
	return `mali list

  Lists every entry of the logged-in account, newest first, with the paid and
  remaining amounts and the settlement status.
`
}

func (*listCmd) SetFlags(_ *flag.FlagSet) {}

func (*listCmd) Execute(_ context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	store, err := OpenStore()
	if err != nil {
		return fail(err)
	}
	defer store.Close()

	account, err := CurrentAccount(store)
	if err != nil {
		return fail(err)
	}

	entries, err := mali.NewLedger(store).Entries(account.ID)
	if err != nil {
		return fail(err)
	}
	printMarkdown(renderer.EntriesMarkdown(entries))
	return subcommands.ExitSuccess
}

// --- Summary Command ---

type summaryCmd struct{}

func (*summaryCmd) Name() string     { return "summary" }
func (*summaryCmd) Synopsis() string { return "display the global and per-counterparty balances" }
func (*summaryCmd) Usage() string {
	return `mali summary

  Displays the remaining balances of pending entries: what is owed to you,
  what you owe, the net, and the same figures per counterparty ordered by
  how much is at stake. Settled entries count for nothing. Amounts in
  different currencies are summed as raw numbers, without conversion.
`
}

func (*summaryCmd) SetFlags(_ *flag.FlagSet) {}

func (*summaryCmd) Execute(_ context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	store, err := OpenStore()
	if err != nil {
		return fail(err)
	}
	defer store.Close()

	account, err := CurrentAccount(store)
	if err != nil {
		return fail(err)
	}

	ledger := mali.NewLedger(store)
	summary, err := ledger.GlobalSummary(account.ID)
	if err != nil {
		return fail(err)
	}
	balances, err := ledger.PerCounterparty(account.ID)
	if err != nil {
		return fail(err)
	}
	printMarkdown(renderer.SummaryMarkdown(account.Name, summary, balances))
	return subcommands.ExitSuccess
}

// --- Counterparty Command ---

type counterpartyCmd struct{}

func (*counterpartyCmd) Name() string     { return "counterparty" }
func (*counterpartyCmd) Synopsis() string { return "display every entry of one counterparty" }
func (*counterpartyCmd) Usage() string {
	return `mali counterparty <name>

  Displays every entry involving that exact counterparty name, any status,
  plus the pending-only balances with them.
`
}

func (*counterpartyCmd) SetFlags(_ *flag.FlagSet) {}

func (*counterpartyCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		f.Usage()
		return subcommands.ExitUsageError
	}
	name := f.Arg(0)

	store, err := OpenStore()
	if err != nil {
		return fail(err)
	}
	defer store.Close()

	account, err := CurrentAccount(store)
	if err != nil {
		return fail(err)
	}

	detail, err := mali.NewLedger(store).CounterpartyDetail(account.ID, name)
	if err != nil {
		return fail(err)
	}
	printMarkdown(renderer.CounterpartyMarkdown(detail))
	return subcommands.ExitSuccess
}
