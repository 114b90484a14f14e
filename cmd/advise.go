package cmd

import (
	"context"
	"flag"

	"github.com/etnz/mali"
	"github.com/etnz/mali/advisor"
	"github.com/google/subcommands"
)

// adviseCmd asks the assistant for advice on the current ledger.
type adviseCmd struct{}

func (*adviseCmd) Name() string     { return "advise" }
func (*adviseCmd) Synopsis() string { return "ask the assistant for advice on your ledger" }
func (*adviseCmd) Usage() string {
	return `mali advise

  Sends a bounded snapshot of your pending entries to Gemini and prints the
  advice. Requires GEMINI_API_KEY; without it, or on any service failure, a
  short notice is printed instead.
`
}

func (*adviseCmd) SetFlags(_ *flag.FlagSet) {}

func (*adviseCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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

	// Request never fails: failures resolve to a printable notice.
	printMarkdown(advisor.New().Request(ctx, entries, account.Name))
	return subcommands.ExitSuccess
}
