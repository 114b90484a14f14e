// Package renderer renders ledger state to markdown strings, ready to be
// printed raw or through a terminal markdown renderer.
package renderer

import (
	"bytes"
	"fmt"
	"time"

	"github.com/etnz/mali"
	md "github.com/nao1215/markdown"
)

// SummaryMarkdown renders the global figures and the per-counterparty table.
func SummaryMarkdown(name string, s mali.Summary, balances []mali.CounterpartyBalance) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(fmt.Sprintf("Ledger Summary for %s", name))
	doc.PlainText(fmt.Sprintf("Owed to you: %s | You owe: %s | Net: %s",
		s.TotalCredit, s.TotalDebt, s.Net))

	if len(balances) > 0 {
		doc.H2("By Counterparty")
		table := md.TableSet{
			Header: []string{"Counterparty", "Owed to you", "You owe", "Net"},
			Rows:   make([][]string, 0, len(balances)),
		}
		for _, b := range balances {
			table.Rows = append(table.Rows, []string{
				b.Counterparty, b.Credit.String(), b.Debt.String(), b.Net.String(),
			})
		}
		doc.Table(table)
	}

	return doc.String()
}

// EntriesMarkdown renders the entry list, assumed already ordered newest first.
func EntriesMarkdown(entries []mali.Entry) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Entries")
	if len(entries) == 0 {
		doc.PlainText("No entries yet.")
		return doc.String()
	}

	table := md.TableSet{
		Header: []string{"Id", "Created", "Direction", "Counterparty", "Amount", "Paid", "Remaining", "Status"},
		Rows:   make([][]string, 0, len(entries)),
	}
	for _, e := range entries {
		table.Rows = append(table.Rows, []string{
			e.ID,
			e.CreatedAt.Format(time.DateOnly),
			string(e.Direction),
			e.Counterparty,
			e.Amount.String(),
			e.Paid.String(),
			e.Remaining().String(),
			string(e.Status),
		})
	}
	doc.Table(table)

	return doc.String()
}

// CounterpartyMarkdown renders the detail view of a single counterparty.
func CounterpartyMarkdown(d mali.CounterpartyDetail) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(fmt.Sprintf("Counterparty %s", d.Counterparty))
	doc.PlainText(fmt.Sprintf("Owed to you: %s | You owe: %s | Net: %s",
		d.TotalCredit, d.TotalDebt, d.Net))

	if len(d.Entries) == 0 {
		doc.PlainText("No entries for this counterparty.")
		return doc.String()
	}

	table := md.TableSet{
		Header: []string{"Id", "Created", "Direction", "Amount", "Paid", "Remaining", "Status", "Note"},
		Rows:   make([][]string, 0, len(d.Entries)),
	}
	for _, e := range d.Entries {
		table.Rows = append(table.Rows, []string{
			e.ID,
			e.CreatedAt.Format(time.DateOnly),
			string(e.Direction),
			e.Amount.String(),
			e.Paid.String(),
			e.Remaining().String(),
			string(e.Status),
			e.Description,
		})
	}
	doc.Table(table)

	return doc.String()
}
