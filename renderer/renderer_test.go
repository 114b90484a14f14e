package renderer

import (
	"strings"
	"testing"
	"time"

	"github.com/etnz/mali"
	"github.com/shopspring/decimal"
)

func TestSummaryMarkdown(t *testing.T) {
	s := mali.Summary{
		TotalCredit: decimal.NewFromInt(120),
		TotalDebt:   decimal.NewFromInt(50),
		Net:         decimal.NewFromInt(70),
	}
	balances := []mali.CounterpartyBalance{
		{Counterparty: "Ahmed", Credit: decimal.NewFromInt(120), Debt: decimal.Zero, Net: decimal.NewFromInt(120)},
		{Counterparty: "Sara", Credit: decimal.Zero, Debt: decimal.NewFromInt(50), Net: decimal.NewFromInt(-50)},
	}

	got := SummaryMarkdown("Fatima", s, balances)

	for _, want := range []string{
		"# Ledger Summary for Fatima",
		"Owed to you: 120 | You owe: 50 | Net: 70",
		"## By Counterparty",
		"| Ahmed",
		"| Sara",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("SummaryMarkdown() does not contain %q:\n%s", want, got)
		}
	}

	// Without balances there is no table section.
	got = SummaryMarkdown("Fatima", s, nil)
	if strings.Contains(got, "## By Counterparty") {
		t.Errorf("SummaryMarkdown() with no balances still renders the table:\n%s", got)
	}
}

func TestEntriesMarkdown(t *testing.T) {
	entries := []mali.Entry{
		{
			ID:           "e-1",
			Account:      "acc-1",
			Direction:    mali.Debt,
			Amount:       mali.M(100, "SAR"),
			Paid:         mali.M(30, "SAR"),
			Counterparty: "Ahmed",
			CreatedAt:    time.Date(2026, time.March, 1, 12, 0, 0, 0, time.UTC),
			Status:       mali.Pending,
		},
	}

	got := EntriesMarkdown(entries)
	for _, want := range []string{"# Entries", "e-1", "2026-03-01", "debt", "Ahmed", "pending"} {
		if !strings.Contains(got, want) {
			t.Errorf("EntriesMarkdown() does not contain %q:\n%s", want, got)
		}
	}

	if got := EntriesMarkdown(nil); !strings.Contains(got, "No entries yet.") {
		t.Errorf("EntriesMarkdown(nil) = %q, want the empty notice", got)
	}
}

func TestCounterpartyMarkdown(t *testing.T) {
	detail := mali.CounterpartyDetail{
		Counterparty: "Ahmed",
		Entries: []mali.Entry{
			{
				ID:           "e-1",
				Account:      "acc-1",
				Direction:    mali.Credit,
				Amount:       mali.M(100, "SAR"),
				Paid:         mali.M(100, "SAR"),
				Counterparty: "Ahmed",
				Description:  "lunch",
				CreatedAt:    time.Date(2026, time.March, 1, 12, 0, 0, 0, time.UTC),
				Status:       mali.Settled,
			},
		},
		Summary: mali.Summary{
			TotalCredit: decimal.Zero,
			TotalDebt:   decimal.Zero,
			Net:         decimal.Zero,
		},
	}

	got := CounterpartyMarkdown(detail)
	for _, want := range []string{"# Counterparty Ahmed", "settled", "lunch"} {
		if !strings.Contains(got, want) {
			t.Errorf("CounterpartyMarkdown() does not contain %q:\n%s", want, got)
		}
	}

	detail.Entries = nil
	if got := CounterpartyMarkdown(detail); !strings.Contains(got, "No entries for this counterparty.") {
		t.Errorf("CounterpartyMarkdown() without entries = %q, want the empty notice", got)
	}
}
