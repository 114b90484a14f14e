package mali

import (
	"fmt"
	"sort"

	"github.com/shopspring/decimal"
)

// Summary holds the global figures of an account: the remaining balances of
// its pending entries, netted.
//
// Sums deliberately ignore the currency label: mixed currencies are added as
// raw numbers, without conversion. That is a documented limitation of the
// tool, which is why the figures are bare decimals and not Money.
type Summary struct {
	TotalCredit decimal.Decimal // remaining owed to the user
	TotalDebt   decimal.Decimal // remaining owed by the user
	Net         decimal.Decimal // TotalCredit - TotalDebt
}

// CounterpartyBalance holds the same three figures for a single counterparty.
type CounterpartyBalance struct {
	Counterparty string
	Credit       decimal.Decimal
	Debt         decimal.Decimal
	Net          decimal.Decimal
}

// CounterpartyDetail is the full view of one counterparty: every entry (any
// status) plus the pending-only figures.
type CounterpartyDetail struct {
	Counterparty string
	Entries      []Entry
	Summary
}

// NewSummary computes the global figures over a list of entries. Settled
// entries contribute exactly zero: their economic effect is already closed.
func NewSummary(entries []Entry) Summary {
	s := Summary{
		TotalCredit: decimal.Zero,
		TotalDebt:   decimal.Zero,
	}
	for _, e := range entries {
		if e.Status != Pending {
			continue
		}
		switch e.Direction {
		case Credit:
			s.TotalCredit = s.TotalCredit.Add(e.Remaining().Decimal())
		case Debt:
			s.TotalDebt = s.TotalDebt.Add(e.Remaining().Decimal())
		}
	}
	s.Net = s.TotalCredit.Sub(s.TotalDebt)
	return s
}

// NewCounterpartyBalances groups entries by exact counterparty name and
// computes the per-group figures.
//
// Grouping considers every entry, so a counterparty with only settled history
// still appears, at zero. Only pending entries feed the sums. The result is
// ordered by descending absolute net; ties keep the first-encounter order of
// the input, which makes the sort stable with respect to the caller's order.
func NewCounterpartyBalances(entries []Entry) []CounterpartyBalance {
	index := make(map[string]int)
	var out []CounterpartyBalance

	for _, e := range entries {
		i, ok := index[e.Counterparty]
		if !ok {
			i = len(out)
			index[e.Counterparty] = i
			out = append(out, CounterpartyBalance{
				Counterparty: e.Counterparty,
				Credit:       decimal.Zero,
				Debt:         decimal.Zero,
			})
		}
		if e.Status != Pending {
			continue
		}
		switch e.Direction {
		case Credit:
			out[i].Credit = out[i].Credit.Add(e.Remaining().Decimal())
		case Debt:
			out[i].Debt = out[i].Debt.Add(e.Remaining().Decimal())
		}
	}

	for i := range out {
		out[i].Net = out[i].Credit.Sub(out[i].Debt)
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Net.Abs().GreaterThan(out[j].Net.Abs())
	})
	return out
}

// NewCounterpartyDetail extracts every entry for one exact counterparty name
// along with the pending-only figures for that name.
func NewCounterpartyDetail(entries []Entry, name string) CounterpartyDetail {
	var own []Entry
	for _, e := range entries {
		if e.Counterparty == name {
			own = append(own, e)
		}
	}
	return CounterpartyDetail{
		Counterparty: name,
		Entries:      own,
		Summary:      NewSummary(own),
	}
}

// GlobalSummary computes the account's global figures from the store.
func (l *Ledger) GlobalSummary(accountID string) (Summary, error) {
	entries, err := l.Entries(accountID)
	if err != nil {
		return Summary{}, fmt.Errorf("could not summarize account: %w", err)
	}
	return NewSummary(entries), nil
}

// PerCounterparty computes the account's per-counterparty balances from the store.
func (l *Ledger) PerCounterparty(accountID string) ([]CounterpartyBalance, error) {
	entries, err := l.Entries(accountID)
	if err != nil {
		return nil, fmt.Errorf("could not summarize account: %w", err)
	}
	return NewCounterpartyBalances(entries), nil
}

// CounterpartyDetail computes the full view of one counterparty from the store.
func (l *Ledger) CounterpartyDetail(accountID, name string) (CounterpartyDetail, error) {
	entries, err := l.Entries(accountID)
	if err != nil {
		return CounterpartyDetail{}, fmt.Errorf("could not summarize account: %w", err)
	}
	return NewCounterpartyDetail(entries, name), nil
}
