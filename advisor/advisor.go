// Package advisor turns a ledger snapshot into a short piece of financial
// advice, generated by Gemini.
//
// Its single contract point is Request, which always resolves to a string:
// configuration, transport and generation failures all collapse to fixed
// user-facing messages, never to an error. Advice is a nicety on top of the
// ledger, so its failure must never look like a ledger failure.
package advisor

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"

	"github.com/etnz/mali"
	"google.golang.org/genai"
)

const model = "gemini-2.5-flash"

// sampleCap bounds the number of pending entries quoted in the prompt.
const sampleCap = 5

// The fixed resolutions of every failure path.
const (
	msgNotConfigured  = "Sorry, the assistant is not configured. Set GEMINI_API_KEY to enable advice."
	msgFailed         = "Something went wrong while talking to the assistant. Your ledger is unaffected, try again later."
	msgNothingCameOut = "I could not come up with advice right now."
)

// Advisor requests financial advice from a text-generation service.
type Advisor struct {
	// generate performs the actual call. Swapped out in tests.
	generate func(ctx context.Context, prompt string) (string, error)
}

// New creates an Advisor backed by Gemini.
func New() *Advisor {
	return &Advisor{generate: geminiGenerate}
}

// Request builds a bounded snapshot of the entries and asks the service for
// advice addressed to displayName. It never fails: every error path resolves
// to a fixed message, so callers can display the result unconditionally.
func (a *Advisor) Request(ctx context.Context, entries []mali.Entry, displayName string) string {
	if os.Getenv("GEMINI_API_KEY") == "" {
		return msgNotConfigured
	}

	text, err := a.generate(ctx, prompt(newSnapshot(entries, displayName)))
	if err != nil {
		// The ledger does not care why: late or cancelled responses are
		// discarded the same way as transport failures.
		log.Printf("advice generation failed: %v", err)
		return msgFailed
	}
	if text == "" {
		return msgNothingCameOut
	}
	return text
}

// geminiGenerate performs a one-shot generation call against Gemini.
// The client reads GEMINI_API_KEY from the environment.
func geminiGenerate(ctx context.Context, prompt string) (string, error) {
	client, err := genai.NewClient(ctx, nil)
	if err != nil {
		return "", fmt.Errorf("could not create Gemini client: %w", err)
	}
	resp, err := client.Models.GenerateContent(ctx, model, genai.Text(prompt), nil)
	if err != nil {
		return "", fmt.Errorf("generation call failed: %w", err)
	}
	return resp.Text(), nil
}

// snapshot is the bounded view of the ledger handed to the service. It quotes
// remaining totals and at most sampleCap pending entries; settled entries are
// already closed and never leave the ledger.
type snapshot struct {
	DisplayName          string        `json:"displayName"`
	PendingCount         int           `json:"pendingCount"`
	TotalDebtRemaining   string        `json:"totalDebtRemaining"`
	TotalCreditRemaining string        `json:"totalCreditRemaining"`
	Sample               []sampleEntry `json:"sample"`
}

type sampleEntry struct {
	Direction    string `json:"direction"`
	Total        string `json:"total"`
	Paid         string `json:"paid"`
	Remaining    string `json:"remaining"`
	Currency     string `json:"currency"`
	Counterparty string `json:"counterparty"`
}

func newSnapshot(entries []mali.Entry, displayName string) snapshot {
	var pending []mali.Entry
	for _, e := range entries {
		if e.Status == mali.Pending {
			pending = append(pending, e)
		}
	}

	summary := mali.NewSummary(pending)
	s := snapshot{
		DisplayName:          displayName,
		PendingCount:         len(pending),
		TotalDebtRemaining:   summary.TotalDebt.String(),
		TotalCreditRemaining: summary.TotalCredit.String(),
	}

	for _, e := range pending {
		if len(s.Sample) == sampleCap {
			break
		}
		s.Sample = append(s.Sample, sampleEntry{
			Direction:    string(e.Direction),
			Total:        e.Amount.Decimal().String(),
			Paid:         e.Paid.Decimal().String(),
			Remaining:    e.Remaining().Decimal().String(),
			Currency:     e.Amount.Currency(),
			Counterparty: e.Counterparty,
		})
	}
	return s
}

func prompt(s snapshot) string {
	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		// The snapshot is plain strings and ints, this cannot happen.
		data = []byte("{}")
	}
	return fmt.Sprintf(`You are the financial assistant of a personal debt ledger. The user's name is %s.

Current finances, as remaining balances (amounts in mixed currencies are listed
as raw numbers, do not convert them):

%s

Please:
1. Give a quick summary of the user's position.
2. If some debts are partially paid, encourage finishing them.
3. If several currencies appear, suggest one practical way to keep them tidy.

Keep the answer useful and under 200 words.`, s.DisplayName, data)
}
