package advisor

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/etnz/mali"
)

func pendingEntry(id string, dir mali.Direction, amount, paid float64, counterparty string) mali.Entry {
	return mali.Entry{
		ID:           id,
		Account:      "acc-1",
		Direction:    dir,
		Amount:       mali.M(amount, "SAR"),
		Paid:         mali.M(paid, "SAR"),
		Counterparty: counterparty,
		Status:       mali.Pending,
	}
}

func TestAdvisor_Request(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "test-key")

	testCases := []struct {
		name     string
		generate func(ctx context.Context, prompt string) (string, error)
		want     string
	}{
		{
			name: "successful generation",
			generate: func(_ context.Context, _ string) (string, error) {
				return "Pay Ahmed first.", nil
			},
			want: "Pay Ahmed first.",
		},
		{
			name: "generation failure resolves to a message",
			generate: func(_ context.Context, _ string) (string, error) {
				return "", errors.New("boom")
			},
			want: msgFailed,
		},
		{
			name: "empty generation resolves to a message",
			generate: func(_ context.Context, _ string) (string, error) {
				return "", nil
			},
			want: msgNothingCameOut,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			a := &Advisor{generate: tc.generate}
			got := a.Request(context.Background(), nil, "Fatima")
			if got != tc.want {
				t.Errorf("Request() = %q, want %q", got, tc.want)
			}
		})
	}
}

func TestAdvisor_Request_NotConfigured(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "")

	// The generator must never be reached without a key.
	a := &Advisor{generate: func(_ context.Context, _ string) (string, error) {
		t.Fatal("generate called without GEMINI_API_KEY")
		return "", nil
	}}
	if got := a.Request(context.Background(), nil, "Fatima"); got != msgNotConfigured {
		t.Errorf("Request() = %q, want %q", got, msgNotConfigured)
	}
}

func TestNewSnapshot(t *testing.T) {
	entries := []mali.Entry{
		pendingEntry("1", mali.Debt, 100, 30, "Ahmed"),
		pendingEntry("2", mali.Credit, 50, 0, "Sara"),
		{
			ID:           "3",
			Account:      "acc-1",
			Direction:    mali.Debt,
			Amount:       mali.M(40, "SAR"),
			Paid:         mali.M(40, "SAR"),
			Counterparty: "Omar",
			Status:       mali.Settled,
		},
	}

	got := newSnapshot(entries, "Fatima")
	if got.DisplayName != "Fatima" {
		t.Errorf("DisplayName = %q, want %q", got.DisplayName, "Fatima")
	}
	// Settled entries never leave the ledger.
	if got.PendingCount != 2 {
		t.Errorf("PendingCount = %d, want 2", got.PendingCount)
	}
	if got.TotalDebtRemaining != "70" {
		t.Errorf("TotalDebtRemaining = %q, want %q", got.TotalDebtRemaining, "70")
	}
	if got.TotalCreditRemaining != "50" {
		t.Errorf("TotalCreditRemaining = %q, want %q", got.TotalCreditRemaining, "50")
	}
	if len(got.Sample) != 2 {
		t.Fatalf("Sample has %d entries, want 2", len(got.Sample))
	}
	if got.Sample[0].Remaining != "70" || got.Sample[0].Counterparty != "Ahmed" {
		t.Errorf("Sample[0] = %+v, want Ahmed with 70 remaining", got.Sample[0])
	}
}

func TestNewSnapshot_SampleIsBounded(t *testing.T) {
	var entries []mali.Entry
	for i := 0; i < sampleCap+3; i++ {
		entries = append(entries, pendingEntry(string(rune('a'+i)), mali.Debt, 10, 0, "Ahmed"))
	}

	got := newSnapshot(entries, "Fatima")
	if got.PendingCount != sampleCap+3 {
		t.Errorf("PendingCount = %d, want %d", got.PendingCount, sampleCap+3)
	}
	if len(got.Sample) != sampleCap {
		t.Errorf("Sample has %d entries, want capped at %d", len(got.Sample), sampleCap)
	}
}

func TestPrompt(t *testing.T) {
	s := newSnapshot([]mali.Entry{pendingEntry("1", mali.Debt, 100, 30, "Ahmed")}, "Fatima")
	p := prompt(s)

	for _, want := range []string{"Fatima", "Ahmed", `"pendingCount": 1`, "under 200 words"} {
		if !strings.Contains(p, want) {
			t.Errorf("prompt does not mention %q:\n%s", want, p)
		}
	}
}
