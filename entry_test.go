package mali

import (
	"encoding/json"
	"testing"
	"time"
)

func TestParseDirection(t *testing.T) {
	testCases := []struct {
		in      string
		want    Direction
		wantErr bool
	}{
		{in: "credit", want: Credit},
		{in: "debt", want: Debt},
		{in: "Credit", wantErr: true},
		{in: "loan", wantErr: true},
		{in: "", wantErr: true},
	}
	for _, tc := range testCases {
		got, err := ParseDirection(tc.in)
		if tc.wantErr {
			if err == nil {
				t.Errorf("ParseDirection(%q) = %q, want error", tc.in, got)
			}
			continue
		}
		if err != nil || got != tc.want {
			t.Errorf("ParseDirection(%q) = %q, %v, want %q", tc.in, got, err, tc.want)
		}
	}
}

func TestParseStatus(t *testing.T) {
	testCases := []struct {
		in      string
		want    Status
		wantErr bool
	}{
		{in: "pending", want: Pending},
		{in: "settled", want: Settled},
		{in: "open", wantErr: true},
		{in: "", wantErr: true},
	}
	for _, tc := range testCases {
		got, err := ParseStatus(tc.in)
		if tc.wantErr {
			if err == nil {
				t.Errorf("ParseStatus(%q) = %q, want error", tc.in, got)
			}
			continue
		}
		if err != nil || got != tc.want {
			t.Errorf("ParseStatus(%q) = %q, %v, want %q", tc.in, got, err, tc.want)
		}
	}
}

func TestEntry_Remaining(t *testing.T) {
	testCases := []struct {
		name   string
		amount float64
		paid   float64
		want   Money
	}{
		{name: "unpaid", amount: 100, paid: 0, want: M(100, "SAR")},
		{name: "partially paid", amount: 100, paid: 30, want: M(70, "SAR")},
		{name: "fully paid", amount: 100, paid: 100, want: M(0, "SAR")},
		{name: "overpaid floors at zero", amount: 100, paid: 120, want: M(0, "SAR")},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			e := Entry{Amount: M(tc.amount, "SAR"), Paid: M(tc.paid, "SAR")}
			if got := e.Remaining(); !got.Equal(tc.want) {
				t.Errorf("Remaining() = %s, want %s", got, tc.want)
			}
		})
	}
}

func TestEntry_JSON(t *testing.T) {
	entry := Entry{
		ID:           "e-1",
		Account:      "acc-1",
		Direction:    Debt,
		Amount:       M(100, "SAR"),
		Paid:         M(25.5, "SAR"),
		Counterparty: "Ahmed",
		Description:  "lunch",
		CreatedAt:    time.Date(2026, time.March, 1, 12, 0, 0, 0, time.UTC),
		Status:       Pending,
	}

	got, err := json.Marshal(entry)
	if err != nil {
		t.Fatalf("Marshal() failed: %v", err)
	}
	want := `{"id":"e-1","account":"acc-1","direction":"debt","amount":100,"paid":25.5,"currency":"SAR","counterparty":"Ahmed","description":"lunch","createdAt":"2026-03-01T12:00:00Z","status":"pending"}`
	if string(got) != want {
		t.Errorf("Marshal() = %s, want %s", got, want)
	}

	var back Entry
	if err := json.Unmarshal(got, &back); err != nil {
		t.Fatalf("Unmarshal() failed: %v", err)
	}
	if !back.Equal(entry) {
		t.Errorf("round trip = %+v, want %+v", back, entry)
	}

	// The description field is omitted when empty.
	entry.Description = ""
	got, err = json.Marshal(entry)
	if err != nil {
		t.Fatalf("Marshal() failed: %v", err)
	}
	want = `{"id":"e-1","account":"acc-1","direction":"debt","amount":100,"paid":25.5,"currency":"SAR","counterparty":"Ahmed","createdAt":"2026-03-01T12:00:00Z","status":"pending"}`
	if string(got) != want {
		t.Errorf("Marshal() without description = %s, want %s", got, want)
	}
}
