package simulation

import (
	"errors"
	"strings"
	"testing"
	"time"
)

func fixedClock() time.Time {
	return time.Date(2026, time.January, 15, 9, 0, 0, 0, time.UTC)
}

func TestSimulate_PeriodsNeeded(t *testing.T) {
	tests := []struct {
		name      string
		target    int64
		recurring int64
		unit      PeriodUnit
		balance   int64
		want      int64
		status    Status
	}{
		{"exact division", 10_000_000, 2_000_000, PeriodMonth, 0, 5, StatusReachable},
		{"rounds up half period", 1_000_000, 2_000_000, PeriodMonth, 0, 1, StatusReachable},
		{"balance reduces remaining", 10_000_000, 2_000_000, PeriodMonth, 3_000_000, 4, StatusReachable},
		{"weekly saving", 500_000, 100_000, PeriodWeek, 0, 5, StatusReachable},
		{"daily saving", 300_000, 20_000, PeriodDay, 0, 15, StatusReachable},
		{"empty unit means month", 6_000_000, 1_000_000, "", 0, 6, StatusReachable},
		{"already met", 5_000_000, 1_000_000, PeriodMonth, 5_000_000, 0, StatusCompleted},
		{"balance above target", 5_000_000, 1_000_000, PeriodMonth, 9_000_000, 0, StatusCompleted},
		{"negative balance adds to remaining", 5, 3, PeriodMonth, -10, 5, StatusReachable},
		{"wallet in deficit", 6_000_000, 1_000_000, PeriodMonth, -500_000, 7, StatusReachable},
		{"beyond ten years", 1_000_000_000, 100_000, PeriodMonth, 0, 10_000, StatusUnreachable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Simulate(tt.target, tt.recurring, tt.unit, tt.balance)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got.PeriodsNeeded != tt.want {
				t.Errorf("PeriodsNeeded = %d, want %d", got.PeriodsNeeded, tt.want)
			}
			if got.Status != tt.status {
				t.Errorf("Status = %s, want %s", got.Status, tt.status)
			}
			if got.Narrative == "" {
				t.Error("expected a narrative")
			}
		})
	}
}

func TestSimulate_DeficitNarrative(t *testing.T) {
	got, err := Simulate(6_000_000, 1_000_000, PeriodMonth, -500_000)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Remaining != 6_500_000 {
		t.Errorf("Remaining = %d, want 6500000", got.Remaining)
	}
	if !strings.Contains(got.Narrative, "Saldo kamu sedang minus Rp500.000, jadi yang perlu dikumpulkan Rp6.500.000.") {
		t.Errorf("narrative should mention the deficit, got %q", got.Narrative)
	}
}

func TestSimulate_InvalidSavingRate(t *testing.T) {
	for _, rate := range []int64{0, -50_000} {
		got, err := Simulate(10_000_000, rate, PeriodMonth, 0)
		if !errors.Is(err, ErrInvalidSavingRate) {
			t.Fatalf("rate %d: expected ErrInvalidSavingRate, got %v", rate, err)
		}
		if got.Status != StatusInvalidRate {
			t.Errorf("rate %d: Status = %s", rate, got.Status)
		}
		if !strings.Contains(got.Narrative, "belum valid") {
			t.Errorf("rate %d: narrative should ask for a valid saving amount, got %q", rate, got.Narrative)
		}
	}
}

func TestSimulate_InvalidInput(t *testing.T) {
	if _, err := Simulate(0, 1_000_000, PeriodMonth, 0); !errors.Is(err, ErrInvalidTarget) {
		t.Errorf("expected ErrInvalidTarget, got %v", err)
	}
	if _, err := Simulate(1_000_000, 1_000_000, "year", 0); !errors.Is(err, ErrInvalidPeriodUnit) {
		t.Errorf("expected ErrInvalidPeriodUnit, got %v", err)
	}
}

func TestCalculator_ProjectedDate(t *testing.T) {
	calc := NewCalculatorWithClock(fixedClock)

	got, err := calc.Simulate(Input{Target: 10_000_000, Recurring: 2_000_000, Unit: PeriodMonth, GoalName: "laptop"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := time.Date(2026, time.June, 15, 9, 0, 0, 0, time.UTC)
	if got.ProjectedCompletionDate == nil || !got.ProjectedCompletionDate.Equal(want) {
		t.Fatalf("ProjectedCompletionDate = %v, want %v", got.ProjectedCompletionDate, want)
	}
	for _, part := range []string{"target laptop", "5 bulan", "Juni 2026", "Rp2.000.000", "Rp10.000.000"} {
		if !strings.Contains(got.Narrative, part) {
			t.Errorf("narrative %q does not contain %q", got.Narrative, part)
		}
	}

	weekly, err := calc.Simulate(Input{Target: 500_000, Recurring: 100_000, Unit: PeriodWeek})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	wantWeekly := fixedClock().AddDate(0, 0, 35)
	if !weekly.ProjectedCompletionDate.Equal(wantWeekly) {
		t.Errorf("weekly date = %v, want %v", weekly.ProjectedCompletionDate, wantWeekly)
	}
}

func TestSimulate_NarrativeOrder(t *testing.T) {
	completed, _ := Simulate(1_000_000, 0, PeriodMonth, 2_000_000)
	if completed.Status != StatusCompleted || !strings.Contains(completed.Narrative, "sudah tercapai") {
		t.Errorf("completed goal should win over an invalid rate, got %s: %q", completed.Status, completed.Narrative)
	}

	far, _ := Simulate(1_000_000_000, 100_000, PeriodMonth, 0)
	if far.ProjectedCompletionDate != nil {
		t.Error("unreachable goal should not carry a projected date")
	}
	if !strings.Contains(far.Narrative, "lebih dari 10 tahun") {
		t.Errorf("unexpected unreachable narrative %q", far.Narrative)
	}

	quick, _ := Simulate(3_000_000, 1_000_000, PeriodMonth, 0)
	if !strings.HasPrefix(quick.Narrative, "Kabar baik!") {
		t.Errorf("three months should use the quick band, got %q", quick.Narrative)
	}

	long, _ := Simulate(30_000_000, 1_000_000, PeriodMonth, 0)
	if !strings.Contains(long.Narrative, "30 bulan (2 tahun 6 bulan)") {
		t.Errorf("long duration should be spelled out in years, got %q", long.Narrative)
	}
}

func TestFormatRupiah(t *testing.T) {
	tests := map[int64]string{
		0:          "Rp0",
		999:        "Rp999",
		1_500:      "Rp1.500",
		15_000_000: "Rp15.000.000",
		-250_000:   "-Rp250.000",
	}
	for in, want := range tests {
		if got := FormatRupiah(in); got != want {
			t.Errorf("FormatRupiah(%d) = %q, want %q", in, got, want)
		}
	}
}
