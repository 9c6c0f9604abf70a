package financeRepository

import (
	"testing"

	"github.com/Fahmimenjadihengker/YourMoment-sub001/internal/api/finance"
)

func TestMakeTotals(t *testing.T) {
	rows := []categoryTotalDB{
		{Type: "income", Category: "uang saku", Total: 2_000_000},
		{Type: "income", Category: "bonus", Total: 500_000},
		{Type: "expense", Category: "makanan", Total: 900_000},
		{Type: "expense", Category: "transportasi", Total: 300_000},
	}

	got := makeTotals(finance.PeriodMonth, rows)
	if got.Income != 2_500_000 || got.Expense != 1_200_000 || got.Net() != 1_300_000 {
		t.Errorf("unexpected totals %+v", got)
	}
	if got.ByCategory["makanan"] != 900_000 || len(got.ByCategory) != 2 {
		t.Errorf("unexpected categories %v", got.ByCategory)
	}
}

func TestPeriodFilters(t *testing.T) {
	for _, p := range []string{finance.PeriodAll, finance.PeriodWeek, finance.PeriodMonth} {
		if _, ok := periodFilters[p]; !ok {
			t.Errorf("missing filter for %q", p)
		}
	}
	if _, ok := periodFilters["year"]; ok {
		t.Error("unexpected filter for year")
	}
}
