package simulation

import (
	"errors"
	"time"
)

type PeriodUnit string

const (
	PeriodDay   PeriodUnit = "day"
	PeriodWeek  PeriodUnit = "week"
	PeriodMonth PeriodUnit = "month"
)

func (u PeriodUnit) Valid() bool {
	switch u {
	case PeriodDay, PeriodWeek, PeriodMonth:
		return true
	default:
		return false
	}
}

type Status string

const (
	StatusCompleted     Status = "completed"
	StatusReachable     Status = "reachable"
	StatusUnreachable   Status = "unreachable"
	StatusInvalidRate   Status = "invalid_saving_rate"
	StatusInvalidTarget Status = "invalid_target"
)

var (
	ErrInvalidSavingRate = errors.New("saving rate must be greater than zero")
	ErrInvalidTarget     = errors.New("target amount must be greater than zero")
	ErrInvalidPeriodUnit = errors.New("period unit must be day, week or month")
)

// Horizon beyond which a goal is reported as unreachable, per unit.
var horizon = map[PeriodUnit]int64{
	PeriodDay:   3650,
	PeriodWeek:  520,
	PeriodMonth: 120,
}

type Input struct {
	Target         int64
	Recurring      int64
	Unit           PeriodUnit
	CurrentBalance int64
	GoalName       string
}

type Outcome struct {
	PeriodsNeeded           int64      `json:"periods_needed"`
	PeriodUnit              PeriodUnit `json:"period_unit"`
	Target                  int64      `json:"target"`
	Recurring               int64      `json:"recurring"`
	CurrentBalance          int64      `json:"current_balance"`
	Remaining               int64      `json:"remaining"`
	ProjectedCompletionDate *time.Time `json:"projected_completion_date,omitempty"`
	Status                  Status     `json:"status"`
	Narrative               string     `json:"narrative"`
}

type Calculator struct {
	now func() time.Time
}

func NewCalculator() *Calculator {
	return &Calculator{now: time.Now}
}

// NewCalculatorWithClock pins the reference time used for projected dates.
func NewCalculatorWithClock(now func() time.Time) *Calculator {
	return &Calculator{now: now}
}

var defaultCalculator = NewCalculator()

// Simulate projects how many periods of saving `recurring` are needed to
// reach `target` starting from `currentBalance`. An empty unit means month.
// A negative balance is a deficit that has to be saved back first.
func Simulate(target, recurring int64, unit PeriodUnit, currentBalance int64) (Outcome, error) {
	return defaultCalculator.Simulate(Input{
		Target:         target,
		Recurring:      recurring,
		Unit:           unit,
		CurrentBalance: currentBalance,
	})
}

// Simulate never divides by a non-positive rate: the outcome then carries a
// user-facing narrative and the matching error.
func (c *Calculator) Simulate(in Input) (Outcome, error) {
	if in.Unit == "" {
		in.Unit = PeriodMonth
	}
	if !in.Unit.Valid() {
		return Outcome{}, ErrInvalidPeriodUnit
	}

	out := Outcome{
		PeriodUnit:     in.Unit,
		Target:         in.Target,
		Recurring:      in.Recurring,
		CurrentBalance: in.CurrentBalance,
	}

	if in.Target <= 0 {
		out.Status = StatusInvalidTarget
		out.Narrative = narrativeInvalidTarget()
		return out, ErrInvalidTarget
	}

	out.Remaining = max(0, in.Target-in.CurrentBalance)

	if out.Remaining == 0 {
		now := c.now()
		out.Status = StatusCompleted
		out.ProjectedCompletionDate = &now
		out.Narrative = narrativeFor(in, out)
		return out, nil
	}

	if in.Recurring <= 0 {
		out.Status = StatusInvalidRate
		out.Narrative = narrativeInvalidRate(in.Unit)
		return out, ErrInvalidSavingRate
	}

	out.PeriodsNeeded = ceilDiv(out.Remaining, in.Recurring)
	if out.PeriodsNeeded > horizon[in.Unit] {
		out.Status = StatusUnreachable
	} else {
		out.Status = StatusReachable
		done := addPeriods(c.now(), in.Unit, out.PeriodsNeeded)
		out.ProjectedCompletionDate = &done
	}
	out.Narrative = narrativeFor(in, out)

	return out, nil
}

func ceilDiv(a, b int64) int64 {
	q := a / b
	if a%b != 0 {
		q++
	}
	return q
}

func addPeriods(t time.Time, unit PeriodUnit, n int64) time.Time {
	switch unit {
	case PeriodDay:
		return t.AddDate(0, 0, int(n))
	case PeriodWeek:
		return t.AddDate(0, 0, int(n)*7)
	default:
		return t.AddDate(0, int(n), 0)
	}
}

// monthsEquivalent is used to pick the narrative band regardless of unit.
func monthsEquivalent(periods int64, unit PeriodUnit) float64 {
	switch unit {
	case PeriodDay:
		return float64(periods) / 30
	case PeriodWeek:
		return float64(periods) * 7 / 30
	default:
		return float64(periods)
	}
}
