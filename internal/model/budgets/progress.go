package budgets

import (
	"time"

	"github.com/jinzhu/now"
	"github.com/shopspring/decimal"
	"max.ks1230/finance-app/internal/entity/budget"
)

var hundred = decimal.NewFromInt(100)

// Window resolves the date range the budget currently applies to. For
// recurring patterns it is the calendar period containing asOf, clipped
// to the budget's own start and end dates. A zero end means open-ended.
func Window(b budget.Budget, asOf time.Time) (time.Time, time.Time) {
	var from, to time.Time

	n := now.With(asOf)
	switch b.Pattern {
	case budget.PatternDaily:
		from, to = n.BeginningOfDay(), n.EndOfDay()
	case budget.PatternWeekly:
		from, to = n.BeginningOfWeek(), n.EndOfWeek()
	case budget.PatternMonthly:
		from, to = n.BeginningOfMonth(), n.EndOfMonth()
	case budget.PatternYearly:
		from, to = n.BeginningOfYear(), n.EndOfYear()
	default: // one_time
		from = b.StartDate
		if b.EndDate != nil {
			to = *b.EndDate
		}
	}

	if b.StartDate.After(from) {
		from = b.StartDate
	}
	if b.EndDate != nil && (to.IsZero() || b.EndDate.Before(to)) {
		to = *b.EndDate
	}
	return from, to
}

// Progress is a budget with its display numbers for the current window.
type Progress struct {
	Budget budget.Budget

	Spent     decimal.Decimal
	Remaining decimal.Decimal
	Overspent bool

	// PercentUsed is capped at 100 for progress bars; ActualPercent keeps
	// the real value so overspending stays visible.
	PercentUsed   decimal.Decimal
	ActualPercent decimal.Decimal

	WindowStart time.Time
	WindowEnd   time.Time

	DaysRemaining  int
	DailyAllowance decimal.Decimal

	// TimeProgressPercent is how far through the window asOf is, so spend
	// pace can be compared against time pace.
	TimeProgressPercent decimal.Decimal
}

// NewProgress computes display numbers for a budget given its spent total.
func NewProgress(b budget.Budget, spent decimal.Decimal, asOf time.Time) Progress {
	from, to := Window(b, asOf)

	remaining := b.Remaining(spent)
	overspent := remaining.IsNegative()
	if overspent {
		remaining = decimal.Zero
	}

	actual := b.PercentUsed(spent).Round(1)
	percent := actual
	if percent.GreaterThan(hundred) {
		percent = hundred
	}

	p := Progress{
		Budget:        b,
		Spent:         spent,
		Remaining:     remaining,
		Overspent:     overspent,
		PercentUsed:   percent,
		ActualPercent: actual,
		WindowStart:   from,
		WindowEnd:     to,
	}

	if !to.IsZero() && to.After(asOf) {
		p.DaysRemaining = int(to.Sub(asOf).Hours()/24) + 1
		p.DailyAllowance = remaining.
			Div(decimal.NewFromInt(int64(p.DaysRemaining))).
			Round(2)
	}
	if !to.IsZero() && to.After(from) {
		elapsed := decimal.NewFromFloat(asOf.Sub(from).Hours())
		total := decimal.NewFromFloat(to.Sub(from).Hours())
		progress := elapsed.Div(total).Mul(hundred).Round(1)
		if progress.IsNegative() {
			progress = decimal.Zero
		}
		if progress.GreaterThan(hundred) {
			progress = hundred
		}
		p.TimeProgressPercent = progress
	}
	return p
}
