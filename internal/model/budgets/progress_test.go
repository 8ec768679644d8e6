package budgets

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"max.ks1230/finance-app/internal/entity/budget"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func Test_OnWindow_MonthlyUsesCalendarMonth(t *testing.T) {
	b := budget.Budget{
		Pattern:   budget.PatternMonthly,
		StartDate: date(2024, time.January, 1),
	}

	from, to := Window(b, date(2024, time.March, 14))

	assert.Equal(t, date(2024, time.March, 1), from)
	assert.Equal(t, time.March, to.Month())
	assert.Equal(t, 31, to.Day())
}

func Test_OnWindow_ClipsToBudgetDates(t *testing.T) {
	end := date(2024, time.March, 20)
	b := budget.Budget{
		Pattern:   budget.PatternMonthly,
		StartDate: date(2024, time.March, 10),
		EndDate:   &end,
	}

	from, to := Window(b, date(2024, time.March, 14))

	assert.Equal(t, date(2024, time.March, 10), from)
	assert.Equal(t, date(2024, time.March, 20), to)
}

func Test_OnWindow_OneTimeUsesOwnDates(t *testing.T) {
	end := date(2024, time.June, 30)
	b := budget.Budget{
		Pattern:   budget.PatternOneTime,
		StartDate: date(2024, time.January, 1),
		EndDate:   &end,
	}

	from, to := Window(b, date(2024, time.March, 14))

	assert.Equal(t, date(2024, time.January, 1), from)
	assert.Equal(t, date(2024, time.June, 30), to)
}

func Test_OnNewProgress_WithinLimit(t *testing.T) {
	end := date(2024, time.March, 20)
	b := budget.Budget{
		Name:      "Groceries",
		Pattern:   budget.PatternOneTime,
		Amount:    decimal.NewFromInt(1000),
		StartDate: date(2024, time.March, 1),
		EndDate:   &end,
	}

	p := NewProgress(b, decimal.NewFromInt(400), date(2024, time.March, 11))

	assert.Equal(t, "600", p.Remaining.String())
	assert.False(t, p.Overspent)
	assert.Equal(t, "40", p.PercentUsed.String())
	assert.Equal(t, "40", p.ActualPercent.String())
	assert.Equal(t, 10, p.DaysRemaining)
	assert.Equal(t, "60.00", p.DailyAllowance.StringFixed(2))
}

func Test_OnNewProgress_OverspentClampsDisplay(t *testing.T) {
	end := date(2024, time.March, 20)
	b := budget.Budget{
		Pattern:   budget.PatternOneTime,
		Amount:    decimal.NewFromInt(500),
		StartDate: date(2024, time.March, 1),
		EndDate:   &end,
	}

	p := NewProgress(b, decimal.NewFromInt(750), date(2024, time.March, 11))

	assert.True(t, p.Overspent)
	assert.Equal(t, "0", p.Remaining.String())
	assert.Equal(t, "100", p.PercentUsed.String())
	assert.Equal(t, "150", p.ActualPercent.String())
	assert.Equal(t, "0.00", p.DailyAllowance.StringFixed(2))
}

func Test_OnNewProgress_ZeroLimitReportsZeroPercent(t *testing.T) {
	b := budget.Budget{
		Pattern:   budget.PatternOneTime,
		StartDate: date(2024, time.March, 1),
	}

	p := NewProgress(b, decimal.Zero, date(2024, time.March, 11))

	assert.Equal(t, "0", p.PercentUsed.String())
	assert.False(t, p.Overspent)
	assert.Equal(t, 0, p.DaysRemaining)
}

func Test_OnNewProgress_TimeProgressTracksWindow(t *testing.T) {
	end := date(2024, time.March, 21)
	b := budget.Budget{
		Pattern:   budget.PatternOneTime,
		Amount:    decimal.NewFromInt(100),
		StartDate: date(2024, time.March, 1),
		EndDate:   &end,
	}

	p := NewProgress(b, decimal.Zero, date(2024, time.March, 11))

	assert.Equal(t, "50", p.TimeProgressPercent.String())
}
