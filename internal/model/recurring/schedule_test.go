package recurring

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"max.ks1230/finance-app/internal/entity/transaction"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func Test_OnNextDate_ShouldFollowPattern(t *testing.T) {
	cases := []struct {
		name     string
		rec      transaction.Recurring
		after    time.Time
		expected time.Time
	}{
		{
			name: "daily",
			rec: transaction.Recurring{
				Pattern:   transaction.PatternDaily,
				StartDate: date(2024, time.March, 1),
			},
			after:    date(2024, time.March, 14),
			expected: date(2024, time.March, 15),
		},
		{
			name: "weekly",
			rec: transaction.Recurring{
				Pattern:   transaction.PatternWeekly,
				StartDate: date(2024, time.March, 7),
			},
			after:    date(2024, time.March, 14),
			expected: date(2024, time.March, 21),
		},
		{
			name: "monthly",
			rec: transaction.Recurring{
				Pattern:   transaction.PatternMonthly,
				StartDate: date(2024, time.January, 14),
			},
			after:    date(2024, time.March, 14),
			expected: date(2024, time.April, 14),
		},
		{
			name: "monthly clamps to month end",
			rec: transaction.Recurring{
				Pattern:   transaction.PatternMonthly,
				StartDate: date(2024, time.January, 31),
			},
			after:    date(2024, time.January, 31),
			expected: date(2024, time.February, 29),
		},
		{
			name: "monthly keeps start day after a clamped month",
			rec: transaction.Recurring{
				Pattern:   transaction.PatternMonthly,
				StartDate: date(2024, time.January, 31),
			},
			after:    date(2024, time.February, 29),
			expected: date(2024, time.March, 31),
		},
		{
			name: "yearly",
			rec: transaction.Recurring{
				Pattern:   transaction.PatternYearly,
				StartDate: date(2024, time.March, 14),
			},
			after:    date(2024, time.March, 14),
			expected: date(2025, time.March, 14),
		},
		{
			name: "yearly clamps leap day",
			rec: transaction.Recurring{
				Pattern:   transaction.PatternYearly,
				StartDate: date(2024, time.February, 29),
			},
			after:    date(2024, time.February, 29),
			expected: date(2025, time.February, 28),
		},
		{
			name: "yearly returns to leap day",
			rec: transaction.Recurring{
				Pattern:   transaction.PatternYearly,
				StartDate: date(2024, time.February, 29),
			},
			after:    date(2027, time.February, 28),
			expected: date(2028, time.February, 29),
		},
		{
			name: "before start returns start",
			rec: transaction.Recurring{
				Pattern:   transaction.PatternMonthly,
				StartDate: date(2024, time.June, 1),
			},
			after:    date(2024, time.March, 14),
			expected: date(2024, time.June, 1),
		},
		{
			name: "custom interval",
			rec: transaction.Recurring{
				Pattern:            transaction.PatternCustom,
				CustomIntervalDays: 10,
				StartDate:          date(2024, time.March, 4),
			},
			after:    date(2024, time.March, 14),
			expected: date(2024, time.March, 24),
		},
		{
			name: "custom without interval never advances",
			rec: transaction.Recurring{
				Pattern:   transaction.PatternCustom,
				StartDate: date(2024, time.March, 4),
			},
			after:    date(2024, time.March, 14),
			expected: time.Time{},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, NextDate(tc.rec, tc.after))
		})
	}
}

func Test_OnDueDates_FirstOccurrenceIsStartDate(t *testing.T) {
	rec := transaction.Recurring{
		Pattern:   transaction.PatternWeekly,
		StartDate: date(2024, time.March, 1),
	}

	due := DueDates(rec, date(2024, time.March, 15))

	assert.Equal(t, []time.Time{
		date(2024, time.March, 1),
		date(2024, time.March, 8),
		date(2024, time.March, 15),
	}, due)
}

func Test_OnDueDates_MonthEndStaysAnchoredToStartDay(t *testing.T) {
	rec := transaction.Recurring{
		Pattern:   transaction.PatternMonthly,
		StartDate: date(2024, time.January, 31),
	}

	due := DueDates(rec, date(2024, time.April, 30))

	assert.Equal(t, []time.Time{
		date(2024, time.January, 31),
		date(2024, time.February, 29),
		date(2024, time.March, 31),
		date(2024, time.April, 30),
	}, due)
}

func Test_OnDueDates_ResumesAfterLastGenerated(t *testing.T) {
	last := date(2024, time.March, 8)
	rec := transaction.Recurring{
		Pattern:           transaction.PatternWeekly,
		StartDate:         date(2024, time.March, 1),
		LastGeneratedDate: &last,
	}

	due := DueDates(rec, date(2024, time.March, 20))

	assert.Equal(t, []time.Time{date(2024, time.March, 15)}, due)
}

func Test_OnDueDates_ResumesAnchoredAfterClampedOccurrence(t *testing.T) {
	last := date(2024, time.February, 29)
	rec := transaction.Recurring{
		Pattern:           transaction.PatternMonthly,
		StartDate:         date(2024, time.January, 31),
		LastGeneratedDate: &last,
	}

	due := DueDates(rec, date(2024, time.March, 31))

	assert.Equal(t, []time.Time{date(2024, time.March, 31)}, due)
}

func Test_OnDueDates_StopsAtEndDate(t *testing.T) {
	end := date(2024, time.March, 10)
	rec := transaction.Recurring{
		Pattern:   transaction.PatternDaily,
		StartDate: date(2024, time.March, 8),
		EndDate:   &end,
	}

	due := DueDates(rec, date(2024, time.March, 20))

	assert.Equal(t, []time.Time{
		date(2024, time.March, 8),
		date(2024, time.March, 9),
		date(2024, time.March, 10),
	}, due)
}

func Test_OnDueDates_FutureStartOwesNothing(t *testing.T) {
	rec := transaction.Recurring{
		Pattern:   transaction.PatternMonthly,
		StartDate: date(2024, time.June, 1),
	}

	assert.Empty(t, DueDates(rec, date(2024, time.March, 15)))
}
