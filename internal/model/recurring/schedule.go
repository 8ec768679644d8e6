package recurring

import (
	"time"

	"max.ks1230/finance-app/internal/entity/transaction"
)

// occurrenceDate returns the n-th occurrence of the template, counting
// from its start date. Month-based patterns clamp to the end of shorter
// months but stay anchored to the start day, so a template starting
// Jan 31 lands on Feb 29 and then Mar 31, not Mar 29.
func occurrenceDate(rec transaction.Recurring, n int) time.Time {
	switch rec.Pattern {
	case transaction.PatternDaily:
		return rec.StartDate.AddDate(0, 0, n)
	case transaction.PatternWeekly:
		return rec.StartDate.AddDate(0, 0, 7*n)
	case transaction.PatternMonthly:
		return addMonths(rec.StartDate, n)
	case transaction.PatternYearly:
		return addMonths(rec.StartDate, 12*n)
	case transaction.PatternCustom:
		if rec.CustomIntervalDays <= 0 {
			if n == 0 {
				return rec.StartDate
			}
			return time.Time{}
		}
		return rec.StartDate.AddDate(0, 0, n*rec.CustomIntervalDays)
	}
	return time.Time{}
}

// NextDate returns the first occurrence strictly after the given date,
// or a zero time when the template never advances past it.
func NextDate(rec transaction.Recurring, after time.Time) time.Time {
	for n := 0; ; n++ {
		occ := occurrenceDate(rec, n)
		if occ.IsZero() {
			return time.Time{}
		}
		if occ.After(after) {
			return occ
		}
	}
}

// DueDates lists every occurrence the template owes up to and including
// asOf. The first occurrence is the start date itself; occurrences up to
// the last generated date are already settled, and nothing past the end
// date is owed.
func DueDates(rec transaction.Recurring, asOf time.Time) []time.Time {
	var due []time.Time
	for n := 0; ; n++ {
		occ := occurrenceDate(rec, n)
		if occ.IsZero() || occ.After(asOf) {
			break
		}
		if rec.EndDate != nil && occ.After(*rec.EndDate) {
			break
		}
		if rec.LastGeneratedDate != nil && !occ.After(*rec.LastGeneratedDate) {
			continue
		}
		due = append(due, occ)
	}
	return due
}

// addMonths advances by whole months, clamping to the last day of the
// target month so Jan 31 + 1 month lands on Feb 28/29, not Mar 2/3.
func addMonths(t time.Time, months int) time.Time {
	year, month, day := t.Date()
	firstOfTarget := time.Date(year, month+time.Month(months), 1, 0, 0, 0, 0, t.Location())
	lastDay := firstOfTarget.AddDate(0, 1, -1).Day()
	if day > lastDay {
		day = lastDay
	}
	return time.Date(firstOfTarget.Year(), firstOfTarget.Month(), day,
		t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), t.Location())
}
