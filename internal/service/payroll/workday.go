package payroll

import (
	"time"

	"github.com/shopspring/decimal"
)

// WorkdayPolicy captures the department's working-day conventions: a fixed
// monthly divisor for the daily rate and Monday-Friday absence counting.
// Both are conventions observed in practice rather than derived from the
// period, so they are injected and swappable.
type WorkdayPolicy struct {
	// DivisorDays divides the monthly salary into a daily rate regardless
	// of the period's actual length.
	DivisorDays int
}

// DefaultWorkdayPolicy is the 22-working-day convention.
var DefaultWorkdayPolicy = WorkdayPolicy{DivisorDays: 22}

// DailyRate returns the per-day rate for a monthly salary.
func (p WorkdayPolicy) DailyRate(monthly decimal.Decimal) decimal.Decimal {
	return monthly.Div(decimal.NewFromInt(int64(p.DivisorDays)))
}

// WorkingDays counts Monday-Friday dates in [start, end] inclusive. No
// holiday calendar is applied.
func (p WorkdayPolicy) WorkingDays(start, end time.Time) int {
	start = truncateToDay(start)
	end = truncateToDay(end)

	days := 0
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		switch d.Weekday() {
		case time.Saturday, time.Sunday:
		default:
			days++
		}
	}
	return days
}

// DaysAbsent derives absences from worked days over the period, floored at
// zero so overtime days can never produce negative absences.
func (p WorkdayPolicy) DaysAbsent(start, end time.Time, daysWorked int) int {
	absent := p.WorkingDays(start, end) - daysWorked
	if absent < 0 {
		return 0
	}
	return absent
}

func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
