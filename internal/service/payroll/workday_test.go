package payroll

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestWorkingDays(t *testing.T) {
	policy := DefaultWorkdayPolicy

	cases := []struct {
		name       string
		start, end time.Time
		want       int
	}{
		{"full week Mon-Sun", date(2025, time.June, 2), date(2025, time.June, 8), 5},
		{"single weekday", date(2025, time.June, 4), date(2025, time.June, 4), 1},
		{"single saturday", date(2025, time.June, 7), date(2025, time.June, 7), 0},
		{"weekend only", date(2025, time.June, 7), date(2025, time.June, 8), 0},
		{"june 2025", date(2025, time.June, 1), date(2025, time.June, 30), 21},
		{"first half of june 2025", date(2025, time.June, 1), date(2025, time.June, 15), 10},
		{"end before start", date(2025, time.June, 10), date(2025, time.June, 9), 0},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.want, policy.WorkingDays(c.start, c.end))
		})
	}
}

func TestDaysAbsent(t *testing.T) {
	policy := DefaultWorkdayPolicy
	start, end := date(2025, time.June, 1), date(2025, time.June, 30) // 21 working days

	assert.Equal(t, 2, policy.DaysAbsent(start, end, 19))
	assert.Equal(t, 0, policy.DaysAbsent(start, end, 21))
	// Worked more days than the calendar has; never negative.
	assert.Equal(t, 0, policy.DaysAbsent(start, end, 25))
}

func TestDailyRate(t *testing.T) {
	policy := DefaultWorkdayPolicy
	rate := policy.DailyRate(decimal.NewFromInt(22000))
	assert.True(t, rate.Equal(decimal.NewFromInt(1000)), "got %s", rate)

	// The divisor is a convention, not derived from the period.
	custom := WorkdayPolicy{DivisorDays: 20}
	rate = custom.DailyRate(decimal.NewFromInt(22000))
	assert.True(t, rate.Equal(decimal.NewFromInt(1100)), "got %s", rate)
}
