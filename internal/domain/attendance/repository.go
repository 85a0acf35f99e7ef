package attendance

import (
	"context"
	"time"
)

type AttendanceRepository interface {
	Create(ctx context.Context, att Attendance) (Attendance, error)
	Update(ctx context.Context, att Attendance) error
	GetByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time) (Attendance, error)
	List(ctx context.Context, filter AttendanceFilter) ([]Attendance, int64, error)

	// Summarize aggregates attendance per employee over [start, end]:
	// days with a recorded check-in and the sum of late minutes. Absences
	// are derived by the caller from the working-day calendar.
	Summarize(ctx context.Context, start, end time.Time, employeeIDs []string) (map[string]PeriodSummary, error)
}
