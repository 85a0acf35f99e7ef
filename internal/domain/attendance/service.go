package attendance

import "context"

type AttendanceService interface {
	ClockIn(ctx context.Context, req ClockRequest) (AttendanceResponse, error)
	ClockOut(ctx context.Context, req ClockRequest) (AttendanceResponse, error)
	List(ctx context.Context, filter AttendanceFilter) ([]AttendanceResponse, int64, error)
	// Summary aggregates attendance per employee over [start, end] in
	// YYYY-MM-DD form, deriving absences from the working-day calendar.
	Summary(ctx context.Context, start, end string, employeeIDs []string) ([]SummaryResponse, error)
}
