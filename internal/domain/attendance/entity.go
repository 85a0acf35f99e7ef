package attendance

import "time"

type Status string

const (
	StatusPresent Status = "present"
	StatusLate    Status = "late"
	StatusAbsent  Status = "absent"
)

// Attendance is one clock-in/out row for an employee on a date.
type Attendance struct {
	ID          string
	EmployeeID  string
	Date        time.Time
	TimeIn      *time.Time
	TimeOut     *time.Time
	LateMinutes int
	Status      Status
	CreatedAt   time.Time
	UpdatedAt   time.Time

	// Joined fields
	EmployeeName *string
}

// PeriodSummary is the attendance aggregate the payroll generator consumes:
// days with a recorded check-in, derived absences and total lateness over a
// pay period.
type PeriodSummary struct {
	EmployeeID       string
	DaysWorked       int
	DaysAbsent       int
	LateMinutesTotal int
}
