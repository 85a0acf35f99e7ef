package attendance

import "errors"

var (
	ErrAlreadyClockedIn   = errors.New("already clocked in today")
	ErrNotClockedIn       = errors.New("no open attendance session to clock out")
	ErrAttendanceNotFound = errors.New("attendance record not found")
)
