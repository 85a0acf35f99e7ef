package attendance

import (
	"github.com/campus-hr/payroll-backend-go/internal/pkg/validator"
)

type ClockRequest struct {
	EmployeeID string `json:"employee_id"`
}

func (r *ClockRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{Field: "employee_id", Message: "is required"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type AttendanceResponse struct {
	ID           string  `json:"id"`
	EmployeeID   string  `json:"employee_id"`
	EmployeeName *string `json:"employee_name,omitempty"`
	Date         string  `json:"date"`
	TimeIn       *string `json:"time_in,omitempty"`
	TimeOut      *string `json:"time_out,omitempty"`
	LateMinutes  int     `json:"late_minutes"`
	Status       string  `json:"status"`
}

type AttendanceFilter struct {
	EmployeeID *string
	DateFrom   *string
	DateTo     *string
	Page       int
	Limit      int
}

type SummaryResponse struct {
	EmployeeID       string `json:"employee_id"`
	DaysWorked       int    `json:"days_worked"`
	DaysAbsent       int    `json:"days_absent"`
	LateMinutesTotal int    `json:"late_minutes_total"`
}
