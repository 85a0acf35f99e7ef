package response

import (
	"errors"
	"net/http"

	"github.com/campus-hr/payroll-backend-go/internal/domain/attendance"
	"github.com/campus-hr/payroll-backend-go/internal/domain/auth"
	"github.com/campus-hr/payroll-backend-go/internal/domain/deduction"
	"github.com/campus-hr/payroll-backend-go/internal/domain/employee"
	"github.com/campus-hr/payroll-backend-go/internal/domain/master/department"
	"github.com/campus-hr/payroll-backend-go/internal/domain/master/position"
	"github.com/campus-hr/payroll-backend-go/internal/domain/payroll"
	"github.com/campus-hr/payroll-backend-go/internal/domain/salarygrade"
	"github.com/campus-hr/payroll-backend-go/internal/domain/user"
	"github.com/campus-hr/payroll-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Auth domain errors
	case errors.Is(err, auth.ErrInvalidCredentials):
		Unauthorized(w, err.Error())
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, "Invalid or expired session")
	case errors.Is(err, auth.ErrGoogleLoginFailed):
		Unauthorized(w, "Google login failed")
	case errors.Is(err, auth.ErrGoogleNotLinked):
		Forbidden(w, "No account is linked to this Google identity")
	case errors.Is(err, user.ErrUserNotFound):
		NotFound(w, "User not found")
	case errors.Is(err, user.ErrAdminPrivilegeRequired):
		Forbidden(w, "Admin privilege required")

	// Employee domain errors
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")
	case errors.Is(err, employee.ErrEmployeeNoExists):
		Conflict(w, "Employee number already exists")
	case errors.Is(err, employee.ErrEmployeeDeactivated):
		Conflict(w, "Employee is deactivated")
	case errors.Is(err, employee.ErrEmployeeHasNoSalary):
		BadRequest(w, "Employee has neither a salary grade nor a base salary", nil)

	// Master data errors
	case errors.Is(err, department.ErrDepartmentNotFound):
		NotFound(w, "Department not found")
	case errors.Is(err, department.ErrDepartmentInUse):
		Conflict(w, "Department still has employees assigned")
	case errors.Is(err, position.ErrPositionNotFound):
		NotFound(w, "Position not found")
	case errors.Is(err, position.ErrPositionInUse):
		Conflict(w, "Position still has employees assigned")

	// Salary grade errors
	case errors.Is(err, salarygrade.ErrGradeStepNotFound):
		NotFound(w, "Salary grade step not found")
	case errors.Is(err, salarygrade.ErrGradeStepExists):
		Conflict(w, "Salary grade step already exists")
	case errors.Is(err, salarygrade.ErrGradeStepInUse):
		Conflict(w, "Salary grade step is referenced by payroll records")

	// Deduction errors
	case errors.Is(err, deduction.ErrRateNotFound):
		NotFound(w, "Deduction rate not found")
	case errors.Is(err, deduction.ErrBracketNotFound):
		NotFound(w, "Tax bracket not found")
	case errors.Is(err, deduction.ErrBracketTableEmpty):
		BadRequest(w, "No active tax brackets configured", nil)
	case errors.Is(err, deduction.ErrBracketTableInvalid):
		BadRequest(w, "Tax bracket table has gaps or overlapping ranges", nil)

	// Attendance errors
	case errors.Is(err, attendance.ErrAlreadyClockedIn):
		Conflict(w, "Already clocked in today")
	case errors.Is(err, attendance.ErrNotClockedIn):
		Conflict(w, "No open attendance session to clock out")
	case errors.Is(err, attendance.ErrAttendanceNotFound):
		NotFound(w, "Attendance record not found")

	// Payroll errors
	case errors.Is(err, payroll.ErrPeriodNotFound):
		NotFound(w, "Payroll period not found")
	case errors.Is(err, payroll.ErrPeriodLocked):
		Conflict(w, "Payroll period is not open")
	case errors.Is(err, payroll.ErrPeriodHasRecords):
		Conflict(w, "Payroll period still has records")
	case errors.Is(err, payroll.ErrRecordNotFound):
		NotFound(w, "Payroll record not found")
	case errors.Is(err, payroll.ErrDuplicateRecord):
		Conflict(w, "Payroll was already generated for this period")
	case errors.Is(err, payroll.ErrRecordPaid):
		Conflict(w, "Paid payroll records cannot be deleted")
	case errors.Is(err, payroll.ErrInvalidTransition):
		Conflict(w, "Payroll status can only move forward")
	case errors.Is(err, payroll.ErrNoEligibleEmployee):
		BadRequest(w, "No eligible employees for payroll generation", nil)

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
