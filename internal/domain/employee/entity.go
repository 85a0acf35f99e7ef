package employee

import (
	"time"

	"github.com/shopspring/decimal"
)

// Employee is a staff member of the department. Faculty positions carry a
// salary grade and step resolved against the SSL table; administrative hires
// may instead carry a flat monthly salary entered at hiring time.
type Employee struct {
	ID           string
	EmployeeNo   string
	FirstName    string
	LastName     string
	Email        *string
	DepartmentID *string
	PositionID   *string
	SalaryGrade  *int
	SalaryStep   *int
	BaseSalary   *decimal.Decimal
	DateHired    *time.Time
	IsActive     bool
	CreatedAt    time.Time
	UpdatedAt    time.Time

	// Joined fields
	DepartmentName *string
	PositionName   *string
}

// FullName returns "Last, First" as the front-end tables display it.
func (e Employee) FullName() string {
	return e.LastName + ", " + e.FirstName
}

// IsGraded reports whether the employee's salary comes from the grade table.
func (e Employee) IsGraded() bool {
	return e.SalaryGrade != nil && e.SalaryStep != nil
}
