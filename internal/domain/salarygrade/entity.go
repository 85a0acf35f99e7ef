package salarygrade

import (
	"time"

	"github.com/shopspring/decimal"
)

// SalaryGradeStep is one row of the SSL IV base-salary table, keyed by
// (grade, step). Rows are immutable once a payroll record references them.
type SalaryGradeStep struct {
	ID            string
	Grade         int
	Step          int
	MonthlySalary decimal.Decimal
	EffectiveDate time.Time
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

const (
	MinGrade = 11
	MaxGrade = 33
	MinStep  = 1
	MaxStep  = 8
)
