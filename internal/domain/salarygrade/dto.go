package salarygrade

import (
	"github.com/campus-hr/payroll-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

type CreateGradeStepRequest struct {
	Grade         int             `json:"grade"`
	Step          int             `json:"step"`
	MonthlySalary decimal.Decimal `json:"monthly_salary"`
	EffectiveDate *string         `json:"effective_date,omitempty"`
}

func (r *CreateGradeStepRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Grade < MinGrade || r.Grade > MaxGrade {
		errs = append(errs, validator.ValidationError{Field: "grade", Message: "must be between 11 and 33"})
	}
	if r.Step < MinStep || r.Step > MaxStep {
		errs = append(errs, validator.ValidationError{Field: "step", Message: "must be between 1 and 8"})
	}
	if r.MonthlySalary.IsNegative() || r.MonthlySalary.IsZero() {
		errs = append(errs, validator.ValidationError{Field: "monthly_salary", Message: "must be positive"})
	}
	if r.EffectiveDate != nil {
		if _, ok := validator.IsValidDate(*r.EffectiveDate); !ok {
			errs = append(errs, validator.ValidationError{Field: "effective_date", Message: "must be YYYY-MM-DD"})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateGradeStepRequest struct {
	ID            string
	MonthlySalary *decimal.Decimal `json:"monthly_salary,omitempty"`
	EffectiveDate *string          `json:"effective_date,omitempty"`
}

type GradeStepResponse struct {
	ID            string          `json:"id"`
	Grade         int             `json:"grade"`
	Step          int             `json:"step"`
	MonthlySalary decimal.Decimal `json:"monthly_salary"`
	EffectiveDate string          `json:"effective_date"`
}

// GroupedGradeResponse is the ?grouped=1 shape: one row per grade with the
// eight step salaries in order.
type GroupedGradeResponse struct {
	Grade int               `json:"grade"`
	Steps []decimal.Decimal `json:"steps"`
}
