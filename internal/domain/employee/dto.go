package employee

import (
	"github.com/campus-hr/payroll-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

type CreateEmployeeRequest struct {
	EmployeeNo   string           `json:"employee_no"`
	FirstName    string           `json:"first_name"`
	LastName     string           `json:"last_name"`
	Email        *string          `json:"email,omitempty"`
	DepartmentID *string          `json:"department_id,omitempty"`
	PositionID   *string          `json:"position_id,omitempty"`
	SalaryGrade  *int             `json:"salary_grade,omitempty"`
	SalaryStep   *int             `json:"salary_step,omitempty"`
	BaseSalary   *decimal.Decimal `json:"base_salary,omitempty"`
	DateHired    *string          `json:"date_hired,omitempty"`
}

func (r *CreateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsValidEmployeeNo(r.EmployeeNo) {
		errs = append(errs, validator.ValidationError{Field: "employee_no", Message: "must match YYYY-NNNN"})
	}
	if validator.IsEmpty(r.FirstName) {
		errs = append(errs, validator.ValidationError{Field: "first_name", Message: "is required"})
	}
	if validator.IsEmpty(r.LastName) {
		errs = append(errs, validator.ValidationError{Field: "last_name", Message: "is required"})
	}
	if r.Email != nil && !validator.IsValidEmail(*r.Email) {
		errs = append(errs, validator.ValidationError{Field: "email", Message: "must be a valid email address"})
	}
	if r.SalaryGrade != nil && (*r.SalaryGrade < 11 || *r.SalaryGrade > 33) {
		errs = append(errs, validator.ValidationError{Field: "salary_grade", Message: "must be between 11 and 33"})
	}
	if r.SalaryStep != nil && (*r.SalaryStep < 1 || *r.SalaryStep > 8) {
		errs = append(errs, validator.ValidationError{Field: "salary_step", Message: "must be between 1 and 8"})
	}
	if (r.SalaryGrade == nil) != (r.SalaryStep == nil) {
		errs = append(errs, validator.ValidationError{Field: "salary_step", Message: "grade and step must be set together"})
	}
	if r.SalaryGrade == nil && r.BaseSalary == nil {
		errs = append(errs, validator.ValidationError{Field: "base_salary", Message: "required when no salary grade is set"})
	}
	if r.BaseSalary != nil && r.BaseSalary.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "base_salary", Message: "must be non-negative"})
	}
	if r.DateHired != nil {
		if _, ok := validator.IsValidDate(*r.DateHired); !ok {
			errs = append(errs, validator.ValidationError{Field: "date_hired", Message: "must be YYYY-MM-DD"})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateEmployeeRequest struct {
	ID           string
	FirstName    *string          `json:"first_name,omitempty"`
	LastName     *string          `json:"last_name,omitempty"`
	Email        *string          `json:"email,omitempty"`
	DepartmentID *string          `json:"department_id,omitempty"`
	PositionID   *string          `json:"position_id,omitempty"`
	SalaryGrade  *int             `json:"salary_grade,omitempty"`
	SalaryStep   *int             `json:"salary_step,omitempty"`
	BaseSalary   *decimal.Decimal `json:"base_salary,omitempty"`
	IsActive     *bool            `json:"is_active,omitempty"`
}

type EmployeeResponse struct {
	ID             string           `json:"id"`
	EmployeeNo     string           `json:"employee_no"`
	FirstName      string           `json:"first_name"`
	LastName       string           `json:"last_name"`
	Email          *string          `json:"email,omitempty"`
	DepartmentID   *string          `json:"department_id,omitempty"`
	DepartmentName *string          `json:"department_name,omitempty"`
	PositionID     *string          `json:"position_id,omitempty"`
	PositionName   *string          `json:"position_name,omitempty"`
	SalaryGrade    *int             `json:"salary_grade,omitempty"`
	SalaryStep     *int             `json:"salary_step,omitempty"`
	BaseSalary     *decimal.Decimal `json:"base_salary,omitempty"`
	DateHired      *string          `json:"date_hired,omitempty"`
	IsActive       bool             `json:"is_active"`
}

type EmployeeFilter struct {
	DepartmentID *string
	ActiveOnly   bool
	Search       string
	Page         int
	Limit        int
}
