package deduction

import (
	"github.com/campus-hr/payroll-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

var deductionTypes = []string{"gsis", "philhealth", "pagibig", "other"}

type CreateRateRequest struct {
	Type      string           `json:"type"`
	RateType  string           `json:"rate_type"`
	RateValue decimal.Decimal  `json:"rate_value"`
	SalaryMin *decimal.Decimal `json:"salary_min,omitempty"`
	SalaryMax *decimal.Decimal `json:"salary_max,omitempty"`
	MinAmount *decimal.Decimal `json:"min_amount,omitempty"`
	MaxAmount *decimal.Decimal `json:"max_amount,omitempty"`
}

func (r *CreateRateRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsInSlice(r.Type, deductionTypes) {
		errs = append(errs, validator.ValidationError{Field: "type", Message: "must be gsis, philhealth, pagibig or other"})
	}
	if r.RateType != string(RatePercentage) && r.RateType != string(RateFixed) {
		errs = append(errs, validator.ValidationError{Field: "rate_type", Message: "must be 'percentage' or 'fixed'"})
	}
	if r.RateValue.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "rate_value", Message: "must be non-negative"})
	}
	if r.SalaryMin != nil && r.SalaryMax != nil && r.SalaryMax.LessThan(*r.SalaryMin) {
		errs = append(errs, validator.ValidationError{Field: "salary_max", Message: "must be greater than or equal to salary_min"})
	}
	if r.MinAmount != nil && r.MaxAmount != nil && r.MaxAmount.LessThan(*r.MinAmount) {
		errs = append(errs, validator.ValidationError{Field: "max_amount", Message: "must be greater than or equal to min_amount"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateRateRequest struct {
	ID        string
	RateValue *decimal.Decimal `json:"rate_value,omitempty"`
	SalaryMin *decimal.Decimal `json:"salary_min,omitempty"`
	SalaryMax *decimal.Decimal `json:"salary_max,omitempty"`
	MinAmount *decimal.Decimal `json:"min_amount,omitempty"`
	MaxAmount *decimal.Decimal `json:"max_amount,omitempty"`
	IsActive  *bool            `json:"is_active,omitempty"`
}

type RateResponse struct {
	ID        string           `json:"id"`
	Type      string           `json:"type"`
	RateType  string           `json:"rate_type"`
	RateValue decimal.Decimal  `json:"rate_value"`
	SalaryMin *decimal.Decimal `json:"salary_min,omitempty"`
	SalaryMax *decimal.Decimal `json:"salary_max,omitempty"`
	MinAmount *decimal.Decimal `json:"min_amount,omitempty"`
	MaxAmount *decimal.Decimal `json:"max_amount,omitempty"`
	IsActive  bool             `json:"is_active"`
}

type CreateBracketRequest struct {
	IncomeFrom     decimal.Decimal `json:"income_from"`
	IncomeTo       decimal.Decimal `json:"income_to"`
	BaseTax        decimal.Decimal `json:"base_tax"`
	RatePercentage decimal.Decimal `json:"rate_percentage"`
	ExcessOver     decimal.Decimal `json:"excess_over"`
}

func (r *CreateBracketRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.IncomeFrom.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "income_from", Message: "must be non-negative"})
	}
	if r.IncomeTo.LessThanOrEqual(r.IncomeFrom) {
		errs = append(errs, validator.ValidationError{Field: "income_to", Message: "must be greater than income_from"})
	}
	if r.BaseTax.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "base_tax", Message: "must be non-negative"})
	}
	if r.RatePercentage.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "rate_percentage", Message: "must be non-negative"})
	}
	if r.ExcessOver.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "excess_over", Message: "must be non-negative"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateBracketRequest struct {
	ID             string
	IncomeFrom     *decimal.Decimal `json:"income_from,omitempty"`
	IncomeTo       *decimal.Decimal `json:"income_to,omitempty"`
	BaseTax        *decimal.Decimal `json:"base_tax,omitempty"`
	RatePercentage *decimal.Decimal `json:"rate_percentage,omitempty"`
	ExcessOver     *decimal.Decimal `json:"excess_over,omitempty"`
	IsActive       *bool            `json:"is_active,omitempty"`
}

type BracketResponse struct {
	ID             string          `json:"id"`
	IncomeFrom     decimal.Decimal `json:"income_from"`
	IncomeTo       decimal.Decimal `json:"income_to"`
	BaseTax        decimal.Decimal `json:"base_tax"`
	RatePercentage decimal.Decimal `json:"rate_percentage"`
	ExcessOver     decimal.Decimal `json:"excess_over"`
	IsActive       bool            `json:"is_active"`
}
