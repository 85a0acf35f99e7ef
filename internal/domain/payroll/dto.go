package payroll

import (
	"github.com/campus-hr/payroll-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

type GenerateRequest struct {
	PeriodID        string          `json:"period_id"`
	EmployeeIDs     []string        `json:"employee_ids,omitempty"` // Empty = all active employees
	AllowanceRLA    decimal.Decimal `json:"allowance_rla"`
	Honorarium      decimal.Decimal `json:"honorarium"`
	OvertimePay     decimal.Decimal `json:"overtime_pay"`
	OtherDeductions decimal.Decimal `json:"other_deductions"`
}

func (r *GenerateRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.PeriodID) {
		errs = append(errs, validator.ValidationError{Field: "period_id", Message: "is required"})
	}
	if r.AllowanceRLA.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "allowance_rla", Message: "must be non-negative"})
	}
	if r.Honorarium.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "honorarium", Message: "must be non-negative"})
	}
	if r.OvertimePay.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "overtime_pay", Message: "must be non-negative"})
	}
	if r.OtherDeductions.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "other_deductions", Message: "must be non-negative"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// GenerateFailure reports why one employee's record could not be generated.
// A failed employee never blocks the rest of the batch.
type GenerateFailure struct {
	EmployeeID string `json:"employee_id"`
	Reason     string `json:"reason"`
}

type GenerateResponse struct {
	Records  []RecordResponse  `json:"payroll"`
	Failures []GenerateFailure `json:"failures,omitempty"`
}

type UpdateRecordStatusRequest struct {
	ID     string
	Status string `json:"status"`
}

func (r *UpdateRecordStatusRequest) Validate() error {
	var errs validator.ValidationErrors

	if !ValidRecordStatus(r.Status) {
		errs = append(errs, validator.ValidationError{Field: "status", Message: "must be pending, processed or paid"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type RecordResponse struct {
	ID                  string          `json:"id"`
	EmployeeID          string          `json:"employee_id"`
	EmployeeNo          string          `json:"employee_no"`
	EmployeeName        string          `json:"employee_name"`
	DepartmentName      *string         `json:"department_name,omitempty"`
	PositionName        *string         `json:"position_name,omitempty"`
	PeriodID            string          `json:"period_id"`
	BasicSalary         decimal.Decimal `json:"basic_salary"`
	AdjustedBasic       decimal.Decimal `json:"adjusted_basic"`
	DaysWorked          int             `json:"days_worked"`
	DaysAbsent          int             `json:"days_absent"`
	LateMinutesTotal    int             `json:"late_minutes_total"`
	AllowanceRLA        decimal.Decimal `json:"allowance_rla"`
	Honorarium          decimal.Decimal `json:"honorarium"`
	OvertimePay         decimal.Decimal `json:"overtime_pay"`
	GrossPay            decimal.Decimal `json:"gross_pay"`
	DeductionGSIS       decimal.Decimal `json:"deduction_gsis"`
	DeductionPhilHealth decimal.Decimal `json:"deduction_philhealth"`
	DeductionPagIBIG    decimal.Decimal `json:"deduction_pagibig"`
	DeductionTax        decimal.Decimal `json:"deduction_tax"`
	OtherDeductions     decimal.Decimal `json:"other_deductions"`
	NetSalary           decimal.Decimal `json:"net_salary"`
	Status              string          `json:"status"`
}

type RecordFilter struct {
	PeriodID   *string
	EmployeeID *string
	Status     *string
	Page       int
	Limit      int
}

type CreatePeriodRequest struct {
	Name      string `json:"name"`
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
}

func (r *CreatePeriodRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{Field: "name", Message: "is required"})
	}
	start, okStart := validator.IsValidDate(r.StartDate)
	if !okStart {
		errs = append(errs, validator.ValidationError{Field: "start_date", Message: "must be YYYY-MM-DD"})
	}
	end, okEnd := validator.IsValidDate(r.EndDate)
	if !okEnd {
		errs = append(errs, validator.ValidationError{Field: "end_date", Message: "must be YYYY-MM-DD"})
	}
	if okStart && okEnd && end.Before(start) {
		errs = append(errs, validator.ValidationError{Field: "end_date", Message: "must not be before start_date"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdatePeriodRequest struct {
	ID        string
	Name      *string `json:"name,omitempty"`
	StartDate *string `json:"start_date,omitempty"`
	EndDate   *string `json:"end_date,omitempty"`
}

type UpdatePeriodStatusRequest struct {
	ID     string
	Status string `json:"status"`
}

func (r *UpdatePeriodStatusRequest) Validate() error {
	var errs validator.ValidationErrors

	if !ValidPeriodStatus(r.Status) {
		errs = append(errs, validator.ValidationError{Field: "status", Message: "must be open, processing or locked"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type PeriodResponse struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
	Status    string `json:"status"`
}
