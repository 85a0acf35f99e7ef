package payroll

import "errors"

var (
	ErrPeriodNotFound     = errors.New("payroll period not found")
	ErrPeriodLocked       = errors.New("payroll period is not open for generation")
	ErrPeriodHasRecords   = errors.New("payroll period still has payroll records")
	ErrRecordNotFound     = errors.New("payroll record not found")
	ErrDuplicateRecord    = errors.New("payroll record already exists for this employee and period")
	ErrRecordPaid         = errors.New("payroll record is paid and cannot be modified")
	ErrInvalidTransition  = errors.New("invalid payroll status transition")
	ErrNoEligibleEmployee = errors.New("no eligible employees for generation")
)
