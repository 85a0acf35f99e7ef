package payroll

import (
	"time"

	"github.com/shopspring/decimal"
)

// RecordStatus enum
type RecordStatus string

const (
	RecordStatusPending   RecordStatus = "pending"
	RecordStatusProcessed RecordStatus = "processed"
	RecordStatusPaid      RecordStatus = "paid"
)

var recordStatusRank = map[RecordStatus]int{
	RecordStatusPending:   0,
	RecordStatusProcessed: 1,
	RecordStatusPaid:      2,
}

// ValidRecordStatus reports whether s is a known record status.
func ValidRecordStatus(s string) bool {
	_, ok := recordStatusRank[RecordStatus(s)]
	return ok
}

// CanTransition reports whether a record may move from one status to
// another. Transitions are monotonic: pending -> processed -> paid, never
// backwards.
func CanTransition(from, to RecordStatus) bool {
	fromRank, ok := recordStatusRank[from]
	if !ok {
		return false
	}
	toRank, ok := recordStatusRank[to]
	if !ok {
		return false
	}
	return toRank > fromRank
}

// PeriodStatus enum
type PeriodStatus string

const (
	PeriodStatusOpen       PeriodStatus = "open"
	PeriodStatusProcessing PeriodStatus = "processing"
	PeriodStatusLocked     PeriodStatus = "locked"
)

// ValidPeriodStatus reports whether s is a known period status. Periods may
// move freely between statuses (a locked period can be reopened); only
// generation is gated on the period being open.
func ValidPeriodStatus(s string) bool {
	switch PeriodStatus(s) {
	case PeriodStatusOpen, PeriodStatusProcessing, PeriodStatusLocked:
		return true
	}
	return false
}

// PayrollPeriod is a bounded date range payroll is generated against and
// then frozen.
type PayrollPeriod struct {
	ID        string
	Name      string
	StartDate time.Time
	EndDate   time.Time
	Status    PeriodStatus
	CreatedAt time.Time
	UpdatedAt time.Time
}

// PayrollRecord is the generated result for one (employee, period) pair.
// Net salary is derived, never edited directly; a paid record can neither be
// deleted nor regenerated.
type PayrollRecord struct {
	ID                  string
	EmployeeID          string
	PeriodID            string
	BasicSalary         decimal.Decimal
	AdjustedBasic       decimal.Decimal
	DaysWorked          int
	DaysAbsent          int
	LateMinutesTotal    int
	AllowanceRLA        decimal.Decimal
	Honorarium          decimal.Decimal
	OvertimePay         decimal.Decimal
	GrossPay            decimal.Decimal
	DeductionGSIS       decimal.Decimal
	DeductionPhilHealth decimal.Decimal
	DeductionPagIBIG    decimal.Decimal
	DeductionTax        decimal.Decimal
	OtherDeductions     decimal.Decimal
	NetSalary           decimal.Decimal
	Status              RecordStatus
	CreatedAt           time.Time
	UpdatedAt           time.Time

	// Joined fields
	EmployeeName   *string
	EmployeeNo     *string
	DepartmentName *string
	PositionName   *string
}
