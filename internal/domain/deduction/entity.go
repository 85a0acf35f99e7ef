package deduction

import (
	"time"

	"github.com/shopspring/decimal"
)

// DeductionType enum
type DeductionType string

const (
	TypeGSIS       DeductionType = "gsis"
	TypePhilHealth DeductionType = "philhealth"
	TypePagIBIG    DeductionType = "pagibig"
	TypeOther      DeductionType = "other"
)

// MandatoryTypes are the government contribution schedules subtracted before
// withholding tax is computed.
var MandatoryTypes = []DeductionType{TypeGSIS, TypePhilHealth, TypePagIBIG}

// RateType enum
type RateType string

const (
	RatePercentage RateType = "percentage"
	RateFixed      RateType = "fixed"
)

// DeductionRate is one configurable contribution rule. Rates of the same
// type are differentiated by the salary range they cover; the range key is
// the nominal grade salary, not the absence-adjusted pay.
type DeductionRate struct {
	ID        string
	Type      DeductionType
	RateType  RateType
	RateValue decimal.Decimal
	SalaryMin *decimal.Decimal
	SalaryMax *decimal.Decimal
	MinAmount *decimal.Decimal
	MaxAmount *decimal.Decimal
	IsActive  bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TaxBracket is one row of the progressive withholding schedule. The table
// must be contiguous and non-overlapping over [0, inf); the last bracket's
// IncomeTo is treated as unbounded.
type TaxBracket struct {
	ID             string
	IncomeFrom     decimal.Decimal
	IncomeTo       decimal.Decimal
	BaseTax        decimal.Decimal
	RatePercentage decimal.Decimal
	ExcessOver     decimal.Decimal
	IsActive       bool
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
