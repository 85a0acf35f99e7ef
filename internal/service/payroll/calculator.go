package payroll

import (
	"github.com/campus-hr/payroll-backend-go/internal/domain/deduction"
	"github.com/shopspring/decimal"
)

// CalcInput carries everything needed to compute one employee's pay for a
// period. Rates and brackets are the loaded lookup tables; brackets must
// already be validated and sorted (deduction.ValidateBrackets).
type CalcInput struct {
	BasicSalary     decimal.Decimal
	DaysAbsent      int
	AllowanceRLA    decimal.Decimal
	Honorarium      decimal.Decimal
	OvertimePay     decimal.Decimal
	OtherDeductions decimal.Decimal
	Rates           []deduction.DeductionRate
	Brackets        []deduction.TaxBracket
	Policy          WorkdayPolicy
}

// Breakdown is the decomposed pay computation. NetSalary always equals
// AdjustedBasic + AllowanceRLA + Honorarium + OvertimePay minus the five
// deductions, rounded to 2 places.
type Breakdown struct {
	AdjustedBasic decimal.Decimal
	GrossPay      decimal.Decimal
	GSIS          decimal.Decimal
	PhilHealth    decimal.Decimal
	PagIBIG       decimal.Decimal
	Tax           decimal.Decimal
	NetSalary     decimal.Decimal
}

// Compute runs the payroll computation for one employee:
//
//  1. pro-rate the basic salary for absences at the policy's daily rate,
//  2. add the operator-supplied allowances into gross pay,
//  3. look up the mandatory contributions against the nominal basic salary
//     (contribution schedules key on the grade salary, not days worked),
//  4. withhold tax on gross pay net of those contributions,
//  5. subtract everything from gross pay.
func Compute(in CalcInput) Breakdown {
	adjusted := in.BasicSalary.Sub(in.Policy.DailyRate(in.BasicSalary).Mul(decimal.NewFromInt(int64(in.DaysAbsent))))
	if adjusted.IsNegative() {
		adjusted = decimal.Zero
	}
	adjusted = adjusted.Round(2)

	gross := adjusted.Add(in.AllowanceRLA).Add(in.Honorarium).Add(in.OvertimePay)

	gsis := deduction.AmountFor(in.Rates, deduction.TypeGSIS, in.BasicSalary)
	philhealth := deduction.AmountFor(in.Rates, deduction.TypePhilHealth, in.BasicSalary)
	pagibig := deduction.AmountFor(in.Rates, deduction.TypePagIBIG, in.BasicSalary)

	taxable := gross.Sub(gsis).Sub(philhealth).Sub(pagibig)
	if taxable.IsNegative() {
		taxable = decimal.Zero
	}
	tax := deduction.ComputeTax(in.Brackets, taxable)

	net := gross.Sub(gsis).Sub(philhealth).Sub(pagibig).Sub(tax).Sub(in.OtherDeductions)

	return Breakdown{
		AdjustedBasic: adjusted,
		GrossPay:      gross.Round(2),
		GSIS:          gsis,
		PhilHealth:    philhealth,
		PagIBIG:       pagibig,
		Tax:           tax,
		NetSalary:     net.Round(2),
	}
}
