package deduction

import (
	"sort"

	"github.com/shopspring/decimal"
)

var oneHundred = decimal.NewFromInt(100)

// Matches reports whether the rate's salary range contains basic. An unset
// bound is open on that side.
func (r DeductionRate) Matches(basic decimal.Decimal) bool {
	if !r.IsActive {
		return false
	}
	if r.SalaryMin != nil && basic.LessThan(*r.SalaryMin) {
		return false
	}
	if r.SalaryMax != nil && basic.GreaterThan(*r.SalaryMax) {
		return false
	}
	return true
}

// Amount computes the deduction for basic salary under this rate, clamped to
// [MinAmount, MaxAmount] when those bounds are set, rounded to 2 places.
func (r DeductionRate) Amount(basic decimal.Decimal) decimal.Decimal {
	var amount decimal.Decimal
	if r.RateType == RatePercentage {
		amount = basic.Mul(r.RateValue).Div(oneHundred)
	} else {
		amount = r.RateValue
	}
	if r.MinAmount != nil && amount.LessThan(*r.MinAmount) {
		amount = *r.MinAmount
	}
	if r.MaxAmount != nil && amount.GreaterThan(*r.MaxAmount) {
		amount = *r.MaxAmount
	}
	return amount.Round(2)
}

// ApplicableRate selects the first active rate of the given type whose salary
// range contains basic, or nil when none matches. Range non-overlap is the
// data owner's invariant; lookup takes the first match.
func ApplicableRate(rates []DeductionRate, typ DeductionType, basic decimal.Decimal) *DeductionRate {
	for i := range rates {
		if rates[i].Type != typ {
			continue
		}
		if rates[i].Matches(basic) {
			return &rates[i]
		}
	}
	return nil
}

// AmountFor returns the deduction amount for the given type, or zero when no
// rate matches. A missing schedule degrades to a zero deduction rather than
// failing the payroll run.
func AmountFor(rates []DeductionRate, typ DeductionType, basic decimal.Decimal) decimal.Decimal {
	rate := ApplicableRate(rates, typ, basic)
	if rate == nil {
		return decimal.Zero
	}
	return rate.Amount(basic)
}

// ValidateBrackets filters to active brackets, sorts them by IncomeFrom and
// verifies the table covers [0, inf) without gaps or overlaps. The sorted
// table is returned for lookup.
func ValidateBrackets(brackets []TaxBracket) ([]TaxBracket, error) {
	var active []TaxBracket
	for _, b := range brackets {
		if b.IsActive {
			active = append(active, b)
		}
	}
	if len(active) == 0 {
		return nil, ErrBracketTableEmpty
	}

	sort.Slice(active, func(i, j int) bool {
		return active[i].IncomeFrom.LessThan(active[j].IncomeFrom)
	})

	if !active[0].IncomeFrom.IsZero() {
		return nil, ErrBracketTableInvalid
	}
	for i := 1; i < len(active); i++ {
		if !active[i].IncomeFrom.Equal(active[i-1].IncomeTo) {
			return nil, ErrBracketTableInvalid
		}
	}

	return active, nil
}

// ComputeTax computes withholding tax for taxable income against a validated,
// sorted bracket table: base_tax + (taxable - excess_over) * rate / 100,
// floored at zero. The last bracket's upper bound is treated as unbounded.
func ComputeTax(brackets []TaxBracket, taxable decimal.Decimal) decimal.Decimal {
	if len(brackets) == 0 {
		return decimal.Zero
	}

	bracket := brackets[len(brackets)-1]
	for i, b := range brackets {
		last := i == len(brackets)-1
		if taxable.GreaterThanOrEqual(b.IncomeFrom) && (last || taxable.LessThan(b.IncomeTo)) {
			bracket = b
			break
		}
	}

	tax := bracket.BaseTax.Add(taxable.Sub(bracket.ExcessOver).Mul(bracket.RatePercentage).Div(oneHundred))
	if tax.IsNegative() {
		return decimal.Zero
	}
	return tax.Round(2)
}
