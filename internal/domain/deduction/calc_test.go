package deduction

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

func decPtr(s string) *decimal.Decimal {
	d := dec(s)
	return &d
}

func TestRateAmount(t *testing.T) {
	cases := []struct {
		name  string
		rate  DeductionRate
		basic string
		want  string
	}{
		{
			name:  "percentage",
			rate:  DeductionRate{RateType: RatePercentage, RateValue: dec("9")},
			basic: "22000",
			want:  "1980",
		},
		{
			name:  "fixed",
			rate:  DeductionRate{RateType: RateFixed, RateValue: dec("500")},
			basic: "22000",
			want:  "500",
		},
		{
			name:  "percentage clamped to max",
			rate:  DeductionRate{RateType: RatePercentage, RateValue: dec("5"), MaxAmount: decPtr("1000")},
			basic: "50000",
			want:  "1000",
		},
		{
			name:  "percentage clamped to min",
			rate:  DeductionRate{RateType: RatePercentage, RateValue: dec("2"), MinAmount: decPtr("400")},
			basic: "10000",
			want:  "400",
		},
		{
			name:  "rounds to centavos",
			rate:  DeductionRate{RateType: RatePercentage, RateValue: dec("3.33")},
			basic: "10001",
			want:  "333.03",
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got := c.rate.Amount(dec(c.basic))
			assert.True(t, got.Equal(dec(c.want)), "got %s want %s", got, c.want)
		})
	}
}

func TestApplicableRate(t *testing.T) {
	rates := []DeductionRate{
		{ID: "low", Type: TypeGSIS, RateType: RatePercentage, RateValue: dec("9"), SalaryMax: decPtr("20000"), IsActive: true},
		{ID: "high", Type: TypeGSIS, RateType: RatePercentage, RateValue: dec("12"), SalaryMin: decPtr("20000.01"), IsActive: true},
		{ID: "ph", Type: TypePhilHealth, RateType: RateFixed, RateValue: dec("500"), IsActive: true},
		{ID: "inactive", Type: TypePagIBIG, RateType: RateFixed, RateValue: dec("200"), IsActive: false},
	}

	got := ApplicableRate(rates, TypeGSIS, dec("18000"))
	require.NotNil(t, got)
	assert.Equal(t, "low", got.ID)

	got = ApplicableRate(rates, TypeGSIS, dec("25000"))
	require.NotNil(t, got)
	assert.Equal(t, "high", got.ID)

	// open-ended range matches any salary
	got = ApplicableRate(rates, TypePhilHealth, dec("1"))
	require.NotNil(t, got)
	assert.Equal(t, "ph", got.ID)

	// inactive rates never match
	assert.Nil(t, ApplicableRate(rates, TypePagIBIG, dec("22000")))
}

func TestAmountForDegradesToZero(t *testing.T) {
	// No matching schedule is a zero deduction, never an error.
	got := AmountFor(nil, TypeGSIS, dec("22000"))
	assert.True(t, got.IsZero())

	rates := []DeductionRate{
		{Type: TypeGSIS, RateType: RatePercentage, RateValue: dec("9"), SalaryMax: decPtr("10000"), IsActive: true},
	}
	got = AmountFor(rates, TypeGSIS, dec("22000"))
	assert.True(t, got.IsZero())
}

func validBrackets() []TaxBracket {
	return []TaxBracket{
		{IncomeFrom: dec("0"), IncomeTo: dec("20833"), BaseTax: dec("0"), RatePercentage: dec("0"), ExcessOver: dec("0"), IsActive: true},
		{IncomeFrom: dec("20833"), IncomeTo: dec("33332"), BaseTax: dec("0"), RatePercentage: dec("15"), ExcessOver: dec("20833"), IsActive: true},
		{IncomeFrom: dec("33332"), IncomeTo: dec("66666"), BaseTax: dec("1875"), RatePercentage: dec("20"), ExcessOver: dec("33332"), IsActive: true},
		{IncomeFrom: dec("66666"), IncomeTo: dec("166666"), BaseTax: dec("8541.80"), RatePercentage: dec("25"), ExcessOver: dec("66666"), IsActive: true},
	}
}

func TestValidateBrackets(t *testing.T) {
	sorted, err := ValidateBrackets(validBrackets())
	require.NoError(t, err)
	require.Len(t, sorted, 4)
	assert.True(t, sorted[0].IncomeFrom.IsZero())

	t.Run("empty table", func(t *testing.T) {
		_, err := ValidateBrackets(nil)
		assert.ErrorIs(t, err, ErrBracketTableEmpty)
	})

	t.Run("does not start at zero", func(t *testing.T) {
		b := validBrackets()
		b[0].IncomeFrom = dec("100")
		_, err := ValidateBrackets(b)
		assert.ErrorIs(t, err, ErrBracketTableInvalid)
	})

	t.Run("gap between brackets", func(t *testing.T) {
		b := validBrackets()
		b[2].IncomeFrom = dec("40000")
		_, err := ValidateBrackets(b)
		assert.ErrorIs(t, err, ErrBracketTableInvalid)
	})

	t.Run("overlapping brackets", func(t *testing.T) {
		b := validBrackets()
		b[2].IncomeFrom = dec("30000")
		_, err := ValidateBrackets(b)
		assert.ErrorIs(t, err, ErrBracketTableInvalid)
	})

	t.Run("inactive rows are ignored", func(t *testing.T) {
		b := append(validBrackets(), TaxBracket{IncomeFrom: dec("5"), IncomeTo: dec("10"), IsActive: false})
		sorted, err := ValidateBrackets(b)
		require.NoError(t, err)
		assert.Len(t, sorted, 4)
	})
}

func TestComputeTax(t *testing.T) {
	brackets, err := ValidateBrackets(validBrackets())
	require.NoError(t, err)

	cases := []struct {
		name    string
		taxable string
		want    string
	}{
		{"zero income", "0", "0"},
		{"inside zero-rate bracket", "18820", "0"},
		{"boundary of second bracket", "20833", "0"},
		{"inside second bracket", "30833", "1500"},
		{"inside third bracket", "40000", "3208.60"},
		{"beyond the last bound stays in last bracket", "500000", "116875.30"},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got := ComputeTax(brackets, dec(c.taxable))
			assert.True(t, got.Equal(dec(c.want)), "ComputeTax(%s) = %s, want %s", c.taxable, got, c.want)
		})
	}
}

func TestComputeTaxNeverNegative(t *testing.T) {
	// Defensive clamp against a bracket whose excess_over exceeds the income
	// it matched (data error).
	brackets := []TaxBracket{
		{IncomeFrom: dec("0"), IncomeTo: dec("10000"), BaseTax: dec("0"), RatePercentage: dec("10"), ExcessOver: dec("9000"), IsActive: true},
	}
	got := ComputeTax(brackets, dec("100"))
	assert.True(t, got.IsZero())
}

func TestComputeTaxMonotonic(t *testing.T) {
	brackets, err := ValidateBrackets(validBrackets())
	require.NoError(t, err)

	prev := decimal.Zero
	for income := int64(0); income <= 200000; income += 2500 {
		tax := ComputeTax(brackets, decimal.NewFromInt(income))
		assert.False(t, tax.IsNegative(), "tax for %d is negative", income)
		assert.True(t, tax.GreaterThanOrEqual(prev), "tax decreased at income %d: %s < %s", income, tax, prev)
		prev = tax
	}
}
