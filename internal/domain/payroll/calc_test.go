package payroll

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/opl-logistica/backoffice-go/internal/domain/parameter"
	"github.com/opl-logistica/backoffice-go/internal/domain/worker"
)

var calcToday = time.Date(2026, 1, 15, 0, 0, 0, 0, time.UTC)

func decPtr(v string) *decimal.Decimal {
	d := decimal.RequireFromString(v)
	return &d
}

func strPtr(s string) *string { return &s }

func testParams(brackets []parameter.FamilyAllowanceBracket) parameter.CalcParameters {
	return parameter.BuildCalcParameters(map[string]decimal.Decimal{}, brackets)
}

func testWorker(baseSalary string) worker.Worker {
	hire := calcToday.AddDate(-3, 0, 0)
	return worker.Worker{
		ID:                "w-1",
		Name:              "Juan Pérez",
		Kind:              worker.KindInternal,
		BaseSalary:        decimal.RequireFromString(baseSalary),
		OvertimeRate:      decimal.RequireFromString("4500"),
		HireDate:          &hire,
		PensionFundName:   strPtr("AFP Modelo"),
		PensionFundRate:   decPtr("10"),
		HealthInsurerName: strPtr("Fonasa"),
		HealthInsurerRate: decPtr("7"),
	}
}

func TestCalculateFullMonth(t *testing.T) {
	rec := Calculate(CalcInput{
		Worker: testWorker("600000"),
		Params: testParams(nil),
		Period: "2026-01",
		Days:   30,
		Today:  calcToday,
	})

	assert.Equal(t, "600000", rec.Breakdown.ProportionalBase.String())
	assert.Equal(t, "150000", rec.Breakdown.Gratification.String())
	assert.Equal(t, "750000", rec.Breakdown.TaxableIncome.String())
	assert.Equal(t, "75000", rec.Breakdown.PensionAmount.String())
	assert.Equal(t, "52500", rec.Breakdown.HealthAmount.String())
	assert.Equal(t, "4500", rec.Breakdown.UnemploymentAmount.String())

	// 618000 * 0.04 is below the rebate, so no tax.
	assert.Equal(t, "618000", rec.Breakdown.TaxableForTax.String())
	assert.True(t, rec.TaxAmount.IsZero())

	assert.Equal(t, "750000", rec.TotalEarnings.String())
	assert.Equal(t, "132000", rec.TotalDeductions.String())
	assert.Equal(t, "618000", rec.NetPay.String())
}

func TestCalculateProportionalDaysRoundHalfUp(t *testing.T) {
	rec := Calculate(CalcInput{
		Worker: testWorker("500000"),
		Params: testParams(nil),
		Period: "2026-01",
		Days:   7,
		Today:  calcToday,
	})

	// 500000 / 30 * 7 = 116666.66..., rounded half-up.
	assert.Equal(t, "116667", rec.Breakdown.ProportionalBase.String())
	assert.Equal(t, 7, rec.Breakdown.DaysWorked)
}

func TestCalculateZeroDaysDefaultsToFullMonth(t *testing.T) {
	rec := Calculate(CalcInput{
		Worker: testWorker("600000"),
		Params: testParams(nil),
		Period: "2026-01",
		Days:   0,
		Today:  calcToday,
	})

	assert.Equal(t, "600000", rec.Breakdown.ProportionalBase.String())
	assert.Equal(t, 30, rec.Breakdown.DaysWorked)
}

func TestCalculateGratificationCapBinds(t *testing.T) {
	rec := Calculate(CalcInput{
		Worker: testWorker("1000000"),
		Params: testParams(nil),
		Period: "2026-01",
		Days:   30,
		Today:  calcToday,
	})

	// 25% of 1000000 exceeds the cap 460000 * 4.75 / 12 = 182083.33...
	assert.Equal(t, "182083", rec.Breakdown.Gratification.String())
	assert.Equal(t, "1182083", rec.Breakdown.TaxableIncome.String())
}

func TestCalculateTaxableIncomeCapBindsDeductions(t *testing.T) {
	rec := Calculate(CalcInput{
		Worker: testWorker("4000000"),
		Params: testParams(nil),
		Period: "2026-01",
		Days:   30,
		Today:  calcToday,
	})

	// Contributions are computed on the capped base 36500 * 81.6 = 2978400,
	// not on the full taxable income.
	require.True(t, rec.Breakdown.TaxableIncome.GreaterThan(decimal.NewFromInt(2978400)))
	assert.Equal(t, "297840", rec.Breakdown.PensionAmount.String())
	assert.Equal(t, "208488", rec.Breakdown.HealthAmount.String())
	assert.Equal(t, "17870", rec.Breakdown.UnemploymentAmount.String())
}

func TestCalculateFlatTax(t *testing.T) {
	rec := Calculate(CalcInput{
		Worker: testWorker("2000000"),
		Params: testParams(nil),
		Period: "2026-01",
		Days:   30,
		Today:  calcToday,
	})

	// preGrat 2000000, grat capped 182083, taxable 2182083, deduction base
	// 2182083 (below cap): pension 218208, health 152746, unemployment 13092.
	// taxableForTax 1798037; 0.04 * 1798037 - 37218.42 = 34703.06 -> 34703.
	assert.Equal(t, "1798037", rec.Breakdown.TaxableForTax.String())
	assert.Equal(t, "34703", rec.TaxAmount.String())
}

func TestCalculateTaxableForTaxFlooredAtZero(t *testing.T) {
	// A contribution rate high enough to eat the whole taxable income must
	// not persist a negative tax base.
	w := testWorker("600000")
	w.PensionFundRate = decPtr("120")

	rec := Calculate(CalcInput{
		Worker: w,
		Params: testParams(nil),
		Period: "2026-01",
		Days:   30,
		Today:  calcToday,
	})

	// 750000 - 900000 - 52500 - 4500 would be -207000.
	assert.Equal(t, "0", rec.Breakdown.TaxableForTax.String())
	assert.True(t, rec.TaxAmount.IsZero())
}

func TestCalculateShortfallOffset(t *testing.T) {
	in := CalcInput{
		Worker:          testWorker("600000"),
		Params:          testParams(nil),
		Period:          "2026-01",
		Days:            30,
		AutoShortfall:   decimal.NewFromInt(50000),
		ShortfallOffset: decimal.NewFromInt(20000),
		Today:           calcToday,
	}
	rec := Calculate(in)
	assert.Equal(t, "30000", rec.ShortfallAmount.String())

	// Over-offsetting clamps at zero rather than crediting the worker.
	in.ShortfallOffset = decimal.NewFromInt(70000)
	rec = Calculate(in)
	assert.True(t, rec.ShortfallAmount.IsZero())
}

func TestCalculatePercentLegalDeduction(t *testing.T) {
	rec := Calculate(CalcInput{
		Worker: testWorker("600000"),
		Params: testParams(nil),
		Period: "2026-01",
		Days:   30,
		LegalDeductions: []LegalDeductionItem{
			{Description: "Pensión alimenticia", Kind: LegalDeductionPercent, Value: decimal.NewFromInt(5)},
			{Description: "Retención judicial", Kind: LegalDeductionFixed, Value: decimal.NewFromInt(15000)},
		},
		Today: calcToday,
	})

	require.Len(t, rec.Breakdown.LegalDeductions, 2)
	// 5% of taxable income 750000.
	assert.Equal(t, "37500", rec.Breakdown.LegalDeductions[0].Computed.String())
	assert.Equal(t, "15000", rec.Breakdown.LegalDeductions[1].Computed.String())
	assert.Equal(t, "184500", rec.TotalDeductions.String())
}

func TestCalculateFamilyAllowanceBracket(t *testing.T) {
	brackets := []parameter.FamilyAllowanceBracket{
		{Tier: "A", IncomeCeiling: decimal.NewFromInt(500000), AmountPerDependent: decimal.NewFromInt(15000)},
		{Tier: "B", IncomeCeiling: decimal.NewFromInt(700000), AmountPerDependent: decimal.NewFromInt(10000)},
		{Tier: "C", IncomeCeiling: decimal.NewFromInt(900000), AmountPerDependent: decimal.NewFromInt(5000)},
	}

	w := testWorker("600000")
	w.HasFamilyAllowance = true
	w.DependentsCount = 2

	rec := Calculate(CalcInput{
		Worker: w,
		Params: testParams(brackets),
		Period: "2026-01",
		Days:   30,
		Today:  calcToday,
	})

	// Taxable income 750000 falls in the first bracket whose ceiling covers it.
	require.NotNil(t, rec.Breakdown.BracketTier)
	assert.Equal(t, "C", *rec.Breakdown.BracketTier)
	assert.Equal(t, "10000", rec.Breakdown.AutoFamilyAllowance.String())
	assert.Equal(t, "760000", rec.TotalEarnings.String())
}

func TestCalculateBracketTierOnlyWhenGranted(t *testing.T) {
	brackets := []parameter.FamilyAllowanceBracket{
		{Tier: "A", IncomeCeiling: decimal.NewFromInt(900000), AmountPerDependent: decimal.NewFromInt(15000)},
	}

	// Income lands inside the bracket, but without the allowance flag (or
	// without dependents) no tier is recorded.
	w := testWorker("600000")

	rec := Calculate(CalcInput{
		Worker: w,
		Params: testParams(brackets),
		Period: "2026-01",
		Days:   30,
		Today:  calcToday,
	})

	assert.Nil(t, rec.Breakdown.BracketTier)
	assert.True(t, rec.Breakdown.AutoFamilyAllowance.IsZero())

	w.HasFamilyAllowance = true
	w.DependentsCount = 0
	rec = Calculate(CalcInput{
		Worker: w,
		Params: testParams(brackets),
		Period: "2026-01",
		Days:   30,
		Today:  calcToday,
	})
	assert.Nil(t, rec.Breakdown.BracketTier)
}

func TestCalculateFamilyAllowanceAboveAllBrackets(t *testing.T) {
	brackets := []parameter.FamilyAllowanceBracket{
		{Tier: "A", IncomeCeiling: decimal.NewFromInt(500000), AmountPerDependent: decimal.NewFromInt(15000)},
	}

	w := testWorker("600000")
	w.HasFamilyAllowance = true
	w.DependentsCount = 3

	rec := Calculate(CalcInput{
		Worker: w,
		Params: testParams(brackets),
		Period: "2026-01",
		Days:   30,
		Today:  calcToday,
	})

	assert.Nil(t, rec.Breakdown.BracketTier)
	assert.True(t, rec.Breakdown.AutoFamilyAllowance.IsZero())
}

func TestCalculateTenureExemption(t *testing.T) {
	// 11 years at 365.25 days/year is exactly 96426 hours.
	w := testWorker("600000")
	exempt := calcToday.Add(-96426 * time.Hour)
	w.HireDate = &exempt

	rec := Calculate(CalcInput{
		Worker: w,
		Params: testParams(nil),
		Period: "2026-01",
		Days:   30,
		Today:  calcToday,
	})
	assert.True(t, rec.Breakdown.TenureExempt)
	assert.True(t, rec.Breakdown.UnemploymentAmount.IsZero())

	// One day short of eleven years still contributes.
	almost := calcToday.Add(-(96426 - 24) * time.Hour)
	w.HireDate = &almost
	rec = Calculate(CalcInput{
		Worker: w,
		Params: testParams(nil),
		Period: "2026-01",
		Days:   30,
		Today:  calcToday,
	})
	assert.False(t, rec.Breakdown.TenureExempt)
	assert.Equal(t, "4500", rec.Breakdown.UnemploymentAmount.String())
}

func TestCalculateNoPensionOrHealthAssigned(t *testing.T) {
	w := testWorker("600000")
	w.PensionFundName = nil
	w.PensionFundRate = nil
	w.HealthInsurerName = nil
	w.HealthInsurerRate = nil

	rec := Calculate(CalcInput{
		Worker: w,
		Params: testParams(nil),
		Period: "2026-01",
		Days:   30,
		Today:  calcToday,
	})

	assert.True(t, rec.Breakdown.PensionAmount.IsZero())
	assert.True(t, rec.Breakdown.HealthAmount.IsZero())
	assert.Empty(t, rec.Breakdown.PensionFundName)
}

func TestCalculateNetPayMayGoNegative(t *testing.T) {
	rec := Calculate(CalcInput{
		Worker:  testWorker("600000"),
		Params:  testParams(nil),
		Period:  "2026-01",
		Days:    30,
		Advance: decimal.NewFromInt(900000),
		Today:   calcToday,
	})

	assert.True(t, rec.NetPay.IsNegative())
	assert.Equal(t, "-282000", rec.NetPay.String())
}

func TestCalculateDeterministic(t *testing.T) {
	in := CalcInput{
		Worker:        testWorker("755000"),
		Params:        testParams(nil),
		Period:        "2026-01",
		Days:          28,
		OvertimeHours: decimal.RequireFromString("3.5"),
		Advance:       decimal.NewFromInt(120000),
		AutoShortfall: decimal.NewFromInt(18000),
		Today:         calcToday,
	}

	first := Calculate(in)
	second := Calculate(in)

	assert.Equal(t, first.NetPay.String(), second.NetPay.String())
	assert.Equal(t, first.TotalEarnings.String(), second.TotalEarnings.String())
	assert.Equal(t, first.TotalDeductions.String(), second.TotalDeductions.String())
	assert.Equal(t, first.TaxAmount.String(), second.TaxAmount.String())
}

func TestCalculateOvertimePay(t *testing.T) {
	rec := Calculate(CalcInput{
		Worker:        testWorker("600000"),
		Params:        testParams(nil),
		Period:        "2026-01",
		Days:          30,
		OvertimeHours: decimal.RequireFromString("10.5"),
		Today:         calcToday,
	})

	// 10.5 * 4500 = 47250, feeds the gratification base.
	assert.Equal(t, "47250", rec.Breakdown.OvertimePay.String())
	assert.Equal(t, "161813", rec.Breakdown.Gratification.String())
}
