package payroll

import (
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/opl-logistica/backoffice-go/internal/domain/parameter"
)

// The breakdown is persisted as JSONB and redisplayed by the detail view and
// the payslip exporter without recomputing, so encoding it and decoding it
// back must lose nothing.
func TestBreakdownRoundTrip(t *testing.T) {
	brackets := []parameter.FamilyAllowanceBracket{
		{Tier: "B", IncomeCeiling: decimal.NewFromInt(900000), AmountPerDependent: decimal.NewFromInt(10000)},
	}

	w := testWorker("600000")
	w.HasFamilyAllowance = true
	w.DependentsCount = 2

	rec := Calculate(CalcInput{
		Worker:        w,
		Params:        testParams(brackets),
		Period:        "2026-01",
		Days:          28,
		OvertimeHours: decimal.RequireFromString("3.5"),
		Advance:       decimal.NewFromInt(100000),
		AutoShortfall: decimal.NewFromInt(25000),
		Earnings: []LineItem{
			{Description: "Movilización", Amount: decimal.NewFromInt(30000)},
		},
		EarningsTotal: decimal.NewFromInt(30000),
		Bonuses: []LineItem{
			{Description: "Bono producción", Amount: decimal.NewFromInt(45000)},
		},
		BonusesTotal: decimal.NewFromInt(45000),
		LegalDeductions: []LegalDeductionItem{
			{Description: "Pensión alimenticia", Kind: LegalDeductionPercent, Value: decimal.NewFromInt(5)},
			{Description: "Retención judicial", Kind: LegalDeductionFixed, Value: decimal.NewFromInt(15000)},
		},
		Today: calcToday,
	})

	first, err := json.Marshal(rec.Breakdown)
	require.NoError(t, err)

	var decoded Breakdown
	require.NoError(t, json.Unmarshal(first, &decoded))

	second, err := json.Marshal(decoded)
	require.NoError(t, err)
	assert.JSONEq(t, string(first), string(second))

	assert.Equal(t, rec.Breakdown.ProportionalBase.String(), decoded.ProportionalBase.String())
	assert.Equal(t, rec.Breakdown.DaysWorked, decoded.DaysWorked)
	assert.Equal(t, rec.Breakdown.OvertimeHours.String(), decoded.OvertimeHours.String())
	assert.Equal(t, rec.Breakdown.Gratification.String(), decoded.Gratification.String())
	assert.Equal(t, rec.Breakdown.TaxableIncome.String(), decoded.TaxableIncome.String())
	assert.Equal(t, rec.Breakdown.TaxableForTax.String(), decoded.TaxableForTax.String())
	assert.Equal(t, rec.Breakdown.AutoFamilyAllowance.String(), decoded.AutoFamilyAllowance.String())
	assert.Equal(t, rec.Breakdown.PensionFundName, decoded.PensionFundName)
	assert.Equal(t, rec.Breakdown.TenureExempt, decoded.TenureExempt)
	assert.Equal(t, rec.Breakdown.Period, decoded.Period)

	require.NotNil(t, decoded.BracketTier)
	assert.Equal(t, "B", *decoded.BracketTier)

	require.Len(t, decoded.Earnings, 1)
	assert.Equal(t, "Movilización", decoded.Earnings[0].Description)
	assert.Equal(t, "30000", decoded.Earnings[0].Amount.String())

	require.Len(t, decoded.LegalDeductions, 2)
	assert.Equal(t, LegalDeductionPercent, decoded.LegalDeductions[0].Kind)
	assert.Equal(t, rec.Breakdown.LegalDeductions[0].Computed.String(), decoded.LegalDeductions[0].Computed.String())
	assert.Equal(t, "15000", decoded.LegalDeductions[1].Computed.String())
}
