package parameter

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildCalcParametersDefaults(t *testing.T) {
	p := BuildCalcParameters(map[string]decimal.Decimal{}, nil)

	assert.Equal(t, "36500", p.UFValue.String())
	assert.Equal(t, "64000", p.UTMValue.String())
	assert.Equal(t, "460000", p.MinimumWage.String())
	assert.Equal(t, "0.25", p.GratificationPct.String())
	assert.Equal(t, "0.006", p.UnemploymentInsuranceRate.String())

	// Caps derive from the UF value and minimum wage.
	assert.Equal(t, "2978400", p.TaxableIncomeCap.String())
	assert.True(t, p.GratificationCap.Equal(decimal.RequireFromString("2185000").Div(decimal.NewFromInt(12))))
}

func TestBuildCalcParametersConfiguredValues(t *testing.T) {
	raw := map[string]decimal.Decimal{
		KeyUFValue:          decimal.NewFromInt(38000),
		KeyMinimumWage:      decimal.NewFromInt(500000),
		KeyGratificationPct: decimal.NewFromInt(30),
		KeyUnemploymentPct:  decimal.RequireFromString("0.8"),
	}
	p := BuildCalcParameters(raw, nil)

	assert.Equal(t, "0.3", p.GratificationPct.String())
	assert.Equal(t, "0.008", p.UnemploymentInsuranceRate.String())
	// 38000 * 81.6 = 3100800
	assert.Equal(t, "3100800", p.TaxableIncomeCap.String())
	// 500000 * 4.75 / 12
	assert.True(t, p.GratificationCap.Equal(decimal.RequireFromString("2375000").Div(decimal.NewFromInt(12))))
}

func TestBracketFor(t *testing.T) {
	p := CalcParameters{Brackets: []FamilyAllowanceBracket{
		{Tier: "A", IncomeCeiling: decimal.NewFromInt(500000)},
		{Tier: "B", IncomeCeiling: decimal.NewFromInt(700000)},
		{Tier: "C", IncomeCeiling: decimal.NewFromInt(900000)},
	}}

	b := p.BracketFor(decimal.NewFromInt(400000))
	require.NotNil(t, b)
	assert.Equal(t, "A", b.Tier)

	// Boundary income belongs to the bracket whose ceiling it touches.
	b = p.BracketFor(decimal.NewFromInt(500000))
	require.NotNil(t, b)
	assert.Equal(t, "A", b.Tier)

	b = p.BracketFor(decimal.NewFromInt(500001))
	require.NotNil(t, b)
	assert.Equal(t, "B", b.Tier)

	assert.Nil(t, p.BracketFor(decimal.NewFromInt(900001)))
}
