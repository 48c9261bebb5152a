package parameter

import (
	"time"

	"github.com/shopspring/decimal"
)

// Well-known configuration keys. Values for absent keys fall back to the
// defaults below so a calculation can always run.
const (
	KeyUFValue          = "valor_uf"
	KeyUTMValue         = "valor_utm"
	KeyMinimumWage      = "sueldo_minimo"
	KeyGratificationPct = "gratificacion_legal_pct"
	KeyUnemploymentPct  = "seguro_cesantia_pct"
)

// GlobalParameter - one configured key/value pair
type GlobalParameter struct {
	ID          string
	Key         string
	Value       decimal.Decimal
	Description string
	UpdatedAt   time.Time
}

// PensionFund (AFP) with its worker contribution rate in percent
type PensionFund struct {
	ID          string
	Name        string
	RatePercent decimal.Decimal
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// HealthInsurer (Isapre/Fonasa) with its contribution rate in percent
type HealthInsurer struct {
	ID          string
	Name        string
	RatePercent decimal.Decimal
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// FamilyAllowanceBracket - one tier of the family-allowance table. Brackets
// are kept ascending by IncomeCeiling; the first bracket whose ceiling is
// >= the worker's taxable income applies.
type FamilyAllowanceBracket struct {
	ID                 string
	Tier               string
	IncomeCeiling      decimal.Decimal
	AmountPerDependent decimal.Decimal
}

// CalcParameters is the immutable snapshot the payroll engine works from.
// It is loaded once per calculation and never mutated by the engine.
type CalcParameters struct {
	UFValue     decimal.Decimal
	UTMValue    decimal.Decimal
	MinimumWage decimal.Decimal

	// GratificationPct and UnemploymentInsuranceRate are fractions
	// (0.25, 0.006), not percent figures.
	GratificationPct          decimal.Decimal
	UnemploymentInsuranceRate decimal.Decimal

	// TaxableIncomeCap = UF value * 81.6, rounded to whole pesos.
	TaxableIncomeCap decimal.Decimal
	// GratificationCap = minimum wage * 4.75 / 12.
	GratificationCap decimal.Decimal

	Brackets []FamilyAllowanceBracket
}

var (
	defaultUFValue          = decimal.NewFromInt(36500)
	defaultUTMValue         = decimal.NewFromInt(64000)
	defaultMinimumWage      = decimal.NewFromInt(460000)
	defaultGratificationPct = decimal.NewFromInt(25)
	defaultUnemploymentPct  = decimal.NewFromFloat(0.6)

	uf81_6     = decimal.NewFromFloat(81.6)
	capFactor  = decimal.NewFromFloat(4.75)
	oneHundred = decimal.NewFromInt(100)
	twelve     = decimal.NewFromInt(12)
)

// BuildCalcParameters derives the calculation snapshot from raw configured
// values plus the family-allowance table. Absent keys take the documented
// defaults; the two caps are derived here, once.
func BuildCalcParameters(raw map[string]decimal.Decimal, brackets []FamilyAllowanceBracket) CalcParameters {
	get := func(key string, fallback decimal.Decimal) decimal.Decimal {
		if v, ok := raw[key]; ok {
			return v
		}
		return fallback
	}

	ufValue := get(KeyUFValue, defaultUFValue)
	minimumWage := get(KeyMinimumWage, defaultMinimumWage)

	return CalcParameters{
		UFValue:                   ufValue,
		UTMValue:                  get(KeyUTMValue, defaultUTMValue),
		MinimumWage:               minimumWage,
		GratificationPct:          get(KeyGratificationPct, defaultGratificationPct).Div(oneHundred),
		UnemploymentInsuranceRate: get(KeyUnemploymentPct, defaultUnemploymentPct).Div(oneHundred),
		TaxableIncomeCap:          ufValue.Mul(uf81_6).Round(0),
		GratificationCap:          minimumWage.Mul(capFactor).Div(twelve),
		Brackets:                  brackets,
	}
}

// BracketFor returns the first bracket whose ceiling covers the taxable
// income, scanning in ascending order. nil when no bracket matches.
func (p CalcParameters) BracketFor(taxableIncome decimal.Decimal) *FamilyAllowanceBracket {
	for i := range p.Brackets {
		if taxableIncome.LessThanOrEqual(p.Brackets[i].IncomeCeiling) {
			return &p.Brackets[i]
		}
	}
	return nil
}
