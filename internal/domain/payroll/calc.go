package payroll

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/opl-logistica/backoffice-go/internal/domain/parameter"
	"github.com/opl-logistica/backoffice-go/internal/domain/worker"
)

// Pension, health and unemployment insurance stop applying to income above
// the legal cap, and the gratification is capped in currency units. Both
// caps arrive precomputed in parameter.CalcParameters.

const (
	// Workers with eleven or more years of tenure are exempt from the
	// unemployment insurance contribution.
	unemploymentExemptYears = 11

	// Standard month length used for proportional base pay.
	standardMonthDays = 30
)

var (
	taxRate    = decimal.NewFromFloat(0.04)
	taxRebate  = decimal.NewFromFloat(37218.42)
	thirty     = decimal.NewFromInt(standardMonthDays)
	oneHundred = decimal.NewFromInt(100)
)

// CalcInput carries everything one calculation depends on. Line-item slices
// and their totals come pre-normalized from CollectItems / CollectLegalItems;
// AutoShortfall comes from the settlement aggregator. Today is injected so
// the tenure exemption is testable against a fixed date.
type CalcInput struct {
	Worker worker.Worker
	Params parameter.CalcParameters
	Period string

	Days          int
	OvertimeHours decimal.Decimal

	Advance         decimal.Decimal
	ShortfallOffset decimal.Decimal
	AutoShortfall   decimal.Decimal

	Earnings              []LineItem
	EarningsTotal         decimal.Decimal
	FamilyAllowances      []LineItem
	FamilyAllowancesTotal decimal.Decimal
	Bonuses               []LineItem
	BonusesTotal          decimal.Decimal
	OtherDeductions       []LineItem
	OtherDeductionsTotal  decimal.Decimal
	LegalDeductions       []LegalDeductionItem

	Today time.Time
}

// Calculate runs the full derivation for a salaried worker and returns the
// record to persist. It is a pure function of its input: same input, same
// record, byte for byte.
//
// Every intermediate is rounded half-up to whole pesos as it is produced,
// not once at the end; the accumulated per-step rounding is part of the
// figures workers and auditors expect to see.
func Calculate(in CalcInput) PayrollRecord {
	days := in.Days
	if days == 0 {
		days = standardMonthDays
	}

	// 1-2. Proportional base pay and overtime.
	proportionalBase := in.Worker.BaseSalary.Div(thirty).Mul(decimal.NewFromInt(int64(days))).Round(0)
	overtimePay := in.OvertimeHours.Mul(in.Worker.OvertimeRate).Round(0)

	// 3-4. Gratification on the pre-gratification base, capped in pesos.
	preGratBase := proportionalBase.Add(overtimePay).Add(in.EarningsTotal)
	gratification := decimal.Min(in.Params.GratificationPct.Mul(preGratBase), in.Params.GratificationCap).Round(0)

	// 5-6. Taxable income, and the capped base legal deductions apply to.
	taxableIncome := preGratBase.Add(gratification)
	deductionBase := decimal.Min(taxableIncome, in.Params.TaxableIncomeCap)

	// 7-8. Pension and health contributions. An unassigned fund or insurer
	// is a valid zero-contribution case.
	pensionRate := decimal.Zero
	pensionName := ""
	if in.Worker.PensionFundRate != nil {
		pensionRate = *in.Worker.PensionFundRate
	}
	if in.Worker.PensionFundName != nil {
		pensionName = *in.Worker.PensionFundName
	}
	pensionAmount := deductionBase.Mul(pensionRate).Div(oneHundred).Round(0)

	healthRate := decimal.Zero
	healthName := ""
	if in.Worker.HealthInsurerRate != nil {
		healthRate = *in.Worker.HealthInsurerRate
	}
	if in.Worker.HealthInsurerName != nil {
		healthName = *in.Worker.HealthInsurerName
	}
	healthAmount := deductionBase.Mul(healthRate).Div(oneHundred).Round(0)

	// 9. Unemployment insurance, waived at eleven years of tenure.
	tenureExempt := in.Worker.Tenure(in.Today) >= unemploymentExemptYears
	unemploymentRate := in.Params.UnemploymentInsuranceRate
	if tenureExempt {
		unemploymentRate = decimal.Zero
	}
	unemploymentAmount := deductionBase.Mul(unemploymentRate).Round(0)

	// Percent-based legal deductions can only be resolved now that taxable
	// income is known; fixed ones pass through as declared.
	legalItems := make([]LegalDeductionItem, len(in.LegalDeductions))
	legalTotal := decimal.Zero
	for i, item := range in.LegalDeductions {
		if item.Kind == LegalDeductionPercent {
			item.Computed = taxableIncome.Mul(item.Value).Div(oneHundred).Round(0)
		} else {
			item.Computed = item.Value
		}
		legalItems[i] = item
		legalTotal = legalTotal.Add(item.Computed)
	}

	// 10. Family allowance: automatic bracket lookup plus manual add-ons.
	// The tier is only recorded when an allowance was actually granted.
	autoAllowance := decimal.Zero
	var bracketTier *string
	if in.Worker.HasFamilyAllowance && in.Worker.DependentsCount > 0 {
		if bracket := in.Params.BracketFor(taxableIncome); bracket != nil {
			tier := bracket.Tier
			bracketTier = &tier
			autoAllowance = bracket.AmountPerDependent.Mul(decimal.NewFromInt(int64(in.Worker.DependentsCount)))
		}
	}
	totalFamilyAllowance := autoAllowance.Add(in.FamilyAllowancesTotal)

	// 11. Income tax on taxable income net of legal contributions, floored at
	// zero. The flat formula is a deliberate simplification carried over from
	// the figures already on record; do not substitute the progressive table.
	taxableForTax := decimal.Max(decimal.Zero,
		taxableIncome.Sub(pensionAmount).Sub(healthAmount).Sub(unemploymentAmount))
	taxAmount := decimal.Zero
	if taxableForTax.IsPositive() {
		taxAmount = decimal.Max(decimal.Zero, taxableForTax.Mul(taxRate).Sub(taxRebate).Round(0))
	}

	// 12. Cash shortfall net of the manual offset, never negative.
	finalShortfall := decimal.Max(decimal.Zero, in.AutoShortfall.Sub(in.ShortfallOffset))

	// 13-15. Totals. Net pay may be negative; that means the worker owes
	// the company.
	totalEarnings := taxableIncome.Add(totalFamilyAllowance).Add(in.BonusesTotal)
	totalDeductions := pensionAmount.
		Add(healthAmount).
		Add(unemploymentAmount).
		Add(taxAmount).
		Add(legalTotal).
		Add(in.Advance).
		Add(in.OtherDeductionsTotal).
		Add(finalShortfall)
	netPay := totalEarnings.Sub(totalDeductions)

	return PayrollRecord{
		WorkerID:        in.Worker.ID,
		Period:          in.Period,
		NetPay:          netPay,
		TotalEarnings:   totalEarnings,
		TotalDeductions: totalDeductions,
		TaxAmount:       taxAmount,
		ShortfallAmount: finalShortfall,
		Breakdown: Breakdown{
			ProportionalBase:    proportionalBase,
			DaysWorked:          days,
			OvertimeHours:       in.OvertimeHours,
			OvertimePay:         overtimePay,
			Earnings:            in.Earnings,
			FamilyAllowances:    in.FamilyAllowances,
			Bonuses:             in.Bonuses,
			OtherDeductions:     in.OtherDeductions,
			LegalDeductions:     legalItems,
			Advance:             in.Advance,
			AutoShortfall:       in.AutoShortfall,
			ShortfallOffset:     in.ShortfallOffset,
			AutoFamilyAllowance: autoAllowance,
			TaxableIncome:       taxableIncome,
			Gratification:       gratification,
			PensionRate:         pensionRate,
			PensionFundName:     pensionName,
			PensionAmount:       pensionAmount,
			HealthRate:          healthRate,
			HealthInsurerName:   healthName,
			HealthAmount:        healthAmount,
			UnemploymentAmount:  unemploymentAmount,
			BracketTier:         bracketTier,
			TaxAmount:           taxAmount,
			TaxableForTax:       taxableForTax,
			ShortfallAmount:     finalShortfall,
			Period:              in.Period,
			TenureExempt:        tenureExempt,
		},
	}
}
