package contractor

import (
	"github.com/shopspring/decimal"

	"github.com/opl-logistica/backoffice-go/internal/domain/settlement"
)

var vatRate = decimal.NewFromFloat(0.19)

// CalcInput carries one contractor calculation's inputs. Activity comes from
// the settlement aggregator; everything else from the form.
type CalcInput struct {
	WorkerID string
	Period   string
	Tariff   CommissionTariff
	Activity settlement.MonthlyActivity

	InvoiceNumber       string
	TechnicalAssistance decimal.Decimal
	AdvanceExtra        decimal.Decimal
	ShortfallExtra      decimal.Decimal
	OtherDeductions     []DeductionItem
}

// Calculate prices the month's cylinders and assembles the invoice figures.
// VAT is truncated to whole pesos, matching the amounts on the contractors'
// paper invoices. Pure function, deterministic for a given input.
func Calculate(in CalcInput) ContractorPayment {
	cylinderPay := in.Tariff.CylinderPay(in.Activity.Cylinders)

	netSubtotal := cylinderPay.Add(in.TechnicalAssistance)
	vat := netSubtotal.Mul(vatRate).Truncate(0)
	grossTotal := netSubtotal.Add(vat)

	otherTotal := decimal.Zero
	for _, item := range in.OtherDeductions {
		otherTotal = otherTotal.Add(item.Amount.Truncate(0))
	}

	totalAdvance := in.Activity.Advances.Add(in.AdvanceExtra)
	totalShortfall := in.Activity.Shortfall.Add(in.ShortfallExtra)
	totalDeductions := totalAdvance.Add(totalShortfall).Add(otherTotal)

	return ContractorPayment{
		WorkerID:             in.WorkerID,
		Period:               in.Period,
		InvoiceNumber:        in.InvoiceNumber,
		Cylinders:            in.Activity.Cylinders,
		CylinderPay:          cylinderPay,
		TechnicalAssistance:  in.TechnicalAssistance,
		NetSubtotal:          netSubtotal,
		VAT:                  vat,
		GrossTotal:           grossTotal,
		AdvanceBase:          in.Activity.Advances,
		AdvanceExtra:         in.AdvanceExtra,
		ShortfallBase:        in.Activity.Shortfall,
		ShortfallExtra:       in.ShortfallExtra,
		OtherDeductions:      in.OtherDeductions,
		OtherDeductionsTotal: otherTotal,
		TotalDeductions:      totalDeductions,
		Payout:               grossTotal.Sub(totalDeductions),
	}
}
