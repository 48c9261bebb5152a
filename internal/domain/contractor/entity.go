package contractor

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/opl-logistica/backoffice-go/internal/domain/settlement"
)

// CommissionTariff - the per-cylinder payment rates for contractors. A single
// current tariff applies to everyone; updating it only affects calculations
// run afterwards.
type CommissionTariff struct {
	ID          string
	Rate5       decimal.Decimal
	Rate11      decimal.Decimal
	Rate15      decimal.Decimal
	Rate45      decimal.Decimal
	RateCat5    decimal.Decimal
	RateCat15   decimal.Decimal
	RateUltra15 decimal.Decimal
	UpdatedAt   time.Time
}

// CylinderPay prices a month's delivered cylinders against the tariff.
func (t CommissionTariff) CylinderPay(c settlement.CylinderCounts) decimal.Decimal {
	total := decimal.Zero
	total = total.Add(t.Rate5.Mul(decimal.NewFromInt(int64(c.C5))))
	total = total.Add(t.Rate11.Mul(decimal.NewFromInt(int64(c.C11))))
	total = total.Add(t.Rate15.Mul(decimal.NewFromInt(int64(c.C15))))
	total = total.Add(t.Rate45.Mul(decimal.NewFromInt(int64(c.C45))))
	total = total.Add(t.RateCat5.Mul(decimal.NewFromInt(int64(c.Cat5))))
	total = total.Add(t.RateCat15.Mul(decimal.NewFromInt(int64(c.Cat15))))
	total = total.Add(t.RateUltra15.Mul(decimal.NewFromInt(int64(c.Ultra15))))
	return total
}

// DeductionItem - one caller-submitted deduction row on the contractor form
type DeductionItem struct {
	Description string          `json:"desc"`
	Amount      decimal.Decimal `json:"monto"`
}

// ContractorPayment - one computed month for one external worker. Contractors
// invoice the company, so the payment is built up as net + VAT rather than
// through the salaried deduction scheme. One payment exists per (worker,
// period); recalculation overwrites it.
type ContractorPayment struct {
	ID            string
	WorkerID      string
	Period        string // YYYY-MM
	InvoiceNumber string

	Cylinders   settlement.CylinderCounts
	CylinderPay decimal.Decimal
	// TechnicalAssistance is extra net income entered on the form.
	TechnicalAssistance decimal.Decimal
	NetSubtotal         decimal.Decimal
	VAT                 decimal.Decimal
	GrossTotal          decimal.Decimal

	// Base figures aggregate the month's settlements; Extra figures are
	// manual adjustments from the form.
	AdvanceBase    decimal.Decimal
	AdvanceExtra   decimal.Decimal
	ShortfallBase  decimal.Decimal
	ShortfallExtra decimal.Decimal

	OtherDeductions      []DeductionItem
	OtherDeductionsTotal decimal.Decimal
	TotalDeductions      decimal.Decimal

	Payout decimal.Decimal

	CreatedAt time.Time
	UpdatedAt time.Time

	// Joined fields
	WorkerName  *string
	WorkerTaxID *string
}
