package contractor

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/opl-logistica/backoffice-go/internal/domain/settlement"
)

func testTariff() CommissionTariff {
	return CommissionTariff{
		Rate5:       decimal.NewFromInt(350),
		Rate11:      decimal.NewFromInt(500),
		Rate15:      decimal.NewFromInt(650),
		Rate45:      decimal.NewFromInt(1800),
		RateCat5:    decimal.NewFromInt(400),
		RateCat15:   decimal.NewFromInt(700),
		RateUltra15: decimal.NewFromInt(750),
	}
}

func TestCylinderPay(t *testing.T) {
	pay := testTariff().CylinderPay(settlement.CylinderCounts{
		C5:      10,
		C11:     20,
		C15:     30,
		C45:     5,
		Cat5:    2,
		Cat15:   1,
		Ultra15: 4,
	})

	// 3500 + 10000 + 19500 + 9000 + 800 + 700 + 3000
	assert.Equal(t, "46500", pay.String())
}

func TestCalculateVATTruncates(t *testing.T) {
	pay := Calculate(CalcInput{
		WorkerID: "w-9",
		Period:   "2026-01",
		Tariff:   testTariff(),
		Activity: settlement.MonthlyActivity{
			Cylinders: settlement.CylinderCounts{C15: 7},
		},
	})

	// Net 4550; 19% is 864.5, truncated on the invoice.
	assert.Equal(t, "4550", pay.NetSubtotal.String())
	assert.Equal(t, "864", pay.VAT.String())
	assert.Equal(t, "5414", pay.GrossTotal.String())
}

func TestCalculateDeductions(t *testing.T) {
	pay := Calculate(CalcInput{
		WorkerID: "w-9",
		Period:   "2026-01",
		Tariff:   testTariff(),
		Activity: settlement.MonthlyActivity{
			Cylinders: settlement.CylinderCounts{C11: 100},
			Advances:  decimal.NewFromInt(30000),
			Shortfall: decimal.NewFromInt(12000),
		},
		TechnicalAssistance: decimal.NewFromInt(50000),
		AdvanceExtra:        decimal.NewFromInt(10000),
		ShortfallExtra:      decimal.NewFromInt(3000),
		OtherDeductions: []DeductionItem{
			{Description: "Combustible", Amount: decimal.RequireFromString("25000.7")},
		},
	})

	assert.Equal(t, "50000", pay.CylinderPay.String())
	assert.Equal(t, "100000", pay.NetSubtotal.String())
	assert.Equal(t, "19000", pay.VAT.String())
	assert.Equal(t, "119000", pay.GrossTotal.String())

	// Other deduction amounts truncate; advances and shortfalls stack their
	// settlement-derived base with the form extras.
	assert.Equal(t, "25000", pay.OtherDeductionsTotal.String())
	assert.Equal(t, "80000", pay.TotalDeductions.String())
	assert.Equal(t, "39000", pay.Payout.String())
}

func TestCalculateZeroActivity(t *testing.T) {
	pay := Calculate(CalcInput{
		WorkerID: "w-9",
		Period:   "2026-01",
		Tariff:   testTariff(),
	})

	assert.True(t, pay.CylinderPay.IsZero())
	assert.True(t, pay.VAT.IsZero())
	assert.True(t, pay.Payout.IsZero())
}

func TestCalculateDeterministic(t *testing.T) {
	in := CalcInput{
		WorkerID: "w-9",
		Period:   "2026-01",
		Tariff:   testTariff(),
		Activity: settlement.MonthlyActivity{
			Cylinders: settlement.CylinderCounts{C5: 3, C45: 2},
			Advances:  decimal.NewFromInt(5000),
		},
		InvoiceNumber: "F-1234",
	}

	first := Calculate(in)
	second := Calculate(in)

	assert.Equal(t, first.Payout.String(), second.Payout.String())
	assert.Equal(t, first.VAT.String(), second.VAT.String())
	assert.Equal(t, "F-1234", first.InvoiceNumber)
}
