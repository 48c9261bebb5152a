package contractor

import (
	"encoding/json"
	"time"

	"github.com/shopspring/decimal"

	"github.com/opl-logistica/backoffice-go/internal/domain/settlement"
	"github.com/opl-logistica/backoffice-go/internal/pkg/validator"
)

// CalculateRequest mirrors the contractor payment form. OtherDeductions
// arrives as raw JSON and degrades to an empty list when malformed.
type CalculateRequest struct {
	WorkerID string `json:"-"`
	Period   string `json:"periodo"`

	InvoiceNumber       string          `json:"nro_factura,omitempty"`
	TechnicalAssistance decimal.Decimal `json:"asistencia_tecnica"`
	AdvanceExtra        decimal.Decimal `json:"anticipo_extra"`
	ShortfallExtra      decimal.Decimal `json:"faltante_extra"`
	OtherDeductions     json.RawMessage `json:"detalle_otros_descuentos,omitempty"`
}

func (r *CalculateRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsValidPeriod(r.Period) {
		errs = append(errs, validator.ValidationError{Field: "periodo", Message: "must be YYYY-MM"})
	}
	if r.TechnicalAssistance.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "asistencia_tecnica", Message: "must be non-negative"})
	}
	if r.AdvanceExtra.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "anticipo_extra", Message: "must be non-negative"})
	}
	if r.ShortfallExtra.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "faltante_extra", Message: "must be non-negative"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// CollectDeductions normalizes the raw other-deductions list. Malformed
// input yields an empty list; amounts are truncated to whole pesos.
func CollectDeductions(raw json.RawMessage) []DeductionItem {
	if len(raw) == 0 {
		return []DeductionItem{}
	}
	var items []DeductionItem
	if err := json.Unmarshal(raw, &items); err != nil {
		return []DeductionItem{}
	}
	for i := range items {
		items[i].Amount = items[i].Amount.Truncate(0)
	}
	return items
}

type UpdateTariffRequest struct {
	Rate5       decimal.Decimal `json:"tarifa_5kg"`
	Rate11      decimal.Decimal `json:"tarifa_11kg"`
	Rate15      decimal.Decimal `json:"tarifa_15kg"`
	Rate45      decimal.Decimal `json:"tarifa_45kg"`
	RateCat5    decimal.Decimal `json:"tarifa_cat_5kg"`
	RateCat15   decimal.Decimal `json:"tarifa_cat_15kg"`
	RateUltra15 decimal.Decimal `json:"tarifa_ultra_15kg"`
}

func (r *UpdateTariffRequest) Validate() error {
	var errs validator.ValidationErrors

	rates := map[string]decimal.Decimal{
		"tarifa_5kg":        r.Rate5,
		"tarifa_11kg":       r.Rate11,
		"tarifa_15kg":       r.Rate15,
		"tarifa_45kg":       r.Rate45,
		"tarifa_cat_5kg":    r.RateCat5,
		"tarifa_cat_15kg":   r.RateCat15,
		"tarifa_ultra_15kg": r.RateUltra15,
	}
	for field, rate := range rates {
		if rate.IsNegative() {
			errs = append(errs, validator.ValidationError{Field: field, Message: "must be non-negative"})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type TariffResponse struct {
	Rate5       decimal.Decimal `json:"tarifa_5kg"`
	Rate11      decimal.Decimal `json:"tarifa_11kg"`
	Rate15      decimal.Decimal `json:"tarifa_15kg"`
	Rate45      decimal.Decimal `json:"tarifa_45kg"`
	RateCat5    decimal.Decimal `json:"tarifa_cat_5kg"`
	RateCat15   decimal.Decimal `json:"tarifa_cat_15kg"`
	RateUltra15 decimal.Decimal `json:"tarifa_ultra_15kg"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

func NewTariffResponse(t *CommissionTariff) *TariffResponse {
	return &TariffResponse{
		Rate5:       t.Rate5,
		Rate11:      t.Rate11,
		Rate15:      t.Rate15,
		Rate45:      t.Rate45,
		RateCat5:    t.RateCat5,
		RateCat15:   t.RateCat15,
		RateUltra15: t.RateUltra15,
		UpdatedAt:   t.UpdatedAt,
	}
}

// FormDefaultsResponse pre-fills a fresh contractor form with the month's
// aggregated settlement figures and the priced cylinder pay.
type FormDefaultsResponse struct {
	WorkerID      string                    `json:"worker_id"`
	WorkerName    string                    `json:"worker_name"`
	Period        string                    `json:"periodo"`
	Cylinders     settlement.CylinderCounts `json:"conteo_cilindros"`
	CylinderPay   decimal.Decimal           `json:"pago_cilindros"`
	AdvanceBase   decimal.Decimal           `json:"anticipo_base"`
	ShortfallBase decimal.Decimal           `json:"faltante_base"`
}

type PaymentResponse struct {
	ID                   string                    `json:"id"`
	WorkerID             string                    `json:"worker_id"`
	WorkerName           *string                   `json:"worker_name,omitempty"`
	WorkerTaxID          *string                   `json:"worker_tax_id,omitempty"`
	Period               string                    `json:"periodo"`
	InvoiceNumber        string                    `json:"nro_factura,omitempty"`
	Cylinders            settlement.CylinderCounts `json:"conteo_cilindros"`
	CylinderPay          decimal.Decimal           `json:"pago_cilindros"`
	TechnicalAssistance  decimal.Decimal           `json:"asistencia_tecnica"`
	NetSubtotal          decimal.Decimal           `json:"subtotal_neto"`
	VAT                  decimal.Decimal           `json:"iva"`
	GrossTotal           decimal.Decimal           `json:"total_bruto"`
	AdvanceBase          decimal.Decimal           `json:"anticipo_base"`
	AdvanceExtra         decimal.Decimal           `json:"anticipo_extra"`
	ShortfallBase        decimal.Decimal           `json:"faltante_base"`
	ShortfallExtra       decimal.Decimal           `json:"faltante_extra"`
	OtherDeductions      []DeductionItem           `json:"otros_descuentos"`
	OtherDeductionsTotal decimal.Decimal           `json:"total_otros_descuentos"`
	TotalDeductions      decimal.Decimal           `json:"total_descuentos"`
	Payout               decimal.Decimal           `json:"monto_total_pagar"`
	CreatedAt            time.Time                 `json:"created_at"`
	UpdatedAt            time.Time                 `json:"updated_at"`
}

func NewPaymentResponse(p *ContractorPayment) *PaymentResponse {
	return &PaymentResponse{
		ID:                   p.ID,
		WorkerID:             p.WorkerID,
		WorkerName:           p.WorkerName,
		WorkerTaxID:          p.WorkerTaxID,
		Period:               p.Period,
		InvoiceNumber:        p.InvoiceNumber,
		Cylinders:            p.Cylinders,
		CylinderPay:          p.CylinderPay,
		TechnicalAssistance:  p.TechnicalAssistance,
		NetSubtotal:          p.NetSubtotal,
		VAT:                  p.VAT,
		GrossTotal:           p.GrossTotal,
		AdvanceBase:          p.AdvanceBase,
		AdvanceExtra:         p.AdvanceExtra,
		ShortfallBase:        p.ShortfallBase,
		ShortfallExtra:       p.ShortfallExtra,
		OtherDeductions:      p.OtherDeductions,
		OtherDeductionsTotal: p.OtherDeductionsTotal,
		TotalDeductions:      p.TotalDeductions,
		Payout:               p.Payout,
		CreatedAt:            p.CreatedAt,
		UpdatedAt:            p.UpdatedAt,
	}
}

// RosterEntryResponse is the per-contractor row of the monthly payment list.
type RosterEntryResponse struct {
	WorkerID   string           `json:"worker_id"`
	WorkerName string           `json:"worker_name"`
	TaxID      string           `json:"tax_id"`
	Calculated bool             `json:"calculated"`
	PaymentID  *string          `json:"payment_id,omitempty"`
	Payout     *decimal.Decimal `json:"monto_total_pagar,omitempty"`
}
