package payroll

import (
	"encoding/json"
	"time"

	"github.com/shopspring/decimal"

	"github.com/opl-logistica/backoffice-go/internal/pkg/validator"
)

// CalculateRequest mirrors the liquidación form. Scalar money fields and the
// five item lists arrive as raw JSON and are normalized leniently: malformed
// input degrades to zero/empty rather than rejecting the save.
type CalculateRequest struct {
	WorkerID string `json:"-"`
	Period   string `json:"periodo"`

	Days          int             `json:"dias"`
	OvertimeHours decimal.Decimal `json:"horas_extras"`

	Advance         json.RawMessage `json:"anticipo,omitempty"`
	ShortfallOffset json.RawMessage `json:"abono_faltante,omitempty"`

	Earnings         json.RawMessage `json:"detalle_haberes,omitempty"`
	FamilyAllowances json.RawMessage `json:"detalle_asignaciones,omitempty"`
	Bonuses          json.RawMessage `json:"detalle_bonos,omitempty"`
	OtherDeductions  json.RawMessage `json:"detalle_descuentos,omitempty"`
	LegalDeductions  json.RawMessage `json:"detalle_descuentos_legales,omitempty"`
}

func (r *CalculateRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsValidPeriod(r.Period) {
		errs = append(errs, validator.ValidationError{Field: "periodo", Message: "must be YYYY-MM"})
	}
	if r.Days < 0 || r.Days > 31 {
		errs = append(errs, validator.ValidationError{Field: "dias", Message: "must be between 0 and 31"})
	}
	if r.OvertimeHours.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "horas_extras", Message: "must be non-negative"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// FormDefaultsResponse pre-fills a fresh calculation form for a (worker,
// period) pair that has no stored record yet.
type FormDefaultsResponse struct {
	WorkerID      string          `json:"worker_id"`
	WorkerName    string          `json:"worker_name"`
	Period        string          `json:"periodo"`
	Days          int             `json:"dias"`
	BaseSalary    decimal.Decimal `json:"sueldo_base"`
	OvertimeRate  decimal.Decimal `json:"valor_hora_extra"`
	AutoShortfall decimal.Decimal `json:"faltante_automatico"`
}

type RecordResponse struct {
	ID              string          `json:"id"`
	WorkerID        string          `json:"worker_id"`
	WorkerName      *string         `json:"worker_name,omitempty"`
	WorkerTaxID     *string         `json:"worker_tax_id,omitempty"`
	Period          string          `json:"periodo"`
	NetPay          decimal.Decimal `json:"sueldo_liquido"`
	TotalEarnings   decimal.Decimal `json:"total_haberes"`
	TotalDeductions decimal.Decimal `json:"total_descuentos"`
	TaxAmount       decimal.Decimal `json:"monto_impuesto"`
	ShortfallAmount decimal.Decimal `json:"monto_faltante"`
	Breakdown       Breakdown       `json:"detalle"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`
}

// RosterEntryResponse is the per-worker row of the monthly payroll roster.
type RosterEntryResponse struct {
	WorkerID   string           `json:"worker_id"`
	WorkerName string           `json:"worker_name"`
	TaxID      string           `json:"tax_id"`
	Calculated bool             `json:"calculated"`
	RecordID   *string          `json:"record_id,omitempty"`
	NetPay     *decimal.Decimal `json:"sueldo_liquido,omitempty"`
}

func NewRecordResponse(rec *PayrollRecord) *RecordResponse {
	return &RecordResponse{
		ID:              rec.ID,
		WorkerID:        rec.WorkerID,
		WorkerName:      rec.WorkerName,
		WorkerTaxID:     rec.WorkerTaxID,
		Period:          rec.Period,
		NetPay:          rec.NetPay,
		TotalEarnings:   rec.TotalEarnings,
		TotalDeductions: rec.TotalDeductions,
		TaxAmount:       rec.TaxAmount,
		ShortfallAmount: rec.ShortfallAmount,
		Breakdown:       rec.Breakdown,
		CreatedAt:       rec.CreatedAt,
		UpdatedAt:       rec.UpdatedAt,
	}
}
