package payroll

import (
	"time"

	"github.com/shopspring/decimal"
)

// LineItem - one caller-submitted earning/allowance/bonus/deduction row
type LineItem struct {
	Description string          `json:"desc"`
	Amount      decimal.Decimal `json:"monto"`
}

// LegalDeductionKind enum (wire values as submitted by the form)
type LegalDeductionKind string

const (
	LegalDeductionPercent LegalDeductionKind = "%"
	LegalDeductionFixed   LegalDeductionKind = "$"
)

// LegalDeductionItem - a variable legal deduction declared either as a fixed
// amount or as a percentage of taxable income. Percent items can only be
// resolved once taxable income is known, so Computed is filled by the engine.
type LegalDeductionItem struct {
	Description string             `json:"desc"`
	Kind        LegalDeductionKind `json:"tipo"`
	Value       decimal.Decimal    `json:"valor"`
	Computed    decimal.Decimal    `json:"monto_calculado"`
}

// Breakdown is the full derivation trail of one calculation. It is persisted
// verbatim (JSONB) so the detail view and the payslip exporter can redisplay
// every intermediate without recomputing; the json field names are the
// contract those consumers depend on.
type Breakdown struct {
	ProportionalBase decimal.Decimal `json:"sueldo_base_proporcional"`
	DaysWorked       int             `json:"dias_trabajados"`
	OvertimeHours    decimal.Decimal `json:"horas_extras"`
	OvertimePay      decimal.Decimal `json:"monto_horas_extras"`

	Earnings         []LineItem           `json:"lista_haberes"`
	FamilyAllowances []LineItem           `json:"lista_asignaciones"`
	Bonuses          []LineItem           `json:"lista_bonos"`
	OtherDeductions  []LineItem           `json:"lista_descuentos"`
	LegalDeductions  []LegalDeductionItem `json:"lista_descuentos_legales"`

	Advance             decimal.Decimal `json:"monto_anticipo"`
	AutoShortfall       decimal.Decimal `json:"faltante_automatico_original"`
	ShortfallOffset     decimal.Decimal `json:"abono_faltante"`
	AutoFamilyAllowance decimal.Decimal `json:"asignacion_familiar"`

	TaxableIncome decimal.Decimal `json:"sueldo_imponible"`
	Gratification decimal.Decimal `json:"gratificacion"`

	PensionRate        decimal.Decimal `json:"afp_tasa"`
	PensionFundName    string          `json:"afp_nombre"`
	PensionAmount      decimal.Decimal `json:"monto_afp"`
	HealthRate         decimal.Decimal `json:"salud_tasa"`
	HealthInsurerName  string          `json:"salud_nombre"`
	HealthAmount       decimal.Decimal `json:"monto_salud"`
	UnemploymentAmount decimal.Decimal `json:"monto_seguro_cesantia"`

	BracketTier   *string         `json:"tramo_letra"`
	TaxAmount     decimal.Decimal `json:"monto_impuesto"`
	TaxableForTax decimal.Decimal `json:"afecto_impuesto"`

	ShortfallAmount decimal.Decimal `json:"monto_faltante"`
	Period          string          `json:"periodo"`
	TenureExempt    bool            `json:"cumplio_11_anos"`
}

// PayrollRecord - one computed pay-period result for one worker. Exactly one
// record exists per (worker, period); recalculation overwrites it in place.
type PayrollRecord struct {
	ID       string
	WorkerID string
	Period   string // YYYY-MM

	NetPay          decimal.Decimal
	TotalEarnings   decimal.Decimal
	TotalDeductions decimal.Decimal
	TaxAmount       decimal.Decimal
	ShortfallAmount decimal.Decimal

	Breakdown Breakdown

	CreatedAt time.Time
	UpdatedAt time.Time

	// Joined fields
	WorkerName  *string
	WorkerTaxID *string
}
