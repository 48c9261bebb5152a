package worker

import (
	"time"

	"github.com/shopspring/decimal"
)

type Worker struct {
	ID     string
	Name   string
	TaxID  string
	Kind   Kind
	Active bool

	// CashShiftTracked marks workers whose daily cash settlements feed the
	// automatic shortfall deduction.
	CashShiftTracked bool

	Position  string
	Warehouse string

	BaseSalary   decimal.Decimal
	OvertimeRate decimal.Decimal
	HireDate     *time.Time

	PensionFundID   *string
	HealthInsurerID *string

	DependentsCount    int
	HasFamilyAllowance bool

	CreatedAt time.Time
	UpdatedAt time.Time

	// Joined fields
	PensionFundName   *string
	PensionFundRate   *decimal.Decimal
	HealthInsurerName *string
	HealthInsurerRate *decimal.Decimal
}

type Kind string

const (
	// KindInternal workers are salaried employees under the full legal
	// deduction scheme.
	KindInternal Kind = "INTERNO"
	// KindExternal workers are contractors paid per cylinder delivered.
	KindExternal Kind = "EXTERNO"
)

// Tenure in years at the given date, using 365.25-day years. Zero when the
// hire date is unknown.
func (w Worker) Tenure(at time.Time) float64 {
	if w.HireDate == nil {
		return 0
	}
	return at.Sub(*w.HireDate).Hours() / 24 / 365.25
}
