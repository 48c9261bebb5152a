package worker

import (
	"github.com/opl-logistica/backoffice-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

type CreateWorkerRequest struct {
	Name               string          `json:"name"`
	TaxID              string          `json:"tax_id"`
	Kind               string          `json:"kind"`
	CashShiftTracked   bool            `json:"cash_shift_tracked"`
	Position           string          `json:"position,omitempty"`
	Warehouse          string          `json:"warehouse,omitempty"`
	BaseSalary         decimal.Decimal `json:"base_salary"`
	OvertimeRate       decimal.Decimal `json:"overtime_rate"`
	HireDate           *string         `json:"hire_date,omitempty"`
	PensionFundID      *string         `json:"pension_fund_id,omitempty"`
	HealthInsurerID    *string         `json:"health_insurer_id,omitempty"`
	DependentsCount    int             `json:"dependents_count"`
	HasFamilyAllowance bool            `json:"has_family_allowance"`
}

func (r *CreateWorkerRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{Field: "name", Message: "is required"})
	}
	if validator.IsEmpty(r.TaxID) {
		errs = append(errs, validator.ValidationError{Field: "tax_id", Message: "is required"})
	} else if !validator.IsValidRUT(r.TaxID) {
		errs = append(errs, validator.ValidationError{Field: "tax_id", Message: "is not a valid RUT"})
	}
	if r.Kind != string(KindInternal) && r.Kind != string(KindExternal) {
		errs = append(errs, validator.ValidationError{Field: "kind", Message: "must be 'INTERNO' or 'EXTERNO'"})
	}
	if r.BaseSalary.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "base_salary", Message: "must be non-negative"})
	}
	if r.OvertimeRate.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "overtime_rate", Message: "must be non-negative"})
	}
	if r.HireDate != nil {
		if _, ok := validator.IsValidDate(*r.HireDate); !ok {
			errs = append(errs, validator.ValidationError{Field: "hire_date", Message: "must be YYYY-MM-DD"})
		}
	}
	if r.DependentsCount < 0 {
		errs = append(errs, validator.ValidationError{Field: "dependents_count", Message: "must be non-negative"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateWorkerRequest struct {
	ID                 string           `json:"-"`
	Name               *string          `json:"name,omitempty"`
	TaxID              *string          `json:"tax_id,omitempty"`
	CashShiftTracked   *bool            `json:"cash_shift_tracked,omitempty"`
	Position           *string          `json:"position,omitempty"`
	Warehouse          *string          `json:"warehouse,omitempty"`
	BaseSalary         *decimal.Decimal `json:"base_salary,omitempty"`
	OvertimeRate       *decimal.Decimal `json:"overtime_rate,omitempty"`
	HireDate           *string          `json:"hire_date,omitempty"`
	PensionFundID      *string          `json:"pension_fund_id,omitempty"`
	HealthInsurerID    *string          `json:"health_insurer_id,omitempty"`
	DependentsCount    *int             `json:"dependents_count,omitempty"`
	HasFamilyAllowance *bool            `json:"has_family_allowance,omitempty"`
}

func (r *UpdateWorkerRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.TaxID != nil && !validator.IsValidRUT(*r.TaxID) {
		errs = append(errs, validator.ValidationError{Field: "tax_id", Message: "is not a valid RUT"})
	}
	if r.BaseSalary != nil && r.BaseSalary.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "base_salary", Message: "must be non-negative"})
	}
	if r.OvertimeRate != nil && r.OvertimeRate.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "overtime_rate", Message: "must be non-negative"})
	}
	if r.HireDate != nil && *r.HireDate != "" {
		if _, ok := validator.IsValidDate(*r.HireDate); !ok {
			errs = append(errs, validator.ValidationError{Field: "hire_date", Message: "must be YYYY-MM-DD"})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type WorkerFilter struct {
	Kind             *string
	ActiveOnly       bool
	CashShiftTracked *bool
}

type WorkerResponse struct {
	ID                 string          `json:"id"`
	Name               string          `json:"name"`
	TaxID              string          `json:"tax_id"`
	Kind               string          `json:"kind"`
	Active             bool            `json:"active"`
	CashShiftTracked   bool            `json:"cash_shift_tracked"`
	Position           string          `json:"position,omitempty"`
	Warehouse          string          `json:"warehouse,omitempty"`
	BaseSalary         decimal.Decimal `json:"base_salary"`
	OvertimeRate       decimal.Decimal `json:"overtime_rate"`
	HireDate           *string         `json:"hire_date,omitempty"`
	PensionFundID      *string         `json:"pension_fund_id,omitempty"`
	PensionFundName    *string         `json:"pension_fund_name,omitempty"`
	HealthInsurerID    *string         `json:"health_insurer_id,omitempty"`
	HealthInsurerName  *string         `json:"health_insurer_name,omitempty"`
	DependentsCount    int             `json:"dependents_count"`
	HasFamilyAllowance bool            `json:"has_family_allowance"`
}
