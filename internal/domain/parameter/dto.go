package parameter

import (
	"github.com/opl-logistica/backoffice-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

// ========== PARAMETER DTOs ==========

type UpsertParameterRequest struct {
	Key         string          `json:"-"`
	Value       decimal.Decimal `json:"value"`
	Description string          `json:"description,omitempty"`
}

func (r *UpsertParameterRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Key) {
		errs = append(errs, validator.ValidationError{Field: "key", Message: "is required"})
	}
	if r.Value.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "value", Message: "must be non-negative"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type ParameterResponse struct {
	Key         string          `json:"key"`
	Value       decimal.Decimal `json:"value"`
	Description string          `json:"description,omitempty"`
}

// ========== CONTRIBUTION ENTITY DTOs (AFP / health insurer) ==========

const (
	EntityKindPensionFund   = "afp"
	EntityKindHealthInsurer = "salud"
)

type CreateEntityRequest struct {
	Kind        string          `json:"kind"` // "afp" or "salud"
	Name        string          `json:"name"`
	RatePercent decimal.Decimal `json:"rate_percent"`
}

func (r *CreateEntityRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Kind != EntityKindPensionFund && r.Kind != EntityKindHealthInsurer {
		errs = append(errs, validator.ValidationError{Field: "kind", Message: "must be 'afp' or 'salud'"})
	}
	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{Field: "name", Message: "is required"})
	}
	if r.RatePercent.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "rate_percent", Message: "must be non-negative"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateEntityRequest struct {
	ID          string           `json:"-"`
	Kind        string           `json:"-"`
	Name        *string          `json:"name,omitempty"`
	RatePercent *decimal.Decimal `json:"rate_percent,omitempty"`
}

type EntityResponse struct {
	ID          string          `json:"id"`
	Kind        string          `json:"kind"`
	Name        string          `json:"name"`
	RatePercent decimal.Decimal `json:"rate_percent"`
}

// ========== FAMILY ALLOWANCE DTOs ==========

type BracketInput struct {
	Tier               string          `json:"tier"`
	IncomeCeiling      decimal.Decimal `json:"income_ceiling"`
	AmountPerDependent decimal.Decimal `json:"amount_per_dependent"`
}

type ReplaceBracketsRequest struct {
	Brackets []BracketInput `json:"brackets"`
}

func (r *ReplaceBracketsRequest) Validate() error {
	var errs validator.ValidationErrors

	if len(r.Brackets) == 0 {
		errs = append(errs, validator.ValidationError{Field: "brackets", Message: "at least one bracket is required"})
	}
	for _, b := range r.Brackets {
		if validator.IsEmpty(b.Tier) {
			errs = append(errs, validator.ValidationError{Field: "tier", Message: "is required"})
			break
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type BracketResponse struct {
	Tier               string          `json:"tier"`
	IncomeCeiling      decimal.Decimal `json:"income_ceiling"`
	AmountPerDependent decimal.Decimal `json:"amount_per_dependent"`
}

// ParametersOverviewResponse feeds the configuration screen.
type ParametersOverviewResponse struct {
	Parameters     []ParameterResponse `json:"parameters"`
	PensionFunds   []EntityResponse    `json:"pension_funds"`
	HealthInsurers []EntityResponse    `json:"health_insurers"`
	Brackets       []BracketResponse   `json:"brackets"`
}
