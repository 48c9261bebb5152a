package parameter

import (
	"context"

	"github.com/shopspring/decimal"
)

type ParameterRepository interface {
	// Parameters
	GetAllParameters(ctx context.Context) ([]GlobalParameter, error)
	UpsertParameter(ctx context.Context, param GlobalParameter) (GlobalParameter, error)

	// Pension funds
	CreatePensionFund(ctx context.Context, fund PensionFund) (PensionFund, error)
	GetPensionFundByID(ctx context.Context, id string) (PensionFund, error)
	ListPensionFunds(ctx context.Context) ([]PensionFund, error)
	UpdatePensionFund(ctx context.Context, id string, name *string, ratePercent *decimal.Decimal) error
	DeletePensionFund(ctx context.Context, id string) error

	// Health insurers
	CreateHealthInsurer(ctx context.Context, insurer HealthInsurer) (HealthInsurer, error)
	GetHealthInsurerByID(ctx context.Context, id string) (HealthInsurer, error)
	ListHealthInsurers(ctx context.Context) ([]HealthInsurer, error)
	UpdateHealthInsurer(ctx context.Context, id string, name *string, ratePercent *decimal.Decimal) error
	DeleteHealthInsurer(ctx context.Context, id string) error

	// Family allowance brackets
	ListBrackets(ctx context.Context) ([]FamilyAllowanceBracket, error)
	ReplaceBrackets(ctx context.Context, brackets []FamilyAllowanceBracket) error
}
