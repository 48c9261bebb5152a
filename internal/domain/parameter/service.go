package parameter

import "context"

// ParameterService exposes configuration to the admin screens and the
// calculation snapshot to the payroll engine.
type ParameterService interface {
	// LoadCalcParameters builds the immutable snapshot used by one payroll
	// calculation. Absent keys fall back to defaults, so it only fails when
	// the store itself is unavailable.
	LoadCalcParameters(ctx context.Context) (CalcParameters, error)

	GetOverview(ctx context.Context) (ParametersOverviewResponse, error)
	UpsertParameter(ctx context.Context, req UpsertParameterRequest) (ParameterResponse, error)

	CreateEntity(ctx context.Context, req CreateEntityRequest) (EntityResponse, error)
	UpdateEntity(ctx context.Context, req UpdateEntityRequest) error
	DeleteEntity(ctx context.Context, kind, id string) error

	ReplaceBrackets(ctx context.Context, req ReplaceBracketsRequest) ([]BracketResponse, error)
}
