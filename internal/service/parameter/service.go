package parameter

import (
	"context"
	"sort"

	"github.com/shopspring/decimal"

	"github.com/opl-logistica/backoffice-go/internal/domain/parameter"
)

type ParameterServiceImpl struct {
	parameterRepo parameter.ParameterRepository
}

func NewParameterService(parameterRepo parameter.ParameterRepository) parameter.ParameterService {
	return &ParameterServiceImpl{parameterRepo: parameterRepo}
}

func (s *ParameterServiceImpl) LoadCalcParameters(ctx context.Context) (parameter.CalcParameters, error) {
	params, err := s.parameterRepo.GetAllParameters(ctx)
	if err != nil {
		return parameter.CalcParameters{}, err
	}
	brackets, err := s.parameterRepo.ListBrackets(ctx)
	if err != nil {
		return parameter.CalcParameters{}, err
	}

	raw := make(map[string]decimal.Decimal, len(params))
	for _, p := range params {
		raw[p.Key] = p.Value
	}

	return parameter.BuildCalcParameters(raw, brackets), nil
}

func (s *ParameterServiceImpl) GetOverview(ctx context.Context) (parameter.ParametersOverviewResponse, error) {
	params, err := s.parameterRepo.GetAllParameters(ctx)
	if err != nil {
		return parameter.ParametersOverviewResponse{}, err
	}
	funds, err := s.parameterRepo.ListPensionFunds(ctx)
	if err != nil {
		return parameter.ParametersOverviewResponse{}, err
	}
	insurers, err := s.parameterRepo.ListHealthInsurers(ctx)
	if err != nil {
		return parameter.ParametersOverviewResponse{}, err
	}
	brackets, err := s.parameterRepo.ListBrackets(ctx)
	if err != nil {
		return parameter.ParametersOverviewResponse{}, err
	}

	resp := parameter.ParametersOverviewResponse{
		Parameters:     make([]parameter.ParameterResponse, 0, len(params)),
		PensionFunds:   make([]parameter.EntityResponse, 0, len(funds)),
		HealthInsurers: make([]parameter.EntityResponse, 0, len(insurers)),
		Brackets:       make([]parameter.BracketResponse, 0, len(brackets)),
	}
	for _, p := range params {
		resp.Parameters = append(resp.Parameters, parameter.ParameterResponse{
			Key: p.Key, Value: p.Value, Description: p.Description,
		})
	}
	for _, f := range funds {
		resp.PensionFunds = append(resp.PensionFunds, parameter.EntityResponse{
			ID: f.ID, Kind: parameter.EntityKindPensionFund, Name: f.Name, RatePercent: f.RatePercent,
		})
	}
	for _, h := range insurers {
		resp.HealthInsurers = append(resp.HealthInsurers, parameter.EntityResponse{
			ID: h.ID, Kind: parameter.EntityKindHealthInsurer, Name: h.Name, RatePercent: h.RatePercent,
		})
	}
	for _, b := range brackets {
		resp.Brackets = append(resp.Brackets, parameter.BracketResponse{
			Tier: b.Tier, IncomeCeiling: b.IncomeCeiling, AmountPerDependent: b.AmountPerDependent,
		})
	}
	return resp, nil
}

func (s *ParameterServiceImpl) UpsertParameter(ctx context.Context, req parameter.UpsertParameterRequest) (parameter.ParameterResponse, error) {
	if err := req.Validate(); err != nil {
		return parameter.ParameterResponse{}, err
	}

	p, err := s.parameterRepo.UpsertParameter(ctx, parameter.GlobalParameter{
		Key:         req.Key,
		Value:       req.Value,
		Description: req.Description,
	})
	if err != nil {
		return parameter.ParameterResponse{}, err
	}
	return parameter.ParameterResponse{Key: p.Key, Value: p.Value, Description: p.Description}, nil
}

func (s *ParameterServiceImpl) CreateEntity(ctx context.Context, req parameter.CreateEntityRequest) (parameter.EntityResponse, error) {
	if err := req.Validate(); err != nil {
		return parameter.EntityResponse{}, err
	}

	switch req.Kind {
	case parameter.EntityKindPensionFund:
		f, err := s.parameterRepo.CreatePensionFund(ctx, parameter.PensionFund{
			Name: req.Name, RatePercent: req.RatePercent,
		})
		if err != nil {
			return parameter.EntityResponse{}, err
		}
		return parameter.EntityResponse{ID: f.ID, Kind: req.Kind, Name: f.Name, RatePercent: f.RatePercent}, nil
	case parameter.EntityKindHealthInsurer:
		h, err := s.parameterRepo.CreateHealthInsurer(ctx, parameter.HealthInsurer{
			Name: req.Name, RatePercent: req.RatePercent,
		})
		if err != nil {
			return parameter.EntityResponse{}, err
		}
		return parameter.EntityResponse{ID: h.ID, Kind: req.Kind, Name: h.Name, RatePercent: h.RatePercent}, nil
	default:
		return parameter.EntityResponse{}, parameter.ErrUnknownEntityKind
	}
}

func (s *ParameterServiceImpl) UpdateEntity(ctx context.Context, req parameter.UpdateEntityRequest) error {
	switch req.Kind {
	case parameter.EntityKindPensionFund:
		return s.parameterRepo.UpdatePensionFund(ctx, req.ID, req.Name, req.RatePercent)
	case parameter.EntityKindHealthInsurer:
		return s.parameterRepo.UpdateHealthInsurer(ctx, req.ID, req.Name, req.RatePercent)
	default:
		return parameter.ErrUnknownEntityKind
	}
}

func (s *ParameterServiceImpl) DeleteEntity(ctx context.Context, kind, id string) error {
	switch kind {
	case parameter.EntityKindPensionFund:
		return s.parameterRepo.DeletePensionFund(ctx, id)
	case parameter.EntityKindHealthInsurer:
		return s.parameterRepo.DeleteHealthInsurer(ctx, id)
	default:
		return parameter.ErrUnknownEntityKind
	}
}

func (s *ParameterServiceImpl) ReplaceBrackets(ctx context.Context, req parameter.ReplaceBracketsRequest) ([]parameter.BracketResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	brackets := make([]parameter.FamilyAllowanceBracket, 0, len(req.Brackets))
	for _, b := range req.Brackets {
		brackets = append(brackets, parameter.FamilyAllowanceBracket{
			Tier:               b.Tier,
			IncomeCeiling:      b.IncomeCeiling,
			AmountPerDependent: b.AmountPerDependent,
		})
	}
	// Brackets are matched by scanning ascending, so persist them ordered.
	sort.Slice(brackets, func(i, j int) bool {
		return brackets[i].IncomeCeiling.LessThan(brackets[j].IncomeCeiling)
	})

	if err := s.parameterRepo.ReplaceBrackets(ctx, brackets); err != nil {
		return nil, err
	}

	resp := make([]parameter.BracketResponse, 0, len(brackets))
	for _, b := range brackets {
		resp = append(resp, parameter.BracketResponse{
			Tier: b.Tier, IncomeCeiling: b.IncomeCeiling, AmountPerDependent: b.AmountPerDependent,
		})
	}
	return resp, nil
}
