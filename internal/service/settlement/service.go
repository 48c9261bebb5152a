package settlement

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/opl-logistica/backoffice-go/internal/domain/settlement"
	"github.com/opl-logistica/backoffice-go/internal/domain/worker"
)

type SettlementServiceImpl struct {
	settlementRepo settlement.SettlementRepository
	workerRepo     worker.WorkerRepository
}

func NewSettlementService(
	settlementRepo settlement.SettlementRepository,
	workerRepo worker.WorkerRepository,
) settlement.SettlementService {
	return &SettlementServiceImpl{
		settlementRepo: settlementRepo,
		workerRepo:     workerRepo,
	}
}

func toResponse(s settlement.ShiftSettlement) settlement.SettlementResponse {
	resp := settlement.SettlementResponse{
		ID:            s.ID,
		WorkerID:      s.WorkerID,
		Date:          s.Date.Format("2006-01-02"),
		Warehouse:     s.Warehouse,
		Variance:      s.Variance,
		AdvanceAmount: s.AdvanceAmount,
		Cylinders:     s.Cylinders,
		Closed:        s.Closed,
	}
	if s.WorkerName != nil {
		resp.WorkerName = *s.WorkerName
	}
	return resp
}

func (s *SettlementServiceImpl) CreateSettlement(ctx context.Context, req settlement.CreateSettlementRequest) (settlement.SettlementResponse, error) {
	if err := req.Validate(); err != nil {
		return settlement.SettlementResponse{}, err
	}

	w, err := s.workerRepo.GetByID(ctx, req.WorkerID)
	if err != nil {
		return settlement.SettlementResponse{}, err
	}
	if !w.Active {
		return settlement.SettlementResponse{}, worker.ErrWorkerInactive
	}

	date, _ := time.Parse("2006-01-02", req.Date)
	created, err := s.settlementRepo.Create(ctx, settlement.ShiftSettlement{
		WorkerID:  req.WorkerID,
		Date:      date,
		Warehouse: req.Warehouse,
	})
	if err != nil {
		return settlement.SettlementResponse{}, err
	}
	return toResponse(created), nil
}

func (s *SettlementServiceImpl) GetSettlement(ctx context.Context, id string) (settlement.SettlementResponse, error) {
	st, err := s.settlementRepo.GetByID(ctx, id)
	if err != nil {
		return settlement.SettlementResponse{}, err
	}
	return toResponse(st), nil
}

func (s *SettlementServiceImpl) ListSettlements(ctx context.Context, filter settlement.SettlementFilter) ([]settlement.SettlementResponse, error) {
	settlements, err := s.settlementRepo.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	resp := make([]settlement.SettlementResponse, 0, len(settlements))
	for _, st := range settlements {
		resp = append(resp, toResponse(st))
	}
	return resp, nil
}

func (s *SettlementServiceImpl) UpdateSettlement(ctx context.Context, req settlement.UpdateSettlementRequest) (settlement.SettlementResponse, error) {
	if err := req.Validate(); err != nil {
		return settlement.SettlementResponse{}, err
	}

	if err := s.settlementRepo.Update(ctx, req); err != nil {
		return settlement.SettlementResponse{}, err
	}
	return s.GetSettlement(ctx, req.ID)
}

func (s *SettlementServiceImpl) CloseSettlement(ctx context.Context, id string) error {
	return s.settlementRepo.SetClosed(ctx, id, true)
}

func (s *SettlementServiceImpl) ReopenSettlement(ctx context.Context, id string) error {
	return s.settlementRepo.SetClosed(ctx, id, false)
}

func (s *SettlementServiceImpl) DeleteSettlement(ctx context.Context, id string) error {
	return s.settlementRepo.Delete(ctx, id)
}

func (s *SettlementServiceImpl) AggregateShortfall(ctx context.Context, workerID string, year, month int) (decimal.Decimal, error) {
	w, err := s.workerRepo.GetByID(ctx, workerID)
	if err != nil {
		return decimal.Zero, err
	}
	// Only workers on the cash-shift filter accumulate automatic
	// shortfall deductions.
	if !w.CashShiftTracked {
		return decimal.Zero, nil
	}
	return s.settlementRepo.SumShortfall(ctx, workerID, year, month)
}

func (s *SettlementServiceImpl) GetMonthlyActivity(ctx context.Context, workerID string, year, month int) (settlement.MonthlyActivity, error) {
	return s.settlementRepo.MonthlyActivity(ctx, workerID, year, month)
}
