package payroll

import (
	"context"
	"errors"
	"time"

	"github.com/opl-logistica/backoffice-go/internal/domain/payroll"
	"github.com/opl-logistica/backoffice-go/internal/domain/settlement"
	"github.com/opl-logistica/backoffice-go/internal/domain/worker"
	"github.com/opl-logistica/backoffice-go/internal/pkg/database"
	"github.com/opl-logistica/backoffice-go/internal/pkg/validator"
	"github.com/opl-logistica/backoffice-go/internal/repository/postgresql"

	parameterdomain "github.com/opl-logistica/backoffice-go/internal/domain/parameter"
)

type PayrollServiceImpl struct {
	db            *database.DB
	payrollRepo   payroll.PayrollRepository
	workerRepo    worker.WorkerRepository
	parameterSvc  parameterdomain.ParameterService
	settlementSvc settlement.SettlementService

	// now is injectable so the tenure exemption is testable.
	now func() time.Time
}

func NewPayrollService(
	db *database.DB,
	payrollRepo payroll.PayrollRepository,
	workerRepo worker.WorkerRepository,
	parameterSvc parameterdomain.ParameterService,
	settlementSvc settlement.SettlementService,
) payroll.PayrollService {
	return &PayrollServiceImpl{
		db:            db,
		payrollRepo:   payrollRepo,
		workerRepo:    workerRepo,
		parameterSvc:  parameterSvc,
		settlementSvc: settlementSvc,
		now:           time.Now,
	}
}

func (s *PayrollServiceImpl) Calculate(ctx context.Context, req *payroll.CalculateRequest) (*payroll.RecordResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	w, err := s.workerRepo.GetByID(ctx, req.WorkerID)
	if err != nil {
		return nil, err
	}
	if w.Kind != worker.KindInternal {
		return nil, payroll.ErrWorkerNotPayroll
	}

	params, err := s.parameterSvc.LoadCalcParameters(ctx)
	if err != nil {
		return nil, err
	}

	year, month, _ := validator.ParsePeriod(req.Period)
	autoShortfall, err := s.settlementSvc.AggregateShortfall(ctx, w.ID, year, month)
	if err != nil {
		return nil, err
	}

	in := payroll.CalcInput{
		Worker:          w,
		Params:          params,
		Period:          req.Period,
		Days:            req.Days,
		OvertimeHours:   req.OvertimeHours,
		Advance:         payroll.ParseMoney(req.Advance),
		ShortfallOffset: payroll.ParseMoney(req.ShortfallOffset),
		AutoShortfall:   autoShortfall,
		LegalDeductions: payroll.CollectLegalItems(req.LegalDeductions),
		Today:           s.now(),
	}
	in.Earnings, in.EarningsTotal = payroll.CollectItems(req.Earnings)
	in.FamilyAllowances, in.FamilyAllowancesTotal = payroll.CollectItems(req.FamilyAllowances)
	in.Bonuses, in.BonusesTotal = payroll.CollectItems(req.Bonuses)
	in.OtherDeductions, in.OtherDeductionsTotal = payroll.CollectItems(req.OtherDeductions)

	rec := payroll.Calculate(in)

	// The record either fully replaces the previous calculation or is not
	// written at all.
	err = postgresql.WithTransaction(ctx, s.db, func(txCtx context.Context) error {
		return s.payrollRepo.Upsert(txCtx, &rec)
	})
	if err != nil {
		return nil, err
	}

	rec.WorkerName = &w.Name
	rec.WorkerTaxID = &w.TaxID
	return payroll.NewRecordResponse(&rec), nil
}

func (s *PayrollServiceImpl) FormDefaults(ctx context.Context, workerID, period string) (*payroll.RecordResponse, *payroll.FormDefaultsResponse, error) {
	if !validator.IsValidPeriod(period) {
		return nil, nil, payroll.ErrInvalidPeriod
	}

	w, err := s.workerRepo.GetByID(ctx, workerID)
	if err != nil {
		return nil, nil, err
	}
	if w.Kind != worker.KindInternal {
		return nil, nil, payroll.ErrWorkerNotPayroll
	}

	rec, err := s.payrollRepo.GetByWorkerPeriod(ctx, workerID, period)
	if err == nil {
		return payroll.NewRecordResponse(rec), nil, nil
	}
	if !errors.Is(err, payroll.ErrRecordNotFound) {
		return nil, nil, err
	}

	year, month, _ := validator.ParsePeriod(period)
	autoShortfall, err := s.settlementSvc.AggregateShortfall(ctx, workerID, year, month)
	if err != nil {
		return nil, nil, err
	}

	return nil, &payroll.FormDefaultsResponse{
		WorkerID:      w.ID,
		WorkerName:    w.Name,
		Period:        period,
		Days:          30,
		BaseSalary:    w.BaseSalary,
		OvertimeRate:  w.OvertimeRate,
		AutoShortfall: autoShortfall,
	}, nil
}

func (s *PayrollServiceImpl) GetRecord(ctx context.Context, id string) (*payroll.RecordResponse, error) {
	rec, err := s.payrollRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return payroll.NewRecordResponse(rec), nil
}

func (s *PayrollServiceImpl) Roster(ctx context.Context, period string) ([]payroll.RosterEntryResponse, error) {
	if !validator.IsValidPeriod(period) {
		return nil, payroll.ErrInvalidPeriod
	}

	kind := string(worker.KindInternal)
	workers, err := s.workerRepo.List(ctx, worker.WorkerFilter{Kind: &kind, ActiveOnly: true})
	if err != nil {
		return nil, err
	}

	records, err := s.payrollRepo.ListByPeriod(ctx, period)
	if err != nil {
		return nil, err
	}
	byWorker := make(map[string]*payroll.PayrollRecord, len(records))
	for i := range records {
		byWorker[records[i].WorkerID] = &records[i]
	}

	roster := make([]payroll.RosterEntryResponse, 0, len(workers))
	for _, w := range workers {
		entry := payroll.RosterEntryResponse{
			WorkerID:   w.ID,
			WorkerName: w.Name,
			TaxID:      w.TaxID,
		}
		if rec, ok := byWorker[w.ID]; ok {
			entry.Calculated = true
			entry.RecordID = &rec.ID
			entry.NetPay = &rec.NetPay
		}
		roster = append(roster, entry)
	}
	return roster, nil
}

func (s *PayrollServiceImpl) DeleteRecord(ctx context.Context, id string) error {
	return s.payrollRepo.Delete(ctx, id)
}
