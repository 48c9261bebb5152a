package contractor

import (
	"context"
	"errors"

	"github.com/opl-logistica/backoffice-go/internal/domain/contractor"
	"github.com/opl-logistica/backoffice-go/internal/domain/payroll"
	"github.com/opl-logistica/backoffice-go/internal/domain/settlement"
	"github.com/opl-logistica/backoffice-go/internal/domain/worker"
	"github.com/opl-logistica/backoffice-go/internal/pkg/database"
	"github.com/opl-logistica/backoffice-go/internal/pkg/validator"
	"github.com/opl-logistica/backoffice-go/internal/repository/postgresql"
)

type ContractorServiceImpl struct {
	db             *database.DB
	contractorRepo contractor.ContractorRepository
	workerRepo     worker.WorkerRepository
	settlementSvc  settlement.SettlementService
}

func NewContractorService(
	db *database.DB,
	contractorRepo contractor.ContractorRepository,
	workerRepo worker.WorkerRepository,
	settlementSvc settlement.SettlementService,
) contractor.ContractorService {
	return &ContractorServiceImpl{
		db:             db,
		contractorRepo: contractorRepo,
		workerRepo:     workerRepo,
		settlementSvc:  settlementSvc,
	}
}

func (s *ContractorServiceImpl) GetTariff(ctx context.Context) (*contractor.TariffResponse, error) {
	t, err := s.contractorRepo.GetTariff(ctx)
	if err != nil {
		return nil, err
	}
	return contractor.NewTariffResponse(t), nil
}

func (s *ContractorServiceImpl) UpdateTariff(ctx context.Context, req *contractor.UpdateTariffRequest) (*contractor.TariffResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	current, err := s.contractorRepo.GetTariff(ctx)
	if err != nil {
		return nil, err
	}

	current.Rate5 = req.Rate5
	current.Rate11 = req.Rate11
	current.Rate15 = req.Rate15
	current.Rate45 = req.Rate45
	current.RateCat5 = req.RateCat5
	current.RateCat15 = req.RateCat15
	current.RateUltra15 = req.RateUltra15

	if err := s.contractorRepo.UpsertTariff(ctx, current); err != nil {
		return nil, err
	}
	return contractor.NewTariffResponse(current), nil
}

func (s *ContractorServiceImpl) Calculate(ctx context.Context, req *contractor.CalculateRequest) (*contractor.PaymentResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	w, err := s.workerRepo.GetByID(ctx, req.WorkerID)
	if err != nil {
		return nil, err
	}
	if w.Kind != worker.KindExternal {
		return nil, contractor.ErrWorkerNotContractor
	}

	tariff, err := s.contractorRepo.GetTariff(ctx)
	if err != nil {
		return nil, err
	}

	year, month, _ := validator.ParsePeriod(req.Period)
	activity, err := s.settlementSvc.GetMonthlyActivity(ctx, w.ID, year, month)
	if err != nil {
		return nil, err
	}

	payment := contractor.Calculate(contractor.CalcInput{
		WorkerID:            w.ID,
		Period:              req.Period,
		Tariff:              *tariff,
		Activity:            activity,
		InvoiceNumber:       req.InvoiceNumber,
		TechnicalAssistance: req.TechnicalAssistance.Truncate(0),
		AdvanceExtra:        req.AdvanceExtra.Truncate(0),
		ShortfallExtra:      req.ShortfallExtra.Truncate(0),
		OtherDeductions:     contractor.CollectDeductions(req.OtherDeductions),
	})

	err = postgresql.WithTransaction(ctx, s.db, func(txCtx context.Context) error {
		return s.contractorRepo.UpsertPayment(txCtx, &payment)
	})
	if err != nil {
		return nil, err
	}

	payment.WorkerName = &w.Name
	payment.WorkerTaxID = &w.TaxID
	return contractor.NewPaymentResponse(&payment), nil
}

func (s *ContractorServiceImpl) FormDefaults(ctx context.Context, workerID, period string) (*contractor.PaymentResponse, *contractor.FormDefaultsResponse, error) {
	if !validator.IsValidPeriod(period) {
		return nil, nil, payroll.ErrInvalidPeriod
	}

	w, err := s.workerRepo.GetByID(ctx, workerID)
	if err != nil {
		return nil, nil, err
	}
	if w.Kind != worker.KindExternal {
		return nil, nil, contractor.ErrWorkerNotContractor
	}

	payment, err := s.contractorRepo.GetPaymentByWorkerPeriod(ctx, workerID, period)
	if err == nil {
		return contractor.NewPaymentResponse(payment), nil, nil
	}
	if !errors.Is(err, contractor.ErrPaymentNotFound) {
		return nil, nil, err
	}

	tariff, err := s.contractorRepo.GetTariff(ctx)
	if err != nil {
		return nil, nil, err
	}
	year, month, _ := validator.ParsePeriod(period)
	activity, err := s.settlementSvc.GetMonthlyActivity(ctx, workerID, year, month)
	if err != nil {
		return nil, nil, err
	}

	return nil, &contractor.FormDefaultsResponse{
		WorkerID:      w.ID,
		WorkerName:    w.Name,
		Period:        period,
		Cylinders:     activity.Cylinders,
		CylinderPay:   tariff.CylinderPay(activity.Cylinders),
		AdvanceBase:   activity.Advances,
		ShortfallBase: activity.Shortfall,
	}, nil
}

func (s *ContractorServiceImpl) GetPayment(ctx context.Context, id string) (*contractor.PaymentResponse, error) {
	payment, err := s.contractorRepo.GetPaymentByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return contractor.NewPaymentResponse(payment), nil
}

func (s *ContractorServiceImpl) Roster(ctx context.Context, period string) ([]contractor.RosterEntryResponse, error) {
	if !validator.IsValidPeriod(period) {
		return nil, payroll.ErrInvalidPeriod
	}

	kind := string(worker.KindExternal)
	workers, err := s.workerRepo.List(ctx, worker.WorkerFilter{Kind: &kind, ActiveOnly: true})
	if err != nil {
		return nil, err
	}

	payments, err := s.contractorRepo.ListPaymentsByPeriod(ctx, period)
	if err != nil {
		return nil, err
	}
	byWorker := make(map[string]*contractor.ContractorPayment, len(payments))
	for i := range payments {
		byWorker[payments[i].WorkerID] = &payments[i]
	}

	roster := make([]contractor.RosterEntryResponse, 0, len(workers))
	for _, w := range workers {
		entry := contractor.RosterEntryResponse{
			WorkerID:   w.ID,
			WorkerName: w.Name,
			TaxID:      w.TaxID,
		}
		if p, ok := byWorker[w.ID]; ok {
			entry.Calculated = true
			entry.PaymentID = &p.ID
			entry.Payout = &p.Payout
		}
		roster = append(roster, entry)
	}
	return roster, nil
}

func (s *ContractorServiceImpl) DeletePayment(ctx context.Context, id string) error {
	return s.contractorRepo.DeletePayment(ctx, id)
}
