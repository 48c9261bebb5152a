package worker

import (
	"context"
	"time"

	"github.com/opl-logistica/backoffice-go/internal/domain/worker"
)

type WorkerServiceImpl struct {
	workerRepo worker.WorkerRepository
}

func NewWorkerService(workerRepo worker.WorkerRepository) worker.WorkerService {
	return &WorkerServiceImpl{workerRepo: workerRepo}
}

func toResponse(w worker.Worker) worker.WorkerResponse {
	resp := worker.WorkerResponse{
		ID:                 w.ID,
		Name:               w.Name,
		TaxID:              w.TaxID,
		Kind:               string(w.Kind),
		Active:             w.Active,
		CashShiftTracked:   w.CashShiftTracked,
		Position:           w.Position,
		Warehouse:          w.Warehouse,
		BaseSalary:         w.BaseSalary,
		OvertimeRate:       w.OvertimeRate,
		PensionFundID:      w.PensionFundID,
		PensionFundName:    w.PensionFundName,
		HealthInsurerID:    w.HealthInsurerID,
		HealthInsurerName:  w.HealthInsurerName,
		DependentsCount:    w.DependentsCount,
		HasFamilyAllowance: w.HasFamilyAllowance,
	}
	if w.HireDate != nil {
		hd := w.HireDate.Format("2006-01-02")
		resp.HireDate = &hd
	}
	return resp
}

func (s *WorkerServiceImpl) CreateWorker(ctx context.Context, req worker.CreateWorkerRequest) (worker.WorkerResponse, error) {
	if err := req.Validate(); err != nil {
		return worker.WorkerResponse{}, err
	}

	w := worker.Worker{
		Name:               req.Name,
		TaxID:              req.TaxID,
		Kind:               worker.Kind(req.Kind),
		Active:             true,
		CashShiftTracked:   req.CashShiftTracked,
		Position:           req.Position,
		Warehouse:          req.Warehouse,
		BaseSalary:         req.BaseSalary,
		OvertimeRate:       req.OvertimeRate,
		PensionFundID:      req.PensionFundID,
		HealthInsurerID:    req.HealthInsurerID,
		DependentsCount:    req.DependentsCount,
		HasFamilyAllowance: req.HasFamilyAllowance,
	}
	if req.HireDate != nil {
		hd, err := time.Parse("2006-01-02", *req.HireDate)
		if err == nil {
			w.HireDate = &hd
		}
	}

	created, err := s.workerRepo.Create(ctx, w)
	if err != nil {
		return worker.WorkerResponse{}, err
	}
	return toResponse(created), nil
}

func (s *WorkerServiceImpl) GetWorker(ctx context.Context, id string) (worker.WorkerResponse, error) {
	w, err := s.workerRepo.GetByID(ctx, id)
	if err != nil {
		return worker.WorkerResponse{}, err
	}
	return toResponse(w), nil
}

func (s *WorkerServiceImpl) ListWorkers(ctx context.Context, filter worker.WorkerFilter) ([]worker.WorkerResponse, error) {
	workers, err := s.workerRepo.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	resp := make([]worker.WorkerResponse, 0, len(workers))
	for _, w := range workers {
		resp = append(resp, toResponse(w))
	}
	return resp, nil
}

func (s *WorkerServiceImpl) UpdateWorker(ctx context.Context, req worker.UpdateWorkerRequest) (worker.WorkerResponse, error) {
	if err := req.Validate(); err != nil {
		return worker.WorkerResponse{}, err
	}

	if err := s.workerRepo.Update(ctx, req); err != nil {
		return worker.WorkerResponse{}, err
	}
	return s.GetWorker(ctx, req.ID)
}

func (s *WorkerServiceImpl) DeactivateWorker(ctx context.Context, id string) error {
	return s.workerRepo.SetActive(ctx, id, false)
}

func (s *WorkerServiceImpl) RestoreWorker(ctx context.Context, id string) error {
	return s.workerRepo.SetActive(ctx, id, true)
}
