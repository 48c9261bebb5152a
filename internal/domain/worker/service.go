package worker

import "context"

// WorkerService defines business logic for worker management
type WorkerService interface {
	CreateWorker(ctx context.Context, req CreateWorkerRequest) (WorkerResponse, error)
	GetWorker(ctx context.Context, id string) (WorkerResponse, error)
	ListWorkers(ctx context.Context, filter WorkerFilter) ([]WorkerResponse, error)
	UpdateWorker(ctx context.Context, req UpdateWorkerRequest) (WorkerResponse, error)

	// DeactivateWorker soft-deletes: the worker disappears from rosters but
	// historical payroll records stay intact.
	DeactivateWorker(ctx context.Context, id string) error
	RestoreWorker(ctx context.Context, id string) error
}
