package worker

import "context"

type WorkerRepository interface {
	Create(ctx context.Context, w Worker) (Worker, error)
	GetByID(ctx context.Context, id string) (Worker, error)
	List(ctx context.Context, filter WorkerFilter) ([]Worker, error)
	Update(ctx context.Context, req UpdateWorkerRequest) error
	SetActive(ctx context.Context, id string, active bool) error
}
