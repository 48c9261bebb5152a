package worker

import "errors"

var (
	ErrWorkerNotFound   = errors.New("worker not found")
	ErrWorkerNameExists = errors.New("worker name already registered")
	ErrWorkerInactive   = errors.New("worker is inactive")
)
