package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/opl-logistica/backoffice-go/internal/domain/worker"
	"github.com/opl-logistica/backoffice-go/internal/handler/http/response"
)

type WorkerHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Deactivate(w http.ResponseWriter, r *http.Request)
	Restore(w http.ResponseWriter, r *http.Request)
}

type WorkerHandlerImpl struct {
	workerService worker.WorkerService
}

func NewWorkerHandler(workerService worker.WorkerService) WorkerHandler {
	return &WorkerHandlerImpl{workerService: workerService}
}

func (h *WorkerHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var req worker.CreateWorkerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	resp, err := h.workerService.CreateWorker(r.Context(), req)
	if err != nil {
		slog.Error("CreateWorker service error", "error", err)
		response.HandleError(w, err)
		return
	}
	response.Created(w, "Worker created", resp)
}

func (h *WorkerHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	resp, err := h.workerService.GetWorker(r.Context(), chi.URLParam(r, "workerId"))
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, resp)
}

func (h *WorkerHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	var filter worker.WorkerFilter
	if kind := r.URL.Query().Get("kind"); kind != "" {
		filter.Kind = &kind
	}
	if r.URL.Query().Get("active") == "true" {
		filter.ActiveOnly = true
	}
	if tracked := r.URL.Query().Get("cash_shift_tracked"); tracked != "" {
		v := tracked == "true"
		filter.CashShiftTracked = &v
	}

	resp, err := h.workerService.ListWorkers(r.Context(), filter)
	if err != nil {
		slog.Error("ListWorkers service error", "error", err)
		response.HandleError(w, err)
		return
	}
	response.Success(w, resp)
}

func (h *WorkerHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	var req worker.UpdateWorkerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.ID = chi.URLParam(r, "workerId")

	resp, err := h.workerService.UpdateWorker(r.Context(), req)
	if err != nil {
		slog.Error("UpdateWorker service error", "error", err)
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Worker updated", resp)
}

func (h *WorkerHandlerImpl) Deactivate(w http.ResponseWriter, r *http.Request) {
	if err := h.workerService.DeactivateWorker(r.Context(), chi.URLParam(r, "workerId")); err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Worker archived", nil)
}

func (h *WorkerHandlerImpl) Restore(w http.ResponseWriter, r *http.Request) {
	if err := h.workerService.RestoreWorker(r.Context(), chi.URLParam(r, "workerId")); err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Worker restored", nil)
}
