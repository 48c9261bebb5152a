package http

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/opl-logistica/backoffice-go/internal/domain/settlement"
	"github.com/opl-logistica/backoffice-go/internal/handler/http/response"
)

type SettlementHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Close(w http.ResponseWriter, r *http.Request)
	Reopen(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
}

type SettlementHandlerImpl struct {
	settlementService settlement.SettlementService
}

func NewSettlementHandler(settlementService settlement.SettlementService) SettlementHandler {
	return &SettlementHandlerImpl{settlementService: settlementService}
}

func (h *SettlementHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var req settlement.CreateSettlementRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	resp, err := h.settlementService.CreateSettlement(r.Context(), req)
	if err != nil {
		slog.Error("CreateSettlement service error", "error", err)
		response.HandleError(w, err)
		return
	}
	response.Created(w, "Settlement created", resp)
}

func (h *SettlementHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	resp, err := h.settlementService.GetSettlement(r.Context(), chi.URLParam(r, "settlementId"))
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, resp)
}

func (h *SettlementHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	var filter settlement.SettlementFilter
	q := r.URL.Query()
	if workerID := q.Get("worker_id"); workerID != "" {
		filter.WorkerID = &workerID
	}
	if warehouse := q.Get("warehouse"); warehouse != "" {
		filter.Warehouse = &warehouse
	}
	if date := q.Get("date"); date != "" {
		filter.Date = &date
	}
	if year, err := strconv.Atoi(q.Get("year")); err == nil {
		filter.Year = &year
	}
	if month, err := strconv.Atoi(q.Get("month")); err == nil {
		filter.Month = &month
	}

	resp, err := h.settlementService.ListSettlements(r.Context(), filter)
	if err != nil {
		slog.Error("ListSettlements service error", "error", err)
		response.HandleError(w, err)
		return
	}
	response.Success(w, resp)
}

func (h *SettlementHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	var req settlement.UpdateSettlementRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.ID = chi.URLParam(r, "settlementId")

	resp, err := h.settlementService.UpdateSettlement(r.Context(), req)
	if err != nil {
		slog.Error("UpdateSettlement service error", "error", err)
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Settlement updated", resp)
}

func (h *SettlementHandlerImpl) Close(w http.ResponseWriter, r *http.Request) {
	if err := h.settlementService.CloseSettlement(r.Context(), chi.URLParam(r, "settlementId")); err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Settlement closed", nil)
}

func (h *SettlementHandlerImpl) Reopen(w http.ResponseWriter, r *http.Request) {
	if err := h.settlementService.ReopenSettlement(r.Context(), chi.URLParam(r, "settlementId")); err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Settlement reopened", nil)
}

func (h *SettlementHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.settlementService.DeleteSettlement(r.Context(), chi.URLParam(r, "settlementId")); err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Settlement deleted", nil)
}
