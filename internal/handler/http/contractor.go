package http

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/opl-logistica/backoffice-go/internal/domain/contractor"
	"github.com/opl-logistica/backoffice-go/internal/domain/export"
	"github.com/opl-logistica/backoffice-go/internal/handler/http/response"
)

type ContractorHandler interface {
	GetTariff(w http.ResponseWriter, r *http.Request)
	UpdateTariff(w http.ResponseWriter, r *http.Request)
	Calculate(w http.ResponseWriter, r *http.Request)
	Form(w http.ResponseWriter, r *http.Request)
	GetPayment(w http.ResponseWriter, r *http.Request)
	Roster(w http.ResponseWriter, r *http.Request)
	DeletePayment(w http.ResponseWriter, r *http.Request)
	Register(w http.ResponseWriter, r *http.Request)
}

type ContractorHandlerImpl struct {
	contractorService contractor.ContractorService
	exportService     export.ExportService
}

func NewContractorHandler(contractorService contractor.ContractorService, exportService export.ExportService) ContractorHandler {
	return &ContractorHandlerImpl{contractorService: contractorService, exportService: exportService}
}

func (h *ContractorHandlerImpl) GetTariff(w http.ResponseWriter, r *http.Request) {
	resp, err := h.contractorService.GetTariff(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, resp)
}

func (h *ContractorHandlerImpl) UpdateTariff(w http.ResponseWriter, r *http.Request) {
	var req contractor.UpdateTariffRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	resp, err := h.contractorService.UpdateTariff(r.Context(), &req)
	if err != nil {
		slog.Error("UpdateTariff service error", "error", err)
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Tariff updated", resp)
}

func (h *ContractorHandlerImpl) Calculate(w http.ResponseWriter, r *http.Request) {
	var req contractor.CalculateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.WorkerID = chi.URLParam(r, "workerId")

	resp, err := h.contractorService.Calculate(r.Context(), &req)
	if err != nil {
		slog.Error("Contractor calculate service error", "error", err, "worker_id", req.WorkerID, "period", req.Period)
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Contractor payment calculated", resp)
}

func (h *ContractorHandlerImpl) Form(w http.ResponseWriter, r *http.Request) {
	workerID := chi.URLParam(r, "workerId")
	period := r.URL.Query().Get("periodo")

	payment, defaults, err := h.contractorService.FormDefaults(r.Context(), workerID, period)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	if payment != nil {
		response.Success(w, payment)
		return
	}
	response.Success(w, defaults)
}

func (h *ContractorHandlerImpl) GetPayment(w http.ResponseWriter, r *http.Request) {
	resp, err := h.contractorService.GetPayment(r.Context(), chi.URLParam(r, "paymentId"))
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, resp)
}

func (h *ContractorHandlerImpl) Roster(w http.ResponseWriter, r *http.Request) {
	resp, err := h.contractorService.Roster(r.Context(), r.URL.Query().Get("periodo"))
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, resp)
}

func (h *ContractorHandlerImpl) DeletePayment(w http.ResponseWriter, r *http.Request) {
	if err := h.contractorService.DeletePayment(r.Context(), chi.URLParam(r, "paymentId")); err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Contractor payment deleted", nil)
}

func (h *ContractorHandlerImpl) Register(w http.ResponseWriter, r *http.Request) {
	period := r.URL.Query().Get("periodo")
	data, filename, err := h.exportService.ContractorRegisterPDF(r.Context(), period)
	if err != nil {
		slog.Error("Contractor register export error", "error", err)
		response.HandleError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	_, _ = w.Write(data)
}
