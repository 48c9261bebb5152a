package http

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/opl-logistica/backoffice-go/internal/domain/export"
	"github.com/opl-logistica/backoffice-go/internal/domain/payroll"
	"github.com/opl-logistica/backoffice-go/internal/handler/http/response"
)

type PayrollHandler interface {
	Calculate(w http.ResponseWriter, r *http.Request)
	Form(w http.ResponseWriter, r *http.Request)
	GetRecord(w http.ResponseWriter, r *http.Request)
	Roster(w http.ResponseWriter, r *http.Request)
	DeleteRecord(w http.ResponseWriter, r *http.Request)
	Payslip(w http.ResponseWriter, r *http.Request)
}

type PayrollHandlerImpl struct {
	payrollService payroll.PayrollService
	exportService  export.ExportService
}

func NewPayrollHandler(payrollService payroll.PayrollService, exportService export.ExportService) PayrollHandler {
	return &PayrollHandlerImpl{payrollService: payrollService, exportService: exportService}
}

func (h *PayrollHandlerImpl) Calculate(w http.ResponseWriter, r *http.Request) {
	var req payroll.CalculateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.WorkerID = chi.URLParam(r, "workerId")

	resp, err := h.payrollService.Calculate(r.Context(), &req)
	if err != nil {
		slog.Error("Calculate service error", "error", err, "worker_id", req.WorkerID, "period", req.Period)
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Payroll calculated", resp)
}

// Form returns the stored record for the period when one exists, or the
// pre-filled defaults for a fresh calculation.
func (h *PayrollHandlerImpl) Form(w http.ResponseWriter, r *http.Request) {
	workerID := chi.URLParam(r, "workerId")
	period := r.URL.Query().Get("periodo")

	record, defaults, err := h.payrollService.FormDefaults(r.Context(), workerID, period)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	if record != nil {
		response.Success(w, record)
		return
	}
	response.Success(w, defaults)
}

func (h *PayrollHandlerImpl) GetRecord(w http.ResponseWriter, r *http.Request) {
	resp, err := h.payrollService.GetRecord(r.Context(), chi.URLParam(r, "recordId"))
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, resp)
}

func (h *PayrollHandlerImpl) Roster(w http.ResponseWriter, r *http.Request) {
	resp, err := h.payrollService.Roster(r.Context(), r.URL.Query().Get("periodo"))
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, resp)
}

func (h *PayrollHandlerImpl) DeleteRecord(w http.ResponseWriter, r *http.Request) {
	if err := h.payrollService.DeleteRecord(r.Context(), chi.URLParam(r, "recordId")); err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Payroll record deleted", nil)
}

func (h *PayrollHandlerImpl) Payslip(w http.ResponseWriter, r *http.Request) {
	data, filename, err := h.exportService.PayslipPDF(r.Context(), chi.URLParam(r, "recordId"))
	if err != nil {
		slog.Error("Payslip export error", "error", err)
		response.HandleError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	_, _ = w.Write(data)
}
