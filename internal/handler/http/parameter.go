package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/opl-logistica/backoffice-go/internal/domain/parameter"
	"github.com/opl-logistica/backoffice-go/internal/handler/http/response"
)

type ParameterHandler interface {
	Overview(w http.ResponseWriter, r *http.Request)
	UpsertParameter(w http.ResponseWriter, r *http.Request)
	CreateEntity(w http.ResponseWriter, r *http.Request)
	UpdateEntity(w http.ResponseWriter, r *http.Request)
	DeleteEntity(w http.ResponseWriter, r *http.Request)
	ReplaceBrackets(w http.ResponseWriter, r *http.Request)
}

type ParameterHandlerImpl struct {
	parameterService parameter.ParameterService
}

func NewParameterHandler(parameterService parameter.ParameterService) ParameterHandler {
	return &ParameterHandlerImpl{parameterService: parameterService}
}

func (h *ParameterHandlerImpl) Overview(w http.ResponseWriter, r *http.Request) {
	resp, err := h.parameterService.GetOverview(r.Context())
	if err != nil {
		slog.Error("Parameter overview service error", "error", err)
		response.HandleError(w, err)
		return
	}
	response.Success(w, resp)
}

func (h *ParameterHandlerImpl) UpsertParameter(w http.ResponseWriter, r *http.Request) {
	var req parameter.UpsertParameterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.Key = chi.URLParam(r, "key")

	resp, err := h.parameterService.UpsertParameter(r.Context(), req)
	if err != nil {
		slog.Error("UpsertParameter service error", "error", err)
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Parameter saved", resp)
}

func (h *ParameterHandlerImpl) CreateEntity(w http.ResponseWriter, r *http.Request) {
	var req parameter.CreateEntityRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.Kind = chi.URLParam(r, "kind")

	resp, err := h.parameterService.CreateEntity(r.Context(), req)
	if err != nil {
		slog.Error("CreateEntity service error", "error", err)
		response.HandleError(w, err)
		return
	}
	response.Created(w, "Entity created", resp)
}

func (h *ParameterHandlerImpl) UpdateEntity(w http.ResponseWriter, r *http.Request) {
	var req parameter.UpdateEntityRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.Kind = chi.URLParam(r, "kind")
	req.ID = chi.URLParam(r, "entityId")

	if err := h.parameterService.UpdateEntity(r.Context(), req); err != nil {
		slog.Error("UpdateEntity service error", "error", err)
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Entity updated", nil)
}

func (h *ParameterHandlerImpl) DeleteEntity(w http.ResponseWriter, r *http.Request) {
	kind := chi.URLParam(r, "kind")
	id := chi.URLParam(r, "entityId")

	if err := h.parameterService.DeleteEntity(r.Context(), kind, id); err != nil {
		slog.Error("DeleteEntity service error", "error", err)
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Entity deleted", nil)
}

func (h *ParameterHandlerImpl) ReplaceBrackets(w http.ResponseWriter, r *http.Request) {
	var req parameter.ReplaceBracketsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	resp, err := h.parameterService.ReplaceBrackets(r.Context(), req)
	if err != nil {
		slog.Error("ReplaceBrackets service error", "error", err)
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Brackets replaced", resp)
}
