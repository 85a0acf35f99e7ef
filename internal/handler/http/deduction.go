package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/campus-hr/payroll-backend-go/internal/domain/deduction"
	"github.com/campus-hr/payroll-backend-go/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type DeductionHandler interface {
	CreateRate(w http.ResponseWriter, r *http.Request)
	GetRate(w http.ResponseWriter, r *http.Request)
	ListRates(w http.ResponseWriter, r *http.Request)
	UpdateRate(w http.ResponseWriter, r *http.Request)
	DeleteRate(w http.ResponseWriter, r *http.Request)

	CreateBracket(w http.ResponseWriter, r *http.Request)
	GetBracket(w http.ResponseWriter, r *http.Request)
	ListBrackets(w http.ResponseWriter, r *http.Request)
	UpdateBracket(w http.ResponseWriter, r *http.Request)
	DeleteBracket(w http.ResponseWriter, r *http.Request)
}

type DeductionHandlerImpl struct {
	deductionService deduction.DeductionService
}

func NewDeductionHandler(deductionService deduction.DeductionService) DeductionHandler {
	return &DeductionHandlerImpl{deductionService: deductionService}
}

// ==================== RATES ====================

// CreateRate implements DeductionHandler.
func (h *DeductionHandlerImpl) CreateRate(w http.ResponseWriter, r *http.Request) {
	var createReq deduction.CreateRateRequest

	if err := json.NewDecoder(r.Body).Decode(&createReq); err != nil {
		slog.Error("Create deduction rate decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := createReq.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	created, err := h.deductionService.CreateRate(r.Context(), createReq)
	if err != nil {
		slog.Error("Create deduction rate service error", "error", err)
		response.HandleError(w, err)
		return
	}
	response.Created(w, "Deduction rate created successfully", created)
}

// GetRate implements DeductionHandler.
func (h *DeductionHandlerImpl) GetRate(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	result, err := h.deductionService.GetRate(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, result)
}

// ListRates implements DeductionHandler.
func (h *DeductionHandlerImpl) ListRates(w http.ResponseWriter, r *http.Request) {
	activeOnly := r.URL.Query().Get("active") == "1"

	rates, err := h.deductionService.ListRates(r.Context(), activeOnly)
	if err != nil {
		slog.Error("List deduction rates service error", "error", err)
		response.HandleError(w, err)
		return
	}
	response.Success(w, rates)
}

// UpdateRate implements DeductionHandler.
func (h *DeductionHandlerImpl) UpdateRate(w http.ResponseWriter, r *http.Request) {
	var updateReq deduction.UpdateRateRequest

	if err := json.NewDecoder(r.Body).Decode(&updateReq); err != nil {
		slog.Error("Update deduction rate decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	updateReq.ID = chi.URLParam(r, "id")

	updated, err := h.deductionService.UpdateRate(r.Context(), updateReq)
	if err != nil {
		slog.Error("Update deduction rate service error", "error", err)
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Deduction rate updated successfully", updated)
}

// DeleteRate implements DeductionHandler.
func (h *DeductionHandlerImpl) DeleteRate(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.deductionService.DeleteRate(r.Context(), id); err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Deduction rate deleted successfully", nil)
}

// ==================== TAX BRACKETS ====================

// CreateBracket implements DeductionHandler.
func (h *DeductionHandlerImpl) CreateBracket(w http.ResponseWriter, r *http.Request) {
	var createReq deduction.CreateBracketRequest

	if err := json.NewDecoder(r.Body).Decode(&createReq); err != nil {
		slog.Error("Create tax bracket decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := createReq.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	created, err := h.deductionService.CreateBracket(r.Context(), createReq)
	if err != nil {
		slog.Error("Create tax bracket service error", "error", err)
		response.HandleError(w, err)
		return
	}
	response.Created(w, "Tax bracket created successfully", created)
}

// GetBracket implements DeductionHandler.
func (h *DeductionHandlerImpl) GetBracket(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	result, err := h.deductionService.GetBracket(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, result)
}

// ListBrackets implements DeductionHandler.
func (h *DeductionHandlerImpl) ListBrackets(w http.ResponseWriter, r *http.Request) {
	activeOnly := r.URL.Query().Get("active") == "1"

	brackets, err := h.deductionService.ListBrackets(r.Context(), activeOnly)
	if err != nil {
		slog.Error("List tax brackets service error", "error", err)
		response.HandleError(w, err)
		return
	}
	response.Success(w, brackets)
}

// UpdateBracket implements DeductionHandler.
func (h *DeductionHandlerImpl) UpdateBracket(w http.ResponseWriter, r *http.Request) {
	var updateReq deduction.UpdateBracketRequest

	if err := json.NewDecoder(r.Body).Decode(&updateReq); err != nil {
		slog.Error("Update tax bracket decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	updateReq.ID = chi.URLParam(r, "id")

	updated, err := h.deductionService.UpdateBracket(r.Context(), updateReq)
	if err != nil {
		slog.Error("Update tax bracket service error", "error", err)
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Tax bracket updated successfully", updated)
}

// DeleteBracket implements DeductionHandler.
func (h *DeductionHandlerImpl) DeleteBracket(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.deductionService.DeleteBracket(r.Context(), id); err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Tax bracket deleted successfully", nil)
}
