package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/campus-hr/payroll-backend-go/internal/domain/payroll"
	"github.com/campus-hr/payroll-backend-go/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type PayrollHandler interface {
	Generate(w http.ResponseWriter, r *http.Request)

	GetRecord(w http.ResponseWriter, r *http.Request)
	ListRecords(w http.ResponseWriter, r *http.Request)
	UpdateRecordStatus(w http.ResponseWriter, r *http.Request)
	DeleteRecord(w http.ResponseWriter, r *http.Request)

	CreatePeriod(w http.ResponseWriter, r *http.Request)
	ListPeriods(w http.ResponseWriter, r *http.Request)
	UpdatePeriod(w http.ResponseWriter, r *http.Request)
	UpdatePeriodStatus(w http.ResponseWriter, r *http.Request)
	DeletePeriod(w http.ResponseWriter, r *http.Request)
}

type PayrollHandlerImpl struct {
	payrollService payroll.PayrollService
}

func NewPayrollHandler(payrollService payroll.PayrollService) PayrollHandler {
	return &PayrollHandlerImpl{payrollService: payrollService}
}

// Generate implements PayrollHandler.
func (h *PayrollHandlerImpl) Generate(w http.ResponseWriter, r *http.Request) {
	var generateReq payroll.GenerateRequest

	if err := json.NewDecoder(r.Body).Decode(&generateReq); err != nil {
		slog.Error("Generate payroll decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := generateReq.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	result, err := h.payrollService.Generate(r.Context(), generateReq)
	if err != nil {
		slog.Error("Generate payroll service error", "error", err)
		response.HandleError(w, err)
		return
	}

	slog.Info("Payroll generated",
		"period_id", generateReq.PeriodID,
		"records", len(result.Records),
		"failures", len(result.Failures),
	)
	response.Created(w, "Payroll generated successfully", result)
}

// ==================== RECORDS ====================

// GetRecord implements PayrollHandler.
func (h *PayrollHandlerImpl) GetRecord(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	result, err := h.payrollService.GetRecord(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, result)
}

// ListRecords implements PayrollHandler.
func (h *PayrollHandlerImpl) ListRecords(w http.ResponseWriter, r *http.Request) {
	page, limit := parsePagination(r)

	filter := payroll.RecordFilter{
		PeriodID:   optionalQuery(r, "period_id"),
		EmployeeID: optionalQuery(r, "employee_id"),
		Status:     optionalQuery(r, "status"),
		Page:       page,
		Limit:      limit,
	}

	records, total, err := h.payrollService.ListRecords(r.Context(), filter)
	if err != nil {
		slog.Error("List payroll records service error", "error", err)
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMeta(w, records, paginationMeta(page, limit, total))
}

// UpdateRecordStatus implements PayrollHandler.
func (h *PayrollHandlerImpl) UpdateRecordStatus(w http.ResponseWriter, r *http.Request) {
	var statusReq payroll.UpdateRecordStatusRequest

	if err := json.NewDecoder(r.Body).Decode(&statusReq); err != nil {
		slog.Error("Update payroll record status decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	statusReq.ID = chi.URLParam(r, "id")

	if err := statusReq.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	updated, err := h.payrollService.UpdateRecordStatus(r.Context(), statusReq)
	if err != nil {
		slog.Error("Update payroll record status service error", "error", err)
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Payroll record status updated successfully", updated)
}

// DeleteRecord implements PayrollHandler.
func (h *PayrollHandlerImpl) DeleteRecord(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.payrollService.DeleteRecord(r.Context(), id); err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Payroll record deleted successfully", nil)
}

// ==================== PERIODS ====================

// CreatePeriod implements PayrollHandler.
func (h *PayrollHandlerImpl) CreatePeriod(w http.ResponseWriter, r *http.Request) {
	var createReq payroll.CreatePeriodRequest

	if err := json.NewDecoder(r.Body).Decode(&createReq); err != nil {
		slog.Error("Create payroll period decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := createReq.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	created, err := h.payrollService.CreatePeriod(r.Context(), createReq)
	if err != nil {
		slog.Error("Create payroll period service error", "error", err)
		response.HandleError(w, err)
		return
	}
	response.Created(w, "Payroll period created successfully", created)
}

// ListPeriods implements PayrollHandler.
func (h *PayrollHandlerImpl) ListPeriods(w http.ResponseWriter, r *http.Request) {
	periods, err := h.payrollService.ListPeriods(r.Context(), optionalQuery(r, "status"))
	if err != nil {
		slog.Error("List payroll periods service error", "error", err)
		response.HandleError(w, err)
		return
	}
	response.Success(w, periods)
}

// UpdatePeriod implements PayrollHandler.
func (h *PayrollHandlerImpl) UpdatePeriod(w http.ResponseWriter, r *http.Request) {
	var updateReq payroll.UpdatePeriodRequest

	if err := json.NewDecoder(r.Body).Decode(&updateReq); err != nil {
		slog.Error("Update payroll period decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	updateReq.ID = chi.URLParam(r, "id")

	updated, err := h.payrollService.UpdatePeriod(r.Context(), updateReq)
	if err != nil {
		slog.Error("Update payroll period service error", "error", err)
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Payroll period updated successfully", updated)
}

// UpdatePeriodStatus implements PayrollHandler.
func (h *PayrollHandlerImpl) UpdatePeriodStatus(w http.ResponseWriter, r *http.Request) {
	var statusReq payroll.UpdatePeriodStatusRequest

	if err := json.NewDecoder(r.Body).Decode(&statusReq); err != nil {
		slog.Error("Update payroll period status decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	statusReq.ID = chi.URLParam(r, "id")

	if err := statusReq.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	updated, err := h.payrollService.UpdatePeriodStatus(r.Context(), statusReq)
	if err != nil {
		slog.Error("Update payroll period status service error", "error", err)
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Payroll period status updated successfully", updated)
}

// DeletePeriod implements PayrollHandler.
func (h *PayrollHandlerImpl) DeletePeriod(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.payrollService.DeletePeriod(r.Context(), id); err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Payroll period deleted successfully", nil)
}
