package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/campus-hr/payroll-backend-go/internal/domain/salarygrade"
	"github.com/campus-hr/payroll-backend-go/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type SalaryGradeHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
}

type SalaryGradeHandlerImpl struct {
	salaryGradeService salarygrade.SalaryGradeService
}

func NewSalaryGradeHandler(salaryGradeService salarygrade.SalaryGradeService) SalaryGradeHandler {
	return &SalaryGradeHandlerImpl{salaryGradeService: salaryGradeService}
}

// Create implements SalaryGradeHandler.
func (h *SalaryGradeHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var createReq salarygrade.CreateGradeStepRequest

	if err := json.NewDecoder(r.Body).Decode(&createReq); err != nil {
		slog.Error("Create salary grade decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := createReq.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	created, err := h.salaryGradeService.Create(r.Context(), createReq)
	if err != nil {
		slog.Error("Create salary grade service error", "error", err)
		response.HandleError(w, err)
		return
	}
	response.Created(w, "Salary grade step created successfully", created)
}

// List implements SalaryGradeHandler. ?grouped=1 returns one row per grade
// with the step salaries in order.
func (h *SalaryGradeHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	if r.URL.Query().Get("grouped") == "1" {
		grouped, err := h.salaryGradeService.ListGrouped(r.Context())
		if err != nil {
			slog.Error("List grouped salary grades service error", "error", err)
			response.HandleError(w, err)
			return
		}
		response.Success(w, grouped)
		return
	}

	steps, err := h.salaryGradeService.List(r.Context())
	if err != nil {
		slog.Error("List salary grades service error", "error", err)
		response.HandleError(w, err)
		return
	}
	response.Success(w, steps)
}

// Update implements SalaryGradeHandler.
func (h *SalaryGradeHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	var updateReq salarygrade.UpdateGradeStepRequest

	if err := json.NewDecoder(r.Body).Decode(&updateReq); err != nil {
		slog.Error("Update salary grade decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	updateReq.ID = chi.URLParam(r, "id")

	updated, err := h.salaryGradeService.Update(r.Context(), updateReq)
	if err != nil {
		slog.Error("Update salary grade service error", "error", err)
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Salary grade step updated successfully", updated)
}

// Delete implements SalaryGradeHandler.
func (h *SalaryGradeHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.salaryGradeService.Delete(r.Context(), id); err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Salary grade step deleted successfully", nil)
}
