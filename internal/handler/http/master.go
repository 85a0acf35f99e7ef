package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/campus-hr/payroll-backend-go/internal/domain/master/department"
	"github.com/campus-hr/payroll-backend-go/internal/domain/master/position"
	"github.com/campus-hr/payroll-backend-go/internal/handler/http/response"
	"github.com/campus-hr/payroll-backend-go/internal/service/master"
	"github.com/go-chi/chi/v5"
)

type MasterHandler interface {
	CreateDepartment(w http.ResponseWriter, r *http.Request)
	GetDepartment(w http.ResponseWriter, r *http.Request)
	ListDepartments(w http.ResponseWriter, r *http.Request)
	UpdateDepartment(w http.ResponseWriter, r *http.Request)
	DeleteDepartment(w http.ResponseWriter, r *http.Request)

	CreatePosition(w http.ResponseWriter, r *http.Request)
	GetPosition(w http.ResponseWriter, r *http.Request)
	ListPositions(w http.ResponseWriter, r *http.Request)
	UpdatePosition(w http.ResponseWriter, r *http.Request)
	DeletePosition(w http.ResponseWriter, r *http.Request)
}

type MasterHandlerImpl struct {
	masterService master.MasterService
}

func NewMasterHandler(masterService master.MasterService) MasterHandler {
	return &MasterHandlerImpl{masterService: masterService}
}

// ==================== DEPARTMENTS ====================

// CreateDepartment implements MasterHandler.
func (h *MasterHandlerImpl) CreateDepartment(w http.ResponseWriter, r *http.Request) {
	var createReq department.CreateDepartmentRequest

	if err := json.NewDecoder(r.Body).Decode(&createReq); err != nil {
		slog.Error("Create department decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := createReq.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	created, err := h.masterService.CreateDepartment(r.Context(), createReq)
	if err != nil {
		slog.Error("Create department service error", "error", err)
		response.HandleError(w, err)
		return
	}
	response.Created(w, "Department created successfully", created)
}

// GetDepartment implements MasterHandler.
func (h *MasterHandlerImpl) GetDepartment(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	result, err := h.masterService.GetDepartment(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, result)
}

// ListDepartments implements MasterHandler.
func (h *MasterHandlerImpl) ListDepartments(w http.ResponseWriter, r *http.Request) {
	departments, err := h.masterService.ListDepartments(r.Context())
	if err != nil {
		slog.Error("List departments service error", "error", err)
		response.HandleError(w, err)
		return
	}
	response.Success(w, departments)
}

// UpdateDepartment implements MasterHandler.
func (h *MasterHandlerImpl) UpdateDepartment(w http.ResponseWriter, r *http.Request) {
	var updateReq department.UpdateDepartmentRequest

	if err := json.NewDecoder(r.Body).Decode(&updateReq); err != nil {
		slog.Error("Update department decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	updateReq.ID = chi.URLParam(r, "id")

	if err := h.masterService.UpdateDepartment(r.Context(), updateReq); err != nil {
		slog.Error("Update department service error", "error", err)
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Department updated successfully", nil)
}

// DeleteDepartment implements MasterHandler.
func (h *MasterHandlerImpl) DeleteDepartment(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.masterService.DeleteDepartment(r.Context(), id); err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Department deleted successfully", nil)
}

// ==================== POSITIONS ====================

// CreatePosition implements MasterHandler.
func (h *MasterHandlerImpl) CreatePosition(w http.ResponseWriter, r *http.Request) {
	var createReq position.CreatePositionRequest

	if err := json.NewDecoder(r.Body).Decode(&createReq); err != nil {
		slog.Error("Create position decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := createReq.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	created, err := h.masterService.CreatePosition(r.Context(), createReq)
	if err != nil {
		slog.Error("Create position service error", "error", err)
		response.HandleError(w, err)
		return
	}
	response.Created(w, "Position created successfully", created)
}

// GetPosition implements MasterHandler.
func (h *MasterHandlerImpl) GetPosition(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	result, err := h.masterService.GetPosition(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, result)
}

// ListPositions implements MasterHandler.
func (h *MasterHandlerImpl) ListPositions(w http.ResponseWriter, r *http.Request) {
	positions, err := h.masterService.ListPositions(r.Context())
	if err != nil {
		slog.Error("List positions service error", "error", err)
		response.HandleError(w, err)
		return
	}
	response.Success(w, positions)
}

// UpdatePosition implements MasterHandler.
func (h *MasterHandlerImpl) UpdatePosition(w http.ResponseWriter, r *http.Request) {
	var updateReq position.UpdatePositionRequest

	if err := json.NewDecoder(r.Body).Decode(&updateReq); err != nil {
		slog.Error("Update position decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	updateReq.ID = chi.URLParam(r, "id")

	if err := h.masterService.UpdatePosition(r.Context(), updateReq); err != nil {
		slog.Error("Update position service error", "error", err)
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Position updated successfully", nil)
}

// DeletePosition implements MasterHandler.
func (h *MasterHandlerImpl) DeletePosition(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.masterService.DeletePosition(r.Context(), id); err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Position deleted successfully", nil)
}
