package http

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"

	"github.com/campus-hr/payroll-backend-go/internal/domain/attendance"
	"github.com/campus-hr/payroll-backend-go/internal/handler/http/response"
)

type AttendanceHandler interface {
	ClockIn(w http.ResponseWriter, r *http.Request)
	ClockOut(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	Summary(w http.ResponseWriter, r *http.Request)
}

type AttendanceHandlerImpl struct {
	attendanceService attendance.AttendanceService
}

func NewAttendanceHandler(attendanceService attendance.AttendanceService) AttendanceHandler {
	return &AttendanceHandlerImpl{attendanceService: attendanceService}
}

// ClockIn implements AttendanceHandler.
func (h *AttendanceHandlerImpl) ClockIn(w http.ResponseWriter, r *http.Request) {
	var clockReq attendance.ClockRequest

	if err := json.NewDecoder(r.Body).Decode(&clockReq); err != nil {
		slog.Error("Clock-in decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := clockReq.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	result, err := h.attendanceService.ClockIn(r.Context(), clockReq)
	if err != nil {
		slog.Error("Clock-in service error", "error", err)
		response.HandleError(w, err)
		return
	}
	response.Created(w, "Clocked in successfully", result)
}

// ClockOut implements AttendanceHandler.
func (h *AttendanceHandlerImpl) ClockOut(w http.ResponseWriter, r *http.Request) {
	var clockReq attendance.ClockRequest

	if err := json.NewDecoder(r.Body).Decode(&clockReq); err != nil {
		slog.Error("Clock-out decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := clockReq.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	result, err := h.attendanceService.ClockOut(r.Context(), clockReq)
	if err != nil {
		slog.Error("Clock-out service error", "error", err)
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Clocked out successfully", result)
}

// List implements AttendanceHandler.
func (h *AttendanceHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	page, limit := parsePagination(r)

	filter := attendance.AttendanceFilter{
		EmployeeID: optionalQuery(r, "employee_id"),
		DateFrom:   optionalQuery(r, "date_from"),
		DateTo:     optionalQuery(r, "date_to"),
		Page:       page,
		Limit:      limit,
	}

	attendances, total, err := h.attendanceService.List(r.Context(), filter)
	if err != nil {
		slog.Error("List attendance service error", "error", err)
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMeta(w, attendances, paginationMeta(page, limit, total))
}

// Summary implements AttendanceHandler.
func (h *AttendanceHandlerImpl) Summary(w http.ResponseWriter, r *http.Request) {
	start := r.URL.Query().Get("start")
	end := r.URL.Query().Get("end")
	if start == "" || end == "" {
		response.BadRequest(w, "start and end query parameters are required", nil)
		return
	}

	var employeeIDs []string
	if raw := r.URL.Query().Get("employee_ids"); raw != "" {
		employeeIDs = strings.Split(raw, ",")
	}

	summaries, err := h.attendanceService.Summary(r.Context(), start, end, employeeIDs)
	if err != nil {
		slog.Error("Attendance summary service error", "error", err)
		response.HandleError(w, err)
		return
	}
	response.Success(w, summaries)
}
