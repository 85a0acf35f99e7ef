package attendance

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/campus-hr/payroll-backend-go/internal/domain/attendance"
	"github.com/campus-hr/payroll-backend-go/internal/domain/employee"
	payrollsvc "github.com/campus-hr/payroll-backend-go/internal/service/payroll"
)

// WorkdayStartHour is when the official workday begins; minutes clocked in
// after it count as lateness.
const WorkdayStartHour = 8

type AttendanceServiceImpl struct {
	attendanceRepo attendance.AttendanceRepository
	employeeRepo   employee.EmployeeRepository
	policy         payrollsvc.WorkdayPolicy
	now            func() time.Time
}

func NewAttendanceService(
	attendanceRepo attendance.AttendanceRepository,
	employeeRepo employee.EmployeeRepository,
	policy payrollsvc.WorkdayPolicy,
) attendance.AttendanceService {
	return &AttendanceServiceImpl{
		attendanceRepo: attendanceRepo,
		employeeRepo:   employeeRepo,
		policy:         policy,
		now:            time.Now,
	}
}

// ClockIn implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) ClockIn(ctx context.Context, req attendance.ClockRequest) (attendance.AttendanceResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.AttendanceResponse{}, err
	}

	emp, err := s.employeeRepo.GetByID(ctx, req.EmployeeID)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}
	if !emp.IsActive {
		return attendance.AttendanceResponse{}, employee.ErrEmployeeDeactivated
	}

	now := s.now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	existing, err := s.attendanceRepo.GetByEmployeeAndDate(ctx, req.EmployeeID, today)
	if err != nil && !errors.Is(err, attendance.ErrAttendanceNotFound) {
		return attendance.AttendanceResponse{}, fmt.Errorf("failed to check today's attendance: %w", err)
	}
	if err == nil && existing.TimeIn != nil {
		return attendance.AttendanceResponse{}, attendance.ErrAlreadyClockedIn
	}

	late := lateMinutes(now)
	status := attendance.StatusPresent
	if late > 0 {
		status = attendance.StatusLate
	}

	created, err := s.attendanceRepo.Create(ctx, attendance.Attendance{
		EmployeeID:  req.EmployeeID,
		Date:        today,
		TimeIn:      &now,
		LateMinutes: late,
		Status:      status,
	})
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}
	return mapToAttendanceResponse(created), nil
}

// ClockOut implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) ClockOut(ctx context.Context, req attendance.ClockRequest) (attendance.AttendanceResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.AttendanceResponse{}, err
	}

	now := s.now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	existing, err := s.attendanceRepo.GetByEmployeeAndDate(ctx, req.EmployeeID, today)
	if err != nil {
		if errors.Is(err, attendance.ErrAttendanceNotFound) {
			return attendance.AttendanceResponse{}, attendance.ErrNotClockedIn
		}
		return attendance.AttendanceResponse{}, fmt.Errorf("failed to get today's attendance: %w", err)
	}
	if existing.TimeIn == nil || existing.TimeOut != nil {
		return attendance.AttendanceResponse{}, attendance.ErrNotClockedIn
	}

	existing.TimeOut = &now
	if err := s.attendanceRepo.Update(ctx, existing); err != nil {
		return attendance.AttendanceResponse{}, err
	}
	return mapToAttendanceResponse(existing), nil
}

// List implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) List(ctx context.Context, filter attendance.AttendanceFilter) ([]attendance.AttendanceResponse, int64, error) {
	rows, totalCount, err := s.attendanceRepo.List(ctx, filter)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list attendance: %w", err)
	}

	result := make([]attendance.AttendanceResponse, 0, len(rows))
	for _, row := range rows {
		result = append(result, mapToAttendanceResponse(row))
	}
	return result, totalCount, nil
}

// Summary implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) Summary(ctx context.Context, start, end string, employeeIDs []string) ([]attendance.SummaryResponse, error) {
	startDate, err := time.Parse("2006-01-02", start)
	if err != nil {
		return nil, fmt.Errorf("invalid start date %q: %w", start, err)
	}
	endDate, err := time.Parse("2006-01-02", end)
	if err != nil {
		return nil, fmt.Errorf("invalid end date %q: %w", end, err)
	}

	if len(employeeIDs) == 0 {
		active, err := s.employeeRepo.GetActive(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to get active employees: %w", err)
		}
		for _, emp := range active {
			employeeIDs = append(employeeIDs, emp.ID)
		}
	}

	summaries, err := s.attendanceRepo.Summarize(ctx, startDate, endDate, employeeIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate attendance: %w", err)
	}

	result := make([]attendance.SummaryResponse, 0, len(employeeIDs))
	for _, id := range employeeIDs {
		summary := summaries[id]
		result = append(result, attendance.SummaryResponse{
			EmployeeID:       id,
			DaysWorked:       summary.DaysWorked,
			DaysAbsent:       s.policy.DaysAbsent(startDate, endDate, summary.DaysWorked),
			LateMinutesTotal: summary.LateMinutesTotal,
		})
	}
	return result, nil
}

// lateMinutes counts whole minutes past the workday start, zero before it.
func lateMinutes(t time.Time) int {
	start := time.Date(t.Year(), t.Month(), t.Day(), WorkdayStartHour, 0, 0, 0, t.Location())
	if !t.After(start) {
		return 0
	}
	return int(t.Sub(start) / time.Minute)
}

func mapToAttendanceResponse(a attendance.Attendance) attendance.AttendanceResponse {
	resp := attendance.AttendanceResponse{
		ID:           a.ID,
		EmployeeID:   a.EmployeeID,
		EmployeeName: a.EmployeeName,
		Date:         a.Date.Format("2006-01-02"),
		LateMinutes:  a.LateMinutes,
		Status:       string(a.Status),
	}
	if a.TimeIn != nil {
		in := a.TimeIn.Format(time.RFC3339)
		resp.TimeIn = &in
	}
	if a.TimeOut != nil {
		out := a.TimeOut.Format(time.RFC3339)
		resp.TimeOut = &out
	}
	return resp
}
