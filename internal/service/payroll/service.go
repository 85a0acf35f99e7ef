package payroll

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/campus-hr/payroll-backend-go/internal/domain/attendance"
	"github.com/campus-hr/payroll-backend-go/internal/domain/deduction"
	"github.com/campus-hr/payroll-backend-go/internal/domain/employee"
	"github.com/campus-hr/payroll-backend-go/internal/domain/payroll"
	"github.com/campus-hr/payroll-backend-go/internal/domain/salarygrade"
	"github.com/shopspring/decimal"
)

type PayrollServiceImpl struct {
	payrollRepo    payroll.PayrollRepository
	employeeRepo   employee.EmployeeRepository
	gradeRepo      salarygrade.SalaryGradeRepository
	deductionRepo  deduction.DeductionRepository
	attendanceRepo attendance.AttendanceRepository
	policy         WorkdayPolicy
}

func NewPayrollService(
	payrollRepo payroll.PayrollRepository,
	employeeRepo employee.EmployeeRepository,
	gradeRepo salarygrade.SalaryGradeRepository,
	deductionRepo deduction.DeductionRepository,
	attendanceRepo attendance.AttendanceRepository,
	policy WorkdayPolicy,
) payroll.PayrollService {
	return &PayrollServiceImpl{
		payrollRepo:    payrollRepo,
		employeeRepo:   employeeRepo,
		gradeRepo:      gradeRepo,
		deductionRepo:  deductionRepo,
		attendanceRepo: attendanceRepo,
		policy:         policy,
	}
}

// ========== GENERATION ==========

// Generate produces one payroll record per eligible employee for the period.
// Computation failures (a missing salary grade row) are reported per
// employee without blocking the rest of the batch; a non-open period or a
// pre-existing record for any requested employee aborts the whole call
// before anything is written.
func (s *PayrollServiceImpl) Generate(ctx context.Context, req payroll.GenerateRequest) (payroll.GenerateResponse, error) {
	if err := req.Validate(); err != nil {
		return payroll.GenerateResponse{}, err
	}

	period, err := s.payrollRepo.GetPeriodByID(ctx, req.PeriodID)
	if err != nil {
		return payroll.GenerateResponse{}, err
	}
	if period.Status != payroll.PeriodStatusOpen {
		return payroll.GenerateResponse{}, payroll.ErrPeriodLocked
	}

	rates, err := s.deductionRepo.GetRates(ctx, true)
	if err != nil {
		return payroll.GenerateResponse{}, fmt.Errorf("failed to load deduction rates: %w", err)
	}

	rawBrackets, err := s.deductionRepo.GetBrackets(ctx, true)
	if err != nil {
		return payroll.GenerateResponse{}, fmt.Errorf("failed to load tax brackets: %w", err)
	}
	brackets, err := deduction.ValidateBrackets(rawBrackets)
	if err != nil {
		return payroll.GenerateResponse{}, err
	}

	employees, failures, err := s.resolveEmployees(ctx, req.EmployeeIDs)
	if err != nil {
		return payroll.GenerateResponse{}, err
	}
	if len(employees) == 0 && len(failures) == 0 {
		return payroll.GenerateResponse{}, payroll.ErrNoEligibleEmployee
	}

	// A record that already exists for any requested employee is a
	// regeneration conflict; the whole call fails with nothing written.
	for _, emp := range employees {
		exists, err := s.payrollRepo.ExistsForPeriod(ctx, emp.ID, period.ID)
		if err != nil {
			return payroll.GenerateResponse{}, fmt.Errorf("failed to check existing payroll record: %w", err)
		}
		if exists {
			return payroll.GenerateResponse{}, payroll.ErrDuplicateRecord
		}
	}

	employeeIDs := make([]string, 0, len(employees))
	for _, emp := range employees {
		employeeIDs = append(employeeIDs, emp.ID)
	}
	summaries, err := s.attendanceRepo.Summarize(ctx, period.StartDate, period.EndDate, employeeIDs)
	if err != nil {
		return payroll.GenerateResponse{}, fmt.Errorf("failed to aggregate attendance: %w", err)
	}

	var records []payroll.RecordResponse
	for _, emp := range employees {
		basic, err := s.resolveBasicSalary(ctx, emp)
		if err != nil {
			failures = append(failures, payroll.GenerateFailure{EmployeeID: emp.ID, Reason: err.Error()})
			continue
		}

		att := summaries[emp.ID]
		daysAbsent := s.policy.DaysAbsent(period.StartDate, period.EndDate, att.DaysWorked)

		breakdown := Compute(CalcInput{
			BasicSalary:     basic,
			DaysAbsent:      daysAbsent,
			AllowanceRLA:    req.AllowanceRLA,
			Honorarium:      req.Honorarium,
			OvertimePay:     req.OvertimePay,
			OtherDeductions: req.OtherDeductions,
			Rates:           rates,
			Brackets:        brackets,
			Policy:          s.policy,
		})

		record := payroll.PayrollRecord{
			EmployeeID:          emp.ID,
			PeriodID:            period.ID,
			BasicSalary:         basic,
			AdjustedBasic:       breakdown.AdjustedBasic,
			DaysWorked:          att.DaysWorked,
			DaysAbsent:          daysAbsent,
			LateMinutesTotal:    att.LateMinutesTotal,
			AllowanceRLA:        req.AllowanceRLA,
			Honorarium:          req.Honorarium,
			OvertimePay:         req.OvertimePay,
			GrossPay:            breakdown.GrossPay,
			DeductionGSIS:       breakdown.GSIS,
			DeductionPhilHealth: breakdown.PhilHealth,
			DeductionPagIBIG:    breakdown.PagIBIG,
			DeductionTax:        breakdown.Tax,
			OtherDeductions:     req.OtherDeductions,
			NetSalary:           breakdown.NetSalary,
			Status:              payroll.RecordStatusPending,
		}

		created, err := s.payrollRepo.CreateRecord(ctx, record)
		if err != nil {
			// A concurrent generation beat us to the unique index.
			if errors.Is(err, payroll.ErrDuplicateRecord) {
				return payroll.GenerateResponse{}, payroll.ErrDuplicateRecord
			}
			return payroll.GenerateResponse{}, fmt.Errorf("failed to create payroll record for employee %s: %w", emp.ID, err)
		}
		records = append(records, mapToRecordResponse(created))
	}

	return payroll.GenerateResponse{Records: records, Failures: failures}, nil
}

// resolveEmployees loads the generation targets. Requested IDs that do not
// resolve to an employee become per-employee failures.
func (s *PayrollServiceImpl) resolveEmployees(ctx context.Context, ids []string) ([]employee.Employee, []payroll.GenerateFailure, error) {
	if len(ids) == 0 {
		employees, err := s.employeeRepo.GetActive(ctx)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to get active employees: %w", err)
		}
		return employees, nil, nil
	}

	employees, err := s.employeeRepo.GetByIDs(ctx, ids)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to get employees: %w", err)
	}

	found := make(map[string]bool, len(employees))
	for _, emp := range employees {
		found[emp.ID] = true
	}

	var failures []payroll.GenerateFailure
	for _, id := range ids {
		if !found[id] {
			failures = append(failures, payroll.GenerateFailure{EmployeeID: id, Reason: employee.ErrEmployeeNotFound.Error()})
		}
	}

	return employees, failures, nil
}

// resolveBasicSalary returns the grade-table salary for faculty rows and the
// stored flat salary otherwise.
func (s *PayrollServiceImpl) resolveBasicSalary(ctx context.Context, emp employee.Employee) (decimal.Decimal, error) {
	if emp.IsGraded() {
		step, err := s.gradeRepo.Lookup(ctx, *emp.SalaryGrade, *emp.SalaryStep)
		if err != nil {
			return decimal.Zero, err
		}
		return step.MonthlySalary, nil
	}
	if emp.BaseSalary != nil {
		return *emp.BaseSalary, nil
	}
	return decimal.Zero, employee.ErrEmployeeHasNoSalary
}

// ========== RECORDS ==========

func (s *PayrollServiceImpl) GetRecord(ctx context.Context, id string) (payroll.RecordResponse, error) {
	record, err := s.payrollRepo.GetRecordByID(ctx, id)
	if err != nil {
		return payroll.RecordResponse{}, err
	}
	return mapToRecordResponse(record), nil
}

func (s *PayrollServiceImpl) ListRecords(ctx context.Context, filter payroll.RecordFilter) ([]payroll.RecordResponse, int64, error) {
	records, totalCount, err := s.payrollRepo.ListRecords(ctx, filter)
	if err != nil {
		return nil, 0, err
	}

	result := make([]payroll.RecordResponse, 0, len(records))
	for _, r := range records {
		result = append(result, mapToRecordResponse(r))
	}
	return result, totalCount, nil
}

func (s *PayrollServiceImpl) UpdateRecordStatus(ctx context.Context, req payroll.UpdateRecordStatusRequest) (payroll.RecordResponse, error) {
	if err := req.Validate(); err != nil {
		return payroll.RecordResponse{}, err
	}

	record, err := s.payrollRepo.GetRecordByID(ctx, req.ID)
	if err != nil {
		return payroll.RecordResponse{}, err
	}

	next := payroll.RecordStatus(req.Status)
	if !payroll.CanTransition(record.Status, next) {
		return payroll.RecordResponse{}, payroll.ErrInvalidTransition
	}

	if err := s.payrollRepo.UpdateRecordStatus(ctx, req.ID, next); err != nil {
		return payroll.RecordResponse{}, err
	}

	return s.GetRecord(ctx, req.ID)
}

func (s *PayrollServiceImpl) DeleteRecord(ctx context.Context, id string) error {
	record, err := s.payrollRepo.GetRecordByID(ctx, id)
	if err != nil {
		return err
	}
	if record.Status == payroll.RecordStatusPaid {
		return payroll.ErrRecordPaid
	}
	return s.payrollRepo.DeleteRecord(ctx, id)
}

// ========== PERIODS ==========

func (s *PayrollServiceImpl) CreatePeriod(ctx context.Context, req payroll.CreatePeriodRequest) (payroll.PeriodResponse, error) {
	if err := req.Validate(); err != nil {
		return payroll.PeriodResponse{}, err
	}

	startDate, err := time.Parse("2006-01-02", req.StartDate)
	if err != nil {
		return payroll.PeriodResponse{}, fmt.Errorf("invalid start date %q: %w", req.StartDate, err)
	}
	endDate, err := time.Parse("2006-01-02", req.EndDate)
	if err != nil {
		return payroll.PeriodResponse{}, fmt.Errorf("invalid end date %q: %w", req.EndDate, err)
	}

	created, err := s.payrollRepo.CreatePeriod(ctx, payroll.PayrollPeriod{
		Name:      req.Name,
		StartDate: startDate,
		EndDate:   endDate,
		Status:    payroll.PeriodStatusOpen,
	})
	if err != nil {
		return payroll.PeriodResponse{}, err
	}
	return mapToPeriodResponse(created), nil
}

func (s *PayrollServiceImpl) ListPeriods(ctx context.Context, status *string) ([]payroll.PeriodResponse, error) {
	periods, err := s.payrollRepo.ListPeriods(ctx, status)
	if err != nil {
		return nil, err
	}

	result := make([]payroll.PeriodResponse, 0, len(periods))
	for _, p := range periods {
		result = append(result, mapToPeriodResponse(p))
	}
	return result, nil
}

func (s *PayrollServiceImpl) UpdatePeriod(ctx context.Context, req payroll.UpdatePeriodRequest) (payroll.PeriodResponse, error) {
	period, err := s.payrollRepo.GetPeriodByID(ctx, req.ID)
	if err != nil {
		return payroll.PeriodResponse{}, err
	}
	if period.Status == payroll.PeriodStatusLocked {
		return payroll.PeriodResponse{}, payroll.ErrPeriodLocked
	}

	if err := s.payrollRepo.UpdatePeriod(ctx, req); err != nil {
		return payroll.PeriodResponse{}, err
	}

	updated, err := s.payrollRepo.GetPeriodByID(ctx, req.ID)
	if err != nil {
		return payroll.PeriodResponse{}, err
	}
	return mapToPeriodResponse(updated), nil
}

func (s *PayrollServiceImpl) UpdatePeriodStatus(ctx context.Context, req payroll.UpdatePeriodStatusRequest) (payroll.PeriodResponse, error) {
	if err := req.Validate(); err != nil {
		return payroll.PeriodResponse{}, err
	}

	if _, err := s.payrollRepo.GetPeriodByID(ctx, req.ID); err != nil {
		return payroll.PeriodResponse{}, err
	}

	if err := s.payrollRepo.UpdatePeriodStatus(ctx, req.ID, payroll.PeriodStatus(req.Status)); err != nil {
		return payroll.PeriodResponse{}, err
	}

	updated, err := s.payrollRepo.GetPeriodByID(ctx, req.ID)
	if err != nil {
		return payroll.PeriodResponse{}, err
	}
	return mapToPeriodResponse(updated), nil
}

func (s *PayrollServiceImpl) DeletePeriod(ctx context.Context, id string) error {
	if _, err := s.payrollRepo.GetPeriodByID(ctx, id); err != nil {
		return err
	}
	return s.payrollRepo.DeletePeriod(ctx, id)
}

// ========== HELPERS ==========

func mapToRecordResponse(r payroll.PayrollRecord) payroll.RecordResponse {
	employeeName := ""
	employeeNo := ""
	if r.EmployeeName != nil {
		employeeName = *r.EmployeeName
	}
	if r.EmployeeNo != nil {
		employeeNo = *r.EmployeeNo
	}

	return payroll.RecordResponse{
		ID:                  r.ID,
		EmployeeID:          r.EmployeeID,
		EmployeeNo:          employeeNo,
		EmployeeName:        employeeName,
		DepartmentName:      r.DepartmentName,
		PositionName:        r.PositionName,
		PeriodID:            r.PeriodID,
		BasicSalary:         r.BasicSalary,
		AdjustedBasic:       r.AdjustedBasic,
		DaysWorked:          r.DaysWorked,
		DaysAbsent:          r.DaysAbsent,
		LateMinutesTotal:    r.LateMinutesTotal,
		AllowanceRLA:        r.AllowanceRLA,
		Honorarium:          r.Honorarium,
		OvertimePay:         r.OvertimePay,
		GrossPay:            r.GrossPay,
		DeductionGSIS:       r.DeductionGSIS,
		DeductionPhilHealth: r.DeductionPhilHealth,
		DeductionPagIBIG:    r.DeductionPagIBIG,
		DeductionTax:        r.DeductionTax,
		OtherDeductions:     r.OtherDeductions,
		NetSalary:           r.NetSalary,
		Status:              string(r.Status),
	}
}

func mapToPeriodResponse(p payroll.PayrollPeriod) payroll.PeriodResponse {
	return payroll.PeriodResponse{
		ID:        p.ID,
		Name:      p.Name,
		StartDate: p.StartDate.Format("2006-01-02"),
		EndDate:   p.EndDate.Format("2006-01-02"),
		Status:    string(p.Status),
	}
}
