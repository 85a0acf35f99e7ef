package payroll

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/campus-hr/payroll-backend-go/internal/domain/attendance"
	"github.com/campus-hr/payroll-backend-go/internal/domain/deduction"
	"github.com/campus-hr/payroll-backend-go/internal/domain/employee"
	"github.com/campus-hr/payroll-backend-go/internal/domain/payroll"
	"github.com/campus-hr/payroll-backend-go/internal/domain/salarygrade"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ========== FIXTURE REPOSITORIES ==========

type fakePayrollRepo struct {
	periods map[string]payroll.PayrollPeriod
	records map[string]payroll.PayrollRecord
	seq     int
}

func newFakePayrollRepo() *fakePayrollRepo {
	return &fakePayrollRepo{
		periods: make(map[string]payroll.PayrollPeriod),
		records: make(map[string]payroll.PayrollRecord),
	}
}

func (f *fakePayrollRepo) CreatePeriod(_ context.Context, p payroll.PayrollPeriod) (payroll.PayrollPeriod, error) {
	f.seq++
	p.ID = fmt.Sprintf("period-%d", f.seq)
	f.periods[p.ID] = p
	return p, nil
}

func (f *fakePayrollRepo) GetPeriodByID(_ context.Context, id string) (payroll.PayrollPeriod, error) {
	p, ok := f.periods[id]
	if !ok {
		return payroll.PayrollPeriod{}, payroll.ErrPeriodNotFound
	}
	return p, nil
}

func (f *fakePayrollRepo) ListPeriods(_ context.Context, status *string) ([]payroll.PayrollPeriod, error) {
	var result []payroll.PayrollPeriod
	for _, p := range f.periods {
		if status == nil || string(p.Status) == *status {
			result = append(result, p)
		}
	}
	return result, nil
}

func (f *fakePayrollRepo) UpdatePeriod(_ context.Context, req payroll.UpdatePeriodRequest) error {
	p, ok := f.periods[req.ID]
	if !ok {
		return payroll.ErrPeriodNotFound
	}
	if req.Name != nil {
		p.Name = *req.Name
	}
	f.periods[req.ID] = p
	return nil
}

func (f *fakePayrollRepo) UpdatePeriodStatus(_ context.Context, id string, status payroll.PeriodStatus) error {
	p, ok := f.periods[id]
	if !ok {
		return payroll.ErrPeriodNotFound
	}
	p.Status = status
	f.periods[id] = p
	return nil
}

func (f *fakePayrollRepo) DeletePeriod(_ context.Context, id string) error {
	for _, r := range f.records {
		if r.PeriodID == id {
			return payroll.ErrPeriodHasRecords
		}
	}
	delete(f.periods, id)
	return nil
}

func (f *fakePayrollRepo) CreateRecord(_ context.Context, r payroll.PayrollRecord) (payroll.PayrollRecord, error) {
	for _, existing := range f.records {
		if existing.EmployeeID == r.EmployeeID && existing.PeriodID == r.PeriodID {
			return payroll.PayrollRecord{}, payroll.ErrDuplicateRecord
		}
	}
	f.seq++
	r.ID = fmt.Sprintf("record-%d", f.seq)
	f.records[r.ID] = r
	return r, nil
}

func (f *fakePayrollRepo) GetRecordByID(_ context.Context, id string) (payroll.PayrollRecord, error) {
	r, ok := f.records[id]
	if !ok {
		return payroll.PayrollRecord{}, payroll.ErrRecordNotFound
	}
	return r, nil
}

func (f *fakePayrollRepo) ExistsForPeriod(_ context.Context, employeeID, periodID string) (bool, error) {
	for _, r := range f.records {
		if r.EmployeeID == employeeID && r.PeriodID == periodID {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakePayrollRepo) ListRecords(_ context.Context, filter payroll.RecordFilter) ([]payroll.PayrollRecord, int64, error) {
	var result []payroll.PayrollRecord
	for _, r := range f.records {
		if filter.PeriodID != nil && r.PeriodID != *filter.PeriodID {
			continue
		}
		if filter.EmployeeID != nil && r.EmployeeID != *filter.EmployeeID {
			continue
		}
		result = append(result, r)
	}
	return result, int64(len(result)), nil
}

func (f *fakePayrollRepo) UpdateRecordStatus(_ context.Context, id string, status payroll.RecordStatus) error {
	r, ok := f.records[id]
	if !ok {
		return payroll.ErrRecordNotFound
	}
	r.Status = status
	f.records[id] = r
	return nil
}

func (f *fakePayrollRepo) DeleteRecord(_ context.Context, id string) error {
	if _, ok := f.records[id]; !ok {
		return payroll.ErrRecordNotFound
	}
	delete(f.records, id)
	return nil
}

type fakeEmployeeRepo struct {
	employees []employee.Employee
}

func (f *fakeEmployeeRepo) Create(_ context.Context, e employee.Employee) (employee.Employee, error) {
	f.employees = append(f.employees, e)
	return e, nil
}

func (f *fakeEmployeeRepo) GetByID(_ context.Context, id string) (employee.Employee, error) {
	for _, e := range f.employees {
		if e.ID == id {
			return e, nil
		}
	}
	return employee.Employee{}, employee.ErrEmployeeNotFound
}

func (f *fakeEmployeeRepo) GetByIDs(_ context.Context, ids []string) ([]employee.Employee, error) {
	want := make(map[string]bool, len(ids))
	for _, id := range ids {
		want[id] = true
	}
	var result []employee.Employee
	for _, e := range f.employees {
		if want[e.ID] {
			result = append(result, e)
		}
	}
	return result, nil
}

func (f *fakeEmployeeRepo) GetActive(_ context.Context) ([]employee.Employee, error) {
	var result []employee.Employee
	for _, e := range f.employees {
		if e.IsActive {
			result = append(result, e)
		}
	}
	return result, nil
}

func (f *fakeEmployeeRepo) List(_ context.Context, _ employee.EmployeeFilter) ([]employee.Employee, int64, error) {
	return f.employees, int64(len(f.employees)), nil
}

func (f *fakeEmployeeRepo) Update(_ context.Context, _ employee.UpdateEmployeeRequest) error {
	return nil
}

func (f *fakeEmployeeRepo) Delete(_ context.Context, _ string) error {
	return nil
}

type fakeGradeRepo struct {
	steps map[[2]int]salarygrade.SalaryGradeStep
}

func (f *fakeGradeRepo) Create(_ context.Context, s salarygrade.SalaryGradeStep) (salarygrade.SalaryGradeStep, error) {
	f.steps[[2]int{s.Grade, s.Step}] = s
	return s, nil
}

func (f *fakeGradeRepo) Lookup(_ context.Context, grade, step int) (salarygrade.SalaryGradeStep, error) {
	s, ok := f.steps[[2]int{grade, step}]
	if !ok {
		return salarygrade.SalaryGradeStep{}, salarygrade.ErrGradeStepNotFound
	}
	return s, nil
}

func (f *fakeGradeRepo) GetByID(_ context.Context, id string) (salarygrade.SalaryGradeStep, error) {
	for _, s := range f.steps {
		if s.ID == id {
			return s, nil
		}
	}
	return salarygrade.SalaryGradeStep{}, salarygrade.ErrGradeStepNotFound
}

func (f *fakeGradeRepo) GetAll(_ context.Context) ([]salarygrade.SalaryGradeStep, error) {
	var result []salarygrade.SalaryGradeStep
	for _, s := range f.steps {
		result = append(result, s)
	}
	return result, nil
}

func (f *fakeGradeRepo) Update(_ context.Context, _ salarygrade.UpdateGradeStepRequest) error {
	return nil
}

func (f *fakeGradeRepo) Delete(_ context.Context, _ string) error {
	return nil
}

type fakeDeductionRepo struct {
	rates    []deduction.DeductionRate
	brackets []deduction.TaxBracket
}

func (f *fakeDeductionRepo) CreateRate(_ context.Context, r deduction.DeductionRate) (deduction.DeductionRate, error) {
	f.rates = append(f.rates, r)
	return r, nil
}

func (f *fakeDeductionRepo) GetRateByID(_ context.Context, id string) (deduction.DeductionRate, error) {
	for _, r := range f.rates {
		if r.ID == id {
			return r, nil
		}
	}
	return deduction.DeductionRate{}, deduction.ErrRateNotFound
}

func (f *fakeDeductionRepo) GetRates(_ context.Context, activeOnly bool) ([]deduction.DeductionRate, error) {
	if !activeOnly {
		return f.rates, nil
	}
	var result []deduction.DeductionRate
	for _, r := range f.rates {
		if r.IsActive {
			result = append(result, r)
		}
	}
	return result, nil
}

func (f *fakeDeductionRepo) UpdateRate(_ context.Context, _ deduction.UpdateRateRequest) error {
	return nil
}

func (f *fakeDeductionRepo) DeleteRate(_ context.Context, _ string) error {
	return nil
}

func (f *fakeDeductionRepo) CreateBracket(_ context.Context, b deduction.TaxBracket) (deduction.TaxBracket, error) {
	f.brackets = append(f.brackets, b)
	return b, nil
}

func (f *fakeDeductionRepo) GetBracketByID(_ context.Context, id string) (deduction.TaxBracket, error) {
	for _, b := range f.brackets {
		if b.ID == id {
			return b, nil
		}
	}
	return deduction.TaxBracket{}, deduction.ErrBracketNotFound
}

func (f *fakeDeductionRepo) GetBrackets(_ context.Context, activeOnly bool) ([]deduction.TaxBracket, error) {
	if !activeOnly {
		return f.brackets, nil
	}
	var result []deduction.TaxBracket
	for _, b := range f.brackets {
		if b.IsActive {
			result = append(result, b)
		}
	}
	return result, nil
}

func (f *fakeDeductionRepo) UpdateBracket(_ context.Context, _ deduction.UpdateBracketRequest) error {
	return nil
}

func (f *fakeDeductionRepo) DeleteBracket(_ context.Context, _ string) error {
	return nil
}

type fakeAttendanceRepo struct {
	summaries map[string]attendance.PeriodSummary
}

func (f *fakeAttendanceRepo) Create(_ context.Context, a attendance.Attendance) (attendance.Attendance, error) {
	return a, nil
}

func (f *fakeAttendanceRepo) Update(_ context.Context, _ attendance.Attendance) error {
	return nil
}

func (f *fakeAttendanceRepo) GetByEmployeeAndDate(_ context.Context, _ string, _ time.Time) (attendance.Attendance, error) {
	return attendance.Attendance{}, attendance.ErrAttendanceNotFound
}

func (f *fakeAttendanceRepo) List(_ context.Context, _ attendance.AttendanceFilter) ([]attendance.Attendance, int64, error) {
	return nil, 0, nil
}

func (f *fakeAttendanceRepo) Summarize(_ context.Context, _, _ time.Time, employeeIDs []string) (map[string]attendance.PeriodSummary, error) {
	result := make(map[string]attendance.PeriodSummary)
	for _, id := range employeeIDs {
		if s, ok := f.summaries[id]; ok {
			result[id] = s
		}
	}
	return result, nil
}

// ========== TEST SETUP ==========

type testEnv struct {
	service     payroll.PayrollService
	payrollRepo *fakePayrollRepo
}

func intPtr(i int) *int { return &i }

// newTestEnv wires the generator against fixture tables: a June 2025 open
// period (21 working days), a graded faculty employee at 22000, a flat-rate
// admin at 18000 and the reference deduction schedules.
func newTestEnv(t *testing.T) testEnv {
	t.Helper()

	payrollRepo := newFakePayrollRepo()
	payrollRepo.periods["p1"] = payroll.PayrollPeriod{
		ID:        "p1",
		Name:      "June 2025",
		StartDate: date(2025, time.June, 1),
		EndDate:   date(2025, time.June, 30),
		Status:    payroll.PeriodStatusOpen,
	}

	flatSalary := dec("18000")
	employeeRepo := &fakeEmployeeRepo{employees: []employee.Employee{
		{ID: "e1", EmployeeNo: "2021-0001", FirstName: "Maria", LastName: "Santos", SalaryGrade: intPtr(12), SalaryStep: intPtr(3), IsActive: true},
		{ID: "e2", EmployeeNo: "2022-0002", FirstName: "Jose", LastName: "Reyes", BaseSalary: &flatSalary, IsActive: true},
	}}

	gradeRepo := &fakeGradeRepo{steps: map[[2]int]salarygrade.SalaryGradeStep{
		{12, 3}: {ID: "sg-12-3", Grade: 12, Step: 3, MonthlySalary: dec("22000")},
	}}

	deductionRepo := &fakeDeductionRepo{
		rates: fixtureRates(),
		brackets: []deduction.TaxBracket{
			{IncomeFrom: dec("0"), IncomeTo: dec("20833"), BaseTax: dec("0"), RatePercentage: dec("0"), ExcessOver: dec("0"), IsActive: true},
			{IncomeFrom: dec("20833"), IncomeTo: dec("33332"), BaseTax: dec("0"), RatePercentage: dec("15"), ExcessOver: dec("20833"), IsActive: true},
		},
	}

	attendanceRepo := &fakeAttendanceRepo{summaries: map[string]attendance.PeriodSummary{
		"e1": {EmployeeID: "e1", DaysWorked: 19, LateMinutesTotal: 35},
		"e2": {EmployeeID: "e2", DaysWorked: 21},
	}}

	service := NewPayrollService(payrollRepo, employeeRepo, gradeRepo, deductionRepo, attendanceRepo, DefaultWorkdayPolicy)
	return testEnv{service: service, payrollRepo: payrollRepo}
}

func generateRequest() payroll.GenerateRequest {
	return payroll.GenerateRequest{
		PeriodID:     "p1",
		AllowanceRLA: dec("1500"),
	}
}

// ========== GENERATION TESTS ==========

func TestGenerateForAllActiveEmployees(t *testing.T) {
	env := newTestEnv(t)

	resp, err := env.service.Generate(context.Background(), generateRequest())
	require.NoError(t, err)
	require.Len(t, resp.Records, 2)
	assert.Empty(t, resp.Failures)

	byEmployee := make(map[string]payroll.RecordResponse)
	for _, r := range resp.Records {
		byEmployee[r.EmployeeID] = r
	}

	// Graded employee: 22000 basic, 2 absences out of 21 working days.
	r1 := byEmployee["e1"]
	assert.True(t, r1.BasicSalary.Equal(dec("22000")))
	assert.Equal(t, 19, r1.DaysWorked)
	assert.Equal(t, 2, r1.DaysAbsent)
	assert.Equal(t, 35, r1.LateMinutesTotal)
	assert.True(t, r1.AdjustedBasic.Equal(dec("20000")), "adjusted %s", r1.AdjustedBasic)
	assert.True(t, r1.DeductionGSIS.Equal(dec("1980")))
	assert.True(t, r1.NetSalary.Equal(dec("18820.00")), "net %s", r1.NetSalary)
	assert.Equal(t, "pending", r1.Status)

	// Flat-salary employee: no absences, contributions on 18000.
	r2 := byEmployee["e2"]
	assert.True(t, r2.BasicSalary.Equal(dec("18000")))
	assert.Equal(t, 0, r2.DaysAbsent)
	assert.True(t, r2.DeductionGSIS.Equal(dec("1620")))
	assert.True(t, r2.NetSalary.Equal(dec("17180")), "net %s", r2.NetSalary)
}

func TestGenerateLockedPeriodFails(t *testing.T) {
	env := newTestEnv(t)
	p := env.payrollRepo.periods["p1"]
	p.Status = payroll.PeriodStatusLocked
	env.payrollRepo.periods["p1"] = p

	_, err := env.service.Generate(context.Background(), generateRequest())
	assert.ErrorIs(t, err, payroll.ErrPeriodLocked)
	assert.Empty(t, env.payrollRepo.records, "no records may be created against a locked period")
}

func TestGenerateTwiceReportsDuplicate(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.service.Generate(context.Background(), payroll.GenerateRequest{PeriodID: "p1", EmployeeIDs: []string{"e1"}})
	require.NoError(t, err)

	_, err = env.service.Generate(context.Background(), payroll.GenerateRequest{PeriodID: "p1", EmployeeIDs: []string{"e1"}})
	assert.ErrorIs(t, err, payroll.ErrDuplicateRecord)

	// Exactly one record exists afterwards.
	assert.Len(t, env.payrollRepo.records, 1)
}

func TestGeneratePartialFailureForMissingGrade(t *testing.T) {
	env := newTestEnv(t)

	// e3 references a grade row that does not exist in the table.
	svc := env.service.(*PayrollServiceImpl)
	svc.employeeRepo = &fakeEmployeeRepo{employees: []employee.Employee{
		{ID: "e1", EmployeeNo: "2021-0001", FirstName: "Maria", LastName: "Santos", SalaryGrade: intPtr(12), SalaryStep: intPtr(3), IsActive: true},
		{ID: "e3", EmployeeNo: "2023-0003", FirstName: "Ana", LastName: "Cruz", SalaryGrade: intPtr(15), SalaryStep: intPtr(1), IsActive: true},
	}}

	resp, err := env.service.Generate(context.Background(), payroll.GenerateRequest{PeriodID: "p1", EmployeeIDs: []string{"e1", "e3"}})
	require.NoError(t, err, "a missing grade row must not fail the batch")
	require.Len(t, resp.Records, 1)
	assert.Equal(t, "e1", resp.Records[0].EmployeeID)
	require.Len(t, resp.Failures, 1)
	assert.Equal(t, "e3", resp.Failures[0].EmployeeID)
	assert.Equal(t, salarygrade.ErrGradeStepNotFound.Error(), resp.Failures[0].Reason)
}

func TestGenerateUnknownEmployeeReported(t *testing.T) {
	env := newTestEnv(t)

	resp, err := env.service.Generate(context.Background(), payroll.GenerateRequest{PeriodID: "p1", EmployeeIDs: []string{"e1", "ghost"}})
	require.NoError(t, err)
	require.Len(t, resp.Records, 1)
	require.Len(t, resp.Failures, 1)
	assert.Equal(t, "ghost", resp.Failures[0].EmployeeID)
}

func TestGenerateRejectsBrokenBracketTable(t *testing.T) {
	env := newTestEnv(t)
	svc := env.service.(*PayrollServiceImpl)
	svc.deductionRepo = &fakeDeductionRepo{
		rates: fixtureRates(),
		brackets: []deduction.TaxBracket{
			{IncomeFrom: dec("0"), IncomeTo: dec("20833"), IsActive: true},
			{IncomeFrom: dec("25000"), IncomeTo: dec("33332"), IsActive: true}, // gap
		},
	}

	_, err := env.service.Generate(context.Background(), generateRequest())
	assert.ErrorIs(t, err, deduction.ErrBracketTableInvalid)
	assert.Empty(t, env.payrollRepo.records)
}

// ========== STATUS AND LIFECYCLE TESTS ==========

func TestRecordStatusTransitions(t *testing.T) {
	env := newTestEnv(t)

	resp, err := env.service.Generate(context.Background(), payroll.GenerateRequest{PeriodID: "p1", EmployeeIDs: []string{"e1"}})
	require.NoError(t, err)
	id := resp.Records[0].ID

	updated, err := env.service.UpdateRecordStatus(context.Background(), payroll.UpdateRecordStatusRequest{ID: id, Status: "processed"})
	require.NoError(t, err)
	assert.Equal(t, "processed", updated.Status)

	updated, err = env.service.UpdateRecordStatus(context.Background(), payroll.UpdateRecordStatusRequest{ID: id, Status: "paid"})
	require.NoError(t, err)
	assert.Equal(t, "paid", updated.Status)

	// Paid is terminal.
	_, err = env.service.UpdateRecordStatus(context.Background(), payroll.UpdateRecordStatusRequest{ID: id, Status: "processed"})
	assert.ErrorIs(t, err, payroll.ErrInvalidTransition)
}

func TestDeletePaidRecordForbidden(t *testing.T) {
	env := newTestEnv(t)

	resp, err := env.service.Generate(context.Background(), payroll.GenerateRequest{PeriodID: "p1", EmployeeIDs: []string{"e1"}})
	require.NoError(t, err)
	id := resp.Records[0].ID

	_, err = env.service.UpdateRecordStatus(context.Background(), payroll.UpdateRecordStatusRequest{ID: id, Status: "paid"})
	require.NoError(t, err)

	err = env.service.DeleteRecord(context.Background(), id)
	assert.ErrorIs(t, err, payroll.ErrRecordPaid)

	// Pending records may be deleted.
	resp, err = env.service.Generate(context.Background(), payroll.GenerateRequest{PeriodID: "p1", EmployeeIDs: []string{"e2"}})
	require.NoError(t, err)
	assert.NoError(t, env.service.DeleteRecord(context.Background(), resp.Records[0].ID))
}

func TestDeletePeriodWithRecordsForbidden(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.service.Generate(context.Background(), payroll.GenerateRequest{PeriodID: "p1", EmployeeIDs: []string{"e1"}})
	require.NoError(t, err)

	err = env.service.DeletePeriod(context.Background(), "p1")
	assert.ErrorIs(t, err, payroll.ErrPeriodHasRecords)
}

func TestLockedPeriodCanBeReopened(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.service.UpdatePeriodStatus(context.Background(), payroll.UpdatePeriodStatusRequest{ID: "p1", Status: "locked"})
	require.NoError(t, err)

	_, err = env.service.Generate(context.Background(), generateRequest())
	assert.ErrorIs(t, err, payroll.ErrPeriodLocked)

	_, err = env.service.UpdatePeriodStatus(context.Background(), payroll.UpdatePeriodStatusRequest{ID: "p1", Status: "open"})
	require.NoError(t, err)

	_, err = env.service.Generate(context.Background(), generateRequest())
	assert.NoError(t, err)
}

// ========== PERIOD TESTS ==========

func TestCreatePeriodParsesDates(t *testing.T) {
	env := newTestEnv(t)

	created, err := env.service.CreatePeriod(context.Background(), payroll.CreatePeriodRequest{
		Name:      "July 2025",
		StartDate: "2025-07-01",
		EndDate:   "2025-07-31",
	})
	require.NoError(t, err)
	assert.Equal(t, "open", created.Status)
	assert.Equal(t, "2025-07-01", created.StartDate)
	assert.Equal(t, "2025-07-31", created.EndDate)
}

func TestCreatePeriodRejectsMalformedDates(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.service.CreatePeriod(context.Background(), payroll.CreatePeriodRequest{
		Name:      "Broken",
		StartDate: "07/01/2025",
		EndDate:   "2025-07-31",
	})
	assert.Error(t, err)
	assert.Len(t, env.payrollRepo.periods, 1, "malformed period must not be stored")
}
