package postgresql

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/campus-hr/payroll-backend-go/internal/domain/payroll"
	"github.com/campus-hr/payroll-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type payrollRepositoryImpl struct {
	db *database.DB
}

func NewPayrollRepository(db *database.DB) payroll.PayrollRepository {
	return &payrollRepositoryImpl{db: db}
}

// ========== PERIODS ==========

const periodColumns = `id, name, start_date, end_date, status, created_at, updated_at`

func scanPeriod(row pgx.Row) (payroll.PayrollPeriod, error) {
	var p payroll.PayrollPeriod
	err := row.Scan(
		&p.ID,
		&p.Name,
		&p.StartDate,
		&p.EndDate,
		&p.Status,
		&p.CreatedAt,
		&p.UpdatedAt,
	)
	return p, err
}

// CreatePeriod implements payroll.PayrollRepository.
func (r *payrollRepositoryImpl) CreatePeriod(ctx context.Context, period payroll.PayrollPeriod) (payroll.PayrollPeriod, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO payroll_periods (id, name, start_date, end_date, status)
		VALUES (uuidv7(), $1, $2, $3, $4)
		RETURNING ` + periodColumns

	result, err := scanPeriod(q.QueryRow(ctx, query, period.Name, period.StartDate, period.EndDate, period.Status))
	if err != nil {
		return payroll.PayrollPeriod{}, fmt.Errorf("failed to create payroll period: %w", err)
	}
	return result, nil
}

// GetPeriodByID implements payroll.PayrollRepository.
func (r *payrollRepositoryImpl) GetPeriodByID(ctx context.Context, id string) (payroll.PayrollPeriod, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + periodColumns + ` FROM payroll_periods WHERE id = $1`

	result, err := scanPeriod(q.QueryRow(ctx, query, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return payroll.PayrollPeriod{}, payroll.ErrPeriodNotFound
	}
	if err != nil {
		return payroll.PayrollPeriod{}, fmt.Errorf("failed to get payroll period: %w", err)
	}
	return result, nil
}

// ListPeriods implements payroll.PayrollRepository.
func (r *payrollRepositoryImpl) ListPeriods(ctx context.Context, status *string) ([]payroll.PayrollPeriod, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + periodColumns + ` FROM payroll_periods`
	args := []interface{}{}
	if status != nil {
		query += ` WHERE status = $1`
		args = append(args, *status)
	}
	query += ` ORDER BY start_date DESC`

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list payroll periods: %w", err)
	}
	defer rows.Close()

	var periods []payroll.PayrollPeriod
	for rows.Next() {
		p, err := scanPeriod(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan payroll period: %w", err)
		}
		periods = append(periods, p)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}
	return periods, nil
}

// UpdatePeriod implements payroll.PayrollRepository.
func (r *payrollRepositoryImpl) UpdatePeriod(ctx context.Context, req payroll.UpdatePeriodRequest) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE payroll_periods
		SET name = COALESCE($1, name),
		    start_date = COALESCE($2::date, start_date),
		    end_date = COALESCE($3::date, end_date),
		    updated_at = NOW()
		WHERE id = $4
	`

	commandTag, err := q.Exec(ctx, query, req.Name, req.StartDate, req.EndDate, req.ID)
	if err != nil {
		return fmt.Errorf("failed to update payroll period: %w", err)
	}
	if commandTag.RowsAffected() == 0 {
		return payroll.ErrPeriodNotFound
	}
	return nil
}

// UpdatePeriodStatus implements payroll.PayrollRepository.
func (r *payrollRepositoryImpl) UpdatePeriodStatus(ctx context.Context, id string, status payroll.PeriodStatus) error {
	q := GetQuerier(ctx, r.db)

	query := `UPDATE payroll_periods SET status = $1, updated_at = NOW() WHERE id = $2`

	commandTag, err := q.Exec(ctx, query, status, id)
	if err != nil {
		return fmt.Errorf("failed to update payroll period status: %w", err)
	}
	if commandTag.RowsAffected() == 0 {
		return payroll.ErrPeriodNotFound
	}
	return nil
}

// DeletePeriod implements payroll.PayrollRepository.
func (r *payrollRepositoryImpl) DeletePeriod(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	query := `DELETE FROM payroll_periods WHERE id = $1`

	commandTag, err := q.Exec(ctx, query, id)
	if err != nil {
		if strings.Contains(err.Error(), "fk_payroll_records_period") {
			return payroll.ErrPeriodHasRecords
		}
		return fmt.Errorf("failed to delete payroll period: %w", err)
	}
	if commandTag.RowsAffected() == 0 {
		return payroll.ErrPeriodNotFound
	}
	return nil
}

// ========== RECORDS ==========

const recordSelect = `
	SELECT pr.id, pr.employee_id, pr.period_id, pr.basic_salary, pr.adjusted_basic,
	       pr.days_worked, pr.days_absent, pr.late_minutes_total,
	       pr.allowance_rla, pr.honorarium, pr.overtime_pay, pr.gross_pay,
	       pr.deduction_gsis, pr.deduction_philhealth, pr.deduction_pagibig,
	       pr.deduction_tax, pr.other_deductions, pr.net_salary, pr.status,
	       pr.created_at, pr.updated_at,
	       e.last_name || ', ' || e.first_name AS employee_name,
	       e.employee_no, d.name AS department_name, p.name AS position_name
	FROM payroll_records pr
	JOIN employees e ON e.id = pr.employee_id
	LEFT JOIN departments d ON d.id = e.department_id
	LEFT JOIN positions p ON p.id = e.position_id
`

func scanRecord(row pgx.Row) (payroll.PayrollRecord, error) {
	var rec payroll.PayrollRecord
	err := row.Scan(
		&rec.ID,
		&rec.EmployeeID,
		&rec.PeriodID,
		&rec.BasicSalary,
		&rec.AdjustedBasic,
		&rec.DaysWorked,
		&rec.DaysAbsent,
		&rec.LateMinutesTotal,
		&rec.AllowanceRLA,
		&rec.Honorarium,
		&rec.OvertimePay,
		&rec.GrossPay,
		&rec.DeductionGSIS,
		&rec.DeductionPhilHealth,
		&rec.DeductionPagIBIG,
		&rec.DeductionTax,
		&rec.OtherDeductions,
		&rec.NetSalary,
		&rec.Status,
		&rec.CreatedAt,
		&rec.UpdatedAt,
		&rec.EmployeeName,
		&rec.EmployeeNo,
		&rec.DepartmentName,
		&rec.PositionName,
	)
	return rec, err
}

// CreateRecord implements payroll.PayrollRepository. The insert and the
// joined re-read run in one transaction so the returned row reflects the
// employee data at insert time.
func (r *payrollRepositoryImpl) CreateRecord(ctx context.Context, record payroll.PayrollRecord) (payroll.PayrollRecord, error) {
	var created payroll.PayrollRecord
	err := WithTransaction(ctx, r.db, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, txContextKey, tx)
		var txErr error
		created, txErr = r.createRecord(txCtx, record)
		return txErr
	})
	if err != nil {
		return payroll.PayrollRecord{}, err
	}
	return created, nil
}

func (r *payrollRepositoryImpl) createRecord(ctx context.Context, record payroll.PayrollRecord) (payroll.PayrollRecord, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO payroll_records (id, employee_id, period_id, basic_salary, adjusted_basic,
			days_worked, days_absent, late_minutes_total,
			allowance_rla, honorarium, overtime_pay, gross_pay,
			deduction_gsis, deduction_philhealth, deduction_pagibig,
			deduction_tax, other_deductions, net_salary, status)
		VALUES (uuidv7(), $1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18)
		RETURNING id
	`

	err := q.QueryRow(ctx, query,
		record.EmployeeID,
		record.PeriodID,
		record.BasicSalary,
		record.AdjustedBasic,
		record.DaysWorked,
		record.DaysAbsent,
		record.LateMinutesTotal,
		record.AllowanceRLA,
		record.Honorarium,
		record.OvertimePay,
		record.GrossPay,
		record.DeductionGSIS,
		record.DeductionPhilHealth,
		record.DeductionPagIBIG,
		record.DeductionTax,
		record.OtherDeductions,
		record.NetSalary,
		record.Status,
	).Scan(&record.ID)

	if err != nil {
		if strings.Contains(err.Error(), "uk_payroll_records_employee_period") {
			return payroll.PayrollRecord{}, payroll.ErrDuplicateRecord
		}
		return payroll.PayrollRecord{}, fmt.Errorf("failed to create payroll record: %w", err)
	}

	return r.GetRecordByID(ctx, record.ID)
}

// GetRecordByID implements payroll.PayrollRepository.
func (r *payrollRepositoryImpl) GetRecordByID(ctx context.Context, id string) (payroll.PayrollRecord, error) {
	q := GetQuerier(ctx, r.db)

	query := recordSelect + ` WHERE pr.id = $1`

	rec, err := scanRecord(q.QueryRow(ctx, query, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return payroll.PayrollRecord{}, payroll.ErrRecordNotFound
	}
	if err != nil {
		return payroll.PayrollRecord{}, fmt.Errorf("failed to get payroll record: %w", err)
	}
	return rec, nil
}

// ExistsForPeriod implements payroll.PayrollRepository.
func (r *payrollRepositoryImpl) ExistsForPeriod(ctx context.Context, employeeID, periodID string) (bool, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT EXISTS (SELECT 1 FROM payroll_records WHERE employee_id = $1 AND period_id = $2)`

	var exists bool
	if err := q.QueryRow(ctx, query, employeeID, periodID).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check payroll record existence: %w", err)
	}
	return exists, nil
}

// ListRecords implements payroll.PayrollRepository.
func (r *payrollRepositoryImpl) ListRecords(ctx context.Context, filter payroll.RecordFilter) ([]payroll.PayrollRecord, int64, error) {
	q := GetQuerier(ctx, r.db)

	where := []string{"TRUE"}
	args := []interface{}{}

	if filter.PeriodID != nil {
		args = append(args, *filter.PeriodID)
		where = append(where, fmt.Sprintf("pr.period_id = $%d", len(args)))
	}
	if filter.EmployeeID != nil {
		args = append(args, *filter.EmployeeID)
		where = append(where, fmt.Sprintf("pr.employee_id = $%d", len(args)))
	}
	if filter.Status != nil {
		args = append(args, *filter.Status)
		where = append(where, fmt.Sprintf("pr.status = $%d", len(args)))
	}

	whereClause := strings.Join(where, " AND ")

	var totalCount int64
	countQuery := `SELECT COUNT(*) FROM payroll_records pr WHERE ` + whereClause
	if err := q.QueryRow(ctx, countQuery, args...).Scan(&totalCount); err != nil {
		return nil, 0, fmt.Errorf("failed to count payroll records: %w", err)
	}

	page := filter.Page
	if page < 1 {
		page = 1
	}
	limit := filter.Limit
	if limit < 1 {
		limit = 20
	}
	args = append(args, limit, (page-1)*limit)
	query := recordSelect + ` WHERE ` + whereClause +
		fmt.Sprintf(" ORDER BY employee_name ASC LIMIT $%d OFFSET $%d", len(args)-1, len(args))

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list payroll records: %w", err)
	}
	defer rows.Close()

	var records []payroll.PayrollRecord
	for rows.Next() {
		rec, err := scanRecord(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan payroll record: %w", err)
		}
		records = append(records, rec)
	}

	if err = rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("rows iteration error: %w", err)
	}
	return records, totalCount, nil
}

// UpdateRecordStatus implements payroll.PayrollRepository.
func (r *payrollRepositoryImpl) UpdateRecordStatus(ctx context.Context, id string, status payroll.RecordStatus) error {
	q := GetQuerier(ctx, r.db)

	query := `UPDATE payroll_records SET status = $1, updated_at = NOW() WHERE id = $2`

	commandTag, err := q.Exec(ctx, query, status, id)
	if err != nil {
		return fmt.Errorf("failed to update payroll record status: %w", err)
	}
	if commandTag.RowsAffected() == 0 {
		return payroll.ErrRecordNotFound
	}
	return nil
}

// DeleteRecord implements payroll.PayrollRepository.
func (r *payrollRepositoryImpl) DeleteRecord(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	query := `DELETE FROM payroll_records WHERE id = $1`

	commandTag, err := q.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to delete payroll record: %w", err)
	}
	if commandTag.RowsAffected() == 0 {
		return payroll.ErrRecordNotFound
	}
	return nil
}
