package postgresql

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/campus-hr/payroll-backend-go/internal/domain/attendance"
	"github.com/campus-hr/payroll-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type attendanceRepositoryImpl struct {
	db *database.DB
}

func NewAttendanceRepository(db *database.DB) attendance.AttendanceRepository {
	return &attendanceRepositoryImpl{db: db}
}

// Create implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) Create(ctx context.Context, att attendance.Attendance) (attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO attendances (id, employee_id, date, time_in, time_out, late_minutes, status)
		VALUES (uuidv7(), $1, $2, $3, $4, $5, $6)
		RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		att.EmployeeID,
		att.Date,
		att.TimeIn,
		att.TimeOut,
		att.LateMinutes,
		att.Status,
	).Scan(&att.ID, &att.CreatedAt, &att.UpdatedAt)

	if err != nil {
		if strings.Contains(err.Error(), "uk_attendances_employee_date") {
			return attendance.Attendance{}, attendance.ErrAlreadyClockedIn
		}
		return attendance.Attendance{}, fmt.Errorf("failed to create attendance: %w", err)
	}
	return att, nil
}

// Update implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) Update(ctx context.Context, att attendance.Attendance) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE attendances
		SET time_in = $1, time_out = $2, late_minutes = $3, status = $4, updated_at = NOW()
		WHERE id = $5
	`

	commandTag, err := q.Exec(ctx, query, att.TimeIn, att.TimeOut, att.LateMinutes, att.Status, att.ID)
	if err != nil {
		return fmt.Errorf("failed to update attendance: %w", err)
	}
	if commandTag.RowsAffected() == 0 {
		return attendance.ErrAttendanceNotFound
	}
	return nil
}

// GetByEmployeeAndDate implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) GetByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time) (attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, employee_id, date, time_in, time_out, late_minutes, status, created_at, updated_at
		FROM attendances
		WHERE employee_id = $1 AND date = $2
	`

	var att attendance.Attendance
	err := q.QueryRow(ctx, query, employeeID, date).Scan(
		&att.ID,
		&att.EmployeeID,
		&att.Date,
		&att.TimeIn,
		&att.TimeOut,
		&att.LateMinutes,
		&att.Status,
		&att.CreatedAt,
		&att.UpdatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return attendance.Attendance{}, attendance.ErrAttendanceNotFound
	}
	if err != nil {
		return attendance.Attendance{}, fmt.Errorf("failed to get attendance: %w", err)
	}
	return att, nil
}

// List implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) List(ctx context.Context, filter attendance.AttendanceFilter) ([]attendance.Attendance, int64, error) {
	q := GetQuerier(ctx, r.db)

	where := []string{"TRUE"}
	args := []interface{}{}

	if filter.EmployeeID != nil {
		args = append(args, *filter.EmployeeID)
		where = append(where, fmt.Sprintf("a.employee_id = $%d", len(args)))
	}
	if filter.DateFrom != nil {
		args = append(args, *filter.DateFrom)
		where = append(where, fmt.Sprintf("a.date >= $%d::date", len(args)))
	}
	if filter.DateTo != nil {
		args = append(args, *filter.DateTo)
		where = append(where, fmt.Sprintf("a.date <= $%d::date", len(args)))
	}

	whereClause := strings.Join(where, " AND ")

	var totalCount int64
	countQuery := `SELECT COUNT(*) FROM attendances a WHERE ` + whereClause
	if err := q.QueryRow(ctx, countQuery, args...).Scan(&totalCount); err != nil {
		return nil, 0, fmt.Errorf("failed to count attendance: %w", err)
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

	query := `
		SELECT a.id, a.employee_id, a.date, a.time_in, a.time_out, a.late_minutes, a.status,
		       a.created_at, a.updated_at,
		       e.last_name || ', ' || e.first_name AS employee_name
		FROM attendances a
		JOIN employees e ON e.id = a.employee_id
		WHERE ` + whereClause +
		fmt.Sprintf(" ORDER BY a.date DESC, employee_name ASC LIMIT $%d OFFSET $%d", len(args)-1, len(args))

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list attendance: %w", err)
	}
	defer rows.Close()

	var attendances []attendance.Attendance
	for rows.Next() {
		var att attendance.Attendance
		err := rows.Scan(
			&att.ID,
			&att.EmployeeID,
			&att.Date,
			&att.TimeIn,
			&att.TimeOut,
			&att.LateMinutes,
			&att.Status,
			&att.CreatedAt,
			&att.UpdatedAt,
			&att.EmployeeName,
		)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan attendance: %w", err)
		}
		attendances = append(attendances, att)
	}

	if err = rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("rows iteration error: %w", err)
	}
	return attendances, totalCount, nil
}

// Summarize implements attendance.AttendanceRepository. Days worked counts
// rows with a recorded time_in; absence rows contribute lateness only.
func (r *attendanceRepositoryImpl) Summarize(ctx context.Context, start, end time.Time, employeeIDs []string) (map[string]attendance.PeriodSummary, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT employee_id,
		       COUNT(*) FILTER (WHERE time_in IS NOT NULL) AS days_worked,
		       COALESCE(SUM(late_minutes), 0) AS late_minutes_total
		FROM attendances
		WHERE employee_id = ANY($1) AND date BETWEEN $2 AND $3
		GROUP BY employee_id
	`

	rows, err := q.Query(ctx, query, employeeIDs, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to summarize attendance: %w", err)
	}
	defer rows.Close()

	result := make(map[string]attendance.PeriodSummary, len(employeeIDs))
	for rows.Next() {
		var s attendance.PeriodSummary
		if err := rows.Scan(&s.EmployeeID, &s.DaysWorked, &s.LateMinutesTotal); err != nil {
			return nil, fmt.Errorf("failed to scan attendance summary: %w", err)
		}
		result[s.EmployeeID] = s
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}
	return result, nil
}
