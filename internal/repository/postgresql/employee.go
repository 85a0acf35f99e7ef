package postgresql

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/campus-hr/payroll-backend-go/internal/domain/employee"
	"github.com/campus-hr/payroll-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type employeeRepositoryImpl struct {
	db *database.DB
}

func NewEmployeeRepository(db *database.DB) employee.EmployeeRepository {
	return &employeeRepositoryImpl{db: db}
}

const employeeSelect = `
	SELECT e.id, e.employee_no, e.first_name, e.last_name, e.email,
	       e.department_id, e.position_id, e.salary_grade, e.salary_step,
	       e.base_salary, e.date_hired, e.is_active, e.created_at, e.updated_at,
	       d.name AS department_name, p.name AS position_name
	FROM employees e
	LEFT JOIN departments d ON d.id = e.department_id
	LEFT JOIN positions p ON p.id = e.position_id
`

func scanEmployee(row pgx.Row) (employee.Employee, error) {
	var e employee.Employee
	err := row.Scan(
		&e.ID,
		&e.EmployeeNo,
		&e.FirstName,
		&e.LastName,
		&e.Email,
		&e.DepartmentID,
		&e.PositionID,
		&e.SalaryGrade,
		&e.SalaryStep,
		&e.BaseSalary,
		&e.DateHired,
		&e.IsActive,
		&e.CreatedAt,
		&e.UpdatedAt,
		&e.DepartmentName,
		&e.PositionName,
	)
	return e, err
}

// Create implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) Create(ctx context.Context, emp employee.Employee) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO employees (id, employee_no, first_name, last_name, email,
			department_id, position_id, salary_grade, salary_step,
			base_salary, date_hired, is_active)
		VALUES (uuidv7(), $1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING id
	`

	err := q.QueryRow(ctx, query,
		emp.EmployeeNo,
		emp.FirstName,
		emp.LastName,
		emp.Email,
		emp.DepartmentID,
		emp.PositionID,
		emp.SalaryGrade,
		emp.SalaryStep,
		emp.BaseSalary,
		emp.DateHired,
		emp.IsActive,
	).Scan(&emp.ID)

	if err != nil {
		if strings.Contains(err.Error(), "uk_employees_employee_no") {
			return employee.Employee{}, employee.ErrEmployeeNoExists
		}
		return employee.Employee{}, fmt.Errorf("failed to create employee: %w", err)
	}

	return r.GetByID(ctx, emp.ID)
}

// GetByID implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) GetByID(ctx context.Context, id string) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := employeeSelect + ` WHERE e.id = $1`

	emp, err := scanEmployee(q.QueryRow(ctx, query, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return employee.Employee{}, employee.ErrEmployeeNotFound
	}
	if err != nil {
		return employee.Employee{}, fmt.Errorf("failed to get employee: %w", err)
	}
	return emp, nil
}

// GetByIDs implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) GetByIDs(ctx context.Context, ids []string) ([]employee.Employee, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	q := GetQuerier(ctx, r.db)

	query := employeeSelect + ` WHERE e.id = ANY($1)`

	rows, err := q.Query(ctx, query, ids)
	if err != nil {
		return nil, fmt.Errorf("failed to get employees: %w", err)
	}
	defer rows.Close()

	return collectEmployees(rows)
}

// GetActive implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) GetActive(ctx context.Context) ([]employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := employeeSelect + ` WHERE e.is_active ORDER BY e.employee_no ASC`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to get active employees: %w", err)
	}
	defer rows.Close()

	return collectEmployees(rows)
}

// List implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) List(ctx context.Context, filter employee.EmployeeFilter) ([]employee.Employee, int64, error) {
	q := GetQuerier(ctx, r.db)

	where := []string{"TRUE"}
	args := []interface{}{}

	if filter.DepartmentID != nil {
		args = append(args, *filter.DepartmentID)
		where = append(where, fmt.Sprintf("e.department_id = $%d", len(args)))
	}
	if filter.ActiveOnly {
		where = append(where, "e.is_active")
	}
	if filter.Search != "" {
		args = append(args, "%"+filter.Search+"%")
		n := len(args)
		where = append(where, fmt.Sprintf("(e.first_name ILIKE $%d OR e.last_name ILIKE $%d OR e.employee_no ILIKE $%d)", n, n, n))
	}

	whereClause := strings.Join(where, " AND ")

	var totalCount int64
	countQuery := `SELECT COUNT(*) FROM employees e WHERE ` + whereClause
	if err := q.QueryRow(ctx, countQuery, args...).Scan(&totalCount); err != nil {
		return nil, 0, fmt.Errorf("failed to count employees: %w", err)
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
	query := employeeSelect + ` WHERE ` + whereClause +
		fmt.Sprintf(" ORDER BY e.employee_no ASC LIMIT $%d OFFSET $%d", len(args)-1, len(args))

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list employees: %w", err)
	}
	defer rows.Close()

	employees, err := collectEmployees(rows)
	if err != nil {
		return nil, 0, err
	}
	return employees, totalCount, nil
}

// Update implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) Update(ctx context.Context, req employee.UpdateEmployeeRequest) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE employees
		SET first_name = COALESCE($1, first_name),
		    last_name = COALESCE($2, last_name),
		    email = COALESCE($3, email),
		    department_id = COALESCE($4, department_id),
		    position_id = COALESCE($5, position_id),
		    salary_grade = COALESCE($6, salary_grade),
		    salary_step = COALESCE($7, salary_step),
		    base_salary = COALESCE($8, base_salary),
		    is_active = COALESCE($9, is_active),
		    updated_at = NOW()
		WHERE id = $10
	`

	commandTag, err := q.Exec(ctx, query,
		req.FirstName,
		req.LastName,
		req.Email,
		req.DepartmentID,
		req.PositionID,
		req.SalaryGrade,
		req.SalaryStep,
		req.BaseSalary,
		req.IsActive,
		req.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update employee: %w", err)
	}
	if commandTag.RowsAffected() == 0 {
		return employee.ErrEmployeeNotFound
	}
	return nil
}

// Delete implements employee.EmployeeRepository. Rows are deactivated, not
// removed; payroll records keep their employee reference.
func (r *employeeRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	query := `UPDATE employees SET is_active = FALSE, updated_at = NOW() WHERE id = $1`

	commandTag, err := q.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to deactivate employee: %w", err)
	}
	if commandTag.RowsAffected() == 0 {
		return employee.ErrEmployeeNotFound
	}
	return nil
}

func collectEmployees(rows pgx.Rows) ([]employee.Employee, error) {
	var employees []employee.Employee
	for rows.Next() {
		emp, err := scanEmployee(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan employee: %w", err)
		}
		employees = append(employees, emp)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}
	return employees, nil
}
