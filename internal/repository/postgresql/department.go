package postgresql

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/campus-hr/payroll-backend-go/internal/domain/master/department"
	"github.com/campus-hr/payroll-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type departmentRepositoryImpl struct {
	db *database.DB
}

func NewDepartmentRepository(db *database.DB) department.DepartmentRepository {
	return &departmentRepositoryImpl{db: db}
}

// Create implements department.DepartmentRepository.
func (r *departmentRepositoryImpl) Create(ctx context.Context, d department.Department) (department.Department, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO departments (id, name, head)
		VALUES (uuidv7(), $1, $2)
		RETURNING id, name, head
	`

	var result department.Department
	err := q.QueryRow(ctx, query, d.Name, d.Head).Scan(
		&result.ID,
		&result.Name,
		&result.Head,
	)
	if err != nil {
		return department.Department{}, fmt.Errorf("failed to create department: %w", err)
	}
	return result, nil
}

// GetByID implements department.DepartmentRepository.
func (r *departmentRepositoryImpl) GetByID(ctx context.Context, id string) (department.Department, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT id, name, head FROM departments WHERE id = $1`

	var result department.Department
	err := q.QueryRow(ctx, query, id).Scan(
		&result.ID,
		&result.Name,
		&result.Head,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return department.Department{}, department.ErrDepartmentNotFound
	}
	if err != nil {
		return department.Department{}, fmt.Errorf("failed to get department: %w", err)
	}
	return result, nil
}

// GetAll implements department.DepartmentRepository.
func (r *departmentRepositoryImpl) GetAll(ctx context.Context) ([]department.Department, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT id, name, head FROM departments ORDER BY name ASC`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to get departments: %w", err)
	}
	defer rows.Close()

	var departments []department.Department
	for rows.Next() {
		var d department.Department
		if err := rows.Scan(&d.ID, &d.Name, &d.Head); err != nil {
			return nil, fmt.Errorf("failed to scan department: %w", err)
		}
		departments = append(departments, d)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}
	return departments, nil
}

// Update implements department.DepartmentRepository.
func (r *departmentRepositoryImpl) Update(ctx context.Context, req department.UpdateDepartmentRequest) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE departments
		SET name = COALESCE($1, name),
		    head = COALESCE($2, head)
		WHERE id = $3
	`

	commandTag, err := q.Exec(ctx, query, req.Name, req.Head, req.ID)
	if err != nil {
		return fmt.Errorf("failed to update department: %w", err)
	}
	if commandTag.RowsAffected() == 0 {
		return department.ErrDepartmentNotFound
	}
	return nil
}

// Delete implements department.DepartmentRepository.
func (r *departmentRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	query := `DELETE FROM departments WHERE id = $1`

	commandTag, err := q.Exec(ctx, query, id)
	if err != nil {
		if strings.Contains(err.Error(), "fk_employees_department") {
			return department.ErrDepartmentInUse
		}
		return fmt.Errorf("failed to delete department: %w", err)
	}
	if commandTag.RowsAffected() == 0 {
		return department.ErrDepartmentNotFound
	}
	return nil
}
