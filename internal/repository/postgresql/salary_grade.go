package postgresql

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/campus-hr/payroll-backend-go/internal/domain/salarygrade"
	"github.com/campus-hr/payroll-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type salaryGradeRepositoryImpl struct {
	db *database.DB
}

func NewSalaryGradeRepository(db *database.DB) salarygrade.SalaryGradeRepository {
	return &salaryGradeRepositoryImpl{db: db}
}

const gradeStepColumns = `id, grade, step, monthly_salary, effective_date, created_at, updated_at`

func scanGradeStep(row pgx.Row) (salarygrade.SalaryGradeStep, error) {
	var s salarygrade.SalaryGradeStep
	err := row.Scan(
		&s.ID,
		&s.Grade,
		&s.Step,
		&s.MonthlySalary,
		&s.EffectiveDate,
		&s.CreatedAt,
		&s.UpdatedAt,
	)
	return s, err
}

// Create implements salarygrade.SalaryGradeRepository.
func (r *salaryGradeRepositoryImpl) Create(ctx context.Context, s salarygrade.SalaryGradeStep) (salarygrade.SalaryGradeStep, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO salary_grades (id, grade, step, monthly_salary, effective_date)
		VALUES (uuidv7(), $1, $2, $3, COALESCE($4, CURRENT_DATE))
		RETURNING ` + gradeStepColumns

	var effective interface{}
	if !s.EffectiveDate.IsZero() {
		effective = s.EffectiveDate
	}

	result, err := scanGradeStep(q.QueryRow(ctx, query, s.Grade, s.Step, s.MonthlySalary, effective))
	if err != nil {
		if strings.Contains(err.Error(), "uk_salary_grades_grade_step") {
			return salarygrade.SalaryGradeStep{}, salarygrade.ErrGradeStepExists
		}
		return salarygrade.SalaryGradeStep{}, fmt.Errorf("failed to create salary grade step: %w", err)
	}
	return result, nil
}

// Lookup implements salarygrade.SalaryGradeRepository.
func (r *salaryGradeRepositoryImpl) Lookup(ctx context.Context, grade, step int) (salarygrade.SalaryGradeStep, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + gradeStepColumns + ` FROM salary_grades WHERE grade = $1 AND step = $2`

	result, err := scanGradeStep(q.QueryRow(ctx, query, grade, step))
	if errors.Is(err, pgx.ErrNoRows) {
		return salarygrade.SalaryGradeStep{}, salarygrade.ErrGradeStepNotFound
	}
	if err != nil {
		return salarygrade.SalaryGradeStep{}, fmt.Errorf("failed to look up salary grade step: %w", err)
	}
	return result, nil
}

// GetByID implements salarygrade.SalaryGradeRepository.
func (r *salaryGradeRepositoryImpl) GetByID(ctx context.Context, id string) (salarygrade.SalaryGradeStep, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + gradeStepColumns + ` FROM salary_grades WHERE id = $1`

	result, err := scanGradeStep(q.QueryRow(ctx, query, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return salarygrade.SalaryGradeStep{}, salarygrade.ErrGradeStepNotFound
	}
	if err != nil {
		return salarygrade.SalaryGradeStep{}, fmt.Errorf("failed to get salary grade step: %w", err)
	}
	return result, nil
}

// GetAll implements salarygrade.SalaryGradeRepository.
func (r *salaryGradeRepositoryImpl) GetAll(ctx context.Context) ([]salarygrade.SalaryGradeStep, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + gradeStepColumns + ` FROM salary_grades ORDER BY grade ASC, step ASC`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to get salary grade steps: %w", err)
	}
	defer rows.Close()

	var steps []salarygrade.SalaryGradeStep
	for rows.Next() {
		s, err := scanGradeStep(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan salary grade step: %w", err)
		}
		steps = append(steps, s)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}
	return steps, nil
}

// Update implements salarygrade.SalaryGradeRepository.
func (r *salaryGradeRepositoryImpl) Update(ctx context.Context, req salarygrade.UpdateGradeStepRequest) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE salary_grades
		SET monthly_salary = COALESCE($1, monthly_salary),
		    effective_date = COALESCE($2::date, effective_date),
		    updated_at = NOW()
		WHERE id = $3
	`

	commandTag, err := q.Exec(ctx, query, req.MonthlySalary, req.EffectiveDate, req.ID)
	if err != nil {
		return fmt.Errorf("failed to update salary grade step: %w", err)
	}
	if commandTag.RowsAffected() == 0 {
		return salarygrade.ErrGradeStepNotFound
	}
	return nil
}

// Delete implements salarygrade.SalaryGradeRepository.
func (r *salaryGradeRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	query := `DELETE FROM salary_grades WHERE id = $1`

	commandTag, err := q.Exec(ctx, query, id)
	if err != nil {
		if strings.Contains(err.Error(), "fk_payroll_records_salary_grade") {
			return salarygrade.ErrGradeStepInUse
		}
		return fmt.Errorf("failed to delete salary grade step: %w", err)
	}
	if commandTag.RowsAffected() == 0 {
		return salarygrade.ErrGradeStepNotFound
	}
	return nil
}
