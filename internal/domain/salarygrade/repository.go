package salarygrade

import "context"

type SalaryGradeRepository interface {
	Create(ctx context.Context, s SalaryGradeStep) (SalaryGradeStep, error)
	// Lookup resolves the monthly salary for (grade, step).
	// Returns ErrGradeStepNotFound when no row matches.
	Lookup(ctx context.Context, grade, step int) (SalaryGradeStep, error)
	GetByID(ctx context.Context, id string) (SalaryGradeStep, error)
	GetAll(ctx context.Context) ([]SalaryGradeStep, error)
	Update(ctx context.Context, req UpdateGradeStepRequest) error
	Delete(ctx context.Context, id string) error
}
