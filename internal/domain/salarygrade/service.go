package salarygrade

import "context"

type SalaryGradeService interface {
	Create(ctx context.Context, req CreateGradeStepRequest) (GradeStepResponse, error)
	List(ctx context.Context) ([]GradeStepResponse, error)
	// ListGrouped returns one row per grade with its step salaries in order.
	ListGrouped(ctx context.Context) ([]GroupedGradeResponse, error)
	Update(ctx context.Context, req UpdateGradeStepRequest) (GradeStepResponse, error)
	Delete(ctx context.Context, id string) error
}
