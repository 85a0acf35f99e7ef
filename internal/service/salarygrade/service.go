package salarygrade

import (
	"context"
	"fmt"
	"sort"

	"github.com/campus-hr/payroll-backend-go/internal/domain/salarygrade"
	"github.com/campus-hr/payroll-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

type SalaryGradeServiceImpl struct {
	gradeRepo salarygrade.SalaryGradeRepository
}

func NewSalaryGradeService(gradeRepo salarygrade.SalaryGradeRepository) salarygrade.SalaryGradeService {
	return &SalaryGradeServiceImpl{gradeRepo: gradeRepo}
}

// Create implements salarygrade.SalaryGradeService.
func (s *SalaryGradeServiceImpl) Create(ctx context.Context, req salarygrade.CreateGradeStepRequest) (salarygrade.GradeStepResponse, error) {
	if err := req.Validate(); err != nil {
		return salarygrade.GradeStepResponse{}, err
	}

	step := salarygrade.SalaryGradeStep{
		Grade:         req.Grade,
		Step:          req.Step,
		MonthlySalary: req.MonthlySalary,
	}
	if req.EffectiveDate != nil {
		effective, _ := validator.IsValidDate(*req.EffectiveDate)
		step.EffectiveDate = effective
	}

	created, err := s.gradeRepo.Create(ctx, step)
	if err != nil {
		return salarygrade.GradeStepResponse{}, err
	}
	return mapToGradeStepResponse(created), nil
}

// List implements salarygrade.SalaryGradeService.
func (s *SalaryGradeServiceImpl) List(ctx context.Context) ([]salarygrade.GradeStepResponse, error) {
	steps, err := s.gradeRepo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list salary grade steps: %w", err)
	}

	result := make([]salarygrade.GradeStepResponse, 0, len(steps))
	for _, step := range steps {
		result = append(result, mapToGradeStepResponse(step))
	}
	return result, nil
}

// ListGrouped implements salarygrade.SalaryGradeService. Rows collapse to one
// entry per grade with the step salaries positioned by step number; grades
// with missing steps carry zero in those slots.
func (s *SalaryGradeServiceImpl) ListGrouped(ctx context.Context) ([]salarygrade.GroupedGradeResponse, error) {
	steps, err := s.gradeRepo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list salary grade steps: %w", err)
	}

	byGrade := make(map[int][]decimal.Decimal)
	for _, step := range steps {
		if byGrade[step.Grade] == nil {
			byGrade[step.Grade] = make([]decimal.Decimal, salarygrade.MaxStep)
		}
		byGrade[step.Grade][step.Step-1] = step.MonthlySalary
	}

	grades := make([]int, 0, len(byGrade))
	for g := range byGrade {
		grades = append(grades, g)
	}
	sort.Ints(grades)

	result := make([]salarygrade.GroupedGradeResponse, 0, len(grades))
	for _, g := range grades {
		result = append(result, salarygrade.GroupedGradeResponse{
			Grade: g,
			Steps: byGrade[g],
		})
	}
	return result, nil
}

// Update implements salarygrade.SalaryGradeService.
func (s *SalaryGradeServiceImpl) Update(ctx context.Context, req salarygrade.UpdateGradeStepRequest) (salarygrade.GradeStepResponse, error) {
	if req.MonthlySalary != nil && !req.MonthlySalary.IsPositive() {
		return salarygrade.GradeStepResponse{}, validator.ValidationErrors{
			{Field: "monthly_salary", Message: "must be positive"},
		}
	}
	if req.EffectiveDate != nil {
		if _, ok := validator.IsValidDate(*req.EffectiveDate); !ok {
			return salarygrade.GradeStepResponse{}, validator.ValidationErrors{
				{Field: "effective_date", Message: "must be YYYY-MM-DD"},
			}
		}
	}

	if err := s.gradeRepo.Update(ctx, req); err != nil {
		return salarygrade.GradeStepResponse{}, err
	}

	updated, err := s.gradeRepo.GetByID(ctx, req.ID)
	if err != nil {
		return salarygrade.GradeStepResponse{}, err
	}
	return mapToGradeStepResponse(updated), nil
}

// Delete implements salarygrade.SalaryGradeService.
func (s *SalaryGradeServiceImpl) Delete(ctx context.Context, id string) error {
	return s.gradeRepo.Delete(ctx, id)
}

func mapToGradeStepResponse(step salarygrade.SalaryGradeStep) salarygrade.GradeStepResponse {
	return salarygrade.GradeStepResponse{
		ID:            step.ID,
		Grade:         step.Grade,
		Step:          step.Step,
		MonthlySalary: step.MonthlySalary,
		EffectiveDate: step.EffectiveDate.Format("2006-01-02"),
	}
}
