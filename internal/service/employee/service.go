package employee

import (
	"context"
	"fmt"

	"github.com/campus-hr/payroll-backend-go/internal/domain/employee"
	"github.com/campus-hr/payroll-backend-go/internal/domain/master/department"
	"github.com/campus-hr/payroll-backend-go/internal/domain/master/position"
	"github.com/campus-hr/payroll-backend-go/internal/pkg/validator"
)

type EmployeeServiceImpl struct {
	employeeRepo   employee.EmployeeRepository
	departmentRepo department.DepartmentRepository
	positionRepo   position.PositionRepository
}

func NewEmployeeService(
	employeeRepo employee.EmployeeRepository,
	departmentRepo department.DepartmentRepository,
	positionRepo position.PositionRepository,
) employee.EmployeeService {
	return &EmployeeServiceImpl{
		employeeRepo:   employeeRepo,
		departmentRepo: departmentRepo,
		positionRepo:   positionRepo,
	}
}

// Create implements employee.EmployeeService.
func (s *EmployeeServiceImpl) Create(ctx context.Context, req employee.CreateEmployeeRequest) (employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	if req.DepartmentID != nil {
		if _, err := s.departmentRepo.GetByID(ctx, *req.DepartmentID); err != nil {
			return employee.EmployeeResponse{}, err
		}
	}
	if req.PositionID != nil {
		if _, err := s.positionRepo.GetByID(ctx, *req.PositionID); err != nil {
			return employee.EmployeeResponse{}, err
		}
	}

	emp := employee.Employee{
		EmployeeNo:   req.EmployeeNo,
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		Email:        req.Email,
		DepartmentID: req.DepartmentID,
		PositionID:   req.PositionID,
		SalaryGrade:  req.SalaryGrade,
		SalaryStep:   req.SalaryStep,
		BaseSalary:   req.BaseSalary,
		IsActive:     true,
	}
	if req.DateHired != nil {
		hired, _ := validator.IsValidDate(*req.DateHired)
		emp.DateHired = &hired
	}

	created, err := s.employeeRepo.Create(ctx, emp)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}
	return mapToEmployeeResponse(created), nil
}

// Get implements employee.EmployeeService.
func (s *EmployeeServiceImpl) Get(ctx context.Context, id string) (employee.EmployeeResponse, error) {
	emp, err := s.employeeRepo.GetByID(ctx, id)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}
	return mapToEmployeeResponse(emp), nil
}

// List implements employee.EmployeeService.
func (s *EmployeeServiceImpl) List(ctx context.Context, filter employee.EmployeeFilter) ([]employee.EmployeeResponse, int64, error) {
	employees, totalCount, err := s.employeeRepo.List(ctx, filter)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list employees: %w", err)
	}

	result := make([]employee.EmployeeResponse, 0, len(employees))
	for _, emp := range employees {
		result = append(result, mapToEmployeeResponse(emp))
	}
	return result, totalCount, nil
}

// Update implements employee.EmployeeService.
func (s *EmployeeServiceImpl) Update(ctx context.Context, req employee.UpdateEmployeeRequest) (employee.EmployeeResponse, error) {
	if _, err := s.employeeRepo.GetByID(ctx, req.ID); err != nil {
		return employee.EmployeeResponse{}, err
	}

	if req.DepartmentID != nil {
		if _, err := s.departmentRepo.GetByID(ctx, *req.DepartmentID); err != nil {
			return employee.EmployeeResponse{}, err
		}
	}
	if req.PositionID != nil {
		if _, err := s.positionRepo.GetByID(ctx, *req.PositionID); err != nil {
			return employee.EmployeeResponse{}, err
		}
	}

	if err := s.employeeRepo.Update(ctx, req); err != nil {
		return employee.EmployeeResponse{}, err
	}

	updated, err := s.employeeRepo.GetByID(ctx, req.ID)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}
	return mapToEmployeeResponse(updated), nil
}

// Delete implements employee.EmployeeService. Deletion is a soft deactivate;
// payroll history keeps referencing the row.
func (s *EmployeeServiceImpl) Delete(ctx context.Context, id string) error {
	if _, err := s.employeeRepo.GetByID(ctx, id); err != nil {
		return err
	}
	return s.employeeRepo.Delete(ctx, id)
}

func mapToEmployeeResponse(emp employee.Employee) employee.EmployeeResponse {
	resp := employee.EmployeeResponse{
		ID:             emp.ID,
		EmployeeNo:     emp.EmployeeNo,
		FirstName:      emp.FirstName,
		LastName:       emp.LastName,
		Email:          emp.Email,
		DepartmentID:   emp.DepartmentID,
		DepartmentName: emp.DepartmentName,
		PositionID:     emp.PositionID,
		PositionName:   emp.PositionName,
		SalaryGrade:    emp.SalaryGrade,
		SalaryStep:     emp.SalaryStep,
		BaseSalary:     emp.BaseSalary,
		IsActive:       emp.IsActive,
	}
	if emp.DateHired != nil {
		hired := emp.DateHired.Format("2006-01-02")
		resp.DateHired = &hired
	}
	return resp
}
