package master

import (
	"context"

	"github.com/campus-hr/payroll-backend-go/internal/domain/master/department"
	"github.com/campus-hr/payroll-backend-go/internal/domain/master/position"
)

type MasterService interface {
	// Departments
	CreateDepartment(ctx context.Context, req department.CreateDepartmentRequest) (department.DepartmentResponse, error)
	GetDepartment(ctx context.Context, id string) (department.DepartmentResponse, error)
	ListDepartments(ctx context.Context) ([]department.DepartmentResponse, error)
	UpdateDepartment(ctx context.Context, req department.UpdateDepartmentRequest) error
	DeleteDepartment(ctx context.Context, id string) error

	// Positions
	CreatePosition(ctx context.Context, req position.CreatePositionRequest) (position.PositionResponse, error)
	GetPosition(ctx context.Context, id string) (position.PositionResponse, error)
	ListPositions(ctx context.Context) ([]position.PositionResponse, error)
	UpdatePosition(ctx context.Context, req position.UpdatePositionRequest) error
	DeletePosition(ctx context.Context, id string) error
}

type masterServiceImpl struct {
	departmentRepo department.DepartmentRepository
	positionRepo   position.PositionRepository
}

func NewMasterService(departmentRepo department.DepartmentRepository, positionRepo position.PositionRepository) MasterService {
	return &masterServiceImpl{
		departmentRepo: departmentRepo,
		positionRepo:   positionRepo,
	}
}

// ==================== DEPARTMENTS ====================

func (s *masterServiceImpl) CreateDepartment(ctx context.Context, req department.CreateDepartmentRequest) (department.DepartmentResponse, error) {
	if err := req.Validate(); err != nil {
		return department.DepartmentResponse{}, err
	}

	created, err := s.departmentRepo.Create(ctx, department.Department{
		Name: req.Name,
		Head: req.Head,
	})
	if err != nil {
		return department.DepartmentResponse{}, err
	}
	return mapToDepartmentResponse(created), nil
}

func (s *masterServiceImpl) GetDepartment(ctx context.Context, id string) (department.DepartmentResponse, error) {
	d, err := s.departmentRepo.GetByID(ctx, id)
	if err != nil {
		return department.DepartmentResponse{}, err
	}
	return mapToDepartmentResponse(d), nil
}

func (s *masterServiceImpl) ListDepartments(ctx context.Context) ([]department.DepartmentResponse, error) {
	departments, err := s.departmentRepo.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	result := make([]department.DepartmentResponse, 0, len(departments))
	for _, d := range departments {
		result = append(result, mapToDepartmentResponse(d))
	}
	return result, nil
}

func (s *masterServiceImpl) UpdateDepartment(ctx context.Context, req department.UpdateDepartmentRequest) error {
	if _, err := s.departmentRepo.GetByID(ctx, req.ID); err != nil {
		return err
	}
	return s.departmentRepo.Update(ctx, req)
}

func (s *masterServiceImpl) DeleteDepartment(ctx context.Context, id string) error {
	if _, err := s.departmentRepo.GetByID(ctx, id); err != nil {
		return err
	}
	return s.departmentRepo.Delete(ctx, id)
}

// ==================== POSITIONS ====================

func (s *masterServiceImpl) CreatePosition(ctx context.Context, req position.CreatePositionRequest) (position.PositionResponse, error) {
	if err := req.Validate(); err != nil {
		return position.PositionResponse{}, err
	}

	created, err := s.positionRepo.Create(ctx, position.Position{
		Name:      req.Name,
		IsFaculty: req.IsFaculty,
	})
	if err != nil {
		return position.PositionResponse{}, err
	}
	return mapToPositionResponse(created), nil
}

func (s *masterServiceImpl) GetPosition(ctx context.Context, id string) (position.PositionResponse, error) {
	p, err := s.positionRepo.GetByID(ctx, id)
	if err != nil {
		return position.PositionResponse{}, err
	}
	return mapToPositionResponse(p), nil
}

func (s *masterServiceImpl) ListPositions(ctx context.Context) ([]position.PositionResponse, error) {
	positions, err := s.positionRepo.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	result := make([]position.PositionResponse, 0, len(positions))
	for _, p := range positions {
		result = append(result, mapToPositionResponse(p))
	}
	return result, nil
}

func (s *masterServiceImpl) UpdatePosition(ctx context.Context, req position.UpdatePositionRequest) error {
	if _, err := s.positionRepo.GetByID(ctx, req.ID); err != nil {
		return err
	}
	return s.positionRepo.Update(ctx, req)
}

func (s *masterServiceImpl) DeletePosition(ctx context.Context, id string) error {
	if _, err := s.positionRepo.GetByID(ctx, id); err != nil {
		return err
	}
	return s.positionRepo.Delete(ctx, id)
}

func mapToDepartmentResponse(d department.Department) department.DepartmentResponse {
	return department.DepartmentResponse{
		ID:   d.ID,
		Name: d.Name,
		Head: d.Head,
	}
}

func mapToPositionResponse(p position.Position) position.PositionResponse {
	return position.PositionResponse{
		ID:        p.ID,
		Name:      p.Name,
		IsFaculty: p.IsFaculty,
	}
}
