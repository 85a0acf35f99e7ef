package deduction

import (
	"context"
	"fmt"

	"github.com/campus-hr/payroll-backend-go/internal/domain/deduction"
)

type DeductionServiceImpl struct {
	deductionRepo deduction.DeductionRepository
}

func NewDeductionService(deductionRepo deduction.DeductionRepository) deduction.DeductionService {
	return &DeductionServiceImpl{deductionRepo: deductionRepo}
}

// ========== RATES ==========

// CreateRate implements deduction.DeductionService.
func (s *DeductionServiceImpl) CreateRate(ctx context.Context, req deduction.CreateRateRequest) (deduction.RateResponse, error) {
	if err := req.Validate(); err != nil {
		return deduction.RateResponse{}, err
	}

	created, err := s.deductionRepo.CreateRate(ctx, deduction.DeductionRate{
		Type:      deduction.DeductionType(req.Type),
		RateType:  deduction.RateType(req.RateType),
		RateValue: req.RateValue,
		SalaryMin: req.SalaryMin,
		SalaryMax: req.SalaryMax,
		MinAmount: req.MinAmount,
		MaxAmount: req.MaxAmount,
		IsActive:  true,
	})
	if err != nil {
		return deduction.RateResponse{}, err
	}
	return mapToRateResponse(created), nil
}

// GetRate implements deduction.DeductionService.
func (s *DeductionServiceImpl) GetRate(ctx context.Context, id string) (deduction.RateResponse, error) {
	rate, err := s.deductionRepo.GetRateByID(ctx, id)
	if err != nil {
		return deduction.RateResponse{}, err
	}
	return mapToRateResponse(rate), nil
}

// ListRates implements deduction.DeductionService.
func (s *DeductionServiceImpl) ListRates(ctx context.Context, activeOnly bool) ([]deduction.RateResponse, error) {
	rates, err := s.deductionRepo.GetRates(ctx, activeOnly)
	if err != nil {
		return nil, fmt.Errorf("failed to list deduction rates: %w", err)
	}

	result := make([]deduction.RateResponse, 0, len(rates))
	for _, rate := range rates {
		result = append(result, mapToRateResponse(rate))
	}
	return result, nil
}

// UpdateRate implements deduction.DeductionService.
func (s *DeductionServiceImpl) UpdateRate(ctx context.Context, req deduction.UpdateRateRequest) (deduction.RateResponse, error) {
	if _, err := s.deductionRepo.GetRateByID(ctx, req.ID); err != nil {
		return deduction.RateResponse{}, err
	}

	if err := s.deductionRepo.UpdateRate(ctx, req); err != nil {
		return deduction.RateResponse{}, err
	}
	return s.GetRate(ctx, req.ID)
}

// DeleteRate implements deduction.DeductionService.
func (s *DeductionServiceImpl) DeleteRate(ctx context.Context, id string) error {
	if _, err := s.deductionRepo.GetRateByID(ctx, id); err != nil {
		return err
	}
	return s.deductionRepo.DeleteRate(ctx, id)
}

// ========== TAX BRACKETS ==========

// CreateBracket implements deduction.DeductionService. The new row must keep
// the active table contiguous; a bracket that would open a gap or overlap is
// rejected before it is stored.
func (s *DeductionServiceImpl) CreateBracket(ctx context.Context, req deduction.CreateBracketRequest) (deduction.BracketResponse, error) {
	if err := req.Validate(); err != nil {
		return deduction.BracketResponse{}, err
	}

	bracket := deduction.TaxBracket{
		IncomeFrom:     req.IncomeFrom,
		IncomeTo:       req.IncomeTo,
		BaseTax:        req.BaseTax,
		RatePercentage: req.RatePercentage,
		ExcessOver:     req.ExcessOver,
		IsActive:       true,
	}

	existing, err := s.deductionRepo.GetBrackets(ctx, true)
	if err != nil {
		return deduction.BracketResponse{}, fmt.Errorf("failed to load tax brackets: %w", err)
	}
	if _, err := deduction.ValidateBrackets(append(existing, bracket)); err != nil {
		return deduction.BracketResponse{}, err
	}

	created, err := s.deductionRepo.CreateBracket(ctx, bracket)
	if err != nil {
		return deduction.BracketResponse{}, err
	}
	return mapToBracketResponse(created), nil
}

// GetBracket implements deduction.DeductionService.
func (s *DeductionServiceImpl) GetBracket(ctx context.Context, id string) (deduction.BracketResponse, error) {
	bracket, err := s.deductionRepo.GetBracketByID(ctx, id)
	if err != nil {
		return deduction.BracketResponse{}, err
	}
	return mapToBracketResponse(bracket), nil
}

// ListBrackets implements deduction.DeductionService.
func (s *DeductionServiceImpl) ListBrackets(ctx context.Context, activeOnly bool) ([]deduction.BracketResponse, error) {
	brackets, err := s.deductionRepo.GetBrackets(ctx, activeOnly)
	if err != nil {
		return nil, fmt.Errorf("failed to list tax brackets: %w", err)
	}

	result := make([]deduction.BracketResponse, 0, len(brackets))
	for _, b := range brackets {
		result = append(result, mapToBracketResponse(b))
	}
	return result, nil
}

// UpdateBracket implements deduction.DeductionService. Like CreateBracket,
// the edit is rejected when the resulting active table would have a gap or
// overlap, so a bad row can never reach the payroll run.
func (s *DeductionServiceImpl) UpdateBracket(ctx context.Context, req deduction.UpdateBracketRequest) (deduction.BracketResponse, error) {
	current, err := s.deductionRepo.GetBracketByID(ctx, req.ID)
	if err != nil {
		return deduction.BracketResponse{}, err
	}

	patched := applyBracketPatch(current, req)
	existing, err := s.deductionRepo.GetBrackets(ctx, true)
	if err != nil {
		return deduction.BracketResponse{}, fmt.Errorf("failed to load tax brackets: %w", err)
	}
	table := make([]deduction.TaxBracket, 0, len(existing)+1)
	for _, b := range existing {
		if b.ID != req.ID {
			table = append(table, b)
		}
	}
	table = append(table, patched)
	if _, err := deduction.ValidateBrackets(table); err != nil {
		return deduction.BracketResponse{}, err
	}

	if err := s.deductionRepo.UpdateBracket(ctx, req); err != nil {
		return deduction.BracketResponse{}, err
	}
	return s.GetBracket(ctx, req.ID)
}

func applyBracketPatch(b deduction.TaxBracket, req deduction.UpdateBracketRequest) deduction.TaxBracket {
	if req.IncomeFrom != nil {
		b.IncomeFrom = *req.IncomeFrom
	}
	if req.IncomeTo != nil {
		b.IncomeTo = *req.IncomeTo
	}
	if req.BaseTax != nil {
		b.BaseTax = *req.BaseTax
	}
	if req.RatePercentage != nil {
		b.RatePercentage = *req.RatePercentage
	}
	if req.ExcessOver != nil {
		b.ExcessOver = *req.ExcessOver
	}
	if req.IsActive != nil {
		b.IsActive = *req.IsActive
	}
	return b
}

// DeleteBracket implements deduction.DeductionService.
func (s *DeductionServiceImpl) DeleteBracket(ctx context.Context, id string) error {
	if _, err := s.deductionRepo.GetBracketByID(ctx, id); err != nil {
		return err
	}
	return s.deductionRepo.DeleteBracket(ctx, id)
}

func mapToRateResponse(r deduction.DeductionRate) deduction.RateResponse {
	return deduction.RateResponse{
		ID:        r.ID,
		Type:      string(r.Type),
		RateType:  string(r.RateType),
		RateValue: r.RateValue,
		SalaryMin: r.SalaryMin,
		SalaryMax: r.SalaryMax,
		MinAmount: r.MinAmount,
		MaxAmount: r.MaxAmount,
		IsActive:  r.IsActive,
	}
}

func mapToBracketResponse(b deduction.TaxBracket) deduction.BracketResponse {
	return deduction.BracketResponse{
		ID:             b.ID,
		IncomeFrom:     b.IncomeFrom,
		IncomeTo:       b.IncomeTo,
		BaseTax:        b.BaseTax,
		RatePercentage: b.RatePercentage,
		ExcessOver:     b.ExcessOver,
		IsActive:       b.IsActive,
	}
}
