package deduction

import "context"

type DeductionRepository interface {
	// Rates
	CreateRate(ctx context.Context, rate DeductionRate) (DeductionRate, error)
	GetRateByID(ctx context.Context, id string) (DeductionRate, error)
	GetRates(ctx context.Context, activeOnly bool) ([]DeductionRate, error)
	UpdateRate(ctx context.Context, req UpdateRateRequest) error
	DeleteRate(ctx context.Context, id string) error

	// Tax brackets
	CreateBracket(ctx context.Context, bracket TaxBracket) (TaxBracket, error)
	GetBracketByID(ctx context.Context, id string) (TaxBracket, error)
	GetBrackets(ctx context.Context, activeOnly bool) ([]TaxBracket, error)
	UpdateBracket(ctx context.Context, req UpdateBracketRequest) error
	DeleteBracket(ctx context.Context, id string) error
}
