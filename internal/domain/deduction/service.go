package deduction

import "context"

type DeductionService interface {
	// Rates
	CreateRate(ctx context.Context, req CreateRateRequest) (RateResponse, error)
	GetRate(ctx context.Context, id string) (RateResponse, error)
	ListRates(ctx context.Context, activeOnly bool) ([]RateResponse, error)
	UpdateRate(ctx context.Context, req UpdateRateRequest) (RateResponse, error)
	DeleteRate(ctx context.Context, id string) error

	// Tax brackets
	CreateBracket(ctx context.Context, req CreateBracketRequest) (BracketResponse, error)
	GetBracket(ctx context.Context, id string) (BracketResponse, error)
	ListBrackets(ctx context.Context, activeOnly bool) ([]BracketResponse, error)
	UpdateBracket(ctx context.Context, req UpdateBracketRequest) (BracketResponse, error)
	DeleteBracket(ctx context.Context, id string) error
}
