package payroll

import "context"

type PayrollService interface {
	// Generation
	Generate(ctx context.Context, req GenerateRequest) (GenerateResponse, error)

	// Records
	GetRecord(ctx context.Context, id string) (RecordResponse, error)
	ListRecords(ctx context.Context, filter RecordFilter) ([]RecordResponse, int64, error)
	UpdateRecordStatus(ctx context.Context, req UpdateRecordStatusRequest) (RecordResponse, error)
	DeleteRecord(ctx context.Context, id string) error

	// Periods
	CreatePeriod(ctx context.Context, req CreatePeriodRequest) (PeriodResponse, error)
	ListPeriods(ctx context.Context, status *string) ([]PeriodResponse, error)
	UpdatePeriod(ctx context.Context, req UpdatePeriodRequest) (PeriodResponse, error)
	UpdatePeriodStatus(ctx context.Context, req UpdatePeriodStatusRequest) (PeriodResponse, error)
	DeletePeriod(ctx context.Context, id string) error
}
