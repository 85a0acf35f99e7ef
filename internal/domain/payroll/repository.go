package payroll

import "context"

type PayrollRepository interface {
	// Periods
	CreatePeriod(ctx context.Context, period PayrollPeriod) (PayrollPeriod, error)
	GetPeriodByID(ctx context.Context, id string) (PayrollPeriod, error)
	ListPeriods(ctx context.Context, status *string) ([]PayrollPeriod, error)
	UpdatePeriod(ctx context.Context, req UpdatePeriodRequest) error
	UpdatePeriodStatus(ctx context.Context, id string, status PeriodStatus) error
	// DeletePeriod removes a period. Returns ErrPeriodHasRecords when
	// payroll records reference it.
	DeletePeriod(ctx context.Context, id string) error

	// Records
	// CreateRecord inserts one payroll record. The (employee_id, period_id)
	// unique index is the duplicate guard of last resort; a violation is
	// returned as ErrDuplicateRecord.
	CreateRecord(ctx context.Context, record PayrollRecord) (PayrollRecord, error)
	GetRecordByID(ctx context.Context, id string) (PayrollRecord, error)
	ExistsForPeriod(ctx context.Context, employeeID, periodID string) (bool, error)
	ListRecords(ctx context.Context, filter RecordFilter) ([]PayrollRecord, int64, error)
	UpdateRecordStatus(ctx context.Context, id string, status RecordStatus) error
	DeleteRecord(ctx context.Context, id string) error
}
