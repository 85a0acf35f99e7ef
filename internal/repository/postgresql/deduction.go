package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/campus-hr/payroll-backend-go/internal/domain/deduction"
	"github.com/campus-hr/payroll-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type deductionRepositoryImpl struct {
	db *database.DB
}

func NewDeductionRepository(db *database.DB) deduction.DeductionRepository {
	return &deductionRepositoryImpl{db: db}
}

// ========== RATES ==========

const rateColumns = `id, type, rate_type, rate_value, salary_min, salary_max, min_amount, max_amount, is_active, created_at, updated_at`

func scanRate(row pgx.Row) (deduction.DeductionRate, error) {
	var r deduction.DeductionRate
	err := row.Scan(
		&r.ID,
		&r.Type,
		&r.RateType,
		&r.RateValue,
		&r.SalaryMin,
		&r.SalaryMax,
		&r.MinAmount,
		&r.MaxAmount,
		&r.IsActive,
		&r.CreatedAt,
		&r.UpdatedAt,
	)
	return r, err
}

// CreateRate implements deduction.DeductionRepository.
func (r *deductionRepositoryImpl) CreateRate(ctx context.Context, rate deduction.DeductionRate) (deduction.DeductionRate, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO deduction_rates (id, type, rate_type, rate_value,
			salary_min, salary_max, min_amount, max_amount, is_active)
		VALUES (uuidv7(), $1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING ` + rateColumns

	result, err := scanRate(q.QueryRow(ctx, query,
		rate.Type,
		rate.RateType,
		rate.RateValue,
		rate.SalaryMin,
		rate.SalaryMax,
		rate.MinAmount,
		rate.MaxAmount,
		rate.IsActive,
	))
	if err != nil {
		return deduction.DeductionRate{}, fmt.Errorf("failed to create deduction rate: %w", err)
	}
	return result, nil
}

// GetRateByID implements deduction.DeductionRepository.
func (r *deductionRepositoryImpl) GetRateByID(ctx context.Context, id string) (deduction.DeductionRate, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + rateColumns + ` FROM deduction_rates WHERE id = $1`

	result, err := scanRate(q.QueryRow(ctx, query, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return deduction.DeductionRate{}, deduction.ErrRateNotFound
	}
	if err != nil {
		return deduction.DeductionRate{}, fmt.Errorf("failed to get deduction rate: %w", err)
	}
	return result, nil
}

// GetRates implements deduction.DeductionRepository.
func (r *deductionRepositoryImpl) GetRates(ctx context.Context, activeOnly bool) ([]deduction.DeductionRate, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + rateColumns + ` FROM deduction_rates`
	if activeOnly {
		query += ` WHERE is_active`
	}
	query += ` ORDER BY type ASC, salary_min ASC NULLS FIRST`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to get deduction rates: %w", err)
	}
	defer rows.Close()

	var rates []deduction.DeductionRate
	for rows.Next() {
		rate, err := scanRate(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan deduction rate: %w", err)
		}
		rates = append(rates, rate)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}
	return rates, nil
}

// UpdateRate implements deduction.DeductionRepository.
func (r *deductionRepositoryImpl) UpdateRate(ctx context.Context, req deduction.UpdateRateRequest) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE deduction_rates
		SET rate_value = COALESCE($1, rate_value),
		    salary_min = COALESCE($2, salary_min),
		    salary_max = COALESCE($3, salary_max),
		    min_amount = COALESCE($4, min_amount),
		    max_amount = COALESCE($5, max_amount),
		    is_active = COALESCE($6, is_active),
		    updated_at = NOW()
		WHERE id = $7
	`

	commandTag, err := q.Exec(ctx, query,
		req.RateValue,
		req.SalaryMin,
		req.SalaryMax,
		req.MinAmount,
		req.MaxAmount,
		req.IsActive,
		req.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update deduction rate: %w", err)
	}
	if commandTag.RowsAffected() == 0 {
		return deduction.ErrRateNotFound
	}
	return nil
}

// DeleteRate implements deduction.DeductionRepository.
func (r *deductionRepositoryImpl) DeleteRate(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	query := `DELETE FROM deduction_rates WHERE id = $1`

	commandTag, err := q.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to delete deduction rate: %w", err)
	}
	if commandTag.RowsAffected() == 0 {
		return deduction.ErrRateNotFound
	}
	return nil
}

// ========== TAX BRACKETS ==========

const bracketColumns = `id, income_from, income_to, base_tax, rate_percentage, excess_over, is_active, created_at, updated_at`

func scanBracket(row pgx.Row) (deduction.TaxBracket, error) {
	var b deduction.TaxBracket
	err := row.Scan(
		&b.ID,
		&b.IncomeFrom,
		&b.IncomeTo,
		&b.BaseTax,
		&b.RatePercentage,
		&b.ExcessOver,
		&b.IsActive,
		&b.CreatedAt,
		&b.UpdatedAt,
	)
	return b, err
}

// CreateBracket implements deduction.DeductionRepository.
func (r *deductionRepositoryImpl) CreateBracket(ctx context.Context, bracket deduction.TaxBracket) (deduction.TaxBracket, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO tax_brackets (id, income_from, income_to, base_tax,
			rate_percentage, excess_over, is_active)
		VALUES (uuidv7(), $1, $2, $3, $4, $5, $6)
		RETURNING ` + bracketColumns

	result, err := scanBracket(q.QueryRow(ctx, query,
		bracket.IncomeFrom,
		bracket.IncomeTo,
		bracket.BaseTax,
		bracket.RatePercentage,
		bracket.ExcessOver,
		bracket.IsActive,
	))
	if err != nil {
		return deduction.TaxBracket{}, fmt.Errorf("failed to create tax bracket: %w", err)
	}
	return result, nil
}

// GetBracketByID implements deduction.DeductionRepository.
func (r *deductionRepositoryImpl) GetBracketByID(ctx context.Context, id string) (deduction.TaxBracket, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + bracketColumns + ` FROM tax_brackets WHERE id = $1`

	result, err := scanBracket(q.QueryRow(ctx, query, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return deduction.TaxBracket{}, deduction.ErrBracketNotFound
	}
	if err != nil {
		return deduction.TaxBracket{}, fmt.Errorf("failed to get tax bracket: %w", err)
	}
	return result, nil
}

// GetBrackets implements deduction.DeductionRepository.
func (r *deductionRepositoryImpl) GetBrackets(ctx context.Context, activeOnly bool) ([]deduction.TaxBracket, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + bracketColumns + ` FROM tax_brackets`
	if activeOnly {
		query += ` WHERE is_active`
	}
	query += ` ORDER BY income_from ASC`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to get tax brackets: %w", err)
	}
	defer rows.Close()

	var brackets []deduction.TaxBracket
	for rows.Next() {
		b, err := scanBracket(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan tax bracket: %w", err)
		}
		brackets = append(brackets, b)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}
	return brackets, nil
}

// UpdateBracket implements deduction.DeductionRepository.
func (r *deductionRepositoryImpl) UpdateBracket(ctx context.Context, req deduction.UpdateBracketRequest) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE tax_brackets
		SET income_from = COALESCE($1, income_from),
		    income_to = COALESCE($2, income_to),
		    base_tax = COALESCE($3, base_tax),
		    rate_percentage = COALESCE($4, rate_percentage),
		    excess_over = COALESCE($5, excess_over),
		    is_active = COALESCE($6, is_active),
		    updated_at = NOW()
		WHERE id = $7
	`

	commandTag, err := q.Exec(ctx, query,
		req.IncomeFrom,
		req.IncomeTo,
		req.BaseTax,
		req.RatePercentage,
		req.ExcessOver,
		req.IsActive,
		req.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update tax bracket: %w", err)
	}
	if commandTag.RowsAffected() == 0 {
		return deduction.ErrBracketNotFound
	}
	return nil
}

// DeleteBracket implements deduction.DeductionRepository.
func (r *deductionRepositoryImpl) DeleteBracket(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	query := `DELETE FROM tax_brackets WHERE id = $1`

	commandTag, err := q.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to delete tax bracket: %w", err)
	}
	if commandTag.RowsAffected() == 0 {
		return deduction.ErrBracketNotFound
	}
	return nil
}
