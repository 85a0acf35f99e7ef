package postgresql

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/campus-hr/payroll-backend-go/internal/domain/master/position"
	"github.com/campus-hr/payroll-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type positionRepositoryImpl struct {
	db *database.DB
}

func NewPositionRepository(db *database.DB) position.PositionRepository {
	return &positionRepositoryImpl{db: db}
}

// Create implements position.PositionRepository.
func (r *positionRepositoryImpl) Create(ctx context.Context, p position.Position) (position.Position, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO positions (id, name, is_faculty)
		VALUES (uuidv7(), $1, $2)
		RETURNING id, name, is_faculty
	`

	var result position.Position
	err := q.QueryRow(ctx, query, p.Name, p.IsFaculty).Scan(
		&result.ID,
		&result.Name,
		&result.IsFaculty,
	)
	if err != nil {
		return position.Position{}, fmt.Errorf("failed to create position: %w", err)
	}
	return result, nil
}

// GetByID implements position.PositionRepository.
func (r *positionRepositoryImpl) GetByID(ctx context.Context, id string) (position.Position, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT id, name, is_faculty FROM positions WHERE id = $1`

	var result position.Position
	err := q.QueryRow(ctx, query, id).Scan(
		&result.ID,
		&result.Name,
		&result.IsFaculty,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return position.Position{}, position.ErrPositionNotFound
	}
	if err != nil {
		return position.Position{}, fmt.Errorf("failed to get position: %w", err)
	}
	return result, nil
}

// GetAll implements position.PositionRepository.
func (r *positionRepositoryImpl) GetAll(ctx context.Context) ([]position.Position, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT id, name, is_faculty FROM positions ORDER BY name ASC`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to get positions: %w", err)
	}
	defer rows.Close()

	var positions []position.Position
	for rows.Next() {
		var p position.Position
		if err := rows.Scan(&p.ID, &p.Name, &p.IsFaculty); err != nil {
			return nil, fmt.Errorf("failed to scan position: %w", err)
		}
		positions = append(positions, p)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}
	return positions, nil
}

// Update implements position.PositionRepository.
func (r *positionRepositoryImpl) Update(ctx context.Context, req position.UpdatePositionRequest) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE positions
		SET name = COALESCE($1, name),
		    is_faculty = COALESCE($2, is_faculty)
		WHERE id = $3
	`

	commandTag, err := q.Exec(ctx, query, req.Name, req.IsFaculty, req.ID)
	if err != nil {
		return fmt.Errorf("failed to update position: %w", err)
	}
	if commandTag.RowsAffected() == 0 {
		return position.ErrPositionNotFound
	}
	return nil
}

// Delete implements position.PositionRepository.
func (r *positionRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	query := `DELETE FROM positions WHERE id = $1`

	commandTag, err := q.Exec(ctx, query, id)
	if err != nil {
		if strings.Contains(err.Error(), "fk_employees_position") {
			return position.ErrPositionInUse
		}
		return fmt.Errorf("failed to delete position: %w", err)
	}
	if commandTag.RowsAffected() == 0 {
		return position.ErrPositionNotFound
	}
	return nil
}
