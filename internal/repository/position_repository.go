package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"talent-match/internal/database"
	"talent-match/internal/domain/position"
)

var (
	ErrPositionNotFound    = errors.New("position not found")
	ErrPreferencesNotFound = errors.New("preferences not found")
)

type PositionRepository interface {
	FindByID(ctx context.Context, id int64) (position.Position, error)
}

type PostgresPositionRepository struct {
	db database.DB
}

func NewPostgresPositionRepository(db database.DB) *PostgresPositionRepository {
	return &PostgresPositionRepository{db: db}
}

func (r *PostgresPositionRepository) FindByID(ctx context.Context, id int64) (position.Position, error) {
	var p position.Position
	row := r.db.QueryRow(ctx,
		`SELECT id, employer_id, COALESCE(title, ''), COALESCE(description, ''),
			COALESCE(employment_type, ''), COALESCE(work_setting, ''),
			COALESCE(travel_requirements, ''), is_open, created_at
		 FROM positions WHERE id = $1`,
		id,
	)
	if err := row.Scan(
		&p.ID, &p.EmployerID, &p.Title, &p.Description,
		&p.EmploymentType, &p.WorkSetting,
		&p.TravelRequirements, &p.IsOpen, &p.CreatedAt,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return position.Position{}, ErrPositionNotFound
		}
		return position.Position{}, err
	}
	return p, nil
}
