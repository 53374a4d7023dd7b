package repository

import (
	"context"

	"talent-match/internal/database"
)

type EmployerRepository interface {
	Create(ctx context.Context, companyName string) (int64, error)
}

type PostgresEmployerRepository struct {
	db database.DB
}

func NewPostgresEmployerRepository(db database.DB) *PostgresEmployerRepository {
	return &PostgresEmployerRepository{db: db}
}

func (r *PostgresEmployerRepository) Create(ctx context.Context, companyName string) (int64, error) {
	var id int64
	row := r.db.QueryRow(ctx,
		`INSERT INTO employers (company_name) VALUES ($1) RETURNING id`,
		companyName,
	)
	if err := row.Scan(&id); err != nil {
		return 0, err
	}
	return id, nil
}
