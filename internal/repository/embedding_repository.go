package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	pgvector "github.com/pgvector/pgvector-go"

	"talent-match/internal/database"
)

const (
	EmbeddingOwnerSeeker   = "seeker"
	EmbeddingOwnerPosition = "position"
)

// EmbeddingRepository reads the vectors maintained by the external
// embedding worker. Absence of a vector is a normal state, never an error:
// the worker lags behind profile edits by an unbounded interval.
type EmbeddingRepository interface {
	GetPositionVector(ctx context.Context, positionID int64) ([]float32, error)
	GetSeekerVectors(ctx context.Context, seekerIDs []int64) (map[int64][]float32, error)
}

type PostgresEmbeddingRepository struct {
	db database.DB
}

func NewPostgresEmbeddingRepository(db database.DB) *PostgresEmbeddingRepository {
	return &PostgresEmbeddingRepository{db: db}
}

func (r *PostgresEmbeddingRepository) GetPositionVector(ctx context.Context, positionID int64) ([]float32, error) {
	var vec pgvector.Vector
	row := r.db.QueryRow(ctx,
		`SELECT embedding FROM embeddings WHERE owner_type = $1 AND owner_id = $2`,
		EmbeddingOwnerPosition, positionID,
	)
	if err := row.Scan(&vec); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return vec.Slice(), nil
}

func (r *PostgresEmbeddingRepository) GetSeekerVectors(ctx context.Context, seekerIDs []int64) (map[int64][]float32, error) {
	out := make(map[int64][]float32, len(seekerIDs))
	if len(seekerIDs) == 0 {
		return out, nil
	}

	rows, err := r.db.Query(ctx,
		`SELECT owner_id, embedding FROM embeddings WHERE owner_type = $1 AND owner_id = ANY($2)`,
		EmbeddingOwnerSeeker, seekerIDs,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			id  int64
			vec pgvector.Vector
		)
		if err := rows.Scan(&id, &vec); err != nil {
			return nil, err
		}
		out[id] = vec.Slice()
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
