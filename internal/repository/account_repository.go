package repository

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"

	"talent-match/internal/database"
)

var ErrAccountNotFound = errors.New("account not found")

const (
	RoleSeeker   = "seeker"
	RoleEmployer = "employer"
)

// Account is a login identity. Exactly one of SeekerID/EmployerID is set
// depending on the role; zero means no association.
type Account struct {
	ID           int64
	Email        string
	PasswordHash string
	Role         string
	SeekerID     int64
	EmployerID   int64
	CreatedAt    time.Time
}

type AccountRepository interface {
	Create(ctx context.Context, a Account) (int64, error)
	GetByEmail(ctx context.Context, email string) (Account, error)
	GetByID(ctx context.Context, id int64) (Account, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
}

type PostgresAccountRepository struct {
	db database.DB
}

func NewPostgresAccountRepository(db database.DB) *PostgresAccountRepository {
	return &PostgresAccountRepository{db: db}
}

func (r *PostgresAccountRepository) Create(ctx context.Context, a Account) (int64, error) {
	var id int64
	row := r.db.QueryRow(ctx,
		`INSERT INTO accounts (email, password_hash, role, seeker_id, employer_id)
		 VALUES ($1, $2, $3, NULLIF($4, 0), NULLIF($5, 0))
		 RETURNING id`,
		a.Email, a.PasswordHash, a.Role, a.SeekerID, a.EmployerID,
	)
	if err := row.Scan(&id); err != nil {
		return 0, err
	}
	return id, nil
}

func (r *PostgresAccountRepository) GetByEmail(ctx context.Context, email string) (Account, error) {
	return r.get(ctx, `WHERE email = $1`, email)
}

func (r *PostgresAccountRepository) GetByID(ctx context.Context, id int64) (Account, error) {
	return r.get(ctx, `WHERE id = $1`, id)
}

func (r *PostgresAccountRepository) get(ctx context.Context, where string, arg any) (Account, error) {
	var a Account
	row := r.db.QueryRow(ctx,
		`SELECT id, email, password_hash, role,
			COALESCE(seeker_id, 0), COALESCE(employer_id, 0), created_at
		 FROM accounts `+where,
		arg,
	)
	if err := row.Scan(&a.ID, &a.Email, &a.PasswordHash, &a.Role, &a.SeekerID, &a.EmployerID, &a.CreatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Account{}, ErrAccountNotFound
		}
		return Account{}, err
	}
	return a, nil
}

func (r *PostgresAccountRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	var exists bool
	row := r.db.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM accounts WHERE email = $1)`, email)
	if err := row.Scan(&exists); err != nil {
		return false, err
	}
	return exists, nil
}
