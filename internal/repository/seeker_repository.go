package repository

import (
	"context"
	"fmt"
	"strings"

	"talent-match/internal/database"
	"talent-match/internal/domain/matching"
	"talent-match/internal/domain/seeker"
)

type SeekerRepository interface {
	Create(ctx context.Context, s seeker.Seeker) (int64, error)
	ListActive(ctx context.Context, limit int) ([]seeker.Seeker, error)
	ListActiveFiltered(ctx context.Context, f matching.StructuralFilter) ([]seeker.Seeker, error)
}

type PostgresSeekerRepository struct {
	db database.DB
}

func NewPostgresSeekerRepository(db database.DB) *PostgresSeekerRepository {
	return &PostgresSeekerRepository{db: db}
}

const seekerColumns = `id, COALESCE(first_name, ''), COALESCE(last_name, ''), COALESCE(email, ''),
	COALESCE(city, ''), COALESCE(state, ''), COALESCE(job_category, ''), COALESCE(skills, ''),
	COALESCE(languages, ''), COALESCE(certifications, ''), COALESCE(interests, ''),
	COALESCE(work_setting, ''), COALESCE(travel, ''), COALESCE(preferred_salary, ''),
	COALESCE(experience_json, ''), COALESCE(education_json, ''), is_profile_active, created_at`

func (r *PostgresSeekerRepository) Create(ctx context.Context, s seeker.Seeker) (int64, error) {
	var id int64
	row := r.db.QueryRow(ctx,
		`INSERT INTO seekers (first_name, last_name, email, city, state, job_category, skills,
			languages, certifications, interests, work_setting, travel, preferred_salary,
			experience_json, education_json, is_profile_active)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)
		 RETURNING id`,
		s.FirstName, s.LastName, s.Email, s.City, s.State, s.JobCategory, s.Skills,
		s.Languages, s.Certifications, s.Interests, s.WorkSetting, s.Travel, s.PreferredSalary,
		s.ExperienceJSON, s.EducationJSON, s.IsProfileActive,
	)
	if err := row.Scan(&id); err != nil {
		return 0, err
	}
	return id, nil
}

func (r *PostgresSeekerRepository) ListActive(ctx context.Context, limit int) ([]seeker.Seeker, error) {
	if limit <= 0 {
		limit = 100
	}
	rows, err := r.db.Query(ctx,
		`SELECT `+seekerColumns+` FROM seekers WHERE is_profile_active = TRUE LIMIT $1`,
		limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanSeekers(rows)
}

// ListActiveFiltered executes the structural pre-filter as store predicates.
// Result ordering is unspecified here; the ranker re-establishes it.
func (r *PostgresSeekerRepository) ListActiveFiltered(ctx context.Context, f matching.StructuralFilter) ([]seeker.Seeker, error) {
	var (
		conds = []string{"is_profile_active = TRUE"}
		args  []any
	)

	if len(f.CategoryAnyOf) > 0 {
		args = append(args, f.CategoryAnyOf)
		conds = append(conds, fmt.Sprintf("LOWER(job_category) = ANY($%d)", len(args)))
	}

	if len(f.WorkSettingTokens) > 0 {
		ors := make([]string, 0, len(f.WorkSettingTokens))
		for _, tok := range f.WorkSettingTokens {
			args = append(args, "%"+tok+"%")
			ors = append(ors, fmt.Sprintf("work_setting ILIKE $%d", len(args)))
		}
		conds = append(conds, "("+strings.Join(ors, " OR ")+")")
	}

	if f.TravelEquals != "" {
		args = append(args, f.TravelEquals)
		conds = append(conds, fmt.Sprintf("travel = $%d", len(args)))
	}

	query := `SELECT ` + seekerColumns + ` FROM seekers WHERE ` + strings.Join(conds, " AND ")

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanSeekers(rows)
}

func scanSeekers(rows database.Rows) ([]seeker.Seeker, error) {
	out := make([]seeker.Seeker, 0)
	for rows.Next() {
		var s seeker.Seeker
		if err := rows.Scan(
			&s.ID, &s.FirstName, &s.LastName, &s.Email,
			&s.City, &s.State, &s.JobCategory, &s.Skills,
			&s.Languages, &s.Certifications, &s.Interests,
			&s.WorkSetting, &s.Travel, &s.PreferredSalary,
			&s.ExperienceJSON, &s.EducationJSON, &s.IsProfileActive, &s.CreatedAt,
		); err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
