package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"talent-match/internal/database"
	"talent-match/internal/domain/position"
)

type PreferencesRepository interface {
	FindByPositionID(ctx context.Context, positionID int64) (position.Preferences, error)
	Upsert(ctx context.Context, prefs position.Preferences) error
}

type PostgresPreferencesRepository struct {
	db database.DB
}

func NewPostgresPreferencesRepository(db database.DB) *PostgresPreferencesRepository {
	return &PostgresPreferencesRepository{db: db}
}

func (r *PostgresPreferencesRepository) FindByPositionID(ctx context.Context, positionID int64) (position.Preferences, error) {
	var p position.Preferences
	row := r.db.QueryRow(ctx,
		`SELECT position_id,
			COALESCE(job_category, ''), COALESCE(job_category_priority, 'None'),
			COALESCE(education_level, ''), COALESCE(education_level_priority, 'None'),
			COALESCE(min_years_experience, 0), COALESCE(years_experience_priority, 'None'),
			COALESCE(work_setting, ''), COALESCE(work_setting_priority, 'None'),
			COALESCE(travel_requirements, ''), COALESCE(travel_priority, 'None'),
			COALESCE(preferred_salary, ''), COALESCE(salary_priority, 'None')
		 FROM position_preferences WHERE position_id = $1`,
		positionID,
	)
	if err := row.Scan(
		&p.PositionID,
		&p.JobCategory, &p.JobCategoryPriority,
		&p.EducationLevel, &p.EducationLevelPriority,
		&p.MinYearsExperience, &p.YearsExperiencePriority,
		&p.WorkSetting, &p.WorkSettingPriority,
		&p.TravelRequirements, &p.TravelPriority,
		&p.PreferredSalary, &p.SalaryPriority,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return position.Preferences{}, ErrPreferencesNotFound
		}
		return position.Preferences{}, err
	}
	return p, nil
}

func (r *PostgresPreferencesRepository) Upsert(ctx context.Context, prefs position.Preferences) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO position_preferences (
			position_id,
			job_category, job_category_priority,
			education_level, education_level_priority,
			min_years_experience, years_experience_priority,
			work_setting, work_setting_priority,
			travel_requirements, travel_priority,
			preferred_salary, salary_priority
		 ) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
		 ON CONFLICT (position_id) DO UPDATE SET
			job_category = EXCLUDED.job_category,
			job_category_priority = EXCLUDED.job_category_priority,
			education_level = EXCLUDED.education_level,
			education_level_priority = EXCLUDED.education_level_priority,
			min_years_experience = EXCLUDED.min_years_experience,
			years_experience_priority = EXCLUDED.years_experience_priority,
			work_setting = EXCLUDED.work_setting,
			work_setting_priority = EXCLUDED.work_setting_priority,
			travel_requirements = EXCLUDED.travel_requirements,
			travel_priority = EXCLUDED.travel_priority,
			preferred_salary = EXCLUDED.preferred_salary,
			salary_priority = EXCLUDED.salary_priority,
			updated_at = NOW()`,
		prefs.PositionID,
		prefs.JobCategory, prefs.JobCategoryPriority,
		prefs.EducationLevel, prefs.EducationLevelPriority,
		prefs.MinYearsExperience, prefs.YearsExperiencePriority,
		prefs.WorkSetting, prefs.WorkSettingPriority,
		prefs.TravelRequirements, prefs.TravelPriority,
		prefs.PreferredSalary, prefs.SalaryPriority,
	)
	return err
}
