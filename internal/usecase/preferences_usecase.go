package usecase

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"talent-match/internal/domain/position"
	"talent-match/internal/repository"
	"talent-match/internal/ws"
)

// PreferencesInput is the raw write payload. Priorities arrive as strings
// and are rejected here, at the write boundary, if outside the closed set.
type PreferencesInput struct {
	JobCategory         string
	JobCategoryPriority string

	EducationLevel         string
	EducationLevelPriority string

	MinYearsExperience      int
	YearsExperiencePriority string

	WorkSetting         string
	WorkSettingPriority string

	TravelRequirements string
	TravelPriority     string

	PreferredSalary string
	SalaryPriority  string
}

type PreferencesUsecase interface {
	Save(ctx context.Context, principal Principal, positionID int64, in PreferencesInput) (position.Preferences, error)
	Get(ctx context.Context, principal Principal, positionID int64) (position.Preferences, error)
}

type PositionPreferences struct {
	positions   repository.PositionRepository
	preferences repository.PreferencesRepository
	cache       SearchCache
	logger      *zap.Logger
}

func NewPreferencesUsecase(
	positions repository.PositionRepository,
	preferences repository.PreferencesRepository,
	cache SearchCache,
	logger *zap.Logger,
) *PositionPreferences {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &PositionPreferences{positions: positions, preferences: preferences, cache: cache, logger: logger}
}

// Save validates, normalizes and persists preferences for a position owned
// by the calling employer. Normalization (empty value forces priority None)
// happens here once; the read side trusts it.
func (u *PositionPreferences) Save(ctx context.Context, principal Principal, positionID int64, in PreferencesInput) (position.Preferences, error) {
	if err := u.authorize(ctx, principal, positionID); err != nil {
		return position.Preferences{}, err
	}

	prefs := position.Preferences{
		PositionID:         positionID,
		JobCategory:        in.JobCategory,
		EducationLevel:     in.EducationLevel,
		MinYearsExperience: in.MinYearsExperience,
		WorkSetting:        in.WorkSetting,
		TravelRequirements: in.TravelRequirements,
		PreferredSalary:    in.PreferredSalary,
	}

	var err error
	if prefs.JobCategoryPriority, err = position.ParsePriority(in.JobCategoryPriority); err != nil {
		return position.Preferences{}, ErrInvalidInput
	}
	if prefs.EducationLevelPriority, err = position.ParsePriority(in.EducationLevelPriority); err != nil {
		return position.Preferences{}, ErrInvalidInput
	}
	if prefs.YearsExperiencePriority, err = position.ParsePriority(in.YearsExperiencePriority); err != nil {
		return position.Preferences{}, ErrInvalidInput
	}
	if prefs.WorkSettingPriority, err = position.ParsePriority(in.WorkSettingPriority); err != nil {
		return position.Preferences{}, ErrInvalidInput
	}
	if prefs.TravelPriority, err = position.ParsePriority(in.TravelPriority); err != nil {
		return position.Preferences{}, ErrInvalidInput
	}
	if prefs.SalaryPriority, err = position.ParsePriority(in.SalaryPriority); err != nil {
		return position.Preferences{}, ErrInvalidInput
	}
	if in.MinYearsExperience < 0 {
		return position.Preferences{}, ErrInvalidInput
	}

	prefs.Normalize()

	if err := u.preferences.Upsert(ctx, prefs); err != nil {
		return position.Preferences{}, ErrInternal
	}

	if u.cache != nil {
		pattern := fmt.Sprintf("candidates:position:%d:*", positionID)
		if err := u.cache.DeleteByPattern(ctx, pattern); err != nil {
			u.logger.Warn("search cache invalidation failed",
				zap.Int64("position_id", positionID),
				zap.Error(err),
			)
		}
	}

	ws.NotifyPreferencesUpdated(positionID)

	return prefs, nil
}

func (u *PositionPreferences) Get(ctx context.Context, principal Principal, positionID int64) (position.Preferences, error) {
	if err := u.authorize(ctx, principal, positionID); err != nil {
		return position.Preferences{}, err
	}

	prefs, err := u.preferences.FindByPositionID(ctx, positionID)
	if err != nil {
		if errors.Is(err, repository.ErrPreferencesNotFound) {
			return position.Preferences{}, ErrPreferencesNotFound
		}
		return position.Preferences{}, ErrInternal
	}
	return prefs, nil
}

func (u *PositionPreferences) authorize(ctx context.Context, principal Principal, positionID int64) error {
	if positionID <= 0 {
		return ErrInvalidInput
	}
	pos, err := u.positions.FindByID(ctx, positionID)
	if err != nil {
		if errors.Is(err, repository.ErrPositionNotFound) {
			return ErrPositionNotFound
		}
		return ErrInternal
	}
	if principal.Role != repository.RoleEmployer || principal.EmployerID != pos.EmployerID {
		return ErrForbidden
	}
	return nil
}
