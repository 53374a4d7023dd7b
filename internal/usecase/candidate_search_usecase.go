package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"talent-match/internal/domain/matching"
	"talent-match/internal/domain/seeker"
	"talent-match/internal/repository"
)

const (
	DefaultSearchLimit = 100
	MaxSearchLimit     = 500

	searchCacheTTL = 60 * time.Second
)

// Principal is the authenticated caller as resolved from the access token.
type Principal struct {
	AccountID  int64
	Role       string
	EmployerID int64
}

type CandidateSearchParams struct {
	// PositionID selects the position to match against; zero means plain
	// active-candidate listing with no filtering or ranking.
	PositionID int64
	Limit      int
}

// CandidateItem is the public shape of a candidate in search results.
type CandidateItem struct {
	SeekerID        int64     `json:"seeker_id"`
	FullName        string    `json:"full_name"`
	City            string    `json:"city"`
	State           string    `json:"state"`
	JobCategory     string    `json:"job_category"`
	Skills          string    `json:"skills"`
	Languages       string    `json:"languages"`
	Certifications  string    `json:"certifications"`
	Interests       string    `json:"interests"`
	WorkSetting     string    `json:"work_setting"`
	Travel          string    `json:"travel"`
	PreferredSalary string    `json:"preferred_salary"`
	CreatedAt       time.Time `json:"created_at"`
}

type CandidateSearchUsecase interface {
	Search(ctx context.Context, principal Principal, params CandidateSearchParams) ([]CandidateItem, error)
}

// CandidateSearch wires the matching pipeline: structural pre-filter pushed
// to the store, semantic post-filter over decoded history, then similarity
// ranking. It is strictly read-only.
type CandidateSearch struct {
	seekers     repository.SeekerRepository
	positions   repository.PositionRepository
	preferences repository.PreferencesRepository
	embeddings  repository.EmbeddingRepository

	taxonomy   matching.Taxonomy
	postFilter *matching.PostFilter

	cache  SearchCache
	logger *zap.Logger
}

func NewCandidateSearchUsecase(
	seekers repository.SeekerRepository,
	positions repository.PositionRepository,
	preferences repository.PreferencesRepository,
	embeddings repository.EmbeddingRepository,
	taxonomy matching.Taxonomy,
	postFilter *matching.PostFilter,
	cache SearchCache,
	logger *zap.Logger,
) *CandidateSearch {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &CandidateSearch{
		seekers:     seekers,
		positions:   positions,
		preferences: preferences,
		embeddings:  embeddings,
		taxonomy:    taxonomy,
		postFilter:  postFilter,
		cache:       cache,
		logger:      logger,
	}
}

func (u *CandidateSearch) Search(ctx context.Context, principal Principal, params CandidateSearchParams) ([]CandidateItem, error) {
	limit := params.Limit
	if limit <= 0 {
		limit = DefaultSearchLimit
	}
	if limit > MaxSearchLimit {
		limit = MaxSearchLimit
	}

	if params.PositionID == 0 {
		candidates, err := u.seekers.ListActive(ctx, limit)
		if err != nil {
			return nil, ErrInternal
		}
		return toCandidateItems(candidates), nil
	}

	pos, err := u.positions.FindByID(ctx, params.PositionID)
	if err != nil {
		if errors.Is(err, repository.ErrPositionNotFound) {
			return nil, ErrPositionNotFound
		}
		return nil, ErrInternal
	}

	// Ownership failure is surfaced, never silently degraded to an empty
	// or unfiltered list.
	if principal.Role != repository.RoleEmployer || principal.EmployerID != pos.EmployerID {
		return nil, ErrForbidden
	}

	cacheKey := fmt.Sprintf("candidates:position:%d:limit:%d", params.PositionID, limit)
	if u.cache != nil {
		var cached []CandidateItem
		if hit, err := u.cache.GetJSON(ctx, cacheKey, &cached); err == nil && hit {
			return cached, nil
		}
	}

	candidates, err := u.matchCandidates(ctx, pos.ID)
	if err != nil {
		return nil, err
	}

	if len(candidates) > limit {
		candidates = candidates[:limit]
	}
	items := toCandidateItems(candidates)

	if u.cache != nil {
		_ = u.cache.SetJSON(ctx, cacheKey, items, searchCacheTTL)
	}
	return items, nil
}

// matchCandidates runs the three pipeline stages for one position. Absent
// preferences skip both filter stages: every active candidate goes straight
// to the ranker.
func (u *CandidateSearch) matchCandidates(ctx context.Context, positionID int64) ([]seeker.Seeker, error) {
	var (
		candidates []seeker.Seeker
		err        error
	)

	prefs, prefsErr := u.preferences.FindByPositionID(ctx, positionID)
	switch {
	case prefsErr == nil:
		filter := matching.BuildStructuralFilter(prefs, u.taxonomy)
		candidates, err = u.seekers.ListActiveFiltered(ctx, filter)
		if err != nil {
			return nil, ErrInternal
		}
		u.logger.Debug("structural pre-filter",
			zap.Int64("position_id", positionID),
			zap.Int("candidates", len(candidates)),
		)

		candidates, _ = u.postFilter.Run(candidates, prefs)
	case errors.Is(prefsErr, repository.ErrPreferencesNotFound):
		candidates, err = u.seekers.ListActiveFiltered(ctx, matching.StructuralFilter{})
		if err != nil {
			return nil, ErrInternal
		}
	default:
		return nil, ErrInternal
	}

	posVec, err := u.embeddings.GetPositionVector(ctx, positionID)
	if err != nil {
		return nil, ErrInternal
	}
	if len(posVec) == 0 {
		u.logger.Debug("position embedding absent, keeping post-filter order",
			zap.Int64("position_id", positionID),
		)
		return candidates, nil
	}

	ids := make([]int64, 0, len(candidates))
	for _, c := range candidates {
		ids = append(ids, c.ID)
	}
	seekerVecs, err := u.embeddings.GetSeekerVectors(ctx, ids)
	if err != nil {
		return nil, ErrInternal
	}

	return matching.RankBySimilarity(candidates, posVec, seekerVecs), nil
}

func toCandidateItems(candidates []seeker.Seeker) []CandidateItem {
	items := make([]CandidateItem, 0, len(candidates))
	for _, c := range candidates {
		items = append(items, CandidateItem{
			SeekerID:        c.ID,
			FullName:        c.FullName(),
			City:            c.City,
			State:           c.State,
			JobCategory:     c.JobCategory,
			Skills:          c.Skills,
			Languages:       c.Languages,
			Certifications:  c.Certifications,
			Interests:       c.Interests,
			WorkSetting:     c.WorkSetting,
			Travel:          c.Travel,
			PreferredSalary: c.PreferredSalary,
			CreatedAt:       c.CreatedAt,
		})
	}
	return items
}
