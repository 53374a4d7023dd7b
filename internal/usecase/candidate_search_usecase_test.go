package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"talent-match/internal/domain/matching"
	"talent-match/internal/domain/position"
	"talent-match/internal/domain/seeker"
	"talent-match/internal/repository"
)

type mockSeekerRepo struct {
	active   []seeker.Seeker
	filtered []seeker.Seeker
	err      error

	lastFilter   matching.StructuralFilter
	filteredCall bool
}

func (m *mockSeekerRepo) Create(context.Context, seeker.Seeker) (int64, error) { return 0, nil }
func (m *mockSeekerRepo) ListActive(context.Context, int) ([]seeker.Seeker, error) {
	return m.active, m.err
}
func (m *mockSeekerRepo) ListActiveFiltered(_ context.Context, f matching.StructuralFilter) ([]seeker.Seeker, error) {
	m.filteredCall = true
	m.lastFilter = f
	return m.filtered, m.err
}

type mockPositionRepo struct {
	pos position.Position
	err error
}

func (m mockPositionRepo) FindByID(context.Context, int64) (position.Position, error) {
	return m.pos, m.err
}

type mockPrefsRepo struct {
	prefs position.Preferences
	err   error

	upserted *position.Preferences
}

func (m *mockPrefsRepo) FindByPositionID(context.Context, int64) (position.Preferences, error) {
	return m.prefs, m.err
}
func (m *mockPrefsRepo) Upsert(_ context.Context, p position.Preferences) error {
	m.upserted = &p
	return nil
}

type mockEmbeddingRepo struct {
	positionVec []float32
	seekerVecs  map[int64][]float32
	err         error
}

func (m mockEmbeddingRepo) GetPositionVector(context.Context, int64) ([]float32, error) {
	return m.positionVec, m.err
}
func (m mockEmbeddingRepo) GetSeekerVectors(context.Context, []int64) (map[int64][]float32, error) {
	return m.seekerVecs, m.err
}

type mockCache struct {
	store map[string][]byte

	deletedPatterns []string
}

func newMockCache() *mockCache { return &mockCache{store: make(map[string][]byte)} }

func (m *mockCache) GetJSON(_ context.Context, key string, out any) (bool, error) {
	raw, ok := m.store[key]
	if !ok {
		return false, nil
	}
	return true, json.Unmarshal(raw, out)
}

func (m *mockCache) SetJSON(_ context.Context, key string, value any, _ time.Duration) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}
	m.store[key] = raw
	return nil
}

func (m *mockCache) DeleteByPattern(_ context.Context, pattern string) error {
	m.deletedPatterns = append(m.deletedPatterns, pattern)
	m.store = make(map[string][]byte)
	return nil
}

func activeSeeker(id int64, category string, createdAt time.Time) seeker.Seeker {
	return seeker.Seeker{
		ID:              id,
		FirstName:       "Sam",
		LastName:        "Lee",
		JobCategory:     category,
		IsProfileActive: true,
		CreatedAt:       createdAt,
	}
}

func newSearchUsecase(
	seekers *mockSeekerRepo,
	positions mockPositionRepo,
	prefs *mockPrefsRepo,
	embeddings mockEmbeddingRepo,
	cache SearchCache,
) *CandidateSearch {
	return NewCandidateSearchUsecase(
		seekers, positions, prefs, embeddings,
		matching.DefaultTaxonomy(), matching.NewPostFilter(nil),
		cache, nil,
	)
}

func employerPrincipal(employerID int64) Principal {
	return Principal{AccountID: 1, Role: repository.RoleEmployer, EmployerID: employerID}
}

func TestCandidateSearch_NoPosition_ListsActive(t *testing.T) {
	now := time.Now().UTC()
	seekers := &mockSeekerRepo{active: []seeker.Seeker{
		activeSeeker(1, "Software Engineering", now),
		activeSeeker(2, "Nursing", now),
	}}
	uc := newSearchUsecase(seekers, mockPositionRepo{}, &mockPrefsRepo{}, mockEmbeddingRepo{}, nil)

	items, err := uc.Search(context.Background(), employerPrincipal(7), CandidateSearchParams{})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(items) != 2 {
		t.Fatalf("expected 2 items, got %d", len(items))
	}
	if seekers.filteredCall {
		t.Fatalf("plain listing must not run the structural filter")
	}
}

func TestCandidateSearch_PositionNotFound(t *testing.T) {
	uc := newSearchUsecase(
		&mockSeekerRepo{},
		mockPositionRepo{err: repository.ErrPositionNotFound},
		&mockPrefsRepo{}, mockEmbeddingRepo{}, nil,
	)

	_, err := uc.Search(context.Background(), employerPrincipal(7), CandidateSearchParams{PositionID: 42})
	if !errors.Is(err, ErrPositionNotFound) {
		t.Fatalf("expected ErrPositionNotFound, got %v", err)
	}
}

func TestCandidateSearch_NonOwnerForbidden(t *testing.T) {
	uc := newSearchUsecase(
		&mockSeekerRepo{},
		mockPositionRepo{pos: position.Position{ID: 42, EmployerID: 9}},
		&mockPrefsRepo{}, mockEmbeddingRepo{}, nil,
	)

	_, err := uc.Search(context.Background(), employerPrincipal(7), CandidateSearchParams{PositionID: 42})
	if !errors.Is(err, ErrForbidden) {
		t.Fatalf("expected ErrForbidden for non-owner, got %v", err)
	}

	_, err = uc.Search(context.Background(), Principal{AccountID: 3, Role: repository.RoleSeeker}, CandidateSearchParams{PositionID: 42})
	if !errors.Is(err, ErrForbidden) {
		t.Fatalf("expected ErrForbidden for seeker caller, got %v", err)
	}
}

func TestCandidateSearch_AbsentPreferencesSkipsFilters(t *testing.T) {
	now := time.Now().UTC()
	seekers := &mockSeekerRepo{filtered: []seeker.Seeker{
		activeSeeker(1, "Software Engineering", now),
		activeSeeker(2, "Nursing", now),
	}}
	uc := newSearchUsecase(
		seekers,
		mockPositionRepo{pos: position.Position{ID: 42, EmployerID: 7}},
		&mockPrefsRepo{err: repository.ErrPreferencesNotFound},
		mockEmbeddingRepo{}, nil,
	)

	items, err := uc.Search(context.Background(), employerPrincipal(7), CandidateSearchParams{PositionID: 42})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(items) != 2 {
		t.Fatalf("expected all active candidates, got %d", len(items))
	}
	if !seekers.lastFilter.Empty() {
		t.Fatalf("absent preferences must produce an empty structural filter")
	}
}

func TestCandidateSearch_PreferencesDriveStructuralFilter(t *testing.T) {
	now := time.Now().UTC()
	seekers := &mockSeekerRepo{filtered: []seeker.Seeker{
		activeSeeker(1, "Software Engineering", now),
	}}
	prefs := position.Preferences{
		PositionID:          42,
		JobCategory:         "Software Engineering",
		JobCategoryPriority: position.PriorityDealBreaker,
	}
	uc := newSearchUsecase(
		seekers,
		mockPositionRepo{pos: position.Position{ID: 42, EmployerID: 7}},
		&mockPrefsRepo{prefs: prefs},
		mockEmbeddingRepo{}, nil,
	)

	items, err := uc.Search(context.Background(), employerPrincipal(7), CandidateSearchParams{PositionID: 42})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(items) != 1 {
		t.Fatalf("expected 1 item, got %d", len(items))
	}
	if len(seekers.lastFilter.CategoryAnyOf) != 1 || seekers.lastFilter.CategoryAnyOf[0] != "software engineering" {
		t.Fatalf("unexpected category filter: %v", seekers.lastFilter.CategoryAnyOf)
	}
}

func TestCandidateSearch_RanksBySimilarity(t *testing.T) {
	now := time.Now().UTC()
	seekers := &mockSeekerRepo{filtered: []seeker.Seeker{
		activeSeeker(1, "Software Engineering", now),
		activeSeeker(2, "Software Engineering", now),
		activeSeeker(3, "Software Engineering", now),
	}}
	embeddings := mockEmbeddingRepo{
		positionVec: []float32{1, 0},
		seekerVecs: map[int64][]float32{
			1: {0, 1},   // orthogonal
			2: {1, 0},   // identical
			3: {1, 0.5}, // in between
		},
	}
	uc := newSearchUsecase(
		seekers,
		mockPositionRepo{pos: position.Position{ID: 42, EmployerID: 7}},
		&mockPrefsRepo{err: repository.ErrPreferencesNotFound},
		embeddings, nil,
	)

	items, err := uc.Search(context.Background(), employerPrincipal(7), CandidateSearchParams{PositionID: 42})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	got := []int64{items[0].SeekerID, items[1].SeekerID, items[2].SeekerID}
	want := []int64{2, 3, 1}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("expected order %v, got %v", want, got)
		}
	}
}

func TestCandidateSearch_LimitClamped(t *testing.T) {
	now := time.Now().UTC()
	var many []seeker.Seeker
	for i := int64(1); i <= 600; i++ {
		many = append(many, activeSeeker(i, "Nursing", now))
	}

	cases := []struct {
		name  string
		limit int
		want  int
	}{
		{"explicit limit truncates", 3, 3},
		{"zero limit defaults", 0, DefaultSearchLimit},
		{"negative limit defaults", -5, DefaultSearchLimit},
		{"oversized limit capped", 9999, MaxSearchLimit},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			uc := newSearchUsecase(
				&mockSeekerRepo{filtered: many},
				mockPositionRepo{pos: position.Position{ID: 42, EmployerID: 7}},
				&mockPrefsRepo{err: repository.ErrPreferencesNotFound},
				mockEmbeddingRepo{}, nil,
			)

			items, err := uc.Search(context.Background(), employerPrincipal(7), CandidateSearchParams{PositionID: 42, Limit: tc.limit})
			if err != nil {
				t.Fatalf("unexpected err: %v", err)
			}
			if len(items) != tc.want {
				t.Fatalf("limit %d: expected %d items, got %d", tc.limit, tc.want, len(items))
			}
		})
	}
}

func TestCandidateSearch_CacheHitSkipsPipeline(t *testing.T) {
	now := time.Now().UTC()
	cache := newMockCache()
	seekers := &mockSeekerRepo{filtered: []seeker.Seeker{activeSeeker(1, "Nursing", now)}}
	uc := newSearchUsecase(
		seekers,
		mockPositionRepo{pos: position.Position{ID: 42, EmployerID: 7}},
		&mockPrefsRepo{err: repository.ErrPreferencesNotFound},
		mockEmbeddingRepo{}, cache,
	)

	params := CandidateSearchParams{PositionID: 42}
	first, err := uc.Search(context.Background(), employerPrincipal(7), params)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}

	seekers.filteredCall = false
	second, err := uc.Search(context.Background(), employerPrincipal(7), params)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if seekers.filteredCall {
		t.Fatalf("cache hit must not re-run the pipeline")
	}
	if len(first) != len(second) || first[0].SeekerID != second[0].SeekerID {
		t.Fatalf("cached result differs from computed result")
	}
}

func TestCandidateSearch_Idempotent(t *testing.T) {
	now := time.Now().UTC()
	seekers := &mockSeekerRepo{filtered: []seeker.Seeker{
		activeSeeker(1, "Nursing", now),
		activeSeeker(2, "Nursing", now),
	}}
	embeddings := mockEmbeddingRepo{
		positionVec: []float32{1, 0},
		seekerVecs:  map[int64][]float32{1: {1, 0}, 2: {0, 1}},
	}
	uc := newSearchUsecase(
		seekers,
		mockPositionRepo{pos: position.Position{ID: 42, EmployerID: 7}},
		&mockPrefsRepo{err: repository.ErrPreferencesNotFound},
		embeddings, nil,
	)

	params := CandidateSearchParams{PositionID: 42}
	a, err := uc.Search(context.Background(), employerPrincipal(7), params)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	b, err := uc.Search(context.Background(), employerPrincipal(7), params)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(a) != len(b) {
		t.Fatalf("result length changed between identical calls")
	}
	for i := range a {
		if a[i].SeekerID != b[i].SeekerID {
			t.Fatalf("result order changed between identical calls")
		}
	}
}
