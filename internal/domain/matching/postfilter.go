package matching

import (
	"time"

	"go.uber.org/zap"

	"talent-match/internal/domain/position"
	"talent-match/internal/domain/seeker"
)

// Step describes the outcome of one post-filter stage.
type Step struct {
	Name    string
	Initial int
	Dropped int
	Left    int
}

// PostFilter re-examines pre-filtered candidates using dimensions that need
// decoded history data: salary, education, then years of experience, in
// that fixed order. Every per-candidate decision is logged with the values
// compared so a ranking can be audited after the fact.
type PostFilter struct {
	logger *zap.Logger
	now    func() time.Time
}

func NewPostFilter(logger *zap.Logger) *PostFilter {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &PostFilter{logger: logger, now: time.Now}
}

// Run narrows candidates stage by stage and reports per-stage accounting.
func (f *PostFilter) Run(candidates []seeker.Seeker, prefs position.Preferences) ([]seeker.Seeker, []Step) {
	steps := make([]Step, 0, 3)

	candidates, step := f.filterSalary(candidates, prefs)
	steps = append(steps, step)

	candidates, step = f.filterEducation(candidates, prefs)
	steps = append(steps, step)

	candidates, step = f.filterExperience(candidates, prefs)
	steps = append(steps, step)

	for _, s := range steps {
		f.logger.Info("post filter step",
			zap.String("name", s.Name),
			zap.Int("initial", s.Initial),
			zap.Int("dropped", s.Dropped),
			zap.Int("left", s.Left),
		)
	}

	return candidates, steps
}

// filterSalary keeps candidates whose own parsed minimum fits under the
// employer's. A candidate with no parseable figure is open, not excluded.
// Flexible raises the employer's ceiling by a fixed tolerance.
func (f *PostFilter) filterSalary(candidates []seeker.Seeker, prefs position.Preferences) ([]seeker.Seeker, Step) {
	step := Step{Name: "salary", Initial: len(candidates), Left: len(candidates)}
	if !prefs.SalaryPriority.Filters() {
		return candidates, step
	}

	ceiling, ok := ParseSalaryMin(prefs.PreferredSalary)
	if !ok {
		return candidates, step
	}
	if prefs.SalaryPriority == position.PriorityFlexible {
		ceiling += FlexibleSalaryTolerance
	}

	kept := candidates[:0:0]
	for _, c := range candidates {
		candidateMin, parsed := ParseSalaryMin(c.PreferredSalary)
		pass := !parsed || candidateMin <= ceiling

		f.logger.Debug("salary filter",
			zap.Int64("seeker_id", c.ID),
			zap.Int("candidate_min", candidateMin),
			zap.Bool("candidate_parsed", parsed),
			zap.Int("ceiling", ceiling),
			zap.Bool("pass", pass),
		)
		if pass {
			kept = append(kept, c)
		}
	}

	step.Dropped = step.Initial - len(kept)
	step.Left = len(kept)
	return kept, step
}

// filterEducation keeps candidates whose best attained rank reaches the
// required minimum. A candidate with no decodable education fails any
// nonzero requirement.
func (f *PostFilter) filterEducation(candidates []seeker.Seeker, prefs position.Preferences) ([]seeker.Seeker, Step) {
	step := Step{Name: "education", Initial: len(candidates), Left: len(candidates)}
	if !prefs.EducationLevelPriority.Filters() {
		return candidates, step
	}

	required, ok := RequiredEducationRank(prefs.EducationLevel, prefs.EducationLevelPriority)
	if !ok {
		return candidates, step
	}

	kept := candidates[:0:0]
	for _, c := range candidates {
		highest := HighestEducationRank(c.EducationHistory())
		pass := highest >= required

		f.logger.Debug("education filter",
			zap.Int64("seeker_id", c.ID),
			zap.Int("highest_rank", highest),
			zap.Int("required_rank", required),
			zap.Bool("pass", pass),
		)
		if pass {
			kept = append(kept, c)
		}
	}

	step.Dropped = step.Initial - len(kept)
	step.Left = len(kept)
	return kept, step
}

// filterExperience keeps candidates whose summed history meets the minimum
// years. Flexible and DealBreaker currently share the identical threshold;
// the symmetry is deliberate.
func (f *PostFilter) filterExperience(candidates []seeker.Seeker, prefs position.Preferences) ([]seeker.Seeker, Step) {
	step := Step{Name: "experience", Initial: len(candidates), Left: len(candidates)}
	if !prefs.YearsExperiencePriority.Filters() || prefs.MinYearsExperience <= 0 {
		return candidates, step
	}

	now := f.now()
	kept := candidates[:0:0]
	for _, c := range candidates {
		years := TotalExperienceYears(c.ExperienceHistory(), now)
		pass := years >= prefs.MinYearsExperience

		f.logger.Debug("experience filter",
			zap.Int64("seeker_id", c.ID),
			zap.Int("total_years", years),
			zap.Int("required_years", prefs.MinYearsExperience),
			zap.Bool("pass", pass),
		)
		if pass {
			kept = append(kept, c)
		}
	}

	step.Dropped = step.Initial - len(kept)
	step.Left = len(kept)
	return kept, step
}
