package position

import "strings"

// Preferences holds the hiring constraints for one position. Every
// matchable dimension carries a value and an independent priority.
type Preferences struct {
	PositionID int64

	JobCategory         string
	JobCategoryPriority Priority

	EducationLevel         string
	EducationLevelPriority Priority

	MinYearsExperience      int
	YearsExperiencePriority Priority

	WorkSetting         string
	WorkSettingPriority Priority

	TravelRequirements string
	TravelPriority     Priority

	PreferredSalary string
	SalaryPriority  Priority
}

// Normalize forces the priority of every dimension with an empty value to
// None. An empty constraint must never gate candidates, and the filter
// pipeline trusts this invariant on read, so Normalize runs once at the
// preferences write boundary.
func (p *Preferences) Normalize() {
	if strings.TrimSpace(p.JobCategory) == "" {
		p.JobCategoryPriority = PriorityNone
	}
	if strings.TrimSpace(p.EducationLevel) == "" {
		p.EducationLevelPriority = PriorityNone
	}
	if p.MinYearsExperience <= 0 {
		p.YearsExperiencePriority = PriorityNone
	}
	if strings.TrimSpace(p.WorkSetting) == "" {
		p.WorkSettingPriority = PriorityNone
	}
	if strings.TrimSpace(p.TravelRequirements) == "" {
		p.TravelPriority = PriorityNone
	}
	if strings.TrimSpace(p.PreferredSalary) == "" {
		p.SalaryPriority = PriorityNone
	}
}

func (p Preferences) Validate() error {
	for _, pr := range []Priority{
		p.JobCategoryPriority,
		p.EducationLevelPriority,
		p.YearsExperiencePriority,
		p.WorkSettingPriority,
		p.TravelPriority,
		p.SalaryPriority,
	} {
		if !pr.Valid() {
			return ErrUnknownPriority
		}
	}
	return nil
}
