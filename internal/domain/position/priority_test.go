package position

import (
	"errors"
	"testing"
)

func TestParsePriority(t *testing.T) {
	cases := []struct {
		in      string
		want    Priority
		wantErr bool
	}{
		{"None", PriorityNone, false},
		{"none", PriorityNone, false},
		{"", PriorityNone, false},
		{"  Flexible ", PriorityFlexible, false},
		{"DealBreaker", PriorityDealBreaker, false},
		{"dealbreaker", PriorityDealBreaker, false},
		{"hard", PriorityNone, true},
		{"Maybe", PriorityNone, true},
	}

	for _, tc := range cases {
		got, err := ParsePriority(tc.in)
		if tc.wantErr {
			if !errors.Is(err, ErrUnknownPriority) {
				t.Fatalf("ParsePriority(%q): expected ErrUnknownPriority, got %v", tc.in, err)
			}
			continue
		}
		if err != nil {
			t.Fatalf("ParsePriority(%q): unexpected err %v", tc.in, err)
		}
		if got != tc.want {
			t.Fatalf("ParsePriority(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestNormalizeEmptyValuesForceNone(t *testing.T) {
	p := Preferences{
		JobCategory:             "",
		JobCategoryPriority:     PriorityDealBreaker,
		EducationLevel:          "  ",
		EducationLevelPriority:  PriorityFlexible,
		MinYearsExperience:      0,
		YearsExperiencePriority: PriorityDealBreaker,
		WorkSetting:             "",
		WorkSettingPriority:     PriorityDealBreaker,
		TravelRequirements:      "",
		TravelPriority:          PriorityFlexible,
		PreferredSalary:         "",
		SalaryPriority:          PriorityDealBreaker,
	}

	p.Normalize()

	for name, pr := range map[string]Priority{
		"job_category":     p.JobCategoryPriority,
		"education_level":  p.EducationLevelPriority,
		"years_experience": p.YearsExperiencePriority,
		"work_setting":     p.WorkSettingPriority,
		"travel":           p.TravelPriority,
		"salary":           p.SalaryPriority,
	} {
		if pr != PriorityNone {
			t.Fatalf("%s: expected None after normalize, got %q", name, pr)
		}
	}
}

func TestNormalizeKeepsNonEmptyDimensions(t *testing.T) {
	p := Preferences{
		JobCategory:             "Software Engineering",
		JobCategoryPriority:     PriorityDealBreaker,
		MinYearsExperience:      3,
		YearsExperiencePriority: PriorityFlexible,
	}

	p.Normalize()

	if p.JobCategoryPriority != PriorityDealBreaker {
		t.Fatalf("job category priority changed: %q", p.JobCategoryPriority)
	}
	if p.YearsExperiencePriority != PriorityFlexible {
		t.Fatalf("years priority changed: %q", p.YearsExperiencePriority)
	}
}
