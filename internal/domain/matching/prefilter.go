package matching

import (
	"strings"

	"talent-match/internal/domain/position"
	"talent-match/internal/domain/seeker"
)

// StructuralFilter carries the predicates a store can evaluate directly:
// equality, containment and substring checks over scalar columns. The store
// stage returns every candidate that could possibly pass; exclusions that
// need decoded history data belong to the post-filter.
type StructuralFilter struct {
	// CategoryAnyOf lists acceptable job categories, lowercased. Empty
	// means the category dimension does not filter.
	CategoryAnyOf []string

	// WorkSettingTokens are matched with substring-contains semantics
	// against the candidate's comma-joined work settings. Substring rather
	// than exact token matching is the established behavior and is kept,
	// over-matches included.
	WorkSettingTokens []string

	// TravelEquals, when non-empty, requires exact equality.
	TravelEquals string
}

// Empty reports whether the filter constrains anything beyond activity.
func (f StructuralFilter) Empty() bool {
	return len(f.CategoryAnyOf) == 0 && len(f.WorkSettingTokens) == 0 && f.TravelEquals == ""
}

// BuildStructuralFilter translates preferences into store predicates.
//
// Category applies under both Flexible and DealBreaker: DealBreaker keeps
// the exact category; Flexible widens to every category in the same bucket,
// falling back to exact match when the category is not in the taxonomy.
// Work setting and travel apply only under DealBreaker. Education, years of
// experience and salary never appear here; they require decoded data.
func BuildStructuralFilter(prefs position.Preferences, tax Taxonomy) StructuralFilter {
	var f StructuralFilter

	if prefs.JobCategoryPriority.Filters() {
		category := strings.ToLower(strings.TrimSpace(prefs.JobCategory))
		if prefs.JobCategoryPriority == position.PriorityFlexible {
			if bucket, ok := tax.Bucket(category); ok {
				f.CategoryAnyOf = tax.BucketMembers(bucket)
			} else {
				f.CategoryAnyOf = []string{category}
			}
		} else {
			f.CategoryAnyOf = []string{category}
		}
	}

	if prefs.WorkSettingPriority == position.PriorityDealBreaker {
		for _, tok := range strings.Split(prefs.WorkSetting, ",") {
			tok = strings.ToLower(strings.TrimSpace(tok))
			if tok != "" {
				f.WorkSettingTokens = append(f.WorkSettingTokens, tok)
			}
		}
	}

	if prefs.TravelPriority == position.PriorityDealBreaker {
		f.TravelEquals = strings.TrimSpace(prefs.TravelRequirements)
	}

	return f
}

// Matches evaluates the filter in memory with the same semantics the store
// applies. It backs unit tests and keeps the store contract explicit.
func (f StructuralFilter) Matches(s seeker.Seeker) bool {
	if !s.IsProfileActive {
		return false
	}

	if len(f.CategoryAnyOf) > 0 {
		category := strings.ToLower(strings.TrimSpace(s.JobCategory))
		found := false
		for _, want := range f.CategoryAnyOf {
			if category == want {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}

	if len(f.WorkSettingTokens) > 0 {
		setting := strings.ToLower(s.WorkSetting)
		found := false
		for _, tok := range f.WorkSettingTokens {
			if strings.Contains(setting, tok) {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}

	if f.TravelEquals != "" && strings.TrimSpace(s.Travel) != f.TravelEquals {
		return false
	}

	return true
}
