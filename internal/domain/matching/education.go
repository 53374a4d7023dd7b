package matching

import (
	"strings"

	"talent-match/internal/domain/position"
	"talent-match/internal/domain/seeker"
)

// Canonical education levels. High School and Associate's intentionally
// share a rank.
const (
	LevelNone       = "None"
	LevelHighSchool = "High School"
	LevelAssociate  = "Associate's"
	LevelBachelor   = "Bachelor's"
	LevelMaster     = "Master's"
	LevelDoctorate  = "Doctorate"
)

var educationRanks = map[string]int{
	LevelNone:       0,
	LevelHighSchool: 1,
	LevelAssociate:  1,
	LevelBachelor:   2,
	LevelMaster:     3,
	LevelDoctorate:  4,
}

// NormalizeEducationLevel maps a free-text level phrase ("b.sc", "bachelor
// of arts", ...) to its canonical label. The same normalizer runs at
// registration and inside the education filter so both sides agree.
// Unrecognized input returns "".
func NormalizeEducationLevel(raw string) string {
	s := strings.ToLower(strings.TrimSpace(raw))
	if s == "" {
		return ""
	}

	switch {
	case strings.Contains(s, "phd"), strings.Contains(s, "ph.d"),
		strings.Contains(s, "doctor"):
		return LevelDoctorate
	case strings.Contains(s, "master"), strings.Contains(s, "mba"),
		strings.Contains(s, "m.sc"), strings.Contains(s, "m.s."),
		strings.Contains(s, "m.a."):
		return LevelMaster
	case strings.Contains(s, "bachelor"), strings.Contains(s, "b.sc"),
		strings.Contains(s, "b.s."), strings.Contains(s, "b.a."),
		strings.Contains(s, "undergraduate"):
		return LevelBachelor
	case strings.Contains(s, "associate"), strings.Contains(s, "a.a."),
		strings.Contains(s, "a.s."):
		return LevelAssociate
	case strings.Contains(s, "high school"), strings.Contains(s, "ged"),
		strings.Contains(s, "secondary"):
		return LevelHighSchool
	case s == "none":
		return LevelNone
	default:
		return ""
	}
}

// EducationRank resolves the rank for a canonical level.
func EducationRank(level string) (int, bool) {
	r, ok := educationRanks[level]
	return r, ok
}

// HighestEducationRank returns the maximum rank across the candidate's
// education history. Entries whose level does not normalize contribute
// nothing; an empty or undecodable history yields 0.
func HighestEducationRank(entries []seeker.EducationEntry) int {
	highest := 0
	for _, e := range entries {
		level := NormalizeEducationLevel(e.Level)
		if level == "" {
			continue
		}
		if r, ok := educationRanks[level]; ok && r > highest {
			highest = r
		}
	}
	return highest
}

// RequiredEducationRank computes the minimum rank a candidate must reach.
// DealBreaker demands the preference's own rank; Flexible drops one rank,
// floored at zero. ok=false means the preference level is unrecognized and
// the dimension cannot filter.
func RequiredEducationRank(level string, pri position.Priority) (int, bool) {
	canonical := NormalizeEducationLevel(level)
	if canonical == "" {
		return 0, false
	}
	rank, ok := educationRanks[canonical]
	if !ok {
		return 0, false
	}
	if pri == position.PriorityFlexible && rank > 0 {
		rank--
	}
	return rank, true
}
