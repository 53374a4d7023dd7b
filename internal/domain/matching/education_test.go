package matching

import (
	"testing"

	"talent-match/internal/domain/position"
	"talent-match/internal/domain/seeker"
)

func TestNormalizeEducationLevel(t *testing.T) {
	cases := map[string]string{
		"Bachelor's":            LevelBachelor,
		"bachelor of science":   LevelBachelor,
		"B.Sc Computer Science": LevelBachelor,
		"Master's":              LevelMaster,
		"MBA":                   LevelMaster,
		"PhD":                   LevelDoctorate,
		"Doctorate":             LevelDoctorate,
		"Associate's":           LevelAssociate,
		"High School":           LevelHighSchool,
		"GED":                   LevelHighSchool,
		"none":                  LevelNone,
		"bootcamp certificate":  "",
		"":                      "",
	}

	for in, want := range cases {
		if got := NormalizeEducationLevel(in); got != want {
			t.Fatalf("NormalizeEducationLevel(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestHighestEducationRank(t *testing.T) {
	entries := []seeker.EducationEntry{
		{Level: "High School", School: "Central High"},
		{Level: "bachelor of arts", School: "State U"},
		{Level: "certificate in welding"},
	}
	if got := HighestEducationRank(entries); got != 2 {
		t.Fatalf("expected rank 2, got %d", got)
	}

	if got := HighestEducationRank(nil); got != 0 {
		t.Fatalf("empty history: expected 0, got %d", got)
	}
}

func TestRequiredEducationRank(t *testing.T) {
	r, ok := RequiredEducationRank("Bachelor's", position.PriorityDealBreaker)
	if !ok || r != 2 {
		t.Fatalf("dealbreaker bachelor: got (%d,%v)", r, ok)
	}

	r, ok = RequiredEducationRank("Bachelor's", position.PriorityFlexible)
	if !ok || r != 1 {
		t.Fatalf("flexible bachelor: got (%d,%v)", r, ok)
	}

	r, ok = RequiredEducationRank("None", position.PriorityFlexible)
	if !ok || r != 0 {
		t.Fatalf("flexible none should floor at 0: got (%d,%v)", r, ok)
	}

	if _, ok = RequiredEducationRank("apprenticeship", position.PriorityDealBreaker); ok {
		t.Fatal("unrecognized level should not produce a requirement")
	}
}
