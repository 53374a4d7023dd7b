package seeker

import "testing"

func TestExperienceHistoryDecodes(t *testing.T) {
	s := Seeker{ExperienceJSON: `[{"title":"Engineer","company":"Acme","startDate":"2020-01","endDate":"Present","description":"backend work"}]`}

	entries := s.ExperienceHistory()
	if len(entries) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(entries))
	}
	if entries[0].Title != "Engineer" || entries[0].EndDate != "Present" {
		t.Fatalf("unexpected entry: %+v", entries[0])
	}
}

func TestHistoryAccessorsRecoverFromMalformedJSON(t *testing.T) {
	s := Seeker{
		ExperienceJSON: `{"not":"a list"`,
		EducationJSON:  `garbage`,
	}

	if got := s.ExperienceHistory(); got != nil {
		t.Fatalf("malformed experience should decode to nil, got %v", got)
	}
	if got := s.EducationHistory(); got != nil {
		t.Fatalf("malformed education should decode to nil, got %v", got)
	}
}

func TestHistoryAccessorsEmpty(t *testing.T) {
	var s Seeker
	if s.ExperienceHistory() != nil || s.EducationHistory() != nil {
		t.Fatal("empty history fields should decode to nil")
	}
}

func TestFullName(t *testing.T) {
	if got := (Seeker{FirstName: "Ada", LastName: "Lovelace"}).FullName(); got != "Ada Lovelace" {
		t.Fatalf("got %q", got)
	}
	if got := (Seeker{LastName: "Lovelace"}).FullName(); got != "Lovelace" {
		t.Fatalf("got %q", got)
	}
}
