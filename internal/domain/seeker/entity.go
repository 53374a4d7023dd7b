package seeker

import (
	"encoding/json"
	"time"
)

// Seeker is a candidate profile on the seeker side of the marketplace.
// Skills, Languages, Certifications, Interests and WorkSetting are
// comma-joined option lists. Experience and education history are stored
// text-encoded; decode them only through the typed accessors below.
type Seeker struct {
	ID        int64
	FirstName string
	LastName  string
	Email     string
	City      string
	State     string

	JobCategory     string
	Skills          string
	Languages       string
	Certifications  string
	Interests       string
	WorkSetting     string
	Travel          string
	PreferredSalary string

	ExperienceJSON string
	EducationJSON  string

	IsProfileActive bool
	CreatedAt       time.Time
}

type ExperienceEntry struct {
	Title       string `json:"title"`
	Company     string `json:"company"`
	StartDate   string `json:"startDate"`
	EndDate     string `json:"endDate"`
	Description string `json:"description"`
}

type EducationEntry struct {
	Level     string `json:"level"`
	Degree    string `json:"degree"`
	School    string `json:"school"`
	StartDate string `json:"startDate"`
	EndDate   string `json:"endDate"`
}

// ExperienceHistory decodes the stored experience list. Malformed or empty
// history yields nil; the caller treats that as zero experience.
func (s Seeker) ExperienceHistory() []ExperienceEntry {
	if s.ExperienceJSON == "" {
		return nil
	}
	var entries []ExperienceEntry
	if err := json.Unmarshal([]byte(s.ExperienceJSON), &entries); err != nil {
		return nil
	}
	return entries
}

// EducationHistory decodes the stored education list. Malformed or empty
// history yields nil; the caller treats that as no attained level.
func (s Seeker) EducationHistory() []EducationEntry {
	if s.EducationJSON == "" {
		return nil
	}
	var entries []EducationEntry
	if err := json.Unmarshal([]byte(s.EducationJSON), &entries); err != nil {
		return nil
	}
	return entries
}

func (s Seeker) FullName() string {
	switch {
	case s.FirstName == "":
		return s.LastName
	case s.LastName == "":
		return s.FirstName
	default:
		return s.FirstName + " " + s.LastName
	}
}
