package matching

import (
	"strings"
	"time"

	"talent-match/internal/domain/seeker"
)

const presentToken = "present"

var historyDateLayouts = []string{"2006-01", "2006-01-02"}

// TotalExperienceYears sums the elapsed months across every experience
// entry with a parseable start date and converts the total to whole years.
// "Present" or an unparseable end date counts up to now. Overlapping ranges
// are not deduplicated: concurrent roles double-count, matching the
// established product behavior.
func TotalExperienceYears(entries []seeker.ExperienceEntry, now time.Time) int {
	totalMonths := 0
	for _, e := range entries {
		start, ok := parseHistoryDate(e.StartDate)
		if !ok {
			continue
		}
		end, ok := parseHistoryDate(e.EndDate)
		if !ok || strings.EqualFold(strings.TrimSpace(e.EndDate), presentToken) {
			end = now
		}
		if m := monthsBetween(start, end); m > 0 {
			totalMonths += m
		}
	}
	return totalMonths / 12
}

func parseHistoryDate(raw string) (time.Time, bool) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range historyDateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

func monthsBetween(start, end time.Time) int {
	return (end.Year()-start.Year())*12 + int(end.Month()) - int(start.Month())
}
