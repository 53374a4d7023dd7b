package matching

import (
	"regexp"
	"strconv"
	"strings"
)

// Tolerance added to the employer's minimum when the salary dimension is
// Flexible rather than a DealBreaker.
const FlexibleSalaryTolerance = 30000

var salaryDigits = regexp.MustCompile(`\d{1,3}(?:,\d{3})+|\d+`)

// ParseSalaryMin extracts the first run of digits (optionally comma-grouped,
// optionally preceded by a dollar sign) from a free-text salary preference
// and returns it as the minimum figure. Strings with no digit run return
// ok=false, which the filters treat as "open to anything". Currency and
// period words around the number are deliberately ignored; callers only see
// the parsed optional value.
func ParseSalaryMin(raw string) (int, bool) {
	m := salaryDigits.FindString(raw)
	if m == "" {
		return 0, false
	}
	n, err := strconv.Atoi(strings.ReplaceAll(m, ",", ""))
	if err != nil {
		return 0, false
	}
	return n, true
}
