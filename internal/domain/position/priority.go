package position

import (
	"errors"
	"strings"
)

// Priority is the tri-state weight an employer assigns to one hiring
// dimension. None ignores the dimension, Flexible applies a softened
// boundary, DealBreaker applies a hard one.
type Priority string

const (
	PriorityNone        Priority = "None"
	PriorityFlexible    Priority = "Flexible"
	PriorityDealBreaker Priority = "DealBreaker"
)

var ErrUnknownPriority = errors.New("unknown priority")

// ParsePriority resolves a submitted priority string. Empty input maps to
// None; anything outside the closed set is rejected so bad values never
// reach the filter pipeline.
func ParsePriority(raw string) (Priority, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "", "none":
		return PriorityNone, nil
	case "flexible":
		return PriorityFlexible, nil
	case "dealbreaker":
		return PriorityDealBreaker, nil
	default:
		return PriorityNone, ErrUnknownPriority
	}
}

// Filters reports whether the priority gates candidates at all.
func (p Priority) Filters() bool {
	return p == PriorityFlexible || p == PriorityDealBreaker
}

func (p Priority) Valid() bool {
	return p == PriorityNone || p == PriorityFlexible || p == PriorityDealBreaker
}
