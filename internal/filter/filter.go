// Package filter holds the shared predicate helpers used by every list
// screen. All helpers are pure functions of their arguments; callers inject
// time.Now() so date predicates stay deterministic in tests.
package filter

import (
	"math"
	"strings"
	"time"
)

const daysPerYear = 365.25

// BasicMatch reports whether query is a case-insensitive substring of any of
// the given fields. An empty (or whitespace-only) query matches everything.
func BasicMatch(query string, fields ...string) bool {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return true
	}
	for _, f := range fields {
		if strings.Contains(strings.ToLower(f), q) {
			return true
		}
	}
	return false
}

// InSet reports whether value is one of the selected values. An empty
// selection means the predicate is inactive and matches everything.
// Comparison is case-insensitive to survive mixed status vocabularies.
func InSet(value string, selected []string) bool {
	if len(selected) == 0 {
		return true
	}
	for _, s := range selected {
		if strings.EqualFold(value, s) {
			return true
		}
	}
	return false
}

// NumRange checks from <= value <= to. Either bound may be nil (inactive).
// ok=false marks the source field as absent: with no active bound the
// predicate is vacuously true, with any active bound the record does not
// match. A NaN bound deactivates that bound rather than excluding everything.
func NumRange(value float64, ok bool, from, to *float64) bool {
	if from != nil && math.IsNaN(*from) {
		from = nil
	}
	if to != nil && math.IsNaN(*to) {
		to = nil
	}
	if from == nil && to == nil {
		return true
	}
	if !ok {
		return false
	}
	if from != nil && value < *from {
		return false
	}
	if to != nil && value > *to {
		return false
	}
	return true
}

// DateRange checks from <= value <= to at day granularity, both bounds
// inclusive and optional. Semantics for absent values mirror NumRange.
func DateRange(value time.Time, ok bool, from, to *time.Time) bool {
	if from == nil && to == nil {
		return true
	}
	if !ok {
		return false
	}
	day := truncateToDay(value)
	if from != nil && day.Before(truncateToDay(*from)) {
		return false
	}
	if to != nil && day.After(truncateToDay(*to)) {
		return false
	}
	return true
}

// YearsSince returns the elapsed years between t and now as a fraction,
// using the 365.25-day year the age and equipment-age filters expect.
func YearsSince(t, now time.Time) float64 {
	return now.Sub(t).Hours() / 24 / daysPerYear
}

func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
