// Package stats aggregates already-fetched record snapshots into the summary
// numbers the dashboard and list screens show. Everything here is a pure fold
// over in-memory slices; tenancy filtering happened at the repository.
package stats

import (
	"sort"
	"time"
)

// Point is one record reduced to the two things the aggregator cares about:
// when it happened and how much it was worth. Count-only series pass Amount 0.
type Point struct {
	Date   time.Time
	Amount float64
}

// MonthBucket is one calendar month of a trailing series.
type MonthBucket struct {
	Year  int        `json:"year"`
	Month time.Month `json:"month"`
	Label string     `json:"label"`
	Count int        `json:"count"`
	Total float64    `json:"total"`
}

// Entry is one group of a category breakdown.
type Entry struct {
	Key   string  `json:"key"`
	Count int     `json:"count"`
	Total float64 `json:"total"`
}

// UnknownKey collects records whose category field is empty.
const UnknownKey = "Unknown"

func Count(points []Point) int {
	return len(points)
}

func Sum(points []Point) float64 {
	var total float64
	for _, p := range points {
		total += p.Amount
	}
	return total
}

// Average returns the mean amount, or 0 for an empty slice.
func Average(points []Point) float64 {
	if len(points) == 0 {
		return 0
	}
	return Sum(points) / float64(len(points))
}

// PercentageOfTotal returns part/total as a percentage, 0 when total is 0.
func PercentageOfTotal(part, total float64) float64 {
	if total == 0 {
		return 0
	}
	return part / total * 100
}

// Ratio returns num/den, 0 when den is 0. Never NaN, never Inf.
func Ratio(num, den float64) float64 {
	if den == 0 {
		return 0
	}
	return num / den
}

// ChurnRate is the percentage of members who quit out of the total.
func ChurnRate(quit, total int) float64 {
	return PercentageOfTotal(float64(quit), float64(total))
}

// RetentionRate is defined as 100 - churn.
func RetentionRate(quit, total int) float64 {
	return 100 - ChurnRate(quit, total)
}

// MonthStart returns midnight on the first day of t's month.
func MonthStart(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
}

// SameDay reports calendar-day equality, not a 24h rolling window.
func SameDay(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month() && a.Day() == b.Day()
}

// ThisMonth keeps the points dated within [firstDayOfCurrentMonth, now].
func ThisMonth(points []Point, now time.Time) []Point {
	start := MonthStart(now)
	var out []Point
	for _, p := range points {
		if !p.Date.Before(start) && !p.Date.After(now) {
			out = append(out, p)
		}
	}
	return out
}

// MonthlySeries buckets points into the trailing `months` calendar months,
// oldest first and the current month last. Month boundaries come from the
// local calendar of now, not rolling 30-day windows. Points outside the
// window are dropped.
func MonthlySeries(points []Point, months int, now time.Time) []MonthBucket {
	if months <= 0 {
		return nil
	}

	buckets := make([]MonthBucket, months)
	for i := 0; i < months; i++ {
		start := MonthStart(now).AddDate(0, i-(months-1), 0)
		buckets[i] = MonthBucket{
			Year:  start.Year(),
			Month: start.Month(),
			Label: start.Format("Jan 2006"),
		}
	}

	for _, p := range points {
		start := MonthStart(p.Date)
		for i := range buckets {
			if buckets[i].Year == start.Year() && buckets[i].Month == start.Month() {
				buckets[i].Count++
				buckets[i].Total += p.Amount
				break
			}
		}
	}

	return buckets
}

// Keyed is a record reduced to its category and amount for Breakdown.
type Keyed struct {
	Key    string
	Amount float64
}

// Breakdown groups records by category, counting and summing per group,
// sorted by total descending (count breaks ties). Records with an empty
// category land in the UnknownKey group instead of being dropped.
func Breakdown(items []Keyed) []Entry {
	byKey := make(map[string]*Entry)
	order := make([]string, 0)
	for _, it := range items {
		key := it.Key
		if key == "" {
			key = UnknownKey
		}
		e, ok := byKey[key]
		if !ok {
			e = &Entry{Key: key}
			byKey[key] = e
			order = append(order, key)
		}
		e.Count++
		e.Total += it.Amount
	}

	out := make([]Entry, 0, len(order))
	for _, key := range order {
		out = append(out, *byKey[key])
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Total != out[j].Total {
			return out[i].Total > out[j].Total
		}
		return out[i].Count > out[j].Count
	})
	return out
}
