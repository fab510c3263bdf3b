package filter

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func f64(v float64) *float64    { return &v }
func date(t time.Time) *time.Time { return &t }

func TestBasicMatch(t *testing.T) {
	assert.True(t, BasicMatch("", "anything"))
	assert.True(t, BasicMatch("   ", "anything"))
	assert.True(t, BasicMatch("smith", "John Smith", "9876543210"))
	assert.True(t, BasicMatch("SMITH", "john smith"))
	assert.True(t, BasicMatch("987", "John Smith", "9876543210"))
	assert.False(t, BasicMatch("jones", "John Smith", "9876543210"))
	assert.False(t, BasicMatch("x"))
}

func TestInSet(t *testing.T) {
	assert.True(t, InSet("active", nil))
	assert.True(t, InSet("active", []string{}))
	assert.True(t, InSet("active", []string{"active", "quit"}))
	assert.True(t, InSet("Active", []string{"active"}))
	assert.False(t, InSet("overdue", []string{"active", "quit"}))
}

func TestNumRange(t *testing.T) {
	// no bounds: always true, even for an absent value
	assert.True(t, NumRange(0, false, nil, nil))
	assert.True(t, NumRange(42, true, nil, nil))

	// active bound with absent value excludes the record
	assert.False(t, NumRange(0, false, f64(10), nil))
	assert.False(t, NumRange(0, false, nil, f64(10)))

	assert.True(t, NumRange(10, true, f64(10), f64(20)))
	assert.True(t, NumRange(20, true, f64(10), f64(20)))
	assert.False(t, NumRange(9.99, true, f64(10), f64(20)))
	assert.False(t, NumRange(20.01, true, f64(10), f64(20)))
	assert.True(t, NumRange(5, true, nil, f64(20)))
	assert.True(t, NumRange(500, true, f64(20), nil))
}

func TestNumRangeNaNBoundIsInactive(t *testing.T) {
	// malformed input that leaked past the boundary must not exclude rows
	assert.True(t, NumRange(42, true, f64(math.NaN()), nil))
	assert.True(t, NumRange(42, true, f64(math.NaN()), f64(math.NaN())))
	assert.False(t, NumRange(42, true, f64(math.NaN()), f64(10)))
}

func TestDateRange(t *testing.T) {
	day := time.Date(2026, 3, 15, 13, 45, 0, 0, time.UTC)

	assert.True(t, DateRange(day, true, nil, nil))
	assert.True(t, DateRange(time.Time{}, false, nil, nil))
	assert.False(t, DateRange(time.Time{}, false, date(day), nil))

	// bounds compare at day granularity, inclusive both ends
	from := time.Date(2026, 3, 15, 23, 59, 0, 0, time.UTC)
	assert.True(t, DateRange(day, true, date(from), nil))
	to := time.Date(2026, 3, 15, 0, 0, 1, 0, time.UTC)
	assert.True(t, DateRange(day, true, nil, date(to)))

	before := time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC)
	after := time.Date(2026, 3, 16, 0, 0, 0, 0, time.UTC)
	assert.False(t, DateRange(before, true, date(day), nil))
	assert.False(t, DateRange(after, true, nil, date(day)))
}

func TestYearsSince(t *testing.T) {
	now := time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)
	born := now.AddDate(-30, 0, 0)
	years := YearsSince(born, now)
	assert.InDelta(t, 30, years, 0.05)

	assert.Greater(t, YearsSince(now.Add(-time.Hour), now), 0.0)
	assert.Less(t, YearsSince(now.Add(time.Hour), now), 0.0)
}
