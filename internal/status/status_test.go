package status

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

var now = time.Date(2026, 5, 10, 12, 0, 0, 0, time.UTC)

func ptr(t time.Time) *time.Time { return &t }

func TestDaysLeft(t *testing.T) {
	assert.Equal(t, 0, DaysLeft(now, now))
	assert.Equal(t, 0, DaysLeft(now.Add(23*time.Hour), now))
	assert.Equal(t, 1, DaysLeft(now.Add(24*time.Hour), now))
	assert.Equal(t, 30, DaysLeft(now.AddDate(0, 0, 30), now))

	// floor semantics on the past side
	assert.Equal(t, -1, DaysLeft(now.Add(-time.Second), now))
	assert.Equal(t, -1, DaysLeft(now.Add(-24*time.Hour), now))
	assert.Equal(t, -2, DaysLeft(now.Add(-25*time.Hour), now))
}

func TestClassifyWarrantyThresholds(t *testing.T) {
	assert.Equal(t, ExpiringSoon, Classify(ptr(now.AddDate(0, 0, 30)), now, WarrantySoonDays))
	assert.Equal(t, Active, Classify(ptr(now.AddDate(0, 0, 31)), now, WarrantySoonDays))
	assert.Equal(t, Expired, Classify(ptr(now.Add(-time.Second)), now, WarrantySoonDays))
	assert.Equal(t, ExpiringSoon, Classify(ptr(now), now, WarrantySoonDays))
}

func TestClassifyMaintenanceThresholds(t *testing.T) {
	assert.Equal(t, ExpiringSoon, Classify(ptr(now.AddDate(0, 0, 7)), now, MaintenanceSoonDays))
	assert.Equal(t, Active, Classify(ptr(now.AddDate(0, 0, 8)), now, MaintenanceSoonDays))
}

func TestClassifyNilDate(t *testing.T) {
	assert.Equal(t, NotScheduled, Classify(nil, now, WarrantySoonDays))
}

func TestClassifyExpiry(t *testing.T) {
	e := ClassifyExpiry(now.AddDate(0, 0, -5), now)
	assert.Equal(t, Expired, e.Label)
	assert.Equal(t, "expired 5 days ago", e.Message)

	e = ClassifyExpiry(now.AddDate(0, 0, 3), now)
	assert.Equal(t, ExpiringSoon, e.Label)
	assert.Equal(t, "expires in 3 days", e.Message)

	e = ClassifyExpiry(now.Add(time.Hour), now)
	assert.Equal(t, ExpiringSoon, e.Label)
	assert.Equal(t, "expires today", e.Message)

	e = ClassifyExpiry(now.AddDate(0, 0, 60), now)
	assert.Equal(t, Active, e.Label)
	assert.Equal(t, "expires in 60 days", e.Message)
}

// Three members ending today-5, today+3 and today+60: the first two surface
// on the expiring report, the third stays off it.
func TestExpiryReportScenario(t *testing.T) {
	ends := []time.Time{now.AddDate(0, 0, -5), now.AddDate(0, 0, 3), now.AddDate(0, 0, 60)}

	var flagged []Label
	for _, end := range ends {
		e := ClassifyExpiry(end, now)
		if e.Label == Expired || e.Label == ExpiringSoon {
			flagged = append(flagged, e.Label)
		}
	}

	assert.Equal(t, []Label{Expired, ExpiringSoon}, flagged)
}
