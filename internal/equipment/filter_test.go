package equipment

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"gymdesk/internal/status"
)

var testNow = time.Date(2026, 6, 1, 12, 0, 0, 0, time.UTC)

func testEquipment(name, category string) Equipment {
	return Equipment{Name: name, Category: category, Status: StatusActive}
}

func TestEmptyFilterMatchesEverything(t *testing.T) {
	assert.True(t, Filter{}.Matches(testEquipment("Treadmill T-400", "cardio"), testNow))
	assert.True(t, Filter{}.Matches(Equipment{}, testNow))
}

func TestBasicQuery(t *testing.T) {
	e := testEquipment("Treadmill T-400", "cardio")
	e.SerialNumber = "SN-88271"

	assert.True(t, Filter{Query: "tread"}.Matches(e, testNow))
	assert.True(t, Filter{Query: "88271"}.Matches(e, testNow))
	assert.False(t, Filter{Query: "rower"}.Matches(e, testNow))
}

func TestDerivedWarrantyFilter(t *testing.T) {
	expired := testEquipment("Old treadmill", "cardio")
	past := testNow.AddDate(0, 0, -10)
	expired.WarrantyExpires = &past

	soon := testEquipment("Rower", "cardio")
	in20 := testNow.AddDate(0, 0, 20)
	soon.WarrantyExpires = &in20

	covered := testEquipment("New bike", "cardio")
	in90 := testNow.AddDate(0, 0, 90)
	covered.WarrantyExpires = &in90

	noWarranty := testEquipment("Bench", "strength")

	f := Filter{WarrantyLabels: []string{string(status.Expired), string(status.ExpiringSoon)}}
	assert.True(t, f.Matches(expired, testNow))
	assert.True(t, f.Matches(soon, testNow))
	assert.False(t, f.Matches(covered, testNow))
	assert.False(t, f.Matches(noWarranty, testNow))

	// NotScheduled is selectable too
	assert.True(t, Filter{WarrantyLabels: []string{string(status.NotScheduled)}}.Matches(noWarranty, testNow))
}

func TestDerivedMaintenanceFilter(t *testing.T) {
	due := testEquipment("Treadmill", "cardio")
	in5 := testNow.AddDate(0, 0, 5)
	due.MaintenanceDue = &in5

	later := testEquipment("Rower", "cardio")
	in30 := testNow.AddDate(0, 0, 30)
	later.MaintenanceDue = &in30

	// maintenance window is 7 days, tighter than warranty's 30
	f := Filter{MaintenanceLabels: []string{string(status.ExpiringSoon)}}
	assert.True(t, f.Matches(due, testNow))
	assert.False(t, f.Matches(later, testNow))
}

func TestAgeRangeFilter(t *testing.T) {
	e := testEquipment("Treadmill", "cardio")
	bought := testNow.AddDate(-3, 0, 0)
	e.PurchaseDate = &bought

	lo, hi := 2.0, 4.0
	assert.True(t, Filter{AgeFrom: &lo, AgeTo: &hi}.Matches(e, testNow))

	hi = 2.5
	assert.False(t, Filter{AgeFrom: &lo, AgeTo: &hi}.Matches(e, testNow))

	// no purchase date on file: excluded only when a bound is active
	e.PurchaseDate = nil
	assert.False(t, Filter{AgeFrom: &lo}.Matches(e, testNow))
	assert.True(t, Filter{}.Matches(e, testNow))
}

func TestCostRangeFilter(t *testing.T) {
	e := testEquipment("Treadmill", "cardio")
	e.Cost = 85000

	lo, hi := 50000.0, 100000.0
	assert.True(t, Filter{CostFrom: &lo, CostTo: &hi}.Matches(e, testNow))

	hi = 60000
	assert.False(t, Filter{CostFrom: &lo, CostTo: &hi}.Matches(e, testNow))
}

func TestStatusAndCategoryFilters(t *testing.T) {
	e := testEquipment("Treadmill", "cardio")
	e.Status = StatusBroken

	assert.True(t, Filter{Statuses: []string{StatusBroken}}.Matches(e, testNow))
	assert.False(t, Filter{Statuses: []string{StatusActive}}.Matches(e, testNow))
	assert.True(t, Filter{Categories: []string{"cardio"}}.Matches(e, testNow))
	assert.False(t, Filter{Categories: []string{"strength"}}.Matches(e, testNow))
}
