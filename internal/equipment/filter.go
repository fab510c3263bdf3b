package equipment

import (
	"time"

	"gymdesk/internal/filter"
	"gymdesk/internal/status"
)

// Filter is the equipment-screen search state. Warranty and maintenance
// filters select on the derived labels, not stored columns: the equipment
// page lets staff ask for "everything out of warranty" without the rows
// carrying that flag.
type Filter struct {
	Query             string
	Statuses          []string
	Categories        []string
	WarrantyLabels    []string
	MaintenanceLabels []string
	CostFrom          *float64
	CostTo            *float64
	AgeFrom           *float64
	AgeTo             *float64
}

func (f Filter) Matches(e Equipment, now time.Time) bool {
	if !filter.BasicMatch(f.Query, e.Name, e.Category, e.SerialNumber) {
		return false
	}

	if !filter.InSet(e.Status, f.Statuses) {
		return false
	}
	if !filter.InSet(e.Category, f.Categories) {
		return false
	}

	warranty := status.Classify(e.WarrantyExpires, now, status.WarrantySoonDays)
	if !filter.InSet(string(warranty), f.WarrantyLabels) {
		return false
	}

	maintenance := status.Classify(e.MaintenanceDue, now, status.MaintenanceSoonDays)
	if !filter.InSet(string(maintenance), f.MaintenanceLabels) {
		return false
	}

	if !filter.NumRange(e.Cost, true, f.CostFrom, f.CostTo) {
		return false
	}

	age, ok := 0.0, false
	if e.PurchaseDate != nil {
		age, ok = filter.YearsSince(*e.PurchaseDate, now), true
	}
	if !filter.NumRange(age, ok, f.AgeFrom, f.AgeTo) {
		return false
	}

	return true
}

func (f Filter) Apply(items []Equipment, now time.Time) []Equipment {
	out := make([]Equipment, 0, len(items))
	for _, e := range items {
		if f.Matches(e, now) {
			out = append(out, e)
		}
	}
	return out
}
