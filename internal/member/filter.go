package member

import (
	"time"

	"gymdesk/internal/filter"
)

// Filter is the member list's advanced filter. Every field is optional; an
// unset field never excludes a record. Bounds arrive pre-parsed from the
// handler: anything malformed on the wire became nil there.
type Filter struct {
	Query       string
	Statuses    []string
	PlanIDs     []int
	Genders     []string
	JoinedFrom  *time.Time
	JoinedTo    *time.Time
	ExpiresFrom *time.Time
	ExpiresTo   *time.Time
	AgeFrom     *float64
	AgeTo       *float64
}

// Matches evaluates the composite predicate: basic query AND every active
// advanced field. Pure in (record, now).
func (f Filter) Matches(m MemberWithDetails, now time.Time) bool {
	if !filter.BasicMatch(f.Query, m.Profile.FullName, m.Profile.Phone, m.Profile.Email) {
		return false
	}
	if !filter.InSet(m.Status, f.Statuses) {
		return false
	}
	if !f.matchesPlan(m) {
		return false
	}
	if !filter.InSet(m.Profile.Gender, f.Genders) {
		return false
	}
	if !filter.DateRange(m.StartDate, true, f.JoinedFrom, f.JoinedTo) {
		return false
	}
	if !filter.DateRange(m.EndDate, true, f.ExpiresFrom, f.ExpiresTo) {
		return false
	}

	var age float64
	hasAge := m.Profile.DateOfBirth != nil
	if hasAge {
		age = filter.YearsSince(*m.Profile.DateOfBirth, now)
	}
	return filter.NumRange(age, hasAge, f.AgeFrom, f.AgeTo)
}

func (f Filter) matchesPlan(m MemberWithDetails) bool {
	if len(f.PlanIDs) == 0 {
		return true
	}
	if m.PlanID == nil {
		return false
	}
	for _, id := range f.PlanIDs {
		if *m.PlanID == id {
			return true
		}
	}
	return false
}

// Apply filters a snapshot, preserving order.
func (f Filter) Apply(members []MemberWithDetails, now time.Time) []MemberWithDetails {
	out := make([]MemberWithDetails, 0, len(members))
	for _, m := range members {
		if f.Matches(m, now) {
			out = append(out, m)
		}
	}
	return out
}
