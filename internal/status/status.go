// Package status derives display labels from date thresholds. The stored
// record status (active/overdue/quit and friends) is a separate concept;
// these labels are computed per render and never persisted.
package status

import (
	"fmt"
	"time"
)

// Label is a derived display status.
type Label string

const (
	Expired      Label = "Expired"
	ExpiringSoon Label = "ExpiringSoon"
	Active       Label = "Active"
	NotScheduled Label = "NotScheduled"
)

// Soon-window thresholds per entity, in days. These differ on purpose:
// warranty claims need more lead time than a maintenance visit.
const (
	WarrantySoonDays    = 30
	MaintenanceSoonDays = 7
	MembershipSoonDays  = 7
)

// DaysLeft is the whole number of days between now and target, negative when
// target is in the past. floor semantics: one second past the deadline is
// already day -1.
func DaysLeft(target, now time.Time) int {
	diff := target.Sub(now)
	days := int(diff / (24 * time.Hour))
	if diff < 0 && diff%(24*time.Hour) != 0 {
		days--
	}
	return days
}

// Classify maps an optional target date onto a label. A nil target means the
// date was never set (no warranty on file, no maintenance scheduled).
func Classify(target *time.Time, now time.Time, soonWithinDays int) Label {
	if target == nil {
		return NotScheduled
	}
	days := DaysLeft(*target, now)
	switch {
	case days < 0:
		return Expired
	case days <= soonWithinDays:
		return ExpiringSoon
	default:
		return Active
	}
}

// Expiry is the membership-expiry classification with the human wording the
// member screens show next to the badge.
type Expiry struct {
	Label    Label  `json:"label"`
	DaysLeft int    `json:"days_left"`
	Message  string `json:"message"`
}

// ClassifyExpiry runs the membership end-date rules and phrases the result.
func ClassifyExpiry(endDate time.Time, now time.Time) Expiry {
	days := DaysLeft(endDate, now)
	e := Expiry{DaysLeft: days}
	switch {
	case days < 0:
		e.Label = Expired
		e.Message = fmt.Sprintf("expired %d days ago", -days)
	case days <= MembershipSoonDays:
		e.Label = ExpiringSoon
		if days == 0 {
			e.Message = "expires today"
		} else {
			e.Message = fmt.Sprintf("expires in %d days", days)
		}
	default:
		e.Label = Active
		e.Message = fmt.Sprintf("expires in %d days", days)
	}
	return e
}
