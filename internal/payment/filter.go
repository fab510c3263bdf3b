package payment

import (
	"strconv"
	"time"

	"gymdesk/internal/filter"
)

// Filter is the payments-screen search state. Like the member filter it runs
// over the in-memory tenant snapshot, all conditions ANDed.
type Filter struct {
	Query      string
	Modes      []string
	AmountFrom *float64
	AmountTo   *float64
	DateFrom   *time.Time
	DateTo     *time.Time
}

func (f Filter) Matches(p PaymentWithMember, now time.Time) bool {
	if !filter.BasicMatch(f.Query,
		p.MemberName,
		strconv.FormatFloat(p.Amount, 'f', -1, 64),
		p.PaymentMode,
	) {
		return false
	}

	if !filter.InSet(p.PaymentMode, f.Modes) {
		return false
	}
	if !filter.NumRange(p.Amount, true, f.AmountFrom, f.AmountTo) {
		return false
	}
	if !filter.DateRange(p.PaymentDate, true, f.DateFrom, f.DateTo) {
		return false
	}

	return true
}

func (f Filter) Apply(payments []PaymentWithMember, now time.Time) []PaymentWithMember {
	out := make([]PaymentWithMember, 0, len(payments))
	for _, p := range payments {
		if f.Matches(p, now) {
			out = append(out, p)
		}
	}
	return out
}
