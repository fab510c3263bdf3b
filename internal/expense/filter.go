package expense

import (
	"strconv"
	"time"

	"gymdesk/internal/filter"
)

type Filter struct {
	Query      string
	Categories []string
	AmountFrom *float64
	AmountTo   *float64
	DateFrom   *time.Time
	DateTo     *time.Time
}

func (f Filter) Matches(e Expense, now time.Time) bool {
	if !filter.BasicMatch(f.Query,
		e.Description,
		e.Category,
		strconv.FormatFloat(e.Amount, 'f', -1, 64),
	) {
		return false
	}

	if !filter.InSet(e.Category, f.Categories) {
		return false
	}
	if !filter.NumRange(e.Amount, true, f.AmountFrom, f.AmountTo) {
		return false
	}
	if !filter.DateRange(e.ExpenseDate, true, f.DateFrom, f.DateTo) {
		return false
	}

	return true
}

func (f Filter) Apply(expenses []Expense, now time.Time) []Expense {
	out := make([]Expense, 0, len(expenses))
	for _, e := range expenses {
		if f.Matches(e, now) {
			out = append(out, e)
		}
	}
	return out
}
