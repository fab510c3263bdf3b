// Package installment models the payment schedules members can opt into and
// the settlement rule applied when a payment is recorded against one.
// ApplyPayment is a pure function: it returns a new plan and leaves its
// input untouched, so the caller decides what (and whether) to persist.
package installment

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"time"
)

// Tolerance below which a payment is treated as matching the scheduled
// amount exactly, absorbing floating-point noise from currency math.
const amountTolerance = 0.5

var (
	ErrPlanDisabled = errors.New("installment plan is not enabled")
	ErrNoUnpaid     = errors.New("no unpaid installment to apply payment to")
)

// Installment is one scheduled partial payment.
type Installment struct {
	Number     int        `json:"number"`
	Amount     float64    `json:"amount"`
	DueDate    time.Time  `json:"due_date"`
	Paid       bool       `json:"paid"`
	PaidDate   *time.Time `json:"paid_date,omitempty"`
	PaymentID  *int       `json:"payment_id,omitempty"`
	PaidAmount *float64   `json:"paid_amount,omitempty"`
}

// Plan is the schedule embedded in a member record.
type Plan struct {
	Enabled         bool          `json:"enabled"`
	TotalAmount     float64       `json:"total_amount"`
	NumInstallments int           `json:"num_installments"`
	DownPayment     float64       `json:"down_payment,omitempty"`
	Installments    []Installment `json:"installments"`
}

// ApplyResult reports what a settlement did beyond the returned plan.
type ApplyResult struct {
	SettledNumber  int     `json:"settled_number"`
	AdjustedNumber int     `json:"adjusted_number,omitempty"`
	// Residual is the part of the over/underpayment that had no later
	// installment to flow into: positive for an absorbed overpayment,
	// negative for a forgiven shortfall. The source app dropped this
	// silently; we surface it so callers can at least log it.
	Residual float64 `json:"residual,omitempty"`
}

// NextDue returns the lowest-numbered unpaid installment, or nil when the
// plan is settled.
func NextDue(p Plan) *Installment {
	var next *Installment
	for i := range p.Installments {
		inst := &p.Installments[i]
		if inst.Paid {
			continue
		}
		if next == nil || inst.Number < next.Number {
			next = inst
		}
	}
	if next == nil {
		return nil
	}
	out := *next
	return &out
}

// IsFullyPaid reports whether every installment in the plan is settled.
// An enabled plan with no installments counts as fully paid.
func IsFullyPaid(p Plan) bool {
	for _, inst := range p.Installments {
		if !inst.Paid {
			return false
		}
	}
	return true
}

// FullyPaidByTotal is the non-installment completeness rule: paid-in-total
// against the plan price, overpayment included.
func FullyPaidByTotal(totalPaid, planPrice float64) bool {
	return totalPaid >= planPrice
}

// ApplyPayment settles the next due installment with the tendered amount and
// returns the updated plan. When the tendered amount differs from the
// scheduled one by more than the tolerance, the difference is pushed onto the
// next later unpaid installment: overpayment shrinks it (floored at zero),
// underpayment grows it. With no later installment the difference becomes
// the result's Residual.
func ApplyPayment(p Plan, amount float64, paymentDate time.Time, paymentID int) (Plan, ApplyResult, error) {
	if !p.Enabled {
		return p, ApplyResult{}, ErrPlanDisabled
	}
	if amount <= 0 {
		return p, ApplyResult{}, fmt.Errorf("payment amount must be positive, got %.2f", amount)
	}

	next := NextDue(p)
	if next == nil {
		return p, ApplyResult{}, ErrNoUnpaid
	}

	out := clonePlan(p)
	res := ApplyResult{SettledNumber: next.Number}
	difference := amount - next.Amount

	for i := range out.Installments {
		inst := &out.Installments[i]
		if inst.Number != next.Number {
			continue
		}
		inst.Paid = true
		paidDate := paymentDate
		paidAmount := amount
		id := paymentID
		inst.PaidDate = &paidDate
		inst.PaidAmount = &paidAmount
		inst.PaymentID = &id
		break
	}

	if math.Abs(difference) <= amountTolerance {
		return out, res, nil
	}

	later := nextDueAfter(out, next.Number)
	if later == nil {
		res.Residual = difference
		return out, res, nil
	}

	for i := range out.Installments {
		inst := &out.Installments[i]
		if inst.Number != later.Number {
			continue
		}
		inst.Amount = math.Max(0, inst.Amount-difference)
		res.AdjustedNumber = inst.Number
		break
	}

	return out, res, nil
}

func nextDueAfter(p Plan, number int) *Installment {
	var next *Installment
	for i := range p.Installments {
		inst := &p.Installments[i]
		if inst.Paid || inst.Number <= number {
			continue
		}
		if next == nil || inst.Number < next.Number {
			next = inst
		}
	}
	return next
}

func clonePlan(p Plan) Plan {
	out := p
	out.Installments = make([]Installment, len(p.Installments))
	copy(out.Installments, p.Installments)
	for i := range out.Installments {
		src := p.Installments[i]
		if src.PaidDate != nil {
			d := *src.PaidDate
			out.Installments[i].PaidDate = &d
		}
		if src.PaymentID != nil {
			id := *src.PaymentID
			out.Installments[i].PaymentID = &id
		}
		if src.PaidAmount != nil {
			a := *src.PaidAmount
			out.Installments[i].PaidAmount = &a
		}
	}
	return out
}

// Value / Scan let the plan live in a JSONB column.

func (p Plan) Value() (driver.Value, error) {
	return json.Marshal(p)
}

func (p *Plan) Scan(src interface{}) error {
	switch v := src.(type) {
	case nil:
		*p = Plan{}
		return nil
	case []byte:
		return json.Unmarshal(v, p)
	case string:
		return json.Unmarshal([]byte(v), p)
	default:
		return fmt.Errorf("cannot scan %T into installment.Plan", src)
	}
}
