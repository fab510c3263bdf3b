// Package analytics assembles the dashboard numbers from the per-entity
// services. Everything is computed from tenant snapshots; nothing here
// writes.
package analytics

import (
	"context"
	"time"

	"gymdesk/internal/equipment"
	"gymdesk/internal/expense"
	"gymdesk/internal/member"
	"gymdesk/internal/payment"
	"gymdesk/internal/stats"
	"gymdesk/internal/status"
)

// MemberCounts is the headline member block of the dashboard.
type MemberCounts struct {
	Total        int `json:"total"`
	Active       int `json:"active"`
	Overdue      int `json:"overdue"`
	Quit         int `json:"quit"`
	NewThisMonth int `json:"new_this_month"`
	ExpiringSoon int `json:"expiring_soon"`
}

// MoneyThisMonth is revenue or spend summarized for the current month.
type MoneyThisMonth struct {
	ThisMonth float64             `json:"this_month"`
	AllTime   float64             `json:"all_time"`
	Monthly   []stats.MonthBucket `json:"monthly"`
}

type Dashboard struct {
	Members             MemberCounts        `json:"members"`
	ChurnRate           float64             `json:"churn_rate"`
	RetentionRate       float64             `json:"retention_rate"`
	CollectionRate      float64             `json:"collection_rate"`
	Revenue             MoneyThisMonth      `json:"revenue"`
	Expenses            MoneyThisMonth      `json:"expenses"`
	ProfitThisMonth     float64             `json:"profit_this_month"`
	ProfitMargin        float64             `json:"profit_margin"`
	NewMemberSeries     []stats.MonthBucket `json:"new_member_series"`
	ExpenseBreakdown    []stats.Entry       `json:"expense_breakdown"`
	EquipmentByStatus   []stats.Entry       `json:"equipment_by_status"`
	EquipmentByCategory []stats.Entry       `json:"equipment_by_category"`
}

type Service interface {
	Dashboard(ctx context.Context, gymID, months int, now time.Time) (*Dashboard, error)
}

type service struct {
	members   member.Service
	payments  payment.Service
	expenses  expense.Service
	equipment equipment.Service
}

func NewService(members member.Service, payments payment.Service, expenses expense.Service, eq equipment.Service) Service {
	return &service{members: members, payments: payments, expenses: expenses, equipment: eq}
}

func (s *service) Dashboard(ctx context.Context, gymID, months int, now time.Time) (*Dashboard, error) {
	memberViews, _, err := s.members.List(ctx, gymID, member.Filter{}, now)
	if err != nil {
		return nil, err
	}

	payments, _, err := s.payments.List(ctx, gymID, payment.Filter{}, now)
	if err != nil {
		return nil, err
	}

	expenses, _, err := s.expenses.List(ctx, gymID, expense.Filter{}, now)
	if err != nil {
		return nil, err
	}

	expenseBreakdown, err := s.expenses.CategoryBreakdown(ctx, gymID)
	if err != nil {
		return nil, err
	}

	equipmentByStatus, err := s.equipment.StatusBreakdown(ctx, gymID)
	if err != nil {
		return nil, err
	}

	equipmentByCategory, err := s.equipment.CategoryBreakdown(ctx, gymID)
	if err != nil {
		return nil, err
	}

	d := &Dashboard{
		Members:             memberCounts(memberViews, now),
		ExpenseBreakdown:    expenseBreakdown,
		EquipmentByStatus:   equipmentByStatus,
		EquipmentByCategory: equipmentByCategory,
	}

	d.ChurnRate = stats.ChurnRate(d.Members.Quit, d.Members.Total)
	d.RetentionRate = stats.RetentionRate(d.Members.Quit, d.Members.Total)
	d.CollectionRate = collectionRate(memberViews)

	revenuePoints := make([]stats.Point, len(payments))
	for i, p := range payments {
		revenuePoints[i] = stats.Point{Date: p.PaymentDate, Amount: p.Amount}
	}
	expensePoints := make([]stats.Point, len(expenses))
	for i, e := range expenses {
		expensePoints[i] = stats.Point{Date: e.ExpenseDate, Amount: e.Amount}
	}

	d.Revenue = MoneyThisMonth{
		ThisMonth: stats.Sum(stats.ThisMonth(revenuePoints, now)),
		AllTime:   stats.Sum(revenuePoints),
		Monthly:   stats.MonthlySeries(revenuePoints, months, now),
	}
	d.Expenses = MoneyThisMonth{
		ThisMonth: stats.Sum(stats.ThisMonth(expensePoints, now)),
		AllTime:   stats.Sum(expensePoints),
		Monthly:   stats.MonthlySeries(expensePoints, months, now),
	}

	d.ProfitThisMonth = d.Revenue.ThisMonth - d.Expenses.ThisMonth
	d.ProfitMargin = stats.PercentageOfTotal(d.ProfitThisMonth, d.Revenue.ThisMonth)

	joinPoints := make([]stats.Point, len(memberViews))
	for i, m := range memberViews {
		joinPoints[i] = stats.Point{Date: m.StartDate}
	}
	d.NewMemberSeries = stats.MonthlySeries(joinPoints, months, now)

	return d, nil
}

func memberCounts(views []member.MemberView, now time.Time) MemberCounts {
	c := MemberCounts{Total: len(views)}
	monthStart := stats.MonthStart(now)

	for _, v := range views {
		switch v.Status {
		case member.StatusActive:
			c.Active++
		case member.StatusOverdue:
			c.Overdue++
		case member.StatusQuit:
			c.Quit++
		}

		if !v.StartDate.Before(monthStart) && !v.StartDate.After(now) {
			c.NewThisMonth++
		}
		if v.Status != member.StatusQuit && v.Expiry.Label == status.ExpiringSoon {
			c.ExpiringSoon++
		}
	}

	return c
}

// collectionRate is the paid share of what the member base owes: total paid
// over total owed, quit members excluded. A member on an enabled installment
// schedule owes the schedule's total (they may have no plan at all); everyone
// else owes their plan price. 0 when nothing is owed.
func collectionRate(views []member.MemberView) float64 {
	var owed, paid float64
	for _, v := range views {
		if v.Status == member.StatusQuit {
			continue
		}
		if v.InstallmentPlan.Enabled {
			owed += v.InstallmentPlan.TotalAmount
		} else {
			owed += v.PlanPrice
		}
		paid += v.TotalPaid
	}

	rate := stats.PercentageOfTotal(paid, owed)
	if rate > 100 {
		rate = 100
	}
	return rate
}
