package payment

import (
	"fmt"
	"strconv"
	"time"

	"gymdesk/internal/export"
	"gymdesk/internal/stats"
)

func ExportColumns() []export.Column[PaymentWithMember] {
	return []export.Column[PaymentWithMember]{
		{Header: "ID", Value: func(p PaymentWithMember) string { return strconv.Itoa(p.ID) }},
		{Header: "Member", Value: func(p PaymentWithMember) string { return p.MemberName }},
		{Header: "Amount", Value: func(p PaymentWithMember) string { return fmt.Sprintf("%.2f", p.Amount) }},
		{Header: "Date", Value: func(p PaymentWithMember) string { return p.PaymentDate.Format("2006-01-02") }},
		{Header: "Mode", Value: func(p PaymentWithMember) string { return p.PaymentMode }},
		{Header: "Notes", Value: func(p PaymentWithMember) string { return p.Notes }},
	}
}

// BuildExport assembles the CSV document for an already-filtered list.
func BuildExport(payments []PaymentWithMember, now time.Time) export.Document[PaymentWithMember] {
	points := make([]stats.Point, len(payments))
	for i, p := range payments {
		points[i] = stats.Point{Date: p.PaymentDate, Amount: p.Amount}
	}

	total := stats.Sum(points)
	thisMonth := stats.Sum(stats.ThisMonth(points, now))

	return export.Document[PaymentWithMember]{
		Title:       "Payment Report",
		GeneratedAt: now,
		Summary: []export.SummaryItem{
			{Label: "Total Collected", Value: fmt.Sprintf("%.2f", total)},
			{Label: "Collected This Month", Value: fmt.Sprintf("%.2f", thisMonth)},
		},
		Columns: ExportColumns(),
		Records: payments,
	}
}
