package expense

import (
	"fmt"
	"strconv"
	"time"

	"gymdesk/internal/export"
)

func ExportColumns() []export.Column[Expense] {
	return []export.Column[Expense]{
		{Header: "ID", Value: func(e Expense) string { return strconv.Itoa(e.ID) }},
		{Header: "Description", Value: func(e Expense) string { return e.Description }},
		{Header: "Category", Value: func(e Expense) string { return e.Category }},
		{Header: "Amount", Value: func(e Expense) string { return fmt.Sprintf("%.2f", e.Amount) }},
		{Header: "Date", Value: func(e Expense) string { return e.ExpenseDate.Format("2006-01-02") }},
		{Header: "Notes", Value: func(e Expense) string { return e.Notes }},
	}
}

func BuildExport(expenses []Expense, now time.Time) export.Document[Expense] {
	total := 0.0
	for _, e := range expenses {
		total += e.Amount
	}

	return export.Document[Expense]{
		Title:       "Expense Report",
		GeneratedAt: now,
		Summary: []export.SummaryItem{
			{Label: "Total Expenses", Value: strconv.Itoa(len(expenses))},
			{Label: "Total Spend", Value: fmt.Sprintf("%.2f", total)},
		},
		Columns: ExportColumns(),
		Records: expenses,
	}
}
