package member

import (
	"fmt"
	"strconv"
	"time"

	"gymdesk/internal/export"
	"gymdesk/internal/status"
)

// ExportColumns is the shared accessor registry for member exports. The
// default export uses all of it; the contact-list export slices out a
// subset by header name.
func ExportColumns(now time.Time) []export.Column[MemberView] {
	return []export.Column[MemberView]{
		{Header: "ID", Value: func(m MemberView) string { return strconv.Itoa(m.ID) }},
		{Header: "Name", Value: func(m MemberView) string { return m.Profile.FullName }},
		{Header: "Phone", Value: func(m MemberView) string { return m.Profile.Phone }},
		{Header: "Email", Value: func(m MemberView) string { return m.Profile.Email }},
		{Header: "Gender", Value: func(m MemberView) string { return m.Profile.Gender }},
		{Header: "Plan", Value: func(m MemberView) string {
			if m.PlanName == nil {
				return ""
			}
			return *m.PlanName
		}},
		{Header: "Status", Value: func(m MemberView) string { return m.Status }},
		{Header: "Joined", Value: func(m MemberView) string { return m.StartDate.Format("2006-01-02") }},
		{Header: "Expires", Value: func(m MemberView) string { return m.EndDate.Format("2006-01-02") }},
		{Header: "Expiry Status", Value: func(m MemberView) string { return string(status.ClassifyExpiry(m.EndDate, now).Label) }},
		{Header: "Total Paid", Value: func(m MemberView) string { return fmt.Sprintf("%.2f", m.TotalPaid) }},
		{Header: "Fully Paid", Value: func(m MemberView) string { return strconv.FormatBool(m.FullyPaid) }},
	}
}

// SelectColumns picks a partial column set by header, preserving registry
// order. Unknown headers are ignored.
func SelectColumns(all []export.Column[MemberView], headers []string) []export.Column[MemberView] {
	if len(headers) == 0 {
		return all
	}

	wanted := make(map[string]bool, len(headers))
	for _, h := range headers {
		wanted[h] = true
	}

	var out []export.Column[MemberView]
	for _, col := range all {
		if wanted[col.Header] {
			out = append(out, col)
		}
	}
	return out
}

// BuildExport assembles the CSV document for an already-filtered view list.
func BuildExport(views []MemberView, headers []string, now time.Time) export.Document[MemberView] {
	active := 0
	for _, v := range views {
		if v.Status == StatusActive {
			active++
		}
	}

	return export.Document[MemberView]{
		Title:       "Member Report",
		GeneratedAt: now,
		Summary: []export.SummaryItem{
			{Label: "Total Members", Value: strconv.Itoa(len(views))},
			{Label: "Active Members", Value: strconv.Itoa(active)},
		},
		Columns: SelectColumns(ExportColumns(now), headers),
		Records: views,
	}
}
