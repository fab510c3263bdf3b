package equipment

import (
	"fmt"
	"strconv"
	"time"

	"gymdesk/internal/export"
)

func ExportColumns() []export.Column[EquipmentView] {
	formatDate := func(t *time.Time) string {
		if t == nil {
			return ""
		}
		return t.Format("2006-01-02")
	}

	return []export.Column[EquipmentView]{
		{Header: "ID", Value: func(e EquipmentView) string { return strconv.Itoa(e.ID) }},
		{Header: "Name", Value: func(e EquipmentView) string { return e.Name }},
		{Header: "Category", Value: func(e EquipmentView) string { return e.Category }},
		{Header: "Serial Number", Value: func(e EquipmentView) string { return e.SerialNumber }},
		{Header: "Status", Value: func(e EquipmentView) string { return e.Status }},
		{Header: "Cost", Value: func(e EquipmentView) string { return fmt.Sprintf("%.2f", e.Cost) }},
		{Header: "Purchased", Value: func(e EquipmentView) string { return formatDate(e.PurchaseDate) }},
		{Header: "Warranty Expires", Value: func(e EquipmentView) string { return formatDate(e.WarrantyExpires) }},
		{Header: "Warranty Status", Value: func(e EquipmentView) string { return string(e.WarrantyStatus) }},
		{Header: "Maintenance Due", Value: func(e EquipmentView) string { return formatDate(e.MaintenanceDue) }},
		{Header: "Maintenance Status", Value: func(e EquipmentView) string { return string(e.MaintenanceStatus) }},
	}
}

func BuildExport(views []EquipmentView, now time.Time) export.Document[EquipmentView] {
	totalCost := 0.0
	for _, v := range views {
		totalCost += v.Cost
	}

	return export.Document[EquipmentView]{
		Title:       "Equipment Report",
		GeneratedAt: now,
		Summary: []export.SummaryItem{
			{Label: "Total Items", Value: strconv.Itoa(len(views))},
			{Label: "Total Cost", Value: fmt.Sprintf("%.2f", totalCost)},
		},
		Columns: ExportColumns(),
		Records: views,
	}
}
