// Package export turns filtered record snapshots into CSV reports. The
// output contract: UTF-8 BOM so spreadsheet tools pick up currency symbols,
// a title/timestamp header block, an optional pre-aggregated summary section,
// the column header row, one escaped row per record and a record-count
// footer. Summary numbers are passed in by the caller, never recomputed here.
package export

import (
	"fmt"
	"strings"
	"time"
)

// BOM is the UTF-8 byte order mark prefixed to every report.
const BOM = "\uFEFF"

// Column binds a header to a named accessor. Entity packages keep a full
// registry and slice it for partial ("advanced") exports.
type Column[T any] struct {
	Header string
	Value  func(T) string
}

// SummaryItem is one pre-aggregated line of the summary block.
type SummaryItem struct {
	Label string
	Value string
}

// Document describes one report.
type Document[T any] struct {
	Title       string
	GeneratedAt time.Time
	Summary     []SummaryItem
	Columns     []Column[T]
	Records     []T
}

// Serialize renders the document to CSV text.
func Serialize[T any](doc Document[T]) string {
	var b strings.Builder
	b.WriteString(BOM)

	writeRow(&b, doc.Title)
	writeRow(&b, "Generated", doc.GeneratedAt.Format("2006-01-02 15:04:05"))
	writeRow(&b)

	if len(doc.Summary) > 0 {
		writeRow(&b, "Summary")
		for _, item := range doc.Summary {
			writeRow(&b, item.Label, item.Value)
		}
		writeRow(&b)
	}

	headers := make([]string, len(doc.Columns))
	for i, col := range doc.Columns {
		headers[i] = col.Header
	}
	writeRow(&b, headers...)

	row := make([]string, len(doc.Columns))
	for _, rec := range doc.Records {
		for i, col := range doc.Columns {
			row[i] = col.Value(rec)
		}
		writeRow(&b, row...)
	}

	writeRow(&b)
	writeRow(&b, "Total Records", fmt.Sprintf("%d", len(doc.Records)))

	return b.String()
}

// Escape quotes a single CSV field when it contains a comma, quote or
// newline, doubling embedded quotes.
func Escape(field string) string {
	if !strings.ContainsAny(field, ",\"\n\r") {
		return field
	}
	return `"` + strings.ReplaceAll(field, `"`, `""`) + `"`
}

func writeRow(b *strings.Builder, fields ...string) {
	for i, f := range fields {
		if i > 0 {
			b.WriteString(",")
		}
		b.WriteString(Escape(f))
	}
	b.WriteString("\r\n")
}

// Filename builds the conventional export filename for an entity.
func Filename(entity string, now time.Time) string {
	return fmt.Sprintf("%s_export_%s.csv", entity, now.Format("2006-01-02"))
}
