package util

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"

	"crowd-dashboard/models"
)

const EXPORT_BUNDLE_VERSION = "2.0"

// csvExportHeaders are the columns of the CSV export, in order.
var csvExportHeaders = []string{"date", "time", "count", "weekday", "status_label"}

// BuildExportBundle assembles the JSON export payload from one
// pipeline pass.
func BuildExportBundle(
	records []models.Observation,
	overall models.OverallSummary,
	weekly []models.WeekdaySummary,
) models.ExportBundle {
	return models.ExportBundle{
		Metadata: models.ExportMetadata{
			ExportDate:   time.Now().Format(time.RFC3339),
			TotalRecords: len(records),
			Version:      EXPORT_BUNDLE_VERSION,
		},
		OverallStats: overall,
		WeeklyStats:  weekly,
		RawData:      records,
	}
}

// WriteExportJSON writes the bundle as indented JSON.
func WriteExportJSON(w io.Writer, bundle models.ExportBundle) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(bundle); err != nil {
		return fmt.Errorf("failed to encode export bundle: %w", err)
	}
	return nil
}

// WriteExportCSV re-serializes the records with quoted fields.
func WriteExportCSV(w io.Writer, records []models.Observation) error {
	var sb strings.Builder
	sb.WriteString(strings.Join(csvExportHeaders, ","))
	sb.WriteByte('\n')

	for _, record := range records {
		values := []string{
			quoteCSVField(record.Date),
			quoteCSVField(record.Time),
			quoteCSVField(fmt.Sprintf("%d", record.Count)),
			quoteCSVField(record.Weekday),
			quoteCSVField(record.StatusLabel),
		}
		sb.WriteString(strings.Join(values, ","))
		sb.WriteByte('\n')
	}

	if _, err := io.WriteString(w, sb.String()); err != nil {
		return fmt.Errorf("failed to write csv export: %w", err)
	}
	return nil
}

// ExportFileName builds the dated export file name, e.g.
// crowd-data-export-2024-06-12.json.
func ExportFileName(extension string) string {
	return fmt.Sprintf("crowd-data-export-%s.%s", time.Now().Format("2006-01-02"), extension)
}

// quoteCSVField wraps a value in double quotes, doubling embedded
// quotes.
func quoteCSVField(value string) string {
	return `"` + strings.ReplaceAll(value, `"`, `""`) + `"`
}
