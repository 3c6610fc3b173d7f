package models

import "time"

// DashboardReport bundles one full pipeline pass for a filter window.
type DashboardReport struct {
	GeneratedAt time.Time        `json:"generatedAt"`
	Filter      FilterSpec       `json:"filter"`
	Weekly      []WeekdaySummary `json:"weekly"`
	Overall     OverallSummary   `json:"overall"`
	Insights    []string         `json:"insights"`
}
