package models

// ExportMetadata describes an export bundle.
type ExportMetadata struct {
	ExportDate   string `json:"exportDate"`
	TotalRecords int    `json:"totalRecords"`
	Version      string `json:"version"`
}

// ExportBundle is the JSON export payload.
type ExportBundle struct {
	Metadata     ExportMetadata   `json:"metadata"`
	OverallStats OverallSummary   `json:"overallStats"`
	WeeklyStats  []WeekdaySummary `json:"weeklyStats"`
	RawData      []Observation    `json:"rawData"`
}
