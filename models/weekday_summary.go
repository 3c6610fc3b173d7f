package models

// WeekdaySummary is one weekday's full day profile. HourlyData always
// holds 24 buckets in hour order.
type WeekdaySummary struct {
	Weekday       string       `json:"weekday"`
	EnglishDay    string       `json:"englishDay"`
	TotalEntries  int          `json:"totalEntries"`
	AvgCrowdLevel float64      `json:"avgCrowdLevel"`
	PeakHour      int          `json:"peakHour"`
	PeakCount     float64      `json:"peakCount"`
	QuietHour     int          `json:"quietHour"`
	QuietCount    float64      `json:"quietCount"`
	HourlyData    []HourBucket `json:"hourlyData"`
}
