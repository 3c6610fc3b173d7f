package models

// CrowdDistribution holds the share of observations falling into each
// status tier, as integer percentages of the classified total.
type CrowdDistribution struct {
	Empty    int `json:"empty"`
	Moderate int `json:"moderate"`
	Busy     int `json:"busy"`
}

// OverallSummary is the cross-weekday rollup. PeakHour/QuietHour are
// computed over all weekdays and only consider hours with at least
// two samples.
type OverallSummary struct {
	TotalEntries      int               `json:"totalEntries"`
	AverageCrowdLevel float64           `json:"averageCrowdLevel"`
	PeakWeekday       string            `json:"peakWeekday"`
	QuietWeekday      string            `json:"quietWeekday"`
	PeakHour          int               `json:"peakHour"`
	QuietHour         int               `json:"quietHour"`
	CrowdDistribution CrowdDistribution `json:"crowdDistribution"`
}
