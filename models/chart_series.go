package models

// ChartPoint is one bar of a weekday chart.
type ChartPoint struct {
	HourLabel string  `json:"hourLabel"`
	Average   float64 `json:"average"`
	HasData   bool    `json:"hasData"`
}

// ChartSeries is what the rendering layer receives per weekday: an
// ordered 24-point series plus the value for the reference average
// line.
type ChartSeries struct {
	Weekday          string       `json:"weekday"`
	EnglishDay       string       `json:"englishDay"`
	Points           []ChartPoint `json:"points"`
	ReferenceAverage float64      `json:"referenceAverage"`
}
