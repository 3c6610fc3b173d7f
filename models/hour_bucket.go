package models

// HourBucket aggregates every observation sharing a weekday and an
// hour of day. Buckets with no samples carry zero values rather than
// being omitted.
type HourBucket struct {
	Weekday           string  `json:"weekday"`
	Hour              int     `json:"hour"`
	SampleCount       int     `json:"sampleCount"`
	Average           float64 `json:"average"`
	Min               int     `json:"min"`
	Max               int     `json:"max"`
	StandardDeviation float64 `json:"standardDeviation"`
}
