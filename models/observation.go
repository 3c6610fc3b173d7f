package models

// Observation is one validated row of the occupancy feed. Records are
// created once at load time and never mutated afterwards.
type Observation struct {
	Datetime    string `json:"datetime"`
	Date        string `json:"date"`
	Time        string `json:"time"`
	Hour        int    `json:"hour"`
	Weekday     string `json:"weekday"`
	Count       int    `json:"count"`
	StatusLabel string `json:"status_label"`
	StatusCode  int    `json:"status_code"`
	StatusMin   int    `json:"status_min"`
	StatusMax   int    `json:"status_max"`
	RawText     string `json:"raw_text"`
}

// CanonicalWeekdays lists the recognized weekday keys in iteration
// order (Sunday first).
var CanonicalWeekdays = []string{
	"Sunday",
	"Monday",
	"Tuesday",
	"Wednesday",
	"Thursday",
	"Friday",
	"Saturday",
}
