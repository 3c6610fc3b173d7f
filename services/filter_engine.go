package services

import (
	"time"

	"crowd-dashboard/models"
)

// datetimeLayouts are tried in order when parsing a record's datetime.
var datetimeLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02T15:04",
}

// presetPeriodDays maps preset periods to their lookback window.
var presetPeriodDays = map[string]int{
	models.PeriodWeek:     7,
	models.PeriodTwoWeeks: 14,
	models.PeriodMonth:    30,
}

// FilterEngine restricts a record set to a reporting window. It is a
// pure function over its inputs; the clock is injected so preset
// windows are testable.
type FilterEngine struct {
	now func() time.Time
}

// NewFilterEngine constructs a filter engine using the wall clock.
func NewFilterEngine() *FilterEngine {
	return &FilterEngine{now: time.Now}
}

// Filter returns the records whose datetime falls inside the window
// described by spec. Records without a parseable datetime are kept;
// they predate the datetime column and are treated as always in range.
func (f *FilterEngine) Filter(records []models.Observation, spec models.FilterSpec) []models.Observation {
	if spec.Period == models.PeriodAll || spec.Period == "" {
		return records
	}

	var startDate, endDate time.Time

	if spec.Period == models.PeriodCustom {
		// Relaxed on purpose: the request boundary validates custom
		// ranges, so a missing bound here means "no filter".
		if spec.StartDate == "" || spec.EndDate == "" {
			return records
		}
		start, errStart := time.ParseInLocation("2006-01-02", spec.StartDate, time.Local)
		end, errEnd := time.ParseInLocation("2006-01-02", spec.EndDate, time.Local)
		if errStart != nil || errEnd != nil {
			return records
		}
		startDate = start
		// endDate is inclusive through the end of its day.
		endDate = end.Add(24*time.Hour - time.Millisecond)
	} else {
		days, ok := presetPeriodDays[spec.Period]
		if !ok {
			return records
		}
		now := f.now()
		start := now.AddDate(0, 0, -days)
		startDate = time.Date(start.Year(), start.Month(), start.Day(), 0, 0, 0, 0, start.Location())
		endDate = now
	}

	filtered := make([]models.Observation, 0, len(records))
	for _, record := range records {
		when, ok := parseDatetime(record.Datetime)
		if !ok {
			filtered = append(filtered, record)
			continue
		}
		if !when.Before(startDate) && !when.After(endDate) {
			filtered = append(filtered, record)
		}
	}
	return filtered
}

func parseDatetime(value string) (time.Time, bool) {
	if value == "" {
		return time.Time{}, false
	}
	for _, layout := range datetimeLayouts {
		if when, err := time.ParseInLocation(layout, value, time.Local); err == nil {
			return when, true
		}
	}
	return time.Time{}, false
}
