package models

import (
	"fmt"
	"time"
)

// Reporting periods accepted by the filter engine.
const (
	PeriodAll      = "all"
	PeriodWeek     = "week"
	PeriodTwoWeeks = "twoWeeks"
	PeriodMonth    = "month"
	PeriodCustom   = "custom"
)

// FilterSpec is a user-selected reporting window. StartDate/EndDate
// are ISO dates (YYYY-MM-DD) and only meaningful when Period is
// "custom".
type FilterSpec struct {
	Period    string `json:"period"`
	StartDate string `json:"startDate,omitempty"`
	EndDate   string `json:"endDate,omitempty"`
}

// FilterValidationError reports an invalid custom date range. It is
// raised at the request boundary, before the filter engine runs.
type FilterValidationError struct {
	Reason string
}

func (e *FilterValidationError) Error() string {
	return "invalid filter: " + e.Reason
}

// Validate checks the filter at the request boundary. Preset periods are
// always valid; a custom range requires both bounds with start <= end.
func (f FilterSpec) Validate() error {
	switch f.Period {
	case PeriodAll, PeriodWeek, PeriodTwoWeeks, PeriodMonth:
		return nil
	case PeriodCustom:
	default:
		return &FilterValidationError{Reason: fmt.Sprintf("unknown period %q", f.Period)}
	}

	if f.StartDate == "" || f.EndDate == "" {
		return &FilterValidationError{Reason: "custom period requires both startDate and endDate"}
	}
	start, err := time.Parse("2006-01-02", f.StartDate)
	if err != nil {
		return &FilterValidationError{Reason: fmt.Sprintf("malformed startDate %q", f.StartDate)}
	}
	end, err := time.Parse("2006-01-02", f.EndDate)
	if err != nil {
		return &FilterValidationError{Reason: fmt.Sprintf("malformed endDate %q", f.EndDate)}
	}
	if start.After(end) {
		return &FilterValidationError{Reason: "startDate is after endDate"}
	}
	return nil
}
