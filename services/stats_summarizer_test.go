package services

import (
	"testing"

	"crowd-dashboard/models"
)

func TestSummarize_OverallHoursRequireTwoSamples(t *testing.T) {
	// Arrange: Wednesday 9h has the lowest average but only one
	// sample, so it is never eligible for the overall quiet hour.
	records := []models.Observation{
		{Weekday: "Tuesday", Hour: 18, Count: 40},
		{Weekday: "Tuesday", Hour: 18, Count: 44},
		{Weekday: "Wednesday", Hour: 9, Count: 5},
		{Weekday: "Monday", Hour: 12, Count: 20},
		{Weekday: "Friday", Hour: 12, Count: 24},
	}
	weekly := NewAggregator().AggregateWeekly(records)
	summarizer := NewStatsSummarizer()

	// Act
	overall := summarizer.Summarize(weekly, records)

	// Assert
	if overall.PeakHour != 18 {
		t.Errorf("Expected overall peak hour 18, got %d", overall.PeakHour)
	}
	if overall.QuietHour != 12 {
		t.Errorf("Expected overall quiet hour 12 (hour 9 has a single sample), got %d", overall.QuietHour)
	}
	if overall.TotalEntries != 5 {
		t.Errorf("Expected totalEntries 5, got %d", overall.TotalEntries)
	}
}

func TestSummarize_NoEligibleHoursFallBackToZero(t *testing.T) {
	// Every hour has a single sample, below the eligibility floor.
	records := []models.Observation{
		{Weekday: "Monday", Hour: 8, Count: 10},
		{Weekday: "Tuesday", Hour: 19, Count: 50},
	}
	weekly := NewAggregator().AggregateWeekly(records)

	overall := NewStatsSummarizer().Summarize(weekly, records)

	if overall.PeakHour != 0 || overall.QuietHour != 0 {
		t.Errorf("Expected peak/quiet hour 0/0, got %d/%d", overall.PeakHour, overall.QuietHour)
	}
}

func TestSummarize_PeakQuietWeekdays(t *testing.T) {
	records := []models.Observation{
		{Weekday: "Sunday", Hour: 10, Count: 10},
		{Weekday: "Monday", Hour: 10, Count: 50},
		{Weekday: "Saturday", Hour: 10, Count: 30},
	}
	weekly := NewAggregator().AggregateWeekly(records)

	overall := NewStatsSummarizer().Summarize(weekly, records)

	if overall.PeakWeekday != "Monday" {
		t.Errorf("Expected peak weekday Monday, got %s", overall.PeakWeekday)
	}
	// Days without records all sit at zero; the first in Sunday ->
	// Saturday order wins the quiet slot.
	if overall.QuietWeekday != "Tuesday" {
		t.Errorf("Expected quiet weekday Tuesday, got %s", overall.QuietWeekday)
	}
}

func TestSummarize_CrowdDistributionRounding(t *testing.T) {
	// Arrange
	records := []models.Observation{
		{StatusCode: 1}, {StatusCode: 1},
		{StatusCode: 2},
		{StatusCode: 3}, {StatusCode: 3}, {StatusCode: 3},
	}

	// Act
	distribution := crowdDistribution(records)

	// Assert
	if distribution.Empty != 33 {
		t.Errorf("Expected empty 33%%, got %d%%", distribution.Empty)
	}
	if distribution.Moderate != 17 {
		t.Errorf("Expected moderate 17%%, got %d%%", distribution.Moderate)
	}
	if distribution.Busy != 50 {
		t.Errorf("Expected busy 50%%, got %d%%", distribution.Busy)
	}
}

func TestSummarize_EmptyInputYieldsZeroValues(t *testing.T) {
	weekly := NewAggregator().AggregateWeekly(nil)

	overall := NewStatsSummarizer().Summarize(weekly, nil)

	if overall.TotalEntries != 0 || overall.AverageCrowdLevel != 0 {
		t.Errorf("Expected zero totals, got %+v", overall)
	}
	if overall.CrowdDistribution != (models.CrowdDistribution{}) {
		t.Errorf("Expected zero distribution, got %+v", overall.CrowdDistribution)
	}
}
