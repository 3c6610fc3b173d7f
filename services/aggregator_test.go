package services

import (
	"math"
	"reflect"
	"testing"

	"crowd-dashboard/models"
)

func TestAggregateWeekly_ScenarioBuckets(t *testing.T) {
	// Arrange
	records := []models.Observation{
		{Weekday: "Tuesday", Hour: 18, Count: 40},
		{Weekday: "Tuesday", Hour: 18, Count: 44},
		{Weekday: "Wednesday", Hour: 9, Count: 5},
	}
	aggregator := NewAggregator()

	// Act
	weekly := aggregator.AggregateWeekly(records)

	// Assert
	if len(weekly) != 7 {
		t.Fatalf("Expected 7 weekday summaries, got %d", len(weekly))
	}
	for i, day := range models.CanonicalWeekdays {
		if weekly[i].EnglishDay != day {
			t.Errorf("Expected summary %d to be %s, got %s", i, day, weekly[i].EnglishDay)
		}
		if len(weekly[i].HourlyData) != 24 {
			t.Errorf("Expected 24 hour buckets for %s, got %d", day, len(weekly[i].HourlyData))
		}
	}

	tuesday := weekly[2]
	bucket := tuesday.HourlyData[18]
	if bucket.SampleCount != 2 {
		t.Errorf("Expected Tuesday 18h sampleCount 2, got %d", bucket.SampleCount)
	}
	if bucket.Average != 42 {
		t.Errorf("Expected Tuesday 18h average 42, got %f", bucket.Average)
	}
	if bucket.Min != 40 || bucket.Max != 44 {
		t.Errorf("Expected Tuesday 18h min/max 40/44, got %d/%d", bucket.Min, bucket.Max)
	}
	if bucket.StandardDeviation != 2 {
		t.Errorf("Expected Tuesday 18h stddev 2, got %f", bucket.StandardDeviation)
	}
	if tuesday.PeakHour != 18 || tuesday.PeakCount != 42 {
		t.Errorf("Expected Tuesday peak 18/42, got %d/%f", tuesday.PeakHour, tuesday.PeakCount)
	}

	wednesday := weekly[3]
	if wednesday.HourlyData[9].Average != 5 {
		t.Errorf("Expected Wednesday 9h average 5, got %f", wednesday.HourlyData[9].Average)
	}
	// A single sample still drives the per-weekday quiet hour.
	if wednesday.QuietHour != 9 || wednesday.QuietCount != 5 {
		t.Errorf("Expected Wednesday quiet 9/5, got %d/%f", wednesday.QuietHour, wednesday.QuietCount)
	}
}

func TestAggregateWeekly_EmptyBucketsAreZeroValued(t *testing.T) {
	// Arrange
	aggregator := NewAggregator()

	// Act
	weekly := aggregator.AggregateWeekly(nil)

	// Assert
	for _, summary := range weekly {
		if summary.TotalEntries != 0 || summary.AvgCrowdLevel != 0 {
			t.Errorf("Expected empty summary for %s", summary.EnglishDay)
		}
		if summary.PeakHour != 0 || summary.PeakCount != 0 || summary.QuietHour != 0 || summary.QuietCount != 0 {
			t.Errorf("Expected zero peak/quiet for %s", summary.EnglishDay)
		}
		for _, bucket := range summary.HourlyData {
			if bucket.SampleCount != 0 || bucket.Average != 0 || bucket.Min != 0 || bucket.Max != 0 || bucket.StandardDeviation != 0 {
				t.Errorf("Expected zero-valued bucket at %s %dh, got %+v", summary.EnglishDay, bucket.Hour, bucket)
			}
		}
	}
}

func TestAggregateWeekly_SampleCountsMatchRecognizedRecords(t *testing.T) {
	// Arrange
	records := []models.Observation{
		{Weekday: "Monday", Hour: 7, Count: 10},
		{Weekday: "Monday", Hour: 18, Count: 30},
		{Weekday: "Friday", Hour: 12, Count: 25},
		{Weekday: "Saturday", Hour: 14, Count: 40},
		{Weekday: "Holiday", Hour: 9, Count: 99}, // unrecognized weekday
	}
	aggregator := NewAggregator()

	// Act
	weekly := aggregator.AggregateWeekly(records)

	// Assert
	totalSamples := 0
	for _, summary := range weekly {
		for _, bucket := range summary.HourlyData {
			totalSamples += bucket.SampleCount
		}
	}
	if totalSamples != 4 {
		t.Errorf("Expected 4 recognized samples across all buckets, got %d", totalSamples)
	}
}

func TestAggregateWeekly_AvgCrowdLevelUsesRawCounts(t *testing.T) {
	// Three records in one hour, one in another: the mean must weigh
	// each record equally, not each hour.
	records := []models.Observation{
		{Weekday: "Monday", Hour: 18, Count: 30},
		{Weekday: "Monday", Hour: 18, Count: 30},
		{Weekday: "Monday", Hour: 18, Count: 30},
		{Weekday: "Monday", Hour: 7, Count: 10},
	}
	aggregator := NewAggregator()

	weekly := aggregator.AggregateWeekly(records)

	monday := weekly[1]
	want := 25.0 // (30+30+30+10)/4, not (30+10)/2
	if monday.AvgCrowdLevel != want {
		t.Errorf("Expected avgCrowdLevel %f, got %f", want, monday.AvgCrowdLevel)
	}
}

func TestAggregateWeekly_PeakTieResolvesToLowestHour(t *testing.T) {
	records := []models.Observation{
		{Weekday: "Thursday", Hour: 10, Count: 20},
		{Weekday: "Thursday", Hour: 15, Count: 20},
	}
	aggregator := NewAggregator()

	weekly := aggregator.AggregateWeekly(records)

	thursday := weekly[4]
	if thursday.PeakHour != 10 {
		t.Errorf("Expected peak tie to resolve to hour 10, got %d", thursday.PeakHour)
	}
	if thursday.QuietHour != 10 {
		t.Errorf("Expected quiet tie to resolve to hour 10, got %d", thursday.QuietHour)
	}
}

func TestAggregateWeekly_Deterministic(t *testing.T) {
	records := []models.Observation{
		{Weekday: "Sunday", Hour: 9, Count: 12},
		{Weekday: "Monday", Hour: 18, Count: 47},
		{Weekday: "Tuesday", Hour: 18, Count: 40},
		{Weekday: "Tuesday", Hour: 19, Count: 44},
	}
	aggregator := NewAggregator()

	first := aggregator.AggregateWeekly(records)
	second := aggregator.AggregateWeekly(records)

	if !reflect.DeepEqual(first, second) {
		t.Error("Expected repeated aggregation of identical input to be identical")
	}
}

func TestAggregateWeekly_IdentityFilterDoesNotChangeResult(t *testing.T) {
	records := []models.Observation{
		{Datetime: "2024-06-02T09:12:00", Weekday: "Sunday", Hour: 9, Count: 12},
		{Datetime: "2024-06-03T18:20:00", Weekday: "Monday", Hour: 18, Count: 47},
	}
	aggregator := NewAggregator()
	engine := NewFilterEngine()

	direct := aggregator.AggregateWeekly(records)
	filtered := aggregator.AggregateWeekly(engine.Filter(records, models.FilterSpec{Period: models.PeriodAll}))

	if !reflect.DeepEqual(direct, filtered) {
		t.Error("Expected aggregation over the all-period filter to match direct aggregation")
	}
}

func TestPopulationStdDev(t *testing.T) {
	tests := []struct {
		name   string
		values []int
		want   float64
	}{
		{"empty", nil, 0},
		{"single value", []int{7}, 0},
		{"two values", []int{40, 44}, 2},
		{"spread", []int{2, 4, 4, 4, 5, 5, 7, 9}, 2},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			got := populationStdDev(test.values)
			if math.Abs(got-test.want) > 1e-9 {
				t.Errorf("Expected stddev %f, got %f", test.want, got)
			}
		})
	}
}
