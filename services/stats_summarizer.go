package services

import (
	"math"

	"crowd-dashboard/models"
)

// Minimum system-wide samples for an hour to be eligible as the
// overall peak or quiet hour.
const overallHourSampleFloor = 2

// StatsSummarizer rolls weekly summaries and the filtered record set
// up into one OverallSummary.
type StatsSummarizer struct {
}

// NewStatsSummarizer constructs a StatsSummarizer.
func NewStatsSummarizer() *StatsSummarizer {
	return &StatsSummarizer{}
}

// Summarize derives the cross-weekday rollup. Peak/quiet weekdays come
// from the weekly summaries (first-encountered wins on ties); the
// overall peak/quiet hours are recomputed directly from the filtered
// records with a two-sample floor, independent of the per-weekday
// buckets.
func (s *StatsSummarizer) Summarize(
	weekly []models.WeekdaySummary,
	filtered []models.Observation,
) models.OverallSummary {
	peakWeekday, quietWeekday := findPeakQuietWeekdays(weekly)
	peakHour, quietHour := findOverallPeakQuietHours(filtered)

	return models.OverallSummary{
		TotalEntries:      len(filtered),
		AverageCrowdLevel: meanCount(filtered),
		PeakWeekday:       peakWeekday,
		QuietWeekday:      quietWeekday,
		PeakHour:          peakHour,
		QuietHour:         quietHour,
		CrowdDistribution: crowdDistribution(filtered),
	}
}

func findPeakQuietWeekdays(weekly []models.WeekdaySummary) (string, string) {
	if len(weekly) == 0 {
		return "", ""
	}
	peak := weekly[0]
	quiet := weekly[0]
	for _, summary := range weekly[1:] {
		if summary.AvgCrowdLevel > peak.AvgCrowdLevel {
			peak = summary
		}
		if summary.AvgCrowdLevel < quiet.AvgCrowdLevel {
			quiet = summary
		}
	}
	return peak.Weekday, quiet.Weekday
}

func findOverallPeakQuietHours(records []models.Observation) (int, int) {
	sums := make(map[int]int)
	counts := make(map[int]int)
	for _, record := range records {
		sums[record.Hour] += record.Count
		counts[record.Hour]++
	}

	peakHour := 0
	peakAvg := 0.0
	quietHour := 0
	quietAvg := math.Inf(1)

	// Map iteration order is random, so ties must be broken
	// deterministically by the lower hour.
	for hour := 0; hour < 24; hour++ {
		n := counts[hour]
		if n < overallHourSampleFloor {
			continue
		}
		avg := float64(sums[hour]) / float64(n)
		if avg > peakAvg {
			peakAvg = avg
			peakHour = hour
		}
		if avg < quietAvg {
			quietAvg = avg
			quietHour = hour
		}
	}

	return peakHour, quietHour
}

// crowdDistribution classifies records into tiers by status code:
// 1 empty, 2 moderate, >=3 busy. Percentages are rounded to the
// nearest integer over the classified total.
func crowdDistribution(records []models.Observation) models.CrowdDistribution {
	empty, moderate, busy := 0, 0, 0
	for _, record := range records {
		switch {
		case record.StatusCode == 1:
			empty++
		case record.StatusCode == 2:
			moderate++
		case record.StatusCode >= 3:
			busy++
		}
	}

	total := empty + moderate + busy
	if total == 0 {
		return models.CrowdDistribution{}
	}
	return models.CrowdDistribution{
		Empty:    int(math.Round(float64(empty) / float64(total) * 100)),
		Moderate: int(math.Round(float64(moderate) / float64(total) * 100)),
		Busy:     int(math.Round(float64(busy) / float64(total) * 100)),
	}
}
