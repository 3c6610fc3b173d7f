package services

import (
	"math"

	"crowd-dashboard/models"
)

// Aggregator groups observations by weekday and hour of day.
type Aggregator struct {
}

// NewAggregator constructs an Aggregator.
func NewAggregator() *Aggregator {
	return &Aggregator{}
}

// AggregateWeekly builds one summary per canonical weekday, Sunday
// through Saturday, each carrying 24 hour buckets. Hours without
// samples are present as zero-valued buckets.
func (a *Aggregator) AggregateWeekly(records []models.Observation) []models.WeekdaySummary {
	summaries := make([]models.WeekdaySummary, 0, len(models.CanonicalWeekdays))

	for _, day := range models.CanonicalWeekdays {
		var dayRecords []models.Observation
		for _, record := range records {
			if record.Weekday == day {
				dayRecords = append(dayRecords, record)
			}
		}

		buckets := a.buildHourBuckets(day, dayRecords)
		peakHour, peakCount := findPeakBucket(buckets)
		quietHour, quietCount := findQuietBucket(buckets)

		summaries = append(summaries, models.WeekdaySummary{
			Weekday:       day,
			EnglishDay:    day,
			TotalEntries:  len(dayRecords),
			AvgCrowdLevel: meanCount(dayRecords),
			PeakHour:      peakHour,
			PeakCount:     peakCount,
			QuietHour:     quietHour,
			QuietCount:    quietCount,
			HourlyData:    buckets,
		})
	}

	return summaries
}

// buildHourBuckets collects counts per hour and derives the bucket
// statistics. Averaged over raw counts, not over hourly means.
func (a *Aggregator) buildHourBuckets(weekday string, records []models.Observation) []models.HourBucket {
	countsByHour := make([][]int, 24)
	for _, record := range records {
		if record.Hour < 0 || record.Hour > 23 {
			continue
		}
		countsByHour[record.Hour] = append(countsByHour[record.Hour], record.Count)
	}

	buckets := make([]models.HourBucket, 24)
	for hour := 0; hour < 24; hour++ {
		counts := countsByHour[hour]
		bucket := models.HourBucket{
			Weekday: weekday,
			Hour:    hour,
		}
		if len(counts) > 0 {
			bucket.SampleCount = len(counts)
			bucket.Average = mean(counts)
			bucket.Min = minOf(counts)
			bucket.Max = maxOf(counts)
			bucket.StandardDeviation = populationStdDev(counts)
		}
		buckets[hour] = bucket
	}
	return buckets
}

// findPeakBucket returns the hour with the strictly largest average
// among buckets with samples; ties resolve to the lowest hour.
func findPeakBucket(buckets []models.HourBucket) (int, float64) {
	peakHour := 0
	peakCount := 0.0
	for _, bucket := range buckets {
		if bucket.SampleCount > 0 && bucket.Average > peakCount {
			peakCount = bucket.Average
			peakHour = bucket.Hour
		}
	}
	return peakHour, peakCount
}

// findQuietBucket is symmetric to findPeakBucket, using strictly less
// than the running minimum.
func findQuietBucket(buckets []models.HourBucket) (int, float64) {
	quietHour := 0
	quietCount := math.Inf(1)
	for _, bucket := range buckets {
		if bucket.SampleCount > 0 && bucket.Average < quietCount {
			quietCount = bucket.Average
			quietHour = bucket.Hour
		}
	}
	if math.IsInf(quietCount, 1) {
		return 0, 0
	}
	return quietHour, quietCount
}

func mean(values []int) float64 {
	if len(values) == 0 {
		return 0
	}
	sum := 0
	for _, v := range values {
		sum += v
	}
	return float64(sum) / float64(len(values))
}

func meanCount(records []models.Observation) float64 {
	if len(records) == 0 {
		return 0
	}
	sum := 0
	for _, record := range records {
		sum += record.Count
	}
	return float64(sum) / float64(len(records))
}

func minOf(values []int) int {
	min := values[0]
	for _, v := range values[1:] {
		if v < min {
			min = v
		}
	}
	return min
}

func maxOf(values []int) int {
	max := values[0]
	for _, v := range values[1:] {
		if v > max {
			max = v
		}
	}
	return max
}

// populationStdDev is the population (not sample) standard deviation.
func populationStdDev(values []int) float64 {
	if len(values) == 0 {
		return 0
	}
	avg := mean(values)
	sumSquares := 0.0
	for _, v := range values {
		diff := float64(v) - avg
		sumSquares += diff * diff
	}
	return math.Sqrt(sumSquares / float64(len(values)))
}
