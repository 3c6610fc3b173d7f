package services

import (
	"fmt"

	"crowd-dashboard/models"
)

// maxInsights caps the insight list even if future rules add more
// candidates.
const maxInsights = 5

// InsightGenerator turns summarized statistics into a short ordered
// list of natural-language observations.
type InsightGenerator struct {
}

// NewInsightGenerator constructs an InsightGenerator.
func NewInsightGenerator() *InsightGenerator {
	return &InsightGenerator{}
}

// Generate produces at most five insights in a fixed order: peak
// hour, quiet hour, peak weekday, quiet weekday, then either the
// uncrowded statement or the weekend/weekday comparison.
func (g *InsightGenerator) Generate(
	overall models.OverallSummary,
	weekly []models.WeekdaySummary,
) []string {
	insights := []string{
		fmt.Sprintf("The busiest time of day is around %s", formatHour(overall.PeakHour)),
		fmt.Sprintf("The quietest time of day is around %s", formatHour(overall.QuietHour)),
		fmt.Sprintf("%s is the busiest day of the week", overall.PeakWeekday),
		fmt.Sprintf("%s is the quietest day of the week", overall.QuietWeekday),
	}

	if overall.CrowdDistribution.Empty > 50 {
		insights = append(insights, "The facility is uncrowded most of the time")
	} else {
		weekendAvg, weekdayAvg := weekendWeekdayAverages(weekly)
		if weekendAvg > weekdayAvg {
			insights = append(insights, "Weekends tend to be busier than weekdays")
		} else {
			insights = append(insights, "Weekdays tend to be busier than weekends")
		}
	}

	if len(insights) > maxInsights {
		insights = insights[:maxInsights]
	}
	return insights
}

// weekendWeekdayAverages compares Saturday+Sunday against the other
// five days. The weekend convention is fixed, not locale-aware.
func weekendWeekdayAverages(weekly []models.WeekdaySummary) (float64, float64) {
	weekendSum, weekdaySum := 0.0, 0.0
	weekendDays, weekdayDays := 0, 0

	for _, summary := range weekly {
		if summary.EnglishDay == "Saturday" || summary.EnglishDay == "Sunday" {
			weekendSum += summary.AvgCrowdLevel
			weekendDays++
		} else {
			weekdaySum += summary.AvgCrowdLevel
			weekdayDays++
		}
	}

	weekendAvg := 0.0
	if weekendDays > 0 {
		weekendAvg = weekendSum / float64(weekendDays)
	}
	weekdayAvg := 0.0
	if weekdayDays > 0 {
		weekdayAvg = weekdaySum / float64(weekdayDays)
	}
	return weekendAvg, weekdayAvg
}

func formatHour(hour int) string {
	return fmt.Sprintf("%02d:00", hour)
}
