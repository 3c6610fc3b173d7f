package util

import (
	"fmt"

	"crowd-dashboard/models"
)

// BuildChartSeries converts weekly summaries into the rendering-sink
// contract: per weekday, 24 ordered (hourLabel, average, hasData)
// points plus the value for the reference average line. The reference
// line is the mean of the hourly averages that actually have samples.
func BuildChartSeries(weekly []models.WeekdaySummary) []models.ChartSeries {
	series := make([]models.ChartSeries, 0, len(weekly))

	for _, summary := range weekly {
		points := make([]models.ChartPoint, 0, len(summary.HourlyData))
		referenceSum := 0.0
		hoursWithData := 0

		for _, bucket := range summary.HourlyData {
			points = append(points, models.ChartPoint{
				HourLabel: fmt.Sprintf("%02d:00", bucket.Hour),
				Average:   bucket.Average,
				HasData:   bucket.SampleCount > 0,
			})
			if bucket.SampleCount > 0 {
				referenceSum += bucket.Average
				hoursWithData++
			}
		}

		referenceAverage := 0.0
		if hoursWithData > 0 {
			referenceAverage = referenceSum / float64(hoursWithData)
		}

		series = append(series, models.ChartSeries{
			Weekday:          summary.Weekday,
			EnglishDay:       summary.EnglishDay,
			Points:           points,
			ReferenceAverage: referenceAverage,
		})
	}

	return series
}
