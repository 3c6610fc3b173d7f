package util

import (
	"fmt"
	"io"
	"log"
	"os"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"

	"crowd-dashboard/models"
)

// RenderWeeklyCharts writes an HTML page with one bar chart per
// weekday to w. Each chart carries a mark line at the weekday's
// reference average.
func RenderWeeklyCharts(w io.Writer, series []models.ChartSeries) error {
	page := components.NewPage()
	page.PageTitle = "Weekly Crowd Levels"

	for _, s := range series {
		page.AddCharts(buildWeekdayBarChart(s))
	}

	if err := page.Render(w); err != nil {
		return fmt.Errorf("failed to render weekly charts: %w", err)
	}
	return nil
}

// PlotWeeklyCharts generates an HTML file rendering the weekly bar
// charts.
func PlotWeeklyCharts(series []models.ChartSeries, outputPath string) error {
	f, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("failed to create HTML file: %w", err)
	}
	defer f.Close()

	if err := RenderWeeklyCharts(f, series); err != nil {
		return err
	}

	log.Printf("Weekly crowd charts generated: %s", outputPath)
	return nil
}

func buildWeekdayBarChart(s models.ChartSeries) *charts.Bar {
	labels := make([]string, 0, len(s.Points))
	values := make([]opts.BarData, 0, len(s.Points))
	for _, point := range s.Points {
		labels = append(labels, point.HourLabel)
		values = append(values, opts.BarData{Value: point.Average})
	}

	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			PageTitle: "Weekly Crowd Levels",
			Width:     "800px",
			Height:    "400px",
		}),
		charts.WithTitleOpts(opts.Title{
			Title: s.Weekday,
		}),
		charts.WithXAxisOpts(opts.XAxis{
			Name: "Time",
		}),
		charts.WithYAxisOpts(opts.YAxis{
			Name: "Average people",
		}),
		charts.WithTooltipOpts(opts.Tooltip{
			Show: opts.Bool(true),
		}),
	)

	bar.SetXAxis(labels).AddSeries("Average people", values,
		charts.WithMarkLineNameYAxisItemOpts(opts.MarkLineNameYAxisItem{
			Name:  "Average",
			YAxis: s.ReferenceAverage,
		}),
	)

	return bar
}
