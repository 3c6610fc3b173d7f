package main

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/jessevdk/go-flags"

	"crowd-dashboard/config"
	"crowd-dashboard/di"
	"crowd-dashboard/models"
	"crowd-dashboard/util"
)

type options struct {
	Env        string `long:"env" description:"Runtime environment" default:"local"`
	NoRefresh  bool   `long:"no-refresh" description:"Disable the periodic snapshot refresher"`
	PlotCharts bool   `long:"plot-charts" description:"Render the weekly charts to an HTML file on startup"`
}

func main() {
	var opts options
	if _, err := flags.Parse(&opts); err != nil {
		os.Exit(1)
	}

	container := di.NewContainer(opts.Env)

	fmt.Println("loading initial snapshot!")
	if _, err := container.ObservationLoader.Load(true); err != nil {
		log.Printf("Initial snapshot load failed (will retry on demand): %v", err)
	}

	if opts.PlotCharts {
		plotWeeklyCharts(container)
	}

	if !opts.NoRefresh {
		fmt.Println("starting periodic job!")
		container.SnapshotRefresherService.StartPeriodicJob(config.SNAPSHOT_REFRESHER_SCHEDULE_MINUTES * time.Minute)
	}

	fmt.Println("starting server!")
	container.CrowdDashboardHttpServer.Start()
}

func plotWeeklyCharts(container *di.Container) {
	report, err := container.ReportService.BuildReport(models.FilterSpec{Period: models.PeriodAll}, false)
	if err != nil {
		log.Printf("Could not build report for chart plotting: %v", err)
		return
	}

	series := util.BuildChartSeries(report.Weekly)
	if err := util.PlotWeeklyCharts(series, config.WEEKLY_CHARTS_OUTPUT_FILE); err != nil {
		log.Printf("Could not plot weekly charts: %v", err)
	}
}
