package services

import (
	"time"

	"crowd-dashboard/models"
)

// ReportService runs the full pipeline for one filter window:
// load -> filter -> aggregate -> summarize -> insights. Statistics and
// insights are always derived from the filtered record set.
type ReportService struct {
	loader     *ObservationLoader
	filter     *FilterEngine
	aggregator *Aggregator
	summarizer *StatsSummarizer
	insights   *InsightGenerator
}

// NewReportService constructs a ReportService with its pipeline stages.
func NewReportService(
	loader *ObservationLoader,
	filter *FilterEngine,
	aggregator *Aggregator,
	summarizer *StatsSummarizer,
	insights *InsightGenerator,
) *ReportService {
	return &ReportService{
		loader:     loader,
		filter:     filter,
		aggregator: aggregator,
		summarizer: summarizer,
		insights:   insights,
	}
}

// BuildReport loads the observation set and produces the dashboard
// report for the given window.
func (s *ReportService) BuildReport(spec models.FilterSpec, forceReload bool) (*models.DashboardReport, error) {
	records, err := s.loader.Load(forceReload)
	if err != nil {
		return nil, err
	}

	filtered := s.filter.Filter(records, spec)
	weekly := s.aggregator.AggregateWeekly(filtered)
	overall := s.summarizer.Summarize(weekly, filtered)
	insights := s.insights.Generate(overall, weekly)

	return &models.DashboardReport{
		GeneratedAt: time.Now(),
		Filter:      spec,
		Weekly:      weekly,
		Overall:     overall,
		Insights:    insights,
	}, nil
}

// FilteredRecords loads and filters the observation set without
// aggregating, for the export paths that re-serialize raw records.
func (s *ReportService) FilteredRecords(spec models.FilterSpec, forceReload bool) ([]models.Observation, error) {
	records, err := s.loader.Load(forceReload)
	if err != nil {
		return nil, err
	}
	return s.filter.Filter(records, spec), nil
}

// Reload forces a fresh fetch of the snapshot.
func (s *ReportService) Reload() (int, error) {
	records, err := s.loader.Load(true)
	if err != nil {
		return 0, err
	}
	return len(records), nil
}
