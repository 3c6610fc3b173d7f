package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"net/url"
	"strconv"

	"crowd-dashboard/models"
	"crowd-dashboard/services"
	"crowd-dashboard/util"
)

const (
	PERIOD_QUERY_ARG = "period"
	START_QUERY_ARG  = "start"
	END_QUERY_ARG    = "end"
	FORCE_QUERY_ARG  = "force"
)

// DashboardHandler serves dashboard reports, insights, exports and
// rendered charts over HTTP.
type DashboardHandler struct {
	reports *services.ReportService
}

func NewDashboardHandler(reports *services.ReportService) *DashboardHandler {
	return &DashboardHandler{reports: reports}
}

// GetStats handles GET /v1/dashboard/stats
func (h *DashboardHandler) GetStats(w http.ResponseWriter, r *http.Request) {
	spec, force, ok := h.parseArgs(r.URL.Query(), w)
	if !ok {
		return // error already written
	}

	report, err := h.reports.BuildReport(spec, force)
	if err != nil {
		writeLoadFailure(w, err)
		return
	}

	writeJSON(w, report)
}

// GetInsights handles GET /v1/dashboard/insights
func (h *DashboardHandler) GetInsights(w http.ResponseWriter, r *http.Request) {
	spec, force, ok := h.parseArgs(r.URL.Query(), w)
	if !ok {
		return
	}

	report, err := h.reports.BuildReport(spec, force)
	if err != nil {
		writeLoadFailure(w, err)
		return
	}

	writeJSON(w, map[string][]string{"insights": report.Insights})
}

// GetCharts handles GET /v1/dashboard/charts, responding with the
// rendered weekly bar chart page.
func (h *DashboardHandler) GetCharts(w http.ResponseWriter, r *http.Request) {
	spec, force, ok := h.parseArgs(r.URL.Query(), w)
	if !ok {
		return
	}

	report, err := h.reports.BuildReport(spec, force)
	if err != nil {
		writeLoadFailure(w, err)
		return
	}

	series := util.BuildChartSeries(report.Weekly)

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := util.RenderWeeklyCharts(w, series); err != nil {
		log.Println("Error rendering charts:", err)
	}
}

// ExportJSON handles GET /v1/dashboard/export/json
func (h *DashboardHandler) ExportJSON(w http.ResponseWriter, r *http.Request) {
	spec, force, ok := h.parseArgs(r.URL.Query(), w)
	if !ok {
		return
	}

	report, err := h.reports.BuildReport(spec, force)
	if err != nil {
		writeLoadFailure(w, err)
		return
	}
	records, err := h.reports.FilteredRecords(spec, false)
	if err != nil {
		writeLoadFailure(w, err)
		return
	}

	bundle := util.BuildExportBundle(records, report.Overall, report.Weekly)

	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Content-Disposition", "attachment; filename="+util.ExportFileName("json"))
	if err := util.WriteExportJSON(w, bundle); err != nil {
		log.Println("Error writing JSON export:", err)
	}
}

// ExportCSV handles GET /v1/dashboard/export/csv
func (h *DashboardHandler) ExportCSV(w http.ResponseWriter, r *http.Request) {
	spec, force, ok := h.parseArgs(r.URL.Query(), w)
	if !ok {
		return
	}

	records, err := h.reports.FilteredRecords(spec, force)
	if err != nil {
		writeLoadFailure(w, err)
		return
	}

	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", "attachment; filename="+util.ExportFileName("csv"))
	if err := util.WriteExportCSV(w, records); err != nil {
		log.Println("Error writing CSV export:", err)
	}
}

// ReloadData handles POST /v1/dashboard/reload
func (h *DashboardHandler) ReloadData(w http.ResponseWriter, r *http.Request) {
	count, err := h.reports.Reload()
	if err != nil {
		writeLoadFailure(w, err)
		return
	}

	writeJSON(w, map[string]interface{}{"status": "reloaded", "records": count})
}

// Ping handles GET /ping
func (h *DashboardHandler) Ping(w http.ResponseWriter, r *http.Request) {
	log.Println("Pinging server")
	writeJSON(w, map[string]string{"status": "pong"})
}

// parseArgs builds the FilterSpec from query args and validates it at
// the request boundary. Invalid custom ranges are rejected here with a
// 400 before the filter engine ever runs.
func (h *DashboardHandler) parseArgs(vals url.Values, w http.ResponseWriter) (
	spec models.FilterSpec, force bool, ok bool,
) {
	spec = models.FilterSpec{
		Period:    vals.Get(PERIOD_QUERY_ARG),
		StartDate: vals.Get(START_QUERY_ARG),
		EndDate:   vals.Get(END_QUERY_ARG),
	}
	if spec.Period == "" {
		spec.Period = models.PeriodAll
	}

	if err := spec.Validate(); err != nil {
		var validationErr *models.FilterValidationError
		if errors.As(err, &validationErr) {
			http.Error(w, validationErr.Error(), http.StatusBadRequest)
		} else {
			http.Error(w, "Invalid filter", http.StatusBadRequest)
		}
		return
	}

	if v := vals.Get(FORCE_QUERY_ARG); v != "" {
		force, _ = strconv.ParseBool(v)
	}
	ok = true
	return
}

func writeLoadFailure(w http.ResponseWriter, err error) {
	log.Println("Error building dashboard report:", err)

	var loadErr *services.LoadError
	if errors.As(err, &loadErr) {
		http.Error(w, loadErr.Error(), http.StatusBadGateway)
		return
	}
	http.Error(w, "Internal server error", http.StatusInternalServerError)
}

func writeJSON(w http.ResponseWriter, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		log.Println("Error encoding response:", err)
	}
}
