package server

import (
	"net/http"

	"github.com/gorilla/mux"
)

// DashboardRoutes is the handler surface the router wires up.
type DashboardRoutes interface {
	GetStats(w http.ResponseWriter, r *http.Request)
	GetInsights(w http.ResponseWriter, r *http.Request)
	GetCharts(w http.ResponseWriter, r *http.Request)
	ExportJSON(w http.ResponseWriter, r *http.Request)
	ExportCSV(w http.ResponseWriter, r *http.Request)
	ReloadData(w http.ResponseWriter, r *http.Request)
	Ping(w http.ResponseWriter, r *http.Request)
}

type Router struct {
	dashboardHandler DashboardRoutes
	router           *mux.Router
}

// NewRouter creates a router with the app’s routes.
func NewRouter(
	dashboardHandler DashboardRoutes,
	router *mux.Router) *Router {
	return &Router{
		dashboardHandler: dashboardHandler,
		router:           router,
	}
}

func (r *Router) RegisterRoutes() {
	// expects ?period={all|week|twoWeeks|month|custom}&start={YYYY-MM-DD}&end={YYYY-MM-DD}&force={bool}
	r.router.HandleFunc("/v1/dashboard/stats", r.dashboardHandler.GetStats).Methods("GET")
	r.router.HandleFunc("/v1/dashboard/insights", r.dashboardHandler.GetInsights).Methods("GET")
	r.router.HandleFunc("/v1/dashboard/charts", r.dashboardHandler.GetCharts).Methods("GET")
	r.router.HandleFunc("/v1/dashboard/export/json", r.dashboardHandler.ExportJSON).Methods("GET")
	r.router.HandleFunc("/v1/dashboard/export/csv", r.dashboardHandler.ExportCSV).Methods("GET")
	r.router.HandleFunc("/v1/dashboard/reload", r.dashboardHandler.ReloadData).Methods("POST")

	r.router.HandleFunc("/ping", r.dashboardHandler.Ping).Methods("GET")
}
