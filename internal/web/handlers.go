// Package web serves the dashboard page and the informational modal content.
package web

import (
	_ "embed"
	"encoding/json"
	"html/template"
	"log/slog"
	"net/http"

	"co-dashboard/internal/summary"
)

//go:embed index.html.tmpl
var indexTemplate string

// Info is the modal content, shown on first load and on demand.
type Info struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Features    []string `json:"features"`
	Author      string   `json:"author"`
}

// DashboardInfo describes the dashboard for the modal.
func DashboardInfo() Info {
	return Info{
		Title: "Nigeria Carbon Monoxide (CO) Dashboard (2020 - 2024)",
		Description: "Interactive visualization of carbon monoxide levels across " +
			"Nigeria between 2020 and 2024. The data was derived in Google Earth " +
			"Engine and aggregated by state, revealing spatial and temporal " +
			"patterns of CO distribution across the country.",
		Features: []string{
			"Interactive choropleth map of state-level CO concentration",
			"Top 3 and bottom 3 states by CO concentration",
			"Line chart of annual CO trends for a selected state",
			"National average CO level in a donut chart",
		},
		Author: "Built from state-aggregated Sentinel-5P CO data.",
	}
}

// RegisterHandlers registers the page and info endpoints.
func RegisterHandlers(mux *http.ServeMux, mgr summary.Manager) {
	page := template.Must(template.New("index").Parse(indexTemplate))

	mux.HandleFunc("/", handleIndex(page, mgr))
	mux.HandleFunc("/api/info", handleInfo())
}

func handleIndex(page *template.Template, mgr summary.Manager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/" {
			http.NotFound(w, r)
			return
		}

		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		data := struct {
			Title       string
			Years       []int
			DefaultYear int
			States      []string
		}{
			Title:       DashboardInfo().Title,
			Years:       mgr.Years(),
			DefaultYear: mgr.DefaultYear(),
			States:      mgr.States(),
		}

		if err := page.Execute(w, data); err != nil {
			slog.Error("rendering index failed", "error", err)
		}
	}
}

func handleInfo() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(DashboardInfo()); err != nil {
			slog.Error("encoding info response failed", "error", err)
		}
	}
}
