package chart

import (
	"log/slog"
	"net/http"
	"strconv"

	"co-dashboard/internal/summary"
)

// RegisterHandlers registers the PNG chart endpoints.
func RegisterHandlers(mux *http.ServeMux, mgr summary.Manager) {
	mux.HandleFunc("/charts/national.png", handleNationalChart(mgr))
	mux.HandleFunc("/charts/trend.png", handleTrendChart(mgr))
	mux.HandleFunc("/charts/ranking.png", handleRankingChart(mgr))
}

func handleNationalChart(mgr summary.Manager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		averages, err := mgr.GetYearlyAverages()
		if err != nil {
			http.Error(w, "chart unavailable", http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "image/png")
		if err := WriteNationalTrend(w, averages); err != nil {
			slog.Error("rendering national trend chart failed", "error", err)
		}
	}
}

func handleTrendChart(mgr summary.Manager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		state := r.URL.Query().Get("state")
		if state == "" {
			http.Error(w, "state parameter required", http.StatusBadRequest)
			return
		}

		trend, err := mgr.GetStateTrend(state)
		if err != nil {
			http.Error(w, "state not found", http.StatusNotFound)
			return
		}

		w.Header().Set("Content-Type", "image/png")
		if err := WriteStateTrend(w, trend); err != nil {
			slog.Error("rendering state trend chart failed", "state", state, "error", err)
		}
	}
}

func handleRankingChart(mgr summary.Manager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		year := mgr.DefaultYear()
		if raw := r.URL.Query().Get("year"); raw != "" {
			parsed, err := strconv.Atoi(raw)
			if err != nil {
				http.Error(w, "year must be an integer", http.StatusBadRequest)
				return
			}
			year = parsed
		}

		slice, err := mgr.GetYearSlice(year)
		if err != nil {
			http.Error(w, "year outside dataset range", http.StatusBadRequest)
			return
		}

		w.Header().Set("Content-Type", "image/png")
		if err := WriteYearBars(w, year, slice); err != nil {
			slog.Error("rendering ranking chart failed", "year", year, "error", err)
		}
	}
}
