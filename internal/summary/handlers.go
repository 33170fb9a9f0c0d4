package summary

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"co-dashboard/internal/dataset"
	"co-dashboard/internal/stats"
)

// RegisterHandlers registers the summary HTTP handlers.
func RegisterHandlers(mux *http.ServeMux, mgr Manager) {
	mux.HandleFunc("/api/years", handleYears(mgr))
	mux.HandleFunc("/api/states", handleStates(mgr))
	mux.HandleFunc("/api/slice", handleSlice(mgr))
	mux.HandleFunc("/api/ranking", handleRanking(mgr))
	mux.HandleFunc("/api/averages", handleAverages(mgr))
	mux.HandleFunc("/api/national", handleNational(mgr))
	mux.HandleFunc("/api/trend/", handleTrend(mgr))
	mux.HandleFunc("/api/geojson", handleGeoJSON(mgr))
}

// apiError is the JSON error body. FallbackYear tells the UI which year to
// revert to when the selection was bad.
type apiError struct {
	Error        string `json:"error"`
	FallbackYear int    `json:"fallback_year,omitempty"`
}

func writeJSON(w http.ResponseWriter, value any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(value); err != nil {
		slog.Error("encoding response failed", "error", err)
	}
}

func writeError(w http.ResponseWriter, mgr Manager, err error) {
	w.Header().Set("Content-Type", "application/json")

	body := apiError{Error: err.Error()}
	switch {
	case errors.Is(err, stats.ErrInvalidYear), errors.Is(err, stats.ErrIncompleteYear):
		// Bad selection: recoverable, point the UI at the default year.
		body.FallbackYear = mgr.DefaultYear()
		w.WriteHeader(http.StatusBadRequest)
	case errors.Is(err, dataset.ErrUnknownState):
		w.WriteHeader(http.StatusNotFound)
	default:
		slog.Error("summary query failed", "error", err)
		body.Error = "internal server error"
		w.WriteHeader(http.StatusInternalServerError)
	}

	if err := json.NewEncoder(w).Encode(body); err != nil {
		slog.Error("encoding error response failed", "error", err)
	}
}

// yearParam reads the year query parameter, falling back to the manager's
// default year when absent.
func yearParam(r *http.Request, mgr Manager) (int, error) {
	raw := r.URL.Query().Get("year")
	if raw == "" {
		return mgr.DefaultYear(), nil
	}
	year, err := strconv.Atoi(raw)
	if err != nil {
		return 0, stats.ErrInvalidYear
	}
	return year, nil
}

func handleYears(mgr Manager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, struct {
			Years       []int `json:"years"`
			DefaultYear int   `json:"default_year"`
		}{
			Years:       mgr.Years(),
			DefaultYear: mgr.DefaultYear(),
		})
	}
}

func handleStates(mgr Manager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, mgr.States())
	}
}

func handleSlice(mgr Manager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		year, err := yearParam(r, mgr)
		if err != nil {
			writeError(w, mgr, err)
			return
		}

		slice, err := mgr.GetYearSlice(year)
		if err != nil {
			writeError(w, mgr, err)
			return
		}

		writeJSON(w, struct {
			Year    int             `json:"year"`
			Records stats.YearSlice `json:"records"`
		}{Year: year, Records: slice})
	}
}

func handleRanking(mgr Manager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		year, err := yearParam(r, mgr)
		if err != nil {
			writeError(w, mgr, err)
			return
		}

		n := DefaultRankingSize
		if raw := r.URL.Query().Get("n"); raw != "" {
			parsed, err := strconv.Atoi(raw)
			if err != nil {
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusBadRequest)
				json.NewEncoder(w).Encode(apiError{Error: "n must be an integer"})
				return
			}
			n = parsed
		}

		ranking, err := mgr.GetRanking(year, n)
		if err != nil {
			writeError(w, mgr, err)
			return
		}

		writeJSON(w, ranking)
	}
}

func handleAverages(mgr Manager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		averages, err := mgr.GetYearlyAverages()
		if err != nil {
			writeError(w, mgr, err)
			return
		}
		writeJSON(w, averages)
	}
}

func handleNational(mgr Manager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		year, err := yearParam(r, mgr)
		if err != nil {
			writeError(w, mgr, err)
			return
		}

		average, err := mgr.GetNationalAverage(year)
		if err != nil {
			writeError(w, mgr, err)
			return
		}

		writeJSON(w, average)
	}
}

func handleTrend(mgr Manager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		state := strings.TrimPrefix(r.URL.Path, "/api/trend/")
		if state == "" {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(apiError{Error: "state name required"})
			return
		}

		trend, err := mgr.GetStateTrend(state)
		if err != nil {
			writeError(w, mgr, err)
			return
		}

		writeJSON(w, trend)
	}
}

func handleGeoJSON(mgr Manager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/geo+json")
		if _, err := w.Write(mgr.RawGeoJSON()); err != nil {
			slog.Error("writing geojson response failed", "error", err)
		}
	}
}
