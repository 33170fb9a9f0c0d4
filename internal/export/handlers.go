package export

import (
	"log/slog"
	"net/http"

	"co-dashboard/internal/summary"
)

// RegisterHandlers registers the report download endpoint.
func RegisterHandlers(mux *http.ServeMux, mgr summary.Manager) {
	mux.HandleFunc("/export/report.xlsx", handleReport(mgr))
}

func handleReport(mgr summary.Manager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		w.Header().Set("Content-Disposition", `attachment; filename="nigeria_co_report.xlsx"`)

		if err := Write(w, mgr); err != nil {
			slog.Error("building report failed", "error", err)
			http.Error(w, "report unavailable", http.StatusInternalServerError)
		}
	}
}
