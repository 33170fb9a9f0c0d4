package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"co-dashboard/internal/chart"
	"co-dashboard/internal/config"
	"co-dashboard/internal/dataset"
	"co-dashboard/internal/export"
	"co-dashboard/internal/metrics"
	"co-dashboard/internal/summary"
	"co-dashboard/internal/web"
)

var (
	servePort     int
	serveDataFile string
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the dashboard HTTP server",
	RunE: func(cmd *cobra.Command, _ []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		return runServe(cfg)
	},
}

func init() {
	serveCmd.Flags().IntVarP(&servePort, "port", "p", 0, "HTTP server port (overrides config)")
	serveCmd.Flags().StringVar(&serveDataFile, "data-file", "", "GeoJSON source file (overrides config)")
}

// loadConfig reads the config file and applies flag overrides.
func loadConfig(cmd *cobra.Command) (config.Config, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return cfg, err
	}

	if cmd.Flags().Changed("port") {
		cfg.Port = servePort
	}
	if serveDataFile != "" {
		cfg.DataFile = serveDataFile
	}
	if debug {
		cfg.Debug = true
	}

	return cfg, cfg.Validate()
}

func runServe(cfg config.Config) error {
	slog.Info("CO dashboard starting", "port", cfg.Port, "data_file", cfg.DataFile)
	slog.Info("build", "version", BuildVersion, "commit", BuildCommit, "date", BuildDate)

	// Load once; the dataset is immutable for the process lifetime.
	ds, err := dataset.Load(cfg.DataFile)
	if err != nil {
		return err
	}

	mgr := summary.NewManager(ds)

	m := metrics.New()
	m.SetDatasetSize(ds.Count(), len(ds.States()))

	mux := http.NewServeMux()
	web.RegisterHandlers(mux, mgr)
	summary.RegisterHandlers(mux, mgr)
	chart.RegisterHandlers(mux, mgr)
	export.RegisterHandlers(mux, mgr)
	mux.HandleFunc("/health", handleHealth(mgr))
	mux.Handle("/metrics", m.Handler())

	server := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.Port),
		Handler: m.Middleware(mux),
	}

	// Handle graceful shutdown
	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		<-sigChan

		slog.Info("shutting down")

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer shutdownCancel()

		if err := server.Shutdown(shutdownCtx); err != nil {
			slog.Error("shutdown failed", "error", err)
		}
	}()

	slog.Info("server listening", "url", fmt.Sprintf("http://localhost:%d", cfg.Port))
	if err := server.ListenAndServe(); err != http.ErrServerClosed {
		return err
	}
	return nil
}

func handleHealth(mgr summary.Manager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")

		body := struct {
			Status string `json:"status"`
			States int    `json:"states"`
			Years  []int  `json:"years"`
			Build  struct {
				Version string `json:"version"`
				Commit  string `json:"commit"`
				Date    string `json:"date"`
			} `json:"build"`
		}{
			Status: "ok",
			States: len(mgr.States()),
			Years:  mgr.Years(),
		}
		body.Build.Version = BuildVersion
		body.Build.Commit = BuildCommit
		body.Build.Date = BuildDate

		if err := json.NewEncoder(w).Encode(body); err != nil {
			slog.Error("encoding health response failed", "error", err)
		}
	}
}
