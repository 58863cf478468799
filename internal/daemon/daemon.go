package daemon

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"github.com/lmittmann/tint"
	"github.com/mattn/go-isatty"

	"github.com/ecotrack-app/ecotrack/internal/api"
	"github.com/ecotrack-app/ecotrack/internal/app/goals"
	"github.com/ecotrack-app/ecotrack/internal/app/insight"
	"github.com/ecotrack-app/ecotrack/internal/infra/sqlite"
)

// Run starts the EcoTrack daemon and blocks serving HTTP until the listener
// fails.
func Run(cfg Config) error {
	logger := NewLogger(cfg.Log)
	slog.SetDefault(logger)

	if err := os.MkdirAll(cfg.Store.Dir, 0o755); err != nil {
		return fmt.Errorf("create store dir: %w", err)
	}
	db, err := sqlite.Open(cfg.Store.Dir)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer db.Close()

	srv := api.NewServer(logger, db, goals.NewService(db, db), insight.NewGenerator(db, db))
	if cfg.API.EnableMetrics {
		srv.EnableMetrics()
	}
	if cfg.Insights.LiveFeed {
		srv.SetTipHub(api.NewTipHub())
	}

	addr := fmt.Sprintf("%s:%d", cfg.API.Host, cfg.API.Port)
	logger.Info("starting ecotrack api", "addr", addr, "store", cfg.Store.Dir)
	return http.ListenAndServe(addr, srv.Handler())
}

// NewLogger builds the slog logger for the configured format: colored text
// for terminals, JSON for log pipelines.
func NewLogger(cfg LogConfig) *slog.Logger {
	switch cfg.Format {
	case "json":
		return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
			Level: slogLevel(cfg.Level),
		}))
	default:
		return slog.New(tint.NewHandler(os.Stdout, &tint.Options{
			Level:   slogLevel(cfg.Level),
			NoColor: !isatty.IsTerminal(os.Stdout.Fd()),
		}))
	}
}

func slogLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
