package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/boydsigns/proposalgen/internal/artifact"
	"github.com/boydsigns/proposalgen/internal/config"
	"github.com/boydsigns/proposalgen/internal/logging"
	"github.com/boydsigns/proposalgen/internal/proposal"
	"github.com/boydsigns/proposalgen/internal/sheet"
	"github.com/boydsigns/proposalgen/internal/web"
)

func main() {
	// Load .env file if it exists (Overload overwrites existing env vars)
	if err := godotenv.Overload(); err != nil {
		slog.Info("no .env file found, using environment variables")
	} else {
		slog.Info("loaded .env file (overwriting existing env vars)")
	}

	// Load and validate configuration
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	// Setup structured logging based on config
	logging.Setup(cfg.Logging.Level, cfg.Logging.Format)

	slog.Info("configuration loaded",
		"port", cfg.Server.Port,
		"template", cfg.Template.Path,
		"sheet", cfg.Template.SheetName,
		"output_dir", cfg.Output.Dir,
		"rate_limit_enabled", cfg.Rate.Enabled,
	)

	// The template must exist before we accept traffic; a missing file
	// would otherwise fail on every request.
	if _, err := os.Stat(cfg.Template.Path); err != nil {
		slog.Error("template workbook not found", "path", cfg.Template.Path, "error", err)
		os.Exit(1)
	}

	layout := proposal.DefaultLayout()
	layout.SheetName = cfg.Template.SheetName
	layout.Body = sheet.Body{
		Start:          cfg.Template.BodyStartRow,
		End:            cfg.Template.BodyEndRow,
		ExtraBlankRows: cfg.Template.ExtraBlankRows,
	}
	if cfg.Logo.AnchorCell != "" {
		layout.LogoCell = cfg.Logo.AnchorCell
	}

	assembler := proposal.New(proposal.Options{
		TemplatePath:  cfg.Template.Path,
		LogoPath:      cfg.Logo.Path,
		TotalsByLabel: strings.EqualFold(cfg.Template.TotalsLookup, "label"),
		Layout:        layout,
	})

	store, err := artifact.NewStore(cfg.Output.Dir, cfg.Output.FilePrefix, cfg.Template.Path)
	if err != nil {
		slog.Error("failed to prepare output directory", "error", err)
		os.Exit(1)
	}

	server := web.NewServer(assembler, store, cfg)

	// Graceful shutdown
	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		<-sigCh

		slog.Info("shutting down...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer cancel()

		if err := server.Shutdown(shutdownCtx); err != nil {
			slog.Error("shutdown error", "error", err)
		}
	}()

	// Start server (uses addr from config internally)
	slog.Info("server starting", "addr", cfg.Server.Addr())
	if err := server.Start(); err != nil && err != http.ErrServerClosed {
		slog.Error("server stopped", "error", err)
		os.Exit(1)
	}
	slog.Info("server stopped")
}
