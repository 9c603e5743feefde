package main

import (
	"context"
	_ "embed"
	"errors"
	"log"
	"log/slog"
	nethttp "net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"markdown-json-editor/internal/config"
	"markdown-json-editor/internal/document"
	"markdown-json-editor/internal/handlers"
	"markdown-json-editor/internal/http"
	"markdown-json-editor/internal/jsonmd"
	"markdown-json-editor/internal/markup"
	"markdown-json-editor/internal/service"
	"markdown-json-editor/internal/storage"
	"markdown-json-editor/internal/workspace"
)

//go:embed web/index.html
var indexHTML string

func main() {
	// Load configuration first (needed for log level)
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Configure structured logging with configurable level and format
	opts := &slog.HandlerOptions{
		Level: cfg.LogLevel,
	}
	var handler slog.Handler
	if cfg.LogFormat == "json" {
		handler = slog.NewJSONHandler(os.Stdout, opts)
	} else {
		handler = slog.NewTextHandler(os.Stdout, opts)
	}
	logger := slog.New(handler)
	slog.SetDefault(logger)
	slog.Debug("Logging configured", "level", cfg.LogLevel.String(), "format", cfg.LogFormat)

	// Initialize database
	db, err := storage.New(cfg.DBPath)
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}
	defer func() {
		_ = db.Close()
	}()

	if err := storage.Migrate(db); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}
	slog.Info("Database initialized", "path", cfg.DBPath)

	documentRepo := storage.NewDocumentRepo(db)
	sectionRepo := storage.NewSectionRepo(db)

	files, err := workspace.NewManager(cfg.WorkspacePath, int64(cfg.MaxImportBytes))
	if err != nil {
		log.Fatalf("Failed to open workspace: %v", err)
	}
	slog.Info("Workspace ready", "root", files.Root())

	extractorOpts := []jsonmd.Option{jsonmd.WithLogger(logger)}
	if cfg.RepairJSON {
		extractorOpts = append(extractorOpts, jsonmd.WithRepair())
	}
	if cfg.ConvertHTML {
		extractorOpts = append(extractorOpts, jsonmd.WithTextFilter(markup.HTMLToMarkdown))
	}
	extractor := jsonmd.New(extractorOpts...)
	slog.Debug("Extractor configured", "repair_json", cfg.RepairJSON, "convert_html", cfg.ConvertHTML)

	renderer := markup.NewRenderer()
	builder := document.NewBuilder(renderer)

	deps := &http.Deps{
		ImportService:   service.NewImportService(extractor, documentRepo, sectionRepo, files, cfg.MaxImportBytes),
		DocumentService: service.NewDocumentService(documentRepo, sectionRepo),
		ExportService:   service.NewExportService(builder, files, cfg.MaxImportBytes),
		EditorService:   service.NewEditorService(renderer, cfg.MaxImportBytes),
		HealthChecks: map[string]handlers.HealthCheck{
			"database":  db.PingContext,
			"workspace": files.Check,
		},
		IndexHTML:    indexHTML,
		MaxBodyBytes: int64(cfg.MaxImportBytes),
	}
	router := http.NewRouter(deps)

	server := &nethttp.Server{
		Addr:              ":" + cfg.APIPort,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		slog.Info("Starting API server", "addr", server.Addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, nethttp.ErrServerClosed) {
			log.Fatalf("API server failed to start: %v", err)
		}
	}()

	<-ctx.Done()
	slog.Info("Shutting down API server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		slog.Error("Server forced to shutdown", "error", err)
	}
	slog.Info("Server exited")
}
