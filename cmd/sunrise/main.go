// CLAUDE:SUMMARY Entry point for the sunrise HTTP service — chi router, catalog DB, agent API, head renderer, optional MCP-over-HTTP.
package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/modelcontextprotocol/go-sdk/mcp"
	_ "modernc.org/sqlite"

	"github.com/sunrisefront/sunrise/agentapi"
	"github.com/sunrisefront/sunrise/catalog"
	"github.com/sunrisefront/sunrise/headrender"
	"github.com/sunrisefront/sunrise/internal/config"
	"github.com/sunrisefront/sunrise/pageschema"
	"github.com/sunrisefront/sunrise/shield"
)

const version = "1.0.0"

func main() {
	// Config: YAML file when given, env overrides on top.
	cfg := &config.Config{}
	if path := os.Getenv("CONFIG"); path != "" {
		loaded, err := config.LoadFile(path)
		if err != nil {
			slog.Error("load config", "path", path, "error", err)
			os.Exit(1)
		}
		cfg = loaded
	}
	cfg.Server.Port = env("PORT", cfg.Server.Port)
	cfg.Server.CatalogDB = env("CATALOG_DB", cfg.Server.CatalogDB)
	cfg.Server.LogLevel = env("LOG_LEVEL", cfg.Server.LogLevel)
	cfg.ApplyDefaults()

	// Logging.
	var lvl slog.Level
	switch cfg.Server.LogLevel {
	case "debug":
		lvl = slog.LevelDebug
	case "warn":
		lvl = slog.LevelWarn
	case "error":
		lvl = slog.LevelError
	default:
		lvl = slog.LevelInfo
	}
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: lvl}))
	slog.SetDefault(logger)

	// Signal context.
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	// Catalog DB.
	store, err := catalog.Open(cfg.Server.CatalogDB)
	if err != nil {
		slog.Error("catalog db", "error", err)
		os.Exit(1)
	}
	defer store.Close()
	if err := store.Seed(ctx); err != nil {
		slog.Error("seed catalog", "error", err)
		os.Exit(1)
	}

	// Page schema orchestrator — one per process, torn down at shutdown.
	orch := pageschema.New(&cfg.Site, logger)
	defer orch.Close()

	// Agent-facing service.
	cfg.Agent.Version = version
	agent := agentapi.New(store, &cfg.Agent, logger)

	// Head renderer.
	heads := headrender.New(orch, store, logger)

	// Router.
	r := chi.NewRouter()
	for _, mw := range shield.DefaultStack() {
		r.Use(mw)
	}

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"status":"ok"}`))
	})
	r.Get("/head", heads.ServeHTTP)
	r.Mount("/api", agent.Routes())

	// Optional MCP over streamable HTTP, next to the mock POST surface.
	if env("MCP_TRANSPORT", "") == "http" {
		mcpSrv := mcp.NewServer(&mcp.Implementation{
			Name:    "sunrise",
			Version: version,
		}, nil)
		agent.RegisterMCP(mcpSrv)
		handler := mcp.NewStreamableHTTPHandler(func(*http.Request) *mcp.Server {
			return mcpSrv
		}, nil)
		r.Handle("/mcp", handler)
		slog.Info("MCP streamable HTTP mounted", "path", "/mcp")
	}

	// HTTP server.
	srv := &http.Server{
		Addr:              ":" + cfg.Server.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
		WriteTimeout:      cfg.Server.WriteTimeout,
		IdleTimeout:       cfg.Server.IdleTimeout,
	}

	go func() {
		slog.Info("server starting", "port", cfg.Server.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	<-ctx.Done()
	slog.Info("shutting down")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		slog.Error("shutdown", "error", err)
	}
	slog.Info("server stopped")
}

func env(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
