package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/skytracker/skytracker/internal/api"
	"github.com/skytracker/skytracker/internal/config"
	"github.com/skytracker/skytracker/internal/factory"
	"github.com/skytracker/skytracker/internal/web"
)

func main() {
	// Load configuration from environment (and .env if present)
	env, err := config.Load()
	if err != nil {
		slog.Error("invalid configuration", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Set up logging with JSON output
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: env.Log.SlogLevel(),
	}))
	slog.SetDefault(logger)

	// Create application factory
	app, err := factory.New(factory.FromEnv(env, logger))
	if err != nil {
		logger.Error("failed to create application", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer func() { _ = app.Close() }()

	// Find static files directory
	staticDir := env.Server.StaticDir
	if staticDir == "" {
		staticDir = findStaticDir()
	}

	// Create API router
	apiRouter := api.NewRouter(api.RouterConfig{
		Logger:    logger,
		Tracker:   app.Tracker,
		Auctions:  app.Auctions,
		Pipeline:  app.Pipeline,
		NameCache: app.NameCache,
	})

	// Create web router
	webRouter := web.NewRouter(web.RouterConfig{
		Logger:    logger,
		Tracker:   app.Tracker,
		Auctions:  app.Auctions,
		Watchlist: app.Watchlist,
		Clock:     app.Clock,
		StaticDir: staticDir,
	})

	// Combine routers
	mux := http.NewServeMux()
	mux.Handle("/api/", apiRouter)
	mux.Handle("/", webRouter)

	// Create server
	server := api.NewServer(mux, api.ServerConfigFrom(env.Server), logger)

	// Handle graceful shutdown
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	// Start server in goroutine
	errCh := make(chan error, 1)
	go func() {
		errCh <- server.Start()
	}()

	logger.Info("server started",
		slog.String("addr", server.Addr()),
		slog.String("cache", env.Cache.Type),
	)

	// Wait for shutdown or error
	select {
	case err := <-errCh:
		if err != nil {
			logger.Error("server error", slog.String("error", err.Error()))
			_ = app.Close()
			os.Exit(1)
		}
	case <-ctx.Done():
		logger.Info("shutdown signal received")
		if err := server.Shutdown(context.Background()); err != nil {
			logger.Error("shutdown error", slog.String("error", err.Error()))
			_ = app.Close()
			os.Exit(1)
		}
	}

	logger.Info("server stopped")
}

// findStaticDir looks for the static files directory
func findStaticDir() string {
	// Try common locations
	candidates := []string{
		"internal/web/static",
		filepath.Join(os.Getenv("PWD"), "internal/web/static"),
	}

	for _, dir := range candidates {
		if info, err := os.Stat(dir); err == nil && info.IsDir() {
			return dir
		}
	}

	// Default to relative path
	return "internal/web/static"
}
