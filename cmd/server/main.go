package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"
	"go.uber.org/zap"

	"github.com/rpggio/termstate/internal/app"
	"github.com/rpggio/termstate/internal/config"
	"github.com/rpggio/termstate/internal/logging"
	"github.com/rpggio/termstate/internal/mcp"
	"github.com/rpggio/termstate/internal/prefs"
	"github.com/rpggio/termstate/internal/sqlite"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config error: %v\n", err)
		os.Exit(1)
	}

	// Logs go to stderr (or a file) so stdout stays clean for JSON-RPC.
	logger, flush, err := logging.New(logging.Options{Level: cfg.Log.Level, Path: cfg.Log.Path})
	if err != nil {
		fmt.Fprintf(os.Stderr, "log error: %v\n", err)
		os.Exit(1)
	}
	defer flush()

	store, closeStore, err := openPrefs(cfg.Prefs)
	if err != nil {
		logger.Error("failed to open preferences", zap.Error(err))
		os.Exit(1)
	}
	defer closeStore()

	a, err := app.New(app.Config{
		BaseURL:             cfg.API.BaseURL,
		Timeout:             cfg.API.Timeout,
		LocalesTTL:          cfg.Locales.CacheTTL,
		ProviderRedirectURL: cfg.API.ProviderRedirectURL,
		Prefs:               store,
	}, logger)
	if err != nil {
		logger.Error("failed to create app", zap.Error(err))
		os.Exit(1)
	}
	if err := a.Start(context.Background()); err != nil {
		// A stale token only means signing in again.
		logger.Warn("session restore failed", zap.Error(err))
	}

	mcpServer := mcp.NewServer(mcp.Config{
		App:           a,
		TransportMode: cfg.Transport.Mode,
		Logger:        logger,
	})

	if cfg.Transport.Mode == "stdio" {
		runStdioMode(logger, mcpServer)
	} else {
		runHTTPMode(logger, mcpServer, cfg.Transport.Host, cfg.Transport.Port)
	}
}

func openPrefs(cfg config.PrefsConfig) (prefs.Store, func(), error) {
	if cfg.Driver == "memory" {
		return prefs.NewMemory(), func() {}, nil
	}

	if err := ensureDBDir(cfg.Path); err != nil {
		return nil, nil, fmt.Errorf("prepare database path: %w", err)
	}
	db, err := sqlite.New(cfg.Path)
	if err != nil {
		return nil, nil, err
	}
	if err := db.RunMigrations(); err != nil {
		db.Close()
		return nil, nil, err
	}
	return sqlite.NewPreferenceStore(db), func() { db.Close() }, nil
}

func runStdioMode(logger *zap.Logger, mcpServer *sdkmcp.Server) {
	logger.Info("starting stdio transport")

	transport := &sdkmcp.StdioTransport{}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-stop
		logger.Info("shutting down")
		cancel()
	}()

	// Run blocks until stdin closes or context is canceled
	if err := mcpServer.Run(ctx, transport); err != nil {
		logger.Error("stdio server error", zap.Error(err))
		os.Exit(1)
	}
}

func runHTTPMode(logger *zap.Logger, mcpServer *sdkmcp.Server, host string, port int) {
	mcpHandler := sdkmcp.NewStreamableHTTPHandler(
		func(r *http.Request) *sdkmcp.Server { return mcpServer },
		&sdkmcp.StreamableHTTPOptions{
			Stateless:      false,
			SessionTimeout: 30 * time.Minute,
		},
	)

	router := http.NewServeMux()
	router.Handle("/mcp", mcpHandler)
	router.Handle("/mcp/", mcpHandler)
	router.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})

	addr := fmt.Sprintf("%s:%d", host, port)
	httpServer := &http.Server{
		Addr:    addr,
		Handler: router,
	}

	go func() {
		logger.Info("server listening", zap.String("addr", addr))
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("server error", zap.Error(err))
		}
	}()

	waitForShutdown(logger, httpServer)
}

func ensureDBDir(path string) error {
	if path == ":memory:" || path == "" {
		return nil
	}
	dir := filepath.Dir(path)
	if dir == "." {
		return nil
	}
	return os.MkdirAll(dir, 0o755)
}

func waitForShutdown(logger *zap.Logger, server *http.Server) {
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	logger.Info("shutting down")
	if err := server.Shutdown(ctx); err != nil {
		logger.Error("shutdown error", zap.Error(err))
	}
}
