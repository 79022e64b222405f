package main

// @title           Account Service API
// @version         1.0
// @description     账号管理服务，提供账号的增删改查接口
// @BasePath        /api/v1

import (
	"context"
	"errors"
	"flag"
	"log"
	"net"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"oip/account/internal/app/config"
)

const shutdownTimeout = 10 * time.Second

var configPath = flag.String("config", "config/config.yaml", "配置文件路径")

func main() {
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Config validation failed: %v", err)
	}

	app, cleanup, err := InitializeApp(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize app: %v", err)
	}
	defer cleanup()

	server := &http.Server{
		Addr:              net.JoinHostPort("", cfg.Server.Port),
		Handler:           app.Engine,
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	serveErr := make(chan error, 1)
	go func() {
		app.Logger.Info("Starting HTTP server", "addr", server.Addr, "env", cfg.App.Env)
		serveErr <- server.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		app.Logger.Info("Received shutdown signal, gracefully shutting down...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			app.Logger.Error("HTTP server shutdown error", "error", err)
		}
	case err := <-serveErr:
		if !errors.Is(err, http.ErrServerClosed) {
			app.Logger.Error("HTTP server error", "error", err)
		}
	}

	app.Logger.Info("Application stopped")
}
