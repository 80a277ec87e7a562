package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	_ "github.com/Wekraft-001/admin-hub/api/swagger"
	"github.com/Wekraft-001/admin-hub/internal/server"
	"github.com/Wekraft-001/admin-hub/pkg/config"
	"github.com/Wekraft-001/admin-hub/pkg/logger"
	"github.com/Wekraft-001/admin-hub/pkg/tracing"
)

// @title Admin Hub API
// @version 1.0.0
// @description Admin dashboard backend for the learning platform.
// @BasePath /api/v1
// @schemes http https
// @securityDefinitions.apikey SessionAuth
// @in header
// @name Authorization

const shutdownTimeout = 15 * time.Second

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logr, err := logger.New(cfg)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logr.Sync() //nolint:errcheck

	if cfg.Env == config.EnvProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	shutdownTracing, err := tracing.Init(ctx, cfg.Tracing, cfg.Env, logr)
	if err != nil {
		logr.Fatal("failed to init tracing", zap.Error(err))
	}

	app, err := server.NewApp(ctx, cfg, logr)
	if err != nil {
		logr.Fatal("failed to wire application", zap.Error(err))
	}
	app.Start(ctx)

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Port),
		Handler:           app.Router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logr.Sugar().Infow("server starting", "addr", srv.Addr, "env", cfg.Env)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logr.Error("server failed", zap.Error(err))
			stop()
		}
	}()

	<-ctx.Done()
	logr.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logr.Warn("http shutdown incomplete", zap.Error(err))
	}
	app.Close()
	if err := shutdownTracing(shutdownCtx); err != nil {
		logr.Warn("tracing shutdown failed", zap.Error(err))
	}
}
