package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"brokeria-dashboard-be/internal/bootstrap"
	"brokeria-dashboard-be/internal/config"
	"brokeria-dashboard-be/internal/pkg/logger"
	"brokeria-dashboard-be/internal/server"
	"brokeria-dashboard-be/internal/tracer"
	"brokeria-dashboard-be/pkg/database"

	gormlogger "gorm.io/gorm/logger"
)

const shutdownTimeout = 10 * time.Second

func main() {
	// 1. Configuration
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	// 2. Logger and tracer
	zapLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.IsProduction())
	defer zapLogger.Sync()

	shutdownTracer := tracer.InitTracer(cfg.Tracing, zapLogger)

	// 3. Database
	pool := database.DefaultPoolConfig()
	pool.MaxOpenConns = cfg.Database.MaxOpenConns
	pool.MaxIdleConns = cfg.Database.MaxIdleConns

	gormDB, err := database.NewGormDBFromDSN(cfg.Database.DSN(), pool,
		logger.NewGormLogger(zapLogger, gormlogger.Warn, 500*time.Millisecond))
	if err != nil {
		zapLogger.Error("Main", "Unable to connect to database", map[string]interface{}{"error": err.Error()})
		os.Exit(1)
	}

	// 4. Dependencies
	container, err := bootstrap.NewContainer(gormDB, cfg, zapLogger)
	if err != nil {
		zapLogger.Error("Main", "Failed to build container", map[string]interface{}{"error": err.Error()})
		os.Exit(1)
	}

	bootCtx, cancelBoot := context.WithTimeout(context.Background(), 15*time.Second)
	if err := container.AuthService.EnsureDefaultAdmin(bootCtx); err != nil {
		zapLogger.Error("Main", "Admin bootstrap failed", map[string]interface{}{"error": err.Error()})
	}
	cancelBoot()

	// 5. Serve until signalled
	srv := server.New(cfg, container)
	go func() {
		if err := srv.Run(); err != nil {
			zapLogger.Error("Main", "Server stopped", map[string]interface{}{"error": err.Error()})
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	zapLogger.Info("Main", "Shutting down", nil)
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		zapLogger.Error("Main", "Graceful shutdown failed", map[string]interface{}{"error": err.Error()})
	}
	if err := container.Close(); err != nil {
		zapLogger.Warn("Main", "Failed to close clients", map[string]interface{}{"error": err.Error()})
	}
	if sqlDB, err := gormDB.DB(); err == nil {
		_ = sqlDB.Close()
	}
	if err := shutdownTracer(ctx); err != nil {
		zapLogger.Warn("Main", "Tracer shutdown failed", map[string]interface{}{"error": err.Error()})
	}
}
