package main

import (
	"context"
	"os"
	"time"

	"leadportaal/internal/config"
	"leadportaal/internal/db"
	"leadportaal/internal/logging"
	"leadportaal/internal/observability"
	"leadportaal/internal/repository"
	"leadportaal/internal/server"
	"leadportaal/internal/tasks"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	// Initialize logger configuration
	logConfig := &logging.Config{
		Level:      cfg.LogLevel,
		File:       cfg.LogFile,
		MaxSize:    100,
		MaxBackups: 3,
		MaxAge:     7,
	}
	if err := logging.InitLogger(logConfig); err != nil {
		panic(err)
	}
	logger := logging.GetGlobalLogger()
	defer logger.Close()

	logger.Info("Starting server in %s mode", cfg.Environment)

	// Initialize database connection
	conn, err := db.Initialize(cfg)
	if err != nil {
		logger.Error("Failed to initialize database: %v", err)
		os.Exit(1)
	}
	defer conn.Close()

	// Initialize tracing
	shutdownTracing, err := observability.SetupTracing(context.Background(), server.ServiceName, cfg.OTLPEndpoint)
	if err != nil {
		logger.Error("Failed to set up tracing: %v", err)
		os.Exit(1)
	}
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := shutdownTracing(ctx); err != nil {
			logger.Warn("Trace exporter shutdown: %v", err)
		}
	}()

	// Start activity retention task
	retention := tasks.NewActivityRetention(repository.NewActivityRepository(conn), tasks.DefaultRetentionDays)
	retention.Start()
	logger.Info("Started activity retention task")

	// Create and start server
	srv := server.NewServer(cfg, conn)
	if err := srv.Start(); err != nil {
		logger.Error("Failed to start server: %v", err)
		os.Exit(1)
	}
}
