package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"pay-assist/internal/app"
	"pay-assist/internal/mcp"
	"pay-assist/pkg/config"
	"pay-assist/pkg/logger"

	"go.uber.org/zap"
)

const version = "1.0.0"

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// stdout carries the protocol; logger.New writes to stderr
	appLogger, err := logger.New(cfg.Logger.Level, cfg.Logger.Format)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = appLogger.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	a, err := app.New(ctx, cfg, appLogger)
	if err != nil {
		appLogger.Fatal("Failed to initialize application", zap.Error(err))
	}
	defer a.Close()

	server := mcp.NewServer(a.Toolkit, version, appLogger.Named("mcp"))
	appLogger.Info("MCP server listening on stdio", zap.Int("tools", len(a.Toolkit.Tools())))
	if err := server.Run(ctx, os.Stdin, os.Stdout); err != nil {
		appLogger.Error("MCP server stopped", zap.Error(err))
	}
}
