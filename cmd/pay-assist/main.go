package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"pay-assist/internal/api"
	"pay-assist/internal/api/handlers"
	"pay-assist/internal/app"
	"pay-assist/pkg/config"
	"pay-assist/pkg/logger"

	"go.uber.org/zap"
)

const version = "1.0.0"

// @title Pay Assist API
// @version 1.0
// @description Natural-language assistant for invoices and payment links

// @host localhost:8080
// @BasePath /

// @securityDefinitions.apikey Bearer
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	if err := logger.Init(cfg.Logger.Level, cfg.Logger.Format); err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	appLogger := logger.Get()
	appLogger.Info("Starting Pay Assist service",
		zap.String("version", version),
		zap.String("llm_provider", cfg.LLM.Provider),
		zap.Bool("llm_enabled", cfg.LLM.Enabled()),
	)

	ctx := context.Background()
	a, err := app.New(ctx, cfg, appLogger)
	if err != nil {
		appLogger.Fatal("Failed to initialize application", zap.Error(err))
	}
	defer a.Close()

	h := api.Handlers{
		Auth:         handlers.NewAuthHandler(a.Auth, appLogger),
		Assist:       handlers.NewAssistHandler(a.Assist, appLogger),
		Invoices:     handlers.NewInvoiceHandler(a.Invoices, a.Export, appLogger),
		PaymentLinks: handlers.NewPaymentLinkHandler(a.PaymentLinks, appLogger),
		Health:       handlers.NewHealthHandler(a.Router.HasLLM(), version),
	}

	server := api.SetupRouter(h, a.JWT, appLogger)

	go func() {
		addr := ":" + cfg.Server.Port
		appLogger.Info("Server starting", zap.String("address", addr))
		if err := server.Listen(addr); err != nil {
			appLogger.Fatal("Server failed", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	appLogger.Info("Shutting down server")
	if err := server.Shutdown(); err != nil {
		appLogger.Error("Server shutdown error", zap.Error(err))
	}
}
