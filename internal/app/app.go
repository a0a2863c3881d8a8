// Package app wires configuration, storage and services into the pieces each
// binary needs.
package app

import (
	"context"
	"fmt"

	"pay-assist/internal/assist"
	"pay-assist/internal/repository"
	"pay-assist/internal/service"
	"pay-assist/internal/tools"
	"pay-assist/pkg/auth"
	"pay-assist/pkg/config"
	"pay-assist/pkg/postgres"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

// Engine is the assist router without any storage behind it.
type Engine struct {
	Router *assist.Router
	close  func() error
}

func NewEngine(cfg *config.Config, logger *zap.Logger) (*Engine, error) {
	llm, closeLLM, err := service.NewCompleter(&cfg.LLM, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize LLM: %w", err)
	}

	return &Engine{
		Router: assist.NewRouter(llm, assist.WithLogger(logger.Named("assist"))),
		close:  closeLLM,
	}, nil
}

func (e *Engine) Close() error {
	return e.close()
}

// App holds every service backed by Postgres.
type App struct {
	*Engine

	DB           *pgxpool.Pool
	JWT          *auth.JWTManager
	Auth         *service.AuthService
	Invoices     *service.InvoiceService
	PaymentLinks *service.PaymentLinkService
	Export       *service.ExportService
	Toolkit      *tools.Toolkit
	Assist       *service.AssistService

	logger *zap.Logger
}

func New(ctx context.Context, cfg *config.Config, logger *zap.Logger) (*App, error) {
	db, err := postgres.NewPool(ctx, &cfg.Database, logger)
	if err != nil {
		return nil, err
	}
	if err := postgres.EnsureSchema(ctx, db, logger); err != nil {
		db.Close()
		return nil, err
	}

	engine, err := NewEngine(cfg, logger)
	if err != nil {
		db.Close()
		return nil, err
	}

	invoiceRepo := repository.NewInvoiceRepository(db, logger)
	linkRepo := repository.NewPaymentLinkRepository(db, logger)

	jwtManager := auth.NewJWTManager(cfg.JWT.SecretKey, cfg.JWT.Expiration, cfg.JWT.RefreshExp)

	invoices := service.NewInvoiceService(invoiceRepo, &cfg.Payments, logger)
	links := service.NewPaymentLinkService(linkRepo, &cfg.Payments, logger)

	toolkit, err := tools.New(invoices, links, engine.Router, cfg.Assist.MinInputLength, logger.Named("tools"))
	if err != nil {
		_ = engine.Close()
		db.Close()
		return nil, fmt.Errorf("failed to build toolkit: %w", err)
	}

	return &App{
		Engine:       engine,
		DB:           db,
		JWT:          jwtManager,
		Auth:         service.NewAuthService(&cfg.Auth, jwtManager, logger),
		Invoices:     invoices,
		PaymentLinks: links,
		Export:       service.NewExportService(invoices, logger),
		Toolkit:      toolkit,
		Assist:       service.NewAssistService(engine.Router, toolkit, cfg.Assist.MinInputLength, logger),
		logger:       logger,
	}, nil
}

func (a *App) Close() {
	if err := a.Engine.Close(); err != nil {
		a.logger.Warn("LLM close failed", zap.Error(err))
	}
	a.DB.Close()
}
