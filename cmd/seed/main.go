package main

import (
	"context"
	"crypto/sha256"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"pay-assist/internal/app"
	"pay-assist/internal/dto"
	"pay-assist/pkg/config"
	"pay-assist/pkg/logger"

	"go.uber.org/zap"
)

var demoInvoices = []dto.CreateInvoiceRequest{
	{Amount: "250", Currency: "EUR", Email: "bob.smith@example.com", Memo: "Website design"},
	{Amount: "1200.50", Currency: "USD", Email: "accounts@acme.io", CustomerName: "Acme Inc", Memo: "Q3 retainer"},
	{Amount: "75", Currency: "GBP", Email: "jane_doe@example.co.uk", Memo: "Consultation"},
	{Amount: "3400", Currency: "USD", Email: "finance@globex.com", CustomerName: "Globex", DueDate: "2026-12-31"},
}

var demoLinks = []dto.CreatePaymentLinkRequest{
	{Amount: "20", Currency: "USD", Memo: "Workshop ticket", LinkType: "PURCHASE"},
	{MinAmount: "5", MaxAmount: "50", Currency: "USD", Memo: "Charity", LinkType: "DONATION"},
	{Amount: "99.99", Currency: "EUR", Memo: "Annual plan", LinkType: "PURCHASE"},
}

// seedCache records which demo rows were already created.
type seedCache struct {
	Seeded map[string]time.Time `json:"seeded"`
}

func loadCache(path string) (*seedCache, error) {
	cache := &seedCache{Seeded: make(map[string]time.Time)}

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return cache, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read cache file: %w", err)
	}
	if len(data) == 0 {
		return cache, nil
	}
	if err := json.Unmarshal(data, cache); err != nil {
		return nil, fmt.Errorf("failed to parse cache file: %w", err)
	}
	return cache, nil
}

func saveCache(path string, cache *seedCache) error {
	data, err := json.MarshalIndent(cache, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal cache: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write cache file: %w", err)
	}
	return nil
}

func seedKey(kind string, v any) string {
	data, _ := json.Marshal(v)
	sum := sha256.Sum256(append([]byte(kind+":"), data...))
	return fmt.Sprintf("%x", sum[:8])
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if err := logger.Init(cfg.Logger.Level, cfg.Logger.Format); err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()
	appLogger := logger.Get()

	ctx := context.Background()
	a, err := app.New(ctx, cfg, appLogger)
	if err != nil {
		appLogger.Fatal("Failed to initialize application", zap.Error(err))
	}
	defer a.Close()

	cacheFile := filepath.Join("cmd", "seed", ".seed_cache.json")
	cache, err := loadCache(cacheFile)
	if err != nil {
		appLogger.Fatal("Failed to load seed cache", zap.Error(err))
	}

	appLogger.Info("Starting database seeding...")

	var created, skipped int
	for i := range demoInvoices {
		key := seedKey("invoice", demoInvoices[i])
		if _, ok := cache.Seeded[key]; ok {
			skipped++
			continue
		}
		inv, err := a.Invoices.Create(ctx, &demoInvoices[i])
		if err != nil {
			appLogger.Error("Failed to seed invoice", zap.String("email", demoInvoices[i].Email), zap.Error(err))
			continue
		}
		cache.Seeded[key] = time.Now()
		created++
		appLogger.Info("Seeded invoice", zap.String("id", inv.ID), zap.String("amount", inv.Amount), zap.String("currency", inv.Currency))
	}

	for i := range demoLinks {
		key := seedKey("link", demoLinks[i])
		if _, ok := cache.Seeded[key]; ok {
			skipped++
			continue
		}
		link, err := a.PaymentLinks.Create(ctx, &demoLinks[i])
		if err != nil {
			appLogger.Error("Failed to seed payment link", zap.String("memo", demoLinks[i].Memo), zap.Error(err))
			continue
		}
		cache.Seeded[key] = time.Now()
		created++
		appLogger.Info("Seeded payment link", zap.String("id", link.ID), zap.String("url", link.URL))
	}

	if err := saveCache(cacheFile, cache); err != nil {
		appLogger.Warn("Failed to save seed cache", zap.Error(err))
	}

	appLogger.Info("Database seeding completed", zap.Int("created", created), zap.Int("skipped", skipped))
}
