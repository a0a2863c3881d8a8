package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS invoices (
		id UUID PRIMARY KEY,
		customer_name TEXT NOT NULL DEFAULT '',
		customer_email TEXT NOT NULL DEFAULT '',
		amount_minor BIGINT NOT NULL CHECK (amount_minor > 0),
		currency CHAR(3) NOT NULL,
		memo TEXT NOT NULL DEFAULT '',
		due_date DATE,
		status TEXT NOT NULL,
		sent_to TEXT NOT NULL DEFAULT '',
		sent_at TIMESTAMPTZ,
		created_at TIMESTAMPTZ NOT NULL,
		updated_at TIMESTAMPTZ NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_invoices_status ON invoices (status)`,
	`CREATE TABLE IF NOT EXISTS payment_links (
		id UUID PRIMARY KEY,
		title TEXT NOT NULL DEFAULT '',
		link_type TEXT NOT NULL,
		amount_minor BIGINT,
		min_amount_minor BIGINT,
		max_amount_minor BIGINT,
		currency CHAR(3) NOT NULL,
		status TEXT NOT NULL,
		url TEXT NOT NULL,
		created_at TIMESTAMPTZ NOT NULL,
		updated_at TIMESTAMPTZ NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_payment_links_status ON payment_links (status)`,
}

// EnsureSchema creates the payment tables if they do not exist yet.
func EnsureSchema(ctx context.Context, pool *pgxpool.Pool, logger *zap.Logger) error {
	for _, stmt := range schemaStatements {
		if _, err := pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("failed to apply schema: %w", err)
		}
	}
	logger.Info("Database schema ready", zap.Int("statements", len(schemaStatements)))
	return nil
}
