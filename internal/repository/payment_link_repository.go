package repository

import (
	"context"
	"fmt"
	"strings"
	"time"

	"pay-assist/internal/models"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

var paymentLinkColumns = []string{
	"id", "title", "link_type", "amount_minor", "min_amount_minor", "max_amount_minor",
	"currency", "status", "url", "created_at", "updated_at",
}

type PaymentLinkRepository struct {
	db     *pgxpool.Pool
	logger *zap.Logger
}

func NewPaymentLinkRepository(db *pgxpool.Pool, logger *zap.Logger) *PaymentLinkRepository {
	return &PaymentLinkRepository{
		db:     db,
		logger: logger,
	}
}

func (r *PaymentLinkRepository) Create(ctx context.Context, link *models.PaymentLink) error {
	query := squirrel.Insert("payment_links").
		Columns(paymentLinkColumns...).
		Values(link.ID, link.Title, link.LinkType, link.AmountMinor, link.MinAmountMinor, link.MaxAmountMinor,
			link.Currency, link.Status, link.URL, link.CreatedAt, link.UpdatedAt).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return err
	}

	if _, err := r.db.Exec(ctx, sql, args...); err != nil {
		return fmt.Errorf("failed to insert payment link: %w", err)
	}
	return nil
}

func (r *PaymentLinkRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.PaymentLink, error) {
	query := squirrel.Select(paymentLinkColumns...).
		From("payment_links").
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	var link models.PaymentLink
	err = r.db.QueryRow(ctx, sql, args...).Scan(
		&link.ID, &link.Title, &link.LinkType, &link.AmountMinor, &link.MinAmountMinor, &link.MaxAmountMinor,
		&link.Currency, &link.Status, &link.URL, &link.CreatedAt, &link.UpdatedAt,
	)
	if err != nil {
		return nil, mapNotFound(err)
	}

	return &link, nil
}

func (r *PaymentLinkRepository) List(ctx context.Context, filter models.PaymentLinkFilter) ([]models.PaymentLinkSummary, error) {
	query := squirrel.Select("id", "link_type", "currency", "status", "created_at").
		From("payment_links").
		OrderBy("created_at DESC").
		PlaceholderFormat(squirrel.Dollar)

	if filter.Status != "" {
		query = query.Where(squirrel.Eq{"status": filter.Status})
	}
	if filter.Currency != "" {
		query = query.Where(squirrel.Eq{"currency": filter.Currency})
	}
	if filter.MinAmountMinor > 0 {
		// donation links compare on their ceiling
		query = query.Where(squirrel.Expr("COALESCE(amount_minor, max_amount_minor) >= ?", filter.MinAmountMinor))
	}
	if filter.Limit > 0 {
		query = query.Limit(filter.Limit)
	}
	if filter.Offset > 0 {
		query = query.Offset(filter.Offset)
	}

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list payment links: %w", err)
	}
	defer rows.Close()

	var out []models.PaymentLinkSummary
	for rows.Next() {
		var s models.PaymentLinkSummary
		if err := rows.Scan(&s.ID, &s.LinkType, &s.Currency, &s.Status, &s.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, s)
	}

	return out, rows.Err()
}

func (r *PaymentLinkRepository) SetStatus(ctx context.Context, id uuid.UUID, status models.LinkStatus) (*models.PaymentLink, error) {
	query := squirrel.Update("payment_links").
		Set("status", status).
		Set("updated_at", time.Now().UTC()).
		Where(squirrel.Eq{"id": id}).
		Suffix("RETURNING " + joinColumns(paymentLinkColumns)).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	var link models.PaymentLink
	err = r.db.QueryRow(ctx, sql, args...).Scan(
		&link.ID, &link.Title, &link.LinkType, &link.AmountMinor, &link.MinAmountMinor, &link.MaxAmountMinor,
		&link.Currency, &link.Status, &link.URL, &link.CreatedAt, &link.UpdatedAt,
	)
	if err != nil {
		return nil, mapNotFound(err)
	}

	r.logger.Info("Payment link status changed",
		zap.String("id", id.String()),
		zap.String("status", string(status)),
	)
	return &link, nil
}

func joinColumns(cols []string) string {
	return strings.Join(cols, ", ")
}
