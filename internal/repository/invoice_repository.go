package repository

import (
	"context"
	"fmt"
	"time"

	"pay-assist/internal/models"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

var invoiceColumns = []string{
	"id", "customer_name", "customer_email", "amount_minor", "currency", "memo",
	"due_date", "status", "sent_to", "sent_at", "created_at", "updated_at",
}

type InvoiceRepository struct {
	db     *pgxpool.Pool
	logger *zap.Logger
}

func NewInvoiceRepository(db *pgxpool.Pool, logger *zap.Logger) *InvoiceRepository {
	return &InvoiceRepository{
		db:     db,
		logger: logger,
	}
}

func (r *InvoiceRepository) Create(ctx context.Context, inv *models.Invoice) error {
	query := squirrel.Insert("invoices").
		Columns(invoiceColumns...).
		Values(inv.ID, inv.CustomerName, inv.CustomerEmail, inv.AmountMinor, inv.Currency, inv.Memo,
			inv.DueDate, inv.Status, inv.SentTo, inv.SentAt, inv.CreatedAt, inv.UpdatedAt).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return err
	}

	if _, err := r.db.Exec(ctx, sql, args...); err != nil {
		return fmt.Errorf("failed to insert invoice: %w", err)
	}
	return nil
}

func (r *InvoiceRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Invoice, error) {
	query := squirrel.Select(invoiceColumns...).
		From("invoices").
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	var inv models.Invoice
	err = r.db.QueryRow(ctx, sql, args...).Scan(
		&inv.ID, &inv.CustomerName, &inv.CustomerEmail, &inv.AmountMinor, &inv.Currency, &inv.Memo,
		&inv.DueDate, &inv.Status, &inv.SentTo, &inv.SentAt, &inv.CreatedAt, &inv.UpdatedAt,
	)
	if err != nil {
		return nil, mapNotFound(err)
	}

	return &inv, nil
}

func (r *InvoiceRepository) List(ctx context.Context, filter models.InvoiceFilter) ([]models.InvoiceSummary, error) {
	query := squirrel.Select("id", "amount_minor", "currency", "status", "created_at").
		From("invoices").
		OrderBy("created_at DESC").
		PlaceholderFormat(squirrel.Dollar)

	if filter.Status != "" {
		query = query.Where(squirrel.Eq{"status": filter.Status})
	}
	if filter.Currency != "" {
		query = query.Where(squirrel.Eq{"currency": filter.Currency})
	}
	if filter.MinAmountMinor > 0 {
		query = query.Where(squirrel.GtOrEq{"amount_minor": filter.MinAmountMinor})
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
		return nil, fmt.Errorf("failed to list invoices: %w", err)
	}
	defer rows.Close()

	var out []models.InvoiceSummary
	for rows.Next() {
		var s models.InvoiceSummary
		if err := rows.Scan(&s.ID, &s.AmountMinor, &s.Currency, &s.Status, &s.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, s)
	}

	return out, rows.Err()
}

// Update applies the non-nil fields of patch and returns the stored invoice.
func (r *InvoiceRepository) Update(ctx context.Context, id uuid.UUID, patch models.InvoicePatch) (*models.Invoice, error) {
	if patch.Empty() {
		return r.GetByID(ctx, id)
	}

	query := squirrel.Update("invoices").
		Set("updated_at", time.Now().UTC()).
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar)

	if patch.CustomerName != nil {
		query = query.Set("customer_name", *patch.CustomerName)
	}
	if patch.CustomerEmail != nil {
		query = query.Set("customer_email", *patch.CustomerEmail)
	}
	if patch.AmountMinor != nil {
		query = query.Set("amount_minor", *patch.AmountMinor)
	}
	if patch.Currency != nil {
		query = query.Set("currency", *patch.Currency)
	}
	if patch.Memo != nil {
		query = query.Set("memo", *patch.Memo)
	}
	if patch.DueDate != nil {
		query = query.Set("due_date", *patch.DueDate)
	}
	if patch.Status != nil {
		query = query.Set("status", *patch.Status)
	}

	return r.execReturning(ctx, query)
}

// MarkSent records delivery to email and moves the invoice to SENT.
func (r *InvoiceRepository) MarkSent(ctx context.Context, id uuid.UUID, email string, at time.Time) (*models.Invoice, error) {
	query := squirrel.Update("invoices").
		Set("status", models.InvoiceStatusSent).
		Set("sent_to", email).
		Set("sent_at", at).
		Set("updated_at", at).
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar)

	return r.execReturning(ctx, query)
}

func (r *InvoiceRepository) execReturning(ctx context.Context, query squirrel.UpdateBuilder) (*models.Invoice, error) {
	sql, args, err := query.Suffix("RETURNING " + joinColumns(invoiceColumns)).ToSql()
	if err != nil {
		return nil, err
	}

	var inv models.Invoice
	err = r.db.QueryRow(ctx, sql, args...).Scan(
		&inv.ID, &inv.CustomerName, &inv.CustomerEmail, &inv.AmountMinor, &inv.Currency, &inv.Memo,
		&inv.DueDate, &inv.Status, &inv.SentTo, &inv.SentAt, &inv.CreatedAt, &inv.UpdatedAt,
	)
	if err != nil {
		r.logger.Debug("Invoice update matched nothing", zap.Error(err))
		return nil, mapNotFound(err)
	}
	return &inv, nil
}
