package service

import (
	"context"
	"errors"
	"net/mail"
	"strings"
	"time"

	"pay-assist/internal/assist"
	"pay-assist/internal/dto"
	"pay-assist/internal/models"
	"pay-assist/internal/repository"
	"pay-assist/pkg/config"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type InvoiceStore interface {
	Create(ctx context.Context, inv *models.Invoice) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Invoice, error)
	List(ctx context.Context, filter models.InvoiceFilter) ([]models.InvoiceSummary, error)
	Update(ctx context.Context, id uuid.UUID, patch models.InvoicePatch) (*models.Invoice, error)
	MarkSent(ctx context.Context, id uuid.UUID, email string, at time.Time) (*models.Invoice, error)
}

type InvoiceService struct {
	store  InvoiceStore
	cfg    *config.PaymentsConfig
	now    func() time.Time
	logger *zap.Logger
}

func NewInvoiceService(store InvoiceStore, cfg *config.PaymentsConfig, logger *zap.Logger) *InvoiceService {
	return &InvoiceService{
		store:  store,
		cfg:    cfg,
		now:    time.Now,
		logger: logger,
	}
}

func (s *InvoiceService) Create(ctx context.Context, req *dto.CreateInvoiceRequest) (*dto.InvoiceResponse, error) {
	amount, err := models.ParseAmount(req.Amount)
	if err != nil {
		return nil, invalidf("amount %q is not a positive number", req.Amount)
	}

	currency, err := normalizeCurrency(req.Currency, s.cfg.DefaultCurrency)
	if err != nil {
		return nil, err
	}

	email := strings.TrimSpace(req.Email)
	if email != "" {
		if _, err := mail.ParseAddress(email); err != nil {
			return nil, invalidf("email %q is not valid", email)
		}
	}

	name := strings.TrimSpace(req.CustomerName)
	if name == "" && email != "" {
		name = assist.NameFromEmail(email)
	}

	now := s.now().UTC()
	due, err := parseDate(req.DueDate)
	if err != nil {
		return nil, err
	}
	if due == nil {
		d := time.Date(now.Year(), now.Month(), now.Day()+s.cfg.DefaultDueDays, 0, 0, 0, 0, time.UTC)
		due = &d
	}

	inv := &models.Invoice{
		ID:            uuid.New(),
		CustomerName:  name,
		CustomerEmail: email,
		AmountMinor:   amount,
		Currency:      currency,
		Memo:          strings.TrimSpace(req.Memo),
		DueDate:       due,
		Status:        models.InvoiceStatusCreated,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	if err := s.store.Create(ctx, inv); err != nil {
		s.logger.Error("Failed to create invoice", zap.Error(err))
		return nil, err
	}

	s.logger.Info("Invoice created",
		zap.String("id", inv.ID.String()),
		zap.String("amount", models.FormatMinor(inv.AmountMinor)),
		zap.String("currency", inv.Currency),
	)
	resp := toInvoiceResponse(inv)
	return &resp, nil
}

func (s *InvoiceService) Get(ctx context.Context, id string) (*dto.InvoiceResponse, error) {
	invID, err := parseID(id)
	if err != nil {
		return nil, err
	}

	inv, err := s.store.GetByID(ctx, invID)
	if err != nil {
		return nil, mapStoreError(err)
	}
	resp := toInvoiceResponse(inv)
	return &resp, nil
}

// List returns matching invoices with details loaded concurrently. Rows whose
// details fail to load are returned in summary form.
func (s *InvoiceService) List(ctx context.Context, req *dto.ListInvoicesRequest) (*dto.InvoiceListResponse, error) {
	filter := models.InvoiceFilter{Limit: req.Limit, Offset: req.Offset}

	if req.Status != "" {
		status := models.InvoiceStatus(strings.ToUpper(strings.TrimSpace(req.Status)))
		if !status.Valid() {
			return nil, invalidf("unknown invoice status %q", req.Status)
		}
		filter.Status = status
	}
	if req.Currency != "" {
		currency, err := normalizeCurrency(req.Currency, "")
		if err != nil {
			return nil, err
		}
		filter.Currency = currency
	}
	if req.MinAmount != "" {
		minAmount, err := models.ParseAmount(req.MinAmount)
		if err != nil {
			return nil, invalidf("minAmount %q is not a positive number", req.MinAmount)
		}
		filter.MinAmountMinor = minAmount
	}

	summaries, err := s.store.List(ctx, filter)
	if err != nil {
		s.logger.Error("Failed to list invoices", zap.Error(err))
		return nil, err
	}

	invoices, partial := enrichAll(ctx, s.cfg.EnrichConcurrency, summaries,
		func(ctx context.Context, sum models.InvoiceSummary) (dto.InvoiceResponse, error) {
			inv, err := s.store.GetByID(ctx, sum.ID)
			if err != nil {
				return dto.InvoiceResponse{}, err
			}
			return toInvoiceResponse(inv), nil
		},
		summaryInvoiceResponse,
		s.logger,
	)

	return &dto.InvoiceListResponse{
		Invoices: invoices,
		Count:    len(invoices),
		Partial:  partial,
	}, nil
}

// Send delivers the invoice to email, or to the stored customer email when
// email is empty.
func (s *InvoiceService) Send(ctx context.Context, id, email string) (*dto.InvoiceResponse, error) {
	invID, err := parseID(id)
	if err != nil {
		return nil, err
	}

	inv, err := s.store.GetByID(ctx, invID)
	if err != nil {
		return nil, mapStoreError(err)
	}

	recipient := strings.TrimSpace(email)
	if recipient == "" {
		recipient = inv.CustomerEmail
	}
	if recipient == "" {
		return nil, invalidf("a recipient email is required to send invoice %s", invID)
	}
	if _, err := mail.ParseAddress(recipient); err != nil {
		return nil, invalidf("email %q is not valid", recipient)
	}

	sent, err := s.store.MarkSent(ctx, invID, recipient, s.now().UTC())
	if err != nil {
		return nil, mapStoreError(err)
	}

	s.logger.Info("Invoice sent", zap.String("id", invID.String()), zap.String("to", recipient))
	resp := toInvoiceResponse(sent)
	return &resp, nil
}

// Update applies only the non-empty fields of req.
func (s *InvoiceService) Update(ctx context.Context, id string, req *dto.UpdateInvoiceRequest) (*dto.InvoiceResponse, error) {
	invID, err := parseID(id)
	if err != nil {
		return nil, err
	}

	var patch models.InvoicePatch
	if req.Amount != "" {
		amount, err := models.ParseAmount(req.Amount)
		if err != nil {
			return nil, invalidf("amount %q is not a positive number", req.Amount)
		}
		patch.AmountMinor = &amount
	}
	if req.Currency != "" {
		currency, err := normalizeCurrency(req.Currency, "")
		if err != nil {
			return nil, err
		}
		patch.Currency = &currency
	}
	if req.Email != "" {
		if _, err := mail.ParseAddress(req.Email); err != nil {
			return nil, invalidf("email %q is not valid", req.Email)
		}
		email := strings.TrimSpace(req.Email)
		patch.CustomerEmail = &email
	}
	if req.CustomerName != "" {
		name := strings.TrimSpace(req.CustomerName)
		patch.CustomerName = &name
	}
	if req.DueDate != "" {
		due, err := parseDate(req.DueDate)
		if err != nil {
			return nil, err
		}
		patch.DueDate = due
	}
	if req.Memo != "" {
		memo := strings.TrimSpace(req.Memo)
		patch.Memo = &memo
	}
	if req.Status != "" {
		status := models.InvoiceStatus(strings.ToUpper(strings.TrimSpace(req.Status)))
		if !status.Valid() {
			return nil, invalidf("unknown invoice status %q", req.Status)
		}
		patch.Status = &status
	}

	inv, err := s.store.Update(ctx, invID, patch)
	if err != nil {
		return nil, mapStoreError(err)
	}

	s.logger.Info("Invoice updated", zap.String("id", invID.String()))
	resp := toInvoiceResponse(inv)
	return &resp, nil
}

// All returns every stored invoice with details, for export.
func (s *InvoiceService) All(ctx context.Context) ([]dto.InvoiceResponse, error) {
	list, err := s.List(ctx, &dto.ListInvoicesRequest{})
	if err != nil {
		return nil, err
	}
	return list.Invoices, nil
}

func mapStoreError(err error) error {
	if errors.Is(err, repository.ErrNotFound) {
		return ErrNotFound
	}
	return err
}

func toInvoiceResponse(inv *models.Invoice) dto.InvoiceResponse {
	return dto.InvoiceResponse{
		ID:            inv.ID.String(),
		CustomerName:  inv.CustomerName,
		CustomerEmail: inv.CustomerEmail,
		Amount:        models.FormatMinor(inv.AmountMinor),
		Currency:      inv.Currency,
		Memo:          inv.Memo,
		DueDate:       formatTime(inv.DueDate, time.DateOnly),
		Status:        string(inv.Status),
		SentTo:        inv.SentTo,
		SentAt:        formatTime(inv.SentAt, time.RFC3339),
		CreatedAt:     inv.CreatedAt.Format(time.RFC3339),
		UpdatedAt:     inv.UpdatedAt.Format(time.RFC3339),
	}
}

func summaryInvoiceResponse(sum models.InvoiceSummary) dto.InvoiceResponse {
	return dto.InvoiceResponse{
		ID:        sum.ID.String(),
		Amount:    models.FormatMinor(sum.AmountMinor),
		Currency:  sum.Currency,
		Status:    string(sum.Status),
		CreatedAt: sum.CreatedAt.Format(time.RFC3339),
	}
}
