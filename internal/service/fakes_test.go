package service

import (
	"context"
	"errors"
	"sort"
	"sync"
	"time"

	"pay-assist/internal/models"
	"pay-assist/internal/repository"
	"pay-assist/pkg/config"

	"github.com/google/uuid"
)

var testNow = time.Date(2025, 1, 1, 10, 0, 0, 0, time.UTC)

func testPaymentsConfig() *config.PaymentsConfig {
	return &config.PaymentsConfig{
		LinkBaseURL:       "https://pay.example.com/l",
		DefaultCurrency:   "USD",
		DefaultDueDays:    30,
		EnrichConcurrency: 2,
	}
}

type fakeInvoiceStore struct {
	mu      sync.Mutex
	items   map[uuid.UUID]*models.Invoice
	failGet map[uuid.UUID]bool
	gets    int
}

func newFakeInvoiceStore() *fakeInvoiceStore {
	return &fakeInvoiceStore{
		items:   map[uuid.UUID]*models.Invoice{},
		failGet: map[uuid.UUID]bool{},
	}
}

func (f *fakeInvoiceStore) Create(_ context.Context, inv *models.Invoice) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	cp := *inv
	f.items[inv.ID] = &cp
	return nil
}

func (f *fakeInvoiceStore) GetByID(_ context.Context, id uuid.UUID) (*models.Invoice, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.gets++
	if f.failGet[id] {
		return nil, errors.New("connection reset")
	}
	inv, ok := f.items[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	cp := *inv
	return &cp, nil
}

func (f *fakeInvoiceStore) List(_ context.Context, filter models.InvoiceFilter) ([]models.InvoiceSummary, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []models.InvoiceSummary
	for _, inv := range f.items {
		if filter.Status != "" && inv.Status != filter.Status {
			continue
		}
		if filter.Currency != "" && inv.Currency != filter.Currency {
			continue
		}
		if inv.AmountMinor < filter.MinAmountMinor {
			continue
		}
		out = append(out, models.InvoiceSummary{
			ID: inv.ID, AmountMinor: inv.AmountMinor, Currency: inv.Currency, Status: inv.Status, CreatedAt: inv.CreatedAt,
		})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].AmountMinor < out[j].AmountMinor })
	return out, nil
}

func (f *fakeInvoiceStore) Update(_ context.Context, id uuid.UUID, patch models.InvoicePatch) (*models.Invoice, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	inv, ok := f.items[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	if patch.AmountMinor != nil {
		inv.AmountMinor = *patch.AmountMinor
	}
	if patch.Currency != nil {
		inv.Currency = *patch.Currency
	}
	if patch.Memo != nil {
		inv.Memo = *patch.Memo
	}
	if patch.DueDate != nil {
		inv.DueDate = patch.DueDate
	}
	if patch.CustomerEmail != nil {
		inv.CustomerEmail = *patch.CustomerEmail
	}
	if patch.CustomerName != nil {
		inv.CustomerName = *patch.CustomerName
	}
	if patch.Status != nil {
		inv.Status = *patch.Status
	}
	cp := *inv
	return &cp, nil
}

func (f *fakeInvoiceStore) MarkSent(_ context.Context, id uuid.UUID, email string, at time.Time) (*models.Invoice, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	inv, ok := f.items[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	inv.Status = models.InvoiceStatusSent
	inv.SentTo = email
	inv.SentAt = &at
	cp := *inv
	return &cp, nil
}

type fakeLinkStore struct {
	mu    sync.Mutex
	items map[uuid.UUID]*models.PaymentLink
}

func newFakeLinkStore() *fakeLinkStore {
	return &fakeLinkStore{items: map[uuid.UUID]*models.PaymentLink{}}
}

func (f *fakeLinkStore) Create(_ context.Context, link *models.PaymentLink) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	cp := *link
	f.items[link.ID] = &cp
	return nil
}

func (f *fakeLinkStore) GetByID(_ context.Context, id uuid.UUID) (*models.PaymentLink, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	link, ok := f.items[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	cp := *link
	return &cp, nil
}

func (f *fakeLinkStore) List(_ context.Context, filter models.PaymentLinkFilter) ([]models.PaymentLinkSummary, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []models.PaymentLinkSummary
	for _, link := range f.items {
		if filter.Status != "" && link.Status != filter.Status {
			continue
		}
		out = append(out, models.PaymentLinkSummary{
			ID: link.ID, LinkType: link.LinkType, Currency: link.Currency, Status: link.Status, CreatedAt: link.CreatedAt,
		})
	}
	return out, nil
}

func (f *fakeLinkStore) SetStatus(_ context.Context, id uuid.UUID, status models.LinkStatus) (*models.PaymentLink, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	link, ok := f.items[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	link.Status = status
	cp := *link
	return &cp, nil
}
