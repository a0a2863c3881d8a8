package service

import (
	"context"
	"strings"
	"time"

	"pay-assist/internal/dto"
	"pay-assist/internal/models"
	"pay-assist/pkg/config"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type PaymentLinkStore interface {
	Create(ctx context.Context, link *models.PaymentLink) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.PaymentLink, error)
	List(ctx context.Context, filter models.PaymentLinkFilter) ([]models.PaymentLinkSummary, error)
	SetStatus(ctx context.Context, id uuid.UUID, status models.LinkStatus) (*models.PaymentLink, error)
}

const defaultLinkTitle = "Payment link"

type PaymentLinkService struct {
	store  PaymentLinkStore
	cfg    *config.PaymentsConfig
	now    func() time.Time
	logger *zap.Logger
}

func NewPaymentLinkService(store PaymentLinkStore, cfg *config.PaymentsConfig, logger *zap.Logger) *PaymentLinkService {
	return &PaymentLinkService{
		store:  store,
		cfg:    cfg,
		now:    time.Now,
		logger: logger,
	}
}

// Create stores a new ACTIVE link. Purchase links need an amount, donation
// links need a minimum and a maximum with min <= max.
func (s *PaymentLinkService) Create(ctx context.Context, req *dto.CreatePaymentLinkRequest) (*dto.PaymentLinkResponse, error) {
	linkType := models.LinkType(strings.ToUpper(strings.TrimSpace(req.LinkType)))
	if linkType == "" {
		linkType = models.LinkTypePurchase
	}

	currency, err := normalizeCurrency(req.Currency, s.cfg.DefaultCurrency)
	if err != nil {
		return nil, err
	}

	now := s.now().UTC()
	link := &models.PaymentLink{
		ID:        uuid.New(),
		Title:     strings.TrimSpace(req.Memo),
		LinkType:  linkType,
		Currency:  currency,
		Status:    models.LinkStatusActive,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if link.Title == "" {
		link.Title = defaultLinkTitle
	}

	switch linkType {
	case models.LinkTypePurchase:
		amount, err := models.ParseAmount(req.Amount)
		if err != nil {
			return nil, invalidf("purchase links need a positive amount, got %q", req.Amount)
		}
		link.AmountMinor = &amount
	case models.LinkTypeDonation:
		minAmount, err := models.ParseAmount(req.MinAmount)
		if err != nil {
			return nil, invalidf("donation links need a positive minAmount, got %q", req.MinAmount)
		}
		maxAmount, err := models.ParseAmount(req.MaxAmount)
		if err != nil {
			return nil, invalidf("donation links need a positive maxAmount, got %q", req.MaxAmount)
		}
		if minAmount > maxAmount {
			return nil, invalidf("minAmount %s exceeds maxAmount %s", req.MinAmount, req.MaxAmount)
		}
		link.MinAmountMinor = &minAmount
		link.MaxAmountMinor = &maxAmount
	default:
		return nil, invalidf("unknown link type %q", req.LinkType)
	}

	link.URL = s.cfg.LinkBaseURL + "/" + link.ID.String()

	if err := s.store.Create(ctx, link); err != nil {
		s.logger.Error("Failed to create payment link", zap.Error(err))
		return nil, err
	}

	s.logger.Info("Payment link created",
		zap.String("id", link.ID.String()),
		zap.String("type", string(link.LinkType)),
	)
	resp := toPaymentLinkResponse(link)
	return &resp, nil
}

func (s *PaymentLinkService) Get(ctx context.Context, id string) (*dto.PaymentLinkResponse, error) {
	linkID, err := parseID(id)
	if err != nil {
		return nil, err
	}

	link, err := s.store.GetByID(ctx, linkID)
	if err != nil {
		return nil, mapStoreError(err)
	}
	resp := toPaymentLinkResponse(link)
	return &resp, nil
}

func (s *PaymentLinkService) List(ctx context.Context, req *dto.ListPaymentLinksRequest) (*dto.PaymentLinkListResponse, error) {
	filter := models.PaymentLinkFilter{Limit: req.Limit, Offset: req.Offset}

	if req.Status != "" {
		status, err := parseLinkStatus(req.Status)
		if err != nil {
			return nil, err
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
		s.logger.Error("Failed to list payment links", zap.Error(err))
		return nil, err
	}

	links, partial := enrichAll(ctx, s.cfg.EnrichConcurrency, summaries,
		func(ctx context.Context, sum models.PaymentLinkSummary) (dto.PaymentLinkResponse, error) {
			link, err := s.store.GetByID(ctx, sum.ID)
			if err != nil {
				return dto.PaymentLinkResponse{}, err
			}
			return toPaymentLinkResponse(link), nil
		},
		func(sum models.PaymentLinkSummary) dto.PaymentLinkResponse {
			return dto.PaymentLinkResponse{
				ID:        sum.ID.String(),
				LinkType:  string(sum.LinkType),
				Currency:  sum.Currency,
				Status:    string(sum.Status),
				CreatedAt: sum.CreatedAt.Format(time.RFC3339),
			}
		},
		s.logger,
	)

	return &dto.PaymentLinkListResponse{
		PaymentLinks: links,
		Count:        len(links),
		Partial:      partial,
	}, nil
}

func (s *PaymentLinkService) SetStatus(ctx context.Context, id, status string) (*dto.PaymentLinkResponse, error) {
	linkID, err := parseID(id)
	if err != nil {
		return nil, err
	}
	linkStatus, err := parseLinkStatus(status)
	if err != nil {
		return nil, err
	}

	link, err := s.store.SetStatus(ctx, linkID, linkStatus)
	if err != nil {
		return nil, mapStoreError(err)
	}
	resp := toPaymentLinkResponse(link)
	return &resp, nil
}

func parseLinkStatus(s string) (models.LinkStatus, error) {
	status := models.LinkStatus(strings.ToUpper(strings.TrimSpace(s)))
	if !status.Valid() {
		return "", invalidf("unknown link status %q", s)
	}
	return status, nil
}

func toPaymentLinkResponse(link *models.PaymentLink) dto.PaymentLinkResponse {
	return dto.PaymentLinkResponse{
		ID:        link.ID.String(),
		Title:     link.Title,
		LinkType:  string(link.LinkType),
		Amount:    models.FormatMinorPtr(link.AmountMinor),
		MinAmount: models.FormatMinorPtr(link.MinAmountMinor),
		MaxAmount: models.FormatMinorPtr(link.MaxAmountMinor),
		Currency:  link.Currency,
		Status:    string(link.Status),
		URL:       link.URL,
		CreatedAt: link.CreatedAt.Format(time.RFC3339),
	}
}
