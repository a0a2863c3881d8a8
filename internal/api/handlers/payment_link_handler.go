package handlers

import (
	"context"

	"pay-assist/internal/dto"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

type PaymentLinkService interface {
	Create(ctx context.Context, req *dto.CreatePaymentLinkRequest) (*dto.PaymentLinkResponse, error)
	Get(ctx context.Context, id string) (*dto.PaymentLinkResponse, error)
	List(ctx context.Context, req *dto.ListPaymentLinksRequest) (*dto.PaymentLinkListResponse, error)
	SetStatus(ctx context.Context, id, status string) (*dto.PaymentLinkResponse, error)
}

type PaymentLinkHandler struct {
	linkService PaymentLinkService
	logger      *zap.Logger
}

func NewPaymentLinkHandler(linkService PaymentLinkService, logger *zap.Logger) *PaymentLinkHandler {
	return &PaymentLinkHandler{
		linkService: linkService,
		logger:      logger,
	}
}

// ListPaymentLinks godoc
// @Summary List payment links
// @Tags payment-links
// @Produce json
// @Param status query string false "ACTIVE or INACTIVE"
// @Param minAmount query string false "Minimum amount"
// @Param currency query string false "ISO 4217 code"
// @Security Bearer
// @Success 200 {object} dto.PaymentLinkListResponse
// @Router /api/v1/payment-links [get]
func (h *PaymentLinkHandler) ListPaymentLinks(c *fiber.Ctx) error {
	var req dto.ListPaymentLinksRequest
	if err := c.QueryParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid query"})
	}

	resp, err := h.linkService.List(c.UserContext(), &req)
	if err != nil {
		return respondError(c, h.logger, err)
	}
	return c.JSON(resp)
}

// CreatePaymentLink godoc
// @Summary Create a payment link
// @Tags payment-links
// @Accept json
// @Produce json
// @Param request body dto.CreatePaymentLinkRequest true "Payment link"
// @Security Bearer
// @Success 201 {object} dto.PaymentLinkResponse
// @Failure 400 {object} map[string]string
// @Router /api/v1/payment-links [post]
func (h *PaymentLinkHandler) CreatePaymentLink(c *fiber.Ctx) error {
	var req dto.CreatePaymentLinkRequest
	if err := c.BodyParser(&req); err != nil {
		return badBody(c)
	}

	resp, err := h.linkService.Create(c.UserContext(), &req)
	if err != nil {
		return respondError(c, h.logger, err)
	}
	return c.Status(fiber.StatusCreated).JSON(resp)
}

// GetPaymentLink godoc
// @Summary Get a payment link
// @Tags payment-links
// @Produce json
// @Param id path string true "Payment link ID"
// @Security Bearer
// @Success 200 {object} dto.PaymentLinkResponse
// @Failure 404 {object} map[string]string
// @Router /api/v1/payment-links/{id} [get]
func (h *PaymentLinkHandler) GetPaymentLink(c *fiber.Ctx) error {
	resp, err := h.linkService.Get(c.UserContext(), c.Params("id"))
	if err != nil {
		return respondError(c, h.logger, err)
	}
	return c.JSON(resp)
}

// UpdatePaymentLinkStatus godoc
// @Summary Activate or deactivate a payment link
// @Tags payment-links
// @Accept json
// @Produce json
// @Param id path string true "Payment link ID"
// @Param request body dto.UpdatePaymentLinkStatusRequest true "New status"
// @Security Bearer
// @Success 200 {object} dto.PaymentLinkResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /api/v1/payment-links/{id}/status [patch]
func (h *PaymentLinkHandler) UpdatePaymentLinkStatus(c *fiber.Ctx) error {
	var req dto.UpdatePaymentLinkStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return badBody(c)
	}

	resp, err := h.linkService.SetStatus(c.UserContext(), c.Params("id"), req.Status)
	if err != nil {
		return respondError(c, h.logger, err)
	}
	return c.JSON(resp)
}
