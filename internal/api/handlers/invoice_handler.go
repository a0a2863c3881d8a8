package handlers

import (
	"context"
	"fmt"
	"time"

	"pay-assist/internal/dto"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

type InvoiceService interface {
	Create(ctx context.Context, req *dto.CreateInvoiceRequest) (*dto.InvoiceResponse, error)
	Get(ctx context.Context, id string) (*dto.InvoiceResponse, error)
	List(ctx context.Context, req *dto.ListInvoicesRequest) (*dto.InvoiceListResponse, error)
	Send(ctx context.Context, id, email string) (*dto.InvoiceResponse, error)
	Update(ctx context.Context, id string, req *dto.UpdateInvoiceRequest) (*dto.InvoiceResponse, error)
}

type InvoiceExporter interface {
	InvoicesXLSX(ctx context.Context) ([]byte, error)
}

type InvoiceHandler struct {
	invoiceService InvoiceService
	exporter       InvoiceExporter
	logger         *zap.Logger
}

func NewInvoiceHandler(invoiceService InvoiceService, exporter InvoiceExporter, logger *zap.Logger) *InvoiceHandler {
	return &InvoiceHandler{
		invoiceService: invoiceService,
		exporter:       exporter,
		logger:         logger,
	}
}

// ListInvoices godoc
// @Summary List invoices
// @Tags invoices
// @Produce json
// @Param status query string false "DRAFT, CREATED, SENT, PARTIAL, PAID or CANCELED"
// @Param minAmount query string false "Minimum amount"
// @Param currency query string false "ISO 4217 code"
// @Param limit query int false "Page size"
// @Param offset query int false "Page offset"
// @Security Bearer
// @Success 200 {object} dto.InvoiceListResponse
// @Failure 400 {object} map[string]string
// @Router /api/v1/invoices [get]
func (h *InvoiceHandler) ListInvoices(c *fiber.Ctx) error {
	var req dto.ListInvoicesRequest
	if err := c.QueryParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid query"})
	}

	resp, err := h.invoiceService.List(c.UserContext(), &req)
	if err != nil {
		return respondError(c, h.logger, err)
	}
	return c.JSON(resp)
}

// CreateInvoice godoc
// @Summary Create an invoice
// @Tags invoices
// @Accept json
// @Produce json
// @Param request body dto.CreateInvoiceRequest true "Invoice"
// @Security Bearer
// @Success 201 {object} dto.InvoiceResponse
// @Failure 400 {object} map[string]string
// @Router /api/v1/invoices [post]
func (h *InvoiceHandler) CreateInvoice(c *fiber.Ctx) error {
	var req dto.CreateInvoiceRequest
	if err := c.BodyParser(&req); err != nil {
		return badBody(c)
	}

	resp, err := h.invoiceService.Create(c.UserContext(), &req)
	if err != nil {
		return respondError(c, h.logger, err)
	}
	return c.Status(fiber.StatusCreated).JSON(resp)
}

// GetInvoice godoc
// @Summary Get an invoice
// @Tags invoices
// @Produce json
// @Param id path string true "Invoice ID"
// @Security Bearer
// @Success 200 {object} dto.InvoiceResponse
// @Failure 404 {object} map[string]string
// @Router /api/v1/invoices/{id} [get]
func (h *InvoiceHandler) GetInvoice(c *fiber.Ctx) error {
	resp, err := h.invoiceService.Get(c.UserContext(), c.Params("id"))
	if err != nil {
		return respondError(c, h.logger, err)
	}
	return c.JSON(resp)
}

// UpdateInvoice godoc
// @Summary Update an invoice
// @Description Only the provided fields change
// @Tags invoices
// @Accept json
// @Produce json
// @Param id path string true "Invoice ID"
// @Param request body dto.UpdateInvoiceRequest true "Changed fields"
// @Security Bearer
// @Success 200 {object} dto.InvoiceResponse
// @Failure 404 {object} map[string]string
// @Router /api/v1/invoices/{id} [patch]
func (h *InvoiceHandler) UpdateInvoice(c *fiber.Ctx) error {
	var req dto.UpdateInvoiceRequest
	if err := c.BodyParser(&req); err != nil {
		return badBody(c)
	}

	resp, err := h.invoiceService.Update(c.UserContext(), c.Params("id"), &req)
	if err != nil {
		return respondError(c, h.logger, err)
	}
	return c.JSON(resp)
}

// SendInvoice godoc
// @Summary Send an invoice
// @Tags invoices
// @Accept json
// @Produce json
// @Param id path string true "Invoice ID"
// @Param request body dto.SendInvoiceRequest false "Recipient override"
// @Security Bearer
// @Success 200 {object} dto.InvoiceResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /api/v1/invoices/{id}/send [post]
func (h *InvoiceHandler) SendInvoice(c *fiber.Ctx) error {
	var req dto.SendInvoiceRequest
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&req); err != nil {
			return badBody(c)
		}
	}

	resp, err := h.invoiceService.Send(c.UserContext(), c.Params("id"), req.Email)
	if err != nil {
		return respondError(c, h.logger, err)
	}
	return c.JSON(resp)
}

// ExportInvoices godoc
// @Summary Export invoices
// @Description Download every invoice as an XLSX workbook
// @Tags invoices
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Security Bearer
// @Success 200 {file} file
// @Router /api/v1/invoices/export [get]
func (h *InvoiceHandler) ExportInvoices(c *fiber.Ctx) error {
	data, err := h.exporter.InvoicesXLSX(c.UserContext())
	if err != nil {
		return respondError(c, h.logger, err)
	}

	filename := fmt.Sprintf("invoices-%s.xlsx", time.Now().UTC().Format("20060102"))
	c.Set(fiber.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return c.Send(data)
}
