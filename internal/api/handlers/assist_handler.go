package handlers

import (
	"context"

	"pay-assist/internal/assist"
	"pay-assist/internal/dto"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

type AssistService interface {
	Extract(ctx context.Context, req *dto.ExtractRequest) (*assist.ExtractionResult, error)
	Infer(ctx context.Context, req *dto.ExtractRequest) (*assist.ExtractionResult, error)
	Execute(ctx context.Context, req *dto.ExecuteRequest) (*dto.ExecuteResponse, error)
}

type AssistHandler struct {
	assistService AssistService
	logger        *zap.Logger
}

func NewAssistHandler(assistService AssistService, logger *zap.Logger) *AssistHandler {
	return &AssistHandler{
		assistService: assistService,
		logger:        logger,
	}
}

// Extract godoc
// @Summary Extract structured fields
// @Description Read an action and its fields out of free text. Mutating actions use the LLM.
// @Tags assist
// @Accept json
// @Produce json
// @Param request body dto.ExtractRequest true "Free-text input and optional action hint"
// @Security Bearer
// @Success 200 {object} assist.ExtractionResult
// @Failure 400 {object} assist.ErrorPayload
// @Failure 502 {object} assist.ErrorPayload
// @Failure 503 {object} assist.ErrorPayload
// @Router /api/v1/assist/extract [post]
func (h *AssistHandler) Extract(c *fiber.Ctx) error {
	var req dto.ExtractRequest
	if err := c.BodyParser(&req); err != nil {
		return badBody(c)
	}

	result, err := h.assistService.Extract(c.UserContext(), &req)
	if err != nil {
		return respondError(c, h.logger, err)
	}
	return c.JSON(result)
}

// Infer godoc
// @Summary Heuristic extraction
// @Description Same as extract but rule-based only; never calls the LLM
// @Tags assist
// @Accept json
// @Produce json
// @Param request body dto.ExtractRequest true "Free-text input and optional action hint"
// @Security Bearer
// @Success 200 {object} assist.ExtractionResult
// @Failure 400 {object} assist.ErrorPayload
// @Router /api/v1/assist/infer [post]
func (h *AssistHandler) Infer(c *fiber.Ctx) error {
	var req dto.ExtractRequest
	if err := c.BodyParser(&req); err != nil {
		return badBody(c)
	}

	result, err := h.assistService.Infer(c.UserContext(), &req)
	if err != nil {
		return respondError(c, h.logger, err)
	}
	return c.JSON(result)
}

// Execute godoc
// @Summary Execute an action
// @Description Resolve fields, apply overrides and run the action. Mutating actions return a confirmation unless confirm is true.
// @Tags assist
// @Accept json
// @Produce json
// @Param request body dto.ExecuteRequest true "Action, input, fields, overrides and confirm flag"
// @Security Bearer
// @Success 200 {object} dto.ExecuteResponse
// @Success 202 {object} assist.Confirmation
// @Failure 400 {object} assist.ErrorPayload
// @Router /api/v1/assist/execute [post]
func (h *AssistHandler) Execute(c *fiber.Ctx) error {
	var req dto.ExecuteRequest
	if err := c.BodyParser(&req); err != nil {
		return badBody(c)
	}

	resp, err := h.assistService.Execute(c.UserContext(), &req)
	if err != nil {
		return respondError(c, h.logger, err)
	}
	if resp.Confirmation != nil {
		return c.Status(fiber.StatusAccepted).JSON(resp.Confirmation)
	}
	return c.JSON(resp)
}
