package handlers

import "github.com/gofiber/fiber/v2"

type HealthHandler struct {
	llmEnabled bool
	version    string
}

func NewHealthHandler(llmEnabled bool, version string) *HealthHandler {
	return &HealthHandler{llmEnabled: llmEnabled, version: version}
}

// Health godoc
// @Summary Service health
// @Tags health
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /api/health [get]
func (h *HealthHandler) Health(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status":  "ok",
		"llm":     h.llmEnabled,
		"version": h.version,
	})
}
