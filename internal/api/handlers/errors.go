package handlers

import (
	"errors"

	"pay-assist/internal/assist"
	"pay-assist/internal/service"
	"pay-assist/internal/tools"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// assistStatus maps an inference error kind to its HTTP status.
var assistStatus = map[assist.ErrorKind]int{
	assist.KindValidation:        fiber.StatusBadRequest,
	assist.KindUnsupportedAction: fiber.StatusBadRequest,
	assist.KindConfiguration:     fiber.StatusServiceUnavailable,
	assist.KindClassification:    fiber.StatusBadGateway,
	assist.KindExtraction:        fiber.StatusBadGateway,
}

// respondError writes err as JSON. Assist errors use their own payload shape;
// everything else is {"error": message}.
func respondError(c *fiber.Ctx, logger *zap.Logger, err error) error {
	if ae, ok := assist.AsError(err); ok {
		code, known := assistStatus[ae.Kind]
		if !known {
			code = fiber.StatusInternalServerError
		}
		return c.Status(code).JSON(ae.Payload())
	}

	switch {
	case errors.Is(err, service.ErrInvalidInput),
		errors.Is(err, tools.ErrInvalidArguments),
		errors.Is(err, tools.ErrUnknownTool):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	case errors.Is(err, service.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Not found"})
	default:
		logger.Error("Request failed", zap.String("path", c.Path()), zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Internal server error"})
	}
}

func badBody(c *fiber.Ctx) error {
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
		"error": "Invalid request body",
	})
}
