package api

import (
	"os"
	"path/filepath"

	"pay-assist/docs"
	"pay-assist/internal/api/handlers"
	"pay-assist/pkg/auth"
	"pay-assist/pkg/middleware"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/gofiber/swagger"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type Handlers struct {
	Auth         *handlers.AuthHandler
	Assist       *handlers.AssistHandler
	Invoices     *handlers.InvoiceHandler
	PaymentLinks *handlers.PaymentLinkHandler
	Health       *handlers.HealthHandler
}

func SetupRouter(h Handlers, jwtManager *auth.JWTManager, appLogger *zap.Logger) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName: "pay-assist",
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError
			if e, ok := err.(*fiber.Error); ok {
				code = e.Code
			}
			return c.Status(code).JSON(fiber.Map{
				"error": err.Error(),
			})
		},
	})

	app.Use(recover.New())
	app.Use(requestid.New(requestid.Config{Generator: uuid.NewString}))
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PUT,PATCH,DELETE,OPTIONS",
		AllowHeaders: "Origin,Content-Type,Accept,Authorization",
	}))
	app.Use(logger.New(logger.Config{
		Format: "${time} ${locals:requestid} ${status} - ${latency} ${method} ${path}\n",
	}))

	// Importing docs registers the swagger document.
	_ = docs.SwaggerInfo
	app.Get("/swagger/*", swagger.HandlerDefault)

	webStaticPath := findWebStaticPath(appLogger)
	if webStaticPath != "" {
		appLogger.Info("Serving static files", zap.String("path", webStaticPath))
		app.Static("/static", webStaticPath)
	} else {
		appLogger.Warn("Web static directory not found, static files will not be served")
	}

	app.Get("/", func(c *fiber.Ctx) error {
		indexPath := filepath.Join(webStaticPath, "index.html")
		if webStaticPath == "" || !fileExists(indexPath) {
			return c.Status(fiber.StatusNotFound).SendString("Web interface not found. Please ensure web/static/index.html exists.")
		}
		return c.SendFile(indexPath)
	})

	app.Get("/api/health", h.Health.Health)

	authGroup := app.Group("/user/auth")
	authGroup.Post("/login", h.Auth.Login)
	authGroup.Post("/refresh", h.Auth.RefreshToken)

	protected := app.Group("/api/v1", middleware.AuthMiddleware(jwtManager, appLogger))

	assistGroup := protected.Group("/assist")
	assistGroup.Post("/extract", h.Assist.Extract)
	assistGroup.Post("/infer", h.Assist.Infer)
	assistGroup.Post("/execute", h.Assist.Execute)

	invoices := protected.Group("/invoices")
	invoices.Get("", h.Invoices.ListInvoices)
	invoices.Post("", h.Invoices.CreateInvoice)
	invoices.Get("/export", h.Invoices.ExportInvoices)
	invoices.Get("/:id", h.Invoices.GetInvoice)
	invoices.Patch("/:id", h.Invoices.UpdateInvoice)
	invoices.Post("/:id/send", h.Invoices.SendInvoice)

	links := protected.Group("/payment-links")
	links.Get("", h.PaymentLinks.ListPaymentLinks)
	links.Post("", h.PaymentLinks.CreatePaymentLink)
	links.Get("/:id", h.PaymentLinks.GetPaymentLink)
	links.Patch("/:id/status", h.PaymentLinks.UpdatePaymentLinkStatus)

	return app
}

// findWebStaticPath looks for web/static relative to the working directory.
func findWebStaticPath(logger *zap.Logger) string {
	paths := []string{
		"./web/static",
		"../web/static",
		"../../web/static",
	}

	for _, path := range paths {
		if fileExists(filepath.Join(path, "index.html")) {
			return path
		}
		logger.Debug("Tried static path", zap.String("path", path))
	}

	return ""
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
