package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"

	"pay-assist/internal/assist"
	"pay-assist/internal/dto"
	"pay-assist/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeAssist struct {
	result  *assist.ExtractionResult
	execute *dto.ExecuteResponse
	err     error
}

func (f *fakeAssist) Extract(context.Context, *dto.ExtractRequest) (*assist.ExtractionResult, error) {
	return f.result, f.err
}

func (f *fakeAssist) Infer(context.Context, *dto.ExtractRequest) (*assist.ExtractionResult, error) {
	return f.result, f.err
}

func (f *fakeAssist) Execute(context.Context, *dto.ExecuteRequest) (*dto.ExecuteResponse, error) {
	return f.execute, f.err
}

type fakeInvoices struct {
	invoice *dto.InvoiceResponse
	err     error
	sentTo  string
}

func (f *fakeInvoices) Create(context.Context, *dto.CreateInvoiceRequest) (*dto.InvoiceResponse, error) {
	return f.invoice, f.err
}

func (f *fakeInvoices) Get(context.Context, string) (*dto.InvoiceResponse, error) {
	return f.invoice, f.err
}

func (f *fakeInvoices) List(context.Context, *dto.ListInvoicesRequest) (*dto.InvoiceListResponse, error) {
	if f.err != nil {
		return nil, f.err
	}
	return &dto.InvoiceListResponse{Invoices: []dto.InvoiceResponse{*f.invoice}, Count: 1}, nil
}

func (f *fakeInvoices) Send(_ context.Context, _ string, email string) (*dto.InvoiceResponse, error) {
	f.sentTo = email
	return f.invoice, f.err
}

func (f *fakeInvoices) Update(context.Context, string, *dto.UpdateInvoiceRequest) (*dto.InvoiceResponse, error) {
	return f.invoice, f.err
}

type fakeExporter struct{}

func (fakeExporter) InvoicesXLSX(context.Context) ([]byte, error) {
	return []byte("xlsx"), nil
}

type fakeAuth struct{}

func (fakeAuth) Login(_ context.Context, req *dto.LoginRequest) (*dto.AuthResponse, error) {
	if req.APIKey != "good" {
		return nil, service.ErrInvalidCredentials
	}
	return &dto.AuthResponse{AccessToken: "a", RefreshToken: "r", TokenType: "Bearer"}, nil
}

func (fakeAuth) RefreshToken(context.Context, string) (*dto.AuthResponse, error) {
	return nil, service.ErrInvalidCredentials
}

func doJSON(t *testing.T, app *fiber.App, method, path string, body any) (int, []byte) {
	t.Helper()

	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	out, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, out
}

func assistApp(svc AssistService) *fiber.App {
	h := NewAssistHandler(svc, zap.NewNop())
	app := fiber.New()
	app.Post("/extract", h.Extract)
	app.Post("/infer", h.Infer)
	app.Post("/execute", h.Execute)
	return app
}

func TestAssistHandler_ErrorStatus(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"validation", &assist.Error{Kind: assist.KindValidation, Message: "input is required"}, fiber.StatusBadRequest},
		{"unsupported", &assist.Error{Kind: assist.KindUnsupportedAction, Message: "unsupported action: x"}, fiber.StatusBadRequest},
		{"configuration", &assist.Error{Kind: assist.KindConfiguration, Message: "no model"}, fiber.StatusServiceUnavailable},
		{"classification", &assist.Error{Kind: assist.KindClassification, Message: "bad"}, fiber.StatusBadGateway},
		{"extraction", &assist.Error{Kind: assist.KindExtraction, Message: "bad", Raw: "{oops"}, fiber.StatusBadGateway},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := assistApp(&fakeAssist{err: tt.err})
			status, body := doJSON(t, app, fiber.MethodPost, "/extract", dto.ExtractRequest{Input: "hello"})
			assert.Equal(t, tt.want, status)

			var payload assist.ErrorPayload
			require.NoError(t, json.Unmarshal(body, &payload))
			assert.True(t, payload.Error)
			assert.NotEmpty(t, payload.Message)
		})
	}
}

func TestAssistHandler_Extract(t *testing.T) {
	app := assistApp(&fakeAssist{result: &assist.ExtractionResult{
		Action:    assist.ActionListInvoices,
		Extracted: assist.FieldBag{"status": "PAID"},
		Missing:   []string{},
	}})

	status, body := doJSON(t, app, fiber.MethodPost, "/infer", dto.ExtractRequest{Input: "show paid invoices"})
	require.Equal(t, fiber.StatusOK, status)

	var got assist.ExtractionResult
	require.NoError(t, json.Unmarshal(body, &got))
	assert.Equal(t, assist.ActionListInvoices, got.Action)
	assert.Equal(t, "PAID", got.Extracted["status"])
}

func TestAssistHandler_ExecuteConfirmation(t *testing.T) {
	confirmation := &assist.Confirmation{
		NeedsConfirmation: true,
		Action:            assist.ActionCreatePaymentLink,
		Fields:            assist.FieldBag{"amount": "20"},
		Missing:           []string{},
	}
	app := assistApp(&fakeAssist{execute: &dto.ExecuteResponse{
		Action:       assist.ActionCreatePaymentLink,
		Confirmation: confirmation,
	}})

	status, body := doJSON(t, app, fiber.MethodPost, "/execute", dto.ExecuteRequest{Action: "create_payment_link"})
	require.Equal(t, fiber.StatusAccepted, status)

	var got assist.Confirmation
	require.NoError(t, json.Unmarshal(body, &got))
	assert.True(t, got.NeedsConfirmation)
	assert.Equal(t, "20", got.Fields["amount"])
}

func TestAssistHandler_ExecuteRan(t *testing.T) {
	app := assistApp(&fakeAssist{execute: &dto.ExecuteResponse{
		Executed: true,
		Action:   assist.ActionListInvoices,
		Result:   map[string]any{"count": 0},
	}})

	status, body := doJSON(t, app, fiber.MethodPost, "/execute", dto.ExecuteRequest{Action: "list_invoices"})
	require.Equal(t, fiber.StatusOK, status)
	assert.Contains(t, string(body), `"executed":true`)
}

func TestAssistHandler_BadBody(t *testing.T) {
	app := assistApp(&fakeAssist{})
	req := httptest.NewRequest(fiber.MethodPost, "/extract", bytes.NewBufferString("{"))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func invoiceApp(svc InvoiceService) *fiber.App {
	h := NewInvoiceHandler(svc, fakeExporter{}, zap.NewNop())
	app := fiber.New()
	app.Get("/invoices", h.ListInvoices)
	app.Post("/invoices", h.CreateInvoice)
	app.Get("/invoices/export", h.ExportInvoices)
	app.Get("/invoices/:id", h.GetInvoice)
	app.Post("/invoices/:id/send", h.SendInvoice)
	return app
}

func TestInvoiceHandler(t *testing.T) {
	invoice := &dto.InvoiceResponse{ID: "inv-1", Amount: "250.00", Currency: "EUR"}

	t.Run("create", func(t *testing.T) {
		app := invoiceApp(&fakeInvoices{invoice: invoice})
		status, body := doJSON(t, app, fiber.MethodPost, "/invoices", dto.CreateInvoiceRequest{Amount: "250"})
		assert.Equal(t, fiber.StatusCreated, status)
		assert.Contains(t, string(body), "inv-1")
	})

	t.Run("list", func(t *testing.T) {
		app := invoiceApp(&fakeInvoices{invoice: invoice})
		status, body := doJSON(t, app, fiber.MethodGet, "/invoices?status=PAID&limit=5", nil)
		assert.Equal(t, fiber.StatusOK, status)
		assert.Contains(t, string(body), `"count":1`)
	})

	t.Run("not found", func(t *testing.T) {
		app := invoiceApp(&fakeInvoices{err: service.ErrNotFound})
		status, _ := doJSON(t, app, fiber.MethodGet, "/invoices/missing", nil)
		assert.Equal(t, fiber.StatusNotFound, status)
	})

	t.Run("invalid input", func(t *testing.T) {
		app := invoiceApp(&fakeInvoices{err: service.ErrInvalidInput})
		status, _ := doJSON(t, app, fiber.MethodPost, "/invoices", dto.CreateInvoiceRequest{})
		assert.Equal(t, fiber.StatusBadRequest, status)
	})

	t.Run("send without body", func(t *testing.T) {
		svc := &fakeInvoices{invoice: invoice}
		app := invoiceApp(svc)
		status, _ := doJSON(t, app, fiber.MethodPost, "/invoices/inv-1/send", nil)
		assert.Equal(t, fiber.StatusOK, status)
		assert.Empty(t, svc.sentTo)
	})

	t.Run("send with recipient", func(t *testing.T) {
		svc := &fakeInvoices{invoice: invoice}
		app := invoiceApp(svc)
		status, _ := doJSON(t, app, fiber.MethodPost, "/invoices/inv-1/send", dto.SendInvoiceRequest{Email: "bob@example.com"})
		assert.Equal(t, fiber.StatusOK, status)
		assert.Equal(t, "bob@example.com", svc.sentTo)
	})

	t.Run("export", func(t *testing.T) {
		app := invoiceApp(&fakeInvoices{invoice: invoice})
		req := httptest.NewRequest(fiber.MethodGet, "/invoices/export", nil)
		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)
		assert.Contains(t, resp.Header.Get(fiber.HeaderContentDisposition), "invoices-")
		assert.Contains(t, resp.Header.Get(fiber.HeaderContentType), "spreadsheetml")
	})
}

func TestAuthHandler_Login(t *testing.T) {
	h := NewAuthHandler(fakeAuth{}, zap.NewNop())
	app := fiber.New()
	app.Post("/login", h.Login)
	app.Post("/refresh", h.RefreshToken)

	status, body := doJSON(t, app, fiber.MethodPost, "/login", dto.LoginRequest{Email: "ops@example.com", APIKey: "good"})
	assert.Equal(t, fiber.StatusOK, status)
	assert.Contains(t, string(body), `"access_token":"a"`)

	status, _ = doJSON(t, app, fiber.MethodPost, "/login", dto.LoginRequest{Email: "ops@example.com", APIKey: "bad"})
	assert.Equal(t, fiber.StatusUnauthorized, status)

	status, _ = doJSON(t, app, fiber.MethodPost, "/refresh", dto.RefreshTokenRequest{RefreshToken: "x"})
	assert.Equal(t, fiber.StatusUnauthorized, status)
}

func TestHealthHandler(t *testing.T) {
	app := fiber.New()
	app.Get("/health", NewHealthHandler(true, "test").Health)

	status, body := doJSON(t, app, fiber.MethodGet, "/health", nil)
	assert.Equal(t, fiber.StatusOK, status)
	assert.JSONEq(t, `{"status":"ok","llm":true,"version":"test"}`, string(body))
}
