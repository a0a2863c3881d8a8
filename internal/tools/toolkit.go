package tools

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	"pay-assist/internal/assist"
	"pay-assist/internal/dto"

	"github.com/santhosh-tekuri/jsonschema/v5"
	"go.uber.org/zap"
)

var (
	ErrUnknownTool      = errors.New("unknown tool")
	ErrInvalidArguments = errors.New("invalid tool arguments")
)

type InvoiceAPI interface {
	Create(ctx context.Context, req *dto.CreateInvoiceRequest) (*dto.InvoiceResponse, error)
	Get(ctx context.Context, id string) (*dto.InvoiceResponse, error)
	List(ctx context.Context, req *dto.ListInvoicesRequest) (*dto.InvoiceListResponse, error)
	Send(ctx context.Context, id, email string) (*dto.InvoiceResponse, error)
	Update(ctx context.Context, id string, req *dto.UpdateInvoiceRequest) (*dto.InvoiceResponse, error)
}

type PaymentLinkAPI interface {
	Create(ctx context.Context, req *dto.CreatePaymentLinkRequest) (*dto.PaymentLinkResponse, error)
	Get(ctx context.Context, id string) (*dto.PaymentLinkResponse, error)
	List(ctx context.Context, req *dto.ListPaymentLinksRequest) (*dto.PaymentLinkListResponse, error)
	SetStatus(ctx context.Context, id, status string) (*dto.PaymentLinkResponse, error)
}

// Toolkit validates tool arguments against their schema and dispatches to
// the payment services.
type Toolkit struct {
	invoices InvoiceAPI
	links    PaymentLinkAPI
	router   *assist.Router
	minInput int
	tools    []Tool
	schemas  map[string]*jsonschema.Schema
	logger   *zap.Logger
}

func New(invoices InvoiceAPI, links PaymentLinkAPI, router *assist.Router, minInput int, logger *zap.Logger) (*Toolkit, error) {
	k := &Toolkit{
		invoices: invoices,
		links:    links,
		router:   router,
		minInput: minInput,
		schemas:  make(map[string]*jsonschema.Schema, len(definitions)),
		logger:   logger,
	}

	compiler := jsonschema.NewCompiler()
	for _, def := range definitions {
		url := def.name + ".json"
		if err := compiler.AddResource(url, bytes.NewReader([]byte(def.schema))); err != nil {
			return nil, fmt.Errorf("add schema %s: %w", def.name, err)
		}
		schema, err := compiler.Compile(url)
		if err != nil {
			return nil, fmt.Errorf("compile schema %s: %w", def.name, err)
		}

		var doc map[string]any
		if err := json.Unmarshal([]byte(def.schema), &doc); err != nil {
			return nil, fmt.Errorf("decode schema %s: %w", def.name, err)
		}

		k.schemas[def.name] = schema
		k.tools = append(k.tools, Tool{Name: def.name, Description: def.description, InputSchema: doc})
	}

	return k, nil
}

// Tools lists every tool in a stable order.
func (k *Toolkit) Tools() []Tool {
	out := make([]Tool, len(k.tools))
	copy(out, k.tools)
	return out
}

// Run validates args and executes the named tool.
func (k *Toolkit) Run(ctx context.Context, name string, args map[string]any) (any, error) {
	schema, ok := k.schemas[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownTool, name)
	}

	normalized, err := toJSONValue(args)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidArguments, err)
	}
	if err := schema.Validate(normalized); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidArguments, err)
	}

	start := time.Now()
	result, err := k.dispatch(ctx, name, stringifyNumbers(normalized))
	k.logger.Info("Tool run",
		zap.String("tool", name),
		zap.Bool("ok", err == nil),
		zap.Int64("elapsed_ms", time.Since(start).Milliseconds()),
	)
	return result, err
}

func (k *Toolkit) dispatch(ctx context.Context, name string, args map[string]any) (any, error) {
	switch name {
	case ToolCreateInvoice:
		var req dto.CreateInvoiceRequest
		if err := decode(args, &req); err != nil {
			return nil, err
		}
		return k.invoices.Create(ctx, &req)
	case ToolListInvoices:
		var req dto.ListInvoicesRequest
		if err := decode(args, &req); err != nil {
			return nil, err
		}
		return k.invoices.List(ctx, &req)
	case ToolGetInvoice:
		return k.invoices.Get(ctx, stringArg(args, "invoiceId"))
	case ToolSendInvoice:
		return k.invoices.Send(ctx, stringArg(args, "invoiceId"), stringArg(args, "email"))
	case ToolUpdateInvoice:
		var req dto.UpdateInvoiceRequest
		if err := decode(args, &req); err != nil {
			return nil, err
		}
		return k.invoices.Update(ctx, stringArg(args, "invoiceId"), &req)
	case ToolCreatePaymentLink:
		var req dto.CreatePaymentLinkRequest
		if err := decode(args, &req); err != nil {
			return nil, err
		}
		return k.links.Create(ctx, &req)
	case ToolListPaymentLinks:
		var req dto.ListPaymentLinksRequest
		if err := decode(args, &req); err != nil {
			return nil, err
		}
		return k.links.List(ctx, &req)
	case ToolGetPaymentLink:
		return k.links.Get(ctx, stringArg(args, "linkId"))
	case ToolUpdatePaymentLinkStatus:
		return k.links.SetStatus(ctx, stringArg(args, "linkId"), stringArg(args, "status"))
	case ToolExtractFields:
		input := stringArg(args, "input")
		if err := assist.ValidateInputLength(input, k.minInput); err != nil {
			return nil, err
		}
		return k.router.Route(ctx, input, assist.ParseActionKind(stringArg(args, "action")))
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownTool, name)
	}
}

// toJSONValue round-trips args through JSON so Go ints and typed values
// validate like decoded JSON.
func toJSONValue(args map[string]any) (map[string]any, error) {
	if args == nil {
		return map[string]any{}, nil
	}
	raw, err := json.Marshal(args)
	if err != nil {
		return nil, err
	}
	var out map[string]any
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// stringifyNumbers turns amount-like numbers into strings for the request
// structs. Integer pagination values stay numeric.
func stringifyNumbers(args map[string]any) map[string]any {
	out := make(map[string]any, len(args))
	for k, v := range args {
		if f, ok := v.(float64); ok && k != "limit" && k != "offset" {
			out[k] = strconv.FormatFloat(f, 'f', -1, 64)
			continue
		}
		out[k] = v
	}
	return out
}

func decode(args map[string]any, dst any) error {
	raw, err := json.Marshal(args)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidArguments, err)
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidArguments, err)
	}
	return nil
}

func stringArg(args map[string]any, key string) string {
	s, _ := args[key].(string)
	return s
}
