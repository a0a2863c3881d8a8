package mcp

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"pay-assist/internal/assist"
	"pay-assist/internal/tools"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type stubProvider struct {
	calls []string
}

func (p *stubProvider) Tools() []tools.Tool {
	return []tools.Tool{{Name: "list_invoices", Description: "List invoices", InputSchema: map[string]any{"type": "object"}}}
}

func (p *stubProvider) Run(_ context.Context, name string, args map[string]any) (any, error) {
	p.calls = append(p.calls, name)
	switch name {
	case "list_invoices":
		return map[string]any{"count": 0, "status": args["status"]}, nil
	case "extract_fields":
		return nil, &assist.Error{Kind: assist.KindConfiguration, Message: "no language model is configured"}
	default:
		return nil, errors.New("unknown tool: " + name)
	}
}

func run(t *testing.T, input string) ([]Response, *stubProvider) {
	t.Helper()
	provider := &stubProvider{}
	var out bytes.Buffer
	err := NewServer(provider, "test", zap.NewNop()).Run(context.Background(), strings.NewReader(input), &out)
	require.NoError(t, err)

	var responses []Response
	scanner := bufio.NewScanner(&out)
	for scanner.Scan() {
		var resp Response
		require.NoError(t, json.Unmarshal(scanner.Bytes(), &resp))
		responses = append(responses, resp)
	}
	return responses, provider
}

func TestServer_Handshake(t *testing.T) {
	responses, _ := run(t, strings.Join([]string{
		`{"jsonrpc":"2.0","id":1,"method":"initialize","params":{}}`,
		`{"jsonrpc":"2.0","method":"notifications/initialized"}`,
		`{"jsonrpc":"2.0","id":2,"method":"tools/list"}`,
	}, "\n"))

	require.Len(t, responses, 2, "notifications get no response")
	init := responses[0].Result.(map[string]any)
	assert.Equal(t, protocolVersion, init["protocolVersion"])
	assert.Equal(t, "pay-assist", init["serverInfo"].(map[string]any)["name"])

	list := responses[1].Result.(map[string]any)["tools"].([]any)
	require.Len(t, list, 1)
	assert.Equal(t, "list_invoices", list[0].(map[string]any)["name"])
}

func TestServer_CallTool(t *testing.T) {
	responses, provider := run(t, strings.Join([]string{
		`{"jsonrpc":"2.0","id":1,"method":"tools/call","params":{"name":"list_invoices","arguments":{"status":"PAID"}}}`,
		`{"jsonrpc":"2.0","id":2,"method":"tools/call","params":{"name":"extract_fields","arguments":{"input":"bill acme"}}}`,
		`{"jsonrpc":"2.0","id":3,"method":"tools/call","params":{"name":"nope"}}`,
	}, "\n"))

	require.Len(t, responses, 3)
	assert.Equal(t, []string{"list_invoices", "extract_fields", "nope"}, provider.calls)

	ok := responses[0].Result.(map[string]any)
	assert.Nil(t, ok["isError"])
	text := ok["content"].([]any)[0].(map[string]any)["text"].(string)
	assert.JSONEq(t, `{"count":0,"status":"PAID"}`, text)

	failed := responses[1].Result.(map[string]any)
	assert.Equal(t, true, failed["isError"])
	text = failed["content"].([]any)[0].(map[string]any)["text"].(string)
	assert.JSONEq(t, `{"error":true,"message":"no language model is configured"}`, text)

	unknown := responses[2].Result.(map[string]any)
	assert.Equal(t, true, unknown["isError"])
}

func TestServer_ProtocolErrors(t *testing.T) {
	responses, provider := run(t, strings.Join([]string{
		`{not json`,
		`{"jsonrpc":"2.0","id":7,"method":"resources/list"}`,
		`{"jsonrpc":"2.0","id":8,"method":"tools/call","params":"oops"}`,
		``,
	}, "\n"))

	require.Len(t, responses, 3)
	assert.Equal(t, codeParseError, responses[0].Error.Code)
	assert.Equal(t, codeMethodNotFound, responses[1].Error.Code)
	assert.Equal(t, float64(7), responses[1].ID)
	assert.Equal(t, codeInvalidParams, responses[2].Error.Code)
	assert.Empty(t, provider.calls)
}
