package service

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"pay-assist/pkg/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestOpenAI(t *testing.T, handler http.HandlerFunc) *OpenAIClient {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewOpenAIClient(&config.OpenAIConfig{
		APIKey:  "sk-test",
		BaseURL: srv.URL,
		Model:   "test-model",
	}, 0.1, 5*time.Second, zap.NewNop())
}

func TestOpenAIClient_Complete(t *testing.T) {
	var calls int
	client := newTestOpenAI(t, func(w http.ResponseWriter, r *http.Request) {
		calls++
		assert.Equal(t, "/chat/completions", r.URL.Path)
		assert.Equal(t, "Bearer sk-test", r.Header.Get("Authorization"))

		var body map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "test-model", body["model"])
		msgs := body["messages"].([]any)
		require.Len(t, msgs, 2)
		assert.Equal(t, "bill acme 50", msgs[1].(map[string]any)["content"])

		_, _ = w.Write([]byte(`{"choices":[{"message":{"content":"{\"amount\":\"50\"}"}}]}`))
	})

	out, err := client.Complete(context.Background(), "bill acme 50")
	require.NoError(t, err)
	assert.Equal(t, `{"amount":"50"}`, out)
	assert.Equal(t, 1, calls)
}

func TestOpenAIClient_Errors(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		body    string
		wantErr string
	}{
		{"server error", http.StatusInternalServerError, `{"error":"boom"}`, "status 500"},
		{"rate limited", http.StatusTooManyRequests, `slow down`, "status 429"},
		{"no choices", http.StatusOK, `{"choices":[]}`, "no completion choices"},
		{"bad json", http.StatusOK, `not json`, "failed to parse response"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var calls int
			client := newTestOpenAI(t, func(w http.ResponseWriter, r *http.Request) {
				calls++
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			})

			_, err := client.Complete(context.Background(), "list invoices")
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
			assert.Equal(t, 1, calls, "no retries")
		})
	}
}

func TestNewCompleter_Disabled(t *testing.T) {
	completer, closeFn, err := NewCompleter(&config.LLMConfig{Provider: config.ProviderNone}, zap.NewNop())
	require.NoError(t, err)
	assert.Nil(t, completer)
	assert.NoError(t, closeFn())
}

func TestNewCompleter_OpenAI(t *testing.T) {
	completer, _, err := NewCompleter(&config.LLMConfig{
		Provider: config.ProviderOpenAI,
		OpenAI:   config.OpenAIConfig{APIKey: "k", BaseURL: "http://localhost", Model: "m"},
	}, zap.NewNop())
	require.NoError(t, err)
	assert.IsType(t, &OpenAIClient{}, completer)
}
