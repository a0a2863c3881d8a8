package main

import (
	"bytes"
	"encoding/json"
	"testing"

	"pay-assist/internal/assist"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Setenv("LLM_PROVIDER", "none")

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func TestInferCommand(t *testing.T) {
	out, err := run(t, "infer", "Create an invoice for bob@acme.io for $40")
	require.NoError(t, err)

	var res assist.ExtractionResult
	require.NoError(t, json.Unmarshal([]byte(out), &res))
	assert.Equal(t, assist.ActionCreateInvoice, res.Action)
	assert.Equal(t, "bob@acme.io", res.Extracted[assist.FieldEmail])
}

func TestInferCommand_ShortInput(t *testing.T) {
	_, err := run(t, "infer", "hi")
	assert.ErrorIs(t, err, assist.ErrValidation)
}

func TestExtractCommand_MutatingWithoutLLM(t *testing.T) {
	out, err := run(t, "extract", "--action", "create_payment_link", "a link for twenty dollars")
	assert.ErrorIs(t, err, assist.ErrConfiguration)
	assert.Contains(t, out, `"error": true`)
}

func TestToolsCommand(t *testing.T) {
	out, err := run(t, "tools")
	require.NoError(t, err)
	assert.Contains(t, out, "create_invoice")
	assert.Contains(t, out, "update_payment_link_status")
}
