package assist

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

var testToday = time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

func TestExtractHeuristic_PaymentLinkScenarios(t *testing.T) {
	t.Run("fixed price with memo", func(t *testing.T) {
		got := ExtractHeuristic(ActionCreatePaymentLink,
			`Create a pay link for $25.00 USD for "Sticker Pack" with memo "Sticker Pack"`, testToday)
		assert.Equal(t, FieldBag{
			FieldAmount:   "25.00",
			FieldCurrency: "USD",
			FieldMemo:     "Sticker Pack",
		}, got)
	})

	t.Run("donation range", func(t *testing.T) {
		got := ExtractHeuristic(ActionCreatePaymentLink,
			"Create a donation link between 5 and 50 dollars for Charity", testToday)
		assert.Equal(t, "5", got[FieldMinAmount])
		assert.Equal(t, "50", got[FieldMaxAmount])
		assert.Equal(t, "DONATION", got[FieldLinkType])
		assert.NotContains(t, got, FieldAmount)
		assert.NotContains(t, got, FieldDueDate)
	})

	t.Run("amount before currency code", func(t *testing.T) {
		got := ExtractHeuristic(ActionCreatePaymentLink, "Create a link for 12 GBP", testToday)
		assert.Equal(t, FieldBag{FieldAmount: "12", FieldCurrency: "GBP"}, got)
	})

	t.Run("grouped thousands", func(t *testing.T) {
		got := ExtractHeuristic(ActionCreatePaymentLink, `Create a pay link for 1,000 USD for "Conference"`, testToday)
		assert.Equal(t, "1000", got[FieldAmount])
		assert.Equal(t, "USD", got[FieldCurrency])
		assert.Equal(t, "Conference", got[FieldMemo])
		assert.NotContains(t, got, FieldDueDate)
	})
}

func TestExtractAmount(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  any
	}{
		{name: "dollar sign", input: "charge $19.99 now", want: "19.99"},
		{name: "code suffix", input: "bill 300 eur", want: "300"},
		{name: "dollars word", input: "it costs 40 dollars", want: "40"},
		{name: "each", input: "stickers at 3 each", want: "3"},
		{name: "word phrase", input: "charge them one hundred and twenty five dollars", want: "125"},
		{name: "amount cue", input: "invoice amount of 40", want: "40"},
		{name: "no cue", input: "invoice Bob for the 3 items", want: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ExtractAmount(tt.input, nil)
			if tt.want == nil {
				assert.Empty(t, got)
				return
			}
			assert.Equal(t, tt.want, got[FieldAmount])
		})
	}

	t.Run("range suppresses amount", func(t *testing.T) {
		got := ExtractAmount("$5 to $50", FieldBag{FieldMinAmount: "5", FieldMaxAmount: "50"})
		assert.Empty(t, got)
	})
}

func TestExtractCurrency(t *testing.T) {
	assert.Equal(t, "EUR", ExtractCurrency("pay 30 eur please", nil)[FieldCurrency])
	assert.Equal(t, "JPY", ExtractCurrency("JPY 5000", nil)[FieldCurrency])
	assert.Empty(t, ExtractCurrency("pay $30", nil))
	assert.Empty(t, ExtractCurrency("try again", nil))
	assert.Empty(t, ExtractCurrency("in USD", FieldBag{FieldCurrency: "GBP"}))
}

func TestExtractRange(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantMin string
		wantMax string
	}{
		{name: "explicit", input: "min amount 10 max amount 100", wantMin: "10", wantMax: "100"},
		{name: "between words", input: "between five and fifty", wantMin: "5", wantMax: "50"},
		{name: "to", input: "anything from $5 to $20", wantMin: "5", wantMax: "20"},
		{name: "hyphen", input: "give 10-25 USD", wantMin: "10", wantMax: "25"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ExtractRange(tt.input, nil)
			assert.Equal(t, tt.wantMin, got[FieldMinAmount])
			assert.Equal(t, tt.wantMax, got[FieldMaxAmount])
			assert.Equal(t, "DONATION", got[FieldLinkType])
		})
	}

	t.Run("iso date is not a range", func(t *testing.T) {
		assert.Empty(t, ExtractRange("due 2025-01-16", nil))
	})
}

func TestExtractLinkType(t *testing.T) {
	assert.Equal(t, "DONATION", ExtractLinkType("a link to donate", nil)[FieldLinkType])
	assert.Equal(t, "PURCHASE", ExtractLinkType("fixed price link", nil)[FieldLinkType])
	assert.Empty(t, ExtractLinkType("a link", nil))
}

func TestExtractMemo(t *testing.T) {
	assert.Equal(t, "Design work", ExtractMemo(`invoice "Acme" with memo "Design work"`, nil)[FieldMemo])
	assert.Equal(t, "Acme", ExtractMemo(`invoice "Acme" for design`, nil)[FieldMemo])
	assert.Equal(t, "Gift Card", ExtractMemo("create link “Gift Card”", nil)[FieldMemo])
	assert.Empty(t, ExtractMemo(`empty "" quotes`, nil))
}

func TestExtractEmailAndRecipient(t *testing.T) {
	assert.Equal(t, "jane.doe@example.com", ExtractEmail("send to jane.doe@example.com today", nil)[FieldEmail])
	assert.Empty(t, ExtractEmail("no address", nil))

	assert.Equal(t, "Jane Doe", ExtractRecipient("Create an invoice for Jane Doe for $300", nil)[FieldRecipient])
	assert.Equal(t, "bob@acme.io", ExtractRecipient("invoice to bob@acme.io", nil)[FieldRecipient])
	assert.Empty(t, ExtractRecipient("send it to the team", nil))
}

func TestDueDateExtractor(t *testing.T) {
	extract := DueDateExtractor(testToday)

	tests := []struct {
		name     string
		input    string
		existing FieldBag
		want     string
	}{
		{name: "literal date", input: "due 2025-03-01", want: "2025-03-01"},
		{name: "due in days", input: "due in 15 days", want: "2025-01-16"},
		{name: "in weeks words", input: "payable in two weeks", want: "2025-01-15"},
		{name: "net terms", input: "Net 30", want: "2025-01-31"},
		{name: "tomorrow", input: "due tomorrow", want: "2025-01-02"},
		{name: "lone number", input: "Invoice for $250 due 30", existing: FieldBag{FieldAmount: "250"}, want: "2025-01-31"},
		{name: "amount is not a due date", input: "pay 25 dollars", existing: FieldBag{FieldAmount: "25"}},
		{name: "same number as amount", input: "charge 25 for it", existing: FieldBag{FieldAmount: "25"}},
		{name: "out of range", input: "order 900", existing: FieldBag{}},
		{name: "quoted numbers ignored", input: `memo "Order 42"`},
		{name: "already set", input: "due in 15 days", existing: FieldBag{FieldDueDate: "2025-05-05"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := extract(tt.input, tt.existing)
			if tt.want == "" {
				assert.Empty(t, got)
				return
			}
			assert.Equal(t, tt.want, got[FieldDueDate])
		})
	}
}

func TestExtractInvoiceStatus(t *testing.T) {
	tests := []struct {
		input string
		want  any
	}{
		{"list unpaid invoices", "SENT"},
		{"show paid and canceled invoices", "CANCELED"},
		{"partially paid ones", "PARTIAL"},
		{"draft or sent", "SENT"},
		{"cancelled", "CANCELED"},
		{"list invoices", nil},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got := ExtractInvoiceStatus(tt.input, nil)
			if tt.want == nil {
				assert.Empty(t, got)
				return
			}
			assert.Equal(t, tt.want, got[FieldStatus])
		})
	}
}

func TestExtractLinkStatus(t *testing.T) {
	assert.Equal(t, "INACTIVE", ExtractLinkStatus("show active and inactive links", nil)[FieldStatus])
	assert.Equal(t, "ACTIVE", ExtractLinkStatus("active links", nil)[FieldStatus])
	assert.Empty(t, ExtractLinkStatus("all links", nil))
}

func TestExtractMinAmountAndInvoiceID(t *testing.T) {
	assert.Equal(t, "100", ExtractMinAmount("invoices over $100", nil)[FieldMinAmount])
	assert.Equal(t, "50", ExtractMinAmount("at least fifty", nil)[FieldMinAmount])
	assert.Empty(t, ExtractMinAmount("all invoices", nil))

	assert.Equal(t, "3f1c2a4e-9b7d-4c1e-8f2a-6d5b4c3a2e1f",
		ExtractInvoiceID("send invoice 3F1C2A4E-9B7D-4C1E-8F2A-6D5B4C3A2E1F to bob@x.io", nil)[FieldInvoiceID])
	assert.Equal(t, "inv_12345", ExtractInvoiceID("resend inv_12345", nil)[FieldInvoiceID])
	assert.Equal(t, "1042", ExtractInvoiceID("send invoice #1042", nil)[FieldInvoiceID])
	assert.Empty(t, ExtractInvoiceID("send the invoice", nil))
}

func TestExtractHeuristic_ListActions(t *testing.T) {
	got := ExtractHeuristic(ActionListInvoices, "list paid invoices over 100 usd", testToday)
	assert.Equal(t, FieldBag{FieldStatus: "PAID", FieldMinAmount: "100", FieldCurrency: "USD"}, got)

	got = ExtractHeuristic(ActionListPaymentLinks, "show 5 inactive payment links", testToday)
	assert.Equal(t, FieldBag{FieldStatus: "INACTIVE"}, got)
}
