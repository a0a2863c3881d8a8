package assist

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBind(t *testing.T) {
	t.Run("create invoice falls back to customer fields", func(t *testing.T) {
		f, err := Bind(ActionCreateInvoice, FieldBag{
			FieldAmount:        "99",
			FieldCurrency:      "eur",
			FieldCustomerEmail: "ops@globex.com",
			FieldName:          "Globex",
		})
		require.NoError(t, err)

		inv, ok := f.(CreateInvoiceFields)
		require.True(t, ok)
		assert.Equal(t, "ops@globex.com", inv.Email)
		assert.Equal(t, "Globex", inv.CustomerName)
		assert.Equal(t, "EUR", inv.Currency)
		assert.Equal(t, ActionCreateInvoice, f.Action())
	})

	t.Run("payment link defaults to purchase", func(t *testing.T) {
		f, err := Bind(ActionCreatePaymentLink, FieldBag{FieldAmount: "5"})
		require.NoError(t, err)
		assert.Equal(t, LinkPurchase, f.(CreatePaymentLinkFields).LinkType)

		f, err = Bind(ActionCreatePaymentLink, FieldBag{FieldLinkType: "donation", FieldMinAmount: "5", FieldMaxAmount: float64(50)})
		require.NoError(t, err)
		link := f.(CreatePaymentLinkFields)
		assert.Equal(t, LinkDonation, link.LinkType)
		assert.Equal(t, "50", link.MaxAmount)
	})

	t.Run("every concrete action binds", func(t *testing.T) {
		for _, action := range ConcreteActions {
			f, err := Bind(action, FieldBag{})
			require.NoError(t, err)
			assert.Equal(t, action, f.Action())
		}
	})

	t.Run("auto cannot bind", func(t *testing.T) {
		_, err := Bind(ActionAuto, FieldBag{})
		assert.True(t, errors.Is(err, ErrUnsupportedAction))
	})
}

func TestFieldsArgs(t *testing.T) {
	args := ListInvoicesFields{Status: InvoicePaid}.Args()
	assert.Equal(t, map[string]any{"status": "PAID"}, args)

	args = UpdateInvoiceFields{InvoiceID: "inv_1", Memo: "New"}.Args()
	assert.Equal(t, map[string]any{"invoiceId": "inv_1", "memo": "New"}, args)
}

func TestMissing(t *testing.T) {
	bag := FieldBag{
		FieldAmount:   "0",
		FieldCurrency: "",
		FieldEmail:    nil,
		FieldDueDate:  false,
		FieldMemo:     float64(0),
	}
	assert.Equal(t, []string{FieldCurrency, FieldEmail, FieldDueDate, FieldCustomerName, FieldMemo},
		Missing(ActionCreateInvoice, bag))
	assert.Empty(t, Missing(ActionAuto, bag))
}

func TestSanitize(t *testing.T) {
	got := Sanitize(map[string]any{
		FieldAmount: float64(12),
		FieldMemo:   map[string]any{"nested": true},
		"other":     "x",
		FieldStatus: nil,
	})
	assert.Equal(t, FieldBag{FieldAmount: float64(12), FieldStatus: nil}, got)
}

func TestValidateInput(t *testing.T) {
	for _, in := range []string{"", "   ", "ab", "  ab  "} {
		err := ValidateInput(in)
		assert.True(t, errors.Is(err, ErrValidation), "input %q", in)
	}
	assert.NoError(t, ValidateInput("abc"))
}

func TestErrorPayload(t *testing.T) {
	err := &Error{Kind: KindExtraction, Message: "failed to parse extraction response", Detail: "invalid JSON", Raw: "oops"}
	assert.Equal(t, ErrorPayload{Error: true, Message: "failed to parse extraction response", Detail: "invalid JSON", Raw: "oops"}, err.Payload())
	assert.Equal(t, "failed to parse extraction response: invalid JSON", err.Error())
	assert.False(t, errors.Is(err, ErrConfiguration))
}
