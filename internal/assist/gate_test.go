package assist

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecide(t *testing.T) {
	complete := FieldBag{
		FieldAmount:       "250.00",
		FieldCurrency:     "USD",
		FieldEmail:        "jane.doe@example.com",
		FieldDueDate:      "2025-01-16",
		FieldCustomerName: "Jane Doe",
		FieldMemo:         "Consulting",
	}

	t.Run("mutating without confirmation never executes", func(t *testing.T) {
		d, err := Decide(ActionCreateInvoice, complete, false)
		require.NoError(t, err)
		assert.False(t, d.Execute())
		assert.Equal(t, StateAwaitingConfirmation, d.State)
		require.NotNil(t, d.Confirmation)
		assert.True(t, d.Confirmation.NeedsConfirmation)
		assert.Equal(t, complete, d.Confirmation.Fields)
		assert.Empty(t, d.Confirmation.Missing)
	})

	t.Run("confirmation lists missing fields", func(t *testing.T) {
		d, err := Decide(ActionSendInvoice, FieldBag{FieldInvoiceID: "inv_1"}, false)
		require.NoError(t, err)
		require.NotNil(t, d.Confirmation)
		assert.Equal(t, []string{FieldEmail}, d.Confirmation.Missing)
	})

	t.Run("confirmed mutating executes", func(t *testing.T) {
		d, err := Decide(ActionCreatePaymentLink, FieldBag{}, true)
		require.NoError(t, err)
		assert.True(t, d.Execute())
		assert.Nil(t, d.Confirmation)
	})

	t.Run("list actions skip the gate", func(t *testing.T) {
		for _, action := range []ActionKind{ActionListInvoices, ActionListPaymentLinks} {
			d, err := Decide(action, nil, false)
			require.NoError(t, err)
			assert.True(t, d.Execute())
		}
	})

	t.Run("unsupported", func(t *testing.T) {
		for _, action := range []ActionKind{ActionAuto, ActionUnknown, ActionKind("refund")} {
			_, err := Decide(action, complete, true)
			assert.True(t, errors.Is(err, ErrUnsupportedAction))
		}
	})
}

func TestMerge(t *testing.T) {
	extracted := FieldBag{FieldAmount: "10", FieldCurrency: "USD"}
	overrides := FieldBag{FieldAmount: "12.50", FieldMemo: "Rush", FieldCurrency: nil, "bogus": "x"}

	got := Merge(extracted, overrides)
	assert.Equal(t, FieldBag{FieldAmount: "12.50", FieldCurrency: "USD", FieldMemo: "Rush"}, got)
	assert.Equal(t, "10", extracted[FieldAmount])
}
