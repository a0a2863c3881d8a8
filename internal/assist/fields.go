package assist

import (
	"strconv"
	"strings"
)

// Known field names. Extraction output never carries any other key.
const (
	FieldAmount        = "amount"
	FieldCurrency      = "currency"
	FieldEmail         = "email"
	FieldCustomerEmail = "customerEmail"
	FieldCustomerName  = "customerName"
	FieldName          = "name"
	FieldRecipient     = "recipient"
	FieldDueDate       = "dueDate"
	FieldDueDays       = "dueDays"
	FieldMemo          = "memo"
	FieldInvoiceID     = "invoiceId"
	FieldStatus        = "status"
	FieldMinAmount     = "minAmount"
	FieldMaxAmount     = "maxAmount"
	FieldLinkType      = "linkType"
)

var knownFields = map[string]struct{}{
	FieldAmount: {}, FieldCurrency: {}, FieldEmail: {}, FieldCustomerEmail: {},
	FieldCustomerName: {}, FieldName: {}, FieldRecipient: {}, FieldDueDate: {},
	FieldDueDays: {}, FieldMemo: {}, FieldInvoiceID: {}, FieldStatus: {},
	FieldMinAmount: {}, FieldMaxAmount: {}, FieldLinkType: {},
}

var requiredFields = map[ActionKind][]string{
	ActionCreateInvoice:     {FieldAmount, FieldCurrency, FieldEmail, FieldDueDate, FieldCustomerName, FieldMemo},
	ActionListInvoices:      {FieldStatus, FieldMinAmount, FieldCurrency},
	ActionSendInvoice:       {FieldInvoiceID, FieldEmail},
	ActionUpdateInvoice:     {FieldInvoiceID, FieldAmount, FieldCurrency, FieldDueDate, FieldMemo},
	ActionCreatePaymentLink: {FieldAmount, FieldCurrency, FieldMemo, FieldLinkType},
	ActionListPaymentLinks:  {FieldStatus, FieldMinAmount, FieldCurrency},
}

// IsKnownField reports whether name belongs to the field superset.
func IsKnownField(name string) bool {
	_, ok := knownFields[name]
	return ok
}

// RequiredFields returns the ordered schema for action. Auto and Unknown have none.
func RequiredFields(action ActionKind) []string {
	fields := requiredFields[action]
	out := make([]string, len(fields))
	copy(out, fields)
	return out
}

// FieldBag maps field names to string, number or null values.
type FieldBag map[string]any

// Clone returns a shallow copy that never aliases b.
func (b FieldBag) Clone() FieldBag {
	out := make(FieldBag, len(b))
	for k, v := range b {
		out[k] = v
	}
	return out
}

// Has reports whether key holds a truthy value.
func (b FieldBag) Has(key string) bool {
	v, ok := b[key]
	return ok && !isFalsy(v)
}

// String renders the value under key, or "" when absent or falsy.
func (b FieldBag) String(key string) string {
	v, ok := b[key]
	if !ok || isFalsy(v) {
		return ""
	}
	switch t := v.(type) {
	case string:
		return t
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case int:
		return strconv.Itoa(t)
	case bool:
		return strconv.FormatBool(t)
	default:
		return ""
	}
}

// Number returns the numeric value under key, parsing strings when needed.
func (b FieldBag) Number(key string) (float64, bool) {
	switch t := b[key].(type) {
	case float64:
		return t, true
	case int:
		return float64(t), true
	case string:
		f, err := strconv.ParseFloat(strings.ReplaceAll(strings.TrimSpace(t), ",", ""), 64)
		if err != nil {
			return 0, false
		}
		return f, true
	default:
		return 0, false
	}
}

// Missing returns the fields of action's schema that are absent or falsy in bag,
// preserving schema order.
func Missing(action ActionKind, bag FieldBag) []string {
	missing := []string{}
	for _, f := range requiredFields[action] {
		if !bag.Has(f) {
			missing = append(missing, f)
		}
	}
	return missing
}

// Sanitize drops unknown keys and values that are not strings, numbers, booleans or null.
func Sanitize(in map[string]any) FieldBag {
	out := make(FieldBag, len(in))
	for k, v := range in {
		if !IsKnownField(k) {
			continue
		}
		switch t := v.(type) {
		case nil, string, float64, bool:
			out[k] = t
		case int:
			out[k] = float64(t)
		}
	}
	return out
}

// merge copies keys from src that dst does not already hold truthily.
func (b FieldBag) merge(src FieldBag) {
	for k, v := range src {
		if !b.Has(k) {
			b[k] = v
		}
	}
}

func isFalsy(v any) bool {
	switch t := v.(type) {
	case nil:
		return true
	case string:
		return t == ""
	case bool:
		return !t
	case float64:
		return t == 0
	case int:
		return t == 0
	default:
		return false
	}
}
