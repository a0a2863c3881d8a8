package assist

import (
	"regexp"
	"strings"
	"time"
	"unicode"
)

var (
	dueDaysRe   = regexp.MustCompile(`^\d{1,3}$`)
	nameSplitRe = regexp.MustCompile(`[._\-+]+`)
)

// Normalize fills derivable fields and canonicalizes values. It returns a new
// bag and is idempotent. The rules run in a fixed order because later ones read
// what earlier ones wrote.
func Normalize(raw string, fields FieldBag, today time.Time) FieldBag {
	out := fields.Clone()

	// 1. recipient is either an email or a display name.
	if recipient := strings.TrimSpace(out.String(FieldRecipient)); recipient != "" {
		if emailOnlyRe.MatchString(recipient) {
			if !out.Has(FieldEmail) {
				out[FieldEmail] = recipient
			}
			if !out.Has(FieldCustomerEmail) {
				out[FieldCustomerEmail] = recipient
			}
		} else if !out.Has(FieldCustomerName) && !out.Has(FieldName) {
			out[FieldCustomerName] = recipient
			out[FieldName] = recipient
		}
	}

	// 2. name mirrors into customerName.
	if out.Has(FieldName) && !out.Has(FieldCustomerName) {
		out[FieldCustomerName] = out[FieldName]
	}

	// 3. fall back to any email in the raw text.
	if !out.Has(FieldEmail) && !out.Has(FieldCustomerEmail) {
		if email := emailRe.FindString(raw); email != "" {
			out[FieldEmail] = email
			out[FieldCustomerEmail] = email
		}
	}

	// 4. derive a display name from the email local part.
	if !out.Has(FieldCustomerName) && !out.Has(FieldName) {
		email := out.String(FieldEmail)
		if email == "" {
			email = out.String(FieldCustomerEmail)
		}
		if name := NameFromEmail(email); name != "" {
			out[FieldCustomerName] = name
			out[FieldName] = name
		}
	}

	// 5. dueDays counts UTC calendar days from today.
	if !out.Has(FieldDueDate) {
		if days, ok := smallPositiveInt(out[FieldDueDays]); ok {
			out[FieldDueDate] = addDays(today, days)
		}
	}

	// 6. relative or literal dates in the raw text.
	if !out.Has(FieldDueDate) {
		out.merge(DueDateExtractor(today)(raw, out))
	}

	if currency, ok := out[FieldCurrency].(string); ok && currency != "" {
		out[FieldCurrency] = strings.ToUpper(strings.TrimSpace(currency))
	}

	return out
}

// NameFromEmail title-cases the local part of email: "jane.doe@x.io" becomes "Jane Doe".
func NameFromEmail(email string) string {
	at := strings.IndexByte(email, '@')
	if at <= 0 {
		return ""
	}
	var parts []string
	for _, p := range nameSplitRe.Split(email[:at], -1) {
		if p == "" {
			continue
		}
		parts = append(parts, titleCase(p))
	}
	return strings.Join(parts, " ")
}

func titleCase(s string) string {
	runes := []rune(strings.ToLower(s))
	runes[0] = unicode.ToUpper(runes[0])
	return string(runes)
}

func smallPositiveInt(v any) (int, bool) {
	switch t := v.(type) {
	case float64:
		if t > 0 && t < 1000 && t == float64(int(t)) {
			return int(t), true
		}
	case int:
		if t > 0 && t < 1000 {
			return t, true
		}
	case string:
		s := strings.TrimSpace(t)
		if !dueDaysRe.MatchString(s) {
			return 0, false
		}
		n := 0
		for _, r := range s {
			n = n*10 + int(r-'0')
		}
		if n > 0 {
			return n, true
		}
	}
	return 0, false
}
