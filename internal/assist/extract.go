package assist

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

// Extractor reads one semantic field family from free text. It never fails:
// a field it cannot find is simply absent from the returned bag.
type Extractor func(text string, existing FieldBag) FieldBag

// InvoiceStatus is the canonical invoice status token used in list filters.
type InvoiceStatus string

const (
	InvoiceDraft    InvoiceStatus = "DRAFT"
	InvoiceCreated  InvoiceStatus = "CREATED"
	InvoiceSent     InvoiceStatus = "SENT"
	InvoicePartial  InvoiceStatus = "PARTIAL"
	InvoicePaid     InvoiceStatus = "PAID"
	InvoiceCanceled InvoiceStatus = "CANCELED"
)

// invoiceStatusPriority resolves conflicts when several statuses are mentioned.
var invoiceStatusPriority = []InvoiceStatus{
	InvoiceCanceled, InvoicePaid, InvoicePartial, InvoiceSent, InvoiceCreated, InvoiceDraft,
}

// LinkStatus is the canonical payment-link status token.
type LinkStatus string

const (
	LinkActive   LinkStatus = "ACTIVE"
	LinkInactive LinkStatus = "INACTIVE"
)

// LinkType separates fixed-amount links from ranged donation links.
type LinkType string

const (
	LinkPurchase LinkType = "PURCHASE"
	LinkDonation LinkType = "DONATION"
)

// SupportedCurrencies is the ISO 4217 whitelist recognised in free text.
var SupportedCurrencies = []string{
	"USD", "EUR", "GBP", "CAD", "AUD", "NZD", "JPY", "CHF", "CNY",
	"INR", "MXN", "BRL", "SGD", "HKD", "SEK", "NOK", "DKK", "ZAR",
}

const (
	currencyPattern = `(?:USD|EUR|GBP|CAD|AUD|NZD|JPY|CHF|CNY|INR|MXN|BRL|SGD|HKD|SEK|NOK|DKK|ZAR)`
	emailPattern    = `[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}`

	// amountPhrasePattern also lets "and" join words so that
	// "one hundred and twenty five dollars" is captured whole.
	amountPhrasePattern = numberWordPattern + `(?:(?:[\s-]+|\s+and\s+)` + numberWordPattern + `)*`
)

var (
	dollarAmountRe = regexp.MustCompile(`\$\s?(` + numberLiteralPattern + `)`)
	codeAmountRe   = regexp.MustCompile(`(?i)(?:^|[^\w.,])(` + numberLiteralPattern + `)\s*` + currencyPattern + `\b`)
	unitAmountRe   = regexp.MustCompile(`(?i)(?:^|[^\w.,])(` + numberLiteralPattern + `)\s*(?:dollars?|bucks|each)\b`)
	wordAmountRe   = regexp.MustCompile(`(?i)\b(` + amountPhrasePattern + `)\s+(?:dollars?|bucks|each|` + currencyPattern + `)\b`)
	cueAmountRe    = regexp.MustCompile(`(?i)\b(?:amount|price|total|cost)(?:\s+of)?\s*[:=]?\s*\$?\s*(` + numberLiteralPattern + `|` + amountPhrasePattern + `)`)

	amountPatterns = []*regexp.Regexp{dollarAmountRe, codeAmountRe, unitAmountRe, wordAmountRe, cueAmountRe}

	currencyRe  = regexp.MustCompile(`(?i)\b(` + currencyPattern + `)\b`)
	emailRe     = regexp.MustCompile(emailPattern)
	emailOnlyRe = regexp.MustCompile(`^` + emailPattern + `$`)

	explicitRangeRe = regexp.MustCompile(`(?i)\bmin(?:imum)?(?:\s+amount)?\s*(?:of|[:=])?\s*\$?\s*(` + numberPattern + `)\b.*?\bmax(?:imum)?(?:\s+amount)?\s*(?:of|[:=])?\s*\$?\s*(` + numberPattern + `)`)
	betweenRangeRe  = regexp.MustCompile(`(?i)\bbetween\s+\$?\s*(` + numberPattern + `)(?:\s*(?:dollars?|bucks|` + currencyPattern + `))?\s+and\s+\$?\s*(` + numberPattern + `)`)
	toRangeRe       = regexp.MustCompile(`(?i)(?:^|[^\w.,$-])\$?\s*(` + numberLiteralPattern + `)(?:\s*(?:dollars?|bucks|` + currencyPattern + `))?\s*(?:to|-|–)\s*\$?\s*(` + numberLiteralPattern + `)`)

	donationRe = regexp.MustCompile(`(?i)\b(?:donat(?:e|es|ed|ing|ion|ions)|tip\s+jar|pay\s+what\s+you\s+want|contributions?)\b`)
	purchaseRe = regexp.MustCompile(`(?i)\b(?:purchase|fixed(?:\s+price)?|buy|checkout)\b`)

	labeledMemoRe = regexp.MustCompile(`(?i)\b(?:memo|description|note)\s*[:=]?\s*["“]([^"“”]*)["”]`)
	quotedRe      = regexp.MustCompile(`["“]([^"“”]*)["”]`)

	recipientRe = regexp.MustCompile(`\b(?:[Tt]o|[Ff]or|[Bb]ill|[Cc]harge|[Ii]nvoice)\s+(` + emailPattern + `|[A-Z][a-z][A-Za-z'’-]*(?:\s+[A-Z][a-z][A-Za-z'’-]*)*)`)

	isoDateRe      = regexp.MustCompile(`\b(\d{4}-\d{2}-\d{2})\b`)
	relativeDaysRe = regexp.MustCompile(`(?i)\b(?:due\s+)?in\s+(\d{1,3}|` + numberPhrasePattern + `)\s+(days?|weeks?)\b`)
	netTermsRe     = regexp.MustCompile(`(?i)\bnet\s*-?\s*(\d{1,3})\b`)
	namedDayRe     = regexp.MustCompile(`(?i)\b(?:due|by)\s+(today|tomorrow|next\s+week)\b`)
	loneNumberRe   = regexp.MustCompile(`\b\d{1,3}\b`)
	amountSuffixRe = regexp.MustCompile(`(?i)^(?:%|` + currencyPattern + `\b|dollars?\b|bucks\b|each\b|cents?\b)`)

	minAmountRe = regexp.MustCompile(`(?i)(?:\b(?:over|above|more\s+than|greater\s+than|at\s+least|min(?:imum)?(?:\s+amount)?(?:\s+of)?)|>=?)\s*\$?\s*(` + numberPattern + `)`)

	uuidRe       = regexp.MustCompile(`(?i)\b[0-9a-f]{8}-[0-9a-f]{4}-[0-9a-f]{4}-[0-9a-f]{4}-[0-9a-f]{12}\b`)
	prefixedIDRe = regexp.MustCompile(`(?i)\b(inv[_-][A-Za-z0-9]+)\b`)
	numberedIDRe = regexp.MustCompile(`(?i)\binvoice\s*(?:#|\bno\b\.?|\bnumber\b|\bid\b)\s*:?\s*([A-Za-z0-9][A-Za-z0-9_-]*)`)
)

var recipientStopWords = map[string]struct{}{
	"The": {}, "This": {}, "That": {}, "Net": {}, "Next": {}, "Invoice": {},
	"Memo": {}, "Due": {}, "Today": {}, "Tomorrow": {}, "Payment": {}, "Pay": {},
}

type statusSynonym struct {
	phrase string
	status string
}

// Longer phrases come first so "partially paid" wins over "paid".
var invoiceStatusSynonyms = []statusSynonym{
	{"awaiting payment", string(InvoiceSent)},
	{"partially paid", string(InvoicePartial)},
	{"partly paid", string(InvoicePartial)},
	{"outstanding", string(InvoiceSent)},
	{"cancelled", string(InvoiceCanceled)},
	{"canceled", string(InvoiceCanceled)},
	{"partially", string(InvoicePartial)},
	{"settled", string(InvoicePaid)},
	{"overdue", string(InvoiceSent)},
	{"pending", string(InvoiceSent)},
	{"created", string(InvoiceCreated)},
	{"partial", string(InvoicePartial)},
	{"cancel", string(InvoiceCanceled)},
	{"voided", string(InvoiceCanceled)},
	{"drafts", string(InvoiceDraft)},
	{"issued", string(InvoiceCreated)},
	{"unpaid", string(InvoiceSent)},
	{"draft", string(InvoiceDraft)},
	{"void", string(InvoiceCanceled)},
	{"paid", string(InvoicePaid)},
	{"sent", string(InvoiceSent)},
	{"open", string(InvoiceSent)},
	{"new", string(InvoiceCreated)},
}

var linkStatusSynonyms = []statusSynonym{
	{"deactivated", string(LinkInactive)},
	{"inactive", string(LinkInactive)},
	{"disabled", string(LinkInactive)},
	{"archived", string(LinkInactive)},
	{"expired", string(LinkInactive)},
	{"enabled", string(LinkActive)},
	{"closed", string(LinkInactive)},
	{"active", string(LinkActive)},
	{"live", string(LinkActive)},
	{"open", string(LinkActive)},
}

var (
	invoiceStatusRe = synonymRegexp(invoiceStatusSynonyms)
	linkStatusRe    = synonymRegexp(linkStatusSynonyms)
)

func synonymRegexp(table []statusSynonym) *regexp.Regexp {
	alts := make([]string, len(table))
	for i, s := range table {
		alts[i] = strings.ReplaceAll(regexp.QuoteMeta(s.phrase), " ", `\s+`)
	}
	return regexp.MustCompile(`(?i)\b(?:` + strings.Join(alts, "|") + `)\b`)
}

// ExtractAmount reads a fixed amount. Range language suppresses it.
func ExtractAmount(text string, existing FieldBag) FieldBag {
	if existing.Has(FieldAmount) || existing.Has(FieldMinAmount) || existing.Has(FieldMaxAmount) {
		return nil
	}
	for _, re := range amountPatterns {
		m := re.FindStringSubmatch(text)
		if m == nil {
			continue
		}
		if v, ok := ParseNumber(m[1]); ok {
			return FieldBag{FieldAmount: v}
		}
	}
	return nil
}

func ExtractCurrency(text string, existing FieldBag) FieldBag {
	if existing.Has(FieldCurrency) {
		return nil
	}
	if m := currencyRe.FindStringSubmatch(text); m != nil {
		return FieldBag{FieldCurrency: strings.ToUpper(m[1])}
	}
	return nil
}

// ExtractRange reads min/max bounds. The first number is always the minimum.
func ExtractRange(text string, existing FieldBag) FieldBag {
	if existing.Has(FieldMinAmount) && existing.Has(FieldMaxAmount) {
		return nil
	}

	lo, hi, ok := findRange(text)
	if !ok {
		return nil
	}
	return FieldBag{
		FieldMinAmount: lo,
		FieldMaxAmount: hi,
		FieldLinkType:  string(LinkDonation),
	}
}

func findRange(text string) (string, string, bool) {
	for _, re := range []*regexp.Regexp{explicitRangeRe, betweenRangeRe} {
		if m := re.FindStringSubmatch(text); m != nil {
			lo, lok := ParseNumber(m[1])
			hi, hok := ParseNumber(m[2])
			if lok && hok {
				return lo, hi, true
			}
		}
	}

	for _, loc := range toRangeRe.FindAllStringSubmatchIndex(text, -1) {
		end := loc[1]
		if end < len(text) && (text[end] == '-' || text[end] == '.' && end+1 < len(text) && isDigit(text[end+1])) {
			continue
		}
		return canonicalLiteral(text[loc[2]:loc[3]]), canonicalLiteral(text[loc[4]:loc[5]]), true
	}
	return "", "", false
}

// ExtractLinkType only reports an explicit signal; PURCHASE is applied as the
// default when fields are bound for execution.
func ExtractLinkType(text string, existing FieldBag) FieldBag {
	if existing.Has(FieldLinkType) {
		return nil
	}
	switch {
	case donationRe.MatchString(text):
		return FieldBag{FieldLinkType: string(LinkDonation)}
	case purchaseRe.MatchString(text):
		return FieldBag{FieldLinkType: string(LinkPurchase)}
	default:
		return nil
	}
}

// ExtractMemo prefers a labelled quote ("memo", "description", "note") over the
// first quoted string in the text.
func ExtractMemo(text string, existing FieldBag) FieldBag {
	if existing.Has(FieldMemo) {
		return nil
	}
	for _, re := range []*regexp.Regexp{labeledMemoRe, quotedRe} {
		for _, m := range re.FindAllStringSubmatch(text, -1) {
			if strings.TrimSpace(m[1]) != "" {
				return FieldBag{FieldMemo: m[1]}
			}
		}
	}
	return nil
}

func ExtractEmail(text string, existing FieldBag) FieldBag {
	if existing.Has(FieldEmail) {
		return nil
	}
	if m := emailRe.FindString(text); m != "" {
		return FieldBag{FieldEmail: m}
	}
	return nil
}

// ExtractRecipient captures who a request is addressed to. The normalizer
// decides whether the value is an email or a display name.
func ExtractRecipient(text string, existing FieldBag) FieldBag {
	if existing.Has(FieldRecipient) {
		return nil
	}
	for _, m := range recipientRe.FindAllStringSubmatch(text, -1) {
		first := strings.Fields(m[1])[0]
		if _, stop := recipientStopWords[first]; stop {
			continue
		}
		return FieldBag{FieldRecipient: strings.TrimSpace(m[1])}
	}
	return nil
}

// DueDateExtractor returns a due-date extractor anchored to today.
func DueDateExtractor(today time.Time) Extractor {
	return func(text string, existing FieldBag) FieldBag {
		if existing.Has(FieldDueDate) {
			return nil
		}
		if date, ok := findDueDate(text, existing, today); ok {
			return FieldBag{FieldDueDate: date}
		}
		return nil
	}
}

func findDueDate(text string, existing FieldBag, today time.Time) (string, bool) {
	for _, m := range isoDateRe.FindAllStringSubmatch(text, -1) {
		if _, err := time.Parse(time.DateOnly, m[1]); err == nil {
			return m[1], true
		}
	}

	if m := relativeDaysRe.FindStringSubmatch(text); m != nil {
		if n, ok := WordsToNumber(m[1]); ok && n > 0 && n == float64(int(n)) {
			days := int(n)
			if strings.HasPrefix(strings.ToLower(m[2]), "week") {
				days *= 7
			}
			return addDays(today, days), true
		}
	}

	if m := netTermsRe.FindStringSubmatch(text); m != nil {
		if n, err := strconv.Atoi(m[1]); err == nil && n > 0 {
			return addDays(today, n), true
		}
	}

	if m := namedDayRe.FindStringSubmatch(text); m != nil {
		switch strings.Join(strings.Fields(strings.ToLower(m[1])), " ") {
		case "today":
			return addDays(today, 0), true
		case "tomorrow":
			return addDays(today, 1), true
		case "next week":
			return addDays(today, 7), true
		}
	}

	return loneDueDays(text, existing, today)
}

// loneDueDays treats a bare 1-3 digit number as days from today. It is a
// best-effort guess: money-shaped numbers and the extracted amounts are skipped.
func loneDueDays(text string, existing FieldBag, today time.Time) (string, bool) {
	scan := blankQuoted(text)
	taken := takenAmounts(existing)

	for _, loc := range loneNumberRe.FindAllStringIndex(scan, -1) {
		start, end := loc[0], loc[1]
		if start > 0 && strings.ContainsRune("$.,-:#/", rune(scan[start-1])) {
			continue
		}
		if end < len(scan) {
			next := scan[end]
			if next == '-' || next == ':' || next == '/' || next == '%' {
				continue
			}
			if (next == '.' || next == ',') && end+1 < len(scan) && isDigit(scan[end+1]) {
				continue
			}
		}
		if amountSuffixRe.MatchString(strings.TrimLeft(scan[end:], " \t")) {
			continue
		}

		n, _ := strconv.Atoi(scan[start:end])
		if n < 1 || n > 365 {
			continue
		}
		if _, dup := taken[float64(n)]; dup {
			continue
		}
		return addDays(today, n), true
	}
	return "", false
}

func takenAmounts(existing FieldBag) map[float64]struct{} {
	taken := map[float64]struct{}{}
	for _, key := range []string{FieldAmount, FieldMinAmount, FieldMaxAmount} {
		if v, ok := existing.Number(key); ok {
			taken[v] = struct{}{}
		}
	}
	return taken
}

// blankQuoted replaces quoted spans with spaces so memo text is never read as
// a number of days. Offsets are preserved.
func blankQuoted(text string) string {
	return quotedRe.ReplaceAllStringFunc(text, func(s string) string {
		return strings.Repeat(" ", len(s))
	})
}

func addDays(today time.Time, days int) string {
	y, m, d := today.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC).AddDate(0, 0, days).Format(time.DateOnly)
}

// ExtractInvoiceStatus picks the highest-priority status mentioned in text.
func ExtractInvoiceStatus(text string, existing FieldBag) FieldBag {
	if existing.Has(FieldStatus) {
		return nil
	}
	found := matchSynonyms(invoiceStatusRe, invoiceStatusSynonyms, text)
	for _, s := range invoiceStatusPriority {
		if _, ok := found[string(s)]; ok {
			return FieldBag{FieldStatus: string(s)}
		}
	}
	return nil
}

// ExtractLinkStatus prefers INACTIVE when both states are mentioned.
func ExtractLinkStatus(text string, existing FieldBag) FieldBag {
	if existing.Has(FieldStatus) {
		return nil
	}
	found := matchSynonyms(linkStatusRe, linkStatusSynonyms, text)
	if _, ok := found[string(LinkInactive)]; ok {
		return FieldBag{FieldStatus: string(LinkInactive)}
	}
	if _, ok := found[string(LinkActive)]; ok {
		return FieldBag{FieldStatus: string(LinkActive)}
	}
	return nil
}

func matchSynonyms(re *regexp.Regexp, table []statusSynonym, text string) map[string]struct{} {
	found := map[string]struct{}{}
	for _, m := range re.FindAllString(text, -1) {
		phrase := strings.Join(strings.Fields(strings.ToLower(m)), " ")
		for _, s := range table {
			if s.phrase == phrase {
				found[s.status] = struct{}{}
				break
			}
		}
	}
	return found
}

// ExtractMinAmount reads list filters such as "over 100" or "at least $50".
func ExtractMinAmount(text string, existing FieldBag) FieldBag {
	if existing.Has(FieldMinAmount) {
		return nil
	}
	if m := minAmountRe.FindStringSubmatch(text); m != nil {
		if v, ok := ParseNumber(m[1]); ok {
			return FieldBag{FieldMinAmount: v}
		}
	}
	return nil
}

func ExtractInvoiceID(text string, existing FieldBag) FieldBag {
	if existing.Has(FieldInvoiceID) {
		return nil
	}
	if id := uuidRe.FindString(text); id != "" {
		return FieldBag{FieldInvoiceID: strings.ToLower(id)}
	}
	if m := prefixedIDRe.FindStringSubmatch(text); m != nil {
		return FieldBag{FieldInvoiceID: m[1]}
	}
	if m := numberedIDRe.FindStringSubmatch(text); m != nil {
		return FieldBag{FieldInvoiceID: m[1]}
	}
	return nil
}

func extractorsFor(action ActionKind, today time.Time) []Extractor {
	switch action {
	case ActionCreateInvoice:
		return []Extractor{ExtractEmail, ExtractRecipient, ExtractAmount, ExtractCurrency, ExtractMemo, DueDateExtractor(today)}
	case ActionSendInvoice:
		return []Extractor{ExtractInvoiceID, ExtractEmail, ExtractRecipient}
	case ActionUpdateInvoice:
		return []Extractor{ExtractInvoiceID, ExtractAmount, ExtractCurrency, ExtractMemo, DueDateExtractor(today)}
	case ActionCreatePaymentLink:
		return []Extractor{ExtractRange, ExtractAmount, ExtractCurrency, ExtractMemo, ExtractLinkType}
	case ActionListInvoices:
		return []Extractor{ExtractInvoiceStatus, ExtractMinAmount, ExtractCurrency}
	case ActionListPaymentLinks:
		return []Extractor{ExtractLinkStatus, ExtractMinAmount, ExtractCurrency}
	default:
		return nil
	}
}

// ExtractHeuristic runs the rule-based extractors relevant to action. Mutating
// actions are also normalized; list actions only carry their filters.
func ExtractHeuristic(action ActionKind, text string, today time.Time) FieldBag {
	bag := FieldBag{}
	for _, ex := range extractorsFor(action, today) {
		bag.merge(ex(text, bag))
	}
	if action.Mutating() {
		bag = Normalize(text, bag, today)
	}
	return Sanitize(bag)
}

func isDigit(b byte) bool {
	return b >= '0' && b <= '9'
}
