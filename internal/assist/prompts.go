package assist

import (
	"fmt"
	"strings"
	"time"
)

const createInvoiceTemplate = `Extract invoice details from the request below.
Return ONLY a JSON object with exactly these keys:
{"amount": string|null, "currency": string|null, "email": string|null, "customerName": string|null, "dueDate": string|null, "dueDays": number|null, "memo": string|null}
Use null for anything the request does not state. Amounts are plain decimal strings without symbols. Currency is a 3-letter ISO code. dueDate is YYYY-MM-DD.
Do not wrap the answer in markdown or add commentary.
Example: {"amount": "250.00", "currency": "USD", "email": "jane.doe@example.com", "customerName": "Jane Doe", "dueDate": null, "dueDays": 30, "memo": "Website redesign"}

Request: %s`

const sendInvoiceTemplate = `Extract which invoice to send and where to send it.
Return ONLY a JSON object with exactly these keys:
{"invoiceId": string|null, "email": string|null}
Use null for anything the request does not state.
Do not wrap the answer in markdown or add commentary.
Example: {"invoiceId": "3f1c2a4e-9b7d-4c1e-8f2a-6d5b4c3a2e1f", "email": "billing@acme.io"}

Request: %s`

const updateInvoiceTemplate = `Today is %s. Extract the invoice update described below.
Return ONLY a JSON object with exactly these keys:
{"invoiceId": string|null, "amount": string|null, "currency": string|null, "dueDate": string|null, "memo": string|null}
Use null for every field the request does not change. Resolve relative dates against today and write them as YYYY-MM-DD.
Do not wrap the answer in markdown or add commentary.
Example: {"invoiceId": "3f1c2a4e-9b7d-4c1e-8f2a-6d5b4c3a2e1f", "amount": "300.00", "currency": null, "dueDate": "2025-02-01", "memo": null}

Request: %s`

const createPaymentLinkTemplate = `Extract payment link details from the request below.
Return ONLY a JSON object with exactly these keys:
{"amount": string|null, "currency": string|null, "memo": string|null, "linkType": "PURCHASE"|"DONATION"|null, "minAmount": string|null, "maxAmount": string|null}
A donation link has minAmount and maxAmount instead of amount. Use null for anything the request does not state.
Do not wrap the answer in markdown or add commentary.
Example: {"amount": "25.00", "currency": "USD", "memo": "Sticker Pack", "linkType": "PURCHASE", "minAmount": null, "maxAmount": null}

Request: %s`

const classifyTemplate = `Classify the payment request below into exactly one action and extract its fields.
Allowed actions:
%s
Return ONLY a JSON object of the form {"action": string, "extracted": object}.
"extracted" may contain: amount, currency, email, customerName, dueDate, dueDays, memo, invoiceId, status, minAmount, maxAmount, linkType. Use null for anything not stated.
Invoice status is one of DRAFT, CREATED, SENT, PARTIAL, PAID, CANCELED. Payment link status is ACTIVE or INACTIVE.
Do not wrap the answer in markdown or add commentary.
Example: {"action": "list_invoices", "extracted": {"status": "PAID", "minAmount": "100", "currency": null}}

Request: %s`

var actionDescriptions = map[ActionKind]string{
	ActionCreateInvoice:     "create a new invoice for a customer",
	ActionListInvoices:      "list or search existing invoices",
	ActionSendInvoice:       "send an existing invoice to a customer",
	ActionUpdateInvoice:     "change an existing invoice",
	ActionCreatePaymentLink: "create a purchase or donation payment link",
	ActionListPaymentLinks:  "list or search payment links",
}

// PromptFor returns the extraction prompt for a mutating action.
func PromptFor(action ActionKind, input string, today time.Time) (string, bool) {
	switch action {
	case ActionCreateInvoice:
		return fmt.Sprintf(createInvoiceTemplate, input), true
	case ActionSendInvoice:
		return fmt.Sprintf(sendInvoiceTemplate, input), true
	case ActionUpdateInvoice:
		return fmt.Sprintf(updateInvoiceTemplate, addDays(today, 0), input), true
	case ActionCreatePaymentLink:
		return fmt.Sprintf(createPaymentLinkTemplate, input), true
	default:
		return "", false
	}
}

// ClassificationPrompt lists the six concrete actions for the auto router.
func ClassificationPrompt(input string) string {
	var b strings.Builder
	for _, a := range ConcreteActions {
		fmt.Fprintf(&b, "- %s: %s\n", a, actionDescriptions[a])
	}
	return fmt.Sprintf(classifyTemplate, strings.TrimRight(b.String(), "\n"), input)
}

// StripCodeFences removes a surrounding ``` block, with or without a language tag.
func StripCodeFences(s string) string {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimPrefix(s, "```")
	if nl := strings.IndexByte(s, '\n'); nl >= 0 {
		tag := strings.TrimSpace(s[:nl])
		if tag == "" || !strings.ContainsAny(tag, "{[") {
			s = s[nl+1:]
		}
	}
	s = strings.TrimSpace(s)
	s = strings.TrimSuffix(s, "```")
	return strings.TrimSpace(s)
}
