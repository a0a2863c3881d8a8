package assist

import "strings"

// ActionKind is the classified intent of a payment request.
type ActionKind string

const (
	ActionCreateInvoice     ActionKind = "create_invoice"
	ActionListInvoices      ActionKind = "list_invoices"
	ActionSendInvoice       ActionKind = "send_invoice"
	ActionUpdateInvoice     ActionKind = "update_invoice"
	ActionCreatePaymentLink ActionKind = "create_payment_link"
	ActionListPaymentLinks  ActionKind = "list_payment_links"
	ActionAuto              ActionKind = "auto"
	ActionUnknown           ActionKind = "unknown"
)

// ConcreteActions lists every routable action in the order the classifier presents them.
var ConcreteActions = []ActionKind{
	ActionCreateInvoice,
	ActionListInvoices,
	ActionSendInvoice,
	ActionUpdateInvoice,
	ActionCreatePaymentLink,
	ActionListPaymentLinks,
}

// ParseActionKind accepts hyphenated and underscored spellings in any case.
// An empty hint means Auto.
func ParseActionKind(s string) ActionKind {
	norm := strings.ToLower(strings.TrimSpace(s))
	norm = strings.ReplaceAll(norm, "-", "_")
	if norm == "" {
		return ActionAuto
	}

	kind := ActionKind(norm)
	if kind == ActionAuto || kind.Concrete() {
		return kind
	}
	return ActionUnknown
}

func (a ActionKind) String() string {
	return string(a)
}

// Concrete reports whether a is one of the six routable actions.
func (a ActionKind) Concrete() bool {
	for _, c := range ConcreteActions {
		if a == c {
			return true
		}
	}
	return false
}

// Mutating reports whether executing a has an external side effect.
func (a ActionKind) Mutating() bool {
	switch a {
	case ActionCreateInvoice, ActionSendInvoice, ActionUpdateInvoice, ActionCreatePaymentLink:
		return true
	default:
		return false
	}
}

// IsList reports whether a is a read-only listing action.
func (a ActionKind) IsList() bool {
	return a == ActionListInvoices || a == ActionListPaymentLinks
}
