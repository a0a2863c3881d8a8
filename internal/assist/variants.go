package assist

import (
	"fmt"
	"strings"
)

// Fields is the typed form of a field bag for one concrete action.
type Fields interface {
	Action() ActionKind
	// Args renders the fields as tool arguments, omitting empty values.
	Args() map[string]any
}

type CreateInvoiceFields struct {
	Amount       string
	Currency     string
	Email        string
	CustomerName string
	DueDate      string
	Memo         string
}

type ListInvoicesFields struct {
	Status    InvoiceStatus
	MinAmount string
	Currency  string
}

type SendInvoiceFields struct {
	InvoiceID string
	Email     string
}

// UpdateInvoiceFields leaves empty values unchanged.
type UpdateInvoiceFields struct {
	InvoiceID string
	Amount    string
	Currency  string
	DueDate   string
	Memo      string
}

type CreatePaymentLinkFields struct {
	Amount    string
	Currency  string
	Memo      string
	LinkType  LinkType
	MinAmount string
	MaxAmount string
}

type ListPaymentLinksFields struct {
	Status    LinkStatus
	MinAmount string
	Currency  string
}

func (CreateInvoiceFields) Action() ActionKind     { return ActionCreateInvoice }
func (ListInvoicesFields) Action() ActionKind      { return ActionListInvoices }
func (SendInvoiceFields) Action() ActionKind       { return ActionSendInvoice }
func (UpdateInvoiceFields) Action() ActionKind     { return ActionUpdateInvoice }
func (CreatePaymentLinkFields) Action() ActionKind { return ActionCreatePaymentLink }
func (ListPaymentLinksFields) Action() ActionKind  { return ActionListPaymentLinks }

func (f CreateInvoiceFields) Args() map[string]any {
	return compact(map[string]any{
		"amount":       f.Amount,
		"currency":     f.Currency,
		"email":        f.Email,
		"customerName": f.CustomerName,
		"dueDate":      f.DueDate,
		"memo":         f.Memo,
	})
}

func (f ListInvoicesFields) Args() map[string]any {
	return compact(map[string]any{
		"status":    string(f.Status),
		"minAmount": f.MinAmount,
		"currency":  f.Currency,
	})
}

func (f SendInvoiceFields) Args() map[string]any {
	return compact(map[string]any{
		"invoiceId": f.InvoiceID,
		"email":     f.Email,
	})
}

func (f UpdateInvoiceFields) Args() map[string]any {
	return compact(map[string]any{
		"invoiceId": f.InvoiceID,
		"amount":    f.Amount,
		"currency":  f.Currency,
		"dueDate":   f.DueDate,
		"memo":      f.Memo,
	})
}

func (f CreatePaymentLinkFields) Args() map[string]any {
	return compact(map[string]any{
		"amount":    f.Amount,
		"currency":  f.Currency,
		"memo":      f.Memo,
		"linkType":  string(f.LinkType),
		"minAmount": f.MinAmount,
		"maxAmount": f.MaxAmount,
	})
}

func (f ListPaymentLinksFields) Args() map[string]any {
	return compact(map[string]any{
		"status":    string(f.Status),
		"minAmount": f.MinAmount,
		"currency":  f.Currency,
	})
}

// Bind converts a generic bag into the typed fields of action.
func Bind(action ActionKind, bag FieldBag) (Fields, error) {
	switch action {
	case ActionCreateInvoice:
		return CreateInvoiceFields{
			Amount:       bag.String(FieldAmount),
			Currency:     upper(bag.String(FieldCurrency)),
			Email:        firstOf(bag, FieldEmail, FieldCustomerEmail),
			CustomerName: firstOf(bag, FieldCustomerName, FieldName),
			DueDate:      bag.String(FieldDueDate),
			Memo:         bag.String(FieldMemo),
		}, nil
	case ActionListInvoices:
		return ListInvoicesFields{
			Status:    InvoiceStatus(upper(bag.String(FieldStatus))),
			MinAmount: bag.String(FieldMinAmount),
			Currency:  upper(bag.String(FieldCurrency)),
		}, nil
	case ActionSendInvoice:
		return SendInvoiceFields{
			InvoiceID: bag.String(FieldInvoiceID),
			Email:     firstOf(bag, FieldEmail, FieldCustomerEmail),
		}, nil
	case ActionUpdateInvoice:
		return UpdateInvoiceFields{
			InvoiceID: bag.String(FieldInvoiceID),
			Amount:    bag.String(FieldAmount),
			Currency:  upper(bag.String(FieldCurrency)),
			DueDate:   bag.String(FieldDueDate),
			Memo:      bag.String(FieldMemo),
		}, nil
	case ActionCreatePaymentLink:
		linkType := LinkType(upper(bag.String(FieldLinkType)))
		if linkType != LinkDonation {
			linkType = LinkPurchase
		}
		return CreatePaymentLinkFields{
			Amount:    bag.String(FieldAmount),
			Currency:  upper(bag.String(FieldCurrency)),
			Memo:      bag.String(FieldMemo),
			LinkType:  linkType,
			MinAmount: bag.String(FieldMinAmount),
			MaxAmount: bag.String(FieldMaxAmount),
		}, nil
	case ActionListPaymentLinks:
		return ListPaymentLinksFields{
			Status:    LinkStatus(upper(bag.String(FieldStatus))),
			MinAmount: bag.String(FieldMinAmount),
			Currency:  upper(bag.String(FieldCurrency)),
		}, nil
	case ActionAuto, ActionUnknown:
		return nil, &Error{Kind: KindUnsupportedAction, Message: fmt.Sprintf("cannot bind fields for %s", action)}
	default:
		return nil, &Error{Kind: KindUnsupportedAction, Message: "unsupported action: " + string(action)}
	}
}

func firstOf(bag FieldBag, keys ...string) string {
	for _, k := range keys {
		if v := bag.String(k); v != "" {
			return v
		}
	}
	return ""
}

func upper(s string) string {
	return strings.ToUpper(strings.TrimSpace(s))
}

func compact(args map[string]any) map[string]any {
	for k, v := range args {
		if s, ok := v.(string); ok && s == "" {
			delete(args, k)
		}
	}
	return args
}
