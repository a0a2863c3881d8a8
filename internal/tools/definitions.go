package tools

// Tool describes one callable operation and the JSON Schema of its arguments.
type Tool struct {
	Name        string         `json:"name"`
	Description string         `json:"description"`
	InputSchema map[string]any `json:"inputSchema"`
}

const (
	ToolCreateInvoice           = "create_invoice"
	ToolListInvoices            = "list_invoices"
	ToolGetInvoice              = "get_invoice"
	ToolSendInvoice             = "send_invoice"
	ToolUpdateInvoice           = "update_invoice"
	ToolCreatePaymentLink       = "create_payment_link"
	ToolListPaymentLinks        = "list_payment_links"
	ToolGetPaymentLink          = "get_payment_link"
	ToolUpdatePaymentLinkStatus = "update_payment_link_status"
	ToolExtractFields           = "extract_fields"
)

type definition struct {
	name        string
	description string
	schema      string
}

var definitions = []definition{
	{
		name:        ToolCreateInvoice,
		description: "Create an invoice. Currency defaults to USD and the due date to 30 days from today.",
		schema: `{
  "type": "object",
  "required": ["amount"],
  "properties": {
    "amount":       {"type": ["string", "number"], "description": "Positive amount, e.g. \"250.00\""},
    "currency":     {"type": "string", "pattern": "^[A-Za-z]{3}$"},
    "email":        {"type": "string"},
    "customerName": {"type": "string"},
    "dueDate":      {"type": "string", "pattern": "^\\d{4}-\\d{2}-\\d{2}$"},
    "memo":         {"type": "string"}
  },
  "additionalProperties": false
}`,
	},
	{
		name:        ToolListInvoices,
		description: "List invoices, optionally filtered by status, minimum amount and currency.",
		schema: `{
  "type": "object",
  "properties": {
    "status":    {"type": "string", "enum": ["DRAFT", "CREATED", "SENT", "PARTIAL", "PAID", "CANCELED"]},
    "minAmount": {"type": ["string", "number"]},
    "currency":  {"type": "string", "pattern": "^[A-Za-z]{3}$"},
    "limit":     {"type": "integer", "minimum": 1, "maximum": 500},
    "offset":    {"type": "integer", "minimum": 0}
  },
  "additionalProperties": false
}`,
	},
	{
		name:        ToolGetInvoice,
		description: "Fetch one invoice by id.",
		schema: `{
  "type": "object",
  "required": ["invoiceId"],
  "properties": {
    "invoiceId": {"type": "string", "minLength": 1}
  },
  "additionalProperties": false
}`,
	},
	{
		name:        ToolSendInvoice,
		description: "Send an invoice by email. Falls back to the customer email stored on the invoice.",
		schema: `{
  "type": "object",
  "required": ["invoiceId"],
  "properties": {
    "invoiceId": {"type": "string", "minLength": 1},
    "email":     {"type": "string"}
  },
  "additionalProperties": false
}`,
	},
	{
		name:        ToolUpdateInvoice,
		description: "Change selected fields of an invoice. Omitted fields stay as they are.",
		schema: `{
  "type": "object",
  "required": ["invoiceId"],
  "properties": {
    "invoiceId":    {"type": "string", "minLength": 1},
    "amount":       {"type": ["string", "number"]},
    "currency":     {"type": "string", "pattern": "^[A-Za-z]{3}$"},
    "email":        {"type": "string"},
    "customerName": {"type": "string"},
    "dueDate":      {"type": "string", "pattern": "^\\d{4}-\\d{2}-\\d{2}$"},
    "memo":         {"type": "string"},
    "status":       {"type": "string"}
  },
  "additionalProperties": false
}`,
	},
	{
		name:        ToolCreatePaymentLink,
		description: "Create a payment link. PURCHASE links need amount; DONATION links need minAmount and maxAmount.",
		schema: `{
  "type": "object",
  "properties": {
    "amount":    {"type": ["string", "number"]},
    "currency":  {"type": "string", "pattern": "^[A-Za-z]{3}$"},
    "memo":      {"type": "string"},
    "linkType":  {"type": "string", "enum": ["PURCHASE", "DONATION", "purchase", "donation"]},
    "minAmount": {"type": ["string", "number"]},
    "maxAmount": {"type": ["string", "number"]}
  },
  "additionalProperties": false
}`,
	},
	{
		name:        ToolListPaymentLinks,
		description: "List payment links, optionally filtered by status, minimum amount and currency.",
		schema: `{
  "type": "object",
  "properties": {
    "status":    {"type": "string", "enum": ["ACTIVE", "INACTIVE"]},
    "minAmount": {"type": ["string", "number"]},
    "currency":  {"type": "string", "pattern": "^[A-Za-z]{3}$"},
    "limit":     {"type": "integer", "minimum": 1, "maximum": 500},
    "offset":    {"type": "integer", "minimum": 0}
  },
  "additionalProperties": false
}`,
	},
	{
		name:        ToolGetPaymentLink,
		description: "Fetch one payment link by id.",
		schema: `{
  "type": "object",
  "required": ["linkId"],
  "properties": {
    "linkId": {"type": "string", "minLength": 1}
  },
  "additionalProperties": false
}`,
	},
	{
		name:        ToolUpdatePaymentLinkStatus,
		description: "Activate or deactivate a payment link.",
		schema: `{
  "type": "object",
  "required": ["linkId", "status"],
  "properties": {
    "linkId": {"type": "string", "minLength": 1},
    "status": {"type": "string", "enum": ["ACTIVE", "INACTIVE", "active", "inactive"]}
  },
  "additionalProperties": false
}`,
	},
	{
		name:        ToolExtractFields,
		description: "Read structured invoice or payment-link fields out of free text without executing anything.",
		schema: `{
  "type": "object",
  "required": ["input"],
  "properties": {
    "input":  {"type": "string"},
    "action": {"type": "string"}
  },
  "additionalProperties": false
}`,
	},
}
