package dto

// CreateInvoiceRequest mirrors the create_invoice tool arguments.
type CreateInvoiceRequest struct {
	Amount       string `json:"amount"`
	Currency     string `json:"currency,omitempty"`
	Email        string `json:"email,omitempty"`
	CustomerName string `json:"customerName,omitempty"`
	DueDate      string `json:"dueDate,omitempty"`
	Memo         string `json:"memo,omitempty"`
}

// UpdateInvoiceRequest leaves empty fields unchanged.
type UpdateInvoiceRequest struct {
	Amount       string `json:"amount,omitempty"`
	Currency     string `json:"currency,omitempty"`
	Email        string `json:"email,omitempty"`
	CustomerName string `json:"customerName,omitempty"`
	DueDate      string `json:"dueDate,omitempty"`
	Memo         string `json:"memo,omitempty"`
	Status       string `json:"status,omitempty"`
}

type SendInvoiceRequest struct {
	Email string `json:"email,omitempty"`
}

type ListInvoicesRequest struct {
	Status    string `json:"status,omitempty" query:"status"`
	MinAmount string `json:"minAmount,omitempty" query:"minAmount"`
	Currency  string `json:"currency,omitempty" query:"currency"`
	Limit     uint64 `json:"limit,omitempty" query:"limit"`
	Offset    uint64 `json:"offset,omitempty" query:"offset"`
}

type InvoiceResponse struct {
	ID            string `json:"id"`
	CustomerName  string `json:"customerName,omitempty"`
	CustomerEmail string `json:"customerEmail,omitempty"`
	Amount        string `json:"amount"`
	Currency      string `json:"currency"`
	Memo          string `json:"memo,omitempty"`
	DueDate       string `json:"dueDate,omitempty"`
	Status        string `json:"status"`
	SentTo        string `json:"sentTo,omitempty"`
	SentAt        string `json:"sentAt,omitempty"`
	CreatedAt     string `json:"createdAt"`
	UpdatedAt     string `json:"updatedAt,omitempty"`
}

// InvoiceListResponse carries enriched rows. Partial is set when some
// rows could only be returned in summary form.
type InvoiceListResponse struct {
	Invoices []InvoiceResponse `json:"invoices"`
	Count    int               `json:"count"`
	Partial  bool              `json:"partial,omitempty"`
}
