package dto

type CreatePaymentLinkRequest struct {
	Amount    string `json:"amount,omitempty"`
	Currency  string `json:"currency,omitempty"`
	Memo      string `json:"memo,omitempty"`
	LinkType  string `json:"linkType,omitempty"`
	MinAmount string `json:"minAmount,omitempty"`
	MaxAmount string `json:"maxAmount,omitempty"`
}

type UpdatePaymentLinkStatusRequest struct {
	Status string `json:"status"`
}

type ListPaymentLinksRequest struct {
	Status    string `json:"status,omitempty" query:"status"`
	MinAmount string `json:"minAmount,omitempty" query:"minAmount"`
	Currency  string `json:"currency,omitempty" query:"currency"`
	Limit     uint64 `json:"limit,omitempty" query:"limit"`
	Offset    uint64 `json:"offset,omitempty" query:"offset"`
}

type PaymentLinkResponse struct {
	ID        string `json:"id"`
	Title     string `json:"title,omitempty"`
	LinkType  string `json:"linkType"`
	Amount    string `json:"amount,omitempty"`
	MinAmount string `json:"minAmount,omitempty"`
	MaxAmount string `json:"maxAmount,omitempty"`
	Currency  string `json:"currency"`
	Status    string `json:"status"`
	URL       string `json:"url,omitempty"`
	CreatedAt string `json:"createdAt"`
}

type PaymentLinkListResponse struct {
	PaymentLinks []PaymentLinkResponse `json:"paymentLinks"`
	Count        int                   `json:"count"`
	Partial      bool                  `json:"partial,omitempty"`
}
