package models

import (
	"time"

	"github.com/google/uuid"
)

type InvoiceStatus string

const (
	InvoiceStatusDraft    InvoiceStatus = "DRAFT"
	InvoiceStatusCreated  InvoiceStatus = "CREATED"
	InvoiceStatusSent     InvoiceStatus = "SENT"
	InvoiceStatusPartial  InvoiceStatus = "PARTIAL"
	InvoiceStatusPaid     InvoiceStatus = "PAID"
	InvoiceStatusCanceled InvoiceStatus = "CANCELED"
)

func (s InvoiceStatus) Valid() bool {
	switch s {
	case InvoiceStatusDraft, InvoiceStatusCreated, InvoiceStatusSent,
		InvoiceStatusPartial, InvoiceStatusPaid, InvoiceStatusCanceled:
		return true
	}
	return false
}

type Invoice struct {
	ID            uuid.UUID     `db:"id"`
	CustomerName  string        `db:"customer_name"`
	CustomerEmail string        `db:"customer_email"`
	AmountMinor   int64         `db:"amount_minor"`
	Currency      string        `db:"currency"`
	Memo          string        `db:"memo"`
	DueDate       *time.Time    `db:"due_date"`
	Status        InvoiceStatus `db:"status"`
	SentTo        string        `db:"sent_to"`
	SentAt        *time.Time    `db:"sent_at"`
	CreatedAt     time.Time     `db:"created_at"`
	UpdatedAt     time.Time     `db:"updated_at"`
}

// InvoiceFilter narrows invoice listings. Zero values match everything.
type InvoiceFilter struct {
	Status         InvoiceStatus
	Currency       string
	MinAmountMinor int64
	Limit          uint64
	Offset         uint64
}

// InvoicePatch carries a partial update. Nil fields are left unchanged.
type InvoicePatch struct {
	CustomerName  *string
	CustomerEmail *string
	AmountMinor   *int64
	Currency      *string
	Memo          *string
	DueDate       *time.Time
	Status        *InvoiceStatus
}

func (p InvoicePatch) Empty() bool {
	return p.CustomerName == nil && p.CustomerEmail == nil && p.AmountMinor == nil &&
		p.Currency == nil && p.Memo == nil && p.DueDate == nil && p.Status == nil
}

// InvoiceSummary is the listing row; details are loaded per item.
type InvoiceSummary struct {
	ID          uuid.UUID     `db:"id"`
	AmountMinor int64         `db:"amount_minor"`
	Currency    string        `db:"currency"`
	Status      InvoiceStatus `db:"status"`
	CreatedAt   time.Time     `db:"created_at"`
}
