package models

import (
	"time"

	"github.com/google/uuid"
)

type LinkType string

const (
	LinkTypePurchase LinkType = "PURCHASE"
	LinkTypeDonation LinkType = "DONATION"
)

type LinkStatus string

const (
	LinkStatusActive   LinkStatus = "ACTIVE"
	LinkStatusInactive LinkStatus = "INACTIVE"
)

func (s LinkStatus) Valid() bool {
	return s == LinkStatusActive || s == LinkStatusInactive
}

// PaymentLink is a shareable checkout URL. Purchase links carry a fixed
// amount, donation links a min/max range.
type PaymentLink struct {
	ID             uuid.UUID  `db:"id"`
	Title          string     `db:"title"`
	LinkType       LinkType   `db:"link_type"`
	AmountMinor    *int64     `db:"amount_minor"`
	MinAmountMinor *int64     `db:"min_amount_minor"`
	MaxAmountMinor *int64     `db:"max_amount_minor"`
	Currency       string     `db:"currency"`
	Status         LinkStatus `db:"status"`
	URL            string     `db:"url"`
	CreatedAt      time.Time  `db:"created_at"`
	UpdatedAt      time.Time  `db:"updated_at"`
}

type PaymentLinkFilter struct {
	Status         LinkStatus
	Currency       string
	MinAmountMinor int64
	Limit          uint64
	Offset         uint64
}

type PaymentLinkSummary struct {
	ID        uuid.UUID  `db:"id"`
	LinkType  LinkType   `db:"link_type"`
	Currency  string     `db:"currency"`
	Status    LinkStatus `db:"status"`
	CreatedAt time.Time  `db:"created_at"`
}
