package models

import (
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

var ErrInvalidAmount = errors.New("amount must be a positive number")

var hundred = decimal.NewFromInt(100)

// ParseAmount reads a decimal amount such as "1,250.5" into minor units.
func ParseAmount(s string) (int64, error) {
	s = strings.ReplaceAll(strings.TrimSpace(s), ",", "")
	if s == "" {
		return 0, ErrInvalidAmount
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidAmount, s)
	}
	if !d.IsPositive() {
		return 0, ErrInvalidAmount
	}
	return d.Mul(hundred).Round(0).IntPart(), nil
}

// FormatMinor renders minor units with exactly two decimals.
func FormatMinor(minor int64) string {
	return decimal.New(minor, -2).StringFixed(2)
}

func FormatMinorPtr(minor *int64) string {
	if minor == nil {
		return ""
	}
	return FormatMinor(*minor)
}
