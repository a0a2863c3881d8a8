package models

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAmount(t *testing.T) {
	tests := []struct {
		in   string
		want int64
	}{
		{"250", 25000},
		{"1,250.5", 125050},
		{" 19.999 ", 2000},
		{"0.01", 1},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseAmount(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseAmount_Invalid(t *testing.T) {
	for _, in := range []string{"", "abc", "0", "-5"} {
		_, err := ParseAmount(in)
		assert.True(t, errors.Is(err, ErrInvalidAmount), in)
	}
}

func TestFormatMinor(t *testing.T) {
	assert.Equal(t, "250.00", FormatMinor(25000))
	assert.Equal(t, "0.05", FormatMinor(5))
	assert.Equal(t, "", FormatMinorPtr(nil))
	v := int64(1999)
	assert.Equal(t, "19.99", FormatMinorPtr(&v))
}
