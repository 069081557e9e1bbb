package format

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCurrency(t *testing.T) {
	tests := []struct {
		name     string
		amount   float64
		expected string
	}{
		{"zero", 0, "$0.00"},
		{"small", 5.5, "$5.50"},
		{"thousands separator", 1234.5, "$1,234.50"},
		{"millions", 1234567.89, "$1,234,567.89"},
		{"negative", -20, "-$20.00"},
		{"rounds half up", 0.005, "$0.01"},
		{"rounds down", 0.004, "$0.00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Currency(tt.amount))
		})
	}
}

func TestSignedCurrency(t *testing.T) {
	assert.Equal(t, "+$1,234.50", SignedCurrency(1234.5))
	assert.Equal(t, "-$20.00", SignedCurrency(-20))
	assert.Equal(t, "$0.00", SignedCurrency(0))
}

func TestPercent(t *testing.T) {
	assert.Equal(t, "37.5%", Percent(37.5))
	assert.Equal(t, "0.0%", Percent(0))
	assert.Equal(t, "100.0%", Percent(100))
	assert.Equal(t, "12.3%", Percent(12.34))
}

func TestSignedPercent(t *testing.T) {
	assert.Equal(t, "+4.20%", SignedPercent(4.2))
	assert.Equal(t, "-1.23%", SignedPercent(-1.234))
	assert.Equal(t, "+0.00%", SignedPercent(0))
}
