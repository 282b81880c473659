package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsSupportedCurrency(t *testing.T) {
	assert.True(t, IsSupportedCurrency("EUR"))
	assert.True(t, IsSupportedCurrency("chf"))
	assert.True(t, IsSupportedCurrency("TRY"))
	assert.True(t, IsSupportedCurrency("IDR"))
	assert.False(t, IsSupportedCurrency("USD"))
	assert.False(t, IsSupportedCurrency(""))
}

func TestFormatCurrency(t *testing.T) {
	// Symbol placement differs per currency.
	assert.Equal(t, "€1,234.50", FormatCurrency(1234.5, "EUR"))
	assert.Equal(t, "CHF 99.00", FormatCurrency(99, "CHF"))
	assert.Equal(t, "1,000.00 ₺", FormatCurrency(1000, "TRY"))

	// IDR has no decimal places.
	assert.Equal(t, "Rp 150,000", FormatCurrency(150000, "IDR"))

	// Unknown codes fall back to EUR.
	assert.Equal(t, "€10.00", FormatCurrency(10, "XXX"))
}

func TestFormatAmountGrouping(t *testing.T) {
	assert.Equal(t, "0.00", formatAmount(0, 2))
	assert.Equal(t, "123.00", formatAmount(123, 2))
	assert.Equal(t, "1,234,567.89", formatAmount(1234567.89, 2))
	assert.Equal(t, "-1,234.50", formatAmount(-1234.5, 2))
}
