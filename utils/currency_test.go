package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseCurrency(t *testing.T) {
	assert.InDelta(t, 1234567.89, ParseCurrency("1.234.567,89"), 1e-6)
	assert.Equal(t, 120000000.0, ParseCurrency("120.000.000"))
	assert.Equal(t, 500000.0, ParseCurrency("500.000 đồng"))
	assert.InDelta(t, 1234567.89, ParseCurrency("1.234.567,89 VND"), 1e-6)
	assert.Equal(t, 42.0, ParseCurrency("  42  "))
}

func TestParseCurrencySoftFail(t *testing.T) {
	assert.Equal(t, 0.0, ParseCurrency(""))
	assert.Equal(t, 0.0, ParseCurrency("abc"))
	assert.Equal(t, 0.0, ParseCurrency("   "))
	assert.Equal(t, 0.0, ParseCurrency(".,."))
}

func TestNormalizeCurrencyReportsFailure(t *testing.T) {
	v, err := NormalizeCurrency("abc")
	assert.Error(t, err)
	assert.Equal(t, 0.0, v)

	v, err = NormalizeCurrency("80.000.000")
	assert.NoError(t, err)
	assert.Equal(t, 80000000.0, v)
}

func TestParseRate(t *testing.T) {
	assert.InDelta(t, 7.5, ParseRate("7,5"), 1e-9)
	// Rates keep '.' as a decimal point, unlike amounts.
	assert.InDelta(t, 7.5, ParseRate("7.5"), 1e-9)
	assert.Equal(t, 12.0, ParseRate("12"))
	assert.Equal(t, 0.0, ParseRate(""))
	assert.Equal(t, 0.0, ParseRate("n/a"))
}
