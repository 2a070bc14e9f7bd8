package utils

import (
	"fmt"
	"strconv"
	"strings"
)

// Vietnamese loan documents write amounts with '.' as the thousands
// separator and ',' as the decimal separator, usually followed by a unit
// ("đồng", "VND") that must not reach the parser.

// NormalizeCurrency parses a localized amount string. It strips thousands
// separators, translates the decimal comma, truncates at the first
// whitespace token and parses the residue. The returned value is 0 whenever
// an error is returned.
func NormalizeCurrency(raw string) (float64, error) {
	cleaned := strings.TrimSpace(raw)
	if cleaned == "" {
		return 0, fmt.Errorf("empty amount")
	}

	cleaned = strings.ReplaceAll(cleaned, ".", "")
	cleaned = strings.ReplaceAll(cleaned, ",", ".")
	if fields := strings.Fields(cleaned); len(fields) > 0 {
		cleaned = fields[0]
	}

	v, err := strconv.ParseFloat(cleaned, 64)
	if err != nil {
		return 0, fmt.Errorf("unparseable amount %q", raw)
	}
	return v, nil
}

// ParseCurrency is the soft-fail form of NormalizeCurrency: any input that
// cannot be parsed yields 0. Callers that need to tell a genuine zero from a
// defaulted one use NormalizeCurrency directly.
func ParseCurrency(raw string) float64 {
	v, err := NormalizeCurrency(raw)
	if err != nil {
		return 0
	}
	return v
}

// NormalizeRate parses an interest rate written with a decimal comma
// ("7,5" => 7.5). Rates never carry thousands separators, so a '.' is kept
// as a decimal point rather than stripped.
func NormalizeRate(raw string) (float64, error) {
	cleaned := strings.TrimSpace(strings.ReplaceAll(raw, ",", "."))
	if cleaned == "" {
		return 0, fmt.Errorf("empty rate")
	}
	v, err := strconv.ParseFloat(cleaned, 64)
	if err != nil {
		return 0, fmt.Errorf("unparseable rate %q", raw)
	}
	return v, nil
}

// ParseRate is the soft-fail form of NormalizeRate.
func ParseRate(raw string) float64 {
	v, err := NormalizeRate(raw)
	if err != nil {
		return 0
	}
	return v
}
