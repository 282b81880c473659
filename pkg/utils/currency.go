package utils

import (
	"fmt"
	"strings"
)

type Currency struct {
	Code          string
	Symbol        string
	Name          string
	DecimalPlaces int
}

// SupportedCurrencies mirrors the platform's currencies table.
var SupportedCurrencies = map[string]Currency{
	"EUR": {Code: "EUR", Symbol: "€", Name: "Euro", DecimalPlaces: 2},
	"CHF": {Code: "CHF", Symbol: "CHF", Name: "Swiss Franc", DecimalPlaces: 2},
	"TRY": {Code: "TRY", Symbol: "₺", Name: "Turkish Lira", DecimalPlaces: 2},
	"IDR": {Code: "IDR", Symbol: "Rp", Name: "Indonesian Rupiah", DecimalPlaces: 0},
}

// IsSupportedCurrency reports whether the ISO 4217 code is one the platform
// accepts for vendor profiles.
func IsSupportedCurrency(code string) bool {
	_, ok := SupportedCurrencies[strings.ToUpper(code)]
	return ok
}

// FormatCurrency renders an amount with the currency's symbol placement and
// decimal places. Unknown codes fall back to EUR.
func FormatCurrency(amount float64, currencyCode string) string {
	currency, ok := SupportedCurrencies[strings.ToUpper(currencyCode)]
	if !ok {
		currency = SupportedCurrencies["EUR"]
	}

	formatted := formatAmount(amount, currency.DecimalPlaces)

	switch currency.Code {
	case "CHF", "IDR":
		return fmt.Sprintf("%s %s", currency.Symbol, formatted)
	case "TRY":
		return fmt.Sprintf("%s %s", formatted, currency.Symbol)
	default:
		return fmt.Sprintf("%s%s", currency.Symbol, formatted)
	}
}

// formatAmount groups the integer part with commas, e.g. 1234567.5 → 1,234,567.50
func formatAmount(amount float64, decimals int) string {
	s := fmt.Sprintf("%.*f", decimals, amount)

	intPart := s
	fracPart := ""
	if dot := strings.IndexByte(s, '.'); dot >= 0 {
		intPart = s[:dot]
		fracPart = s[dot:]
	}

	negative := false
	if strings.HasPrefix(intPart, "-") {
		negative = true
		intPart = intPart[1:]
	}

	var b strings.Builder
	lead := len(intPart) % 3
	if lead > 0 {
		b.WriteString(intPart[:lead])
	}
	for i := lead; i < len(intPart); i += 3 {
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(intPart[i : i+3])
	}

	out := b.String() + fracPart
	if negative {
		out = "-" + out
	}
	return out
}
