package numfmt

import (
	"fmt"
	"math"
	"strings"

	"github.com/shopspring/decimal"
)

var currencySymbols = map[string]string{
	"USD": "$",
	"EUR": "€",
}

// Currency formats an amount as whole currency units with thousands separators.
// Codes without a known symbol render as "GBP 1,000".
func Currency(amount float64, code string) string {
	if code == "" {
		code = "USD"
	}
	code = strings.ToUpper(code)

	rounded := decimal.NewFromFloat(finite(amount)).Round(0)
	sign := ""
	if rounded.IsNegative() {
		sign = "-"
		rounded = rounded.Abs()
	}
	digits := groupThousands(rounded.StringFixed(0))

	if symbol, ok := currencySymbols[code]; ok {
		return sign + symbol + digits
	}
	return fmt.Sprintf("%s %s%s", code, sign, digits)
}

// Percentage formats value with a fixed number of decimals and a % suffix.
func Percentage(value float64, decimals int) string {
	return fmt.Sprintf("%.*f%%", decimals, value)
}

// Minutes rounds to a whole number of minutes.
func Minutes(minutes float64) string {
	return decimal.NewFromFloat(finite(minutes)).Round(0).StringFixed(0)
}

// LargeNumber abbreviates thousands and millions ("1.5M", "2.5K").
func LargeNumber(value float64) string {
	switch {
	case value >= 1_000_000:
		return fmt.Sprintf("%.1fM", value/1_000_000)
	case value >= 1_000:
		return fmt.Sprintf("%.1fK", value/1_000)
	}
	if value == math.Trunc(value) {
		return groupThousands(fmt.Sprintf("%.0f", value))
	}
	return fmt.Sprintf("%g", value)
}

func groupThousands(digits string) string {
	if len(digits) <= 3 {
		return digits
	}
	var b strings.Builder
	lead := len(digits) % 3
	if lead > 0 {
		b.WriteString(digits[:lead])
	}
	for i := lead; i < len(digits); i += 3 {
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(digits[i : i+3])
	}
	return b.String()
}
