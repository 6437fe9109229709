// Package numfmt parses user-typed numbers and formats amounts for display.
package numfmt

import (
	"math"
	"regexp"
	"strconv"
	"strings"
)

// leadingNumber matches the longest numeric prefix a float parser would accept.
var leadingNumber = regexp.MustCompile(`^[+-]?(\d+\.?\d*|\.\d+)([eE][+-]?\d+)?`)

var glyphs = strings.NewReplacer("$", "", "€", "")

// ParseLocaleNumber normalizes a locale-formatted string to a float.
// It never fails: anything it cannot read becomes 0.
//
// A comma with no dot is read as a decimal separator ("99,95" is 99.95).
// Otherwise commas are thousands separators ("$10,000.50" is 10000.5).
// This makes "1,234" read as 1.234.
func ParseLocaleNumber(input string) float64 {
	cleaned := glyphs.Replace(strings.Join(strings.Fields(input), ""))
	if cleaned == "" {
		return 0
	}

	if strings.Contains(cleaned, ",") && !strings.Contains(cleaned, ".") {
		cleaned = strings.Replace(cleaned, ",", ".", 1)
	} else {
		cleaned = strings.ReplaceAll(cleaned, ",", "")
	}

	prefix := leadingNumber.FindString(cleaned)
	if prefix == "" {
		return 0
	}
	v, err := strconv.ParseFloat(prefix, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}

// ParseValue accepts strings, numbers and nil.
func ParseValue(input any) float64 {
	switch v := input.(type) {
	case string:
		return ParseLocaleNumber(v)
	case float64:
		return finite(v)
	case float32:
		return finite(float64(v))
	case int:
		return float64(v)
	case int64:
		return float64(v)
	default:
		return 0
	}
}

func finite(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}
