package numfmt

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseLocaleNumber(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  float64
	}{
		{"european decimal", "99,95", 99.95},
		{"dollar with thousands", "$10,000.50", 10000.50},
		{"empty", "", 0},
		{"plain", "1000000", 1000000},
		{"euro glyph", "€ 250", 250},
		{"spaces inside", "1 000", 1000},
		{"ambiguous comma is decimal", "1,234", 1.234},
		{"two commas no dot", "1,234,567", 1.234},
		{"non numeric", "abc", 0},
		{"trailing garbage", "12abc", 12},
		{"negative", "-5.5", -5.5},
		{"leading dot", ".5", 0.5},
		{"exponent", "1e3", 1000},
		{"percent sign ignored after prefix", "99.9%", 99.9},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, ParseLocaleNumber(tt.input), 1e-9)
		})
	}
}

func TestParseValue(t *testing.T) {
	assert.Equal(t, 42.0, ParseValue(42.0))
	assert.Equal(t, 7.0, ParseValue(7))
	assert.Equal(t, 99.95, ParseValue("99,95"))
	assert.Equal(t, 0.0, ParseValue(nil))
	assert.Equal(t, 0.0, ParseValue(math.NaN()))
	assert.Equal(t, 0.0, ParseValue(true))
}

func TestCurrency(t *testing.T) {
	assert.Equal(t, "$1,000,000", Currency(1_000_000, "USD"))
	assert.Equal(t, "$100,000", Currency(99_999.5, "USD"))
	assert.Equal(t, "€250,000", Currency(250_000, "eur"))
	assert.Equal(t, "$0", Currency(0, ""))
	assert.Equal(t, "$999", Currency(999.4, "USD"))
	assert.Equal(t, "-$1,500", Currency(-1500, "USD"))
	assert.Equal(t, "GBP 1,000", Currency(1000, "GBP"))
}

func TestPercentageAndMinutes(t *testing.T) {
	assert.Equal(t, "99.72%", Percentage(99.7222, 2))
	assert.Equal(t, "10%", Percentage(10, 0))
	assert.Equal(t, "22", Minutes(21.6))
	assert.Equal(t, "0", Minutes(0))
}

func TestLargeNumber(t *testing.T) {
	assert.Equal(t, "1.5M", LargeNumber(1_500_000))
	assert.Equal(t, "2.5K", LargeNumber(2_500))
	assert.Equal(t, "999", LargeNumber(999))
	assert.Equal(t, "12.5", LargeNumber(12.5))
}
