package domain

import (
	"bytes"
	"strconv"

	"github.com/goccy/go-json"

	"techimpact/numfmt"
)

// Number is a form value that may arrive as a JSON number or as a
// locale-formatted string ("99,95", "$10,000"). Anything unreadable decodes to 0.
type Number float64

func (n *Number) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) == 0 || bytes.Equal(b, []byte("null")) {
		*n = 0
		return nil
	}
	if b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			*n = 0
			return nil
		}
		*n = Number(numfmt.ParseLocaleNumber(s))
		return nil
	}
	v, err := strconv.ParseFloat(string(b), 64)
	if err != nil {
		*n = 0
		return nil
	}
	*n = Number(numfmt.ParseValue(v))
	return nil
}

func (n Number) Float() float64 { return float64(n) }

// String renders the value the way it would be typed back into a form.
func (n Number) String() string {
	return strconv.FormatFloat(float64(n), 'f', -1, 64)
}
