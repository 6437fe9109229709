package domain

import (
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNumberUnmarshal(t *testing.T) {
	var in struct {
		A Number  `json:"a"`
		B Number  `json:"b"`
		C Number  `json:"c"`
		D Number  `json:"d"`
		E *Number `json:"e"`
		F *Number `json:"f"`
	}
	body := `{"a": 99.95, "b": "99,95", "c": "$10,000.50", "d": "n/a", "e": "0"}`

	require.NoError(t, json.Unmarshal([]byte(body), &in))
	assert.Equal(t, 99.95, in.A.Float())
	assert.Equal(t, 99.95, in.B.Float())
	assert.Equal(t, 10000.50, in.C.Float())
	assert.Equal(t, 0.0, in.D.Float())
	require.NotNil(t, in.E)
	assert.Equal(t, 0.0, in.E.Float())
	assert.Nil(t, in.F)
}

func TestNumberString(t *testing.T) {
	assert.Equal(t, "99.95", Number(99.95).String())
	assert.Equal(t, "120", Number(120).String())
}
