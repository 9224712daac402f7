package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatCurrency(t *testing.T) {
	assert.Equal(t, "R$ 0,00", FormatCurrency(0))
	assert.Equal(t, "R$ 12,90", FormatCurrency(12.9))
	assert.Equal(t, "R$ 1.234,50", FormatCurrency(1234.5))
	assert.Equal(t, "R$ 1.000.000,01", FormatCurrency(1000000.01))
	assert.Equal(t, "-R$ 5,00", FormatCurrency(-5))
}

func TestParseAmount(t *testing.T) {
	cases := map[string]struct {
		in   interface{}
		want float64
	}{
		"float":         {12.5, 12.5},
		"int":           {7, 7},
		"ptBR":          {"1.234,56", 1234.56},
		"comma only":    {"12,9", 12.9},
		"dot decimal":   {"12.5", 12.5},
		"currency sign": {"R$ 3,50", 3.5},
		"negative":      {-4.0, 0},
		"negative text": {"-4,00", 0},
		"garbage":       {"abc", 0},
		"empty":         {"", 0},
		"nil":           {nil, 0},
		"bool":          {true, 0},
	}
	for name, tc := range cases {
		assert.Equal(t, tc.want, ParseAmount(tc.in), name)
	}
}

func TestParseQuantity(t *testing.T) {
	assert.Equal(t, 3, ParseQuantity(3))
	assert.Equal(t, 2, ParseQuantity(2.0))
	assert.Equal(t, 4, ParseQuantity(" 4 "))
	assert.Equal(t, 1, ParseQuantity(0))
	assert.Equal(t, 1, ParseQuantity(-2))
	assert.Equal(t, 1, ParseQuantity("x"))
	assert.Equal(t, 1, ParseQuantity(nil))
}
