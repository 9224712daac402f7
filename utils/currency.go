package utils

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// FormatCurrency formats a value as Brazilian Real.
// Example: 1234.5 -> "R$ 1.234,50"
func FormatCurrency(amount float64) string {
	d := decimal.NewFromFloat(amount).Round(2)
	sign := ""
	if d.IsNegative() {
		sign = "-"
		d = d.Neg()
	}

	formatted := d.StringFixed(2)
	parts := strings.Split(formatted, ".")
	integerPart := parts[0]
	decimalPart := parts[1]

	// Tambahkan pemisah ribuan
	var result []string
	for i := len(integerPart); i > 0; i -= 3 {
		start := i - 3
		if start < 0 {
			start = 0
		}
		result = append([]string{integerPart[start:i]}, result...)
	}

	return fmt.Sprintf("%sR$ %s,%s", sign, strings.Join(result, "."), decimalPart)
}

// ParseAmount coerces form input into a non-negative amount. Numbers are taken
// as they are; strings may use the pt-BR form ("1.234,56") or a plain decimal
// point ("12.5"). Anything unparseable yields 0.
func ParseAmount(v interface{}) float64 {
	var d decimal.Decimal
	switch x := v.(type) {
	case nil:
		return 0
	case float64:
		d = decimal.NewFromFloat(x)
	case float32:
		d = decimal.NewFromFloat32(x)
	case int:
		d = decimal.NewFromInt(int64(x))
	case int64:
		d = decimal.NewFromInt(x)
	case string:
		parsed, err := decimal.NewFromString(normalizeAmount(x))
		if err != nil {
			return 0
		}
		d = parsed
	default:
		return 0
	}
	if d.IsNegative() {
		return 0
	}
	f, _ := d.Float64()
	return f
}

func normalizeAmount(s string) string {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "R$")
	s = strings.TrimSpace(s)
	if strings.Contains(s, ",") {
		s = strings.ReplaceAll(s, ".", "")
		s = strings.Replace(s, ",", ".", 1)
	}
	return s
}

// ParseQuantity coerces a quantity to an integer of at least 1.
func ParseQuantity(v interface{}) int {
	n := 0
	switch x := v.(type) {
	case int:
		n = x
	case int64:
		n = int(x)
	case float64:
		n = int(x)
	case string:
		parsed, err := strconv.Atoi(strings.TrimSpace(x))
		if err == nil {
			n = parsed
		}
	}
	if n < 1 {
		return 1
	}
	return n
}
