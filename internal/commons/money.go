package commons

import (
	"strings"

	"github.com/shopspring/decimal"
)

// FormatPeso renders an amount as "₱12,500.00".
func FormatPeso(amount decimal.Decimal) string {
	neg := amount.IsNegative()
	s := amount.Abs().StringFixed(2)

	whole, frac, _ := strings.Cut(s, ".")

	var b strings.Builder
	b.Grow(len(whole) + len(whole)/3 + len(frac) + 4)
	if neg {
		b.WriteString("-")
	}
	b.WriteString("₱")

	rem := len(whole) % 3
	if rem == 0 {
		rem = 3
	}
	b.WriteString(whole[:rem])
	for i := rem; i < len(whole); i += 3 {
		b.WriteByte(',')
		b.WriteString(whole[i : i+3])
	}
	b.WriteByte('.')
	b.WriteString(frac)

	return b.String()
}
