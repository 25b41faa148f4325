package format

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Formatting for report tables. Amounts follow the Slovak convention the
// report has always used: space as thousands separator, comma as decimal mark.
//
// These functions are PURE:
// - No side effects
// - Fully deterministic

// Money renders a currency amount, e.g. 12345.6 -> "12 345,60 €".
func Money(v float64) string {
	return groupThousands(strconv.FormatFloat(v, 'f', 2, 64)) + " €"
}

// Pct renders a percentage with two decimals, e.g. 7.5 -> "7,50 %".
func Pct(v float64) string {
	return strings.ReplaceAll(strconv.FormatFloat(v, 'f', 2, 64), ".", ",") + " %"
}

// Count renders an integer quantity.
func Count(v int) string {
	return strconv.Itoa(v)
}

// Month renders a month key, e.g. "2024-01".
func Month(t time.Time) string {
	return t.Format("2006-01")
}

// Date renders a calendar day, e.g. "2024-01-28".
func Date(t time.Time) string {
	return t.Format("2006-01-02")
}

func groupThousands(s string) string {
	neg := strings.HasPrefix(s, "-")
	if neg {
		s = s[1:]
	}

	intPart, fracPart, _ := strings.Cut(s, ".")

	var b strings.Builder
	for i, r := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteByte(' ')
		}
		b.WriteRune(r)
	}

	out := b.String()
	if fracPart != "" {
		out = fmt.Sprintf("%s,%s", out, fracPart)
	}
	if neg {
		out = "-" + out
	}
	return out
}
