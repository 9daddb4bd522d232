// Package won renders won amounts in the 억/만원 display scale used across
// the listing popups.
package won

import (
	"fmt"
	"strconv"

	"github.com/leegyver/land-sub002/internal/models"
)

const (
	man = 10_000
	eok = 100_000_000
)

// Format converts an amount into its display text: "1억 5000만원",
// "7800만원", "9,500원". Invalid amounts (empty, non-numeric, zero,
// negative) format to "" and the caller omits the field from the popup.
//
// Remainders below one 만원 are floored, not rounded. The site has always
// displayed prices this way, so the behavior is kept until the product owner
// decides otherwise.
func Format(a models.Amount) string {
	n, ok := a.Value()
	if !ok {
		return ""
	}
	switch {
	case n >= eok:
		e := n / eok
		m := (n % eok) / man
		if m == 0 {
			return fmt.Sprintf("%d억원", e)
		}
		return fmt.Sprintf("%d억 %d만원", e, m)
	case n >= man:
		return fmt.Sprintf("%d만원", n/man)
	default:
		return comma(n) + "원"
	}
}

// comma groups digits in threes: 9500 -> "9,500".
func comma(n int64) string {
	s := strconv.FormatInt(n, 10)
	if len(s) <= 3 {
		return s
	}
	var out []byte
	lead := len(s) % 3
	if lead > 0 {
		out = append(out, s[:lead]...)
	}
	for i := lead; i < len(s); i += 3 {
		if len(out) > 0 {
			out = append(out, ',')
		}
		out = append(out, s[i:i+3]...)
	}
	return string(out)
}
