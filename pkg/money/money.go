// Package money keeps monetary values as fixed-point strings with two
// fraction digits and does all arithmetic in decimal.
package money

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

const Places = 2

// Zero is the serialised zero amount.
const Zero = "0.00"

// Parse reads a decimal string. An empty string is treated as zero.
func Parse(s string) (decimal.Decimal, error) {
	if s == "" {
		return decimal.Zero, nil
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, fmt.Errorf("invalid amount %q: %w", s, err)
	}
	return d, nil
}

// Format serialises d rounded to two fraction digits.
func Format(d decimal.Decimal) string {
	return d.StringFixed(Places)
}

// Normalize re-serialises s with exactly two fraction digits.
func Normalize(s string) (string, error) {
	d, err := Parse(s)
	if err != nil {
		return "", err
	}
	return Format(d), nil
}

// Mean returns the unweighted mean of values to two fraction digits.
// The mean of no values is Zero.
func Mean(values []int) string {
	if len(values) == 0 {
		return Zero
	}
	var sum int64
	for _, v := range values {
		sum += int64(v)
	}
	return Format(decimal.NewFromInt(sum).Div(decimal.NewFromInt(int64(len(values)))))
}

// Display renders d for people: two fraction digits and comma-grouped
// thousands, e.g. "15,000.50".
func Display(d decimal.Decimal) string {
	s := Format(d)
	sign := ""
	if strings.HasPrefix(s, "-") {
		sign, s = "-", s[1:]
	}
	whole, frac, _ := strings.Cut(s, ".")

	var b strings.Builder
	for i, r := range whole {
		if i > 0 && (len(whole)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(r)
	}
	return sign + b.String() + "." + frac
}
