// Package decimal wraps shopspring/decimal with helpers for Vietnamese
// currency amounts as they appear in tender paperwork: dot-grouped digits
// with an optional currency suffix ("1.234.567.890 VNĐ").
package decimal

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// Zero is decimal zero
var Zero = decimal.Zero

// FromInt creates decimal from int (common for VND)
func FromInt(v int64) decimal.Decimal {
	return decimal.NewFromInt(v)
}

// ParseVND parses a Vietnamese-formatted amount. Dots are thousands
// separators, a comma is the decimal mark, and trailing currency words
// (VNĐ, VND, đồng) are ignored.
func ParseVND(s string) (decimal.Decimal, error) {
	cleaned := strings.TrimSpace(s)
	for _, suffix := range []string{"VNĐ", "VND", "vnđ", "vnd", "đồng", "Đồng"} {
		cleaned = strings.TrimSpace(strings.TrimSuffix(cleaned, suffix))
	}
	cleaned = strings.ReplaceAll(cleaned, ".", "")
	cleaned = strings.ReplaceAll(cleaned, ",", ".")
	cleaned = strings.ReplaceAll(cleaned, " ", "")
	if cleaned == "" {
		return Zero, fmt.Errorf("empty amount %q", s)
	}
	d, err := decimal.NewFromString(cleaned)
	if err != nil {
		return Zero, fmt.Errorf("unparseable amount %q: %w", s, err)
	}
	return d, nil
}

// FormatVND renders an amount with dot-grouped digits and the VNĐ suffix.
// VND has no cents; the amount is rounded to a whole number first.
func FormatVND(d decimal.Decimal) string {
	digits := d.Round(0).String()
	neg := strings.HasPrefix(digits, "-")
	digits = strings.TrimPrefix(digits, "-")

	var groups []string
	for len(digits) > 3 {
		groups = append([]string{digits[len(digits)-3:]}, groups...)
		digits = digits[:len(digits)-3]
	}
	groups = append([]string{digits}, groups...)

	out := strings.Join(groups, ".")
	if neg {
		out = "-" + out
	}
	return out + " VNĐ"
}

// RoundVND rounds to whole number (VND has no decimals)
func RoundVND(d decimal.Decimal) decimal.Decimal {
	return d.Round(0)
}

// IsPositive returns true if decimal is greater than zero
func IsPositive(d decimal.Decimal) bool {
	return d.GreaterThan(Zero)
}
