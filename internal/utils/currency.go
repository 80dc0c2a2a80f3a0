// internal/utils/currency.go
package utils

import (
	"math"
	"strconv"
	"strings"
)

// CurrencySymbol is the storefront's single display currency (Indian rupee).
const CurrencySymbol = "₹"

// FormatPrice renders an amount as rupees with en-IN digit grouping, e.g. ₹1,34,900.
func FormatPrice(amount float64) string {
	if amount < 0 {
		return "-" + CurrencySymbol + FormatNumber(-amount)
	}
	return CurrencySymbol + FormatNumber(amount)
}

// FormatNumber groups the integer part as 12,34,567 and keeps at most three
// fraction digits, trimming trailing zeros.
func FormatNumber(v float64) string {
	switch {
	case math.IsNaN(v):
		return "NaN"
	case math.IsInf(v, 1):
		return "∞"
	case math.IsInf(v, -1):
		return "-∞"
	}

	sign := ""
	if v < 0 {
		sign = "-"
		v = -v
	}

	s := strconv.FormatFloat(v, 'f', 3, 64)
	intPart, frac, _ := strings.Cut(s, ".")
	frac = strings.TrimRight(frac, "0")

	out := sign + groupIndian(intPart)
	if frac != "" {
		out += "." + frac
	}
	if out == "-0" {
		return "0"
	}
	return out
}

// groupIndian places a separator after the last three digits and then after
// every two.
func groupIndian(digits string) string {
	if len(digits) <= 3 {
		return digits
	}

	head, tail := digits[:len(digits)-3], digits[len(digits)-3:]

	var groups []string
	for len(head) > 2 {
		groups = append([]string{head[len(head)-2:]}, groups...)
		head = head[:len(head)-2]
	}
	if head != "" {
		groups = append([]string{head}, groups...)
	}

	return strings.Join(groups, ",") + "," + tail
}
