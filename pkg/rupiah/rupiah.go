// Package rupiah formats prices as Indonesian Rupiah.
package rupiah

import (
	"math"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

const Symbol = "Rp"

var locale = language.Indonesian

// FormatInt renders price with Indonesian digit grouping,
// e.g. 750000 -> "Rp750.000". Every int64 is rendered exactly.
func FormatInt(price int64) string {
	sign := ""
	abs := uint64(price)
	if price < 0 {
		sign = "-"
		abs = -abs
	}

	p := message.NewPrinter(locale)
	return sign + Symbol + p.Sprintf("%d", abs)
}

// Format is [FormatInt] for fractional amounts. Halves are rounded away
// from zero, values beyond the int64 range are clamped to it and NaN
// renders as zero.
func Format(price float64) string {
	if math.IsNaN(price) {
		return FormatInt(0)
	}

	v := math.Round(price)
	switch {
	case v >= math.MaxInt64:
		return FormatInt(math.MaxInt64)
	case v <= math.MinInt64:
		return FormatInt(math.MinInt64)
	}
	return FormatInt(int64(v))
}
