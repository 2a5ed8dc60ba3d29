// Package core holds the pure business logic of the trip ledger: split
// calculation and validation, expense building, aggregation and budget
// evaluation. Nothing in this package performs I/O; persistence and
// notification belong to the callers.
package core

import (
	"math"

	"github.com/dustin/go-humanize"
)

// FormatINR renders an amount as rupee currency text with grouping and a
// fixed two-decimal fraction, e.g. 1500 -> "₹1,500.00".
func FormatINR(amount float64) string {
	if math.Signbit(amount) {
		return "-₹" + humanize.FormatFloat("#,###.##", -amount)
	}
	return "₹" + humanize.FormatFloat("#,###.##", amount)
}

// roundCurrency rounds to two decimals, half away from zero.
func roundCurrency(v float64) float64 {
	return math.Round(v*100) / 100
}
