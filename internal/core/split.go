package core

import (
	"fmt"
	"math"
	"strings"
)

// SplitValidation is the outcome of validating a proposed split.
// When Valid, Amounts carries the resolved per-member shares (nil when the
// split resolves to nothing, e.g. type none).
type SplitValidation struct {
	Valid   bool
	Err     string
	Amounts map[string]float64
}

// ComputeEqualSplit divides total evenly across the selected members, each
// share rounded to two decimals. The rounding remainder is accepted, not
// redistributed: a three-way split of 10.00 yields 3.33 each and the sum
// 9.99 stands. An empty selection yields an empty map.
func ComputeEqualSplit(total float64, friendIDs []string) map[string]float64 {
	amounts := make(map[string]float64, len(friendIDs))
	if len(friendIDs) == 0 {
		return amounts
	}
	share := roundCurrency(total / float64(len(friendIDs)))
	for _, id := range friendIDs {
		amounts[id] = share
	}
	return amounts
}

// ValidateSplit checks a proposed split against the expense's full total.
//
// Type none, or an empty selection, is always valid and resolves no amounts.
// Equal splits are always valid and resolve to ComputeEqualSplit. Value
// splits require a manual amount for every selected member and the sum to
// match the total within a 0.01 tolerance; the manual amounts pass through
// unrounded. Any other type is rejected.
//
// The friends roster is only consulted to name members in error messages.
func ValidateSplit(splitType SplitType, total float64, friendIDs []string, manual map[string]float64, friends []Friend) SplitValidation {
	if splitType == SplitNone || len(friendIDs) == 0 {
		return SplitValidation{Valid: true}
	}

	switch splitType {
	case SplitEqual:
		return SplitValidation{Valid: true, Amounts: ComputeEqualSplit(total, friendIDs)}

	case SplitValue:
		// A zero amount counts as missing, same as no entry at all.
		var missing []string
		for _, id := range friendIDs {
			if manual[id] == 0 {
				missing = append(missing, friendName(friends, id))
			}
		}
		if len(missing) > 0 {
			return SplitValidation{Err: "Please enter amounts for: " + strings.Join(missing, ", ")}
		}

		var sum float64
		for _, id := range friendIDs {
			sum += manual[id]
		}
		if math.Abs(sum-total) > 0.01 {
			return SplitValidation{Err: fmt.Sprintf(
				"Split amounts (%s) must total the full expense amount (%s)",
				FormatINR(sum), FormatINR(total))}
		}

		amounts := make(map[string]float64, len(friendIDs))
		for _, id := range friendIDs {
			amounts[id] = manual[id]
		}
		return SplitValidation{Valid: true, Amounts: amounts}
	}

	return SplitValidation{Err: "Invalid split type"}
}

func friendName(friends []Friend, id string) string {
	for _, f := range friends {
		if f.ID == id {
			return f.Name
		}
	}
	return id
}
