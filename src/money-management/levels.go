package money_management

import (
	"fmt"
	"math"
)

// Fixed exit policy around the option entry price. The multipliers are a
// configuration detail, not a derived quantity.
const (
	TakeProfitMultiplier = 1.5
	StopLossMultiplier   = 0.7
)

var InvalidEntryPriceErr = fmt.Errorf("entry price must be positive")

// OptionTPSL returns the take-profit and stop-loss levels for an option
// entered at price entry. Deterministic and pure; both levels are rounded
// to cents.
func OptionTPSL(entry float64) (tp float64, sl float64) {
	tp = round2(entry * TakeProfitMultiplier)
	sl = round2(entry * StopLossMultiplier)
	return tp, sl
}

// ValidateEntry rejects non-positive entry prices before exit levels are
// attached to an order.
func ValidateEntry(entry float64) error {
	if entry <= 0 {
		return InvalidEntryPriceErr
	}

	return nil
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
