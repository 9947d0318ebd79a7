package scanner

import (
	"github.com/optionscope/optionscope/src/models"
)

// Baseline tradability limits: contracts outside these are never considered,
// regardless of the tolerance band.
const (
	minTradableBid    = 0.01
	minTradableAsk    = 0.01
	minTradableVolume = 10
	minAskPrice       = 0.5
	maxAskPrice       = 20.0
)

// toleranceBand is one strike-distance window, expressed as multipliers of
// the underlying price.
type toleranceBand struct {
	name    string
	callMin float64
	callMax float64
	putMin  float64
	putMax  float64
}

// toleranceBands are tried in order; the first band with at least one
// survivor wins.
var toleranceBands = []toleranceBand{
	{name: "narrow", callMin: 0.98, callMax: 1.05, putMin: 0.95, putMax: 1.02},
	{name: "medium", callMin: 0.95, callMax: 1.10, putMin: 0.90, putMax: 1.05},
	{name: "wide", callMin: 0.90, callMax: 1.15, putMin: 0.85, putMax: 1.10},
}

// FilterNearMoney keeps the tradable contracts whose strike sits near the
// money for the given direction, widening the tolerance band until at least
// one contract survives. An empty result means no suitable contract, not an
// error.
func FilterNearMoney(contracts []models.Contract, direction models.Direction) []models.Contract {
	for _, band := range toleranceBands {
		var filtered []models.Contract

		for _, c := range contracts {
			// rows missing strike, option type or IV are malformed, not candidates
			if c.Strike <= 0 || c.OptionType.Validate() != nil || c.ImpliedVolatility <= 0 {
				continue
			}

			if !isTradable(c) {
				continue
			}

			price := c.UnderlyingPrice

			switch direction {
			case models.Up:
				if c.OptionType != models.Call {
					continue
				}

				if c.Strike < price*band.callMin || c.Strike > price*band.callMax {
					continue
				}
			case models.Down:
				if c.OptionType != models.Put {
					continue
				}

				if c.Strike < price*band.putMin || c.Strike > price*band.putMax {
					continue
				}
			default:
				continue
			}

			filtered = append(filtered, c)
		}

		if len(filtered) > 0 {
			return filtered
		}
	}

	return nil
}

func isTradable(c models.Contract) bool {
	if c.Ask <= minTradableAsk || c.Bid <= minTradableBid {
		return false
	}

	if c.Volume <= minTradableVolume {
		return false
	}

	if c.Ask < minAskPrice || c.Ask > maxAskPrice {
		return false
	}

	return true
}

// ApplySymbolFilter drops contracts below the per-symbol volume and open
// interest minimums.
func ApplySymbolFilter(contracts []models.Contract, filter models.SymbolFilter) []models.Contract {
	var filtered []models.Contract
	for _, c := range contracts {
		if c.Volume >= filter.MinVolume && c.OpenInterest >= filter.MinOpenInterest {
			filtered = append(filtered, c)
		}
	}

	return filtered
}
