package indicators

import (
	"math"

	"github.com/optionscope/optionscope/src/models"
)

const (
	RSIPeriod     = 14
	ShortSMAWidth = 50
	LongSMAWidth  = 200

	// minHistoryBars guards the snapshot against series too short to carry
	// a meaningful short moving average.
	minHistoryBars = 50

	priceAlertTolerance = 0.01
)

// Snapshot bundles the technical indicators rendered at the top of a signal
// report.
type Snapshot struct {
	Price  float64
	RSI    float64
	SMA50  float64
	SMA200 float64
}

// BuildSnapshot computes price, RSI-14 and the 50/200 moving averages from a
// daily close history. Insufficient history yields a neutral snapshot.
func BuildSnapshot(candles []models.Candle) Snapshot {
	closes := models.Closes(candles)

	if len(closes) < minHistoryBars {
		return Snapshot{RSI: neutralRSI}
	}

	return Snapshot{
		Price:  round2(closes[len(closes)-1]),
		RSI:    round2(RSI(closes, RSIPeriod)),
		SMA50:  round2(SMA(closes, ShortSMAWidth)),
		SMA200: round2(SMA(closes, LongSMAWidth)),
	}
}

// PriceAlerts returns the configured watch levels the price currently sits
// within one percent of.
func PriceAlerts(price float64, levels []float64) []float64 {
	var alerts []float64
	for _, level := range levels {
		if level <= 0 {
			continue
		}

		if math.Abs(price-level)/level <= priceAlertTolerance {
			alerts = append(alerts, level)
		}
	}

	return alerts
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
