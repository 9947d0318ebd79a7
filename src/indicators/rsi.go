package indicators

import (
	"math"
)

const neutralRSI = 50.0

// RSI computes the relative strength index of a close series using simple
// rolling averages of gains and losses over the last period deltas. A series
// too short to fill the window returns the neutral 50.
func RSI(closes []float64, period int) float64 {
	if period <= 0 || len(closes) <= period {
		return neutralRSI
	}

	var avgGain, avgLoss float64

	start := len(closes) - period
	for i := start; i < len(closes); i++ {
		delta := closes[i] - closes[i-1]
		if delta > 0 {
			avgGain += delta
		} else {
			avgLoss += math.Abs(delta)
		}
	}

	avgGain /= float64(period)
	avgLoss /= float64(period)

	if avgLoss == 0 {
		return 100
	}

	rs := avgGain / avgLoss
	return 100 - (100 / (1 + rs))
}
