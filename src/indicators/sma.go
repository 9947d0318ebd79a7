package indicators

import (
	"github.com/montanaflynn/stats"
)

// SMA is the simple moving average of the last window closes. Series shorter
// than the window return 0, matching "not enough history".
func SMA(closes []float64, window int) float64 {
	if window <= 0 || len(closes) < window {
		return 0
	}

	mean, err := stats.Mean(stats.Float64Data(closes[len(closes)-window:]))
	if err != nil {
		return 0
	}

	return mean
}
