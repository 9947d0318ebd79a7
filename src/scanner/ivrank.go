package scanner

import (
	"math"
	"sort"

	"github.com/montanaflynn/stats"

	"github.com/optionscope/optionscope/src/models"
)

// IV rank policy thresholds.
const (
	SellVolatilityThreshold = 70.0
	BuyVolatilityThreshold  = 30.0

	// neutralIVRank is deliberately returned when the sample is empty or the
	// current IV is undefined, to avoid signaling on missing data.
	neutralIVRank = 50.0

	ivSampleExpirations = 3
	ivSampleMinVolume   = 100
)

type IVSignal string

const (
	IVSignalSellVolatility IVSignal = "high IV rank: consider selling premium"
	IVSignalBuyVolatility  IVSignal = "low IV rank: consider buying premium"
	IVSignalNeutral        IVSignal = "neutral IV rank: no volatility edge"
)

// IVAnalysis is the optional IV sub-analysis. SampleSize zero means the
// rank is the neutral default, not a measurement.
type IVAnalysis struct {
	Rank       float64
	Signal     IVSignal
	SampleSize int
}

// IVRank is the percentile position of currentIV within history: the share
// of samples strictly below it, as a percentage rounded to one decimal.
// With no history or an undefined current IV it returns the neutral 50.0.
func IVRank(currentIV float64, history []float64) float64 {
	if len(history) == 0 || math.IsNaN(currentIV) {
		return neutralIVRank
	}

	countLower := 0
	for _, iv := range history {
		if iv < currentIV {
			countLower++
		}
	}

	rank := float64(countLower) / float64(len(history)) * 100
	return round1(rank)
}

// AnalyzeIV ranks currentIV against the sample and maps the rank onto the
// buy/sell/neutral policy.
func AnalyzeIV(currentIV float64, history []float64) IVAnalysis {
	rank := IVRank(currentIV, history)

	signal := IVSignalNeutral
	switch {
	case rank >= SellVolatilityThreshold:
		signal = IVSignalSellVolatility
	case rank <= BuyVolatilityThreshold:
		signal = IVSignalBuyVolatility
	}

	return IVAnalysis{
		Rank:       rank,
		Signal:     signal,
		SampleSize: len(history),
	}
}

// IVSample builds an IV history proxy from the chain itself: the mean IV of
// liquid contracts, per option type, over up to the three nearest
// expirations.
func IVSample(contracts []models.Contract) []float64 {
	byExpiration := make(map[string]map[models.OptionType][]float64)
	for _, c := range contracts {
		if c.Volume <= ivSampleMinVolume || c.ImpliedVolatility <= 0 {
			continue
		}

		if byExpiration[c.ExpirationDate] == nil {
			byExpiration[c.ExpirationDate] = make(map[models.OptionType][]float64)
		}

		byExpiration[c.ExpirationDate][c.OptionType] = append(byExpiration[c.ExpirationDate][c.OptionType], c.ImpliedVolatility)
	}

	expirations := make([]string, 0, len(byExpiration))
	for expiration := range byExpiration {
		expirations = append(expirations, expiration)
	}

	sort.Strings(expirations)

	if len(expirations) > ivSampleExpirations {
		expirations = expirations[:ivSampleExpirations]
	}

	var sample []float64
	for _, expiration := range expirations {
		for _, optionType := range []models.OptionType{models.Call, models.Put} {
			ivs := byExpiration[expiration][optionType]
			if len(ivs) == 0 {
				continue
			}

			mean, err := stats.Mean(stats.Float64Data(ivs))
			if err != nil || math.IsNaN(mean) {
				continue
			}

			sample = append(sample, mean)
		}
	}

	return sample
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
