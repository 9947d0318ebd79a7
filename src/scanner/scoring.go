package scanner

import (
	"math"
	"time"

	"github.com/optionscope/optionscope/src/models"
)

// Empirical scoring constants. The IV target and tier cutoffs come from live
// tuning; override here, do not derive.
const (
	IVTarget = 0.40

	spreadPenalty = 999.0

	weeklyLiquidityBonus   = 20.0
	weeklyLiquidityCutoff  = 7
	highVolumeCutoff       = 300
	midVolumeCutoff        = 100
	highOpenInterestCutoff = 1000
	midOpenInterestCutoff  = 500

	liquidityWeight = 0.5
	spreadWeight    = 0.3
	ivWeight        = 0.2
)

// ScoreContract computes the 0-100 composite score from liquidity, bid/ask
// spread and distance of implied volatility from the target. The contract is
// not mutated; callers attach the score.
func ScoreContract(c models.Contract, today time.Time) float64 {
	spreadPct := spreadPenalty
	if c.Bid > minTradableBid {
		spreadPct = (c.Ask - c.Bid) / c.Bid * 100
	}

	liquidityBonus := 0.0
	if c.DaysToExpiration(today) <= weeklyLiquidityCutoff {
		liquidityBonus = weeklyLiquidityBonus
	}

	liquidityScore := volumeTier(c.Volume) + openInterestTier(c.OpenInterest) + liquidityBonus
	spreadScore := math.Max(0, 100-spreadPct)
	ivScore := math.Max(0, 100-math.Abs(c.ImpliedVolatility-IVTarget)*100)

	return liquidityScore*liquidityWeight + spreadScore*spreadWeight + ivScore*ivWeight
}

func volumeTier(volume int64) float64 {
	switch {
	case volume >= highVolumeCutoff:
		return 50
	case volume >= midVolumeCutoff:
		return 30
	default:
		return 10
	}
}

func openInterestTier(openInterest int64) float64 {
	switch {
	case openInterest >= highOpenInterestCutoff:
		return 50
	case openInterest >= midOpenInterestCutoff:
		return 30
	default:
		return 10
	}
}
