package scanner

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/optionscope/optionscope/src/models"
)

func TestIVRank(t *testing.T) {
	t.Run("empty history returns exactly the neutral rank", func(t *testing.T) {
		require.Equal(t, 50.0, IVRank(0.40, nil))
		require.Equal(t, 50.0, IVRank(0.40, []float64{}))
	})

	t.Run("undefined current iv returns the neutral rank", func(t *testing.T) {
		require.Equal(t, 50.0, IVRank(math.NaN(), []float64{0.3, 0.4}))
	})

	t.Run("rank is the share of samples strictly below", func(t *testing.T) {
		require.Equal(t, 66.7, IVRank(0.40, []float64{0.30, 0.35, 0.50}))
		require.Equal(t, 0.0, IVRank(0.20, []float64{0.30, 0.35, 0.50}))
		require.Equal(t, 100.0, IVRank(0.60, []float64{0.30, 0.35, 0.50}))
	})

	t.Run("equal samples do not count as below", func(t *testing.T) {
		require.Equal(t, 0.0, IVRank(0.40, []float64{0.40, 0.40}))
	})
}

func TestAnalyzeIV(t *testing.T) {
	history := []float64{0.1, 0.2, 0.3, 0.4, 0.5, 0.6, 0.7, 0.8, 0.9, 1.0}

	t.Run("high rank signals selling volatility", func(t *testing.T) {
		analysis := AnalyzeIV(0.95, history)
		require.Equal(t, 90.0, analysis.Rank)
		require.Equal(t, IVSignalSellVolatility, analysis.Signal)
	})

	t.Run("low rank signals buying volatility", func(t *testing.T) {
		analysis := AnalyzeIV(0.25, history)
		require.Equal(t, 20.0, analysis.Rank)
		require.Equal(t, IVSignalBuyVolatility, analysis.Signal)
	})

	t.Run("middle ranks are neutral", func(t *testing.T) {
		analysis := AnalyzeIV(0.55, history)
		require.Equal(t, 50.0, analysis.Rank)
		require.Equal(t, IVSignalNeutral, analysis.Signal)
	})

	t.Run("empty sample is neutral with zero sample size", func(t *testing.T) {
		analysis := AnalyzeIV(0.40, nil)
		require.Equal(t, 50.0, analysis.Rank)
		require.Equal(t, IVSignalNeutral, analysis.Signal)
		require.Zero(t, analysis.SampleSize)
	})
}

func TestIVSample(t *testing.T) {
	liquid := func(optionType models.OptionType, expiration string, iv float64) models.Contract {
		return models.Contract{
			OptionType:        optionType,
			ExpirationDate:    expiration,
			ImpliedVolatility: iv,
			Volume:            200,
		}
	}

	t.Run("averages liquid contracts per expiration and type", func(t *testing.T) {
		sample := IVSample([]models.Contract{
			liquid(models.Call, "2024-01-05", 0.25),
			liquid(models.Call, "2024-01-05", 0.75),
			liquid(models.Put, "2024-01-05", 0.60),
		})

		require.Len(t, sample, 2)
		require.InDelta(t, 0.50, sample[0], 1e-9)
		require.InDelta(t, 0.60, sample[1], 1e-9)
	})

	t.Run("illiquid and zero-iv contracts are excluded", func(t *testing.T) {
		thin := liquid(models.Call, "2024-01-05", 0.30)
		thin.Volume = 50

		zeroIV := liquid(models.Call, "2024-01-05", 0)

		require.Empty(t, IVSample([]models.Contract{thin, zeroIV}))
	})

	t.Run("only the three nearest expirations are sampled", func(t *testing.T) {
		sample := IVSample([]models.Contract{
			liquid(models.Call, "2024-01-05", 0.1),
			liquid(models.Call, "2024-01-12", 0.2),
			liquid(models.Call, "2024-01-19", 0.3),
			liquid(models.Call, "2024-01-26", 0.4),
		})

		require.Equal(t, []float64{0.1, 0.2, 0.3}, sample)
	})
}
