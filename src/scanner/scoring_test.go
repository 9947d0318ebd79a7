package scanner

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/optionscope/optionscope/src/models"
)

func TestScoreContract(t *testing.T) {
	today := time.Date(2024, 1, 3, 0, 0, 0, 0, time.UTC)

	t.Run("reproduces the weighted sum exactly", func(t *testing.T) {
		c := models.Contract{
			Bid:               1.0,
			Ask:               1.2,
			Volume:            350,
			OpenInterest:      1200,
			ImpliedVolatility: 0.40,
			ExpirationDate:    "2024-02-16", // far out, no weekly bonus
		}

		// liquidity = 50 + 50, spread = 100 - 20, iv = 100
		expected := 100.0*0.5 + 80.0*0.3 + 100.0*0.2
		require.InDelta(t, expected, ScoreContract(c, today), 1e-9)
	})

	t.Run("weekly expiration earns the liquidity bonus", func(t *testing.T) {
		far := models.Contract{Bid: 1.0, Ask: 1.2, Volume: 350, OpenInterest: 1200, ImpliedVolatility: 0.40, ExpirationDate: "2024-02-16"}
		near := far
		near.ExpirationDate = "2024-01-05"

		require.InDelta(t, ScoreContract(far, today)+20*0.5, ScoreContract(near, today), 1e-9)
	})

	t.Run("zero bid takes the spread penalty", func(t *testing.T) {
		c := models.Contract{
			Bid:               0,
			Ask:               1.2,
			Volume:            350,
			OpenInterest:      1200,
			ImpliedVolatility: 0.40,
			ExpirationDate:    "2024-02-16",
		}

		// spread score collapses to zero under the 999 sentinel
		expected := 100.0*0.5 + 0.0 + 100.0*0.2
		require.InDelta(t, expected, ScoreContract(c, today), 1e-9)
	})

	t.Run("unparseable expiration defaults to thirty days out", func(t *testing.T) {
		c := models.Contract{Bid: 1.0, Ask: 1.2, Volume: 350, OpenInterest: 1200, ImpliedVolatility: 0.40, ExpirationDate: "bad-date"}

		// 30 days out means no weekly bonus
		expected := 100.0*0.5 + 80.0*0.3 + 100.0*0.2
		require.InDelta(t, expected, ScoreContract(c, today), 1e-9)
	})

	t.Run("volume and open interest tiers", func(t *testing.T) {
		cases := []struct {
			volume int64
			oi     int64
			tier   float64
		}{
			{300, 1000, 100},
			{299, 999, 60},
			{100, 500, 60},
			{99, 499, 20},
			{0, 0, 20},
		}

		for _, tc := range cases {
			assert.Equal(t, tc.tier, volumeTier(tc.volume)+openInterestTier(tc.oi))
		}
	})

	t.Run("iv distance from target is penalized symmetrically", func(t *testing.T) {
		low := models.Contract{Bid: 1.0, Ask: 1.2, Volume: 350, OpenInterest: 1200, ImpliedVolatility: 0.30, ExpirationDate: "2024-02-16"}
		high := low
		high.ImpliedVolatility = 0.50

		require.InDelta(t, ScoreContract(low, today), ScoreContract(high, today), 1e-9)
	})

	t.Run("score never goes negative on extreme inputs", func(t *testing.T) {
		c := models.Contract{
			Bid:               0.02,
			Ask:               19,
			Volume:            1,
			OpenInterest:      1,
			ImpliedVolatility: 4.5,
			ExpirationDate:    "2024-02-16",
		}

		require.GreaterOrEqual(t, ScoreContract(c, today), 0.0)
	})
}
