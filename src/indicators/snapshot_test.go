package indicators

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/optionscope/optionscope/src/models"
)

func flatHistory(n int, close float64) []models.Candle {
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	candles := make([]models.Candle, n)
	for i := range candles {
		candles[i] = models.Candle{Timestamp: start.AddDate(0, 0, i), Close: close}
	}

	return candles
}

func TestBuildSnapshot(t *testing.T) {
	t.Run("insufficient history yields a neutral snapshot", func(t *testing.T) {
		snap := BuildSnapshot(flatHistory(20, 100))
		require.Equal(t, Snapshot{RSI: 50.0}, snap)
	})

	t.Run("flat series pins price and averages together", func(t *testing.T) {
		snap := BuildSnapshot(flatHistory(250, 100))
		require.Equal(t, 100.0, snap.Price)
		require.Equal(t, 100.0, snap.SMA50)
		require.Equal(t, 100.0, snap.SMA200)
	})

	t.Run("sma200 is zero when fewer than 200 bars exist", func(t *testing.T) {
		snap := BuildSnapshot(flatHistory(60, 100))
		require.Equal(t, 100.0, snap.SMA50)
		require.Equal(t, 0.0, snap.SMA200)
	})
}

func TestPriceAlerts(t *testing.T) {
	t.Run("levels within one percent trigger", func(t *testing.T) {
		alerts := PriceAlerts(100, []float64{99.5, 101, 95, 120})
		require.Equal(t, []float64{99.5, 101}, alerts)
	})

	t.Run("exact boundary triggers", func(t *testing.T) {
		require.Equal(t, []float64{100}, PriceAlerts(101, []float64{100}))
	})

	t.Run("no levels no alerts", func(t *testing.T) {
		require.Empty(t, PriceAlerts(100, nil))
		require.Empty(t, PriceAlerts(100, []float64{0, -5}))
	})
}
