package indicators

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const equalityThreshold = 1e-2

func TestRSI(t *testing.T) {
	t.Run("short series is neutral", func(t *testing.T) {
		assert.Equal(t, 50.0, RSI(nil, 14))
		assert.Equal(t, 50.0, RSI([]float64{100, 101, 102}, 14))
	})

	t.Run("all gains saturate at 100", func(t *testing.T) {
		assert.Equal(t, 100.0, RSI([]float64{1, 2, 3, 4}, 3))
	})

	t.Run("all losses bottom out at 0", func(t *testing.T) {
		assert.InDelta(t, 0.0, RSI([]float64{4, 3, 2, 1}, 3), equalityThreshold)
	})

	t.Run("mixed gains and losses", func(t *testing.T) {
		// deltas over the window: +1, -1, +2 -> rs = 1 / (1/3) = 3
		assert.InDelta(t, 75.0, RSI([]float64{10, 11, 10, 12}, 3), equalityThreshold)
	})

	t.Run("only the last window matters", func(t *testing.T) {
		long := append([]float64{500, 1, 250, 9}, 10, 11, 10, 12)
		assert.InDelta(t, RSI([]float64{10, 11, 10, 12}, 3), RSI(long, 3), equalityThreshold)
	})
}

func TestSMA(t *testing.T) {
	t.Run("averages the last window", func(t *testing.T) {
		require.Equal(t, 3.0, SMA([]float64{1, 2, 3, 4}, 2)) // (3+4)/2
	})

	t.Run("short series returns zero", func(t *testing.T) {
		require.Equal(t, 0.0, SMA([]float64{1, 2}, 5))
		require.Equal(t, 0.0, SMA(nil, 5))
	})
}
