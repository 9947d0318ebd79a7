package utils

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/optionscope/optionscope/src/models"
)

func TestLoadScannerConfig(t *testing.T) {
	t.Run("reads watchlist and overrides", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "scanner.yaml")
		content := `
watchlist:
  - QQQ
  - SPY
symbolFilters:
  QQQ:
    minVolume: 500
    minOpenInterest: 2000
    rsiBuyThreshold: 40
    rsiSellThreshold: 60
  default:
    minVolume: 300
    minOpenInterest: 1000
    rsiBuyThreshold: 30
    rsiSellThreshold: 70
priceLevels:
  QQQ: [400, 410.5]
`
		require.NoError(t, os.WriteFile(path, []byte(content), 0644))

		cfg := LoadScannerConfig(path)
		require.Equal(t, []string{"QQQ", "SPY"}, cfg.Watchlist)
		require.Equal(t, int64(500), cfg.GetSymbolFilter("QQQ").MinVolume)
		require.Equal(t, int64(300), cfg.GetSymbolFilter("AAPL").MinVolume)
		require.Equal(t, []float64{400, 410.5}, cfg.GetPriceLevels("QQQ"))
	})

	t.Run("missing file falls back to defaults", func(t *testing.T) {
		cfg := LoadScannerConfig(filepath.Join(t.TempDir(), "missing.yaml"))
		require.Equal(t, models.DefaultScannerConfig().Watchlist, cfg.Watchlist)
		require.Equal(t, models.DefaultSymbolFilter, cfg.GetSymbolFilter("AAPL"))
	})

	t.Run("malformed yaml falls back to defaults", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "scanner.yaml")
		require.NoError(t, os.WriteFile(path, []byte("watchlist: ["), 0644))

		cfg := LoadScannerConfig(path)
		require.Equal(t, models.DefaultScannerConfig().Watchlist, cfg.Watchlist)
	})
}
