package models

// SymbolFilter holds the per-symbol contract filter and RSI thresholds.
type SymbolFilter struct {
	MinVolume        int64   `yaml:"minVolume" json:"min_volume"`
	MinOpenInterest  int64   `yaml:"minOpenInterest" json:"min_oi"`
	RSIBuyThreshold  float64 `yaml:"rsiBuyThreshold" json:"rsi_buy_threshold"`
	RSISellThreshold float64 `yaml:"rsiSellThreshold" json:"rsi_sell_threshold"`
}

// DefaultSymbolFilter is the baked-in fallback used when neither the symbol
// nor a "default" entry is present in the config.
var DefaultSymbolFilter = SymbolFilter{
	MinVolume:        300,
	MinOpenInterest:  1000,
	RSIBuyThreshold:  30,
	RSISellThreshold: 70,
}

type ScannerConfigYAML struct {
	Watchlist     []string                `yaml:"watchlist"`
	SymbolFilters map[string]SymbolFilter `yaml:"symbolFilters"`
	PriceLevels   map[string][]float64    `yaml:"priceLevels"`
}

// GetSymbolFilter looks up the filter for symbol, falling back to the
// "default" entry, then to DefaultSymbolFilter.
func (c *ScannerConfigYAML) GetSymbolFilter(symbol string) SymbolFilter {
	if c != nil {
		if f, ok := c.SymbolFilters[symbol]; ok {
			return f
		}

		if f, ok := c.SymbolFilters["default"]; ok {
			return f
		}
	}

	return DefaultSymbolFilter
}

// GetPriceLevels returns the watch levels configured for symbol, if any.
func (c *ScannerConfigYAML) GetPriceLevels(symbol string) []float64 {
	if c == nil {
		return nil
	}

	return c.PriceLevels[symbol]
}

// DefaultScannerConfig is the fallback used when the config file is missing
// or malformed.
func DefaultScannerConfig() *ScannerConfigYAML {
	return &ScannerConfigYAML{
		Watchlist: []string{"QQQ", "SPY", "AAPL", "NVDA"},
		SymbolFilters: map[string]SymbolFilter{
			"default": DefaultSymbolFilter,
		},
	}
}
