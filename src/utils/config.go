package utils

import (
	"os"

	log "github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"

	"github.com/optionscope/optionscope/src/models"
)

// LoadScannerConfig reads the watchlist/filter YAML at path. A missing or
// malformed file falls back to the baked-in defaults; the fallback is logged
// but never surfaced to the caller.
func LoadScannerConfig(path string) *models.ScannerConfigYAML {
	data, err := os.ReadFile(path)
	if err != nil {
		log.Warnf("LoadScannerConfig: %s: %v; using default config", path, err)
		return models.DefaultScannerConfig()
	}

	var cfg models.ScannerConfigYAML
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		log.Warnf("LoadScannerConfig: %s: malformed yaml: %v; using default config", path, err)
		return models.DefaultScannerConfig()
	}

	if len(cfg.Watchlist) == 0 {
		cfg.Watchlist = models.DefaultScannerConfig().Watchlist
	}

	return &cfg
}
