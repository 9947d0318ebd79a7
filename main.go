package main

import (
	"context"
	"fmt"
	"os"

	log "github.com/sirupsen/logrus"

	"github.com/optionscope/optionscope/src/discord"
	"github.com/optionscope/optionscope/src/marketdata"
	"github.com/optionscope/optionscope/src/models"
	"github.com/optionscope/optionscope/src/scanner"
	"github.com/optionscope/optionscope/src/signals"
	"github.com/optionscope/optionscope/src/telegram"
	"github.com/optionscope/optionscope/src/utils"
)

const defaultConfigPath = "scanner.yaml"

// Scans the watchlist in both directions and pushes a top-contract alert to
// telegram. Run as a cron job after the open; the per-symbol reports are
// served separately by src/cmd/api.
func main() {
	utils.InitEnvironmentVariables()

	ctx := context.Background()

	cfg := utils.LoadScannerConfig(defaultConfigPath)

	provider, err := marketdata.NewTradierClientFromEnv()
	if err != nil {
		log.Fatalf("main: %v", err)
	}

	sc := scanner.NewScanner(provider, cfg)

	for _, direction := range []models.Direction{models.Up, models.Down} {
		contracts := sc.TopAcrossWatchlist(ctx, direction, scanner.DefaultTopN)

		alert := signals.BuildTop10Alert(contracts)
		fmt.Printf("[%s]\n%s\n", direction, alert)

		if client, err := telegram.NewClientFromEnv(); err != nil {
			log.Warnf("main: telegram disabled: %v", err)
		} else if err := client.SendTop10Alert(alert); err != nil {
			log.Errorf("main: failed to send %s telegram alert: %v", direction, err)
			os.Exit(1)
		}

		if client, err := discord.NewClientFromEnv(); err != nil {
			log.Warnf("main: discord disabled: %v", err)
		} else if err := client.SendTop10Alert(alert); err != nil {
			log.Errorf("main: failed to send %s discord alert: %v", direction, err)
			os.Exit(1)
		}
	}
}
