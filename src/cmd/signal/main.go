package main

import (
	"context"
	"fmt"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/optionscope/optionscope/src/discord"
	"github.com/optionscope/optionscope/src/marketdata"
	"github.com/optionscope/optionscope/src/signals"
	"github.com/optionscope/optionscope/src/telegram"
	"github.com/optionscope/optionscope/src/utils"
)

type RunArgs struct {
	Symbol       string
	Direction    string
	ConfigPath   string
	SendTelegram bool
	SendDiscord  bool
}

var runCmd = &cobra.Command{
	Use:   "go run src/cmd/signal/main.go --symbol AAPL --direction up",
	Short: "Generate a full option signal report for a single symbol",
	Run: func(cmd *cobra.Command, args []string) {
		symbol, err := cmd.Flags().GetString("symbol")
		if err != nil {
			log.Fatalf("error getting symbol: %v", err)
		}

		direction, err := cmd.Flags().GetString("direction")
		if err != nil {
			log.Fatalf("error getting direction: %v", err)
		}

		configPath, err := cmd.Flags().GetString("config")
		if err != nil {
			log.Fatalf("error getting config: %v", err)
		}

		sendTelegram, err := cmd.Flags().GetBool("telegram")
		if err != nil {
			log.Fatalf("error getting telegram: %v", err)
		}

		sendDiscord, err := cmd.Flags().GetBool("discord")
		if err != nil {
			log.Fatalf("error getting discord: %v", err)
		}

		if err := Run(RunArgs{
			Symbol:       symbol,
			Direction:    direction,
			ConfigPath:   configPath,
			SendTelegram: sendTelegram,
			SendDiscord:  sendDiscord,
		}); err != nil {
			log.Fatalf("Error: %v", err)
		}
	},
}

func Run(args RunArgs) error {
	utils.InitEnvironmentVariables()

	cfg := utils.LoadScannerConfig(args.ConfigPath)

	provider, err := marketdata.NewTradierClientFromEnv()
	if err != nil {
		return fmt.Errorf("Run: %w", err)
	}

	builder := signals.NewBuilder(provider, cfg)
	report := builder.GenerateSignal(context.Background(), args.Symbol, args.Direction)

	fmt.Println(report)

	if args.SendTelegram {
		client, err := telegram.NewClientFromEnv()
		if err != nil {
			return fmt.Errorf("Run: %w", err)
		}

		if err := client.SendMessage(report); err != nil {
			return fmt.Errorf("Run: %w", err)
		}
	}

	if args.SendDiscord {
		client, err := discord.NewClientFromEnv()
		if err != nil {
			return fmt.Errorf("Run: %w", err)
		}

		if err := client.SendEmbed("Option Scanner Alert", report); err != nil {
			return fmt.Errorf("Run: %w", err)
		}
	}

	return nil
}

func main() {
	runCmd.PersistentFlags().String("symbol", "", "Underlying symbol to analyze")
	runCmd.PersistentFlags().String("direction", "", "Market direction: up or down")
	runCmd.PersistentFlags().String("config", "scanner.yaml", "Path to the watchlist/filters config")
	runCmd.PersistentFlags().Bool("telegram", false, "Send the report to the configured telegram chat")
	runCmd.PersistentFlags().Bool("discord", false, "Send the report to the configured discord webhook")

	runCmd.MarkPersistentFlagRequired("symbol")
	runCmd.MarkPersistentFlagRequired("direction")

	if err := runCmd.Execute(); err != nil {
		log.Fatal(err)
	}
}
