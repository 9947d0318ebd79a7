package main

import (
	"context"
	"fmt"
	"os"

	"github.com/gocarina/gocsv"
	"github.com/olekukonko/tablewriter"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/optionscope/optionscope/src/discord"
	"github.com/optionscope/optionscope/src/marketdata"
	"github.com/optionscope/optionscope/src/models"
	"github.com/optionscope/optionscope/src/scanner"
	"github.com/optionscope/optionscope/src/signals"
	"github.com/optionscope/optionscope/src/telegram"
	"github.com/optionscope/optionscope/src/utils"
)

type RunArgs struct {
	Direction    string
	ConfigPath   string
	N            int
	CSVPath      string
	SendTelegram bool
	SendDiscord  bool
}

var runCmd = &cobra.Command{
	Use:   "go run src/cmd/scanner/main.go --direction up",
	Short: "Scan the watchlist and print the top contracts for a direction",
	Run: func(cmd *cobra.Command, args []string) {
		direction, err := cmd.Flags().GetString("direction")
		if err != nil {
			log.Fatalf("error getting direction: %v", err)
		}

		configPath, err := cmd.Flags().GetString("config")
		if err != nil {
			log.Fatalf("error getting config: %v", err)
		}

		n, err := cmd.Flags().GetInt("n")
		if err != nil {
			log.Fatalf("error getting n: %v", err)
		}

		csvPath, err := cmd.Flags().GetString("csv")
		if err != nil {
			log.Fatalf("error getting csv: %v", err)
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
			Direction:    direction,
			ConfigPath:   configPath,
			N:            n,
			CSVPath:      csvPath,
			SendTelegram: sendTelegram,
			SendDiscord:  sendDiscord,
		}); err != nil {
			log.Fatalf("Error: %v", err)
		}
	},
}

func Run(args RunArgs) error {
	utils.InitEnvironmentVariables()

	direction, err := models.ParseDirection(args.Direction)
	if err != nil {
		return err
	}

	cfg := utils.LoadScannerConfig(args.ConfigPath)

	provider, err := marketdata.NewTradierClientFromEnv()
	if err != nil {
		return fmt.Errorf("Run: %w", err)
	}

	sc := scanner.NewScanner(provider, cfg)
	contracts := sc.TopAcrossWatchlist(context.Background(), direction, args.N)

	renderTable(contracts)

	if args.CSVPath != "" {
		if err := writeCSV(args.CSVPath, contracts); err != nil {
			return err
		}

		log.Infof("wrote %d contracts to %s", len(contracts), args.CSVPath)
	}

	if args.SendTelegram {
		client, err := telegram.NewClientFromEnv()
		if err != nil {
			return fmt.Errorf("Run: %w", err)
		}

		if err := client.SendTop10Alert(signals.BuildTop10Alert(contracts)); err != nil {
			return fmt.Errorf("Run: %w", err)
		}
	}

	if args.SendDiscord {
		client, err := discord.NewClientFromEnv()
		if err != nil {
			return fmt.Errorf("Run: %w", err)
		}

		if err := client.SendTop10Alert(signals.BuildTop10Alert(contracts)); err != nil {
			return fmt.Errorf("Run: %w", err)
		}
	}

	return nil
}

func renderTable(contracts []models.Contract) {
	if len(contracts) == 0 {
		fmt.Println("No suitable contracts found.")
		return
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"Symbol", "Type", "Strike", "Expiration", "Bid", "Ask", "IV", "Score", "TP", "SL"})

	for _, c := range contracts {
		table.Append([]string{
			c.UnderlyingSymbol,
			string(c.OptionType),
			fmt.Sprintf("%.2f", c.Strike),
			c.ExpirationDate,
			fmt.Sprintf("%.2f", c.Bid),
			fmt.Sprintf("%.2f", c.Ask),
			fmt.Sprintf("%.4f", c.ImpliedVolatility),
			fmt.Sprintf("%.2f", c.Score),
			fmt.Sprintf("%.2f", c.TakeProfit),
			fmt.Sprintf("%.2f", c.StopLoss),
		})
	}

	table.Render()
}

func writeCSV(path string, contracts []models.Contract) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("writeCSV: %w", err)
	}

	defer file.Close()

	if err := gocsv.MarshalFile(&contracts, file); err != nil {
		return fmt.Errorf("writeCSV: %w", err)
	}

	return nil
}

func main() {
	runCmd.PersistentFlags().String("direction", "", "Market direction to scan: up or down")
	runCmd.PersistentFlags().String("config", "scanner.yaml", "Path to the watchlist/filters config")
	runCmd.PersistentFlags().Int("n", scanner.DefaultTopN, "Number of contracts to keep across the watchlist")
	runCmd.PersistentFlags().String("csv", "", "Optional path to export the scan as CSV")
	runCmd.PersistentFlags().Bool("telegram", false, "Send the result to the configured telegram chat")
	runCmd.PersistentFlags().Bool("discord", false, "Send the result to the configured discord webhook")

	runCmd.MarkPersistentFlagRequired("direction")

	if err := runCmd.Execute(); err != nil {
		log.Fatal(err)
	}
}
