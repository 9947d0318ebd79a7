package main

import (
	"fmt"
	"net/http"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/optionscope/optionscope/src/api"
	"github.com/optionscope/optionscope/src/marketdata"
	"github.com/optionscope/optionscope/src/scanner"
	"github.com/optionscope/optionscope/src/signals"
	"github.com/optionscope/optionscope/src/utils"
)

type RunArgs struct {
	Port       int
	ConfigPath string
}

var runCmd = &cobra.Command{
	Use:   "go run src/cmd/api/main.go --port 8080",
	Short: "Serve the signal and top-contract endpoints over HTTP",
	Run: func(cmd *cobra.Command, args []string) {
		port, err := cmd.Flags().GetInt("port")
		if err != nil {
			log.Fatalf("error getting port: %v", err)
		}

		configPath, err := cmd.Flags().GetString("config")
		if err != nil {
			log.Fatalf("error getting config: %v", err)
		}

		if err := Run(RunArgs{Port: port, ConfigPath: configPath}); err != nil {
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

	router := api.NewRouter(signals.NewBuilder(provider, cfg), scanner.NewScanner(provider, cfg))

	addr := fmt.Sprintf(":%d", args.Port)
	log.Infof("listening on %s", addr)

	return http.ListenAndServe(addr, router)
}

func main() {
	runCmd.PersistentFlags().Int("port", 8080, "Port to listen on")
	runCmd.PersistentFlags().String("config", "scanner.yaml", "Path to the watchlist/filters config")

	if err := runCmd.Execute(); err != nil {
		log.Fatal(err)
	}
}
