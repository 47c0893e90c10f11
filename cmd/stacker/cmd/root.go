package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hodlstack/stacker/config"
	"github.com/hodlstack/stacker/ledger"
)

var rootCmd = &cobra.Command{
	Use:   "stacker",
	Short: "A local-first Bitcoin portfolio and FIFO tax-lot tracker",
	Long: `Stacker records your Bitcoin buys and sells in a local SQLite ledger
and derives everything else from replaying that log:

  - Portfolio valuation (held BTC, average cost, unrealized P/L)
  - FIFO cost basis and realized gains per sale
  - Short/long-term capital gain split (365-day boundary)
  - Per-tax-year gain reports
  - Hypothetical sale ("what if I sold now?") calculations

Nothing leaves your machine except price lookups.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return rootCmd.Execute()
}

var (
	dbPath     string
	configPath string
)

func init() {
	rootCmd.PersistentFlags().StringVar(&dbPath, "db", "", "path to the SQLite ledger (overrides config)")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "path to a config file (YAML or JSON)")
}

// loadConfig resolves the effective configuration: the --config file if
// given, defaults otherwise, with --db overriding either.
func loadConfig() (*config.Config, error) {
	cfg := config.Default()
	if configPath != "" {
		loaded, err := config.LoadFromFile(configPath)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}
	if dbPath != "" {
		cfg.Ledger.DBPath = dbPath
	}
	return cfg, nil
}

func openStore() (*ledger.SQLite, *config.Config, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, nil, err
	}
	store, err := ledger.NewSQLite(cfg.Ledger.DBPath)
	if err != nil {
		return nil, nil, fmt.Errorf("open ledger %s: %w", cfg.Ledger.DBPath, err)
	}
	return store, cfg, nil
}
