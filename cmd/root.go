package cmd

import (
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"next-target-mock/config"
	"next-target-mock/internal/logger"
)

var configPath string

var rootCmd = &cobra.Command{
	Use:   "next-target-mock",
	Short: "Mock personnel backend for front-end development",
	Long: `next-target-mock serves the manpower API on top of MongoDB (or an
in-memory store) and can seed or wipe the collection from the command line.

Running it without a subcommand starts the HTTP server.`,
	SilenceUsage: true,
	RunE:         runServe,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "path to a config file (yaml, json or toml)")
	rootCmd.AddCommand(serveCmd, seedCmd, seedHeavyCmd, deleteAllCmd)
}

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func loadRuntime() (*config.Config, *zap.Logger, error) {
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		return nil, nil, err
	}
	log, err := logger.New(cfg.Log)
	if err != nil {
		return nil, nil, err
	}
	return cfg, log, nil
}
