package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/aretw0/scribe"
	"github.com/aretw0/scribe/internal/config"
	"github.com/aretw0/scribe/internal/logging"
)

var rootCmd = &cobra.Command{
	Use:   "scribe",
	Short: "Scribe writes plain text into workspace pages",
	Long: `Scribe lets agents create and append to pages in a block-based document workspace.
It exposes create_page and update_page over MCP, over HTTP, and on the command line.

Configuration comes from an optional YAML file (--config) and the environment
(NOTION_TOKEN, PAGE_ID, ...). Environment values win.`,
	SilenceUsage: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	// Persistent flags (available to all commands)
	rootCmd.PersistentFlags().String("config", "", "Path to a YAML configuration file")
	rootCmd.PersistentFlags().String("log-level", "", "Log level: debug, info, warn, error (overrides config)")
	rootCmd.PersistentFlags().String("log-format", "", "Log format: auto, text, json (overrides config)")
}

// loadConfig reads configuration and installs the process logger.
func loadConfig(cmd *cobra.Command) (*config.Config, *slog.Logger, error) {
	path, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(path)
	if err != nil {
		return nil, nil, err
	}

	if lvl, _ := cmd.Flags().GetString("log-level"); lvl != "" {
		cfg.LogLevel = lvl
	}
	if f, _ := cmd.Flags().GetString("log-format"); f != "" {
		cfg.LogFormat = f
	}

	logger := logging.New(logging.ParseLevel(cfg.LogLevel), logging.Format(cfg.LogFormat))
	slog.SetDefault(logger)
	return cfg, logger, nil
}

// newApp loads configuration and builds the application.
func newApp(cmd *cobra.Command) (*scribe.App, error) {
	cfg, logger, err := loadConfig(cmd)
	if err != nil {
		return nil, err
	}
	return scribe.New(cfg, scribe.WithLogger(logger))
}
