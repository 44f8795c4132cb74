// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the thesaurus-engine CLI. It
// pre-classifies a VOSviewer term list, applies reviewer decisions, and
// exports the validated thesaurus.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/pdiddy/thesaurus-engine/internal/review"
	"github.com/pdiddy/thesaurus-engine/internal/thesaurus"
	"github.com/pdiddy/thesaurus-engine/pkg/types"
)

// version is set at build time via ldflags.
var version = "dev"

// logger is configured from log.level before any subcommand runs.
var logger = zap.NewNop()

// rootCmd is the base command for the thesaurus-engine CLI.
var rootCmd = &cobra.Command{
	Use:   "thesaurus-engine",
	Short: "Pre-classify and validate bibliometric term lists for VOSviewer",
	Long: `thesaurus-engine helps clean a term list exported from VOSviewer. Each term
is pre-classified into a suggested action (keep, eliminate, evaluate, review)
from its lexical content, occurrence count, and relevance score. Reviewer
decisions (keep, merge, eliminate) are recorded in a decisions file or through
the HTTP review API, and the result is exported as a thesaurus file that
VOSviewer can import.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		l, err := newLogger(viper.GetString("log.level"))
		if err != nil {
			return err
		}
		logger = l
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = logger.Sync()
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./thesaurus-engine.yaml or ~/.config/thesaurus-engine/config.yaml)")
	rootCmd.PersistentFlags().String("log-level", "info", "log level: debug, info, warn, error")
	_ = viper.BindPFlag("log.level", rootCmd.PersistentFlags().Lookup("log-level"))
}

func initConfig() {
	viper.SetDefault("review.batch_size", review.DefaultBatchSize)
	viper.SetDefault("export.output", thesaurus.DefaultFilename)
	viper.SetDefault("export.format", string(types.ExportTXT))
	viper.SetDefault("server.addr", ":8080")
	viper.SetDefault("server.max_upload_bytes", 10<<20)
	viper.SetDefault("server.session_ttl", "24h")
	viper.SetDefault("log.level", "info")

	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("thesaurus-engine")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "thesaurus-engine"))
		}
	}

	viper.SetEnvPrefix("THESAURUS_ENGINE")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// loadConfig returns the merged configuration from defaults, config file,
// and environment.
func loadConfig() (types.Config, error) {
	var cfg types.Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return cfg, fmt.Errorf("reading configuration: %w", err)
	}
	return cfg, nil
}

// newLogger builds a console logger on stderr at the given level.
func newLogger(level string) (*zap.Logger, error) {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", level, err)
	}

	cfg := zap.NewDevelopmentConfig()
	cfg.Level = zap.NewAtomicLevelAt(lvl)
	cfg.DisableStacktrace = true
	cfg.DisableCaller = true
	cfg.EncoderConfig.EncodeTime = zapcore.TimeEncoderOfLayout("15:04:05")
	return cfg.Build()
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
