// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the cite CLI. It loads bibliographic
// records from YAML, JSON or TOML files, validates them, and renders them as
// citation strings, CSL-YAML, or an XLSX bibliography.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/pdiddy/citation-engine/internal/export"
	"github.com/pdiddy/citation-engine/pkg/types"
)

// version is set at build time via ldflags.
var version = "dev"

var (
	verbose bool
	logger  = zap.NewNop()

	errColor  = color.New(color.FgRed, color.Bold)
	warnColor = color.New(color.FgYellow)
)

// rootCmd is the base command for the cite CLI.
var rootCmd = &cobra.Command{
	Use:   "cite",
	Short: "Format bibliographic records as citations",
	Long: `cite turns structured bibliographic records into citation strings in
MLA, APA, Chicago or Harvard style.

Records are read from YAML, JSON or TOML files. Each file holds one record or
a "records" list. The author's last name and the title are required; every
other field is optional and omitted from the citation when absent.`,
	SilenceErrors: true,
	SilenceUsage:  true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		l, err := newLogger(verbose)
		if err != nil {
			return fmt.Errorf("initializing logger: %w", err)
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

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./cite.yaml or ~/.config/cite/cite.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	rootCmd.PersistentFlags().String("style", "", "citation style for every record: MLA, APA, Chicago, Harvard (overrides the records)")

	viper.SetDefault("style", string(types.StyleMLA))
	viper.SetDefault("output", string(types.OutputText))
	viper.SetDefault("copy", false)
	viper.SetDefault("export.sheet", export.DefaultSheet)
}

// newLogger builds the stderr logger. Without verbose it only reports
// warnings, in console form, so it does not echo the plain status lines the
// commands print themselves.
func newLogger(verbose bool) (*zap.Logger, error) {
	config := zap.NewProductionConfig()
	config.Encoding = "console"
	config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	config.Level = zap.NewAtomicLevelAt(zapcore.WarnLevel)
	if verbose {
		config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	return config.Build()
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("cite")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "cite"))
		}
	}

	viper.SetEnvPrefix("CITE")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// loadConfig assembles the command configuration from viper.
func loadConfig() types.Config {
	style, _ := types.ParseStyle(viper.GetString("style"))
	return types.Config{
		Format: types.FormatConfig{
			Style:  style,
			Output: types.OutputFormat(viper.GetString("output")),
			Copy:   viper.GetBool("copy"),
		},
		Export: types.ExportConfig{
			Sheet: viper.GetString("export.sheet"),
		},
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		errColor.Fprint(os.Stderr, "error: ")
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
