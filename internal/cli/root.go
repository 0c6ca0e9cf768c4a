package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/internmatch/internmatch/internal/catalog"
	"github.com/internmatch/internmatch/internal/config"
	"github.com/internmatch/internmatch/internal/database"
	"github.com/internmatch/internmatch/internal/logger"
)

var (
	// Version info set from main
	version   = "dev"
	commit    = "unknown"
	buildTime = "unknown"

	// Global flags
	configPath string
	outputFmt  string
	debugLog   bool
	jsonLog    bool
)

// SetVersionInfo sets version information from build flags
func SetVersionInfo(v, c, b string) {
	version = v
	commit = c
	buildTime = b
}

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "internmatch",
	Short: "An explainable internship and career recommender",
	Long: `internmatch matches a candidate profile against a catalog of
internship opportunities and returns a ranked, explainable short-list.

It provides:
  - Rule-based multi-factor scoring with per-factor reasons
  - Hybrid career suggestions fusing an external classifier with
    rule-based alignment boosts
  - A JSON API for embedding the recommender in other services`,
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	// Global flags
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "",
		"config file (default: ~/.config/internmatch/config.toml)")
	rootCmd.PersistentFlags().StringVarP(&outputFmt, "output", "o", "table",
		"output format (table, json)")
	rootCmd.PersistentFlags().BoolVar(&debugLog, "debug", false,
		"enable debug logging")
	rootCmd.PersistentFlags().BoolVar(&jsonLog, "json-log", false,
		"log in JSON instead of console format")

	rootCmd.AddCommand(versionCmd)
}

func initConfig() {
	if configPath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error finding home directory: %v\n", err)
			os.Exit(1)
		}
		configPath = filepath.Join(home, ".config", "internmatch", "config.toml")
	}
}

// newLogger builds the process logger from the global flags
func newLogger() (*zap.Logger, error) {
	return logger.New(jsonLog, debugLog)
}

// loadInternships reads the internship catalog from the configured
// source. An explicit dataPath overrides the config and forces the
// file loader.
func loadInternships(ctx context.Context, cfg *config.Config, dataPath string) ([]catalog.Internship, error) {
	if dataPath != "" {
		return catalog.LoadInternships(dataPath)
	}

	if cfg.Catalog.Source == "sqlite" {
		db, err := database.Open(cfg.Database.Path)
		if err != nil {
			return nil, fmt.Errorf("failed to open catalog database: %w", err)
		}
		defer db.Close()
		return db.ListInternships(ctx)
	}

	return catalog.LoadInternships(cfg.Catalog.Path)
}

// versionCmd shows version information
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("internmatch %s\n", version)
		fmt.Printf("  commit: %s\n", commit)
		fmt.Printf("  built:  %s\n", buildTime)
	},
}
