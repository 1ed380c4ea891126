package main

import (
	"fmt"
	"os"
	"xcadd/internal/config"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	// Global flags
	verbose     bool
	projectPath string
	configPath  string

	// Logger
	logger *zap.Logger
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "xcadd",
	Short: "Register source files in an Xcode project without the IDE",
	Long: `xcadd patches a project.pbxproj manifest so that a declared list of
source files is registered with the project: a file reference, a build
file, a group membership entry and a Sources build-phase entry per file.

Identifiers are derived from each file's path, so running the same patch
twice reaches a fixed point instead of duplicating records.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Initialize logger
		cfg := zap.NewProductionConfig()
		if verbose {
			cfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}
		var err error
		logger, err = cfg.Build()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
	rootCmd.PersistentFlags().StringVar(&projectPath, "project", "", "Path to project.pbxproj (overrides config)")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to xcadd YAML config")
}

// loadRunConfig resolves the effective configuration for a command run:
// the YAML config (or built-in defaults) with flag overrides applied.
func loadRunConfig() (*config.Config, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}
	if projectPath != "" {
		cfg.Project = projectPath
	}
	return cfg, nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
