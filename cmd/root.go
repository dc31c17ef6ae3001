package cmd

import (
	"fmt"
	"os"

	"github.com/davibonetto/titan-cli/internal/config"
	"github.com/davibonetto/titan-cli/internal/logging"
	"github.com/davibonetto/titan-cli/internal/ui"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

const version = "1.0.0"

var (
	verbose    bool
	noColor    bool
	configFile string

	logger = logging.New(os.Stderr, false)
)

var rootCmd = &cobra.Command{
	Use:     "titan",
	Version: version,
	Short:   "🔱 The Operator Console - Command the Titan Protocol Ecosystem",
	Long: `Unified command-line interface for orchestrating the Titan Protocol ecosystem.
Control AI services, manage deployments, and monitor system health.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// A missing .env file is not an error
		_ = godotenv.Load()

		if noColor || os.Getenv("NO_COLOR") != "" {
			ui.DisableColor()
		}

		logger = logging.New(os.Stderr, verbose)

		if configFile != "" {
			if err := os.Setenv(config.EnvConfigPath, configFile); err != nil {
				return fmt.Errorf("failed to set config path: %w", err)
			}
		}

		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return cmd.Help()
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output for debugging")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable colored output")
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file (default ~/.config/titan/config.yml)")
}

// Execute runs the root command and exits non-zero on error
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "%s %v\n", ui.ErrorStyle.Bold(true).Render("✖ Error:"), err)
		os.Exit(1)
	}
}
