package cmd

import (
	"github.com/davibonetto/titan-cli/internal/config"
	"github.com/davibonetto/titan-cli/internal/ui"
	"github.com/spf13/cobra"
)

var (
	forceInit bool
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize titan configuration",
	Long: `Create a new titan configuration file at ~/.config/titan/config.yml
seeded with the default service registry. Edit this file to point the
services at your own endpoints.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := config.InitConfig(forceInit); err != nil {
			return err
		}

		configPath, _ := config.GetConfigPath()
		console := ui.NewConsole(cmd.OutOrStdout())

		if forceInit {
			console.Success("Configuration reset at " + configPath)
		} else {
			console.Success("Configuration initialized at " + configPath)
		}

		console.Blank()
		console.Line("Edit the config file to adjust your services, then run:")
		console.Line("  titan status")

		return nil
	},
}

func init() {
	initCmd.Flags().BoolVarP(&forceInit, "force", "f", false, "overwrite existing configuration")
	rootCmd.AddCommand(initCmd)
}
