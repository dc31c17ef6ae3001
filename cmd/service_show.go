package cmd

import (
	"fmt"

	"github.com/davibonetto/titan-cli/internal/config"
	"github.com/davibonetto/titan-cli/internal/ui"
	"github.com/spf13/cobra"
)

var serviceShowCmd = &cobra.Command{
	Use:   "service:show <name>",
	Short: "Show details of a registered service",
	Long: `Display the registry entry for a service. Names match ignoring case.

Example:
  titan service:show vortex`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		found, ok := cfg.FindService(args[0])
		if !ok {
			return fmt.Errorf("service '%s' not found", args[0])
		}

		console := ui.NewConsole(cmd.OutOrStdout())
		console.Line("Service: %s %s", found.Icon, found.Name)
		console.ShortDivider()
		console.KV("Endpoint", found.Endpoint)
		if resolved := config.ResolveEnv(found.Endpoint); resolved != found.Endpoint {
			console.KV("Resolved", resolved)
		}
		if found.Description != "" {
			console.KV("Description", found.Description)
		}

		return nil
	},
}

func init() {
	rootCmd.AddCommand(serviceShowCmd)
}
