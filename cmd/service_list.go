package cmd

import (
	"github.com/davibonetto/titan-cli/internal/ui"
	"github.com/spf13/cobra"
)

var serviceListCmd = &cobra.Command{
	Use:   "service:list",
	Short: "List all registered services",
	Long:  `Display every service in the health registry, in check order.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		console := ui.NewConsole(cmd.OutOrStdout())

		if len(cfg.Services) == 0 {
			console.Warning("No services registered yet.")
			console.Line("Add a service with:")
			console.Line("  titan service:add --name <name> --endpoint <url>")
			return nil
		}

		console.Line("Registered services (%d):", len(cfg.Services))
		console.Blank()

		for _, s := range cfg.Services {
			console.Line("%s %s", s.Icon, ui.BoldAccent.Render(s.Name))
			console.Line("   Endpoint: %s", s.Endpoint)
			if s.Description != "" {
				console.Line("   %s", ui.MutedStyle.Render(s.Description))
			}
			console.Blank()
		}

		return nil
	},
}

func init() {
	rootCmd.AddCommand(serviceListCmd)
}
