package cmd

import (
	"fmt"

	"github.com/davibonetto/titan-cli/internal/config"
	"github.com/davibonetto/titan-cli/internal/ui"
	"github.com/davibonetto/titan-cli/internal/workflow"
	"github.com/spf13/cobra"
)

var (
	forceRemove bool
)

var serviceRemoveCmd = &cobra.Command{
	Use:   "service:remove <name>",
	Short: "Remove a service from the health registry",
	Long: `Remove a service by name from your titan configuration.

Example:
  titan service:remove opticus
  titan service:remove hermes --force`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		name := args[0]

		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		if _, ok := cfg.FindService(name); !ok {
			return fmt.Errorf("service '%s' not found", name)
		}

		console := ui.NewConsole(cmd.OutOrStdout())

		if !forceRemove {
			proceed, err := workflow.HuhConfirmer{}.Confirm(fmt.Sprintf("Remove service '%s'?", name))
			if err != nil {
				return err
			}
			if !proceed {
				console.Warning("Cancelled.")
				return nil
			}
		}

		if err := cfg.RemoveService(name); err != nil {
			return err
		}

		if err := config.SaveConfig(cfg); err != nil {
			return err
		}

		configPath, _ := config.GetConfigPath()
		console.Success(fmt.Sprintf("Removed service '%s' from %s", name, configPath))

		return nil
	},
}

func init() {
	serviceRemoveCmd.Flags().BoolVarP(&forceRemove, "force", "f", false, "skip confirmation prompt")
	rootCmd.AddCommand(serviceRemoveCmd)
}
