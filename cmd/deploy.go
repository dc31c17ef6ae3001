package cmd

import (
	"github.com/davibonetto/titan-cli/internal/ui"
	"github.com/davibonetto/titan-cli/internal/workflow"
	"github.com/spf13/cobra"
)

var (
	deployEnv string
	deployYes bool
)

var deployCmd = &cobra.Command{
	Use:     "deploy <service>",
	Aliases: []string{"dep", "up"},
	Short:   "🚀 Deploy services to the Titan infrastructure",
	Long: `Deploy a service to a target environment.

Valid services: cerberus, kronos, hermes, vortex, opticus, all

Examples:
  titan deploy vortex
  titan deploy all --env production --yes`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		env := workflow.Env{Console: ui.NewConsole(cmd.OutOrStdout()), Verbose: verbose}
		result, err := workflow.Deploy(cmd.Context(), env, workflow.DeployOptions{
			Service:     args[0],
			Environment: deployEnv,
			SkipConfirm: deployYes,
		})
		if err != nil {
			return err
		}

		logger.Debug("deploy finished",
			"service", args[0],
			"env", deployEnv,
			"deployed", result.Deployed,
			"id", result.DeploymentID,
		)
		return nil
	},
}

func init() {
	deployCmd.Flags().StringVarP(&deployEnv, "env", "e", workflow.DefaultEnvironment, "target environment")
	deployCmd.Flags().BoolVarP(&deployYes, "yes", "y", false, "skip confirmation prompt")
	rootCmd.AddCommand(deployCmd)
}
