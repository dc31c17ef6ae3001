package cmd

import (
	"strings"

	"github.com/davibonetto/titan-cli/internal/ui"
	"github.com/davibonetto/titan-cli/internal/workflow"
	"github.com/spf13/cobra"
)

var (
	askStream bool
	askModel  string
)

var askCmd = &cobra.Command{
	Use:     "ask <query>",
	Aliases: []string{"query", "q", "ai"},
	Short:   "🧠 Send a query to VORTEX AI Engine",
	Long: `Send a query to the VORTEX AI Engine.

Examples:
  titan ask "analyze sector 7"
  titan ask --stream "what is the system health?"`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		env := workflow.Env{Console: ui.NewConsole(cmd.OutOrStdout()), Verbose: verbose}
		return workflow.Ask(cmd.Context(), env, workflow.AskOptions{
			Query:  strings.Join(args, " "),
			Model:  askModel,
			Stream: askStream,
		})
	},
}

func init() {
	askCmd.Flags().BoolVarP(&askStream, "stream", "s", false, "use streaming response mode")
	askCmd.Flags().StringVarP(&askModel, "model", "m", workflow.DefaultModel, "model to use")
	rootCmd.AddCommand(askCmd)
}
