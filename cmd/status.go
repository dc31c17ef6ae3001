package cmd

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/davibonetto/titan-cli/internal/notify"
	"github.com/davibonetto/titan-cli/internal/report"
	"github.com/davibonetto/titan-cli/internal/ui"
	"github.com/spf13/cobra"
)

var (
	statusService  string
	statusDetailed bool
	statusNotify   bool
)

var statusCmd = &cobra.Command{
	Use:     "status",
	Aliases: []string{"st", "health", "ping"},
	Short:   "📊 Check status of all Titan Protocol services",
	Long: `Issue one HTTP GET per registered service and report which are online.

Offline services never cause a non-zero exit code; only configuration
errors do.

Examples:
  titan status
  titan status --service vortex --detailed`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		stack, err := buildHealthStack()
		if err != nil {
			return err
		}
		defer stack.Close()

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		console := ui.NewConsole(cmd.OutOrStdout())
		console.Blank()
		console.Header("TITAN PROTOCOL STATUS")
		console.Blank()

		spin := ui.NewSpinner(console, spinner.Dot, "")
		spin.Start("Scanning services...")
		results := stack.aggregator.CheckAll(ctx, statusService)
		spin.Stop()

		console.Printf("%s", report.Render(results, statusDetailed))
		console.Blank()

		notifier := notify.NewNotifier(statusNotify || stack.cfg.Notifications)
		if notifier.NotifyOffline(results) {
			logger.Debug("sent offline notification", "offline", report.Summarize(results).Offline())
		}

		return nil
	},
}

func init() {
	statusCmd.Flags().StringVarP(&statusService, "service", "s", "", "check services whose name contains this text")
	statusCmd.Flags().BoolVarP(&statusDetailed, "detailed", "d", false, "show descriptions and failure reasons")
	statusCmd.Flags().BoolVar(&statusNotify, "notify", false, "send a desktop notification when services are offline")
	rootCmd.AddCommand(statusCmd)
}
