package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/davibonetto/titan-cli/internal/monitor"
	"github.com/davibonetto/titan-cli/internal/notify"
	"github.com/davibonetto/titan-cli/internal/tui"
	"github.com/spf13/cobra"
)

var (
	watchService  string
	watchInterval time.Duration
)

var watchCmd = &cobra.Command{
	Use:     "watch",
	Aliases: []string{"dash", "monitor"},
	Short:   "Live dashboard that re-checks services on an interval",
	Long: `Open a full-screen dashboard that re-runs the status checks on an interval.
Desktop notifications are sent on online/offline transitions when
notifications are enabled in the config file.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		stack, err := buildHealthStack()
		if err != nil {
			return err
		}
		defer stack.Close()

		interval := stack.durations.WatchInterval
		if watchInterval > 0 {
			interval = watchInterval
		}

		// Setup context with cancellation
		ctx, cancel := context.WithCancel(cmd.Context())
		defer cancel()

		// Handle OS signals
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
		defer signal.Stop(sigChan)
		go func() {
			select {
			case <-sigChan:
				cancel()
			case <-ctx.Done():
			}
		}()

		watcher := monitor.NewWatcher(stack.aggregator, watchService, interval)
		go watcher.Start(ctx)

		services := monitor.Filter(stack.registry, watchService)
		model := tui.NewModel(services, watcher, cancel, notify.NewNotifier(stack.cfg.Notifications))
		p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))

		if _, err := p.Run(); err != nil && ctx.Err() == nil {
			return fmt.Errorf("failed to start dashboard: %w", err)
		}

		cancel()
		<-watcher.Done()
		return nil
	},
}

func init() {
	watchCmd.Flags().StringVarP(&watchService, "service", "s", "", "watch services whose name contains this text")
	watchCmd.Flags().DurationVar(&watchInterval, "interval", 0, "delay between check rounds (default from config)")
	rootCmd.AddCommand(watchCmd)
}
