package cmd

import (
	"runtime"

	"github.com/davibonetto/titan-cli/internal/ui"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:     "version",
	Aliases: []string{"ver", "info"},
	Short:   "Show version and system information",
	Args:    cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		console := ui.NewConsole(cmd.OutOrStdout())
		console.PrintBanner()

		console.KV("Version", version)
		console.KV("Go", runtime.Version())
		console.KV("Platform", runtime.GOOS+"/"+runtime.GOARCH)
		console.Blank()

		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		console.Line("%s", ui.BoldAccent.Render("Connected services:"))
		for _, s := range cfg.Services {
			console.Line("  %s %-10s %s", s.Icon, s.Name, ui.MutedStyle.Render(s.Description))
		}
		console.Blank()

		return nil
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
