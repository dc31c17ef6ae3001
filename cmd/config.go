package cmd

import (
	"fmt"
	"strconv"

	"github.com/davibonetto/titan-cli/internal/config"
	"github.com/davibonetto/titan-cli/internal/ui"
	"github.com/spf13/cobra"
)

var (
	configList  bool
	configReset bool
)

var configCmd = &cobra.Command{
	Use:     "config",
	Aliases: []string{"cfg", "settings"},
	Short:   "⚙️ Show or reset the titan configuration",
	Args:    cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		console := ui.NewConsole(cmd.OutOrStdout())
		configPath, err := config.GetConfigPath()
		if err != nil {
			return err
		}

		if configReset {
			if err := config.InitConfig(true); err != nil {
				return err
			}
			console.Success("Configuration reset at " + configPath)
			return nil
		}

		if !configList {
			console.Info("Config file: " + configPath)
			console.Line("Use --list to show the current settings or --reset to restore defaults")
			return nil
		}

		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		console.Header("TITAN CONFIGURATION")
		console.KV("Config file", configPath)
		console.KV("Timeout", cfg.Timeout)
		console.KV("Connect timeout", cfg.ConnectTimeout)
		console.KV("Concurrency", strconv.Itoa(cfg.Concurrency))
		console.KV("User agent", cfg.UserAgent)
		console.KV("Watch interval", cfg.WatchInterval)
		console.KV("Notifications", strconv.FormatBool(cfg.Notifications))
		console.Blank()
		console.Line("%s", ui.BoldAccent.Render(fmt.Sprintf("Services (%d)", len(cfg.Services))))
		console.ShortDivider()
		for _, s := range cfg.Services {
			console.Line("%s %-10s %s", s.Icon, s.Name, ui.MutedStyle.Render(s.Endpoint))
		}
		console.Blank()

		return nil
	},
}

func init() {
	configCmd.Flags().BoolVarP(&configList, "list", "l", false, "list current settings")
	configCmd.Flags().BoolVar(&configReset, "reset", false, "reset configuration to defaults")
	rootCmd.AddCommand(configCmd)
}
