package cmd

import (
	"fmt"

	"github.com/davibonetto/titan-cli/internal/config"
	"github.com/davibonetto/titan-cli/internal/ui"
	"github.com/spf13/cobra"
)

var (
	serviceName        string
	serviceEndpoint    string
	serviceIcon        string
	serviceDescription string
)

var serviceAddCmd = &cobra.Command{
	Use:   "service:add",
	Short: "Add a service to the health registry",
	Long: `Add a new service to your titan configuration.

Endpoints may reference environment variables. They are expanded when the
registry is loaded and also when the service is added, so the variable
must be set at that point.

Examples:
  titan service:add --name ATLAS --endpoint http://localhost:8500/health
  GAIA_URL=http://localhost:8600 titan service:add --name GAIA --endpoint '${GAIA_URL}/health' --icon 🌍`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if serviceName == "" {
			return fmt.Errorf("service name is required (--name)")
		}
		if serviceEndpoint == "" {
			return fmt.Errorf("service endpoint is required (--endpoint)")
		}

		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		service := config.Service{
			Name:        serviceName,
			Icon:        serviceIcon,
			Endpoint:    serviceEndpoint,
			Description: serviceDescription,
		}

		if err := cfg.AddService(service); err != nil {
			return err
		}

		if err := config.SaveConfig(cfg); err != nil {
			return err
		}

		configPath, _ := config.GetConfigPath()
		ui.NewConsole(cmd.OutOrStdout()).Success(fmt.Sprintf("Added service '%s' to %s", serviceName, configPath))

		return nil
	},
}

func init() {
	serviceAddCmd.Flags().StringVarP(&serviceName, "name", "n", "", "service name (required)")
	serviceAddCmd.Flags().StringVarP(&serviceEndpoint, "endpoint", "u", "", "health endpoint URL (required)")
	serviceAddCmd.Flags().StringVar(&serviceIcon, "icon", "", "icon shown next to the name")
	serviceAddCmd.Flags().StringVar(&serviceDescription, "description", "", "short description")

	_ = serviceAddCmd.MarkFlagRequired("name")
	_ = serviceAddCmd.MarkFlagRequired("endpoint")

	rootCmd.AddCommand(serviceAddCmd)
}
