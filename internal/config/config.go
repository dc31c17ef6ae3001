package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/davibonetto/titan-cli/internal/monitor"
	"gopkg.in/yaml.v3"
)

const (
	DefaultTimeout        = "5s"
	DefaultConnectTimeout = "3s"
	DefaultWatchInterval  = "10s"
	DefaultConcurrency    = 5

	// EnvConfigPath overrides the config file location
	EnvConfigPath = "TITAN_CONFIG"
)

// Config represents the titan configuration
type Config struct {
	Timeout        string    `yaml:"timeout"`
	ConnectTimeout string    `yaml:"connect_timeout"`
	Concurrency    int       `yaml:"concurrency"`
	UserAgent      string    `yaml:"user_agent,omitempty"`
	WatchInterval  string    `yaml:"watch_interval"`
	Notifications  bool      `yaml:"notifications"`
	Services       []Service `yaml:"services"`
}

// Service represents a registry entry
type Service struct {
	Name        string `yaml:"name"`
	Icon        string `yaml:"icon,omitempty"`
	Endpoint    string `yaml:"endpoint"`
	Description string `yaml:"description,omitempty"`
}

// Default returns the compiled-in configuration
func Default() *Config {
	defs := monitor.DefaultDefinitions()
	services := make([]Service, len(defs))
	for i, def := range defs {
		services[i] = Service{
			Name:        def.Name,
			Icon:        def.Icon,
			Endpoint:    def.Endpoint,
			Description: def.Description,
		}
	}

	return &Config{
		Timeout:        DefaultTimeout,
		ConnectTimeout: DefaultConnectTimeout,
		Concurrency:    DefaultConcurrency,
		UserAgent:      monitor.DefaultUserAgent,
		WatchInterval:  DefaultWatchInterval,
		Services:       services,
	}
}

// GetConfigPath returns the path to the global config file
func GetConfigPath() (string, error) {
	if path := os.Getenv(EnvConfigPath); path != "" {
		return path, nil
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}

	return filepath.Join(homeDir, ".config", "titan", "config.yml"), nil
}

// InitConfig creates the config directory and file with default content
func InitConfig(force bool) error {
	configPath, err := GetConfigPath()
	if err != nil {
		return err
	}

	// Check if config already exists
	if _, err := os.Stat(configPath); err == nil && !force {
		return fmt.Errorf("config file already exists at %s (use --force to overwrite)", configPath)
	}

	return SaveConfig(Default())
}

// LoadConfig reads and parses the config file
func LoadConfig() (*Config, error) {
	configPath, err := GetConfigPath()
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	// A file without a services key keeps the compiled-in registry;
	// an explicit empty list stays empty.
	var present struct {
		Services *[]Service `yaml:"services"`
	}
	if err := yaml.Unmarshal(data, &present); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}
	if present.Services != nil {
		cfg.Services = *present.Services
	} else {
		cfg.Services = Default().Services
	}

	return cfg, nil
}

// SaveConfig writes the config back to the file
func SaveConfig(cfg *Config) error {
	configPath, err := GetConfigPath()
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(configPath), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	content := append([]byte("# Titan Operator Console configuration\n"), data...)
	if err := os.WriteFile(configPath, content, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// AddService adds a new service to the config
func (c *Config) AddService(service Service) error {
	// Check for duplicate names
	for _, s := range c.Services {
		if strings.EqualFold(s.Name, service.Name) {
			return fmt.Errorf("service with name '%s' already exists", service.Name)
		}
	}

	if _, err := monitor.NewService(service.Name, service.Icon, ResolveEnv(service.Endpoint), service.Description); err != nil {
		if strings.Contains(service.Endpoint, "$") {
			return fmt.Errorf("%w (environment variables in %q must be set)", err, service.Endpoint)
		}
		return err
	}

	c.Services = append(c.Services, service)
	return nil
}

// RemoveService removes a service by name from the config
func (c *Config) RemoveService(name string) error {
	for i, s := range c.Services {
		if strings.EqualFold(s.Name, name) {
			c.Services = append(c.Services[:i], c.Services[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("service '%s' not found", name)
}

// FindService looks a service up by name, ignoring case
func (c *Config) FindService(name string) (Service, bool) {
	for _, s := range c.Services {
		if strings.EqualFold(s.Name, name) {
			return s, true
		}
	}
	return Service{}, false
}

// Registry validates the configured services into a registry.
// Endpoints may reference environment variables.
func (c *Config) Registry() ([]monitor.Service, error) {
	defs := make([]monitor.Definition, len(c.Services))
	for i, s := range c.Services {
		defs[i] = monitor.Definition{
			Name:        s.Name,
			Icon:        s.Icon,
			Endpoint:    ResolveEnv(s.Endpoint),
			Description: s.Description,
		}
	}
	return monitor.NewRegistry(defs)
}

// Durations holds the parsed timing settings
type Durations struct {
	Timeout        time.Duration
	ConnectTimeout time.Duration
	WatchInterval  time.Duration
}

// ParseDurations parses and validates the duration strings
func (c *Config) ParseDurations() (Durations, error) {
	var d Durations
	var err error

	if d.Timeout, err = parsePositive("timeout", c.Timeout, DefaultTimeout); err != nil {
		return d, err
	}
	if d.ConnectTimeout, err = parsePositive("connect_timeout", c.ConnectTimeout, DefaultConnectTimeout); err != nil {
		return d, err
	}
	if d.WatchInterval, err = parsePositive("watch_interval", c.WatchInterval, DefaultWatchInterval); err != nil {
		return d, err
	}

	return d, nil
}

func parsePositive(field, value, fallback string) (time.Duration, error) {
	if value == "" {
		value = fallback
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		return 0, fmt.Errorf("invalid %s duration: %w", field, err)
	}
	if d <= 0 {
		return 0, fmt.Errorf("invalid %s duration: must be positive, got %s", field, value)
	}
	return d, nil
}

// ResolveEnv replaces environment variable placeholders with actual values
// Supports ${VAR_NAME} syntax
func ResolveEnv(value string) string {
	return os.ExpandEnv(value)
}
