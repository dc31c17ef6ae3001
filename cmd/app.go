package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/davibonetto/titan-cli/internal/config"
	"github.com/davibonetto/titan-cli/internal/monitor"
)

// loadConfig reads the config file, falling back to the compiled-in defaults
func loadConfig() (*config.Config, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			logger.Debug("config not found, using defaults")
			return config.Default(), nil
		}
		return nil, fmt.Errorf("failed to load config: %w (run 'titan init' to create one)", err)
	}
	return cfg, nil
}

// healthStack holds everything a health command needs
type healthStack struct {
	cfg        *config.Config
	durations  config.Durations
	registry   []monitor.Service
	checker    *monitor.HTTPChecker
	aggregator *monitor.Aggregator
}

// buildHealthStack validates the configuration into a ready aggregator
func buildHealthStack() (*healthStack, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}

	durations, err := cfg.ParseDurations()
	if err != nil {
		return nil, err
	}

	registry, err := cfg.Registry()
	if err != nil {
		return nil, fmt.Errorf("invalid service registry: %w", err)
	}

	checker := monitor.NewHTTPChecker(monitor.HTTPOptions{
		Timeout:        durations.Timeout,
		ConnectTimeout: durations.ConnectTimeout,
		UserAgent:      cfg.UserAgent,
	})

	agg, err := monitor.NewAggregator(registry, checker, monitor.AggregatorConfig{
		Timeout:     durations.Timeout,
		Concurrency: cfg.Concurrency,
		Logger:      logger,
	})
	if err != nil {
		checker.Close()
		return nil, err
	}

	return &healthStack{
		cfg:        cfg,
		durations:  durations,
		registry:   registry,
		checker:    checker,
		aggregator: agg,
	}, nil
}

func (h *healthStack) Close() {
	h.checker.Close()
}
