package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/davibonetto/titan-cli/internal/monitor"
)

func TestConfigOperations(t *testing.T) {
	// Setup temp home dir
	tmpHome := t.TempDir()
	t.Setenv("HOME", tmpHome)
	t.Setenv(EnvConfigPath, "")

	// Test InitConfig
	if err := InitConfig(false); err != nil {
		t.Errorf("InitConfig failed: %v", err)
	}

	// Verify file exists
	configPath := filepath.Join(tmpHome, ".config", "titan", "config.yml")
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		t.Error("Config file was not created")
	}

	// A second init without force must fail
	if err := InitConfig(false); err == nil {
		t.Error("Expected InitConfig to refuse overwriting without force")
	}

	// Test LoadConfig
	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}
	if len(cfg.Services) != 5 { // Default config has the five compiled-in services
		t.Errorf("Expected 5 services, got %d", len(cfg.Services))
	}

	// Test AddService
	newService := Service{
		Name:        "ATLAS",
		Endpoint:    "http://localhost:9000/health",
		Description: "Storage",
	}
	if err := cfg.AddService(newService); err != nil {
		t.Errorf("AddService failed: %v", err)
	}
	if err := cfg.AddService(newService); err == nil {
		t.Error("Expected duplicate AddService to fail")
	}
	if err := cfg.AddService(Service{Name: "BROKEN", Endpoint: "not a url"}); !errors.Is(err, monitor.ErrInvalidEndpoint) {
		t.Errorf("Expected ErrInvalidEndpoint, got %v", err)
	}

	// Test SaveConfig
	if err := SaveConfig(cfg); err != nil {
		t.Errorf("SaveConfig failed: %v", err)
	}

	// Reload and verify
	cfg2, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}
	if len(cfg2.Services) != 6 {
		t.Errorf("Expected 6 services after reload, got %d", len(cfg2.Services))
	}
	if _, ok := cfg2.FindService("atlas"); !ok {
		t.Error("Expected to find ATLAS case-insensitively")
	}

	// Test RemoveService
	if err := cfg2.RemoveService("atlas"); err != nil {
		t.Errorf("RemoveService failed: %v", err)
	}
	if len(cfg2.Services) != 5 {
		t.Errorf("Expected 5 services after remove, got %d", len(cfg2.Services))
	}
	if err := cfg2.RemoveService("atlas"); err == nil {
		t.Error("Expected removing a missing service to fail")
	}
}

func TestLoadConfigMissingFile(t *testing.T) {
	t.Setenv(EnvConfigPath, filepath.Join(t.TempDir(), "missing.yml"))

	_, err := LoadConfig()
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("Expected os.ErrNotExist, got %v", err)
	}
}

func TestLoadConfigPartialFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yml")
	t.Setenv(EnvConfigPath, path)

	if err := os.WriteFile(path, []byte("timeout: 2s\n"), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}
	if len(cfg.Services) != 5 {
		t.Errorf("Expected default registry, got %d services", len(cfg.Services))
	}

	d, err := cfg.ParseDurations()
	if err != nil {
		t.Fatalf("ParseDurations failed: %v", err)
	}
	if d.Timeout != 2*time.Second {
		t.Errorf("Expected 2s timeout, got %s", d.Timeout)
	}
	if d.ConnectTimeout != 3*time.Second {
		t.Errorf("Expected default 3s connect timeout, got %s", d.ConnectTimeout)
	}
}

func TestParseDurationsRejectsNonPositive(t *testing.T) {
	cfg := Default()
	cfg.Timeout = "0s"
	if _, err := cfg.ParseDurations(); err == nil {
		t.Error("Expected zero timeout to be rejected")
	}

	cfg.Timeout = "soon"
	if _, err := cfg.ParseDurations(); err == nil {
		t.Error("Expected unparseable timeout to be rejected")
	}
}

func TestRegistry(t *testing.T) {
	t.Setenv("VORTEX_URL", "http://vortex.internal:8000/health")

	cfg := Default()
	cfg.Services[3].Endpoint = "${VORTEX_URL}"

	registry, err := cfg.Registry()
	if err != nil {
		t.Fatalf("Registry failed: %v", err)
	}
	if registry[3].URL() != "http://vortex.internal:8000/health" {
		t.Errorf("Expected expanded endpoint, got %s", registry[3].URL())
	}

	cfg.Services[0].Endpoint = "cerberus"
	if _, err := cfg.Registry(); !errors.Is(err, monitor.ErrInvalidEndpoint) {
		t.Errorf("Expected ErrInvalidEndpoint, got %v", err)
	}
}

func TestResolveEnv(t *testing.T) {
	t.Setenv("TEST_VAR", "world")

	val := ResolveEnv("hello ${TEST_VAR}")
	if val != "hello world" {
		t.Errorf("Expected 'hello world', got '%s'", val)
	}
}

func TestLoadConfigEmptyServices(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yml")
	t.Setenv(EnvConfigPath, path)

	cfg := Default()
	for _, s := range Default().Services {
		if err := cfg.RemoveService(s.Name); err != nil {
			t.Fatalf("RemoveService failed: %v", err)
		}
	}
	if err := SaveConfig(cfg); err != nil {
		t.Fatalf("SaveConfig failed: %v", err)
	}

	reloaded, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}
	if len(reloaded.Services) != 0 {
		t.Errorf("Expected an empty registry to stay empty, got %d services", len(reloaded.Services))
	}
}
