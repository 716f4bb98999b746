package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// Load loads configuration from a file path and applies environment variable overrides
// Validation is deferred to allow CLI flag overrides to be applied first
func Load(configPath string) (*Config, error) {
	// Start with default config
	cfg := DefaultConfig()

	// If config path is provided, load from file on top of the defaults
	if configPath != "" {
		if err := loadFromFile(configPath, cfg); err != nil {
			return nil, fmt.Errorf("failed to load config from file: %w", err)
		}
	}

	// Apply environment variable overrides
	applyEnvironmentOverrides(cfg)

	// Note: Validation is NOT performed here to allow CLI flags to override
	// Call cfg.Validate() after applying CLI overrides in the caller

	return cfg, nil
}

// LoadFromEnvironment creates a configuration using only environment variables
// Validation is deferred to allow CLI flag overrides to be applied first
func LoadFromEnvironment() (*Config, error) {
	cfg := DefaultConfig()
	applyEnvironmentOverrides(cfg)

	return cfg, nil
}

// loadFromFile unmarshals a JSON or YAML file over cfg, so file values
// override defaults and absent keys keep them.
func loadFromFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return ErrConfigFileNotFound
		}
		return fmt.Errorf("failed to read config file: %w", err)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return fmt.Errorf("%w: %v", ErrInvalidConfigFormat, err)
		}
	default:
		if err := json.Unmarshal(data, cfg); err != nil {
			return fmt.Errorf("%w: %v", ErrInvalidConfigFormat, err)
		}
	}

	return nil
}

// applyEnvironmentOverrides applies configuration from environment variables
func applyEnvironmentOverrides(cfg *Config) {
	// Listener host
	if host := os.Getenv("GGMCP_HOST"); host != "" {
		cfg.Server.Host = host
	}

	// Port scan range, e.g. "9960-9990" or a single port
	if portRange := os.Getenv("GGMCP_PORT_RANGE"); portRange != "" {
		if start, end, err := ParsePortRange(portRange); err == nil {
			cfg.Server.PortStart = start
			cfg.Server.PortEnd = end
		}
	}

	// Workspace root
	if root := os.Getenv("GGMCP_WORKSPACE_ROOT"); root != "" {
		cfg.Workspace.Root = root
	}

	// Editor command (space-separated)
	if editorCmd := os.Getenv("GGMCP_EDITOR_COMMAND"); editorCmd != "" {
		cfg.Workspace.EditorCommand = strings.Fields(editorCmd)
	}

	// Allowed origins (comma-separated list)
	if allowedOrigins := os.Getenv("GGMCP_ALLOWED_ORIGINS"); allowedOrigins != "" {
		origins := strings.Split(allowedOrigins, ",")
		cfg.Server.AllowedOrigins = make([]string, 0, len(origins))
		for _, origin := range origins {
			trimmed := strings.TrimSpace(origin)
			if trimmed != "" {
				cfg.Server.AllowedOrigins = append(cfg.Server.AllowedOrigins, trimmed)
			}
		}
	}

	// Debug mode
	if debug := os.Getenv("GGMCP_DEBUG"); debug == "true" || debug == "1" {
		cfg.Debug = true
	}

	// Log level
	if logLevel := os.Getenv("GGMCP_LOG_LEVEL"); logLevel != "" {
		cfg.LogLevel = logLevel
	}
}

// ParsePortRange parses "start-end" or a single port into the scan bounds.
func ParsePortRange(s string) (int, int, error) {
	s = strings.TrimSpace(s)

	if start, end, ok := strings.Cut(s, "-"); ok {
		lo, err := strconv.Atoi(strings.TrimSpace(start))
		if err != nil {
			return 0, 0, fmt.Errorf("invalid port range %q: %w", s, err)
		}
		hi, err := strconv.Atoi(strings.TrimSpace(end))
		if err != nil {
			return 0, 0, fmt.Errorf("invalid port range %q: %w", s, err)
		}
		if lo < 1 || hi > 65535 || lo > hi {
			return 0, 0, fmt.Errorf("invalid port range %q: %w", s, ErrInvalidPortRange)
		}
		return lo, hi, nil
	}

	port, err := strconv.Atoi(s)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid port %q: %w", s, err)
	}
	if port < 1 || port > 65535 {
		return 0, 0, fmt.Errorf("invalid port %q: %w", s, ErrInvalidPortRange)
	}
	return port, port, nil
}
