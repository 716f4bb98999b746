package config

// Config holds all configuration for the workspace MCP server
type Config struct {
	Server    ServerConfig    `json:"server" yaml:"server"`
	Workspace WorkspaceConfig `json:"workspace" yaml:"workspace"`
	Breaker   BreakerConfig   `json:"breaker" yaml:"breaker"`
	Debug     bool            `json:"debug" yaml:"debug"`
	LogLevel  string          `json:"logLevel" yaml:"logLevel"`
}

// ServerConfig describes the HTTP listener
type ServerConfig struct {
	Host string `json:"host" yaml:"host"`
	// The listener binds the first free port in [PortStart, PortEnd].
	PortStart      int      `json:"portStart" yaml:"portStart"`
	PortEnd        int      `json:"portEnd" yaml:"portEnd"`
	AllowedOrigins []string `json:"allowedOrigins" yaml:"allowedOrigins"`
}

// WorkspaceConfig defines the directory served to clients
type WorkspaceConfig struct {
	Root string `json:"root" yaml:"root"`
	// EditorCommand is the command prefix used to reveal files in an
	// editor; the file path is appended. Empty disables editor opens.
	EditorCommand []string `json:"editorCommand,omitempty" yaml:"editorCommand,omitempty"`
}

// BreakerConfig tunes the per-tool circuit breaker
type BreakerConfig struct {
	MinRequests     int     `json:"minRequests" yaml:"minRequests"`
	FailureRatio    float64 `json:"failureRatio" yaml:"failureRatio"`
	CooldownSeconds int     `json:"cooldownSeconds" yaml:"cooldownSeconds"`
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if c.Workspace.Root == "" {
		return ErrMissingWorkspaceRoot
	}

	if err := c.Server.Validate(); err != nil {
		return err
	}

	return c.Breaker.Validate()
}

// Validate checks if the listener configuration is valid
func (s *ServerConfig) Validate() error {
	if s.Host == "" {
		return ErrMissingHost
	}
	if s.PortStart < 1 || s.PortEnd > 65535 || s.PortStart > s.PortEnd {
		return ErrInvalidPortRange
	}
	return nil
}

// Validate checks if the breaker configuration is valid
func (b *BreakerConfig) Validate() error {
	if b.MinRequests < 1 {
		return ErrInvalidBreakerMinRequests
	}
	if b.FailureRatio <= 0 || b.FailureRatio > 1 {
		return ErrInvalidBreakerRatio
	}
	if b.CooldownSeconds < 1 {
		return ErrInvalidBreakerCooldown
	}
	return nil
}

// DefaultConfig returns a configuration with sensible defaults
func DefaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Host:           "127.0.0.1",
			PortStart:      9960,
			PortEnd:        9990,
			AllowedOrigins: []string{},
		},
		Workspace: WorkspaceConfig{
			Root: ".",
		},
		Breaker: BreakerConfig{
			MinRequests:     5,
			FailureRatio:    0.6,
			CooldownSeconds: 30,
		},
		Debug:    false,
		LogLevel: "info",
	}
}
