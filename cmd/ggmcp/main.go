package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/n2ns/ggMCP4VSCode/internal/cache"
	"github.com/n2ns/ggMCP4VSCode/internal/config"
	"github.com/n2ns/ggMCP4VSCode/internal/pipeline"
	"github.com/n2ns/ggMCP4VSCode/internal/server"
	"github.com/n2ns/ggMCP4VSCode/internal/tools"
	"github.com/n2ns/ggMCP4VSCode/internal/workspace"
)

var (
	configPath  = flag.String("config", "", "Path to configuration file (JSON or YAML)")
	workRoot    = flag.String("workspace", "", "Workspace root directory to serve")
	host        = flag.String("host", "", "Host to bind the listener to")
	portRange   = flag.String("port-range", "", "Port scan range, e.g. 9960-9990 or a single port")
	showVersion = flag.Bool("version", false, "Show version information")
	debug       = flag.Bool("debug", false, "Enable debug logging")
	logLevel    = flag.String("log-level", "info", "Log level (debug, info, warn, error)")
)

func main() {
	flag.Parse()

	// Show version and exit
	if *showVersion {
		fmt.Printf("%s version %s\n", server.Name, server.Version)
		os.Exit(0)
	}

	// Load configuration
	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	// Setup logging
	setupLogging(cfg)

	log.Info().
		Str("version", server.Version).
		Str("workspace", cfg.Workspace.Root).
		Bool("debug", cfg.Debug).
		Msg("Starting workspace MCP server")

	// Create context for graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Setup signal handling for graceful shutdown
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM, syscall.SIGINT)

	go func() {
		sig := <-sigChan
		log.Info().Str("signal", sig.String()).Msg("Received shutdown signal")
		cancel()
	}()

	if err := run(ctx, cfg); err != nil {
		log.Error().Err(err).Msg("MCP server failed")
		os.Exit(1)
	}

	log.Info().Msg("Workspace MCP server stopped gracefully")
}

// loadConfig loads the configuration from file and environment
func loadConfig() (*config.Config, error) {
	var cfg *config.Config
	var err error

	if *configPath != "" {
		cfg, err = config.Load(*configPath)
	} else {
		// Try to load from environment only
		cfg, err = config.LoadFromEnvironment()
	}

	if err != nil {
		return nil, err
	}

	// Apply CLI flag overrides BEFORE validation
	if *workRoot != "" {
		cfg.Workspace.Root = *workRoot
	}
	if *host != "" {
		cfg.Server.Host = *host
	}
	if *portRange != "" {
		start, end, err := config.ParsePortRange(*portRange)
		if err != nil {
			return nil, err
		}
		cfg.Server.PortStart = start
		cfg.Server.PortEnd = end
	}
	if *debug {
		cfg.Debug = true
		// Auto-set log level to debug when --debug flag is used
		// (unless user explicitly set a different level)
		if *logLevel == "info" {
			cfg.LogLevel = "debug"
		}
	}
	if *logLevel != "info" {
		cfg.LogLevel = *logLevel
	}

	// Validate configuration AFTER applying CLI overrides
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

// setupLogging configures the global logger
func setupLogging(cfg *config.Config) {
	level := parseLogLevel(cfg.LogLevel)
	zerolog.SetGlobalLevel(level)

	if cfg.Debug {
		// Pretty logging for development
		log.Logger = log.Output(zerolog.ConsoleWriter{
			Out:        os.Stderr,
			TimeFormat: time.RFC3339,
		})
		log.Logger = log.Logger.With().Caller().Logger()
	} else {
		// JSON logging for production
		log.Logger = zerolog.New(os.Stderr).
			With().
			Timestamp().
			Logger()
	}
}

// parseLogLevel converts a string log level to zerolog.Level
func parseLogLevel(level string) zerolog.Level {
	switch level {
	case "debug":
		return zerolog.DebugLevel
	case "info":
		return zerolog.InfoLevel
	case "warn":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	default:
		return zerolog.InfoLevel
	}
}

// run wires the server together and serves until ctx is cancelled. All
// dependencies are constructed here once and handed down explicitly; nothing
// below this point reaches for globals.
func run(ctx context.Context, cfg *config.Config) error {
	ws, err := workspace.NewLocal(cfg.Workspace.Root, cfg.Workspace.EditorCommand)
	if err != nil {
		return fmt.Errorf("failed to open workspace: %w", err)
	}

	documents := cache.New(ws)

	registry := tools.NewRegistry()
	tools.RegisterAll(registry)

	// The breaker sits last so calls answered from cache or cancelled by an
	// earlier hook never count against a tool's failure budget.
	chain := pipeline.NewChain(
		pipeline.NewLoggingInterceptor(),
		pipeline.NewFileCacheInterceptor(documents, "get_file_text"),
		pipeline.NewBreakerInterceptor(pipeline.BreakerConfig{
			MaxRequests:  3,
			Interval:     10 * time.Second,
			Timeout:      time.Duration(cfg.Breaker.CooldownSeconds) * time.Second,
			MinRequests:  uint32(cfg.Breaker.MinRequests),
			FailureRatio: cfg.Breaker.FailureRatio,
		}),
	)

	dispatcher := server.NewDispatcher(registry, chain, ws, documents, server.Name, server.Version)
	srv := server.NewServer(cfg, ws, registry, dispatcher)

	errChan := make(chan error, 1)
	go func() {
		errChan <- srv.Start()
	}()

	select {
	case err := <-errChan:
		return err
	case <-ctx.Done():
	}

	log.Info().Msg("Shutting down MCP server...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
