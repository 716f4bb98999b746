package config

import "errors"

var (
	// ErrMissingWorkspaceRoot indicates that no workspace directory is configured
	ErrMissingWorkspaceRoot = errors.New("workspace.root is required in configuration")

	// ErrMissingHost indicates that the listener host is empty
	ErrMissingHost = errors.New("server.host is required in configuration")

	// ErrInvalidPortRange indicates that the port scan range is not usable
	ErrInvalidPortRange = errors.New("server port range must satisfy 1 <= portStart <= portEnd <= 65535")

	// ErrInvalidBreakerMinRequests indicates a breaker threshold below one request
	ErrInvalidBreakerMinRequests = errors.New("breaker.minRequests must be at least 1")

	// ErrInvalidBreakerRatio indicates a failure ratio outside (0, 1]
	ErrInvalidBreakerRatio = errors.New("breaker.failureRatio must be greater than 0 and at most 1")

	// ErrInvalidBreakerCooldown indicates a cooldown below one second
	ErrInvalidBreakerCooldown = errors.New("breaker.cooldownSeconds must be at least 1")

	// ErrConfigFileNotFound indicates that the config file was not found
	ErrConfigFileNotFound = errors.New("configuration file not found")

	// ErrInvalidConfigFormat indicates that the config file could not be parsed
	ErrInvalidConfigFormat = errors.New("invalid configuration file format")
)
