// Package config loads and validates the board's settings. Layers apply in
// order: defaults, configs/base.yaml, configs/{profile}.yaml, APP_* env vars,
// then programmatic overrides.
package config

import "time"

// Confirm transport names.
const (
	TransportSimulated = "simulated"
	TransportRemote    = "remote"
)

// Config holds all configuration for the service.
type Config struct {
	Server     ServerConfig     `koanf:"server"`
	Log        LogConfig        `koanf:"log"`
	Store      StoreConfig      `koanf:"store"`
	Optimistic OptimisticConfig `koanf:"optimistic"`
	Confirm    ConfirmConfig    `koanf:"confirm"`
	// Client and Telemetry are checked only when in use.
	Client    ClientConfig    `koanf:"client" validate:"-"`
	Telemetry TelemetryConfig `koanf:"telemetry" validate:"-"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host            string        `koanf:"host"`
	Port            int           `koanf:"port" validate:"min=1,max=65535"`
	ReadTimeout     time.Duration `koanf:"read_timeout" validate:"gt=0s"`
	WriteTimeout    time.Duration `koanf:"write_timeout" validate:"gt=0s"`
	IdleTimeout     time.Duration `koanf:"idle_timeout"`
	ShutdownTimeout time.Duration `koanf:"shutdown_timeout"`
}

// LogConfig holds structured logging settings.
type LogConfig struct {
	Level  string `koanf:"level" validate:"loglevel"`
	Format string `koanf:"format" validate:"logformat"`
}

// StoreConfig holds entity store settings.
type StoreConfig struct {
	// Seed loads the sample board at startup.
	Seed bool `koanf:"seed"`
}

// OptimisticConfig holds settings for the confirmation dispatcher.
type OptimisticConfig struct {
	QueueSize      int           `koanf:"queue_size" validate:"min=1"`
	ConfirmTimeout time.Duration `koanf:"confirm_timeout" validate:"gt=0s"`
}

// ConfirmConfig selects and tunes the transport that confirms mutations.
type ConfirmConfig struct {
	Transport string `koanf:"transport" validate:"oneof=simulated remote"`

	// Delay and FailRate apply to the simulated transport only.
	Delay    time.Duration `koanf:"delay" validate:"gte=0s"`
	FailRate float64       `koanf:"fail_rate" validate:"gte=0,lte=1"`
}

// ClientConfig holds downstream HTTP client settings used by the remote
// confirm transport.
type ClientConfig struct {
	BaseURL        string               `koanf:"base_url" validate:"required,http_url"`
	Timeout        time.Duration        `koanf:"timeout" validate:"gt=0s"`
	Retry          RetryConfig          `koanf:"retry"`
	CircuitBreaker CircuitBreakerConfig `koanf:"circuit_breaker"`
	RateLimit      RateLimitConfig      `koanf:"rate_limit"`
}

// RetryConfig holds retry policy settings with exponential backoff.
type RetryConfig struct {
	MaxAttempts     int           `koanf:"max_attempts" validate:"min=1"`
	InitialInterval time.Duration `koanf:"initial_interval" validate:"gte=0s"`
	MaxInterval     time.Duration `koanf:"max_interval" validate:"gtefield=InitialInterval"`
	Multiplier      float64       `koanf:"multiplier" validate:"gt=0"`
}

// CircuitBreakerConfig holds circuit breaker settings.
type CircuitBreakerConfig struct {
	MaxFailures   int           `koanf:"max_failures" validate:"min=1"`
	Timeout       time.Duration `koanf:"timeout"`
	HalfOpenLimit int           `koanf:"half_open_limit"`
}

// RateLimitConfig holds outbound rate limiting settings. A zero
// RequestsPerSecond disables the limiter.
type RateLimitConfig struct {
	RequestsPerSecond float64 `koanf:"requests_per_second" validate:"gte=0"`
	// BurstSize must be at least 1 while the limiter is enabled.
	BurstSize int `koanf:"burst_size"`
}

// TelemetryConfig holds OpenTelemetry settings.
type TelemetryConfig struct {
	Enabled     bool   `koanf:"enabled"`
	Exporter    string `koanf:"exporter" validate:"oneof=stdout otlp"`
	Endpoint    string `koanf:"endpoint" validate:"required_if=Exporter otlp"`
	ServiceName string `koanf:"service_name" validate:"required"`
}
