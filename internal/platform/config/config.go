// Package config provides configuration loading and validation for the service.
// Configuration is loaded from YAML files with environment variable overrides
// using a layered system: defaults -> base.yaml -> {profile}.yaml -> env vars.
package config

import "time"

// Config holds all configuration for the executor daemon.
type Config struct {
	Server    ServerConfig    `koanf:"server"`
	Log       LogConfig       `koanf:"log"`
	Domain    DomainConfig    `koanf:"domain"`
	Transport TransportConfig `koanf:"transport"`
	Protocol  ProtocolConfig  `koanf:"protocol"`
	Telemetry TelemetryConfig `koanf:"telemetry"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host         string        `koanf:"host"`
	Port         int           `koanf:"port"`
	ReadTimeout  time.Duration `koanf:"read_timeout"`
	WriteTimeout time.Duration `koanf:"write_timeout"`
	IdleTimeout  time.Duration `koanf:"idle_timeout"`
}

// LogConfig holds structured logging settings.
type LogConfig struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
}

// DomainConfig identifies the local domain this executor serves and the
// well-known executor identity that peer domains authenticate against.
type DomainConfig struct {
	ID               uint64 `koanf:"id"`
	ExecutorAddress  string `koanf:"executor_address"`
	ExecutorIdentity string `koanf:"executor_identity"`
}

// Supported transport kinds.
const (
	TransportInproc = "inproc"
	TransportRedis  = "redis"
)

// TransportConfig holds cross-domain transport settings.
type TransportConfig struct {
	// Kind selects the transport adapter: "inproc" or "redis".
	Kind           string               `koanf:"kind"`
	Identity       string               `koanf:"identity"`
	Redis          RedisConfig          `koanf:"redis"`
	RateLimit      RateLimitConfig      `koanf:"rate_limit"`
	CircuitBreaker CircuitBreakerConfig `koanf:"circuit_breaker"`
}

// RedisConfig holds settings for the redis pub/sub transport.
type RedisConfig struct {
	Addr          string        `koanf:"addr"`
	ChannelPrefix string        `koanf:"channel_prefix"`
	SendTimeout   time.Duration `koanf:"send_timeout"`
}

// RateLimitConfig holds outbound send rate limiting settings.
type RateLimitConfig struct {
	RequestsPerSecond float64 `koanf:"requests_per_second"`
	Burst             int     `koanf:"burst"`
}

// CircuitBreakerConfig holds circuit breaker settings for outbound sends.
type CircuitBreakerConfig struct {
	MaxFailures   int           `koanf:"max_failures"`
	Timeout       time.Duration `koanf:"timeout"`
	HalfOpenLimit int           `koanf:"half_open_limit"`
}

// ProtocolConfig holds wire protocol settings.
type ProtocolConfig struct {
	// MaxBranchDepth bounds the static nesting of continuation branches a
	// record may carry. Zero selects the codec default.
	MaxBranchDepth int `koanf:"max_branch_depth"`
}

// TelemetryConfig holds OpenTelemetry settings.
type TelemetryConfig struct {
	Enabled     bool   `koanf:"enabled"`
	Exporter    string `koanf:"exporter"`
	Endpoint    string `koanf:"endpoint"`
	ServiceName string `koanf:"service_name"`
}
