package config

const (
	defaultServerPort = 8080

	defaultRateLimitRPS   = 50.0
	defaultRateLimitBurst = 100

	defaultCircuitBreakerMaxFailures = 5
	defaultCircuitBreakerHalfOpen    = 1
)

// defaults returns the default configuration values.
// These are loaded first and can be overridden by base.yaml, profile YAML, and env vars.
func defaults() map[string]any {
	return map[string]any{
		"server.host":          "0.0.0.0",
		"server.port":          defaultServerPort,
		"server.read_timeout":  "5s",
		"server.write_timeout": "10s",
		"server.idle_timeout":  "120s",

		"log.level":  "info",
		"log.format": "json",

		"domain.id":                1,
		"domain.executor_address":  "executor",
		"domain.executor_identity": "executor",

		"transport.kind":                            "inproc",
		"transport.identity":                        "transport",
		"transport.redis.addr":                      "localhost:6379",
		"transport.redis.channel_prefix":            "hopchain:domain:",
		"transport.redis.send_timeout":              "5s",
		"transport.rate_limit.requests_per_second":  defaultRateLimitRPS,
		"transport.rate_limit.burst":                defaultRateLimitBurst,
		"transport.circuit_breaker.max_failures":    defaultCircuitBreakerMaxFailures,
		"transport.circuit_breaker.timeout":         "30s",
		"transport.circuit_breaker.half_open_limit": defaultCircuitBreakerHalfOpen,

		"protocol.max_branch_depth": 16,

		"telemetry.enabled":  false,
		"telemetry.exporter": "stdout",
		"telemetry.endpoint": "",
	}
}
