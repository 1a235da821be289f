package config

import (
	"errors"
	"fmt"
)

// Validate checks all configuration values and returns aggregated errors.
func (c *Config) Validate() error {
	return errors.Join(
		c.Server.validate(),
		c.Log.validate(),
		c.Domain.validate(),
		c.Transport.validate(),
		c.Protocol.validate(),
		c.Telemetry.validate(),
	)
}

func (s *ServerConfig) validate() error {
	var errs []error

	if s.Port < 1 || s.Port > 65535 {
		errs = append(errs, fmt.Errorf("server.port must be between 1 and 65535, got %d", s.Port))
	}
	if s.ReadTimeout <= 0 {
		errs = append(errs, errors.New("server.read_timeout must be positive"))
	}
	if s.WriteTimeout <= 0 {
		errs = append(errs, errors.New("server.write_timeout must be positive"))
	}

	return errors.Join(errs...)
}

func (l *LogConfig) validate() error {
	var errs []error

	switch l.Level {
	case "debug", "info", "warn", "error":
		// Valid levels.
	default:
		errs = append(errs, fmt.Errorf("log.level must be one of: debug, info, warn, error; got %q", l.Level))
	}

	switch l.Format {
	case "json", "text":
		// Valid formats.
	default:
		errs = append(errs, fmt.Errorf("log.format must be one of: json, text; got %q", l.Format))
	}

	return errors.Join(errs...)
}

func (d *DomainConfig) validate() error {
	var errs []error

	if d.ID == 0 {
		errs = append(errs, errors.New("domain.id must be non-zero"))
	}
	if d.ExecutorAddress == "" {
		errs = append(errs, errors.New("domain.executor_address must not be empty"))
	}
	if d.ExecutorIdentity == "" {
		errs = append(errs, errors.New("domain.executor_identity must not be empty"))
	}

	return errors.Join(errs...)
}

func (t *TransportConfig) validate() error {
	var errs []error

	switch t.Kind {
	case TransportInproc, TransportRedis:
		// Valid kinds.
	default:
		errs = append(errs, fmt.Errorf("transport.kind must be one of: inproc, redis; got %q", t.Kind))
	}

	if t.Identity == "" {
		errs = append(errs, errors.New("transport.identity must not be empty"))
	}

	if t.Kind == TransportRedis {
		if t.Redis.Addr == "" {
			errs = append(errs, errors.New("transport.redis.addr must not be empty"))
		}
		if t.Redis.ChannelPrefix == "" {
			errs = append(errs, errors.New("transport.redis.channel_prefix must not be empty"))
		}
		if t.Redis.SendTimeout <= 0 {
			errs = append(errs, errors.New("transport.redis.send_timeout must be positive"))
		}
	}

	if t.RateLimit.RequestsPerSecond <= 0 {
		errs = append(errs, fmt.Errorf("transport.rate_limit.requests_per_second must be positive, got %f",
			t.RateLimit.RequestsPerSecond))
	}
	if t.RateLimit.Burst < 1 {
		errs = append(errs, fmt.Errorf("transport.rate_limit.burst must be >= 1, got %d", t.RateLimit.Burst))
	}
	if t.CircuitBreaker.MaxFailures < 1 {
		errs = append(errs, fmt.Errorf("transport.circuit_breaker.max_failures must be >= 1, got %d",
			t.CircuitBreaker.MaxFailures))
	}

	return errors.Join(errs...)
}

func (p *ProtocolConfig) validate() error {
	if p.MaxBranchDepth < 0 {
		return fmt.Errorf("protocol.max_branch_depth must not be negative, got %d", p.MaxBranchDepth)
	}
	return nil
}

func (t *TelemetryConfig) validate() error {
	if !t.Enabled {
		return nil
	}

	var errs []error

	switch t.Exporter {
	case "stdout", "otlp":
		// Valid exporters.
	default:
		errs = append(errs, fmt.Errorf("telemetry.exporter must be one of: stdout, otlp; got %q", t.Exporter))
	}

	if t.Exporter == "otlp" && t.Endpoint == "" {
		errs = append(errs, errors.New("telemetry.endpoint must not be empty when exporter is otlp"))
	}

	return errors.Join(errs...)
}
