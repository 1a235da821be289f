// Package main is the entry point for the executor daemon. It wires all
// dependencies using samber/do v2, attaches the configured transport, starts
// the HTTP server, and handles graceful shutdown on SIGINT/SIGTERM.
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	nethttp "net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	goredis "github.com/redis/go-redis/v9"
	"github.com/samber/do/v2"

	adapthttp "github.com/hopchain/hopchain/internal/adapters/http"
	"github.com/hopchain/hopchain/internal/adapters/http/handlers"
	"github.com/hopchain/hopchain/internal/adapters/http/middleware"

	"github.com/hopchain/hopchain/internal/adapters/invoker"
	"github.com/hopchain/hopchain/internal/adapters/transport/inproc"
	redistransport "github.com/hopchain/hopchain/internal/adapters/transport/redis"
	"github.com/hopchain/hopchain/internal/app"
	"github.com/hopchain/hopchain/internal/app/execctx"
	"github.com/hopchain/hopchain/internal/domain"
	"github.com/hopchain/hopchain/internal/platform/config"
	"github.com/hopchain/hopchain/internal/platform/health"
	"github.com/hopchain/hopchain/internal/platform/logging"
	"github.com/hopchain/hopchain/internal/platform/telemetry"
	"github.com/hopchain/hopchain/internal/ports"
	"github.com/hopchain/hopchain/internal/wire"

	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
)

const (
	serverShutdownTimeout   = 15 * time.Second
	listenerShutdownTimeout = 10 * time.Second
	otelShutdownTimeout     = 5 * time.Second
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	profile := os.Getenv("APP_PROFILE")
	if profile == "" {
		return errors.New("APP_PROFILE environment variable is required (e.g. local, dev, qa, prod)")
	}

	// Bootstrap: config, logger, telemetry.
	cfg, err := config.Load(profile)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	logger := logging.New(cfg.Log.Level, cfg.Log.Format, os.Stderr)

	ctx := context.Background()
	otel, err := initTelemetry(ctx, cfg)
	if err != nil {
		return fmt.Errorf("initializing telemetry: %w", err)
	}

	// DI container.
	injector := do.New()

	do.ProvideValue(injector, cfg)
	do.ProvideValue(injector, logger)
	do.ProvideValue(injector, otel.metrics)

	registerDependencies(injector, cfg, logger)

	// Resolve the server (eagerly wires the full graph).
	server, err := do.Invoke[*adapthttp.Server](injector)
	if err != nil {
		return fmt.Errorf("resolving server: %w", err)
	}

	executor := do.MustInvoke[ports.Executor](injector)
	registry := do.MustInvoke[ports.HealthRegistry](injector)

	// Attach the inbound side of the transport. The executor's inbound
	// handler must be in place before the first delivery can arrive.
	listenCtx, stopListener := context.WithCancel(ctx)
	defer stopListener()

	listenerDone := make(chan struct{})

	switch cfg.Transport.Kind {
	case config.TransportInproc:
		network := do.MustInvoke[*inproc.Network](injector)
		network.Attach(domain.DomainID(cfg.Domain.ID), executor.HandleInbound)
		close(listenerDone)
	case config.TransportRedis:
		transport := do.MustInvoke[*redistransport.Transport](injector)
		registry.Register(transport)
		go func() {
			defer close(listenerDone)
			if err := transport.Listen(listenCtx, executor.HandleInbound); err != nil &&
				!errors.Is(err, context.Canceled) {
				logger.Error("transport listener failed", slog.Any("error", err))
			}
		}()
	}

	logger.Info("executor daemon starting",
		slog.Uint64("domain", cfg.Domain.ID),
		slog.String("transport", cfg.Transport.Kind),
	)

	// Start server in background.
	serverErr := make(chan error, 1)
	go func() {
		serverErr <- server.Start()
	}()

	// Wait for shutdown signal or server error.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-quit:
		logger.Info("received shutdown signal", slog.String("signal", sig.String()))
	case err := <-serverErr:
		return fmt.Errorf("server failed: %w", err)
	}

	// Graceful shutdown: drain HTTP requests first so no new chains enter.
	shutdownCtx, cancel := context.WithTimeout(context.Background(), serverShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown error", slog.Any("error", err))
	}

	// Wait for Start() goroutine to return.
	<-serverErr

	// Stop the transport listener; let in-flight deliveries finish.
	stopListener()
	select {
	case <-listenerDone:
	case <-time.After(listenerShutdownTimeout):
		logger.Warn("transport listener did not stop in time")
	}
	switch cfg.Transport.Kind {
	case config.TransportInproc:
		do.MustInvoke[*inproc.Network](injector).Drain()
	case config.TransportRedis:
		if err := do.MustInvoke[*goredis.Client](injector).Close(); err != nil {
			logger.Error("redis client close error", slog.Any("error", err))
		}
	}

	// Flush telemetry.
	otelCtx, otelCancel := context.WithTimeout(context.Background(), otelShutdownTimeout)
	defer otelCancel()

	if err := otel.Shutdown(otelCtx); err != nil {
		logger.Error("telemetry shutdown error", slog.Any("error", err))
	}

	logger.Info("shutdown complete")
	return nil
}

// otelProviders bundles OpenTelemetry provider lifecycle. All fields are nil
// when telemetry is disabled.
type otelProviders struct {
	tracer  *sdktrace.TracerProvider
	meter   *sdkmetric.MeterProvider
	metrics *telemetry.Metrics
}

// Shutdown flushes both providers. Nil-safe.
func (o *otelProviders) Shutdown(ctx context.Context) error {
	var errs []error
	if o.tracer != nil {
		if err := o.tracer.Shutdown(ctx); err != nil {
			errs = append(errs, fmt.Errorf("tracer shutdown: %w", err))
		}
	}
	if o.meter != nil {
		if err := o.meter.Shutdown(ctx); err != nil {
			errs = append(errs, fmt.Errorf("meter shutdown: %w", err))
		}
	}
	return errors.Join(errs...)
}

func initTelemetry(ctx context.Context, cfg *config.Config) (*otelProviders, error) {
	if !cfg.Telemetry.Enabled {
		return &otelProviders{}, nil
	}

	tp, err := telemetry.InitTracer(ctx,
		cfg.Telemetry.ServiceName,
		cfg.Telemetry.Exporter,
		cfg.Telemetry.Endpoint,
	)
	if err != nil {
		return nil, fmt.Errorf("init tracer: %w", err)
	}

	mp, err := telemetry.InitMeter(ctx,
		cfg.Telemetry.ServiceName,
		cfg.Telemetry.Exporter,
		cfg.Telemetry.Endpoint,
	)
	if err != nil {
		_ = tp.Shutdown(ctx)
		return nil, fmt.Errorf("init meter: %w", err)
	}

	metrics, err := telemetry.NewMetrics(mp)
	if err != nil {
		_ = tp.Shutdown(ctx)
		_ = mp.Shutdown(ctx)
		return nil, fmt.Errorf("creating metrics: %w", err)
	}

	return &otelProviders{
		tracer:  tp,
		meter:   mp,
		metrics: metrics,
	}, nil
}

func registerDependencies(injector *do.RootScope, cfg *config.Config, logger *slog.Logger) {
	do.Provide(injector, func(_ do.Injector) (*wire.Codec, error) {
		return wire.New(cfg.Protocol.MaxBranchDepth), nil
	})

	do.Provide(injector, func(_ do.Injector) (*execctx.Store, error) {
		return execctx.NewStore(), nil
	})

	do.Provide(injector, func(_ do.Injector) (ports.TargetInvoker, error) {
		registry := invoker.New()
		if err := registerBuiltinTargets(registry, logger); err != nil {
			return nil, err
		}
		return registry, nil
	})

	do.Provide(injector, func(_ do.Injector) (*inproc.Network, error) {
		return inproc.NewNetwork(domain.Identity(cfg.Transport.Identity)), nil
	})

	do.Provide(injector, func(_ do.Injector) (*goredis.Client, error) {
		return goredis.NewClient(&goredis.Options{Addr: cfg.Transport.Redis.Addr}), nil
	})

	do.Provide(injector, func(i do.Injector) (*redistransport.Transport, error) {
		metrics := do.MustInvoke[*telemetry.Metrics](i)
		client := do.MustInvoke[*goredis.Client](i)
		return redistransport.New(&cfg.Transport, client,
			domain.Identity(cfg.Domain.ExecutorIdentity), domain.DomainID(cfg.Domain.ID), metrics, logger), nil
	})

	do.Provide(injector, func(i do.Injector) (ports.Transport, error) {
		switch cfg.Transport.Kind {
		case config.TransportInproc:
			network := do.MustInvoke[*inproc.Network](i)
			return inproc.NewEndpoint(network,
				domain.Identity(cfg.Domain.ExecutorIdentity), domain.DomainID(cfg.Domain.ID)), nil
		case config.TransportRedis:
			return do.MustInvoke[*redistransport.Transport](i), nil
		default:
			return nil, fmt.Errorf("unsupported transport kind %q", cfg.Transport.Kind)
		}
	})

	do.Provide(injector, func(_ do.Injector) (ports.DispatchObserver, error) {
		return app.NewLogObserver(logger), nil
	})

	do.Provide(injector, func(i do.Injector) (ports.Dispatcher, error) {
		codec := do.MustInvoke[*wire.Codec](i)
		inv := do.MustInvoke[ports.TargetInvoker](i)
		transport := do.MustInvoke[ports.Transport](i)
		observer := do.MustInvoke[ports.DispatchObserver](i)
		metrics := do.MustInvoke[*telemetry.Metrics](i)

		return app.NewDispatcher(app.DispatcherConfig{
			Domain:          domain.DomainID(cfg.Domain.ID),
			ExecutorAddress: domain.Address(cfg.Domain.ExecutorAddress),
		}, codec, inv, transport, observer, metrics, logger), nil
	})

	do.Provide(injector, func(i do.Injector) (ports.Executor, error) {
		codec := do.MustInvoke[*wire.Codec](i)
		transport := do.MustInvoke[ports.Transport](i)
		dispatcher := do.MustInvoke[ports.Dispatcher](i)
		inv := do.MustInvoke[ports.TargetInvoker](i)
		scope := do.MustInvoke[*execctx.Store](i)
		observer := do.MustInvoke[ports.DispatchObserver](i)
		metrics := do.MustInvoke[*telemetry.Metrics](i)

		return app.NewExecutor(app.ExecutorConfig{
			Domain:            domain.DomainID(cfg.Domain.ID),
			ExecutorAddress:   domain.Address(cfg.Domain.ExecutorAddress),
			ExecutorIdentity:  domain.Identity(cfg.Domain.ExecutorIdentity),
			TransportIdentity: domain.Identity(cfg.Transport.Identity),
		}, codec, transport, dispatcher, inv, scope, observer, metrics, logger), nil
	})

	do.Provide(injector, func(_ do.Injector) (ports.HealthRegistry, error) {
		return health.New(), nil
	})

	do.Provide(injector, func(i do.Injector) (*handlers.ChainHandler, error) {
		executor := do.MustInvoke[ports.Executor](i)
		codec := do.MustInvoke[*wire.Codec](i)
		return handlers.NewChainHandler(executor, codec), nil
	})

	do.Provide(injector, func(i do.Injector) (*handlers.HealthHandler, error) {
		registry := do.MustInvoke[ports.HealthRegistry](i)
		return handlers.NewHealthHandler(registry), nil
	})

	do.Provide(injector, func(i do.Injector) (nethttp.Handler, error) {
		chainH := do.MustInvoke[*handlers.ChainHandler](i)
		healthH := do.MustInvoke[*handlers.HealthHandler](i)
		metrics := do.MustInvoke[*telemetry.Metrics](i)

		return adapthttp.NewRouter(chainH, healthH,
			middleware.Compose(
				middleware.Recovery(logger),
				middleware.RequestID(),
				middleware.OpenTelemetry(metrics),
				middleware.Logging(logger),
				middleware.Timeout(cfg.Server.WriteTimeout),
			),
		), nil
	})

	do.Provide(injector, func(i do.Injector) (*adapthttp.Server, error) {
		handler := do.MustInvoke[nethttp.Handler](i)
		return adapthttp.NewServer(cfg.Server, handler, logger), nil
	})
}

// registerBuiltinTargets installs the targets every domain exposes out of
// the box. Embedding applications register their own targets alongside
// these before the daemon starts listening.
func registerBuiltinTargets(registry *invoker.Registry, logger *slog.Logger) error {
	err := registry.Register("system/log", func(ctx context.Context, payload []byte) error {
		initiator, _ := execctx.Initiator(ctx)
		logger.Info("log target invoked",
			slog.String("initiator", string(initiator)),
			slog.Int("payload_bytes", len(payload)),
		)
		return nil
	})
	if err != nil {
		return fmt.Errorf("registering builtin targets: %w", err)
	}
	return nil
}
