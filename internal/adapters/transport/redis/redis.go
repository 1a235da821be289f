// Package redis provides a cross-domain transport over redis pub/sub. Each
// domain owns one channel; Send publishes an identity-stamped envelope to the
// target domain's channel and Listen consumes the local domain's channel.
//
// Outbound publishes pass through a circuit breaker and rate limiter:
//
//	Circuit Breaker → Rate Limiter → Envelope Encode → PUBLISH
//
// Construction:
//
//	tr := redistransport.New(&cfg.Transport, client, sender, localDomain, metrics, logger)
package redis

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"strconv"
	"time"

	"github.com/fxamacker/cbor/v2"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/sony/gobreaker/v2"
	"golang.org/x/time/rate"

	"github.com/hopchain/hopchain/internal/domain"
	"github.com/hopchain/hopchain/internal/platform/config"
	"github.com/hopchain/hopchain/internal/platform/telemetry"
	"github.com/hopchain/hopchain/internal/ports"
)

// Compile-time interface check.
var _ ports.Transport = (*Transport)(nil)

// envelope is the pub/sub message format. The transport stamps Sender and
// Domain from its own configuration; a subscriber authenticates them before
// acting on the record.
type envelope struct {
	MessageID string `cbor:"1,keyasint"`
	Sender    string `cbor:"2,keyasint"`
	Domain    uint64 `cbor:"3,keyasint"`
	Target    string `cbor:"4,keyasint"`
	Record    []byte `cbor:"5,keyasint"`
}

// Transport moves encoded records between domains over redis pub/sub.
type Transport struct {
	client      *redis.Client
	identity    domain.Identity
	sender      domain.Identity
	local       domain.DomainID
	prefix      string
	sendTimeout time.Duration
	breaker     *gobreaker.CircuitBreaker[struct{}]
	limiter     *rate.Limiter
	metrics     *telemetry.Metrics
	logger      *slog.Logger
}

// New creates a redis transport that publishes as the given sender identity
// from the given local domain. Deliveries produced by Listen carry the
// configured transport identity. If metrics is nil, metric recording is
// skipped.
func New(cfg *config.TransportConfig, client *redis.Client, sender domain.Identity,
	local domain.DomainID, metrics *telemetry.Metrics, logger *slog.Logger,
) *Transport {
	cb := gobreaker.NewCircuitBreaker[struct{}](gobreaker.Settings{
		Name:        "redis-transport",
		MaxRequests: toUint32(cfg.CircuitBreaker.HalfOpenLimit),
		Timeout:     cfg.CircuitBreaker.Timeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return int(counts.ConsecutiveFailures) >= cfg.CircuitBreaker.MaxFailures
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logger.Warn("circuit breaker state change",
				slog.String("breaker", name),
				slog.String("from", from.String()),
				slog.String("to", to.String()),
			)
		},
	})

	var limiter *rate.Limiter
	if cfg.RateLimit.RequestsPerSecond > 0 {
		limiter = rate.NewLimiter(rate.Limit(cfg.RateLimit.RequestsPerSecond), cfg.RateLimit.Burst)
	}

	return &Transport{
		client:      client,
		identity:    domain.Identity(cfg.Identity),
		sender:      sender,
		local:       local,
		prefix:      cfg.Redis.ChannelPrefix,
		sendTimeout: cfg.Redis.SendTimeout,
		breaker:     cb,
		limiter:     limiter,
		metrics:     metrics,
		logger:      logger,
	}
}

// Send publishes an encoded record to the target domain's channel. A nil
// return means redis accepted the publish; whether any executor consumed it
// is not reported back. Circuit-open rejections surface as
// domain.ErrUnavailable.
func (t *Transport) Send(ctx context.Context, target domain.DomainID, addr domain.Address, record []byte) error {
	_, err := t.breaker.Execute(func() (struct{}, error) {
		if err := t.waitForRateLimit(ctx); err != nil {
			return struct{}{}, err
		}

		env := envelope{
			MessageID: uuid.NewString(),
			Sender:    string(t.sender),
			Domain:    uint64(t.local),
			Target:    string(addr),
			Record:    record,
		}
		payload, err := cbor.Marshal(env)
		if err != nil {
			return struct{}{}, fmt.Errorf("encoding envelope: %w", err)
		}

		pubCtx, cancel := context.WithTimeout(ctx, t.sendTimeout)
		defer cancel()

		if err := t.client.Publish(pubCtx, t.channel(target), payload).Err(); err != nil {
			return struct{}{}, fmt.Errorf("publishing to domain %d: %w", target, err)
		}
		return struct{}{}, nil
	})

	if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
		err = fmt.Errorf("%w: %v", domain.ErrUnavailable, err)
	}

	t.recordSend(ctx, target, err)

	return err
}

// Listen subscribes to the local domain's channel and feeds each delivery to
// the handler. It blocks until ctx is canceled or the subscription closes.
// Handler failures are logged and do not stop the loop.
func (t *Transport) Listen(ctx context.Context, handler ports.InboundHandler) error {
	sub := t.client.Subscribe(ctx, t.channel(t.local))
	defer sub.Close()

	// Block until the subscription is confirmed so callers can rely on
	// deliveries after Listen returns control to the scheduler.
	if _, err := sub.Receive(ctx); err != nil {
		return fmt.Errorf("subscribing to %s: %w", t.channel(t.local), err)
	}

	ch := sub.Channel()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case msg, ok := <-ch:
			if !ok {
				return nil
			}
			t.handleMessage(ctx, handler, msg)
		}
	}
}

// handleMessage decodes one pub/sub message and hands it to the inbound
// handler. Malformed envelopes are logged and dropped; there is no sender to
// report back to.
func (t *Transport) handleMessage(ctx context.Context, handler ports.InboundHandler, msg *redis.Message) {
	var env envelope
	if err := cbor.Unmarshal([]byte(msg.Payload), &env); err != nil {
		t.logger.WarnContext(ctx, "dropping malformed transport envelope",
			slog.String("channel", msg.Channel),
			slog.Any("error", err),
		)
		return
	}

	d := domain.Delivery{
		Transport: t.identity,
		Origin: domain.Origin{
			Sender: domain.Identity(env.Sender),
			Domain: domain.DomainID(env.Domain),
		},
		MessageID: env.MessageID,
		Record:    env.Record,
	}

	if err := handler(ctx, d); err != nil {
		t.logger.WarnContext(ctx, "inbound delivery rejected",
			slog.String("message_id", env.MessageID),
			slog.String("origin_sender", env.Sender),
			slog.Uint64("origin_domain", env.Domain),
			slog.Any("error", err),
		)
	}
}

// Name identifies this transport in the health registry.
func (t *Transport) Name() string {
	return "redis"
}

// HealthCheck pings redis to verify connectivity.
func (t *Transport) HealthCheck(ctx context.Context) error {
	if err := t.client.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("redis ping: %w", err)
	}
	return nil
}

// channel returns the pub/sub channel name for a domain.
func (t *Transport) channel(id domain.DomainID) string {
	return t.prefix + strconv.FormatUint(uint64(id), 10)
}

// waitForRateLimit blocks until the rate limiter allows the publish or the
// context is canceled. Returns nil immediately when rate limiting is disabled.
func (t *Transport) waitForRateLimit(ctx context.Context) error {
	if t.limiter == nil {
		return nil
	}
	return t.limiter.Wait(ctx)
}

// recordSend records the outbound publish count metric. Safe to call with
// nil metrics.
func (t *Transport) recordSend(ctx context.Context, target domain.DomainID, err error) {
	if t.metrics == nil {
		return
	}
	t.metrics.TransportSendTotal.Add(ctx, 1,
		telemetry.DispatchAttrs(uint64(target), false),
		telemetry.ResultAttrs(err == nil),
	)
}

// toUint32 safely converts a non-negative int to uint32, clamping at the
// uint32 maximum. Negative values are treated as zero.
func toUint32(v int) uint32 {
	if v <= 0 {
		return 0
	}
	if v > math.MaxUint32 {
		return math.MaxUint32
	}
	return uint32(v)
}
