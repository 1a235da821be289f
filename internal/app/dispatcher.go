// Package app implements the protocol core: the Dispatcher, which decides
// execution locality for one action record, and the Executor, the state
// machine behind the entry and inbound-handling operations. Services here
// coordinate ports and contain no transport or invocation mechanics of
// their own.
package app

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/hopchain/hopchain/internal/domain"
	"github.com/hopchain/hopchain/internal/platform/telemetry"
	"github.com/hopchain/hopchain/internal/ports"
	"github.com/hopchain/hopchain/internal/wire"
)

// Compile-time check that Dispatcher implements ports.Dispatcher.
var _ ports.Dispatcher = (*Dispatcher)(nil)

// DispatcherConfig carries the domain-scoped values the dispatcher needs:
// which domain it runs in, and the well-known address sibling executors
// listen on in every domain.
type DispatcherConfig struct {
	Domain          domain.DomainID
	ExecutorAddress domain.Address
}

// Dispatcher implements ports.Dispatcher. A record targeting the local
// domain is invoked in place; anything else is encoded and handed to the
// transport, fire and forget.
type Dispatcher struct {
	cfg       DispatcherConfig
	codec     *wire.Codec
	invoker   ports.TargetInvoker
	transport ports.Transport
	observer  ports.DispatchObserver
	metrics   *telemetry.Metrics
	logger    *slog.Logger
}

// NewDispatcher creates a Dispatcher. A nil observer disables event
// emission; a nil metrics disables metric recording; a nil logger discards
// logs.
func NewDispatcher(
	cfg DispatcherConfig,
	codec *wire.Codec,
	invoker ports.TargetInvoker,
	transport ports.Transport,
	observer ports.DispatchObserver,
	metrics *telemetry.Metrics,
	logger *slog.Logger,
) *Dispatcher {
	if observer == nil {
		observer = NopObserver{}
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Dispatcher{
		cfg:       cfg,
		codec:     codec,
		invoker:   invoker,
		transport: transport,
		observer:  observer,
		metrics:   metrics,
		logger:    logger,
	}
}

// Dispatch decides execution locality for rec and performs the dispatch.
// Local target failure is fatal to this dispatch path and reported as
// domain.ErrLocalCallFailed. Remote dispatch returns once the transport has
// accepted the hand-off; it never waits for the remote step to run.
func (d *Dispatcher) Dispatch(ctx context.Context, rec domain.ActionRecord) error {
	local := rec.TargetDomain == d.cfg.Domain

	d.observer.ObserveDispatch(ctx, domain.DispatchEvent{
		TargetDomain: rec.TargetDomain,
		Target:       rec.Target,
		Local:        local,
	})
	d.recordDispatch(ctx, rec.TargetDomain, local)

	if local {
		if err := d.invoker.Invoke(ctx, rec.Target, rec.Payload); err != nil {
			d.logger.ErrorContext(ctx, "local dispatch failed",
				slog.String("operation", "Dispatch"),
				slog.String("target", string(rec.Target)),
				slog.Any("error", err),
			)
			return fmt.Errorf("%w: invoking %s: %v", domain.ErrLocalCallFailed, rec.Target, err)
		}
		return nil
	}

	encoded, err := d.codec.Encode(rec)
	if err != nil {
		return err
	}

	if err := d.transport.Send(ctx, rec.TargetDomain, d.cfg.ExecutorAddress, encoded); err != nil {
		d.logger.ErrorContext(ctx, "transport hand-off failed",
			slog.String("operation", "Dispatch"),
			slog.Uint64("target_domain", uint64(rec.TargetDomain)),
			slog.Any("error", err),
		)
		return fmt.Errorf("handing off to transport: %w", err)
	}

	d.logger.InfoContext(ctx, "record handed to transport",
		slog.Uint64("target_domain", uint64(rec.TargetDomain)),
		slog.String("target", string(rec.Target)),
	)
	return nil
}

// ProcessBranch dispatches the continuation encoded in branch, forcing the
// child's initiator to the parent's. An empty branch means "do nothing on
// this outcome" and is not an error.
func (d *Dispatcher) ProcessBranch(ctx context.Context, initiator domain.Identity, branch []byte) error {
	if len(branch) == 0 {
		return nil
	}

	child, err := d.codec.Decode(branch)
	if err != nil {
		d.logger.ErrorContext(ctx, "branch does not decode",
			slog.String("operation", "ProcessBranch"),
			slog.Any("error", err),
		)
		return err
	}

	// Branch payloads cannot spoof identity: whatever the encoded branch
	// claimed, the chain's initiator wins.
	child.Initiator = initiator

	return d.Dispatch(ctx, child)
}

func (d *Dispatcher) recordDispatch(ctx context.Context, target domain.DomainID, local bool) {
	if d.metrics == nil {
		return
	}
	d.metrics.DispatchTotal.Add(ctx, 1, telemetry.DispatchAttrs(uint64(target), local))
}
