package app

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/hopchain/hopchain/internal/app/execctx"
	"github.com/hopchain/hopchain/internal/domain"
	"github.com/hopchain/hopchain/internal/platform/telemetry"
	"github.com/hopchain/hopchain/internal/ports"
	"github.com/hopchain/hopchain/internal/wire"
)

// Compile-time check that Executor implements ports.Executor.
var _ ports.Executor = (*Executor)(nil)

// phase names the stations of the per-step cycle. Phases exist only in logs
// and are never stored: each call runs Idle to Idle synchronously.
type phase string

const (
	phaseAwaitingEntry  phase = "awaiting_entry"
	phaseAuthenticating phase = "authenticating"
	phaseExecuting      phase = "executing"
	phaseBranchDispatch phase = "branch_dispatch"
)

// ExecutorConfig carries the identities an executor authenticates against.
// TransportIdentity is the fixed, well-known identity of the trusted
// transport for this domain. ExecutorIdentity is the identity every sibling
// executor instance acts under; it must be configured identically across
// domains for continuations to authenticate.
type ExecutorConfig struct {
	Domain            domain.DomainID
	ExecutorAddress   domain.Address
	ExecutorIdentity  domain.Identity
	TransportIdentity domain.Identity
}

// Executor implements ports.Executor: the caller-facing entry operation and
// the transport-facing inbound handler, with two-stage authentication and
// initiator propagation through the execution scope.
type Executor struct {
	cfg        ExecutorConfig
	codec      *wire.Codec
	transport  ports.Transport
	dispatcher ports.Dispatcher
	invoker    ports.TargetInvoker
	scope      *execctx.Store
	observer   ports.DispatchObserver
	metrics    *telemetry.Metrics
	logger     *slog.Logger
}

// NewExecutor creates an Executor. A nil observer disables event emission;
// a nil metrics disables metric recording; a nil logger discards logs.
func NewExecutor(
	cfg ExecutorConfig,
	codec *wire.Codec,
	transport ports.Transport,
	dispatcher ports.Dispatcher,
	invoker ports.TargetInvoker,
	scope *execctx.Store,
	observer ports.DispatchObserver,
	metrics *telemetry.Metrics,
	logger *slog.Logger,
) *Executor {
	if observer == nil {
		observer = NopObserver{}
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Executor{
		cfg:        cfg,
		codec:      codec,
		transport:  transport,
		dispatcher: dispatcher,
		invoker:    invoker,
		scope:      scope,
		observer:   observer,
		metrics:    metrics,
		logger:     logger,
	}
}

// Entry starts a new chain. The caller must be the record's declared
// initiator; anything else is rejected before any dispatch occurs. Entry
// always routes through the transport, even for a locally-targeted record,
// so that every execution passes the inbound authentication path.
func (e *Executor) Entry(ctx context.Context, caller domain.Identity, rec domain.ActionRecord) error {
	e.logPhase(ctx, phaseAwaitingEntry, rec.TargetDomain)

	if err := rec.Validate(); err != nil {
		return err
	}

	if caller != rec.Initiator {
		e.logger.WarnContext(ctx, "entry caller mismatch",
			slog.String("operation", "Entry"),
			slog.String("caller", string(caller)),
			slog.String("initiator", string(rec.Initiator)),
		)
		return fmt.Errorf("%w: caller %q, record declares %q",
			domain.ErrInvalidInitiator, caller, rec.Initiator)
	}

	encoded, err := e.codec.Encode(rec)
	if err != nil {
		return err
	}

	if err := e.transport.Send(ctx, rec.TargetDomain, e.cfg.ExecutorAddress, encoded); err != nil {
		return fmt.Errorf("handing off entry record: %w", err)
	}

	e.logger.InfoContext(ctx, "chain entered",
		slog.Uint64("target_domain", uint64(rec.TargetDomain)),
		slog.String("target", string(rec.Target)),
		slog.String("initiator", string(rec.Initiator)),
	)
	return nil
}

// HandleInbound continues a chain from one transport delivery: authenticate,
// open the execution scope, run the primary call, and dispatch the branch
// matching its outcome. Authentication failures abort the step with no
// target invocation and no branch dispatch. Primary-call failure is an
// expected outcome and routes to the failure branch.
func (e *Executor) HandleInbound(ctx context.Context, d domain.Delivery) error {
	e.logPhase(ctx, phaseAuthenticating, e.cfg.Domain)

	rec, err := e.authenticate(ctx, d)
	if err != nil {
		e.recordInbound(ctx, false)
		return err
	}
	e.recordInbound(ctx, true)

	// Scope opens before the primary call and is released on every exit
	// path so no stale identity leaks into a later step.
	release := e.scope.Begin(rec.Initiator)
	defer release()

	e.logPhase(ctx, phaseExecuting, rec.TargetDomain)
	ctx = execctx.WithInitiator(ctx, rec.Initiator)

	callErr := e.invoker.Invoke(ctx, rec.Target, rec.Payload)
	success := callErr == nil

	e.observer.ObserveCall(ctx, domain.CallEvent{Target: rec.Target, Success: success})
	e.recordCall(ctx, success)

	if !success {
		// Not a protocol error: the failure branch is the recovery.
		e.logger.InfoContext(ctx, "primary call failed, taking failure branch",
			slog.String("target", string(rec.Target)),
			slog.Any("error", callErr),
		)
	}

	e.logPhase(ctx, phaseBranchDispatch, rec.TargetDomain)
	return e.dispatcher.ProcessBranch(ctx, rec.Initiator, rec.Branch(success))
}

// CurrentInitiator reports the initiator of the step currently in its
// execution scope, or ("", false) outside any step.
func (e *Executor) CurrentInitiator() (domain.Identity, bool) {
	return e.scope.Current()
}

// authenticate runs the two-stage inbound checks and decodes the record.
// Order matters: transport trust first, then origin, then decode, then
// domain match, so a forged delivery never gets its payload inspected.
func (e *Executor) authenticate(ctx context.Context, d domain.Delivery) (domain.ActionRecord, error) {
	if d.Transport != e.cfg.TransportIdentity {
		e.logger.WarnContext(ctx, "inbound delivery from untrusted sender",
			slog.String("operation", "HandleInbound"),
			slog.String("sender", string(d.Transport)),
		)
		return domain.ActionRecord{}, fmt.Errorf("%w: %q", domain.ErrUnauthorizedSender, d.Transport)
	}

	if d.Origin.Sender != e.cfg.ExecutorIdentity {
		e.logger.WarnContext(ctx, "inbound delivery from non-sibling origin",
			slog.String("operation", "HandleInbound"),
			slog.String("origin_sender", string(d.Origin.Sender)),
			slog.Uint64("origin_domain", uint64(d.Origin.Domain)),
		)
		return domain.ActionRecord{}, fmt.Errorf("%w: origin %q on domain %d",
			domain.ErrInvalidCrossDomainSender, d.Origin.Sender, d.Origin.Domain)
	}

	rec, err := e.codec.Decode(d.Record)
	if err != nil {
		return domain.ActionRecord{}, err
	}

	if rec.TargetDomain != e.cfg.Domain {
		return domain.ActionRecord{}, fmt.Errorf("%w: record targets %d, this executor serves %d",
			domain.ErrInvalidDomain, rec.TargetDomain, e.cfg.Domain)
	}

	return rec, nil
}

func (e *Executor) logPhase(ctx context.Context, p phase, d domain.DomainID) {
	e.logger.DebugContext(ctx, "executor phase",
		slog.String("phase", string(p)),
		slog.Uint64("domain", uint64(d)),
	)
}

func (e *Executor) recordInbound(ctx context.Context, accepted bool) {
	if e.metrics == nil {
		return
	}
	e.metrics.InboundTotal.Add(ctx, 1, telemetry.ResultAttrs(accepted))
}

func (e *Executor) recordCall(ctx context.Context, success bool) {
	if e.metrics == nil {
		return
	}
	e.metrics.TargetCallTotal.Add(ctx, 1, telemetry.ResultAttrs(success))
}
