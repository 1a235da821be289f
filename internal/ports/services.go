package ports

import (
	"context"

	"github.com/hopchain/hopchain/internal/domain"
)

// Executor defines the service port for the protocol state machine.
// Implemented by the application layer; called by inbound adapters (the HTTP
// entry endpoint and transport listeners). No state is retained between
// invocations; each call runs the full cycle synchronously.
type Executor interface {
	// Entry starts a new chain on behalf of caller. It fails with
	// domain.ErrInvalidInitiator unless caller equals the record's
	// initiator. On success the record is handed to the transport addressed
	// to its own target domain; entry always takes at least one hop, even
	// when the target domain is local, so that every execution passes
	// through HandleInbound's authentication path.
	Entry(ctx context.Context, caller domain.Identity, rec domain.ActionRecord) error

	// HandleInbound continues a chain from a transport delivery. It fails
	// with domain.ErrUnauthorizedSender when the delivery is not from the
	// trusted transport, domain.ErrInvalidCrossDomainSender when the origin
	// is not a sibling executor, domain.ErrMalformedRecord when the record
	// does not decode, and domain.ErrInvalidDomain when the record targets
	// another domain. A failing primary target call is not an error; it
	// selects the failure branch.
	HandleInbound(ctx context.Context, d domain.Delivery) error

	// CurrentInitiator reports the identity that started the chain whose
	// step is currently executing. Outside an active inbound-handling scope
	// it returns ("", false), never a stale value.
	CurrentInitiator() (domain.Identity, bool)
}

// Dispatcher decides execution locality for one record and processes
// conditional branches. Implemented by the application layer.
type Dispatcher interface {
	// Dispatch runs the record's target locally when its target domain is
	// the current domain, failing with domain.ErrLocalCallFailed if that
	// local invocation fails; otherwise it encodes the record and hands it
	// to the transport without blocking on remote completion. Every
	// dispatch emits a domain.DispatchEvent.
	Dispatch(ctx context.Context, rec domain.ActionRecord) error

	// ProcessBranch is a no-op for empty branch bytes. Otherwise it decodes
	// the child record, overwrites its initiator with the parent's, and
	// dispatches it.
	ProcessBranch(ctx context.Context, initiator domain.Identity, branch []byte) error
}

// TargetInvoker performs local target invocation within the current domain.
// Implemented by the invoker adapter; called by the application layer. The
// protocol does not introspect failure causes: any non-nil error is simply
// "the call failed".
type TargetInvoker interface {
	Invoke(ctx context.Context, target domain.Address, payload []byte) error
}

// DispatchObserver receives the protocol's observable events. Implementations
// must not block; they are called synchronously on the dispatch path.
type DispatchObserver interface {
	ObserveDispatch(ctx context.Context, e domain.DispatchEvent)
	ObserveCall(ctx context.Context, e domain.CallEvent)
}
