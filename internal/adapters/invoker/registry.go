// Package invoker provides the in-domain target registry. Application code
// registers handler functions under addresses; the executor invokes them when
// a record lands on the local domain.
package invoker

import (
	"context"
	"fmt"
	"sync"

	"github.com/hopchain/hopchain/internal/domain"
	"github.com/hopchain/hopchain/internal/ports"
)

// Compile-time interface check.
var _ ports.TargetInvoker = (*Registry)(nil)

// Handler is a locally invocable target. Any non-nil error marks the call as
// failed and routes the chain to the failure branch.
type Handler func(ctx context.Context, payload []byte) error

// Registry is a thread-safe implementation of [ports.TargetInvoker] backed by
// an address-keyed handler map. Handlers are registered at startup; Invoke is
// safe for concurrent use.
type Registry struct {
	mu       sync.RWMutex
	handlers map[domain.Address]Handler
}

// New creates an empty target registry.
func New() *Registry {
	return &Registry{handlers: make(map[domain.Address]Handler)}
}

// Register binds a handler to an address. Registering the same address twice
// returns domain.ErrValidation; targets are wired once at startup and never
// silently replaced.
func (r *Registry) Register(target domain.Address, h Handler) error {
	if target == "" {
		return fmt.Errorf("%w: target address must not be empty", domain.ErrValidation)
	}
	if h == nil {
		return fmt.Errorf("%w: handler for %q must not be nil", domain.ErrValidation, target)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.handlers[target]; exists {
		return fmt.Errorf("%w: target %q already registered", domain.ErrValidation, target)
	}
	r.handlers[target] = h
	return nil
}

// Invoke runs the handler registered under target. An unknown target fails
// with domain.ErrNotFound.
func (r *Registry) Invoke(ctx context.Context, target domain.Address, payload []byte) error {
	r.mu.RLock()
	h, ok := r.handlers[target]
	r.mu.RUnlock()

	if !ok {
		return fmt.Errorf("%w: target %q", domain.ErrNotFound, target)
	}
	return h(ctx, payload)
}
