// Package execctx provides the per-step execution scope for inbound chain
// handling. A scope is opened at the start of HandleInbound, carries the
// chain initiator for the duration of exactly one step, and is torn down on
// every exit path. Nothing survives a step: the store never holds a stale
// identity once the step's release runs.
//
//	release := store.Begin(rec.Initiator)
//	defer release()
//
//	// anywhere inside the step:
//	initiator, ok := store.Current()
//
// Begin also serializes steps: a second Begin blocks until the first step's
// release, matching the one-step-at-a-time execution model of a domain.
package execctx

import (
	"context"
	"sync"

	"github.com/hopchain/hopchain/internal/domain"
)

// Store holds the initiator of the step currently executing on this domain.
// It is written once at the start of a step and read-only for the remainder
// of that step.
type Store struct {
	step sync.Mutex // serializes whole steps

	mu        sync.Mutex // guards the fields below
	active    bool
	initiator domain.Identity
}

// NewStore creates an idle Store.
func NewStore() *Store {
	return &Store{}
}

// Begin opens the execution scope for one step, blocking until any
// in-flight step has released. The returned release function tears the
// scope down and is safe to call more than once; callers must arrange for
// it to run on every exit path.
func (s *Store) Begin(initiator domain.Identity) (release func()) {
	s.step.Lock()

	s.mu.Lock()
	s.active = true
	s.initiator = initiator
	s.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			s.mu.Lock()
			s.active = false
			s.initiator = ""
			s.mu.Unlock()

			s.step.Unlock()
		})
	}
}

// Current returns the active step's initiator. Outside a scope it returns
// ("", false).
func (s *Store) Current() (domain.Identity, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.active {
		return "", false
	}
	return s.initiator, true
}

// initiatorKey is the unexported context key for initiator propagation to
// targets.
type initiatorKey struct{}

// WithInitiator returns a context carrying the given initiator. The executor
// calls this before invoking a target so that target handlers can read the
// chain initiator without a reference to the Store.
func WithInitiator(ctx context.Context, id domain.Identity) context.Context {
	return context.WithValue(ctx, initiatorKey{}, id)
}

// Initiator extracts the chain initiator from the context. Returns
// ("", false) when the context does not belong to an inbound step.
func Initiator(ctx context.Context) (domain.Identity, bool) {
	id, ok := ctx.Value(initiatorKey{}).(domain.Identity)
	return id, ok
}
