// Package inproc provides an in-process transport connecting multiple domain
// executors inside one binary. It is the default transport for local
// development and the backbone of the end-to-end tests: deliveries cross
// goroutines, not processes, but carry the same identity stamps as a real
// transport.
package inproc

import (
	"context"
	"fmt"
	"sync"

	"github.com/google/uuid"

	"github.com/hopchain/hopchain/internal/domain"
	"github.com/hopchain/hopchain/internal/ports"
)

// Network is the shared fabric endpoints send through. One Network models one
// trusted transport: every delivery it produces is stamped with its identity.
type Network struct {
	identity domain.Identity

	mu       sync.RWMutex
	handlers map[domain.DomainID]ports.InboundHandler

	wg sync.WaitGroup
}

// NewNetwork creates a network that stamps deliveries with the given
// transport identity.
func NewNetwork(identity domain.Identity) *Network {
	return &Network{
		identity: identity,
		handlers: make(map[domain.DomainID]ports.InboundHandler),
	}
}

// Attach registers the inbound handler for a domain. Each domain attaches at
// most one handler; attaching again replaces the previous one.
func (n *Network) Attach(id domain.DomainID, h ports.InboundHandler) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.handlers[id] = h
}

// Drain blocks until all in-flight deliveries have been handled. Tests use it
// to observe the quiesced state of an asynchronous chain.
func (n *Network) Drain() {
	n.wg.Wait()
}

// deliver hands the delivery to the target domain's handler on a new
// goroutine. Send never blocks on, or learns the outcome of, remote handling.
func (n *Network) deliver(target domain.DomainID, d domain.Delivery) error {
	n.mu.RLock()
	h, ok := n.handlers[target]
	n.mu.RUnlock()

	if !ok {
		return fmt.Errorf("%w: no executor attached for domain %d", domain.ErrUnavailable, target)
	}

	n.wg.Add(1)
	go func() {
		defer n.wg.Done()
		// Delivery outcomes are the receiving executor's concern. The
		// handler logs its own failures; the sender hears nothing.
		_ = h(context.WithoutCancel(context.Background()), d)
	}()
	return nil
}

// Compile-time interface check.
var _ ports.Transport = (*Endpoint)(nil)

// Endpoint is one domain's hand-off point into the network. The network
// stamps each delivery with the endpoint's sender identity and domain, so a
// receiver can authenticate who a message claims to come from. Tests create
// endpoints with non-executor identities to model untrusted senders.
type Endpoint struct {
	network *Network
	sender  domain.Identity
	local   domain.DomainID
}

// NewEndpoint creates an endpoint that sends as the given identity from the
// given domain.
func NewEndpoint(n *Network, sender domain.Identity, local domain.DomainID) *Endpoint {
	return &Endpoint{network: n, sender: sender, local: local}
}

// Send stamps and delivers an encoded record to the target domain. A nil
// return means the hand-off was accepted; the remote step outcome is never
// reported back. The address is unused in-process: each domain has exactly
// one attached handler.
func (e *Endpoint) Send(_ context.Context, target domain.DomainID, _ domain.Address, record []byte) error {
	d := domain.Delivery{
		Transport: e.network.identity,
		Origin: domain.Origin{
			Sender: e.sender,
			Domain: e.local,
		},
		MessageID: uuid.NewString(),
		Record:    record,
	}

	return e.network.deliver(target, d)
}
