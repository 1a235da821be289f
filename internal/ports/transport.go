package ports

import (
	"context"

	"github.com/hopchain/hopchain/internal/domain"
)

// Transport is the external collaborator that moves encoded records between
// domains. Implemented by transport adapters; called by the application layer.
type Transport interface {
	// Send hands an encoded record to the transport for asynchronous,
	// at-least-once-attempted delivery to the given address in the target
	// domain. There is no synchronous completion signal: a nil return means
	// the hand-off was accepted, not that the remote step ran. Delivery
	// failures after a successful hand-off leave the chain stuck, not
	// rolled back.
	Send(ctx context.Context, target domain.DomainID, addr domain.Address, record []byte) error
}

// InboundHandler consumes one transport delivery. Implemented by the
// executor; transport adapters call it for each message arriving on the
// local domain. The transport stamps Delivery.Transport and Delivery.Origin;
// the handler authenticates both.
type InboundHandler func(ctx context.Context, d domain.Delivery) error
