// Package ports defines interfaces between layers in the hexagonal architecture.
// Service ports (Executor, Dispatcher) are implemented by the application layer
// and called by inbound adapters. Collaborator ports (Transport, TargetInvoker,
// DispatchObserver) are implemented by outbound adapters and called by the
// application layer.
package ports
