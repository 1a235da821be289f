package domain

// DispatchEvent is emitted for every dispatch, local or remote, so external
// observers can reconstruct a chain's execution trace.
type DispatchEvent struct {
	TargetDomain DomainID
	Target       Address
	Local        bool
}

// CallEvent is emitted after the primary target call of an inbound step,
// whatever its outcome.
type CallEvent struct {
	Target  Address
	Success bool
}
