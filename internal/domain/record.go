package domain

// DomainID identifies an independent execution domain. Each domain runs its
// own executor instance and its own local state.
type DomainID uint64

// Identity names a party on the network: a chain initiator, an executor
// instance, or the transport itself. Identities are opaque strings; the
// protocol only ever compares them for equality.
type Identity string

// Address locates an invocable entry point within a domain.
type Address string

// ActionRecord is the unit of work: one target call plus optional
// continuations for each outcome. The branch fields hold an encoded child
// ActionRecord (see the wire package); an empty branch means "do nothing on
// this outcome".
//
// Initiator is immutable once a chain starts. Every child record decoded
// from a branch has its Initiator overwritten with the parent's before
// dispatch, so branch payloads cannot spoof identity. The record graph is a
// binary tree by construction but is not guaranteed acyclic across hops; the
// wire codec bounds static nesting depth, while re-entrant domain/target
// cycles remain the deployment's concern.
type ActionRecord struct {
	TargetDomain DomainID
	Target       Address
	Payload      []byte
	OnSuccess    []byte
	OnFailure    []byte
	Initiator    Identity
}

// Validate checks the structural requirements a record must satisfy before
// it can enter a chain. Payload and branches may be empty; target and
// initiator may not.
func (r ActionRecord) Validate() error {
	fields := make(map[string]string)
	if r.Target == "" {
		fields["target"] = "must not be empty"
	}
	if r.Initiator == "" {
		fields["initiator"] = "must not be empty"
	}
	if len(fields) > 0 {
		return &ValidationError{Fields: fields}
	}
	return nil
}

// Branch returns the continuation for the given primary-call outcome.
func (r ActionRecord) Branch(success bool) []byte {
	if success {
		return r.OnSuccess
	}
	return r.OnFailure
}

// Origin describes where a transport delivery came from: the identity of the
// sender on the originating domain and that domain's ID. The transport
// stamps it; nothing inside a record is trusted for this.
type Origin struct {
	Sender Identity
	Domain DomainID
}

// Delivery is one inbound message handed to the executor by a transport
// adapter. Transport is the identity of the adapter performing the hand-off
// (the executor checks it against the configured trusted transport), Origin
// is the transport-reported provenance, and Record holds the encoded
// ActionRecord.
type Delivery struct {
	Transport Identity
	Origin    Origin
	MessageID string
	Record    []byte
}
