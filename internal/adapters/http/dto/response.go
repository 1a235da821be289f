package dto

// ChainAcceptedResponse acknowledges that a chain entered the transport.
// Acceptance is a hand-off receipt, not an execution result: the chain runs
// asynchronously and its outcome is never reported back to the caller.
type ChainAcceptedResponse struct {
	Status       string `json:"status"`
	TargetDomain uint64 `json:"target_domain"`
	Target       string `json:"target"`
}

// InitiatorResponse reports the initiator of the chain step currently
// executing in this domain, if any.
type InitiatorResponse struct {
	Initiator string `json:"initiator,omitempty"`
	Active    bool   `json:"active"`
}
