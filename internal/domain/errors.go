package domain

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for errors.Is() checking.
//
// The first group is the protocol error taxonomy: authentication failures
// abort a step with no target invocation and no branch dispatch, while
// ErrLocalCallFailed and ErrMalformedRecord are fatal only to the dispatch
// path that raised them. A failing primary target call is not represented
// here at all; it is an expected outcome that selects the failure branch.
var (
	// ErrInvalidInitiator is returned by entry when the caller is not the
	// identity declared as the record's initiator.
	ErrInvalidInitiator = errors.New("caller is not the record initiator")

	// ErrUnauthorizedSender is returned by inbound handling when the
	// delivery does not come from the trusted transport.
	ErrUnauthorizedSender = errors.New("sender is not the trusted transport")

	// ErrInvalidCrossDomainSender is returned by inbound handling when the
	// transport-reported origin is not a sibling executor instance.
	ErrInvalidCrossDomainSender = errors.New("origin is not a sibling executor")

	// ErrInvalidDomain is returned when an inbound record targets a domain
	// other than the one this executor serves.
	ErrInvalidDomain = errors.New("record targets a different domain")

	// ErrLocalCallFailed is returned when a local target invocation fails
	// during a branch (non-primary) dispatch.
	ErrLocalCallFailed = errors.New("local call failed")

	// ErrMalformedRecord is returned when bytes do not decode to a valid
	// action record.
	ErrMalformedRecord = errors.New("malformed action record")
)

// Ambient sentinel errors shared with the HTTP edge.
var (
	ErrNotFound    = errors.New("not found")
	ErrValidation  = errors.New("validation error")
	ErrUnavailable = errors.New("unavailable")
)

// ValidationError provides programmatic access to field-level validation
// failures. Use errors.Is(err, ErrValidation) for simple checks, or
// errors.As(err, &verr) to access verr.Fields for per-field error details.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for field, msg := range e.Fields {
		parts = append(parts, field+": "+msg)
	}
	return fmt.Sprintf("%s: %s", ErrValidation.Error(), strings.Join(parts, "; "))
}

func (e *ValidationError) Unwrap() error {
	return ErrValidation
}
