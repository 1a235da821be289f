// Package dto provides HTTP request/response data transfer objects and
// RFC 9457 Problem Details error responses for the inbound HTTP adapter layer.
package dto

import (
	"strings"

	"github.com/hopchain/hopchain/internal/domain"
)

const (
	msgRequired = "is required"
)

// BranchEncoder encodes a domain record into branch bytes. Satisfied by the
// wire codec.
type BranchEncoder interface {
	Encode(rec domain.ActionRecord) ([]byte, error)
}

// ChainRecordRequest represents the JSON body for starting a new chain.
// Branches nest recursively; Payload is base64 in transit per encoding/json
// []byte convention. Initiator is required only at the root: the executor
// overwrites nested initiators with the root's identity on every hop.
type ChainRecordRequest struct {
	TargetDomain uint64              `json:"target_domain"`
	Target       string              `json:"target"`
	Payload      []byte              `json:"payload,omitempty"`
	OnSuccess    *ChainRecordRequest `json:"on_success,omitempty"`
	OnFailure    *ChainRecordRequest `json:"on_failure,omitempty"`
	Initiator    string              `json:"initiator"`
}

// Validate checks that required fields are present at every nesting level.
// Returns a *domain.ValidationError if any checks fail.
func (r *ChainRecordRequest) Validate() error {
	fields := make(map[string]string)
	r.collectErrors("", true, fields)

	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	return nil
}

// collectErrors walks the branch tree accumulating field errors keyed by
// JSON path. Only the root node requires an initiator.
func (r *ChainRecordRequest) collectErrors(path string, root bool, fields map[string]string) {
	if r.TargetDomain == 0 {
		fields[path+"target_domain"] = msgRequired
	}
	if strings.TrimSpace(r.Target) == "" {
		fields[path+"target"] = msgRequired
	}
	if root && strings.TrimSpace(r.Initiator) == "" {
		fields[path+"initiator"] = msgRequired
	}

	if r.OnSuccess != nil {
		r.OnSuccess.collectErrors(path+"on_success.", false, fields)
	}
	if r.OnFailure != nil {
		r.OnFailure.collectErrors(path+"on_failure.", false, fields)
	}
}

// ToDomain converts the request tree to a domain record, encoding nested
// branches bottom-up with the given encoder. Nested initiators inherit the
// root initiator so the encoded record validates; the protocol overwrites
// them again on every decode.
func (r *ChainRecordRequest) ToDomain(enc BranchEncoder) (domain.ActionRecord, error) {
	return r.toDomain(enc, domain.Identity(r.Initiator))
}

func (r *ChainRecordRequest) toDomain(enc BranchEncoder, initiator domain.Identity) (domain.ActionRecord, error) {
	rec := domain.ActionRecord{
		TargetDomain: domain.DomainID(r.TargetDomain),
		Target:       domain.Address(r.Target),
		Payload:      r.Payload,
		Initiator:    initiator,
	}

	if r.OnSuccess != nil {
		child, err := r.OnSuccess.toDomain(enc, initiator)
		if err != nil {
			return domain.ActionRecord{}, err
		}
		encoded, err := enc.Encode(child)
		if err != nil {
			return domain.ActionRecord{}, err
		}
		rec.OnSuccess = encoded
	}
	if r.OnFailure != nil {
		child, err := r.OnFailure.toDomain(enc, initiator)
		if err != nil {
			return domain.ActionRecord{}, err
		}
		encoded, err := enc.Encode(child)
		if err != nil {
			return domain.ActionRecord{}, err
		}
		rec.OnFailure = encoded
	}

	return rec, nil
}
