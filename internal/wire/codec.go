// Package wire implements the ActionRecord wire codec used for both
// cross-domain transport and branch embedding.
//
// The format is a fixed-schema CBOR array:
//
//	[targetDomain uint64, target text, payload bytes,
//	 onSuccess bytes, onFailure bytes, initiator text]
//
// where the branch fields recursively contain the same schema. Decoding is
// exact round-trip for anything the encoder produced, and rejects truncated,
// type-mismatched, or trailing input as domain.ErrMalformedRecord.
package wire

import (
	"fmt"

	"github.com/fxamacker/cbor/v2"

	"github.com/hopchain/hopchain/internal/domain"
)

// DefaultMaxDepth bounds branch nesting when no explicit limit is
// configured. The original protocol carries no such bound; see DESIGN.md.
const DefaultMaxDepth = 16

// wireRecord is the on-the-wire shape of an ActionRecord. The toarray tag
// pins the fixed positional schema.
type wireRecord struct {
	_            struct{} `cbor:",toarray"`
	TargetDomain uint64
	Target       string
	Payload      []byte
	OnSuccess    []byte
	OnFailure    []byte
	Initiator    string
}

// Codec encodes and decodes ActionRecords with a configurable maximum
// branch nesting depth. The zero value is not usable; construct with New.
type Codec struct {
	maxDepth int
	dec      cbor.DecMode
}

// New creates a Codec. A maxDepth < 1 falls back to DefaultMaxDepth.
func New(maxDepth int) *Codec {
	if maxDepth < 1 {
		maxDepth = DefaultMaxDepth
	}

	// Strict decoding: unknown wire data must fail loudly rather than be
	// coerced. ExtraDecErrorUnknownField has no effect on arrays but is set
	// for parity with future map-based extensions.
	dec, err := cbor.DecOptions{
		DupMapKey:         cbor.DupMapKeyEnforcedAPF,
		IndefLength:       cbor.IndefLengthForbidden,
		ExtraReturnErrors: cbor.ExtraDecErrorUnknownField,
	}.DecMode()
	if err != nil {
		// DecOptions are constant; this cannot fail at runtime.
		panic(fmt.Sprintf("wire: building decode mode: %v", err))
	}

	return &Codec{maxDepth: maxDepth, dec: dec}
}

// MaxDepth reports the configured nesting bound.
func (c *Codec) MaxDepth() int {
	return c.maxDepth
}

// Encode serializes a record. The record's static branch tree must not
// exceed the codec's maximum depth; branch bytes that do not decode are
// treated as leaves here and will surface as ErrMalformedRecord when the
// branch is eventually processed.
func (c *Codec) Encode(rec domain.ActionRecord) ([]byte, error) {
	depth := c.depth(rec, 1)
	if depth > c.maxDepth {
		return nil, fmt.Errorf("%w: branch nesting depth %d exceeds limit %d",
			domain.ErrMalformedRecord, depth, c.maxDepth)
	}

	b, err := cbor.Marshal(wireRecord{
		TargetDomain: uint64(rec.TargetDomain),
		Target:       string(rec.Target),
		Payload:      rec.Payload,
		OnSuccess:    rec.OnSuccess,
		OnFailure:    rec.OnFailure,
		Initiator:    string(rec.Initiator),
	})
	if err != nil {
		return nil, fmt.Errorf("encoding action record: %w", err)
	}
	return b, nil
}

// Decode parses one record from b. Branches are left encoded; each hop
// decodes exactly one level. The record's static branch tree must fit this
// codec's maximum depth regardless of what limit the encoder ran with, so a
// peer configured with a larger bound cannot push over-deep trees through.
func (c *Codec) Decode(b []byte) (domain.ActionRecord, error) {
	rec, err := c.decodeOne(b)
	if err != nil {
		return domain.ActionRecord{}, err
	}

	if depth := c.depth(rec, 1); depth > c.maxDepth {
		return domain.ActionRecord{}, fmt.Errorf("%w: branch nesting depth %d exceeds limit %d",
			domain.ErrMalformedRecord, depth, c.maxDepth)
	}

	return rec, nil
}

// decodeOne parses a single record without measuring its branch tree.
func (c *Codec) decodeOne(b []byte) (domain.ActionRecord, error) {
	if len(b) == 0 {
		return domain.ActionRecord{}, fmt.Errorf("%w: empty input", domain.ErrMalformedRecord)
	}

	var wr wireRecord
	if err := c.dec.Unmarshal(b, &wr); err != nil {
		return domain.ActionRecord{}, fmt.Errorf("%w: %v", domain.ErrMalformedRecord, err)
	}

	return domain.ActionRecord{
		TargetDomain: domain.DomainID(wr.TargetDomain),
		Target:       domain.Address(wr.Target),
		Payload:      wr.Payload,
		OnSuccess:    wr.OnSuccess,
		OnFailure:    wr.OnFailure,
		Initiator:    domain.Identity(wr.Initiator),
	}, nil
}

// depth measures the static nesting depth of rec's branch tree. Branch bytes
// that fail to decode terminate measurement on that side; they are caught
// later as malformed when the branch is processed.
func (c *Codec) depth(rec domain.ActionRecord, level int) int {
	if level >= c.maxDepth {
		// Deep enough to fail the bound check; stop recursing.
		return level + boolToInt(len(rec.OnSuccess) > 0 || len(rec.OnFailure) > 0)
	}

	deepest := level
	for _, branch := range [][]byte{rec.OnSuccess, rec.OnFailure} {
		if len(branch) == 0 {
			continue
		}
		child, err := c.decodeOne(branch)
		if err != nil {
			if deepest < level+1 {
				deepest = level + 1
			}
			continue
		}
		if d := c.depth(child, level+1); d > deepest {
			deepest = d
		}
	}
	return deepest
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
