package wire

import (
	"bytes"
	"errors"
	"testing"

	"github.com/fxamacker/cbor/v2"

	"github.com/hopchain/hopchain/internal/domain"
)

func mustEncode(t *testing.T, c *Codec, rec domain.ActionRecord) []byte {
	t.Helper()
	b, err := c.Encode(rec)
	if err != nil {
		t.Fatalf("Encode() error = %v", err)
	}
	return b
}

func TestCodec_RoundTrip(t *testing.T) {
	t.Parallel()
	c := New(0)

	leaf := domain.ActionRecord{
		TargetDomain: 7,
		Target:       "vault/unlock",
		Payload:      []byte{0x00, 0xff, 0x10},
		Initiator:    "carol",
	}
	leafBytes := mustEncode(t, c, leaf)

	root := domain.ActionRecord{
		TargetDomain: 2,
		Target:       "ledger/transfer",
		Payload:      []byte("amount=5"),
		OnSuccess:    leafBytes,
		Initiator:    "carol",
	}

	got, err := c.Decode(mustEncode(t, c, root))
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}

	if got.TargetDomain != root.TargetDomain || got.Target != root.Target ||
		got.Initiator != root.Initiator {
		t.Errorf("Decode() = %+v, want %+v", got, root)
	}
	if !bytes.Equal(got.Payload, root.Payload) {
		t.Errorf("Payload = %v, want %v", got.Payload, root.Payload)
	}
	if !bytes.Equal(got.OnSuccess, leafBytes) {
		t.Errorf("OnSuccess bytes changed in round trip")
	}
	if len(got.OnFailure) != 0 {
		t.Errorf("OnFailure = %v, want empty", got.OnFailure)
	}

	child, err := c.Decode(got.OnSuccess)
	if err != nil {
		t.Fatalf("Decode(branch) error = %v", err)
	}
	if child.Target != leaf.Target || !bytes.Equal(child.Payload, leaf.Payload) {
		t.Errorf("Decode(branch) = %+v, want %+v", child, leaf)
	}
}

func TestCodec_Decode_Malformed(t *testing.T) {
	t.Parallel()
	c := New(0)

	valid := mustEncode(t, c, domain.ActionRecord{
		TargetDomain: 1,
		Target:       "t",
		Initiator:    "u",
	})

	typeMismatch, err := cbor.Marshal([]any{"not-a-uint", "t", []byte{}, []byte{}, []byte{}, "u"})
	if err != nil {
		t.Fatalf("marshal fixture: %v", err)
	}

	wrongArity, err := cbor.Marshal([]any{uint64(1), "t"})
	if err != nil {
		t.Fatalf("marshal fixture: %v", err)
	}

	cases := []struct {
		name  string
		input []byte
	}{
		{"empty", nil},
		{"truncated", valid[:len(valid)-2]},
		{"trailing bytes", append(append([]byte{}, valid...), 0x01)},
		{"type mismatch", typeMismatch},
		{"wrong arity", wrongArity},
		{"not cbor", []byte("garbage")},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			if _, err := c.Decode(tc.input); !errors.Is(err, domain.ErrMalformedRecord) {
				t.Errorf("Decode(%s) = %v, want ErrMalformedRecord", tc.name, err)
			}
		})
	}
}

func TestCodec_Encode_DepthLimit(t *testing.T) {
	t.Parallel()
	c := New(3)

	rec := domain.ActionRecord{TargetDomain: 1, Target: "t", Initiator: "u"}
	for i := 0; i < 2; i++ {
		rec = domain.ActionRecord{
			TargetDomain: 1,
			Target:       "t",
			OnSuccess:    mustEncode(t, c, rec),
			Initiator:    "u",
		}
	}

	// Depth 3 is at the limit; one more level must be rejected.
	atLimit := mustEncode(t, c, rec)

	over := domain.ActionRecord{
		TargetDomain: 1,
		Target:       "t",
		OnFailure:    atLimit,
		Initiator:    "u",
	}
	if _, err := c.Encode(over); !errors.Is(err, domain.ErrMalformedRecord) {
		t.Fatalf("Encode(depth 4) = %v, want ErrMalformedRecord", err)
	}
}

func TestCodec_Decode_DepthLimit(t *testing.T) {
	t.Parallel()

	// A permissive peer can legitimately encode trees this codec must still
	// refuse: the bound is local policy, enforced on input too.
	permissive := New(64)
	strict := New(16)

	rec := domain.ActionRecord{TargetDomain: 1, Target: "t", Initiator: "u"}
	for i := 0; i < 30; i++ {
		rec = domain.ActionRecord{
			TargetDomain: 1,
			Target:       "t",
			OnSuccess:    mustEncode(t, permissive, rec),
			Initiator:    "u",
		}
	}
	deep := mustEncode(t, permissive, rec) // depth 31

	if _, err := strict.Decode(deep); !errors.Is(err, domain.ErrMalformedRecord) {
		t.Errorf("Decode(depth 31) with limit 16 = %v, want ErrMalformedRecord", err)
	}
	if _, err := permissive.Decode(deep); err != nil {
		t.Errorf("Decode(depth 31) with limit 64 = %v, want nil", err)
	}
}

func TestCodec_Decode_AtDepthLimit(t *testing.T) {
	t.Parallel()
	c := New(3)

	rec := domain.ActionRecord{TargetDomain: 1, Target: "t", Initiator: "u"}
	for i := 0; i < 2; i++ {
		rec = domain.ActionRecord{
			TargetDomain: 1,
			Target:       "t",
			OnSuccess:    mustEncode(t, c, rec),
			Initiator:    "u",
		}
	}

	if _, err := c.Decode(mustEncode(t, c, rec)); err != nil {
		t.Errorf("Decode(depth 3) with limit 3 = %v, want nil", err)
	}
}

func TestCodec_Encode_OpaqueBranchIsLeaf(t *testing.T) {
	t.Parallel()
	c := New(2)

	// A branch that does not decode cannot be measured; it counts as a leaf
	// at encode time and fails later when the branch is processed.
	rec := domain.ActionRecord{
		TargetDomain: 1,
		Target:       "t",
		OnSuccess:    []byte("opaque-garbage"),
		Initiator:    "u",
	}
	if _, err := c.Encode(rec); err != nil {
		t.Fatalf("Encode() error = %v, want nil", err)
	}
}

func TestNew_DepthFallback(t *testing.T) {
	t.Parallel()
	if got := New(-1).MaxDepth(); got != DefaultMaxDepth {
		t.Errorf("MaxDepth() = %d, want %d", got, DefaultMaxDepth)
	}
	if got := New(5).MaxDepth(); got != 5 {
		t.Errorf("MaxDepth() = %d, want 5", got)
	}
}
