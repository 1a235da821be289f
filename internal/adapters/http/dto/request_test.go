package dto_test

import (
	"errors"
	"testing"

	"github.com/hopchain/hopchain/internal/adapters/http/dto"
	"github.com/hopchain/hopchain/internal/domain"
	"github.com/hopchain/hopchain/internal/wire"
)

func TestChainRecordRequest_Validate_Valid(t *testing.T) {
	t.Parallel()

	req := &dto.ChainRecordRequest{
		TargetDomain: 2,
		Target:       "billing/charge",
		Payload:      []byte("amount=5"),
		Initiator:    "alice",
		OnSuccess: &dto.ChainRecordRequest{
			TargetDomain: 3,
			Target:       "mail/receipt",
		},
	}

	if err := req.Validate(); err != nil {
		t.Fatalf("Validate() error = %v, want nil", err)
	}
}

func TestChainRecordRequest_Validate_MissingFields(t *testing.T) {
	t.Parallel()

	req := &dto.ChainRecordRequest{}

	err := req.Validate()
	var verr *domain.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("Validate() error = %v, want *domain.ValidationError", err)
	}

	for _, field := range []string{"target_domain", "target", "initiator"} {
		if _, ok := verr.Fields[field]; !ok {
			t.Errorf("Fields missing entry for %q: %v", field, verr.Fields)
		}
	}
}

func TestChainRecordRequest_Validate_NestedBranchPath(t *testing.T) {
	t.Parallel()

	req := &dto.ChainRecordRequest{
		TargetDomain: 2,
		Target:       "billing/charge",
		Initiator:    "alice",
		OnFailure: &dto.ChainRecordRequest{
			TargetDomain: 3,
			// Target missing.
		},
	}

	err := req.Validate()
	var verr *domain.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("Validate() error = %v, want *domain.ValidationError", err)
	}
	if _, ok := verr.Fields["on_failure.target"]; !ok {
		t.Errorf("Fields missing entry for nested path: %v", verr.Fields)
	}
}

func TestChainRecordRequest_Validate_NestedInitiatorOptional(t *testing.T) {
	t.Parallel()

	req := &dto.ChainRecordRequest{
		TargetDomain: 2,
		Target:       "billing/charge",
		Initiator:    "alice",
		OnSuccess: &dto.ChainRecordRequest{
			TargetDomain: 3,
			Target:       "mail/receipt",
			// No initiator: nested branches inherit the root's.
		},
	}

	if err := req.Validate(); err != nil {
		t.Fatalf("Validate() error = %v, want nil", err)
	}
}

func TestChainRecordRequest_ToDomain_EncodesBranches(t *testing.T) {
	t.Parallel()

	codec := wire.New(wire.DefaultMaxDepth)

	req := &dto.ChainRecordRequest{
		TargetDomain: 2,
		Target:       "billing/charge",
		Payload:      []byte("amount=5"),
		Initiator:    "alice",
		OnSuccess: &dto.ChainRecordRequest{
			TargetDomain: 3,
			Target:       "mail/receipt",
		},
	}

	rec, err := req.ToDomain(codec)
	if err != nil {
		t.Fatalf("ToDomain error: %v", err)
	}

	if rec.TargetDomain != 2 || rec.Target != "billing/charge" {
		t.Errorf("root record = %+v, want target domain 2, target billing/charge", rec)
	}
	if rec.Initiator != "alice" {
		t.Errorf("root Initiator = %q, want %q", rec.Initiator, "alice")
	}
	if len(rec.OnSuccess) == 0 {
		t.Fatal("OnSuccess branch is empty, want encoded child")
	}
	if len(rec.OnFailure) != 0 {
		t.Errorf("OnFailure branch = %v, want empty", rec.OnFailure)
	}

	child, err := codec.Decode(rec.OnSuccess)
	if err != nil {
		t.Fatalf("decoding child branch: %v", err)
	}
	if child.TargetDomain != 3 || child.Target != "mail/receipt" {
		t.Errorf("child record = %+v, want target domain 3, target mail/receipt", child)
	}
	if child.Initiator != "alice" {
		t.Errorf("child Initiator = %q, want inherited %q", child.Initiator, "alice")
	}
}
