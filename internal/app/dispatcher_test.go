package app

import (
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/mock"

	"github.com/hopchain/hopchain/internal/domain"
	"github.com/hopchain/hopchain/internal/wire"
	"github.com/hopchain/hopchain/mocks"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

func testCodec(t *testing.T) *wire.Codec {
	t.Helper()
	return wire.New(wire.DefaultMaxDepth)
}

func dispatcherConfig() DispatcherConfig {
	return DispatcherConfig{
		Domain:          1,
		ExecutorAddress: "executor/inbound",
	}
}

// --- NewDispatcher ---

func TestNewDispatcher_NilCollaborators(t *testing.T) {
	t.Parallel()

	d := NewDispatcher(dispatcherConfig(), testCodec(t), nil, nil, nil, nil, nil)
	if d.observer == nil {
		t.Error("NewDispatcher(nil observer) should install a no-op observer")
	}
	if d.logger == nil {
		t.Error("NewDispatcher(nil logger) should install a discarding logger")
	}
}

// --- Dispatch ---

func TestDispatcher_Dispatch(t *testing.T) {
	t.Parallel()

	t.Run("local record invokes target in place", func(t *testing.T) {
		t.Parallel()
		invoker := mocks.NewMockTargetInvoker(t)
		transport := mocks.NewMockTransport(t)
		d := NewDispatcher(dispatcherConfig(), testCodec(t), invoker, transport, nil, nil, discardLogger())

		invoker.EXPECT().Invoke(mock.Anything, domain.Address("orders/reserve"), []byte("p")).Return(nil)

		err := d.Dispatch(context.Background(), domain.ActionRecord{
			TargetDomain: 1,
			Target:       "orders/reserve",
			Payload:      []byte("p"),
			Initiator:    "alice",
		})
		if err != nil {
			t.Fatalf("Dispatch() error = %v, want nil", err)
		}
		transport.AssertNotCalled(t, "Send")
	})

	t.Run("local target failure reports ErrLocalCallFailed", func(t *testing.T) {
		t.Parallel()
		invoker := mocks.NewMockTargetInvoker(t)
		transport := mocks.NewMockTransport(t)
		d := NewDispatcher(dispatcherConfig(), testCodec(t), invoker, transport, nil, nil, discardLogger())

		invoker.EXPECT().Invoke(mock.Anything, domain.Address("orders/reserve"), mock.Anything).
			Return(errors.New("out of stock"))

		err := d.Dispatch(context.Background(), domain.ActionRecord{
			TargetDomain: 1,
			Target:       "orders/reserve",
			Initiator:    "alice",
		})
		if !errors.Is(err, domain.ErrLocalCallFailed) {
			t.Errorf("Dispatch() error = %v, want ErrLocalCallFailed", err)
		}
	})

	t.Run("remote record goes to the transport encoded", func(t *testing.T) {
		t.Parallel()
		codec := testCodec(t)
		invoker := mocks.NewMockTargetInvoker(t)
		transport := mocks.NewMockTransport(t)
		d := NewDispatcher(dispatcherConfig(), codec, invoker, transport, nil, nil, discardLogger())

		rec := domain.ActionRecord{
			TargetDomain: 7,
			Target:       "billing/charge",
			Payload:      []byte("amount=10"),
			Initiator:    "alice",
		}

		var sent []byte
		transport.EXPECT().Send(mock.Anything, domain.DomainID(7), domain.Address("executor/inbound"), mock.Anything).
			Run(func(_ context.Context, _ domain.DomainID, _ domain.Address, record []byte) {
				sent = record
			}).
			Return(nil)

		if err := d.Dispatch(context.Background(), rec); err != nil {
			t.Fatalf("Dispatch() error = %v, want nil", err)
		}

		got, err := codec.Decode(sent)
		if err != nil {
			t.Fatalf("Decode(sent) error = %v", err)
		}
		if got.Target != rec.Target || got.Initiator != rec.Initiator {
			t.Errorf("decoded record = %+v, want %+v", got, rec)
		}
		invoker.AssertNotCalled(t, "Invoke")
	})

	t.Run("transport failure is returned wrapped", func(t *testing.T) {
		t.Parallel()
		transport := mocks.NewMockTransport(t)
		d := NewDispatcher(dispatcherConfig(), testCodec(t), nil, transport, nil, nil, discardLogger())

		transport.EXPECT().Send(mock.Anything, mock.Anything, mock.Anything, mock.Anything).
			Return(domain.ErrUnavailable)

		err := d.Dispatch(context.Background(), domain.ActionRecord{
			TargetDomain: 7,
			Target:       "billing/charge",
			Initiator:    "alice",
		})
		if !errors.Is(err, domain.ErrUnavailable) {
			t.Errorf("Dispatch() error = %v, want ErrUnavailable", err)
		}
	})

	t.Run("emits a dispatch event for local and remote", func(t *testing.T) {
		t.Parallel()
		invoker := mocks.NewMockTargetInvoker(t)
		transport := mocks.NewMockTransport(t)
		observer := mocks.NewMockDispatchObserver(t)
		d := NewDispatcher(dispatcherConfig(), testCodec(t), invoker, transport, observer, nil, discardLogger())

		invoker.EXPECT().Invoke(mock.Anything, mock.Anything, mock.Anything).Return(nil)
		transport.EXPECT().Send(mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(nil)

		observer.EXPECT().ObserveDispatch(mock.Anything, domain.DispatchEvent{
			TargetDomain: 1, Target: "orders/reserve", Local: true,
		}).Return()
		observer.EXPECT().ObserveDispatch(mock.Anything, domain.DispatchEvent{
			TargetDomain: 7, Target: "billing/charge", Local: false,
		}).Return()

		_ = d.Dispatch(context.Background(), domain.ActionRecord{
			TargetDomain: 1, Target: "orders/reserve", Initiator: "alice",
		})
		_ = d.Dispatch(context.Background(), domain.ActionRecord{
			TargetDomain: 7, Target: "billing/charge", Initiator: "alice",
		})
	})
}

// --- ProcessBranch ---

func TestDispatcher_ProcessBranch(t *testing.T) {
	t.Parallel()

	t.Run("empty branch is a no-op", func(t *testing.T) {
		t.Parallel()
		invoker := mocks.NewMockTargetInvoker(t)
		transport := mocks.NewMockTransport(t)
		d := NewDispatcher(dispatcherConfig(), testCodec(t), invoker, transport, nil, nil, discardLogger())

		if err := d.ProcessBranch(context.Background(), "alice", nil); err != nil {
			t.Fatalf("ProcessBranch(empty) error = %v, want nil", err)
		}
		invoker.AssertNotCalled(t, "Invoke")
		transport.AssertNotCalled(t, "Send")
	})

	t.Run("spoofed branch initiator is overwritten before dispatch", func(t *testing.T) {
		t.Parallel()
		codec := testCodec(t)
		transport := mocks.NewMockTransport(t)
		d := NewDispatcher(dispatcherConfig(), codec, nil, transport, nil, nil, discardLogger())

		branch, err := codec.Encode(domain.ActionRecord{
			TargetDomain: 7,
			Target:       "billing/charge",
			Initiator:    "mallory",
		})
		if err != nil {
			t.Fatalf("Encode() error = %v", err)
		}

		var sent []byte
		transport.EXPECT().Send(mock.Anything, domain.DomainID(7), mock.Anything, mock.Anything).
			Run(func(_ context.Context, _ domain.DomainID, _ domain.Address, record []byte) {
				sent = record
			}).
			Return(nil)

		if err := d.ProcessBranch(context.Background(), "alice", branch); err != nil {
			t.Fatalf("ProcessBranch() error = %v, want nil", err)
		}

		child, err := codec.Decode(sent)
		if err != nil {
			t.Fatalf("Decode(sent) error = %v", err)
		}
		if child.Initiator != "alice" {
			t.Errorf("dispatched child initiator = %q, want %q", child.Initiator, "alice")
		}
	})

	t.Run("locally targeted branch is invoked in place", func(t *testing.T) {
		t.Parallel()
		codec := testCodec(t)
		invoker := mocks.NewMockTargetInvoker(t)
		d := NewDispatcher(dispatcherConfig(), codec, invoker, nil, nil, nil, discardLogger())

		branch, err := codec.Encode(domain.ActionRecord{
			TargetDomain: 1,
			Target:       "orders/cancel",
			Payload:      []byte("order=42"),
			Initiator:    "alice",
		})
		if err != nil {
			t.Fatalf("Encode() error = %v", err)
		}

		invoker.EXPECT().Invoke(mock.Anything, domain.Address("orders/cancel"), []byte("order=42")).Return(nil)

		if err := d.ProcessBranch(context.Background(), "alice", branch); err != nil {
			t.Fatalf("ProcessBranch() error = %v, want nil", err)
		}
	})

	t.Run("undecodable branch reports ErrMalformedRecord", func(t *testing.T) {
		t.Parallel()
		d := NewDispatcher(dispatcherConfig(), testCodec(t), nil, nil, nil, nil, discardLogger())

		err := d.ProcessBranch(context.Background(), "alice", []byte("not cbor"))
		if !errors.Is(err, domain.ErrMalformedRecord) {
			t.Errorf("ProcessBranch() error = %v, want ErrMalformedRecord", err)
		}
	})
}
