package handlers_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/mock"

	"github.com/hopchain/hopchain/internal/adapters/http/handlers"
	"github.com/hopchain/hopchain/internal/domain"
	"github.com/hopchain/hopchain/internal/wire"
	"github.com/hopchain/hopchain/mocks"
)

func TestStartChain_Accepted(t *testing.T) {
	t.Parallel()

	executor := mocks.NewMockExecutor(t)
	executor.EXPECT().
		Entry(mock.Anything, domain.Identity("alice"), mock.AnythingOfType("domain.ActionRecord")).
		Return(nil)

	h := handlers.NewChainHandler(executor, wire.New(wire.DefaultMaxDepth))

	req := httptest.NewRequest(http.MethodPost, "/api/v1/chains", jsonBody(t, validChainRequest()))
	req.Header.Set(handlers.CallerIdentityHeader, "alice")
	rec := httptest.NewRecorder()

	h.StartChain(rec, req)

	requireStatus(t, rec, http.StatusAccepted)

	resp := decodeJSON[map[string]any](t, rec)
	if resp["status"] != "accepted" {
		t.Errorf("status = %v, want %q", resp["status"], "accepted")
	}
}

func TestStartChain_MissingCallerHeader(t *testing.T) {
	t.Parallel()

	executor := mocks.NewMockExecutor(t)
	h := handlers.NewChainHandler(executor, wire.New(wire.DefaultMaxDepth))

	req := httptest.NewRequest(http.MethodPost, "/api/v1/chains", jsonBody(t, validChainRequest()))
	rec := httptest.NewRecorder()

	h.StartChain(rec, req)

	requireStatus(t, rec, http.StatusBadRequest)
	executor.AssertNotCalled(t, "Entry")
}

func TestStartChain_InvalidJSON(t *testing.T) {
	t.Parallel()

	executor := mocks.NewMockExecutor(t)
	h := handlers.NewChainHandler(executor, wire.New(wire.DefaultMaxDepth))

	req := httptest.NewRequest(http.MethodPost, "/api/v1/chains", strings.NewReader("{not json"))
	req.Header.Set(handlers.CallerIdentityHeader, "alice")
	rec := httptest.NewRecorder()

	h.StartChain(rec, req)

	requireStatus(t, rec, http.StatusBadRequest)
	executor.AssertNotCalled(t, "Entry")
}

func TestStartChain_ValidationFailure(t *testing.T) {
	t.Parallel()

	executor := mocks.NewMockExecutor(t)
	h := handlers.NewChainHandler(executor, wire.New(wire.DefaultMaxDepth))

	body := validChainRequest()
	body.Target = ""

	req := httptest.NewRequest(http.MethodPost, "/api/v1/chains", jsonBody(t, body))
	req.Header.Set(handlers.CallerIdentityHeader, "alice")
	rec := httptest.NewRecorder()

	h.StartChain(rec, req)

	requireStatus(t, rec, http.StatusBadRequest)
	executor.AssertNotCalled(t, "Entry")
}

func TestStartChain_InitiatorMismatch(t *testing.T) {
	t.Parallel()

	executor := mocks.NewMockExecutor(t)
	executor.EXPECT().
		Entry(mock.Anything, domain.Identity("mallory"), mock.AnythingOfType("domain.ActionRecord")).
		Return(domain.ErrInvalidInitiator)

	h := handlers.NewChainHandler(executor, wire.New(wire.DefaultMaxDepth))

	req := httptest.NewRequest(http.MethodPost, "/api/v1/chains", jsonBody(t, validChainRequest()))
	req.Header.Set(handlers.CallerIdentityHeader, "mallory")
	rec := httptest.NewRecorder()

	h.StartChain(rec, req)

	requireStatus(t, rec, http.StatusForbidden)
}

func TestStartChain_TransportUnavailable(t *testing.T) {
	t.Parallel()

	executor := mocks.NewMockExecutor(t)
	executor.EXPECT().
		Entry(mock.Anything, domain.Identity("alice"), mock.AnythingOfType("domain.ActionRecord")).
		Return(domain.ErrUnavailable)

	h := handlers.NewChainHandler(executor, wire.New(wire.DefaultMaxDepth))

	req := httptest.NewRequest(http.MethodPost, "/api/v1/chains", jsonBody(t, validChainRequest()))
	req.Header.Set(handlers.CallerIdentityHeader, "alice")
	rec := httptest.NewRecorder()

	h.StartChain(rec, req)

	requireStatus(t, rec, http.StatusBadGateway)
}

func TestCurrentInitiator_Active(t *testing.T) {
	t.Parallel()

	executor := mocks.NewMockExecutor(t)
	executor.EXPECT().CurrentInitiator().Return(domain.Identity("alice"), true)

	h := handlers.NewChainHandler(executor, wire.New(wire.DefaultMaxDepth))

	req := httptest.NewRequest(http.MethodGet, "/api/v1/chains/initiator", nil)
	rec := httptest.NewRecorder()

	h.CurrentInitiator(rec, req)

	requireStatus(t, rec, http.StatusOK)

	resp := decodeJSON[map[string]any](t, rec)
	if resp["initiator"] != "alice" {
		t.Errorf("initiator = %v, want %q", resp["initiator"], "alice")
	}
	if resp["active"] != true {
		t.Errorf("active = %v, want true", resp["active"])
	}
}

func TestCurrentInitiator_Inactive(t *testing.T) {
	t.Parallel()

	executor := mocks.NewMockExecutor(t)
	executor.EXPECT().CurrentInitiator().Return(domain.Identity(""), false)

	h := handlers.NewChainHandler(executor, wire.New(wire.DefaultMaxDepth))

	req := httptest.NewRequest(http.MethodGet, "/api/v1/chains/initiator", nil)
	rec := httptest.NewRecorder()

	h.CurrentInitiator(rec, req)

	requireStatus(t, rec, http.StatusOK)

	resp := decodeJSON[map[string]any](t, rec)
	if resp["active"] != false {
		t.Errorf("active = %v, want false", resp["active"])
	}
}
