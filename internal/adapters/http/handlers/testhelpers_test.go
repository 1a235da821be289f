package handlers_test

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/hopchain/hopchain/internal/adapters/http/dto"
)

func validChainRequest() *dto.ChainRecordRequest {
	return &dto.ChainRecordRequest{
		TargetDomain: 2,
		Target:       "billing/charge",
		Payload:      []byte("amount=5"),
		Initiator:    "alice",
		OnSuccess: &dto.ChainRecordRequest{
			TargetDomain: 3,
			Target:       "mail/receipt",
		},
	}
}

func jsonBody(t *testing.T, v any) *bytes.Buffer {
	t.Helper()
	buf := &bytes.Buffer{}
	if err := json.NewEncoder(buf).Encode(v); err != nil {
		t.Fatalf("failed to encode JSON body: %v", err)
	}
	return buf
}

func decodeJSON[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var result T
	if err := json.NewDecoder(rec.Body).Decode(&result); err != nil {
		t.Fatalf("failed to decode JSON response: %v", err)
	}
	return result
}

func requireStatus(t *testing.T, rec *httptest.ResponseRecorder, want int) {
	t.Helper()
	if rec.Code != want {
		t.Errorf("status = %d, want %d; body = %s", rec.Code, want, rec.Body.String())
	}
}
