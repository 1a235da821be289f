package handlers

import (
	"net/http"

	"github.com/hopchain/hopchain/internal/adapters/http/dto"
	"github.com/hopchain/hopchain/internal/domain"
	"github.com/hopchain/hopchain/internal/ports"
)

// CallerIdentityHeader carries the authenticated identity of the client
// starting a chain. Upstream infrastructure (gateway, mTLS terminator) is
// expected to set it; the executor rejects records whose initiator does not
// match it.
const CallerIdentityHeader = "X-Caller-Identity"

// ChainHandler handles HTTP requests that enter and inspect dispatch chains.
type ChainHandler struct {
	executor ports.Executor
	encoder  dto.BranchEncoder
}

// NewChainHandler creates a new ChainHandler with the given executor port and
// branch encoder.
func NewChainHandler(executor ports.Executor, encoder dto.BranchEncoder) *ChainHandler {
	return &ChainHandler{executor: executor, encoder: encoder}
}

// StartChain handles POST /api/v1/chains. A 202 response means the chain
// entered the transport; the chain itself runs asynchronously and its outcome
// is not reported here.
func (h *ChainHandler) StartChain(w http.ResponseWriter, r *http.Request) {
	caller := r.Header.Get(CallerIdentityHeader)
	if caller == "" {
		dto.WriteErrorResponse(w, r, &domain.ValidationError{
			Fields: map[string]string{"header." + CallerIdentityHeader: "is required"},
		})
		return
	}

	var req dto.ChainRecordRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	rec, err := req.ToDomain(h.encoder)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	if err := h.executor.Entry(r.Context(), domain.Identity(caller), rec); err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusAccepted, dto.ChainAcceptedResponse{
		Status:       "accepted",
		TargetDomain: req.TargetDomain,
		Target:       req.Target,
	})
}

// CurrentInitiator handles GET /api/v1/chains/initiator. It reports the
// initiator of the step currently executing in this domain, for debugging
// and tests; outside an active step it reports inactive.
func (h *ChainHandler) CurrentInitiator(w http.ResponseWriter, _ *http.Request) {
	initiator, active := h.executor.CurrentInitiator()
	writeJSON(w, http.StatusOK, dto.InitiatorResponse{
		Initiator: string(initiator),
		Active:    active,
	})
}
