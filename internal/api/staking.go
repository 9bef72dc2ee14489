package api

import (
	"net/http"

	"github.com/yourusername/courtside/internal/staking"
)

// EvaluateStake computes a Kelly stake recommendation.
func (h *Handler) EvaluateStake(w http.ResponseWriter, r *http.Request) {
	var in staking.Input
	if !h.decodeBody(w, r, &in) {
		return
	}

	rec, err := h.staking.Evaluate(r.Context(), in)
	if err != nil {
		h.serviceError(w, err)
		return
	}

	h.jsonResponse(w, http.StatusOK, rec)
}

// SimulateBankroll runs a Monte Carlo projection of the bankroll under the
// staking policy.
func (h *Handler) SimulateBankroll(w http.ResponseWriter, r *http.Request) {
	var in staking.SimulationInput
	if !h.decodeBody(w, r, &in) {
		return
	}

	result, err := h.staking.Simulate(r.Context(), in)
	if err != nil {
		h.serviceError(w, err)
		return
	}

	h.jsonResponse(w, http.StatusOK, result)
}
