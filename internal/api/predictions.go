package api

import (
	"net/http"

	"github.com/yourusername/courtside/internal/models"
)

// PredictRequest carries a raw game-log CSV and one threshold.
type PredictRequest struct {
	CSV       string  `json:"csv"`
	Threshold float64 `json:"threshold"`
}

// PredictBatchRequest carries a raw game-log CSV and several thresholds.
type PredictBatchRequest struct {
	CSV        string    `json:"csv"`
	Thresholds []float64 `json:"thresholds"`
}

// PredictResponse is the single-threshold prediction payload.
type PredictResponse struct {
	Result      *models.PredictionResult `json:"result"`
	PlayerStats models.PlayerStats       `json:"player_stats"`
	SampleSize  int                      `json:"sample_size"`
	Warnings    int                      `json:"warnings"`
}

// Predict scores one threshold against the supplied game log.
func (h *Handler) Predict(w http.ResponseWriter, r *http.Request) {
	var req PredictRequest
	if !h.decodeBody(w, r, &req) {
		return
	}
	if req.CSV == "" {
		h.errorResponse(w, http.StatusBadRequest, "csv is required")
		return
	}
	if req.Threshold <= 0 {
		h.errorResponse(w, http.StatusBadRequest, "threshold must be positive")
		return
	}

	outcome, err := h.prediction.Predict(r.Context(), req.CSV, []float64{req.Threshold})
	if err != nil {
		h.serviceError(w, err)
		return
	}

	h.jsonResponse(w, http.StatusOK, PredictResponse{
		Result:      outcome.Results[0],
		PlayerStats: outcome.PlayerStats,
		SampleSize:  outcome.SampleSize,
		Warnings:    outcome.Warnings,
	})
}

// PredictBatch scores multiple thresholds against the same game log. The
// returned probabilities are non-increasing in threshold order.
func (h *Handler) PredictBatch(w http.ResponseWriter, r *http.Request) {
	var req PredictBatchRequest
	if !h.decodeBody(w, r, &req) {
		return
	}
	if req.CSV == "" {
		h.errorResponse(w, http.StatusBadRequest, "csv is required")
		return
	}
	if len(req.Thresholds) == 0 {
		h.errorResponse(w, http.StatusBadRequest, "at least one threshold is required")
		return
	}
	for _, t := range req.Thresholds {
		if t <= 0 {
			h.errorResponse(w, http.StatusBadRequest, "thresholds must be positive")
			return
		}
	}

	outcome, err := h.prediction.Predict(r.Context(), req.CSV, req.Thresholds)
	if err != nil {
		h.serviceError(w, err)
		return
	}

	h.jsonResponse(w, http.StatusOK, outcome)
}
