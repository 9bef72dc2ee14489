package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/yourusername/courtside/internal/models"
)

func (h *Handler) jsonResponse(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func (h *Handler) errorResponse(w http.ResponseWriter, status int, message string) {
	h.jsonResponse(w, status, map[string]string{"error": message})
}

// serviceError maps the error taxonomy onto HTTP statuses. Anything outside
// the taxonomy is treated as an internal failure and logged without leaking
// detail to the client.
func (h *Handler) serviceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, models.ErrNotFound), errors.Is(err, models.ErrUnknownPlayer):
		h.errorResponse(w, http.StatusNotFound, err.Error())
	case errors.Is(err, models.ErrParse),
		errors.Is(err, models.ErrInsufficientData),
		errors.Is(err, models.ErrInvalidOdds),
		errors.Is(err, models.ErrInvalidBankroll),
		errors.Is(err, models.ErrProjectTerminal),
		errors.Is(err, models.ErrEventSettled):
		h.errorResponse(w, http.StatusBadRequest, err.Error())
	default:
		h.logger.WithError(err).Error("Request failed")
		h.errorResponse(w, http.StatusInternalServerError, "internal error")
	}
}

func (h *Handler) decodeBody(w http.ResponseWriter, r *http.Request, dst interface{}) bool {
	r.Body = http.MaxBytesReader(w, r.Body, MaxBodySize)
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		h.errorResponse(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return false
	}
	return true
}
