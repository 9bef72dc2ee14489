package api

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/yourusername/courtside/internal/players"
)

// SearchPlayers finds registry players matching the q query parameter.
func (h *Handler) SearchPlayers(w http.ResponseWriter, r *http.Request) {
	query := strings.TrimSpace(r.URL.Query().Get("q"))
	if len(query) < players.MinQueryLength {
		h.errorResponse(w, http.StatusBadRequest, "query must be at least 2 characters")
		return
	}

	matches := h.players.Search(query)
	h.jsonResponse(w, http.StatusOK, map[string]interface{}{
		"players": matches,
		"count":   len(matches),
	})
}

// FetchGameLog downloads a player's season game log as CSV. The season
// query parameter defaults to the configured season.
func (h *Handler) FetchGameLog(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "slug")
	if slug == "" {
		h.errorResponse(w, http.StatusBadRequest, "slug is required")
		return
	}
	season := r.URL.Query().Get("season")
	if season == "" {
		season = h.defaultSeason
	}

	result, err := h.players.FetchGameLog(r.Context(), slug, season)
	if err != nil {
		h.serviceError(w, err)
		return
	}

	h.jsonResponse(w, http.StatusOK, result)
}
