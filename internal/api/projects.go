package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/yourusername/courtside/internal/models"
)

// CreateProjectRequest is the payload for starting a bankroll project.
type CreateProjectRequest struct {
	UserID        string  `json:"user_id"`
	Name          string  `json:"name"`
	BankrollStart float64 `json:"bankroll_start"`
	TargetProfit  float64 `json:"target_profit"`
	TotalEvents   int     `json:"total_events"`
}

// AddEventRequest is the payload for attaching a planned bet to a project.
type AddEventRequest struct {
	PlayerSlug  string             `json:"player_slug"`
	PlayerName  string             `json:"player_name"`
	Threshold   float64            `json:"threshold"`
	Odds        float64            `json:"odds"`
	Stake       float64            `json:"stake"`
	Probability float64            `json:"probability"`
	Confidence  models.Confidence  `json:"confidence"`
}

// RecordResultRequest is the payload for settling an event.
type RecordResultRequest struct {
	Result models.EventResult `json:"result"`
}

// CreateProject starts a new bankroll project.
func (h *Handler) CreateProject(w http.ResponseWriter, r *http.Request) {
	var req CreateProjectRequest
	if !h.decodeBody(w, r, &req) {
		return
	}

	project := &models.Project{
		UserID:        req.UserID,
		Name:          req.Name,
		BankrollStart: req.BankrollStart,
		TargetProfit:  req.TargetProfit,
		TotalEvents:   req.TotalEvents,
	}
	if err := h.projects.CreateProject(r.Context(), project); err != nil {
		h.serviceError(w, err)
		return
	}

	h.jsonResponse(w, http.StatusCreated, project)
}

// ListProjects returns all projects for the user_id query parameter.
func (h *Handler) ListProjects(w http.ResponseWriter, r *http.Request) {
	userID := r.URL.Query().Get("user_id")
	if userID == "" {
		h.errorResponse(w, http.StatusBadRequest, "user_id is required")
		return
	}

	projects, err := h.projects.ListProjects(r.Context(), userID)
	if err != nil {
		h.serviceError(w, err)
		return
	}

	h.jsonResponse(w, http.StatusOK, map[string]interface{}{
		"projects": projects,
		"count":    len(projects),
	})
}

// GetProject returns a single project.
func (h *Handler) GetProject(w http.ResponseWriter, r *http.Request) {
	id, ok := h.uuidParam(w, r, "id")
	if !ok {
		return
	}

	project, err := h.projects.GetProject(r.Context(), id)
	if err != nil {
		h.serviceError(w, err)
		return
	}

	h.jsonResponse(w, http.StatusOK, project)
}

// DeleteProject removes a project and its events.
func (h *Handler) DeleteProject(w http.ResponseWriter, r *http.Request) {
	id, ok := h.uuidParam(w, r, "id")
	if !ok {
		return
	}

	if err := h.projects.DeleteProject(r.Context(), id); err != nil {
		h.serviceError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// ListProjectEvents returns a project's events in creation order.
func (h *Handler) ListProjectEvents(w http.ResponseWriter, r *http.Request) {
	id, ok := h.uuidParam(w, r, "id")
	if !ok {
		return
	}

	events, err := h.projects.ListEvents(r.Context(), id)
	if err != nil {
		h.serviceError(w, err)
		return
	}

	h.jsonResponse(w, http.StatusOK, map[string]interface{}{
		"events": events,
		"count":  len(events),
	})
}

// AddProjectEvent attaches a planned bet to a project.
func (h *Handler) AddProjectEvent(w http.ResponseWriter, r *http.Request) {
	id, ok := h.uuidParam(w, r, "id")
	if !ok {
		return
	}

	var req AddEventRequest
	if !h.decodeBody(w, r, &req) {
		return
	}

	event := &models.Event{
		ProjectID:   id,
		PlayerSlug:  req.PlayerSlug,
		PlayerName:  req.PlayerName,
		Threshold:   req.Threshold,
		Odds:        req.Odds,
		Stake:       req.Stake,
		Probability: req.Probability,
		Confidence:  req.Confidence,
	}
	if err := h.projects.AddEvent(r.Context(), event); err != nil {
		h.serviceError(w, err)
		return
	}

	h.jsonResponse(w, http.StatusCreated, event)
}

// RecordEventResult settles an event and returns the updated project.
func (h *Handler) RecordEventResult(w http.ResponseWriter, r *http.Request) {
	id, ok := h.uuidParam(w, r, "id")
	if !ok {
		return
	}

	var req RecordResultRequest
	if !h.decodeBody(w, r, &req) {
		return
	}

	project, err := h.projects.RecordResult(r.Context(), id, req.Result)
	if err != nil {
		h.serviceError(w, err)
		return
	}

	h.jsonResponse(w, http.StatusOK, project)
}

func (h *Handler) uuidParam(w http.ResponseWriter, r *http.Request, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(chi.URLParam(r, name))
	if err != nil {
		h.errorResponse(w, http.StatusBadRequest, "invalid "+name)
		return uuid.Nil, false
	}
	return id, true
}
