package service

import (
	"context"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/yourusername/courtside/internal/metrics"
	"github.com/yourusername/courtside/internal/models"
	"github.com/yourusername/courtside/internal/repository"
)

// ProjectService manages bankroll projects and settles their events.
type ProjectService struct {
	projects repository.ProjectRepository
	events   repository.EventRepository
	validate *validator.Validate
	logger   *logrus.Logger
}

// NewProjectService creates a project service.
func NewProjectService(projects repository.ProjectRepository, events repository.EventRepository, logger *logrus.Logger) *ProjectService {
	return &ProjectService{
		projects: projects,
		events:   events,
		validate: validator.New(),
		logger:   logger,
	}
}

// CreateProject validates and persists a new project. The current bankroll
// starts at the starting bankroll and the status at ACTIVE regardless of
// what the caller supplied.
func (s *ProjectService) CreateProject(ctx context.Context, project *models.Project) error {
	project.BankrollCurrent = project.BankrollStart
	project.EventsPlayed = 0
	project.EventsWon = 0
	project.EventsLost = 0
	project.Status = models.ProjectActive

	if err := s.validate.Struct(project); err != nil {
		return fmt.Errorf("invalid project: %w", err)
	}

	if err := s.projects.Create(ctx, project); err != nil {
		return err
	}

	metrics.ActiveProjects.Inc()
	s.logger.WithFields(logrus.Fields{
		"project_id":   project.ID,
		"user_id":      project.UserID,
		"bankroll":     project.BankrollStart,
		"total_events": project.TotalEvents,
	}).Info("Project created")

	return nil
}

// GetProject retrieves a project by ID.
func (s *ProjectService) GetProject(ctx context.Context, id uuid.UUID) (*models.Project, error) {
	return s.projects.GetByID(ctx, id)
}

// ListProjects retrieves all projects for a user.
func (s *ProjectService) ListProjects(ctx context.Context, userID string) ([]*models.Project, error) {
	return s.projects.GetByUserID(ctx, userID)
}

// ListEvents retrieves a project's events in creation order.
func (s *ProjectService) ListEvents(ctx context.Context, projectID uuid.UUID) ([]*models.Event, error) {
	if _, err := s.projects.GetByID(ctx, projectID); err != nil {
		return nil, err
	}
	return s.events.GetByProjectID(ctx, projectID)
}

// AddEvent attaches a planned bet to an active project.
func (s *ProjectService) AddEvent(ctx context.Context, event *models.Event) error {
	project, err := s.projects.GetByID(ctx, event.ProjectID)
	if err != nil {
		return err
	}
	if project.Terminal() {
		return models.ErrProjectTerminal
	}

	event.Result = models.EventPending
	if err := s.validate.Struct(event); err != nil {
		return fmt.Errorf("invalid event: %w", err)
	}

	return s.events.Create(ctx, event)
}

// RecordResult settles a pending event and folds its payout into the
// project bankroll. A VOID result returns the stake and does not count as a
// played event. Settling may push the project into a terminal state:
// COMPLETED once the bankroll reaches start plus target, FAILED once the
// bankroll is exhausted, and after the final event whichever of the two
// matches the sign of the net result.
func (s *ProjectService) RecordResult(ctx context.Context, eventID uuid.UUID, result models.EventResult) (*models.Project, error) {
	switch result {
	case models.EventWon, models.EventLost, models.EventVoid:
	default:
		return nil, fmt.Errorf("invalid event result %q", result)
	}

	event, err := s.events.GetByID(ctx, eventID)
	if err != nil {
		return nil, err
	}
	if event.Result != models.EventPending {
		return nil, models.ErrEventSettled
	}

	project, err := s.projects.GetByID(ctx, event.ProjectID)
	if err != nil {
		return nil, err
	}
	if project.Terminal() {
		return nil, models.ErrProjectTerminal
	}

	now := time.Now()
	event.Result = result
	event.SettledAt = &now
	if err := s.events.Update(ctx, event); err != nil {
		return nil, err
	}

	project.BankrollCurrent += event.Payout()
	switch result {
	case models.EventWon:
		project.EventsPlayed++
		project.EventsWon++
	case models.EventLost:
		project.EventsPlayed++
		project.EventsLost++
	}

	wasActive := project.Status == models.ProjectActive
	s.applyTerminalRules(project)

	if err := s.projects.Update(ctx, project); err != nil {
		return nil, err
	}

	metrics.EventsSettledTotal.WithLabelValues(string(result)).Inc()
	if wasActive && project.Terminal() {
		metrics.ActiveProjects.Dec()
	}

	s.logger.WithFields(logrus.Fields{
		"event_id":   event.ID,
		"project_id": project.ID,
		"result":     result,
		"payout":     event.Payout(),
		"bankroll":   project.BankrollCurrent,
		"status":     project.Status,
	}).Info("Event settled")

	return project, nil
}

// DeleteProject removes a project and its events.
func (s *ProjectService) DeleteProject(ctx context.Context, id uuid.UUID) error {
	project, err := s.projects.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if err := s.projects.Delete(ctx, id); err != nil {
		return err
	}

	if project.Status == models.ProjectActive {
		metrics.ActiveProjects.Dec()
	}
	return nil
}

// SyncActiveGauge resets the active-projects gauge from storage. Called at
// startup so the gauge survives restarts.
func (s *ProjectService) SyncActiveGauge(ctx context.Context) error {
	active, err := s.projects.GetActive(ctx)
	if err != nil {
		return err
	}
	metrics.ActiveProjects.Set(float64(len(active)))
	return nil
}

func (s *ProjectService) applyTerminalRules(project *models.Project) {
	switch {
	case project.BankrollCurrent >= project.BankrollStart+project.TargetProfit:
		project.Status = models.ProjectCompleted
	case project.BankrollCurrent <= 0:
		project.Status = models.ProjectFailed
	case project.EventsPlayed >= project.TotalEvents:
		if project.BankrollCurrent > project.BankrollStart {
			project.Status = models.ProjectCompleted
		} else {
			project.Status = models.ProjectFailed
		}
	}
}
