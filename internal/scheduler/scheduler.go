// Package scheduler runs periodic game-log refreshes for active projects.
package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"

	"github.com/yourusername/courtside/internal/models"
	"github.com/yourusername/courtside/internal/repository"
	"github.com/yourusername/courtside/internal/service"
)

// Scheduler refreshes game logs for players referenced by pending events of
// active projects and warms the prediction cache at their thresholds.
type Scheduler struct {
	cron       *cron.Cron
	projects   repository.ProjectRepository
	events     repository.EventRepository
	players    *service.PlayerService
	prediction *service.PredictionService
	season     string
	logger     *logrus.Logger
	mu         sync.RWMutex
	isRunning  bool
	jobIDs     []cron.EntryID
}

// New creates a scheduler.
func New(projects repository.ProjectRepository, events repository.EventRepository, players *service.PlayerService, prediction *service.PredictionService, season string, logger *logrus.Logger) *Scheduler {
	return &Scheduler{
		cron:       cron.New(cron.WithLocation(time.UTC)),
		projects:   projects,
		events:     events,
		players:    players,
		prediction: prediction,
		season:     season,
		logger:     logger,
		jobIDs:     make([]cron.EntryID, 0),
	}
}

// ScheduleRefresh registers the refresh job on the given cron expression.
func (s *Scheduler) ScheduleRefresh(cronExpression string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.isRunning {
		return fmt.Errorf("cannot schedule job while scheduler is running")
	}

	jobFunc := func() {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Minute)
		defer cancel()

		if err := s.RefreshActivePlayers(ctx); err != nil {
			s.logger.WithError(err).Error("Scheduled game-log refresh failed")
		}
	}

	entryID, err := s.cron.AddFunc(cronExpression, jobFunc)
	if err != nil {
		return fmt.Errorf("failed to add job: %w", err)
	}

	s.jobIDs = append(s.jobIDs, entryID)
	s.logger.WithField("cron", cronExpression).Info("Scheduled game-log refresh job")

	return nil
}

// RefreshActivePlayers fetches the current game log for every player with a
// pending event on an active project and primes the prediction cache at the
// event's threshold. Fetch failures are logged per player and do not stop
// the sweep.
func (s *Scheduler) RefreshActivePlayers(ctx context.Context) error {
	active, err := s.projects.GetActive(ctx)
	if err != nil {
		return fmt.Errorf("failed to list active projects: %w", err)
	}

	// Collect thresholds per player so each log is fetched once.
	thresholds := make(map[string][]float64)
	for _, project := range active {
		events, err := s.events.GetByProjectID(ctx, project.ID)
		if err != nil {
			s.logger.WithError(err).WithField("project_id", project.ID).Warn("Failed to list project events")
			continue
		}
		for _, event := range events {
			if event.Result != models.EventPending || event.PlayerSlug == "" {
				continue
			}
			thresholds[event.PlayerSlug] = append(thresholds[event.PlayerSlug], event.Threshold)
		}
	}

	refreshed := 0
	for slug, ts := range thresholds {
		result, err := s.players.FetchGameLog(ctx, slug, s.season)
		if err != nil {
			s.logger.WithError(err).WithField("slug", slug).Warn("Failed to refresh game log")
			continue
		}

		for _, threshold := range ts {
			if _, err := s.prediction.Predict(ctx, result.CSV, []float64{threshold}); err != nil {
				s.logger.WithError(err).WithFields(logrus.Fields{
					"slug":      slug,
					"threshold": threshold,
				}).Warn("Failed to warm prediction cache")
			}
		}
		refreshed++
	}

	s.logger.WithFields(logrus.Fields{
		"projects":  len(active),
		"players":   len(thresholds),
		"refreshed": refreshed,
	}).Info("Game-log refresh sweep completed")

	return nil
}

// Start begins executing scheduled jobs.
func (s *Scheduler) Start() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.isRunning {
		return
	}

	s.cron.Start()
	s.isRunning = true
	s.logger.WithField("jobs", len(s.jobIDs)).Info("Scheduler started")
}

// Stop halts job execution and waits for running jobs to finish.
func (s *Scheduler) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.isRunning {
		return
	}

	ctx := s.cron.Stop()
	<-ctx.Done()
	s.isRunning = false
	s.logger.Info("Scheduler stopped")
}
