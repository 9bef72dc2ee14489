// Package repository provides persistence for bankroll projects and their
// events.
package repository

import (
	"context"

	"github.com/google/uuid"

	"github.com/yourusername/courtside/internal/models"
)

// ProjectRepository defines operations for bankroll project persistence
type ProjectRepository interface {
	Create(ctx context.Context, project *models.Project) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Project, error)
	GetByUserID(ctx context.Context, userID string) ([]*models.Project, error)
	GetActive(ctx context.Context) ([]*models.Project, error)
	Update(ctx context.Context, project *models.Project) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// EventRepository defines operations for project event persistence
type EventRepository interface {
	Create(ctx context.Context, event *models.Event) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Event, error)
	GetByProjectID(ctx context.Context, projectID uuid.UUID) ([]*models.Event, error)
	Update(ctx context.Context, event *models.Event) error
}
