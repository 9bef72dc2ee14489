package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/yourusername/courtside/internal/database"
	"github.com/yourusername/courtside/internal/models"
)

// PostgresProjectRepository implements ProjectRepository for PostgreSQL
type PostgresProjectRepository struct {
	db *database.DB
}

// NewPostgresProjectRepository creates a new project repository
func NewPostgresProjectRepository(db *database.DB) ProjectRepository {
	return &PostgresProjectRepository{db: db}
}

const projectColumns = `id, user_id, name, bankroll_start, bankroll_current, target_profit,
	       total_events, events_played, events_won, events_lost, status, created_at, updated_at`

// Create inserts a new project
func (r *PostgresProjectRepository) Create(ctx context.Context, project *models.Project) error {
	if project.ID == uuid.Nil {
		project.ID = uuid.New()
	}
	now := time.Now()
	project.CreatedAt = now
	project.UpdatedAt = now

	query := `
		INSERT INTO projects (id, user_id, name, bankroll_start, bankroll_current, target_profit,
		                      total_events, events_played, events_won, events_lost, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
	`

	_, err := r.db.GetPool().Exec(ctx, query,
		project.ID, project.UserID, project.Name, project.BankrollStart, project.BankrollCurrent,
		project.TargetProfit, project.TotalEvents, project.EventsPlayed, project.EventsWon,
		project.EventsLost, project.Status, project.CreatedAt, project.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create project: %w", err)
	}

	return nil
}

// GetByID retrieves a project by ID
func (r *PostgresProjectRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Project, error) {
	query := `SELECT ` + projectColumns + ` FROM projects WHERE id = $1`

	project := &models.Project{}
	err := r.db.GetPool().QueryRow(ctx, query, id).Scan(
		&project.ID, &project.UserID, &project.Name, &project.BankrollStart, &project.BankrollCurrent,
		&project.TargetProfit, &project.TotalEvents, &project.EventsPlayed, &project.EventsWon,
		&project.EventsLost, &project.Status, &project.CreatedAt, &project.UpdatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, models.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get project: %w", err)
	}

	return project, nil
}

// GetByUserID retrieves all projects owned by a user
func (r *PostgresProjectRepository) GetByUserID(ctx context.Context, userID string) ([]*models.Project, error) {
	query := `SELECT ` + projectColumns + ` FROM projects WHERE user_id = $1 ORDER BY created_at DESC`

	rows, err := r.db.GetPool().Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query projects: %w", err)
	}
	defer rows.Close()

	return scanProjects(rows)
}

// GetActive retrieves all projects whose status is ACTIVE
func (r *PostgresProjectRepository) GetActive(ctx context.Context) ([]*models.Project, error) {
	query := `SELECT ` + projectColumns + ` FROM projects WHERE status = $1 ORDER BY created_at`

	rows, err := r.db.GetPool().Query(ctx, query, models.ProjectActive)
	if err != nil {
		return nil, fmt.Errorf("failed to query active projects: %w", err)
	}
	defer rows.Close()

	return scanProjects(rows)
}

// Update persists project mutations
func (r *PostgresProjectRepository) Update(ctx context.Context, project *models.Project) error {
	project.UpdatedAt = time.Now()

	query := `
		UPDATE projects
		SET bankroll_current = $2, events_played = $3, events_won = $4, events_lost = $5,
		    status = $6, updated_at = $7
		WHERE id = $1
	`

	tag, err := r.db.GetPool().Exec(ctx, query,
		project.ID, project.BankrollCurrent, project.EventsPlayed, project.EventsWon,
		project.EventsLost, project.Status, project.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to update project: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return models.ErrNotFound
	}

	return nil
}

// Delete removes a project and its events
func (r *PostgresProjectRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.db.GetPool().Exec(ctx, `DELETE FROM projects WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete project: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return models.ErrNotFound
	}

	return nil
}

func scanProjects(rows pgx.Rows) ([]*models.Project, error) {
	var projects []*models.Project
	for rows.Next() {
		project := &models.Project{}
		err := rows.Scan(
			&project.ID, &project.UserID, &project.Name, &project.BankrollStart, &project.BankrollCurrent,
			&project.TargetProfit, &project.TotalEvents, &project.EventsPlayed, &project.EventsWon,
			&project.EventsLost, &project.Status, &project.CreatedAt, &project.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan project: %w", err)
		}
		projects = append(projects, project)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate projects: %w", err)
	}

	return projects, nil
}
