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

// PostgresEventRepository implements EventRepository for PostgreSQL
type PostgresEventRepository struct {
	db *database.DB
}

// NewPostgresEventRepository creates a new event repository
func NewPostgresEventRepository(db *database.DB) EventRepository {
	return &PostgresEventRepository{db: db}
}

const eventColumns = `id, project_id, player_slug, player_name, threshold, odds, stake,
	       probability, confidence, result, created_at, settled_at`

// Create inserts a new event
func (r *PostgresEventRepository) Create(ctx context.Context, event *models.Event) error {
	if event.ID == uuid.Nil {
		event.ID = uuid.New()
	}
	event.CreatedAt = time.Now()
	if event.Result == "" {
		event.Result = models.EventPending
	}

	query := `
		INSERT INTO events (id, project_id, player_slug, player_name, threshold, odds, stake,
		                    probability, confidence, result, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
	`

	_, err := r.db.GetPool().Exec(ctx, query,
		event.ID, event.ProjectID, event.PlayerSlug, event.PlayerName, event.Threshold,
		event.Odds, event.Stake, event.Probability, event.Confidence, event.Result, event.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create event: %w", err)
	}

	return nil
}

// GetByID retrieves an event by ID
func (r *PostgresEventRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Event, error) {
	query := `SELECT ` + eventColumns + ` FROM events WHERE id = $1`

	event := &models.Event{}
	err := r.db.GetPool().QueryRow(ctx, query, id).Scan(
		&event.ID, &event.ProjectID, &event.PlayerSlug, &event.PlayerName, &event.Threshold,
		&event.Odds, &event.Stake, &event.Probability, &event.Confidence, &event.Result,
		&event.CreatedAt, &event.SettledAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, models.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get event: %w", err)
	}

	return event, nil
}

// GetByProjectID retrieves all events for a project in creation order
func (r *PostgresEventRepository) GetByProjectID(ctx context.Context, projectID uuid.UUID) ([]*models.Event, error) {
	query := `SELECT ` + eventColumns + ` FROM events WHERE project_id = $1 ORDER BY created_at`

	rows, err := r.db.GetPool().Query(ctx, query, projectID)
	if err != nil {
		return nil, fmt.Errorf("failed to query events: %w", err)
	}
	defer rows.Close()

	var events []*models.Event
	for rows.Next() {
		event := &models.Event{}
		err := rows.Scan(
			&event.ID, &event.ProjectID, &event.PlayerSlug, &event.PlayerName, &event.Threshold,
			&event.Odds, &event.Stake, &event.Probability, &event.Confidence, &event.Result,
			&event.CreatedAt, &event.SettledAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan event: %w", err)
		}
		events = append(events, event)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate events: %w", err)
	}

	return events, nil
}

// Update persists event mutations
func (r *PostgresEventRepository) Update(ctx context.Context, event *models.Event) error {
	query := `
		UPDATE events
		SET stake = $2, probability = $3, confidence = $4, result = $5, settled_at = $6
		WHERE id = $1
	`

	tag, err := r.db.GetPool().Exec(ctx, query,
		event.ID, event.Stake, event.Probability, event.Confidence, event.Result, event.SettledAt,
	)
	if err != nil {
		return fmt.Errorf("failed to update event: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return models.ErrNotFound
	}

	return nil
}
